// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pos implements the part-of-speech table used by the dictionary.
//
// Dictionary source lines carry short abbreviation tokens such as "n." or
// "irr.v." after the headword. Each abbreviation maps to exactly one canonical
// part-of-speech name. The table is fixed; an abbreviation missing from it is
// a data entry mistake in the source dictionary.
package pos

import (
	"slices"
	"strings"
)

// PartOfSpeech is a canonical part-of-speech name as it appears in the
// interchange format.
type PartOfSpeech string

const (
	// Noun is a noun ("n.").
	Noun = PartOfSpeech("noun")

	// Verb is a verb ("v.").
	Verb = PartOfSpeech("verb")

	// Affix is a prefix or suffix ("aff.").
	Affix = PartOfSpeech("affix")

	// IrregularVerb is a verb with irregular inflections ("irr.v.").
	IrregularVerb = PartOfSpeech("irregular_verb")

	// Number is a numeral ("num.").
	Number = PartOfSpeech("number")

	// StativeVerb is a stative verb ("stv.").
	StativeVerb = PartOfSpeech("stative_verb")

	// Adverb is an adverb ("adv.").
	Adverb = PartOfSpeech("adverb")

	// Pronoun is a pronoun ("pron.").
	Pronoun = PartOfSpeech("pronoun")

	// Particle is a particle ("part.").
	Particle = PartOfSpeech("particle")

	// Conjunction is a conjunction ("conj.").
	Conjunction = PartOfSpeech("conjunction")

	// Honorific is an honorific ("hon.").
	Honorific = PartOfSpeech("honorific")

	// Interjection is an interjection ("intj.").
	Interjection = PartOfSpeech("interjection")

	// Interrogative is an interrogative ("inte.").
	Interrogative = PartOfSpeech("interrogative")

	// Preposition is a preposition ("prep.").
	Preposition = PartOfSpeech("preposition")

	// Postposition is a postposition ("pos.").
	Postposition = PartOfSpeech("postposition")

	// Phrase is a set phrase ("phr.").
	Phrase = PartOfSpeech("phrase")

	// Auxiliary is an auxiliary ("aux.").
	Auxiliary = PartOfSpeech("auxiliary")
)

// table maps source abbreviations to canonical names. It is never modified
// after initialization.
var table = map[string]PartOfSpeech{
	"n.":     Noun,
	"v.":     Verb,
	"aff.":   Affix,
	"irr.v.": IrregularVerb,
	"num.":   Number,
	"stv.":   StativeVerb,
	"adv.":   Adverb,
	"pron.":  Pronoun,
	"part.":  Particle,
	"conj.":  Conjunction,
	"hon.":   Honorific,
	"intj.":  Interjection,
	"inte.":  Interrogative,
	"prep.":  Preposition,
	"pos.":   Postposition,
	"phr.":   Phrase,
	"aux.":   Auxiliary,
}

// Lookup resolves an abbreviation token to its canonical part of speech.
func Lookup(abbr string) (PartOfSpeech, bool) {
	p, ok := table[abbr]
	return p, ok
}

// IsAbbreviation returns true if tok is a known part-of-speech abbreviation.
func IsAbbreviation(tok string) bool {
	_, ok := table[tok]
	return ok
}

// Abbreviations returns all known abbreviations in sorted order.
func Abbreviations() []string {
	abbrs := make([]string, 0, len(table))
	for a := range table {
		abbrs = append(abbrs, a)
	}
	slices.Sort(abbrs)
	return abbrs
}

// Valid returns true if p is one of the canonical part-of-speech names.
func (p PartOfSpeech) Valid() bool {
	for _, v := range table {
		if v == p {
			return true
		}
	}
	return false
}

// Display returns the name in a human readable form, e.g. "stative verb".
func (p PartOfSpeech) Display() string {
	return strings.ReplaceAll(string(p), "_", " ")
}

// String implements [fmt.Stringer].
func (p PartOfSpeech) String() string {
	return string(p)
}
