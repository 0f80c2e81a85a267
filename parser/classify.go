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

package parser

import (
	"strings"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/pos"
)

const (
	// delimiter separates the word and modifiers from the definition.
	delimiter = " // "

	// inflectionsPrefix starts an inflection list line.
	inflectionsPrefix = "inflections: "

	// inflectionsSep separates forms in an inflection list.
	inflectionsSep = ", "
)

// Kind is the kind of a classified line.
type Kind int

const (
	// KindDefinition is an entry line, possibly a derived term.
	KindDefinition Kind = iota

	// KindNote is a free text note for the preceding entry.
	KindNote

	// KindInflections is an irregular inflection list for the preceding
	// entry.
	KindInflections
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindDefinition:
		return "definition"
	case KindNote:
		return "note"
	case KindInflections:
		return "inflections"
	default:
		return "unknown"
	}
}

// Line is a classified source line. Only the field matching Kind is set.
type Line struct {
	Kind Kind

	// Entry is set for KindDefinition.
	Entry *entry.Entry

	// Note is set for KindNote.
	Note string

	// Inflections is set for KindInflections.
	Inflections []string
}

// Classify classifies a single raw source line. The line must not be empty.
// An error wrapping ErrUnknownPartOfSpeech or ErrMissingWord is returned for
// entry lines that cannot be resolved.
func Classify(raw string) (*Line, error) {
	indented := raw != "" && (raw[0] == ' ' || raw[0] == '\t')

	lhs, rhs, found := strings.Cut(raw, delimiter)
	if !found {
		text := strings.TrimSpace(raw)
		if forms, ok := strings.CutPrefix(text, inflectionsPrefix); ok {
			return &Line{
				Kind:        KindInflections,
				Inflections: strings.Split(forms, inflectionsSep),
			}, nil
		}
		return &Line{
			Kind: KindNote,
			Note: text,
		}, nil
	}

	tokens := strings.Split(strings.TrimSpace(lhs), " ")
	word := tokens[0]
	if word == "" {
		return nil, ErrMissingWord
	}

	// Later tokens overwrite earlier ones.
	var abbr string
	class := entry.ClassNone
	for _, tok := range tokens[1:] {
		if pos.IsAbbreviation(tok) {
			abbr = tok
			continue
		}
		if c, ok := entry.ClassFromToken(tok); ok {
			class = c
		}
	}

	p, ok := pos.Lookup(abbr)
	if !ok {
		return nil, ErrUnknownPartOfSpeech
	}

	e := entry.New(word, p, class, rhs)
	e.IsDerivedTerm = indented
	return &Line{
		Kind:  KindDefinition,
		Entry: e,
	}, nil
}
