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

// Package entry defines the parsed dictionary record.
package entry

import (
	"errors"
	"fmt"

	"github.com/ianlewis/go-lexicon/pos"
)

var (
	errEmptyWord      = errors.New("empty word")
	errInvalidPOS     = errors.New("invalid part of speech")
	errInvalidClass   = errors.New("invalid word class")
	errParentMismatch = errors.New("parent does not match derived term flag")
	errNilEntry       = errors.New("nil entry")
)

// WordClass is a morphological class tag. The empty class means the tag does
// not apply to the word.
type WordClass string

const (
	// ClassNone means no class applies.
	ClassNone = WordClass("")

	// ClassI is class i.
	ClassI = WordClass("i")

	// ClassII is class ii.
	ClassII = WordClass("ii")

	// ClassIII is class iii.
	ClassIII = WordClass("iii")
)

// ClassFromToken returns the word class for a source token such as "ii.".
func ClassFromToken(tok string) (WordClass, bool) {
	switch tok {
	case "i.":
		return ClassI, true
	case "ii.":
		return ClassII, true
	case "iii.":
		return ClassIII, true
	default:
		return ClassNone, false
	}
}

// Valid returns true if c is one of the known classes.
func (c WordClass) Valid() bool {
	switch c {
	case ClassNone, ClassI, ClassII, ClassIII:
		return true
	default:
		return false
	}
}

// Entry is one dictionary record: a headword and one of its senses.
type Entry struct {
	// Word is the headword.
	Word string

	// PartOfSpeech is the resolved canonical part of speech.
	PartOfSpeech pos.PartOfSpeech

	// WordClass is the morphological class, possibly empty.
	WordClass WordClass

	// Definition is the text to the right of the first " // " delimiter. It
	// is not trimmed.
	Definition string

	// Notes are free text continuation lines in source order.
	Notes []string

	// IsDerivedTerm is true when the entry was indented in the source and is
	// derived from the entry preceding it.
	IsDerivedTerm bool

	// Parent is the headword of the entry this one is derived from. It is
	// empty unless IsDerivedTerm is true.
	Parent string

	// IrregularInflections are the inflected forms from an inflection list.
	IrregularInflections []string
}

// New returns an entry with empty, non-nil notes and inflections.
func New(word string, p pos.PartOfSpeech, class WordClass, definition string) *Entry {
	return &Entry{
		Word:                 word,
		PartOfSpeech:         p,
		WordClass:            class,
		Definition:           definition,
		Notes:                []string{},
		IrregularInflections: []string{},
	}
}

// AddNote appends a note to the entry.
func (e *Entry) AddNote(note string) {
	e.Notes = append(e.Notes, note)
}

// SetInflections replaces the entry's irregular inflections.
func (e *Entry) SetInflections(forms []string) {
	e.IrregularInflections = forms
}

// DeriveFrom marks the entry as derived from parent.
func (e *Entry) DeriveFrom(parent *Entry) {
	e.IsDerivedTerm = true
	e.Parent = parent.Word
}

// Validate checks the entry's invariants.
func (e *Entry) Validate() error {
	if e == nil {
		return errNilEntry
	}
	if e.Word == "" {
		return errEmptyWord
	}
	if !e.PartOfSpeech.Valid() {
		return fmt.Errorf("%w: %q", errInvalidPOS, e.PartOfSpeech)
	}
	if !e.WordClass.Valid() {
		return fmt.Errorf("%w: %q", errInvalidClass, e.WordClass)
	}
	if e.IsDerivedTerm == (e.Parent == "") {
		return fmt.Errorf("%w: %q", errParentMismatch, e.Parent)
	}
	return nil
}
