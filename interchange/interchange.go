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

// Package interchange implements the JSON interchange format for parsed
// dictionaries.
//
// An interchange document is a JSON object with a single "items" key holding
// the list of entry records in source order:
//
//	{
//	    "items": [
//	        {
//	            "word": "awa",
//	            "pos": "noun",
//	            "word_class": "",
//	            "definition": "water",
//	            "notes": [],
//	            "is_derived_term": false,
//	            "parent": "",
//	            "irregular_inflections": []
//	        }
//	    ]
//	}
//
// Files whose name ends in ".dz" are compressed using the dictzip format.
package interchange

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/pos"
)

// ErrInvalidRecord indicates a record that does not describe a valid entry.
var ErrInvalidRecord = errors.New("invalid record")

// Record is the interchange form of an entry.
type Record struct {
	Word                 string   `json:"word"`
	PartOfSpeech         string   `json:"pos"`
	WordClass            string   `json:"word_class"`
	Definition           string   `json:"definition"`
	Notes                []string `json:"notes"`
	IsDerivedTerm        bool     `json:"is_derived_term"`
	Parent               string   `json:"parent"`
	IrregularInflections []string `json:"irregular_inflections"`
}

// Document is a whole interchange document.
type Document struct {
	Items []*Record `json:"items"`
}

// FromEntry returns the record for e.
func FromEntry(e *entry.Entry) *Record {
	return &Record{
		Word:                 e.Word,
		PartOfSpeech:         string(e.PartOfSpeech),
		WordClass:            string(e.WordClass),
		Definition:           e.Definition,
		Notes:                cloneList(e.Notes),
		IsDerivedTerm:        e.IsDerivedTerm,
		Parent:               e.Parent,
		IrregularInflections: cloneList(e.IrregularInflections),
	}
}

// ToEntry returns the entry described by r. The entry is not validated.
//
// Older documents spell parts of speech with spaces ("irregular verb") and
// keep the trailing dot of word classes ("ii."). Both are normalized.
func (r *Record) ToEntry() *entry.Entry {
	class := entry.WordClass(r.WordClass)
	if c, ok := entry.ClassFromToken(r.WordClass); ok {
		class = c
	}
	return &entry.Entry{
		Word:                 r.Word,
		PartOfSpeech:         pos.PartOfSpeech(strings.ReplaceAll(r.PartOfSpeech, " ", "_")),
		WordClass:            class,
		Definition:           r.Definition,
		Notes:                cloneList(r.Notes),
		IsDerivedTerm:        r.IsDerivedTerm,
		Parent:               r.Parent,
		IrregularInflections: cloneList(r.IrregularInflections),
	}
}

// Encode returns the interchange document for the entries.
func Encode(entries []*entry.Entry) *Document {
	doc := &Document{
		Items: make([]*Record, 0, len(entries)),
	}
	for _, e := range entries {
		doc.Items = append(doc.Items, FromEntry(e))
	}
	return doc
}

// Decode returns the entries of the document. Each entry is validated.
func Decode(doc *Document) ([]*entry.Entry, error) {
	entries := make([]*entry.Entry, 0, len(doc.Items))
	for i, r := range doc.Items {
		if r == nil {
			return nil, fmt.Errorf("%w: item %d: null", ErrInvalidRecord, i)
		}
		e := r.ToEntry()
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("%w: item %d (%q): %w", ErrInvalidRecord, i, r.Word, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// cloneList copies l. Lists are never nil in the interchange form.
func cloneList(l []string) []string {
	c := make([]string, len(l))
	copy(c, l)
	return c
}
