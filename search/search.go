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

// Package search implements queries over parsed dictionary entries.
//
// Queries are plain linear scans over the entries. Results are returned in
// the order the entries appear in the dictionary.
package search

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/index"
)

// ErrInvalidMode indicates an unknown search mode name.
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects the entry field a query is matched against.
type Mode int

const (
	// ModeWord matches against the headword.
	ModeWord Mode = iota

	// ModeDefinition matches against the definition.
	ModeDefinition
)

// ParseMode parses a mode name. Names are case insensitive and surrounding
// whitespace is ignored.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word":
		return ModeWord, nil
	case "definition":
		return ModeDefinition, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case ModeWord:
		return "word"
	case ModeDefinition:
		return "definition"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options are options for an Index.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on both queries and entry
	// fields before they are compared.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for an Index. Queries are matched
// exactly as given.
var DefaultOptions = &Options{
	Folder: func() transform.Transformer {
		return transform.Nop
	},
}

// folded is an entry along with its folded search fields.
type folded struct {
	word       string
	definition string
	entry      *entry.Entry
}

// Index is a search index over an immutable list of entries.
type Index struct {
	entries []*folded

	// words is sorted by folded headword.
	words *index.Index[*folded]

	fold func() transform.Transformer
}

// New returns a new Index over entries. The entries must not be modified
// while the Index is in use.
func New(entries []*entry.Entry, options *Options) (*Index, error) {
	if options == nil {
		options = DefaultOptions
	}

	idx := &Index{
		fold: DefaultOptions.Folder,
	}
	if options.Folder != nil {
		idx.fold = options.Folder
	}

	idx.entries = make([]*folded, 0, len(entries))
	for _, e := range entries {
		word, _, err := transform.String(idx.fold(), e.Word)
		if err != nil {
			return nil, fmt.Errorf("folding word %q: %w", e.Word, err)
		}
		definition, _, err := transform.String(idx.fold(), e.Definition)
		if err != nil {
			return nil, fmt.Errorf("folding definition of %q: %w", e.Word, err)
		}

		idx.entries = append(idx.entries, &folded{
			word:       word,
			definition: definition,
			entry:      e,
		})
	}

	idx.words = index.New(idx.entries, func(f *folded) string {
		return f.word
	})

	return idx, nil
}

// Len returns the number of entries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entries returns all entries in dictionary order.
func (idx *Index) Entries() []*entry.Entry {
	entries := make([]*entry.Entry, 0, len(idx.entries))
	for _, f := range idx.entries {
		entries = append(entries, f.entry)
	}
	return entries
}

// ByWord returns the entries whose headword contains term.
func (idx *Index) ByWord(term string) []*entry.Entry {
	q := idx.foldQuery(term)
	return idx.filter(func(f *folded) bool {
		return f.word == q || strings.Contains(f.word, q)
	})
}

// ByDefinition returns the entries whose definition contains term.
func (idx *Index) ByDefinition(term string) []*entry.Entry {
	q := idx.foldQuery(term)
	return idx.filter(func(f *folded) bool {
		return strings.Contains(f.definition, q)
	})
}

// Search returns the entries matching term using the given mode. Unknown
// modes match nothing.
func (idx *Index) Search(mode Mode, term string) []*entry.Entry {
	switch mode {
	case ModeWord:
		return idx.ByWord(term)
	case ModeDefinition:
		return idx.ByDefinition(term)
	default:
		return nil
	}
}

// Lookup returns the entries whose headword equals word.
func (idx *Index) Lookup(word string) []*entry.Entry {
	var result []*entry.Entry
	for _, f := range idx.words.Find(idx.foldQuery(word)) {
		result = append(result, f.entry)
	}
	return result
}

func (idx *Index) filter(match func(*folded) bool) []*entry.Entry {
	var result []*entry.Entry
	for _, f := range idx.entries {
		if match(f) {
			result = append(result, f.entry)
		}
	}
	return result
}

// foldQuery folds a query. A query that cannot be folded is used as is.
func (idx *Index) foldQuery(q string) string {
	s, _, err := transform.String(idx.fold(), q)
	if err != nil {
		return q
	}
	return s
}
