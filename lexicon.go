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

package lexicon

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/interchange"
	"github.com/ianlewis/go-lexicon/parser"
	"github.com/ianlewis/go-lexicon/search"
)

// Options are options for opening a Lexicon.
type Options struct {
	// Logger receives debug events while parsing.
	Logger *zap.Logger

	// Folder returns a [transform.Transformer] used by the search index. See
	// [search.Options].
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for opening a Lexicon.
var DefaultOptions = &Options{
	Logger: zap.NewNop(),
	Folder: search.DefaultOptions.Folder,
}

// Lexicon is a parsed dictionary.
type Lexicon struct {
	name    string
	entries []*entry.Entry
	index   *search.Index
}

// Parse parses a dictionary source read from r.
func Parse(r io.Reader, options *Options) (*Lexicon, error) {
	options = withDefaults(options)

	p, err := parser.New(r, &parser.Options{
		Logger: options.Logger,
	})
	if err != nil {
		return nil, err
	}
	entries, err := p.Parse()
	if err != nil {
		return nil, err
	}
	return newLexicon("", entries, options)
}

// Open parses the dictionary source file at path.
func Open(path string, options *Options) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %q: %w", path, err)
	}
	defer f.Close()

	l, err := Parse(f, options)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	l.name = nameFromPath(path)
	return l, nil
}

// OpenAll parses all dictionary sources (.txt files) under a directory. This
// function will return all successfully parsed dictionaries along with any
// errors that occurred. Each file is parsed independently.
func OpenAll(path string, options *Options) ([]*Lexicon, []error) {
	var lexicons []*Lexicon
	var errs []error
	if err := filepath.WalkDir(path, func(path string, info fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if !info.IsDir() && strings.ToLower(filepath.Ext(info.Name())) == ".txt" {
			l, err := Open(path, options)
			if err != nil {
				errs = append(errs, err)
				return nil
			}
			lexicons = append(lexicons, l)
		}
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return lexicons, errs
}

// Load reads a dictionary from the interchange file at path.
func Load(path string, options *Options) (*Lexicon, error) {
	entries, err := interchange.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := newLexicon(nameFromPath(path), entries, withDefaults(options))
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return l, nil
}

// Name returns the dictionary name. It is derived from the file name and is
// empty for dictionaries parsed from a reader.
func (l *Lexicon) Name() string {
	return l.name
}

// Entries returns the dictionary entries in source order. The entries must not
// be modified.
func (l *Lexicon) Entries() []*entry.Entry {
	return l.entries
}

// Index returns the dictionary's search index.
func (l *Lexicon) Index() *search.Index {
	return l.index
}

// Search queries the dictionary.
func (l *Lexicon) Search(mode search.Mode, term string) []*entry.Entry {
	return l.index.Search(mode, term)
}

// Write writes the dictionary in the interchange format to w.
func (l *Lexicon) Write(w io.Writer, options *interchange.Options) error {
	return interchange.Write(w, l.entries, options)
}

// WriteFile writes the dictionary in the interchange format to path.
func (l *Lexicon) WriteFile(path string, options *interchange.Options) error {
	return interchange.WriteFile(path, l.entries, options)
}

func newLexicon(name string, entries []*entry.Entry, options *Options) (*Lexicon, error) {
	idx, err := search.New(entries, &search.Options{
		Folder: options.Folder,
	})
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}
	return &Lexicon{
		name:    name,
		entries: entries,
		index:   idx,
	}, nil
}

func withDefaults(options *Options) *Options {
	o := *DefaultOptions
	if options != nil {
		if options.Logger != nil {
			o.Logger = options.Logger
		}
		if options.Folder != nil {
			o.Folder = options.Folder
		}
	}
	return &o
}

// nameFromPath returns the file name without any extensions.
func nameFromPath(path string) string {
	name, _, _ := strings.Cut(filepath.Base(path), ".")
	return name
}
