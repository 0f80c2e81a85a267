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

package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-lexicon/entry"
)

// Options are options for writing interchange documents.
type Options struct {
	// Compact disables indentation.
	Compact bool
}

// DefaultOptions is the default options for writing interchange documents.
var DefaultOptions = &Options{
	Compact: false,
}

// indent is the indentation used for non-compact output.
const indent = "    "

// Write writes the interchange document for entries to w.
func Write(w io.Writer, entries []*entry.Entry, options *Options) error {
	if options == nil {
		options = DefaultOptions
	}

	enc := json.NewEncoder(w)
	// Definitions are free text and are written as-is.
	enc.SetEscapeHTML(false)
	if !options.Compact {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(Encode(entries)); err != nil {
		return fmt.Errorf("encoding dictionary: %w", err)
	}
	return nil
}

// Read reads an interchange document from r and returns its entries.
func Read(r io.Reader) ([]*entry.Entry, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding dictionary: %w", err)
	}
	return Decode(&doc)
}

// WriteFile writes the interchange document for entries to the file at path.
// The file is compressed with dictzip if path has a ".dz" extension.
func WriteFile(path string, entries []*entry.Entry, options *Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		// The dictzip writer may have already closed f.
		if cErr := f.Close(); cErr != nil && !errors.Is(cErr, os.ErrClosed) && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cErr)
		}
	}()

	if !isDictzip(path) {
		return Write(f, entries, options)
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating dictzip writer for %q: %w", path, err)
	}
	if err := Write(z, entries, options); err != nil {
		_ = z.Close()
		return err
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("closing dictzip writer for %q: %w", path, err)
	}
	return nil
}

// ReadFile reads the interchange document at path and returns its entries.
func ReadFile(path string) ([]*entry.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	if !isDictzip(path) {
		return Read(f)
	}

	z, err := dictzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("creating dictzip reader for %q: %w", path, err)
	}
	return Read(io.NewSectionReader(z, 0, math.MaxInt64))
}

func isDictzip(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".dz"
}
