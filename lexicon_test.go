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
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/interchange"
	"github.com/ianlewis/go-lexicon/internal/folding"
	"github.com/ianlewis/go-lexicon/internal/testutil"
	"github.com/ianlewis/go-lexicon/parser"
	"github.com/ianlewis/go-lexicon/pos"
	"github.com/ianlewis/go-lexicon/search"
)

const testSource = `Aa

awa n. // water
  awana n. // lake
ake v. ii. // to eat
inflections: aka, aku
`

func wordsOf(entries []*entry.Entry) []string {
	var w []string
	for _, e := range entries {
		w = append(w, e.Word)
	}
	return w
}

func TestParse(t *testing.T) {
	t.Parallel()

	l, err := Parse(strings.NewReader(testSource), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if want, got := "", l.Name(); want != got {
		t.Fatalf("Name; want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff([]string{"awa", "awana", "ake"}, wordsOf(l.Entries())); diff != "" {
		t.Fatalf("Entries (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"awa", "awana"}, wordsOf(l.Search(search.ModeWord, "awa"))); diff != "" {
		t.Fatalf("Search (-want, +got):\n%s", diff)
	}
	if want, got := 3, l.Index().Len(); want != got {
		t.Fatalf("Index().Len; want: %d, got: %d", want, got)
	}
}

func TestParse_error(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("this note has no entry"), nil)
	if !errors.Is(err, parser.ErrOrphanLine) {
		t.Fatalf("Parse: want: %v, got: %v", parser.ErrOrphanLine, err)
	}
}

func TestOpen(t *testing.T) {
	t.Parallel()

	path := testutil.MakeSource(t, "rikatisyi.txt", testSource, nil)

	l, err := Open(path, &Options{Folder: folding.Default})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want, got := "rikatisyi", l.Name(); want != got {
		t.Fatalf("Name; want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff([]string{"awa", "awana"}, wordsOf(l.Search(search.ModeWord, "AWA"))); diff != "" {
		t.Fatalf("Search (-want, +got):\n%s", diff)
	}
}

func TestOpen_notFound(t *testing.T) {
	t.Parallel()

	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Fatal("Open: expected error")
	}
}

func TestOpen_badPartOfSpeech(t *testing.T) {
	t.Parallel()

	path := testutil.MakeSource(t, "bad.txt", "awa adj. // wet", nil)

	_, err := Open(path, nil)
	if !errors.Is(err, parser.ErrUnknownPartOfSpeech) {
		t.Fatalf("Open: want: %v, got: %v", parser.ErrUnknownPartOfSpeech, err)
	}
	var perr *parser.Error
	if !errors.As(err, &perr) || perr.Line != 1 {
		t.Fatalf("Open: want *parser.Error on line 1, got: %v", err)
	}
}

func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	opts := &testutil.MakeFileOptions{Dir: dir}
	testutil.MakeSource(t, "one.txt", "awa n. // water", opts)
	testutil.MakeSource(t, "two.TXT", "ake v. // to eat", opts)
	testutil.MakeSource(t, "broken.txt", "ake vb. // to eat", opts)
	testutil.MakeSource(t, "readme.md", "not a dictionary", opts)

	lexicons, errs := OpenAll(dir, nil)
	if len(errs) != 1 || !errors.Is(errs[0], parser.ErrUnknownPartOfSpeech) {
		t.Fatalf("OpenAll: unexpected errors: %v", errs)
	}

	var names []string
	for _, l := range lexicons {
		names = append(names, l.Name())
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"one", "two"}, names); diff != "" {
		t.Fatalf("OpenAll (-want, +got):\n%s", diff)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"dictionary.json", "dictionary.json.dz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			l, err := Parse(strings.NewReader(testSource), nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}

			path := filepath.Join(t.TempDir(), name)
			if err := l.WriteFile(path, &interchange.Options{Compact: true}); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}

			loaded, err := Load(path, nil)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if want, got := "dictionary", loaded.Name(); want != got {
				t.Fatalf("Name; want: %q, got: %q", want, got)
			}
			if diff := cmp.Diff(l.Entries(), loaded.Entries()); diff != "" {
				t.Fatalf("Load (-want, +got):\n%s", diff)
			}

			ake := loaded.Index().Lookup("ake")
			if len(ake) != 1 {
				t.Fatalf("Lookup: want 1 entry, got %d", len(ake))
			}
			if want, got := pos.Verb, ake[0].PartOfSpeech; want != got {
				t.Fatalf("PartOfSpeech; want: %q, got: %q", want, got)
			}
		})
	}
}
