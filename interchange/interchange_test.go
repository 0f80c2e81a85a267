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
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-lexicon/entry"
	"github.com/ianlewis/go-lexicon/internal/testutil"
	"github.com/ianlewis/go-lexicon/parser"
	"github.com/ianlewis/go-lexicon/pos"
)

const testSource = `awa n. // water
  awana n. // lake
    A small body of water.
ake v. ii. // to eat & drink
inflections: aka, aku
`

func parseTestSource(t *testing.T) []*entry.Entry {
	t.Helper()
	entries, err := parser.ParseString(testSource)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return entries
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	entries := parseTestSource(t)

	got, err := Decode(Encode(entries))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Fatalf("Decode(Encode()) (-want, +got):\n%s", diff)
	}

	for _, e := range entries {
		if diff := cmp.Diff(e, FromEntry(e).ToEntry()); diff != "" {
			t.Fatalf("ToEntry(FromEntry()) (-want, +got):\n%s", diff)
		}
	}
}

func TestWriteRead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		options *Options
	}{
		{
			name:    "default",
			options: nil,
		},
		{
			name:    "compact",
			options: &Options{Compact: true},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			entries := parseTestSource(t)

			var buf bytes.Buffer
			if err := Write(&buf, entries, test.options); err != nil {
				t.Fatalf("Write: %v", err)
			}

			lines := strings.Count(strings.TrimSpace(buf.String()), "\n")
			if compact := test.options != nil && test.options.Compact; compact != (lines == 0) {
				t.Fatalf("Write: compact=%v but output has %d newlines", compact, lines)
			}
			if !strings.Contains(buf.String(), "to eat & drink") {
				t.Fatalf("Write: definition was escaped:\n%s", buf.String())
			}

			got, err := Read(&buf)
			if err != nil {
				t.Fatalf("Read: %v", err)
			}
			if diff := cmp.Diff(entries, got); diff != "" {
				t.Fatalf("Read (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestWrite_schema(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, []*entry.Entry{entry.New("awa", pos.Noun, entry.ClassNone, "water")}, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var doc map[string][]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := map[string][]map[string]any{
		"items": {
			{
				"word":                  "awa",
				"pos":                   "noun",
				"word_class":            "",
				"definition":            "water",
				"notes":                 []any{},
				"is_derived_term":       false,
				"parent":                "",
				"irregular_inflections": []any{},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("schema (-want, +got):\n%s", diff)
	}
}

func TestDecode_invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown pos",
			doc:  `{"items": [{"word": "awa", "pos": "n.", "definition": "water"}]}`,
		},
		{
			name: "empty word",
			doc:  `{"items": [{"word": "", "pos": "noun", "definition": "water"}]}`,
		},
		{
			name: "bad class",
			doc:  `{"items": [{"word": "awa", "pos": "noun", "word_class": "iv"}]}`,
		},
		{
			name: "derived without parent",
			doc:  `{"items": [{"word": "awa", "pos": "noun", "is_derived_term": true}]}`,
		},
		{
			name: "null item",
			doc:  `{"items": [null]}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := Read(strings.NewReader(test.doc))
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("Read: want: %v, got: %v", ErrInvalidRecord, err)
			}
		})
	}
}

func TestDecode_legacy(t *testing.T) {
	t.Parallel()

	got, err := Read(strings.NewReader(`{"items": [
		{"word": "ake", "pos": "irregular verb", "word_class": "ii.", "definition": "to eat"},
		{"word": "ïta", "pos": "stative verb", "word_class": "", "definition": "to be calm"}
	]}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []*entry.Entry{
		entry.New("ake", pos.IrregularVerb, entry.ClassII, "to eat"),
		entry.New("ïta", pos.StativeVerb, entry.ClassNone, "to be calm"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Read (-want, +got):\n%s", diff)
	}
}

func TestDecode_nilLists(t *testing.T) {
	t.Parallel()

	got, err := Read(strings.NewReader(`{"items": [{"word": "awa", "pos": "noun"}]}`))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []*entry.Entry{entry.New("awa", pos.Noun, entry.ClassNone, "")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Read (-want, +got):\n%s", diff)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"dictionary.json", "dictionary.json.dz", "DICTIONARY.JSON.DZ"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			entries := parseTestSource(t)
			path := filepath.Join(t.TempDir(), name)

			if err := WriteFile(path, entries, &Options{Compact: true}); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if diff := cmp.Diff(entries, got); diff != "" {
				t.Fatalf("ReadFile (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestReadFile_dictzip(t *testing.T) {
	t.Parallel()

	path := testutil.MakeTempFile(t, "dictionary.json.dz",
		[]byte(`{"items": [{"word": "awa", "pos": "noun", "definition": "water"}]}`),
		&testutil.MakeFileOptions{DictZip: true},
	)

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := []*entry.Entry{entry.New("awa", pos.Noun, entry.ClassNone, "water")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ReadFile (-want, +got):\n%s", diff)
	}
}

func TestReadFile_notFound(t *testing.T) {
	t.Parallel()

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("ReadFile: expected error")
	}
}
