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
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestScanner tests Scanner.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "no trailing newline",
			input:    "a\nb",
			expected: []string{"a", "b"},
		},
		{
			name:     "trailing newline",
			input:    "a\nb\n",
			expected: []string{"a", "b"},
		},
		{
			name:     "blank lines",
			input:    "a\n\n\nb",
			expected: []string{"a", "", "", "b"},
		},
		{
			name:     "carriage return kept",
			input:    "a\r\nb",
			expected: []string{"a\r", "b"},
		},
		{
			name:     "indentation kept",
			input:    "a\n  b\n\tc",
			expected: []string{"a", "  b", "\tc"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := NewScanner(strings.NewReader(test.input))
			var got []string
			for s.Scan() {
				got = append(got, s.Text())
				if want, line := len(got), s.Line(); want != line {
					t.Fatalf("Line; want: %d, got: %d", want, line)
				}
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}

			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Scan (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_longLine(t *testing.T) {
	t.Parallel()

	long := "awa n. // " + strings.Repeat("a", 4*1024*1024)
	s := NewScanner(strings.NewReader(long + "\nake v. // to eat"))
	var got []string
	for s.Scan() {
		got = append(got, s.Text())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "ake v. // to eat" {
		t.Fatalf("Scan: unexpected lines: %d", len(got))
	}
}
