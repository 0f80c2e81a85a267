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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/k3a/html2text"

	"github.com/ianlewis/go-lexicon/entry"
)

const indent = "    "

// renderer pretty prints entries. Colors are only used when w is a terminal
// that supports them.
type renderer struct {
	w io.Writer

	word    lipgloss.Style
	bold    lipgloss.Style
	note    lipgloss.Style
	parent  lipgloss.Style
	heading lipgloss.Style
}

func newRenderer(w io.Writer) *renderer {
	r := lipgloss.NewRenderer(w)
	return &renderer{
		w:       w,
		word:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		bold:    r.NewStyle().Bold(true),
		note:    r.NewStyle().Faint(true),
		parent:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		heading: r.NewStyle().Bold(true).Underline(true),
	}
}

// Render writes a single entry.
//
//	awana, noun (ii):
//	    lake
//	    A small body of water.
//	    Derived From awa
//	    Irregular Inflections: awane, awanu
func (r *renderer) Render(e *entry.Entry) error {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(r.word.Render(e.Word))
	b.WriteString(", ")
	b.WriteString(e.PartOfSpeech.Display())
	if e.WordClass != entry.ClassNone {
		b.WriteString(" ")
		b.WriteString(r.bold.Render("(" + string(e.WordClass) + ")"))
		b.WriteString(":")
	}
	b.WriteString("\n")

	b.WriteString(indent)
	b.WriteString(plainText(e.Definition))
	b.WriteString("\n")

	for _, n := range e.Notes {
		b.WriteString(indent)
		b.WriteString(r.note.Render(n))
		b.WriteString("\n")
	}

	if e.IsDerivedTerm {
		b.WriteString(indent)
		b.WriteString(r.bold.Render("Derived From "))
		b.WriteString(r.parent.Render(e.Parent))
		b.WriteString("\n")
	}

	if len(e.IrregularInflections) > 0 {
		b.WriteString(indent)
		b.WriteString(r.bold.Render("Irregular Inflections:"))
		b.WriteString(" ")
		b.WriteString(strings.Join(e.IrregularInflections, ", "))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return fmt.Errorf("writing entry %q: %w", e.Word, err)
	}
	return nil
}

// headerFormatter formats table headers.
func (r *renderer) headerFormatter(format string, vals ...interface{}) string {
	return r.heading.Render(fmt.Sprintf(format, vals...))
}

// plainText decodes character entities such as "&amp;" in definitions. All
// other text, including '<' and runs of spaces, is printed as is.
func plainText(s string) string {
	return strings.TrimSpace(html2text.HTMLEntitiesToText(s))
}
