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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/ianlewis/go-lexicon/entry"
)

const (
	// headingAlphabet is the source language's alphabet in lower case.
	headingAlphabet = "abcdefghijklmnopqrstuvwxyz'ïöäæ"

	// maxHeadingLen is the maximum length in runes of a section heading.
	maxHeadingLen = 4
)

// Options are options for a Parser.
type Options struct {
	// Logger receives debug events such as skipped headings.
	Logger *zap.Logger
}

// DefaultOptions is the default options for a Parser.
var DefaultOptions = &Options{
	Logger: zap.NewNop(),
}

type sourceLine struct {
	num  int
	text string
}

// Parser parses a dictionary source. The whole source is read into memory
// when the Parser is created.
type Parser struct {
	// lines are the unconsumed source lines in order.
	lines []sourceLine

	// entries is the parsed result. Continuation lines attach to its tail.
	entries []*entry.Entry

	fold   cases.Caser
	logger *zap.Logger
}

// New reads the full dictionary source from r and returns a new Parser.
func New(r io.Reader, options *Options) (*Parser, error) {
	if options == nil {
		options = DefaultOptions
	}

	p := &Parser{
		fold:   cases.Fold(),
		logger: DefaultOptions.Logger,
	}
	if options.Logger != nil {
		p.logger = options.Logger
	}

	s := NewScanner(r)
	for s.Scan() {
		p.lines = append(p.lines, sourceLine{
			num:  s.Line(),
			text: s.Text(),
		})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary source: %w", err)
	}

	return p, nil
}

// ParseString parses the dictionary source text.
func ParseString(text string) ([]*entry.Entry, error) {
	p, err := New(strings.NewReader(text), nil)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse consumes the source and returns the parsed entries in source order.
// Parsing stops at the first error, in which case no entries are returned.
// The returned error is an *Error.
func (p *Parser) Parse() ([]*entry.Entry, error) {
	for len(p.lines) > 0 {
		l := p.lines[0]
		p.lines = p.lines[1:]

		// Blank lines, including the "\r" left by CRLF line endings.
		if strings.TrimSpace(l.text) == "" {
			continue
		}

		if p.isHeading(l.text) {
			p.logger.Debug("skipping heading",
				zap.Int("line", l.num),
				zap.String("text", l.text),
			)
			continue
		}

		if err := p.parseLine(l.text); err != nil {
			p.entries = nil
			return nil, &Error{
				Line: l.num,
				Text: l.text,
				Err:  err,
			}
		}
	}

	return p.entries, nil
}

// parseLine classifies a line and attaches it to the result.
func (p *Parser) parseLine(text string) error {
	line, err := Classify(text)
	if err != nil {
		return err
	}

	if line.Kind == KindDefinition && !line.Entry.IsDerivedTerm {
		p.entries = append(p.entries, line.Entry)
		return nil
	}

	// Everything else is attached to the most recent entry.
	if len(p.entries) == 0 {
		return fmt.Errorf("%w: %s", ErrOrphanLine, line.Kind)
	}
	last := p.entries[len(p.entries)-1]

	switch line.Kind {
	case KindNote:
		last.AddNote(line.Note)
	case KindInflections:
		last.SetInflections(line.Inflections)
	case KindDefinition:
		line.Entry.DeriveFrom(last)
		p.entries = append(p.entries, line.Entry)
	}

	return nil
}

// isHeading returns true if the line is a section heading such as "Aa".
func (p *Parser) isHeading(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError || r == ' ' || r == '\t' {
		return false
	}
	if !strings.Contains(headingAlphabet, p.fold.String(string(r))) {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(text)) <= maxHeadingLen
}
