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
	"errors"
	"fmt"
)

var (
	// ErrParse is the parent error for all parse errors.
	ErrParse = errors.New("parse error")

	// ErrUnknownPartOfSpeech indicates that an entry line has no part of
	// speech abbreviation found in the part-of-speech table.
	ErrUnknownPartOfSpeech = fmt.Errorf("%w: cannot find part of speech in table", ErrParse)

	// ErrMissingWord indicates that an entry line has no headword before the
	// " // " delimiter.
	ErrMissingWord = fmt.Errorf("%w: missing word", ErrParse)

	// ErrOrphanLine indicates that a note, inflection list, or derived entry
	// appeared before any entry it could be attached to.
	ErrOrphanLine = fmt.Errorf("%w: continuation line without preceding entry", ErrParse)
)

// Error is a fatal error for a single source line.
type Error struct {
	// Line is the 1-based line number in the source.
	Line int

	// Text is the raw source line.
	Text string

	// Err is the underlying error.
	Err error
}

// Error implements [error.Error].
func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
