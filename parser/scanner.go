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
	"bufio"
	"bytes"
	"io"
	"math"
)

// Scanner scans dictionary source text line by line. Lines are split on '\n'
// only. Any other bytes, including '\r', are part of the line.
type Scanner struct {
	s    *bufio.Scanner
	line int
}

// NewScanner returns a new Scanner reading from r. Line length is limited only
// by available memory.
func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	s.s.Split(splitLine)
	return s
}

// Scan advances to the next line. It returns false if the scan stops either by
// reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	if !s.s.Scan() {
		return false
	}
	s.line++
	return true
}

// Text returns the current line without its line terminator.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// Line returns the 1-based number of the current line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// splitLine splits the input on newline bytes.
func splitLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
