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

// Package lexicon implements a library for parsing plain-text dictionaries in
// pure Go.
//
// A dictionary source is a line oriented text file written by hand. Each
// record is a headword followed by a part-of-speech abbreviation, an optional
// word class and a definition:
//
//	awa n. // water
//	  awana n. // lake
//	    A small body of water.
//	ake v. ii. // to eat
//	inflections: aka, aku
//
// Indented records are derived terms of the record before them. Lines without
// a " // " delimiter are notes or inflection lists for the preceding record.
//
// Parsed dictionaries can be written to and read from a JSON interchange
// format (see package interchange) and searched by headword or definition
// (see package search).
package lexicon
