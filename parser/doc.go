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

// Package parser implements parsing of plain-text dictionary sources.
//
// A dictionary source is a UTF-8 text file with one record per line. Each
// line is one of:
//  1. An entry line: `<word> [modifier tokens] // <definition>`. Modifier
//     tokens include a part-of-speech abbreviation (see package pos) and an
//     optional word class token (`i.`, `ii.` or `iii.`).
//  2. An indented entry line (leading space or tab) which is a derived or
//     alternate form of the entry preceding it.
//  3. A note line that carries no " // " delimiter. Notes belong to the
//     preceding entry.
//  4. An inflection list of the form `inflections: <form>, <form>, ...`
//     which sets the irregular inflections of the preceding entry.
//
// Blank lines and short section headings (e.g. "Aa") are skipped.
//
// Parsing is a single pass over the lines of the source. Continuation lines
// are always attached to the most recently parsed entry.
package parser
