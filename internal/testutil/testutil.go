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

// Package testutil contains helpers for writing test dictionary files.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeFileOptions are options for creating test files.
type MakeFileOptions struct {
	// Dir is the directory to create the file in. Defaults to a new
	// temporary directory.
	Dir string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool
}

// GetDir returns the directory to write files to.
func (o *MakeFileOptions) GetDir(t *testing.T) string {
	t.Helper()
	if o != nil && o.Dir != "" {
		return o.Dir
	}
	return t.TempDir()
}

// MakeTempFile writes data to a file called name and returns its path.
func MakeTempFile(t *testing.T, name string, data []byte, opts *MakeFileOptions) string {
	t.Helper()

	path := filepath.Join(opts.GetDir(t), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if opts != nil && opts.DictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(data); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if _, err := f.Write(data); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeSource writes a dictionary source file called name and returns its
// path.
func MakeSource(t *testing.T, name, text string, opts *MakeFileOptions) string {
	t.Helper()
	return MakeTempFile(t, name, []byte(text), opts)
}
