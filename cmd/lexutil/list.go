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
	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func newListCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:         "list",
		Usage:        "List the entries of a parsed dictionary",
		OnUsageError: usageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "read the interchange dictionary at `PATH`",
				Aliases: []string{"d"},
			},
		},
		Action: func(c *cli.Context) error {
			l, err := loadDictionary(c, cfg)
			if err != nil {
				return err
			}

			r := newRenderer(c.App.Writer)
			tbl := table.New("Word", "Part of Speech", "Class", "Derived From", "Notes").
				WithWriter(c.App.Writer).
				WithHeaderFormatter(r.headerFormatter)
			for _, e := range l.Entries() {
				tbl.AddRow(e.Word, e.PartOfSpeech.Display(), string(e.WordClass), e.Parent, len(e.Notes))
			}
			tbl.Print()
			return nil
		},
	}
}
