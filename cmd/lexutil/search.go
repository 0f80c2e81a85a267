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

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-lexicon/search"
)

func newSearchCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:         "search",
		Usage:        "Search a parsed dictionary",
		ArgsUsage:    "TERM",
		OnUsageError: usageError,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "read the interchange dictionary at `PATH`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "match against the \"word\" or the \"definition\"",
				Aliases: []string{"m"},
				Value:   "word",
			},
			&cli.BoolFlag{
				Name:               "fold",
				Usage:              "ignore case and extra whitespace when matching",
				DisableDefaultText: true,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one TERM argument", ErrFlagParse)
			}
			term := c.Args().First()

			mode, err := search.ParseMode(c.String("mode"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}

			l, err := loadDictionary(c, cfg)
			if err != nil {
				return err
			}

			results := l.Search(mode, term)
			logger(c).Debug("search",
				zap.String("term", term),
				zap.Stringer("mode", mode),
				zap.Int("results", len(results)),
			)

			r := newRenderer(c.App.Writer)
			for _, e := range results {
				if err := r.Render(e); err != nil {
					return fmt.Errorf("%w: %w", ErrLexutil, err)
				}
			}
			return nil
		},
	}
}
