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
	"errors"
	"fmt"
	"io/fs"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-lexicon"
	"github.com/ianlewis/go-lexicon/interchange"
)

func newParseCommand(cfg *config) *cli.Command {
	return &cli.Command{
		Name:         "parse",
		Usage:        "Parse a dictionary source into the interchange format",
		ArgsUsage:    "FILE",
		OnUsageError: usageError,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "compact",
				Usage:              "write compact JSON",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Usage:   "write to `PATH`, \"stdout\" or \"stderr\"",
				Aliases: []string{"o"},
				Value:   cfg.Output,
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%w: expected one FILE argument", ErrFlagParse)
			}
			path := c.Args().First()

			l, err := lexicon.Open(path, lexiconOptions(c))
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			if err != nil {
				return err
			}

			opts := &interchange.Options{
				Compact: c.Bool("compact"),
			}
			output := c.String("output")
			switch output {
			case "stdout":
				err = l.Write(c.App.Writer, opts)
			case "stderr":
				err = l.Write(c.App.ErrWriter, opts)
			default:
				err = l.WriteFile(output, opts)
			}
			if err != nil {
				return err
			}

			logger(c).Info("parsed dictionary",
				zap.String("path", path),
				zap.String("output", output),
				zap.Int("entries", len(l.Entries())),
			)
			return nil
		},
	}
}
