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
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ianlewis/go-lexicon"
	"github.com/ianlewis/go-lexicon/internal/folding"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrLexutil is a parent error for all command errors.
var ErrLexutil = errors.New("lexutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrLexutil)

// ErrNotFound indicates that an input file does not exist.
var ErrNotFound = fmt.Errorf("%w: not found", ErrLexutil)

const loggerKey = "logger"

var copyrightNames = []string{
	"2026 Ian Lewis",
}

func newLexutilApp(cfg *config) *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Parse and search plain-text dictionaries.",
		Description: strings.Join([]string{
			"Dictionary utility written in Go.",
			"http://github.com/ianlewis/go-lexicon",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "enable debug logging",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Before: func(c *cli.Context) error {
			level := cfg.LogLevel
			if c.Bool("verbose") {
				level = "debug"
			}
			log, err := newLogger(level)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
			c.App.Metadata = map[string]interface{}{
				loggerKey: log,
			}
			return nil
		},
		After: func(c *cli.Context) error {
			// Sync errors on stderr are expected and ignored.
			_ = logger(c).Sync()
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}
			return cli.ShowAppHelp(c)
		},
		Commands: []*cli.Command{
			newParseCommand(cfg),
			newSearchCommand(cfg),
			newListCommand(cfg),
		},
	}
}

// usageError wraps flag errors reported by the cli package in ErrFlagParse.
func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// logger returns the application logger.
func logger(c *cli.Context) *zap.Logger {
	if log, ok := c.App.Metadata[loggerKey].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// lexiconOptions returns the options used to open dictionaries.
func lexiconOptions(c *cli.Context) *lexicon.Options {
	opts := &lexicon.Options{
		Logger: logger(c),
	}
	if c.Bool("fold") {
		opts.Folder = folding.Default
	}
	return opts
}

// loadDictionary loads the interchange dictionary named by the --dictionary
// flag.
func loadDictionary(c *cli.Context, cfg *config) (*lexicon.Lexicon, error) {
	path := c.String("dictionary")
	if path == "" {
		path = cfg.findDictionary()
	}

	l, err := lexicon.Load(path, lexiconOptions(c))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}

	logger(c).Debug("loaded dictionary",
		zap.String("path", path),
		zap.Int("entries", len(l.Entries())),
	)
	return l, nil
}
