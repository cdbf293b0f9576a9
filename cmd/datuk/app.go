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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-datuk"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// corpusName is the file name of the corpus in the default locations.
const corpusName = "datuk.corpus"

// ErrDatukCLI is a parent error for all command errors.
var ErrDatukCLI = errors.New("datuk")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDatukCLI)

// ErrNoCorpus indicates that no corpus file was given or found.
var ErrNoCorpus = fmt.Errorf("%w: no corpus found", ErrDatukCLI)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newLogger returns a logger writing to the app's error writer.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: level,
	}))
}

// findCorpus returns the first corpus file that exists in the default
// locations.
func findCorpus() string {
	for _, path := range corpusLocations() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// openCorpus opens the corpus selected by the global flags.
func openCorpus(c *cli.Context) (*datuk.Reader, error) {
	policy, err := datuk.ParseDefinitionPolicy(c.String("on-malformed"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	path := c.String("corpus")
	if path == "" {
		path = findCorpus()
	}
	if path == "" {
		return nil, fmt.Errorf("%w: searched %s", ErrNoCorpus, strings.Join(corpusLocations(), ", "))
	}

	log := newLogger(c)
	log.Debug("opening corpus", "path", path, "on-malformed", policy)

	//nolint:wrapcheck // errors are already wrapped by the datuk package.
	return datuk.Open(path, &datuk.Options{
		Logger:           log,
		DefinitionPolicy: policy,
	})
}

func newDatukApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Read Datuk dictionary corpora.",
		Description: strings.Join([]string{
			"Datuk corpus utility written in Go.",
			"http://github.com/ianlewis/go-datuk",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "corpus",
				Usage:   "read the corpus from `FILE` (default: first corpus found in the data directories)",
				Aliases: []string{"c"},
				EnvVars: []string{"DATUK_CORPUS"},
			},
			&cli.StringFlag{
				Name:    "on-malformed",
				Usage:   "handle malformed definition lines with `POLICY` (skip-line, skip-block, fail)",
				EnvVars: []string{"DATUK_ON_MALFORMED"},
				Value:   datuk.SkipLine.String(),
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				Aliases:            []string{"v"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		HideVersion:     true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand(),
			catCommand(),
			statsCommand(),
		},
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
	}
}

// run runs the app and returns the process exit code.
func run(app *cli.App, args []string, stderr io.Writer) int {
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", app.Name, err)
		if errors.Is(err, ErrFlagParse) {
			return ExitCodeFlagParseError
		}
		return ExitCodeUnknownError
	}
	return ExitCodeSuccess
}
