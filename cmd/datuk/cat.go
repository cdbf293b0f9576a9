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
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-datuk"
)

// ErrUnsupportedFormat indicates an unknown output format.
var ErrUnsupportedFormat = fmt.Errorf("%w: unsupported format", ErrDatukCLI)

func catCommand() *cli.Command {
	return &cli.Command{
		Name:      "cat",
		Usage:     "Print corpus entries",
		UsageText: "cat [--format text|json|corpus]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "print entries in `FORMAT` (text, json, corpus)",
				Aliases: []string{"f"},
				Value:   "text",
			},
		},
		Action: func(c *cli.Context) error {
			var write func(io.Writer, *datuk.Entry, int) error
			switch format := c.String("format"); format {
			case "text":
				write = writeText
			case "json":
				enc := json.NewEncoder(c.App.Writer)
				enc.SetEscapeHTML(false)
				write = func(_ io.Writer, e *datuk.Entry, _ int) error {
					//nolint:wrapcheck // wrapped by the caller.
					return enc.Encode(e)
				}
			case "corpus":
				write = writeCorpus
			default:
				return fmt.Errorf("%w: %w: %q", ErrFlagParse, ErrUnsupportedFormat, format)
			}

			r, err := openCorpus(c)
			if err != nil {
				return err
			}

			i := 0
			for e, err := range r.All() {
				if err != nil {
					return fmt.Errorf("reading entries: %w", err)
				}
				if err := write(c.App.Writer, e, i); err != nil {
					return fmt.Errorf("writing entry %q: %w", e.ID(), err)
				}
				i++
			}
			return nil
		},
	}
}

// writeText writes the entry in human readable form. Markup in definitions
// is rendered as plain text.
func writeText(w io.Writer, e *datuk.Entry, i int) error {
	var defs []datuk.Definition
	for _, d := range e.Definitions() {
		defs = append(defs, datuk.NewDefinition(d.Type(), plainText(d.Definition())))
	}
	plain := datuk.NewEntry(e.Letter(), e.Word(), e.Origin(), e.Literal(), e.ID(), defs...)

	sep := ""
	if i > 0 {
		sep = "\n"
	}
	_, err := fmt.Fprintf(w, "%s%s", sep, plain)
	//nolint:wrapcheck // wrapped by the caller.
	return err
}

// writeCorpus writes the entry in corpus format.
func writeCorpus(w io.Writer, e *datuk.Entry, i int) error {
	b, err := e.MarshalText()
	if err != nil {
		//nolint:wrapcheck // wrapped by the caller.
		return err
	}
	if i > 0 {
		if _, err := io.WriteString(w, "\n"); err != nil {
			//nolint:wrapcheck // wrapped by the caller.
			return err
		}
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	//nolint:wrapcheck // wrapped by the caller.
	return err
}

// markupRegex matches HTML tags and character references.
var markupRegex = regexp.MustCompile(`</?[a-zA-Z][^>]*>|&(#[0-9]+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

// plainText converts definition markup to plain text. Text without markup,
// such as "x < y", is returned unchanged.
func plainText(s string) string {
	if !markupRegex.MatchString(s) {
		return s
	}
	return html2text.HTML2Text(s)
}
