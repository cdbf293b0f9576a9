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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List corpus entries",
		UsageText: "list [--letter LETTER]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "letter",
				Usage: "only list entries in section `LETTER`",
			},
		},
		Action: func(c *cli.Context) error {
			r, err := openCorpus(c)
			if err != nil {
				return err
			}

			letter := c.String("letter")
			tbl := table.New("ID", "Letter", "Word", "Origin", "Literal", "Definitions").
				WithWriter(c.App.Writer)
			for e, err := range r.All() {
				if err != nil {
					return fmt.Errorf("listing entries: %w", err)
				}
				if letter != "" && e.Letter() != letter {
					continue
				}
				tbl.AddRow(e.ID(), e.Letter(), e.Word(), e.Origin(), e.Literal(), len(e.Definitions()))
			}
			tbl.Print()

			return nil
		},
	}
}
