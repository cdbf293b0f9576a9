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

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Print corpus statistics",
		UsageText: "stats",
		Action: func(c *cli.Context) error {
			r, err := openCorpus(c)
			if err != nil {
				return err
			}

			// Letters are printed in corpus order.
			var letters []string
			counts := map[string]int{}

			s := r.Scanner()
			for s.Scan() {
				l := s.Entry().Letter()
				if _, ok := counts[l]; !ok {
					letters = append(letters, l)
				}
				counts[l]++
			}
			if err := s.Err(); err != nil {
				return fmt.Errorf("reading entries: %w", err)
			}

			stats := s.Stats()
			table.New("Blocks", "Entries", "Skipped Blocks", "Skipped Lines").
				WithWriter(c.App.Writer).
				AddRow(stats.Blocks, stats.Entries, stats.SkippedBlocks, stats.SkippedLines).
				Print()

			fmt.Fprintln(c.App.Writer)

			tbl := table.New("Letter", "Entries").WithWriter(c.App.Writer)
			for _, l := range letters {
				tbl.AddRow(l, counts[l])
			}
			tbl.Print()

			return nil
		},
	}
}
