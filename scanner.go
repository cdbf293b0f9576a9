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

package datuk

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	// placeholder marks an intentionally empty field.
	placeholder = "_"

	headFields       = 5
	definitionFields = 2
)

// Stats are counts collected while scanning a corpus.
type Stats struct {
	// Blocks is the number of blocks scanned.
	Blocks int

	// Entries is the number of entries produced.
	Entries int

	// SkippedBlocks is the number of blocks that did not produce an entry.
	SkippedBlocks int

	// SkippedLines is the number of malformed definition lines dropped from
	// entries that were produced.
	SkippedLines int
}

// Scanner scans the entries of a corpus from start to end.
type Scanner struct {
	r   *Reader
	log *slog.Logger

	// next is the index of the next block to decode.
	next  int
	entry *Entry
	err   error
	stats Stats
}

// Scan advances the scanner to the next entry. It returns false if the scan
// stops either by reaching the end of the corpus or an error.
func (s *Scanner) Scan() bool {
	s.entry = nil
	if s.err != nil {
		return false
	}

	for s.next < len(s.r.blocks) {
		i := s.next
		s.next++
		s.stats.Blocks++

		e, skipped, err := s.decodeBlock(i, s.r.blocks[i])
		if err != nil {
			s.err = err
			return false
		}
		if e == nil {
			s.stats.SkippedBlocks++
			continue
		}

		s.stats.Entries++
		s.stats.SkippedLines += skipped
		s.entry = e
		return true
	}

	return false
}

// Entry returns the most recent entry scanned.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Stats returns the counts collected so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// decodeBlock decodes the block at index i. It returns a nil entry if the
// block should be skipped, and the number of definition lines dropped.
func (s *Scanner) decodeBlock(i int, b string) (*Entry, int, error) {
	lines := strings.Split(strings.TrimSpace(b), "\n")

	head, ok := splitFields(lines[0], headFields)
	if !ok {
		return nil, 0, nil
	}

	e := &Entry{
		letter:  head[0],
		word:    head[1],
		origin:  head[2],
		literal: head[3],
		id:      head[4],
	}

	var skipped int
	for n, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields, ok := splitFields(line, definitionFields)
		if !ok {
			// Line numbers are 1-based and relative to the block.
			lineNum := n + 2
			switch s.r.options.DefinitionPolicy {
			case FailScan:
				return nil, 0, fmt.Errorf("%w: block %d, line %d (%q): got %d fields",
					ErrMalformedDefinition, i, lineNum, e.word, len(strings.Split(line, "\t")))
			case SkipBlock:
				s.log.Warn("skipping entry with malformed definition",
					"block", i, "line", lineNum, "word", e.word)
				return nil, 0, nil
			default:
				s.log.Warn("skipping malformed definition",
					"block", i, "line", lineNum, "word", e.word)
				skipped++
				continue
			}
		}

		e.definitions = append(e.definitions, Definition{
			typ:        fields[0],
			definition: fields[1],
		})
	}

	return e, skipped, nil
}

// splitFields splits line on tabs. It returns false if the line does not
// have exactly n fields. Placeholder fields are returned as empty strings.
func splitFields(line string, n int) ([]string, bool) {
	fields := strings.Split(line, "\t")
	if len(fields) != n {
		return nil, false
	}
	for i, f := range fields {
		if f == placeholder {
			fields[i] = ""
		}
	}
	return fields, true
}
