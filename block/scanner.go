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

package block

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidMaxBlockSize indicates that MaxBlockSize is not a positive value.
var ErrInvalidMaxBlockSize = errors.New("invalid max block size")

// separator is the blank line that separates entry blocks.
var separator = []byte("\n\n")

// Scanner scans a corpus from start to end one block at a time.
type Scanner struct {
	s *bufio.Scanner
}

// ScannerOptions are options for scanning corpus blocks.
type ScannerOptions struct {
	// MaxBlockSize is the maximum size in bytes of a single block.
	MaxBlockSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxBlockSize: 1 << 20,
}

// NewScanner returns a new block scanner that reads blocks from r.
func NewScanner(r io.Reader, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.MaxBlockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxBlockSize, options.MaxBlockSize)
	}

	s := &Scanner{
		s: bufio.NewScanner(r),
	}
	// The buffer must hold a full block plus its separator.
	maxSize := options.MaxBlockSize + len(separator)
	s.s.Buffer(make([]byte, 0, min(maxSize, bufio.MaxScanTokenSize)), maxSize)
	s.s.Split(splitBlock)
	return s, nil
}

// Scan advances the scanner to the next block. It returns false if the scan
// stops either by reaching the end of the input or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("scanning blocks: %w", err)
	}
	return nil
}

// Block returns the most recent block scanned. The block does not include
// the separator.
func (s *Scanner) Block() string {
	return s.s.Text()
}

// splitBlock is a [bufio.SplitFunc] that splits blocks on blank lines.
func splitBlock(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.Index(data, separator); i >= 0 {
		// Found a blank line.
		return i + len(separator), data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

// Split splits text into blocks. It returns the same blocks as scanning the
// text with a Scanner whose MaxBlockSize is large enough to hold all of it.
func Split(text string) ([]string, error) {
	s, err := NewScanner(strings.NewReader(text), &ScannerOptions{
		MaxBlockSize: len(text) + 1,
	})
	if err != nil {
		return nil, err
	}

	var blocks []string
	for s.Scan() {
		blocks = append(blocks, s.Block())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return blocks, nil
}
