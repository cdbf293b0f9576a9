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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"

	"github.com/ianlewis/go-datuk/block"
	"github.com/ianlewis/go-datuk/internal/decoding"
)

// ErrDatuk is a parent error for all errors returned by this package.
var ErrDatuk = errors.New("datuk")

// ErrRead indicates that the corpus could not be opened or read.
var ErrRead = fmt.Errorf("%w: reading corpus", ErrDatuk)

// ErrMalformedDefinition indicates a definition line that does not have
// exactly two tab separated fields.
var ErrMalformedDefinition = fmt.Errorf("%w: malformed definition line", ErrDatuk)

// ErrInvalidPolicy indicates an unknown DefinitionPolicy.
var ErrInvalidPolicy = fmt.Errorf("%w: invalid definition policy", ErrDatuk)

// DefinitionPolicy determines how malformed definition lines are handled.
type DefinitionPolicy int

const (
	// SkipLine drops the malformed line and keeps the rest of the entry.
	SkipLine DefinitionPolicy = iota

	// SkipBlock drops the entry containing the malformed line.
	SkipBlock

	// FailScan stops the scan with an error wrapping ErrMalformedDefinition.
	FailScan
)

// String implements [fmt.Stringer].
func (p DefinitionPolicy) String() string {
	switch p {
	case SkipLine:
		return "skip-line"
	case SkipBlock:
		return "skip-block"
	case FailScan:
		return "fail"
	default:
		return fmt.Sprintf("DefinitionPolicy(%d)", int(p))
	}
}

// ParseDefinitionPolicy returns the policy with the given name as returned
// by [DefinitionPolicy.String].
func ParseDefinitionPolicy(name string) (DefinitionPolicy, error) {
	for _, p := range []DefinitionPolicy{SkipLine, SkipBlock, FailScan} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
}

// Options are options for reading a corpus.
type Options struct {
	// Logger receives diagnostics. If nil, [slog.Default] is used.
	Logger *slog.Logger

	// DefinitionPolicy determines how malformed definition lines are
	// handled.
	DefinitionPolicy DefinitionPolicy
}

// DefaultOptions is the default options for a Reader.
var DefaultOptions = &Options{
	DefinitionPolicy: SkipLine,
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Reader reads dictionary entries from a corpus held in memory. A Reader is
// safe for concurrent use.
type Reader struct {
	// blocks are the raw entry blocks in corpus order. They are never
	// modified after the Reader is created.
	blocks []string

	options Options
}

// Open reads the corpus at the given path. Compressed corpora are detected
// by the file extension. The returned error wraps [ErrRead] if the file
// cannot be read.
func Open(path string, options *Options) (*Reader, error) {
	if options == nil {
		options = DefaultOptions
	}

	text, err := readFile(path)
	if err != nil {
		options.logger().Error("can't read corpus", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %q: %w", ErrRead, path, err)
	}

	return newReader(text, options)
}

// New reads the entire corpus from r. The returned error wraps [ErrRead] if
// r returns an error.
func New(r io.Reader, options *Options) (*Reader, error) {
	if options == nil {
		options = DefaultOptions
	}

	text, err := decoding.Decode(r)
	if err != nil {
		options.logger().Error("can't read corpus", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return newReader(text, options)
}

func newReader(text string, options *Options) (*Reader, error) {
	switch options.DefinitionPolicy {
	case SkipLine, SkipBlock, FailScan:
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidPolicy, options.DefinitionPolicy)
	}

	blocks, err := block.Split(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return &Reader{
		blocks:  blocks,
		options: *options,
	}, nil
}

// Len returns the number of raw blocks in the corpus, including blocks that
// do not decode into an entry.
func (r *Reader) Len() int {
	return len(r.blocks)
}

// Scanner returns a new Scanner positioned at the start of the corpus.
func (r *Reader) Scanner() *Scanner {
	return &Scanner{
		r:   r,
		log: r.options.logger(),
	}
}

// All returns an iterator over the corpus entries in corpus order. Each
// call starts from the beginning of the corpus. If the scan fails, the
// final pair yielded has a nil entry and a non-nil error.
func (r *Reader) All() iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		s := r.Scanner()
		for s.Scan() {
			if !yield(s.Entry(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Entries returns all corpus entries in corpus order. If the scan fails,
// the entries read before the failure are returned along with the error.
func (r *Reader) Entries() ([]*Entry, error) {
	var entries []*Entry
	for e, err := range r.All() {
		if err != nil {
			return entries, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// readFile reads and decodes the corpus file at path.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		z, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("opening gzip reader: %w", err)
		}
		defer z.Close()
		r = z
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("opening dictzip reader: %w", err)
		}
		defer z.Close()
		r = z
	case ".xz":
		z, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("opening xz reader: %w", err)
		}
		r = z
	}

	return decoding.Decode(r)
}
