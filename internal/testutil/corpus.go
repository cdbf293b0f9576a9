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

// Package testutil contains helpers for writing test corpora.
package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
	"github.com/ulikunitz/xz"
)

// Compression is a corpus file compression format.
type Compression int

const (
	// None writes the corpus uncompressed.
	None Compression = iota

	// Gzip compresses the corpus with gzip.
	Gzip

	// DictZip compresses the corpus with dictzip.
	DictZip

	// XZ compresses the corpus with xz.
	XZ
)

// MakeCorpusOptions are options for MakeTempCorpus.
type MakeCorpusOptions struct {
	// Ext is an optional file extension for the corpus file. Defaults to
	// '.corpus' followed by the extension of the compression format.
	Ext string

	// Compression is the compression format of the corpus file.
	Compression Compression
}

// GetExt returns the corpus file extension.
func (o *MakeCorpusOptions) GetExt() string {
	if o == nil {
		return ".corpus"
	}
	if o.Ext != "" {
		return o.Ext
	}
	switch o.Compression {
	case Gzip:
		return ".corpus.gz"
	case DictZip:
		return ".corpus.dz"
	case XZ:
		return ".corpus.xz"
	default:
		return ".corpus"
	}
}

// MakeTempCorpus writes data to a corpus file in a temporary directory and
// returns the file's path. The directory is removed when the test ends.
func MakeTempCorpus(t *testing.T, data string, opts *MakeCorpusOptions) string {
	t.Helper()
	if opts == nil {
		opts = &MakeCorpusOptions{}
	}

	path := filepath.Join(t.TempDir(), "datuk"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch opts.Compression {
	case Gzip:
		w = gzip.NewWriter(f)
	case DictZip:
		w, err = dictzip.NewWriter(f)
	case XZ:
		w, err = xz.NewWriter(f)
	default:
		w = f
	}
	if err != nil {
		t.Fatal(err)
	}

	if _, err := io.WriteString(w, data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}
