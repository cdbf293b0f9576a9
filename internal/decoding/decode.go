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

// Package decoding implements tolerant decoding of corpus text.
package decoding

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewTransformer returns a transformer that drops invalid UTF-8 and removes
// a leading UTF-8 byte order mark.
func NewTransformer() transform.Transformer {
	// Invalid bytes are dropped first so the BOM decoder never replaces
	// anything with U+FFFD.
	return transform.Chain(InvalidDropper{}, unicode.BOMOverride(transform.Nop))
}

// Decode reads all of r and returns it as valid UTF-8 text. Undecodable
// bytes are dropped and CRLF line endings are converted to LF.
func Decode(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, NewTransformer()))
	if err != nil {
		return "", fmt.Errorf("decoding text: %w", err)
	}
	return strings.ReplaceAll(string(b), "\r\n", "\n"), nil
}
