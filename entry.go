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
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// Definition is a single sense of a dictionary entry.
type Definition struct {
	typ        string
	definition string
}

// NewDefinition returns a new Definition.
func NewDefinition(typ, definition string) Definition {
	return Definition{
		typ:        typ,
		definition: definition,
	}
}

// Type returns the grammatical type (part of speech) of the definition.
func (d Definition) Type() string {
	return d.typ
}

// Definition returns the definition text.
func (d Definition) Definition() string {
	return d.definition
}

// Entry is a dictionary entry. Entries are not modified after they are
// created.
type Entry struct {
	letter      string
	word        string
	origin      string
	literal     string
	id          string
	definitions []Definition
}

// NewEntry returns a new Entry.
func NewEntry(letter, word, origin, literal, id string, definitions ...Definition) *Entry {
	return &Entry{
		letter:      letter,
		word:        word,
		origin:      origin,
		literal:     literal,
		id:          id,
		definitions: slices.Clone(definitions),
	}
}

// Letter returns the corpus section letter the entry is grouped under.
func (e *Entry) Letter() string {
	return e.letter
}

// Word returns the entry's headword.
func (e *Entry) Word() string {
	return e.word
}

// Origin returns the entry's etymology.
func (e *Entry) Origin() string {
	return e.origin
}

// Literal returns the entry's literal meaning.
func (e *Entry) Literal() string {
	return e.literal
}

// ID returns the corpus identifier of the entry. The identifier is an
// opaque string and is not guaranteed to be unique.
func (e *Entry) ID() string {
	return e.id
}

// Definitions returns a copy of the entry's definitions in corpus order.
func (e *Entry) Definitions() []Definition {
	return slices.Clone(e.definitions)
}

// String returns a string representation of the Entry.
func (e *Entry) String() string {
	var b strings.Builder
	b.WriteString(e.word)
	if e.origin != "" {
		fmt.Fprintf(&b, " (%s)", e.origin)
	}
	if e.literal != "" {
		fmt.Fprintf(&b, " [%s]", e.literal)
	}
	b.WriteString("\n")
	for i, d := range e.definitions {
		fmt.Fprintf(&b, "  %d. ", i+1)
		if d.typ != "" {
			b.WriteString(d.typ + " ")
		}
		b.WriteString(d.definition + "\n")
	}
	return b.String()
}

// MarshalText implements [encoding.TextMarshaler]. The entry is encoded as a
// corpus block without a trailing blank line. Empty fields are written as
// placeholders.
func (e *Entry) MarshalText() ([]byte, error) {
	var b strings.Builder
	b.WriteString(joinFields(e.letter, e.word, e.origin, e.literal, e.id))
	for _, d := range e.definitions {
		b.WriteString("\n")
		b.WriteString(joinFields(d.typ, d.definition))
	}
	return []byte(b.String()), nil
}

// joinFields joins fields with tabs, replacing empty fields with the
// placeholder.
func joinFields(fields ...string) string {
	for i, f := range fields {
		if f == "" {
			fields[i] = placeholder
		}
	}
	return strings.Join(fields, "\t")
}

type jsonDefinition struct {
	Type       string `json:"type"`
	Definition string `json:"definition"`
}

type jsonEntry struct {
	Letter      string           `json:"letter"`
	Word        string           `json:"word"`
	Origin      string           `json:"origin"`
	Literal     string           `json:"literal"`
	ID          string           `json:"id"`
	Definitions []jsonDefinition `json:"definitions"`
}

// MarshalJSON implements [json.Marshaler].
func (e *Entry) MarshalJSON() ([]byte, error) {
	je := jsonEntry{
		Letter:      e.letter,
		Word:        e.word,
		Origin:      e.origin,
		Literal:     e.literal,
		ID:          e.id,
		Definitions: make([]jsonDefinition, 0, len(e.definitions)),
	}
	for _, d := range e.definitions {
		je.Definitions = append(je.Definitions, jsonDefinition{
			Type:       d.typ,
			Definition: d.definition,
		})
	}

	// Origins contain '<' which should stay readable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(je); err != nil {
		return nil, fmt.Errorf("marshaling entry %q: %w", e.id, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
