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
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var entryOpts = cmp.AllowUnexported(Entry{}, Definition{})

const akampa = "അ\tഅകമ്പ\tസം. അ-കമ്പ < കമ്പ്\t_\t101\n" +
	"വി.\tഇളക്കമില്ലാത്ത, ഉറച്ച\n" +
	"വി.\tകുലുക്കമില്ലാത്ത"

func newTestReader(t *testing.T, text string, opts *Options) *Reader {
	t.Helper()

	r, err := New(strings.NewReader(text), opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

// discard returns options that send logs nowhere.
func discard(policy DefinitionPolicy) *Options {
	return &Options{
		Logger:           slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
		DefinitionPolicy: policy,
	}
}

// TestScanner tests decoding entries with the default policy.
func TestScanner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected []*Entry
		stats    Stats
	}{
		{
			name:     "empty corpus",
			text:     "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			text:     " \n\n\t\n  \n",
			expected: nil,
		},
		{
			name: "single entry",
			text: akampa,
			expected: []*Entry{
				NewEntry("അ", "അകമ്പ", "സം. അ-കമ്പ < കമ്പ്", "", "101",
					NewDefinition("വി.", "ഇളക്കമില്ലാത്ത, ഉറച്ച"),
					NewDefinition("വി.", "കുലുക്കമില്ലാത്ത"),
				),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "entry without definitions",
			text: "a\thoge\t_\t_\t1",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1"),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "placeholders everywhere",
			text: "_\t_\t_\t_\t_\n_\t_",
			expected: []*Entry{
				NewEntry("", "", "", "", "", NewDefinition("", "")),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "placeholder only replaces whole fields",
			text: "a\t_hoge\tfu_ga\t__\t1\nn.\t_x",
			expected: []*Entry{
				NewEntry("a", "_hoge", "fu_ga", "__", "1", NewDefinition("n.", "_x")),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "definition order",
			text: "a\thoge\t_\t_\t1\nn.\tone\nv.\ttwo\nadj.\tthree",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1",
					NewDefinition("n.", "one"),
					NewDefinition("v.", "two"),
					NewDefinition("adj.", "three"),
				),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "entry order",
			text: "a\thoge\t_\t_\t3\n\nb\tfuga\t_\t_\t1\n\nc\tpico\t_\t_\t2",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "3"),
				NewEntry("b", "fuga", "", "", "1"),
				NewEntry("c", "pico", "", "", "2"),
			},
			stats: Stats{Blocks: 3, Entries: 3},
		},
		{
			name: "malformed head skipped",
			text: "a\thoge\t_\t_\t1\n\nnoise\n\nb\tfuga\t_\t1\nn.\tx\n\nc\tpico\t_\t_\t3\t4\n\nd\tbar\t_\t_\t5",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1"),
				NewEntry("d", "bar", "", "", "5"),
			},
			stats: Stats{Blocks: 5, Entries: 2, SkippedBlocks: 3},
		},
		{
			name: "extra blank lines",
			text: "\n\na\thoge\t_\t_\t1\n\n\n\n\nb\tfuga\t_\t_\t2\n\n",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1"),
				NewEntry("b", "fuga", "", "", "2"),
			},
			// "\n\n\n\n\n" splits into an empty block and "\nb...".
			stats: Stats{Blocks: 3, Entries: 2, SkippedBlocks: 1},
		},
		{
			name: "definition lines are trimmed",
			text: "a\thoge\t_\t_\t1\n  n.\tone  \n \t\nv.\ttwo",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1",
					NewDefinition("n.", "one"),
					NewDefinition("v.", "two"),
				),
			},
			stats: Stats{Blocks: 1, Entries: 1},
		},
		{
			name: "malformed definition line skipped",
			text: "a\thoge\t_\t_\t1\nn.\tone\nbroken\nv.\ttwo\tthree\nadj.\tfour",
			expected: []*Entry{
				NewEntry("a", "hoge", "", "", "1",
					NewDefinition("n.", "one"),
					NewDefinition("adj.", "four"),
				),
			},
			stats: Stats{Blocks: 1, Entries: 1, SkippedLines: 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			r := newTestReader(t, test.text, discard(SkipLine))
			s := r.Scanner()

			var entries []*Entry
			for s.Scan() {
				entries = append(entries, s.Entry())
			}
			if err := s.Err(); err != nil {
				t.Fatalf("Err: %v", err)
			}

			if diff := cmp.Diff(test.expected, entries, entryOpts); diff != "" {
				t.Errorf("unexpected entries (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.stats, s.Stats()); diff != "" {
				t.Errorf("unexpected stats (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestScanner_SkipBlock tests the SkipBlock policy.
func TestScanner_SkipBlock(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newTestReader(t, "a\thoge\t_\t_\t1\nbroken\n\nb\tfuga\t_\t_\t2\nn.\tone", &Options{
		Logger:           slog.New(slog.NewTextHandler(&buf, nil)),
		DefinitionPolicy: SkipBlock,
	})

	s := r.Scanner()
	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}

	expected := []*Entry{
		NewEntry("b", "fuga", "", "", "2", NewDefinition("n.", "one")),
	}
	if diff := cmp.Diff(expected, entries, entryOpts); diff != "" {
		t.Errorf("unexpected entries (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(Stats{Blocks: 2, Entries: 1, SkippedBlocks: 1}, s.Stats()); diff != "" {
		t.Errorf("unexpected stats (-want, +got):\n%s", diff)
	}
	if got := buf.String(); !strings.Contains(got, "word=hoge") {
		t.Errorf("expected diagnostic naming the word, got: %q", got)
	}
}

// TestScanner_FailScan tests the FailScan policy.
func TestScanner_FailScan(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, "a\thoge\t_\t_\t1\n\nb\tfuga\t_\t_\t2\nbroken\n\nc\tpico\t_\t_\t3", discard(FailScan))

	s := r.Scanner()
	var entries []*Entry
	for s.Scan() {
		entries = append(entries, s.Entry())
	}
	if err := s.Err(); !errors.Is(err, ErrMalformedDefinition) {
		t.Fatalf("Err: want: %v, got: %v", ErrMalformedDefinition, err)
	}
	if s.Scan() {
		t.Errorf("Scan: expected false after failure")
	}

	expected := []*Entry{
		NewEntry("a", "hoge", "", "", "1"),
	}
	if diff := cmp.Diff(expected, entries, entryOpts); diff != "" {
		t.Errorf("unexpected entries (-want, +got):\n%s", diff)
	}
}

// TestScanner_SkipLineLogs tests that skipped lines are logged.
func TestScanner_SkipLineLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := newTestReader(t, "a\thoge\t_\t_\t1\nn.\tone\nbroken", &Options{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	})
	if _, err := r.Entries(); err != nil {
		t.Fatalf("Entries: %v", err)
	}

	got := buf.String()
	for _, want := range []string{"level=WARN", "block=0", "line=3", "word=hoge"} {
		if !strings.Contains(got, want) {
			t.Errorf("log: want %q in %q", want, got)
		}
	}
}

// TestReader_Restartable tests that each walk starts from the beginning.
func TestReader_Restartable(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, akampa+"\n\nb\tfuga\t_\t_\t2\n\nc\tpico\t_\t_\t3", discard(SkipLine))

	// Stop the first walk early.
	for e, err := range r.All() {
		if err != nil {
			t.Fatalf("All: %v", err)
		}
		if e.ID() != "101" {
			t.Fatalf("unexpected first entry: %q", e.ID())
		}
		break
	}

	first, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	second, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if want, got := 3, len(first); want != got {
		t.Fatalf("unexpected # of entries; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff(first, second, entryOpts); diff != "" {
		t.Errorf("walks differ (-first, +second):\n%s", diff)
	}
}

// TestReader_EntriesMatchesAll tests that Entries is All drained in order.
func TestReader_EntriesMatchesAll(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, akampa+"\n\nnoise\n\nb\tfuga\t_\t_\t2\nn.\tx", discard(SkipLine))

	var all []*Entry
	for e, err := range r.All() {
		if err != nil {
			t.Fatalf("All: %v", err)
		}
		all = append(all, e)
	}

	entries, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if diff := cmp.Diff(all, entries, entryOpts); diff != "" {
		t.Errorf("unexpected entries (-All, +Entries):\n%s", diff)
	}
}

// TestReader_AllError tests that All yields the scan error last.
func TestReader_AllError(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, "a\thoge\t_\t_\t1\n\nb\tfuga\t_\t_\t2\nbroken", discard(FailScan))

	var ids []string
	var gotErr error
	for e, err := range r.All() {
		if err != nil {
			gotErr = err
			continue
		}
		ids = append(ids, e.ID())
	}
	if !errors.Is(gotErr, ErrMalformedDefinition) {
		t.Errorf("All: want: %v, got: %v", ErrMalformedDefinition, gotErr)
	}
	if diff := cmp.Diff([]string{"1"}, ids); diff != "" {
		t.Errorf("unexpected ids (-want, +got):\n%s", diff)
	}

	entries, err := r.Entries()
	if !errors.Is(err, ErrMalformedDefinition) {
		t.Errorf("Entries: want: %v, got: %v", ErrMalformedDefinition, err)
	}
	if want, got := 1, len(entries); want != got {
		t.Errorf("unexpected # of entries; want: %d, got: %d", want, got)
	}
}

// TestReader_ConcurrentScanners tests independent concurrent walks.
func TestReader_ConcurrentScanners(t *testing.T) {
	t.Parallel()

	r := newTestReader(t, akampa+"\n\nb\tfuga\t_\t_\t2\n\nc\tpico\t_\t_\t3", discard(SkipLine))
	want, err := r.Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}

	results := make(chan []*Entry)
	for range 4 {
		go func() {
			got, _ := r.Entries()
			results <- got
		}()
	}
	for range 4 {
		if diff := cmp.Diff(want, <-results, entryOpts); diff != "" {
			t.Errorf("unexpected entries (-want, +got):\n%s", diff)
		}
	}
}
