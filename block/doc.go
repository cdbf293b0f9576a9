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

// Package block implements splitting Datuk corpus text into entry blocks.
//
// Entries in a corpus are separated by a blank line, that is, two
// consecutive line feeds. Block boundaries are exactly the positions where
// the text would be cut by splitting it on "\n\n":
//  1. "a\n\nb" yields the blocks "a" and "b".
//  2. "a\n\n\nb" yields "a" and "\nb". The extra line feed stays with the
//     following block and is removed when the block is trimmed.
//  3. "a\n\n\n\nb" yields "a", "" and "b".
//
// Callers are expected to trim each block and to ignore blocks that do not
// decode into an entry.
package block
