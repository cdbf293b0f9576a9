// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package datuk implements a library for reading Datuk dictionary corpora in
// pure Go.
//
// A Datuk corpus is a UTF-8 text file of dictionary entries separated by
// blank lines. Each entry block is made up of:
//  1. A head line with five tab separated fields: the section letter, the
//     headword, its origin (etymology), its literal meaning and an
//     identifier.
//  2. Zero or more definition lines with two tab separated fields: the
//     grammatical type and the definition text.
//
// A field that is intentionally empty is written as a single underscore
// ("_"). The underscore is never returned by this package; such fields are
// read as the empty string.
//
// For example:
//
//	അ	അകമ്പ	സം. അ-കമ്പ < കമ്പ്	_	101
//	വി.	ഇളക്കമില്ലാത്ത, ഉറച്ച
//	വി.	കുലുക്കമില്ലാത്ത
//
// Blocks whose head line does not have exactly five fields are skipped.
// Corpus files may be compressed with gzip (.gz), dictzip (.dz) or xz
// (.xz).
package datuk
