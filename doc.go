// Copyright 2021 Google LLC
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

// Package wordnet implements a library for reading WordNet lexical databases
// in pure Go.
//
// A WordNet database directory contains several files for each of the four
// storage parts of speech (noun, verb, adj and adv):
//  1. An index.<pos> file that lists every lemma with the byte offsets of the
//     synsets that contain it. The index file can be compressed using gzip.
//  2. A data.<pos> file that holds one synset per line. Synsets are read at
//     the byte offsets found in the index. The data file can be compressed
//     using the dictzip format.
//  3. An optional <pos>.exc file listing irregular inflected forms.
//
// An optional lexnames file maps lexicographer file numbers to names.
//
// Index files are loaded into memory by [WordNet.Init]. Data files are only
// read on demand.
//
// More info on the database format can be found at this URL:
// https://wordnet.princeton.edu/documentation/wndb5wn
package wordnet
