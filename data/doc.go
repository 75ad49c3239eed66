// Copyright 2026 Google LLC
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

// Package data implements reading WordNet data files.
//
// There is one data file per storage part of speech (data.noun, data.verb,
// data.adj, data.adv). Each synset is stored on its own line and is addressed
// by the byte offset of the start of that line, which is also the first
// field of the line:
//
//	synset_offset lex_filenum ss_type w_cnt word lex_id [word lex_id...] p_cnt [ptr...] [frames...] | gloss
//
// w_cnt and lex_id are hexadecimal. Each ptr is four fields:
//
//	pointer_symbol synset_offset pos source/target
//
// Data files begin with license lines that do not start with an offset.
package data
