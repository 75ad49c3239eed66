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

package wordnet

import "github.com/ianlewis/go-wordnet/internal/errs"

var (
	// ErrUninitialized is returned when the database has not been loaded
	// with Init.
	ErrUninitialized = errs.ErrUninitialized

	// ErrNotFound is returned by Lookup when a word is not in the index.
	ErrNotFound = errs.ErrNotFound

	// ErrMalformedRecord is returned when an index or data line violates the
	// line grammar.
	ErrMalformedRecord = errs.ErrMalformed

	// ErrMissingFile is returned when a part of speech has no data file.
	ErrMissingFile = errs.ErrMissingFile
)
