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

// Package errs holds the sentinel errors shared by the wordnet packages so
// that errors.Is works across package boundaries.
package errs

import "errors"

var (
	// ErrMalformed indicates a line that violates the index or data line
	// grammar.
	ErrMalformed = errors.New("malformed record")

	// ErrUninitialized indicates that the database has not been loaded.
	ErrUninitialized = errors.New("wordnet not initialized")

	// ErrNotFound indicates that a word is not in the index.
	ErrNotFound = errors.New("not found")

	// ErrMissingFile indicates that a part of speech has no backing data file.
	ErrMissingFile = errors.New("missing data file")
)
