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

import (
	"log/slog"
	"os"

	"github.com/ianlewis/go-wordnet/data"
)

const (
	// DirEnv is the environment variable holding the default database
	// directory.
	DirEnv = "WORDNET_DIR"

	// SystemDir is where distributions commonly install the database.
	SystemDir = "/usr/share/wordnet/dict"

	// MaxPointerDepth is the number of pointer hops resolved by Lookup and
	// Synsets. Targets of resolved pointers are never resolved themselves.
	MaxPointerDepth = 1
)

// Options are options for a WordNet.
type Options struct {
	// Logger receives debug logs. Nothing is logged if Logger is nil.
	Logger *slog.Logger

	// File are options for reading data files.
	File *data.FileOptions

	// Concurrency is the maximum number of records read concurrently by a
	// single call.
	Concurrency int
}

// DefaultOptions is the default options for a WordNet.
var DefaultOptions = &Options{
	File:        data.DefaultFileOptions,
	Concurrency: 16,
}

// LookupOptions are options for Lookup and Synsets.
type LookupOptions struct {
	// SkipPointers disables pointer resolution. Pointer targets are left nil.
	SkipPointers bool
}

func (o *LookupOptions) depth() int {
	if o != nil && o.SkipPointers {
		return 0
	}
	return MaxPointerDepth
}

// DefaultDir returns the database directory used when Init is given an empty
// directory: the value of $WORDNET_DIR or SystemDir.
func DefaultDir() string {
	if dir := os.Getenv(DirEnv); dir != "" {
		return dir
	}
	return SystemDir
}
