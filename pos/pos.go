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

// Package pos defines the WordNet parts of speech.
//
// WordNet knows five syntactic categories but stores them in four files:
// adjective satellites live in the adjective files. POS is the five-valued
// category found in records, Storage is the four-valued category that
// selects a file. Code that touches files takes a Storage so that the
// translation cannot be skipped.
package pos

import (
	"fmt"

	"github.com/ianlewis/go-wordnet/internal/errs"
)

// POS is a part of speech as it appears in index and data records.
type POS byte

const (
	// Noun is the noun part of speech.
	Noun = POS('n')

	// Verb is the verb part of speech.
	Verb = POS('v')

	// Adjective is the head adjective part of speech.
	Adjective = POS('a')

	// AdjectiveSatellite is an adjective that is similar in meaning to a head
	// adjective. Satellites are stored in the adjective files.
	AdjectiveSatellite = POS('s')

	// Adverb is the adverb part of speech.
	Adverb = POS('r')
)

// Storage is a part of speech that has its own index and data file.
type Storage byte

const (
	StorageNoun      = Storage('n')
	StorageVerb      = Storage('v')
	StorageAdjective = Storage('a')
	StorageAdverb    = Storage('r')
)

// StorageOrder is the order in which files are read when all parts of speech
// are processed.
var StorageOrder = []Storage{
	StorageNoun,
	StorageVerb,
	StorageAdjective,
	StorageAdverb,
}

// Parse parses a one letter part of speech code.
func Parse(code string) (POS, error) {
	if len(code) == 1 {
		p := POS(code[0])
		if p.Valid() {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown part of speech %q", errs.ErrMalformed, code)
}

// Valid returns true if p is one of the five known parts of speech.
func (p POS) Valid() bool {
	switch p {
	case Noun, Verb, Adjective, AdjectiveSatellite, Adverb:
		return true
	default:
		return false
	}
}

// Storage returns the part of speech of the file that holds records of p.
func (p POS) Storage() Storage {
	if p == AdjectiveSatellite {
		return StorageAdjective
	}
	return Storage(p)
}

// Name returns the synset type name of p, e.g. "adjective satellite".
func (p POS) Name() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case AdjectiveSatellite:
		return "adjective satellite"
	case Adverb:
		return "adverb"
	default:
		return ""
	}
}

// String returns the one letter code.
func (p POS) String() string {
	return string(rune(p))
}

// Valid returns true if s is one of the four storage parts of speech.
func (s Storage) Valid() bool {
	switch s {
	case StorageNoun, StorageVerb, StorageAdjective, StorageAdverb:
		return true
	default:
		return false
	}
}

// Ext returns the file extension used by index and data files, e.g. "adj"
// for index.adj and data.adj.
func (s Storage) Ext() string {
	switch s {
	case StorageNoun:
		return "noun"
	case StorageVerb:
		return "verb"
	case StorageAdjective:
		return "adj"
	case StorageAdverb:
		return "adv"
	default:
		return ""
	}
}

// POS returns the record part of speech with the same code.
func (s Storage) POS() POS {
	return POS(s)
}

// String returns the one letter code.
func (s Storage) String() string {
	return string(rune(s))
}
