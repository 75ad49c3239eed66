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

package data

import (
	"strconv"
	"strings"

	"github.com/ianlewis/go-wordnet/pos"
)

// Synset is a set of synonymous word senses parsed from a data file line.
type Synset struct {
	// Glossary is the definition and example sentences.
	Glossary string

	// Offset is the byte offset of the synset in its data file.
	Offset int64

	// LexFilenum is the number of the lexicographer file that contains the
	// synset.
	LexFilenum int

	// POS is the synset type.
	POS pos.POS

	// SynsetType is the name of POS, e.g. "adjective satellite".
	SynsetType string

	// WordCount is the number of words in the synset.
	WordCount int

	// Words are the word senses in the synset.
	Words []Word

	// PointerCount is the number of pointers from the synset.
	PointerCount int

	// Pointers are the pointers from the synset to other synsets.
	Pointers []Pointer

	// Frames are the generic sentence frames of verb synsets.
	Frames []Frame
}

// WithTargets returns a copy of s whose pointers carry the given resolved
// targets. targets[i] is the target of s.Pointers[i] and may be nil. s is not
// modified.
func (s *Synset) WithTargets(targets []*Synset) *Synset {
	c := *s
	c.Pointers = make([]Pointer, len(s.Pointers))
	for i, p := range s.Pointers {
		if i < len(targets) {
			p.Target = targets[i]
		}
		c.Pointers[i] = p
	}
	return &c
}

// Lemmas returns the lemmas of the synset's words.
func (s *Synset) Lemmas() []string {
	lemmas := make([]string, len(s.Words))
	for i, w := range s.Words {
		lemmas[i] = w.Lemma
	}
	return lemmas
}

// Word is a word sense in a synset.
type Word struct {
	// Lemma is the word as it appears in the data file. Adjectives may carry
	// a syntactic marker suffix such as "(p)".
	Lemma string

	// LexID identifies the sense within the lexicographer file.
	LexID int
}

// Marker returns the adjective syntactic marker of the word, one of "(p)",
// "(a)" or "(ip)", or the empty string.
func (w Word) Marker() string {
	for _, m := range []string{"(p)", "(a)", "(ip)"} {
		if strings.HasSuffix(w.Lemma, m) {
			return m
		}
	}
	return ""
}

// Text returns the word without its marker and with underscores replaced by
// spaces.
func (w Word) Text() string {
	return strings.ReplaceAll(strings.TrimSuffix(w.Lemma, w.Marker()), "_", " ")
}

// Pointer is a relation from one synset to another.
type Pointer struct {
	// Symbol is the pointer symbol, e.g. "@" for a hypernym.
	Symbol string

	// Offset is the byte offset of the target synset.
	Offset int64

	// POS is the part of speech of the target synset.
	POS pos.POS

	// SourceTarget is the four digit hexadecimal source/target field. "0000"
	// means the pointer is between whole synsets.
	SourceTarget string

	// Target is the resolved target synset. It is nil if the pointer was not
	// resolved.
	Target *Synset
}

// Source returns the 1-based number of the source word of a lexical pointer
// or zero for a semantic pointer.
func (p Pointer) Source() int {
	return p.hexPart(0)
}

// TargetWord returns the 1-based number of the target word of a lexical
// pointer or zero for a semantic pointer.
func (p Pointer) TargetWord() int {
	return p.hexPart(2)
}

// Name returns a descriptive name for the pointer symbol, or the symbol
// itself if it is unknown.
func (p Pointer) Name() string {
	if name, ok := pointerNames[p.Symbol]; ok {
		return name
	}
	return p.Symbol
}

func (p Pointer) hexPart(i int) int {
	if len(p.SourceTarget) != 4 {
		return 0
	}
	n, err := strconv.ParseUint(p.SourceTarget[i:i+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(n)
}

var pointerNames = map[string]string{
	"!":  "antonym",
	"@":  "hypernym",
	"@i": "instance hypernym",
	"~":  "hyponym",
	"~i": "instance hyponym",
	"#m": "member holonym",
	"#s": "substance holonym",
	"#p": "part holonym",
	"%m": "member meronym",
	"%s": "substance meronym",
	"%p": "part meronym",
	"=":  "attribute",
	"+":  "derivationally related form",
	";c": "domain of synset - topic",
	"-c": "member of this domain - topic",
	";r": "domain of synset - region",
	"-r": "member of this domain - region",
	";u": "domain of synset - usage",
	"-u": "member of this domain - usage",
	"*":  "entailment",
	">":  "cause",
	"^":  "also see",
	"$":  "verb group",
	"&":  "similar to",
	"<":  "participle of verb",
	"\\": "pertainym",
}

// Frame is a generic sentence frame of a verb synset.
type Frame struct {
	// Number is the frame number.
	Number int

	// Word is the 1-based number of the word the frame applies to or zero if
	// it applies to all words in the synset.
	Word int
}
