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

package testutil

import (
	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/pos"
)

// ShellGloss is the gloss of the "test" sense meaning a shell.
const ShellGloss = "a hard outer covering as of some amoebas and sea urchins"

// DanglingOffset is a pointer target offset past the end of every fixture
// data file.
const DanglingOffset = 99999999

// Lexnames is a fixture lexnames file.
const Lexnames = "00\tadj.all\t3\n" +
	"02\tadv.all\t4\n" +
	"04\tnoun.act\t1\n" +
	"05\tnoun.animal\t1\n" +
	"17\tnoun.object\t1\n" +
	"31\tverb.cognition\t2\n"

// Exceptions are fixture exception lists.
var Exceptions = map[pos.Storage]string{
	pos.StorageNoun:      "sea_urchins sea_urchin\ntrials trial\n",
	pos.StorageVerb:      "tried try\n",
	pos.StorageAdjective: "harder hard\nhardest hard\n",
}

// Fixture returns a small database around the word "test". Synsets are
// listed in data file order.
func Fixture() []*Synset {
	return []*Synset{
		{
			ID:         "test.n.01",
			POS:        pos.Noun,
			LexFilenum: 4,
			Words:      []data.Word{{Lemma: "trial", LexID: 0}, {Lemma: "test", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "@", Target: "experiment.n.01"},
				{Symbol: "+", Target: "test.v.01", SourceTarget: "0201"},
			},
			Gloss: `the act of testing something; "in the experimental trials the amount of carbon was measured separately"`,
		},
		{
			ID:         "test.n.02",
			POS:        pos.Noun,
			LexFilenum: 5,
			Words:      []data.Word{{Lemma: "test", LexID: 1}},
			Pointers: []Pointer{
				{Symbol: "@", Target: "covering.n.01"},
			},
			Gloss: ShellGloss,
		},
		{
			ID:         "covering.n.01",
			POS:        pos.Noun,
			LexFilenum: 17,
			Words:      []data.Word{{Lemma: "covering", LexID: 0}, {Lemma: "natural_covering", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "~", Target: "test.n.02"},
			},
			Gloss: "a natural object that covers or envelops",
		},
		{
			ID:         "experiment.n.01",
			POS:        pos.Noun,
			LexFilenum: 4,
			Words:      []data.Word{{Lemma: "experiment", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "~", Target: "test.n.01"},
			},
			Gloss: "the act of conducting a controlled test or investigation",
		},
		{
			ID:         "sea_urchin.n.01",
			POS:        pos.Noun,
			LexFilenum: 5,
			Words:      []data.Word{{Lemma: "sea_urchin", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "@", Offset: DanglingOffset, POS: pos.Noun},
			},
			Gloss: "shallow-water echinoderm having a rigid spherical body covered with long movable spines",
		},
		{
			ID:         "test.v.01",
			POS:        pos.Verb,
			LexFilenum: 31,
			Words: []data.Word{
				{Lemma: "test", LexID: 0},
				{Lemma: "prove", LexID: 0},
				{Lemma: "try", LexID: 0},
			},
			Pointers: []Pointer{
				{Symbol: "@", Target: "examine.v.01"},
				{Symbol: "+", Target: "test.n.01", SourceTarget: "0102"},
			},
			Frames: []data.Frame{{Number: 8, Word: 0}, {Number: 9, Word: 0}},
			Gloss:  `put to the test, as for its quality, or give experimental use to; "This approach has been tried with good results"`,
		},
		{
			ID:         "examine.v.01",
			POS:        pos.Verb,
			LexFilenum: 31,
			Words:      []data.Word{{Lemma: "examine", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "~", Target: "test.v.01"},
			},
			Frames: []data.Frame{{Number: 8, Word: 0}},
			Gloss:  "observe, check out, and look over carefully or inspect",
		},
		{
			ID:         "hard.a.01",
			POS:        pos.Adjective,
			LexFilenum: 0,
			Words:      []data.Word{{Lemma: "hard", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "&", Target: "tough.s.01"},
				{Symbol: "!", Target: "soft.a.01", SourceTarget: "0101"},
			},
			Gloss: `not easily penetrated; "a hard surface"`,
		},
		{
			ID:         "tough.s.01",
			POS:        pos.AdjectiveSatellite,
			LexFilenum: 0,
			Words:      []data.Word{{Lemma: "tough", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "&", Target: "hard.a.01"},
			},
			Gloss: `resistant to cutting or chewing; "tough stringy meat"`,
		},
		{
			ID:         "soft.a.01",
			POS:        pos.Adjective,
			LexFilenum: 0,
			Words:      []data.Word{{Lemma: "soft", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "!", Target: "hard.a.01", SourceTarget: "0101"},
			},
			Gloss: `yielding readily to pressure or weight`,
		},
		{
			ID:         "hard.r.01",
			POS:        pos.Adverb,
			LexFilenum: 2,
			Words:      []data.Word{{Lemma: "hard", LexID: 0}},
			Pointers: []Pointer{
				{Symbol: "\\", Target: "hard.a.01", SourceTarget: "0101"},
			},
			Gloss: `with effort or force or vigor; "he hit the ball hard"`,
		},
	}
}
