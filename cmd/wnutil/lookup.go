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
package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/pos"
)

// pointerSymbols are always printed with a synset regardless of whether the
// target contains the looked up word.
var pointerSymbols = []string{"*", "="}

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "Look up a word",
	ArgsUsage: "WORD",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "skip-pointers",
			Usage:              "do not print related synsets",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}
		word := c.Args().First()

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}

		opts := &wordnet.LookupOptions{
			SkipPointers: c.Bool("skip-pointers"),
		}
		synsets, err := wn.Lookup(c.Context, word, opts)
		if errors.Is(err, wordnet.ErrNotFound) {
			// Irregular forms such as "geese" are only in the exception
			// lists.
			synsets, err = lookupBaseForms(c, wn, word, opts, err)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "\n  %s\n\n", word)
		for _, s := range synsets {
			printSynset(c.App.Writer, wn, s, word, !opts.SkipPointers)
		}
		return nil
	},
}

func lookupBaseForms(c *cli.Context, wn *wordnet.WordNet, word string, opts *wordnet.LookupOptions, notFound error) ([]*data.Synset, error) {
	var bases []string
	for _, p := range []pos.POS{pos.Noun, pos.Verb, pos.Adjective, pos.Adverb} {
		for _, b := range wn.BaseForms(word, p) {
			if !slices.Contains(bases, b) {
				bases = append(bases, b)
			}
		}
	}
	if len(bases) == 0 {
		return nil, notFound
	}

	var synsets []*data.Synset
	for _, b := range bases {
		s, err := wn.Lookup(c.Context, b, opts)
		if errors.Is(err, wordnet.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, s...)
	}
	if len(synsets) == 0 {
		return nil, notFound
	}
	return synsets, nil
}

func printSynset(w io.Writer, wn *wordnet.WordNet, s *data.Synset, word string, includePointers bool) {
	words := make([]string, len(s.Words))
	for i, sw := range s.Words {
		words[i] = sw.Text()
	}

	fmt.Fprintf(w, "  type: %s\n", s.SynsetType)
	if lexfile, ok := wn.LexFileName(s.LexFilenum); ok {
		fmt.Fprintf(w, "  lexfile: %s\n", lexfile)
	}
	fmt.Fprintf(w, "  words: %s\n", strings.Join(words, " "))
	fmt.Fprintf(w, "  %s\n\n", s.Glossary)

	if !includePointers {
		return
	}
	for _, ptr := range s.Pointers {
		if ptr.Target == nil {
			continue
		}

		// Print the target only if it contains a word starting with the
		// looked up word.
		found := false
		for _, tw := range ptr.Target.Words {
			if strings.HasPrefix(tw.Lemma, word) {
				found = true
			}
		}
		if found || slices.Contains(pointerSymbols, ptr.Symbol) {
			printSynset(w, wn, ptr.Target, word, false)
		}
	}
}
