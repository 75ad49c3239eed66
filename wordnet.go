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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/exc"
	"github.com/ianlewis/go-wordnet/index"
	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/ordered"
	"github.com/ianlewis/go-wordnet/lexnames"
	"github.com/ianlewis/go-wordnet/pos"
)

// WordNet is a WordNet database. The zero value is an uninitialized database
// using DefaultOptions. A WordNet is safe for concurrent use, including
// calling Init while lookups are in progress. Each call works on the database
// as it was loaded when the call started.
type WordNet struct {
	state   atomic.Pointer[state]
	options *Options
}

// state is an immutable snapshot of a loaded database.
type state struct {
	dir string

	// index maps folded lemmas to index entries in index file order.
	index *ordered.Index[*index.Entry]

	// words are the display forms of the index keys.
	words []string

	// dataPaths holds the data file path of each storage part of speech in
	// pos.StorageOrder. Missing files have an empty path.
	dataPaths [4]string

	lexnames   *lexnames.Lexnames
	exceptions map[pos.Storage]*exc.List
}

// dataPath returns the data file path for the storage part of speech p.
func (st *state) dataPath(p pos.Storage) (string, error) {
	for i, s := range pos.StorageOrder {
		if s == p && st.dataPaths[i] != "" {
			return st.dataPaths[i], nil
		}
	}
	return "", fmt.Errorf("%w: no data file for %s in %q", ErrMissingFile, p.POS().Name(), st.dir)
}

// New returns a new uninitialized WordNet.
func New(opts *Options) *WordNet {
	return &WordNet{
		options: opts,
	}
}

// Open returns a new WordNet loaded from the database in dir.
func Open(ctx context.Context, dir string, opts *Options) (*WordNet, error) {
	wn := New(opts)
	if err := wn.Init(ctx, dir); err != nil {
		return nil, err
	}
	return wn, nil
}

// Init loads the index files of the database in dir, replacing any
// previously loaded database. If dir is empty DefaultDir is used. On failure
// the previously loaded database remains in use.
func (wn *WordNet) Init(ctx context.Context, dir string) error {
	if dir == "" {
		dir = DefaultDir()
	}

	start := time.Now()
	st, err := load(ctx, dir)
	if err != nil {
		return fmt.Errorf("loading wordnet %q: %w", dir, err)
	}
	wn.state.Store(st)

	wn.logger().DebugContext(ctx, "loaded wordnet",
		slog.String("dir", dir),
		slog.Int("entries", st.index.Len()),
		slog.Int("words", len(st.words)),
		slog.Int("lexnames", st.lexnames.Len()),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func load(ctx context.Context, dir string) (*state, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening database directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening database directory: %q is not a directory", dir)
	}

	st := &state{
		dir:        dir,
		index:      ordered.NewIndex[*index.Entry](),
		exceptions: map[pos.Storage]*exc.List{},
	}

	// Index files are read in a fixed order so that keys and entries are
	// ordered the same way on every load.
	for _, p := range pos.StorageOrder {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := readIndex(st, dir, p); err != nil {
			return nil, err
		}
	}

	keys := st.index.Keys()
	st.words = make([]string, len(keys))
	for i, k := range keys {
		st.words[i] = folding.Display(k)
	}

	var g errgroup.Group
	for i, p := range pos.StorageOrder {
		g.Go(func() error {
			path, err := data.Path(dir, p)
			if errors.Is(err, ErrMissingFile) {
				return nil
			}
			if err != nil {
				return err
			}
			st.dataPaths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	st.lexnames, err = lexnames.Open(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	for _, p := range pos.StorageOrder {
		l, err := exc.Open(dir, p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		st.exceptions[p] = l
	}

	return st, nil
}

func readIndex(st *state, dir string, p pos.Storage) error {
	s, err := index.Open(dir, p)
	if err != nil {
		return err
	}
	defer s.Close()

	for s.Scan() {
		e := s.Entry()
		key, err := folding.Key(e.Lemma)
		if err != nil {
			return err
		}
		st.index.Add(key, e)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("reading %s index: %w", p.POS().Name(), err)
	}
	return nil
}

// Dir returns the directory of the loaded database or the empty string if
// the database is not initialized.
func (wn *WordNet) Dir() string {
	st := wn.state.Load()
	if st == nil {
		return ""
	}
	return st.dir
}

// Words returns every distinct lemma in the index in the order they first
// appear in the index files. Words in collocations are separated by spaces.
// Words returns nil if the database is not initialized.
func (wn *WordNet) Words() []string {
	st := wn.state.Load()
	if st == nil {
		return nil
	}
	words := make([]string, len(st.words))
	copy(words, st.words)
	return words
}

// IndexEntries returns copies of all index entries grouped by lemma in the
// order of Words.
func (wn *WordNet) IndexEntries() ([]*index.Entry, error) {
	st, err := wn.loaded()
	if err != nil {
		return nil, err
	}
	return cloneEntries(st.index.Values()), nil
}

// Entries returns copies of the index entries for word, one per part of
// speech.
func (wn *WordNet) Entries(word string) ([]*index.Entry, error) {
	st, err := wn.loaded()
	if err != nil {
		return nil, err
	}
	key, err := folding.Key(word)
	if err != nil {
		return nil, err
	}
	entries := st.index.Search(key)
	if len(entries) == 0 {
		return nil, notFound(word)
	}
	return cloneEntries(entries), nil
}

func cloneEntries(entries []*index.Entry) []*index.Entry {
	c := make([]*index.Entry, len(entries))
	for i, e := range entries {
		c[i] = e.Clone()
	}
	return c
}

// LexFileName returns the name of the lexicographer file with the given
// number, e.g. "noun.animal". It returns false if the database has no
// lexnames file or the number is unknown.
func (wn *WordNet) LexFileName(n int) (string, bool) {
	st := wn.state.Load()
	if st == nil {
		return "", false
	}
	return st.lexnames.Name(n)
}

// BaseForms returns the base forms of an irregular inflected word listed in
// the exception list of the part of speech, e.g. "goose" for "geese". It
// returns nil if the word is not an exception.
func (wn *WordNet) BaseForms(word string, p pos.POS) []string {
	st := wn.state.Load()
	if st == nil || !p.Valid() {
		return nil
	}
	return st.exceptions[p.Storage()].BaseForms(word)
}

// loaded returns the current state or ErrUninitialized if nothing is loaded.
func (wn *WordNet) loaded() (*state, error) {
	st := wn.state.Load()
	if st == nil || st.index.Len() == 0 {
		return nil, ErrUninitialized
	}
	return st, nil
}

func (wn *WordNet) opts() *Options {
	if wn.options == nil {
		return DefaultOptions
	}
	return wn.options
}

func (wn *WordNet) logger() *slog.Logger {
	if l := wn.opts().Logger; l != nil {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

func notFound(word string) error {
	return fmt.Errorf("no definition(s) found for \"%s\": %w", word, ErrNotFound)
}
