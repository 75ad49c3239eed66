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
	"iter"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/lines"
	"github.com/ianlewis/go-wordnet/pos"
)

// Lookup returns the synsets of word. The word is NFKC normalized and runs of
// whitespace are treated as a single word separator, so "sea urchin" finds
// the lemma "sea_urchin". Synsets are returned in index file order, noun
// synsets first.
//
// Synsets whose record cannot be read are left out of the result. Malformed
// records and parts of speech without a data file are errors.
func (wn *WordNet) Lookup(ctx context.Context, word string, opts *LookupOptions) ([]*data.Synset, error) {
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

	type synsetRef struct {
		p      pos.POS
		offset int64
	}
	var refs []synsetRef
	for _, e := range entries {
		for _, offset := range e.Offsets {
			refs = append(refs, synsetRef{e.POS, offset})
		}
	}

	r := wn.newReader(st)
	defer r.Close()

	depth := opts.depth()
	synsets := make([]*data.Synset, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, ref := range refs {
		g.Go(func() error {
			s, err := r.synset(gctx, ref.p, ref.offset, depth)
			if err != nil {
				if fatal(gctx, err) {
					return err
				}
				r.logger.DebugContext(gctx, "skipping synset",
					slog.String("word", word),
					slog.String("pos", ref.p.String()),
					slog.Int64("offset", ref.offset),
					slog.Any("err", err),
				)
				return nil
			}
			synsets[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := synsets[:0]
	for _, s := range synsets {
		if s != nil {
			result = append(result, s)
		}
	}
	return result, nil
}

// Synsets returns an iterator over every synset in the data files. If p is
// zero all data files are read in noun, verb, adjective, adverb order.
// Otherwise only synsets of part of speech p are returned, so
// pos.AdjectiveSatellite selects the satellites in the adjective file.
//
// The data files are read again each time the iterator is used. An error is
// yielded at most once and ends the iteration.
func (wn *WordNet) Synsets(ctx context.Context, p pos.POS, opts *LookupOptions) iter.Seq2[*data.Synset, error] {
	return func(yield func(*data.Synset, error) bool) {
		st, err := wn.loaded()
		if err != nil {
			yield(nil, err)
			return
		}

		storages := pos.StorageOrder
		if p != 0 {
			if !p.Valid() {
				yield(nil, fmt.Errorf("%w: unknown part of speech %q", ErrMalformedRecord, string(rune(p))))
				return
			}
			storages = []pos.Storage{p.Storage()}
		}

		r := wn.newReader(st)
		defer r.Close()

		depth := opts.depth()
		for _, sp := range storages {
			path, err := st.dataPath(sp)
			if err != nil {
				yield(nil, err)
				return
			}

			for line, err := range lines.All(path) {
				if err == nil {
					err = ctx.Err()
				}
				if err != nil {
					yield(nil, err)
					return
				}

				line = strings.TrimRight(line, "\r")
				if !data.IsRecord(line) {
					continue
				}
				s, err := data.ParseLine(line)
				if err != nil {
					yield(nil, fmt.Errorf("reading %q: %w", path, err))
					return
				}
				if p != 0 && s.POS != p {
					continue
				}
				s, err = r.resolve(ctx, s, depth)
				if err != nil {
					yield(nil, err)
					return
				}
				if !yield(s, nil) {
					return
				}
			}
		}
	}
}

// fatal reports whether err ends a lookup rather than dropping one synset.
func fatal(ctx context.Context, err error) bool {
	return errors.Is(err, ErrMissingFile) ||
		errors.Is(err, ErrMalformedRecord) ||
		ctx.Err() != nil
}

// reader reads synsets from the data files of one state. Files are opened on
// first use and kept open until Close.
type reader struct {
	st     *state
	opts   *data.FileOptions
	limit  int
	logger *slog.Logger

	mu    sync.Mutex
	files map[pos.Storage]*data.File
}

func (wn *WordNet) newReader(st *state) *reader {
	o := wn.opts()
	limit := o.Concurrency
	if limit <= 0 {
		limit = DefaultOptions.Concurrency
	}
	return &reader{
		st:     st,
		opts:   o.File,
		limit:  limit,
		logger: wn.logger(),
		files:  map[pos.Storage]*data.File{},
	}
}

func (r *reader) file(p pos.Storage) (*data.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.files[p]; ok {
		return f, nil
	}
	path, err := r.st.dataPath(p)
	if err != nil {
		return nil, err
	}
	f, err := data.Open(path, r.opts)
	if err != nil {
		return nil, err
	}
	r.files[p] = f
	return f, nil
}

// synset reads the synset at offset in the data file of p and resolves its
// pointers up to depth hops.
func (r *reader) synset(ctx context.Context, p pos.POS, offset int64, depth int) (*data.Synset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := r.file(p.Storage())
	if err != nil {
		return nil, err
	}
	line, err := f.Record(offset)
	if err != nil {
		return nil, err
	}
	s, err := data.ParseLine(strings.TrimRight(line, "\r"))
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", f.Name(), err)
	}
	return r.resolve(ctx, s, depth)
}

// resolve returns a copy of s with the targets of its pointers read. Targets
// are read with one less hop of depth. A target that cannot be read is left
// nil unless its part of speech has no data file.
func (r *reader) resolve(ctx context.Context, s *data.Synset, depth int) (*data.Synset, error) {
	if depth <= 0 || len(s.Pointers) == 0 {
		return s, nil
	}

	targets := make([]*data.Synset, len(s.Pointers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, ptr := range s.Pointers {
		g.Go(func() error {
			t, err := r.synset(gctx, ptr.POS, ptr.Offset, depth-1)
			if err != nil {
				if errors.Is(err, ErrMissingFile) || gctx.Err() != nil {
					return err
				}
				r.logger.DebugContext(gctx, "unresolved pointer",
					slog.Int64("synset", s.Offset),
					slog.String("symbol", ptr.Symbol),
					slog.Int64("offset", ptr.Offset),
					slog.Any("err", err),
				)
				return nil
			}
			targets[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.WithTargets(targets), nil
}

// Close closes the data files opened by the reader.
func (r *reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for p, f := range r.files {
		errs = append(errs, f.Close())
		delete(r.files, p)
	}
	return errors.Join(errs...)
}
