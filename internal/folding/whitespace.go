// Copyright 2024 Google LLC
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

// Package folding normalizes words into the keys used by the WordNet index.
package folding

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the parts of multi-word lemmas in the index files.
const Separator = '_'

// WhitespaceFolder folds whitespace in the input. It removes whitespace from
// the beginning and end of the input and replaces every internal whitespace
// span with a single Sep rune. Whitespace is any rune for which
// unicode.IsSpace is true, which includes the no-break, ideographic, line and
// paragraph separators, and the zero width no-break space U+FEFF.
type WhitespaceFolder struct {
	// Sep is emitted for each internal whitespace span. The zero value emits
	// Separator.
	Sep rune

	// notStart is true after encounting the first non-whitespace rune.
	notStart bool

	// wsSpan is true if the transformer is currently handling a whitespace span.
	wsSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if isSpace(c) {
			nSrc += size
			if w.notStart {
				w.wsSpan = true
			}
			continue
		}

		if w.wsSpan {
			// Trailing whitespace is never emitted since a span is only
			// flushed when a non-space rune follows it.
			sep := w.sep()
			if nDst+utf8.RuneLen(sep) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], sep)
			w.wsSpan = false
		}

		// NOTE: we cannot use size here because c could be utf8.RuneError in
		// which case size would be 1 but the length of utf8.RuneError is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		w.notStart = true
		nSrc += size
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{Sep: w.Sep}
}

// isSpace reports whether c is whitespace. The byte order mark is treated as
// whitespace as well.
func isSpace(c rune) bool {
	return unicode.IsSpace(c) || c == '\uFEFF'
}

func (w *WhitespaceFolder) sep() rune {
	if w.Sep == 0 {
		return Separator
	}
	return w.Sep
}

// NewKeyFolder returns a transformer that turns a word into an index key. The
// input is NFKC normalized and its whitespace is folded into Separator.
func NewKeyFolder() transform.Transformer {
	return transform.Chain(norm.NFKC, &WhitespaceFolder{})
}

// Key returns the index key for word.
func Key(word string) (string, error) {
	key, _, err := transform.String(NewKeyFolder(), word)
	if err != nil {
		return "", fmt.Errorf("folding %q: %w", word, err)
	}
	return key, nil
}

// Display turns an index key or lemma back into human readable form by
// replacing Separator with spaces.
func Display(key string) string {
	b := []byte(key)
	for i := range b {
		if b[i] == Separator {
			b[i] = ' '
		}
	}
	return string(b)
}
