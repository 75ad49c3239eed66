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

// Package ordered implements an insertion-ordered multimap.
package ordered

// Index maps string keys to lists of values. Keys are returned in the order
// they were first added and values in the order they were added under their
// key.
type Index[V any] struct {
	keys   []string
	values map[string][]V
	n      int
}

// NewIndex returns an empty index.
func NewIndex[V any]() *Index[V] {
	return &Index[V]{
		values: map[string][]V{},
	}
}

// Add appends v to the values of key.
func (idx *Index[V]) Add(key string, v V) {
	vs, ok := idx.values[key]
	if !ok {
		idx.keys = append(idx.keys, key)
	}
	idx.values[key] = append(vs, v)
	idx.n++
}

// Search returns the values added under key or nil if there are none.
func (idx *Index[V]) Search(key string) []V {
	if idx == nil {
		return nil
	}
	return idx.values[key]
}

// Keys returns the distinct keys in insertion order.
func (idx *Index[V]) Keys() []string {
	if idx == nil {
		return nil
	}
	keys := make([]string, len(idx.keys))
	copy(keys, idx.keys)
	return keys
}

// Values returns all values, grouped by key in key order.
func (idx *Index[V]) Values() []V {
	if idx == nil {
		return nil
	}
	values := make([]V, 0, idx.n)
	for _, k := range idx.keys {
		values = append(values, idx.values[k]...)
	}
	return values
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	if idx == nil {
		return 0
	}
	return idx.n
}
