// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package index implements a sorted in-memory index keyed by string.
package index

import (
	"slices"
	"strings"
)

type item[V any] struct {
	key   string
	value V
}

// Index is a sorted array index. Values with equal keys keep the order they
// were given in.
type Index[V any] struct {
	items []item[V]
}

// New creates an index over values using key to compute each value's key.
func New[V any](values []V, key func(V) string) *Index[V] {
	items := make([]item[V], 0, len(values))
	for _, v := range values {
		items = append(items, item[V]{
			key:   key(v),
			value: v,
		})
	}
	slices.SortStableFunc(items, func(a, b item[V]) int {
		return strings.Compare(a.key, b.key)
	})

	return &Index[V]{
		items: items,
	}
}

// Len returns the number of values in the index.
func (idx *Index[V]) Len() int {
	return len(idx.items)
}

// Find performs a binary search over the index and returns all values whose
// key equals k.
func (idx *Index[V]) Find(k string) []V {
	i, found := slices.BinarySearchFunc(idx.items, k, func(it item[V], k string) int {
		return strings.Compare(it.key, k)
	})
	if !found {
		return nil
	}

	var result []V
	for ; i < len(idx.items) && idx.items[i].key == k; i++ {
		result = append(result, idx.items[i].value)
	}
	return result
}
