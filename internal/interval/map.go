// Copyright 2020-2025 Buf Technologies, Inc.
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

// Package interval provides a map from disjoint half-open integer ranges to
// values, backed by a B-tree.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
//
// Endpoints must be integers, since lookups rely on the successor of a point.
type Endpoint = constraints.Integer

// Map is an interval map, which maps disjoint half-open intervals
// [start, end) with endpoints in K to values of type V.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keys in this map are the (exclusive) ends of intervals in the map.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry in a [Map].
type Interval[K Endpoint, V any] struct {
	// The range for this interval; End is exclusive.
	Start, End K

	// The value associated with it.
	Value *V
}

// Contains returns whether point lies within this interval.
func (i Interval[K, V]) Contains(point K) bool {
	return i.Value != nil && i.Start <= point && point < i.End
}

// Len returns the number of intervals in this map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get looks up the interval which contains point, if one exists.
//
// If no such interval exists, the Value of the returned [Interval] will be
// nil.
func (m *Map[K, V]) Get(point K) Interval[K, V] {
	// The least interval whose exclusive end is past point is the only one
	// that can contain it.
	iter := m.tree.Iter()
	if !iter.Seek(point+1) || point < iter.Value().start {
		return Interval[K, V]{}
	}

	return m.interval(iter.Key(), iter.Value())
}

// Intervals returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) Intervals() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		m.tree.Scan(func(end K, e *entry[K, V]) bool {
			return yield(m.interval(end, e))
		})
	}
}

// Insert inserts a new interval into this map, with the given associated
// value.
//
// If [start, end) overlaps any interval present in this map, nothing is
// inserted, and this function returns the interval with the least start that
// overlaps with it. This case is distinguished by overlap.Value != nil.
//
// Empty intervals contain no points, so they are never inserted.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V]) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}
	if start == end {
		return Interval[K, V]{}
	}

	// The least interval that ends after start is the first one that could
	// overlap [start, end). It does exactly when it begins before end.
	iter := m.tree.Iter()
	if iter.Seek(start+1) && iter.Value().start < end {
		return m.interval(iter.Key(), iter.Value())
	}

	m.tree.Set(end, &entry[K, V]{start: start, value: value})
	return Interval[K, V]{}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	m.tree.Scan(func(end K, entry *entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false

		fmt.Fprintf(s, "[%#v, %#v): ", entry.start, end)
		fmt.Fprintf(s, fmt.FormatString(s, v), entry.value)
		return true
	})
	fmt.Fprint(s, "}")
}

func (m *Map[K, V]) interval(end K, e *entry[K, V]) Interval[K, V] {
	return Interval[K, V]{Start: e.start, End: end, Value: &e.value}
}

type entry[K Endpoint, V any] struct {
	start K
	value V
}
