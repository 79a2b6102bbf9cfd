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

// Package intern maps strings to small integer IDs, so that green tokens with
// the same text share a single copy of it.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is a string interned by a [Table]. The zero ID is the empty string in
// every table.
type ID int32

// String implements [fmt.Stringer]. It prints the ID, not the string it
// stands for; use [Table.Value] for that.
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", int32(id))
}

// Table is a set of interned strings. The zero Table is ready to use, and a
// Table may be used by several goroutines at once.
type Table struct {
	mu     sync.RWMutex
	ids    map[string]ID
	values []string // values[id-1] is the string for id.
}

// Intern returns the ID for s, adding s to the table if needed.
func (t *Table) Intern(s string) ID {
	if id, ok := t.Query(s); ok {
		return id
	}

	// Token text usually points into a whole source file; keep only the
	// bytes we need.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[s]; ok {
		return id
	}
	if len(t.values) == 1<<31-1 {
		panic("mantel/intern: table is full")
	}

	if t.ids == nil {
		t.ids = make(map[string]ID)
	}
	t.values = append(t.values, s)
	id := ID(len(t.values))
	t.ids[s] = id
	return id
}

// Query returns the ID for s without adding it. It reports false if s has
// never been interned.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.ids[s]
	return id, ok
}

// Value returns the string id stands for. id must come from this table.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.values[id-1]
}

// Len returns how many non-empty strings have been interned.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.values)
}
