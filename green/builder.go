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

package green

import (
	"fmt"
)

// Builder builds a green tree from a flat sequence of events.
//
// Tokens are appended to a list of pending children. Opening a node records
// where its first child is; finishing it collapses every pending child from
// that point on into a single node.
//
// Misuse of a Builder, such as finishing more nodes than were started, is a
// programming error and panics.
type Builder struct {
	cache    *Cache
	parents  []parent
	children []Element
}

type parent struct {
	kind  Kind
	first int // Index into Builder.children.
}

// Checkpoint is a mark in a [Builder]'s pending children, returned by
// [Builder.Checkpoint].
//
// It may be passed to [Builder.StartNodeAt] to open a node that begins at the
// mark, after the fact.
type Checkpoint struct {
	owner *Builder
	idx   int
}

// NewBuilder returns a builder that draws tokens and nodes from cache.
//
// If cache is nil, the builder uses a fresh one.
func NewBuilder(cache *Cache) *Builder {
	if cache == nil {
		cache = new(Cache)
	}
	return &Builder{cache: cache}
}

// Depth returns the number of nodes that are currently open.
func (b *Builder) Depth() int {
	return len(b.parents)
}

// Token appends a new token to the innermost open node.
func (b *Builder) Token(kind Kind, text string) {
	b.children = append(b.children, TokenElement(b.cache.Token(kind, text)))
}

// StartNode opens a new node; every element emitted until the matching
// [Builder.FinishNode] becomes its child.
func (b *Builder) StartNode(kind Kind) {
	b.parents = append(b.parents, parent{kind: kind, first: len(b.children)})
}

// Checkpoint marks the current position in the pending children.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{owner: b, idx: len(b.children)}
}

// StartNodeAt opens a new node whose first child is whatever was emitted
// immediately after cp was taken.
//
// Panics if cp came from a different builder, or if a node that was open when
// cp was taken has since been finished: wrapping from cp would then produce a
// node that straddles a node boundary.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if cp.owner != b {
		panic("mantel/green: StartNodeAt called with another builder's checkpoint")
	}
	if cp.idx > len(b.children) {
		panic(fmt.Sprintf(
			"mantel/green: checkpoint %d is past the end of the pending children (%d); was FinishNode called early?",
			cp.idx, len(b.children)))
	}
	if n := len(b.parents); n > 0 && cp.idx < b.parents[n-1].first {
		panic(fmt.Sprintf(
			"mantel/green: checkpoint %d precedes the start of the open node (%d); was FinishNode called early?",
			cp.idx, b.parents[n-1].first))
	}

	b.parents = append(b.parents, parent{kind: kind, first: cp.idx})
}

// FinishNode closes the innermost open node.
//
// Panics if no node is open.
func (b *Builder) FinishNode() {
	n := len(b.parents)
	if n == 0 {
		panic("mantel/green: FinishNode called with no open node")
	}

	top := b.parents[n-1]
	b.parents = b.parents[:n-1]

	node := b.cache.Node(top.kind, b.children[top.first:])
	clear(b.children[top.first:])
	b.children = append(b.children[:top.first], NodeElement(node))
}

// Finish returns the completed tree.
//
// Panics if any node is still open, or if the builder does not hold exactly
// one root node. The builder is empty afterwards, and may be reused.
func (b *Builder) Finish() *Node {
	if len(b.parents) != 0 {
		panic(fmt.Sprintf("mantel/green: Finish called with %d open nodes", len(b.parents)))
	}
	if len(b.children) != 1 || b.children[0].Node() == nil {
		panic(fmt.Sprintf("mantel/green: Finish expected exactly one root node, got %d elements", len(b.children)))
	}

	root := b.children[0].Node()
	b.children = b.children[:0]
	return root
}
