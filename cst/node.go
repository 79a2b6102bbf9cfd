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

package cst

import (
	"fmt"
	"iter"
	"sync"

	"github.com/mantelsql/mantel/green"
	"github.com/mantelsql/mantel/internal/interval"
	"github.com/mantelsql/mantel/syntax"
)

// Node is an interior node of a red tree.
type Node struct {
	green  *green.Node
	parent *Node
	root   *root

	// Absolute offset of this node's text, and its index in its parent.
	offset, index int
}

// root is state shared by every red node of one tree.
type root struct {
	// Whether the tree keeps keywords and trivia, as produced by a lossless
	// parse.
	lossless bool

	once   sync.Once
	tokens interval.Map[int, *Token]
}

// NewRoot wraps a green node as the root of a red tree.
//
// The typed accessors in this package assume that the tree's statements and
// clauses do not contain their keywords; see [NewLosslessRoot].
func NewRoot(g *green.Node) *Node {
	return &Node{green: g, root: &root{}}
}

// NewLosslessRoot is like [NewRoot], but for a tree in which each statement
// and clause begins with its keyword token.
func NewLosslessRoot(g *green.Node) *Node {
	return &Node{green: g, root: &root{lossless: true}}
}

// Kind returns this node's syntax kind.
func (n *Node) Kind() syntax.Kind {
	return syntax.MustFromRaw(n.green.Kind())
}

// Green returns the green node this node wraps.
func (n *Node) Green() *green.Node {
	return n.green
}

// Parent returns this node's parent, or nil if it is the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Index returns the index of this node among its parent's children.
func (n *Node) Index() int {
	return n.index
}

// IsLossless returns whether this node belongs to a tree created with
// [NewLosslessRoot].
func (n *Node) IsLossless() bool {
	return n.root.lossless
}

// Offset returns the absolute offset of the start of this node's text.
func (n *Node) Offset() int {
	return n.offset
}

// Range returns the absolute half-open range of this node's text.
func (n *Node) Range() (start, end int) {
	return n.offset, n.offset + n.green.Width()
}

// Text returns the concatenation of the text of every token under this node.
func (n *Node) Text() string {
	return n.green.Text()
}

// String implements [fmt.Stringer].
func (n *Node) String() string {
	start, end := n.Range()
	return fmt.Sprintf("%v@%d..%d", n.Kind(), start, end)
}

// ChildrenWithTokens returns an iterator over this node's direct children, in
// order.
func (n *Node) ChildrenWithTokens() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		i := 0
		for rel, child := range n.green.Children() {
			if !yield(n.wrap(i, n.offset+rel, child)) {
				return
			}
			i++
		}
	}
}

// Children returns an iterator over this node's direct children that are
// themselves nodes, in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for child := range n.ChildrenWithTokens() {
			if child.node != nil && !yield(child.node) {
				return
			}
		}
	}
}

// Tokens returns an iterator over every token under this node, in order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for e := range n.Descendants() {
			if e.token != nil && !yield(e.token) {
				return
			}
		}
	}
}

// Descendants returns a preorder iterator over this node and everything
// under it.
func (n *Node) Descendants() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		n.descend(yield)
	}
}

func (n *Node) descend(yield func(Element) bool) bool {
	if !yield(Element{node: n}) {
		return false
	}
	for child := range n.ChildrenWithTokens() {
		if child.node != nil {
			if !child.node.descend(yield) {
				return false
			}
		} else if !yield(child) {
			return false
		}
	}
	return true
}

// Ancestors returns an iterator over this node and each of its ancestors, up
// to and including the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for node := n; node != nil; node = node.parent {
			if !yield(node) {
				return
			}
		}
	}
}

// TokenAt returns the token under this node whose text contains the given
// absolute offset, or nil if there is none.
//
// The first call on any node of a tree builds an index of the whole tree's
// tokens, after which lookups are O(log n).
func (n *Node) TokenAt(offset int) *Token {
	r := n.root
	r.once.Do(func() {
		top := n
		for top.parent != nil {
			top = top.parent
		}
		for tok := range top.Tokens() {
			start, end := tok.Range()
			r.tokens.Insert(start, end, tok)
		}
	})

	found := r.tokens.Get(offset)
	if found.Value == nil {
		return nil
	}
	if start, end := n.Range(); offset < start || offset >= end {
		return nil
	}
	return *found.Value
}

// wrap wraps a green child of this node.
func (n *Node) wrap(index, offset int, child green.Element) Element {
	if g := child.Node(); g != nil {
		return Element{node: &Node{green: g, parent: n, root: n.root, offset: offset, index: index}}
	}
	return Element{token: &Token{green: child.Token(), parent: n, offset: offset, index: index}}
}

// Token is a leaf of a red tree.
type Token struct {
	green  *green.Token
	parent *Node

	offset, index int
}

// Kind returns this token's syntax kind.
func (t *Token) Kind() syntax.Kind {
	return syntax.MustFromRaw(t.green.Kind())
}

// Green returns the green token this token wraps.
func (t *Token) Green() *green.Token {
	return t.green
}

// Parent returns the node containing this token.
func (t *Token) Parent() *Node {
	return t.parent
}

// Index returns the index of this token among its parent's children.
func (t *Token) Index() int {
	return t.index
}

// Text returns this token's text.
func (t *Token) Text() string {
	return t.green.Text()
}

// Range returns the absolute half-open range of this token's text.
func (t *Token) Range() (start, end int) {
	return t.offset, t.offset + t.green.Width()
}

// IsTrivia returns whether this token is syntactically insignificant.
func (t *Token) IsTrivia() bool {
	return t.Kind().IsTrivia()
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	start, end := t.Range()
	return fmt.Sprintf("%v@%d..%d %q", t.Kind(), start, end, t.Text())
}

// Element is either a [Node] or a [Token].
//
// The zero Element is neither.
type Element struct {
	node  *Node
	token *Token
}

// Node returns the node this element wraps, or nil if it is a token.
func (e Element) Node() *Node {
	return e.node
}

// Token returns the token this element wraps, or nil if it is a node.
func (e Element) Token() *Token {
	return e.token
}

// IsZero returns whether this is the zero Element.
func (e Element) IsZero() bool {
	return e.node == nil && e.token == nil
}

// Kind returns the syntax kind of the wrapped node or token.
//
// Panics if e is zero.
func (e Element) Kind() syntax.Kind {
	if e.node != nil {
		return e.node.Kind()
	}
	return e.token.Kind()
}

// Parent returns the node containing this element.
func (e Element) Parent() *Node {
	if e.node != nil {
		return e.node.parent
	}
	return e.token.parent
}

// Range returns the absolute half-open range of the wrapped element's text.
func (e Element) Range() (start, end int) {
	if e.node != nil {
		return e.node.Range()
	}
	return e.token.Range()
}

// Text returns the wrapped element's text.
func (e Element) Text() string {
	if e.node != nil {
		return e.node.Text()
	}
	return e.token.Text()
}
