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
	"iter"
	"strings"
)

// Kind is the raw kind of a node or token.
//
// Languages built on this package define their own kind enumeration and
// convert to and from Kind.
type Kind uint16

// Token is a leaf of a green tree.
//
// Tokens are immutable. A nil *Token is not a valid token.
type Token struct {
	kind Kind
	text string
}

// NewToken returns a new token with the given kind and text.
//
// Prefer [Cache.Token], which deduplicates equal tokens.
func NewToken(kind Kind, text string) *Token {
	return &Token{kind: kind, text: text}
}

// Kind returns this token's kind.
func (t *Token) Kind() Kind {
	return t.kind
}

// Text returns this token's exact text.
func (t *Token) Text() string {
	return t.text
}

// Width returns the length of this token's text, in bytes.
func (t *Token) Width() int {
	return len(t.text)
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return fmt.Sprintf("%d@%q", t.kind, t.text)
}

// Node is an interior node of a green tree.
//
// Nodes are immutable. A nil *Node is not a valid node.
type Node struct {
	kind     Kind
	width    int
	children []Element
}

// NewNode returns a new node with the given kind and children.
//
// children is copied. Prefer [Cache.Node], which deduplicates small nodes.
func NewNode(kind Kind, children []Element) *Node {
	n := &Node{kind: kind, children: make([]Element, len(children))}
	for i, child := range children {
		if child.IsZero() {
			panic(fmt.Sprintf("mantel/green: zero element at index %d", i))
		}
		n.children[i] = child
		n.width += child.Width()
	}
	return n
}

// Kind returns this node's kind.
func (n *Node) Kind() Kind {
	return n.kind
}

// Width returns the total width of this node's text, in bytes.
func (n *Node) Width() int {
	return n.width
}

// Len returns the number of direct children of this node.
func (n *Node) Len() int {
	return len(n.children)
}

// At returns the child at the given index.
//
// Panics if idx is out of bounds.
func (n *Node) At(idx int) Element {
	return n.children[idx]
}

// Children returns an iterator over this node's direct children, along with
// the offset of each child relative to the start of this node.
func (n *Node) Children() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		var offset int
		for _, child := range n.children {
			if !yield(offset, child) {
				return
			}
			offset += child.Width()
		}
	}
}

// Text returns the concatenation of the text of every token in this node.
func (n *Node) Text() string {
	var buf strings.Builder
	buf.Grow(n.width)
	n.writeText(&buf)
	return buf.String()
}

func (n *Node) writeText(buf *strings.Builder) {
	for _, child := range n.children {
		if child.token != nil {
			buf.WriteString(child.token.text)
		} else {
			child.node.writeText(buf)
		}
	}
}

// Element is either a [Node] or a [Token].
//
// The zero Element is neither.
type Element struct {
	node  *Node
	token *Token
}

// NodeElement wraps a node as an [Element].
func NodeElement(n *Node) Element {
	return Element{node: n}
}

// TokenElement wraps a token as an [Element].
func TokenElement(t *Token) Element {
	return Element{token: t}
}

// IsZero returns whether this is the zero Element.
func (e Element) IsZero() bool {
	return e.node == nil && e.token == nil
}

// Node returns the node this element wraps, or nil if it is a token.
func (e Element) Node() *Node {
	return e.node
}

// Token returns the token this element wraps, or nil if it is a node.
func (e Element) Token() *Token {
	return e.token
}

// Kind returns the kind of the wrapped node or token.
func (e Element) Kind() Kind {
	switch {
	case e.node != nil:
		return e.node.kind
	case e.token != nil:
		return e.token.kind
	default:
		return 0
	}
}

// Width returns the width of the wrapped node or token.
func (e Element) Width() int {
	switch {
	case e.node != nil:
		return e.node.width
	case e.token != nil:
		return len(e.token.text)
	default:
		return 0
	}
}

// Equal returns whether two elements are structurally equal: the same kinds,
// the same texts, and the same shape.
func Equal(a, b Element) bool {
	switch {
	case a == b:
		return true
	case a.token != nil && b.token != nil:
		return a.token.kind == b.token.kind && a.token.text == b.token.text
	case a.node != nil && b.node != nil:
		if a.node.kind != b.node.kind || a.node.width != b.node.width ||
			len(a.node.children) != len(b.node.children) {
			return false
		}
		for i := range a.node.children {
			if !Equal(a.node.children[i], b.node.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
