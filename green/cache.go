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
	"github.com/mantelsql/mantel/internal/intern"
)

// maxCachedChildren is the largest node the cache will deduplicate. Larger
// nodes are rarely repeated, and hashing them costs more than it saves.
const maxCachedChildren = 3

// Cache deduplicates green tokens and small green nodes.
//
// Because tokens are deduplicated first, two small nodes built through the
// same cache are structurally equal exactly when their children are pointer
// equal, so node lookup never needs to walk subtrees.
//
// The zero Cache is empty and ready to use. A Cache is not safe for concurrent
// use, but the trees it produces are.
type Cache struct {
	// Table used to share token text. May be shared by several caches.
	Strings *intern.Table

	tokens map[tokenKey]*Token
	nodes  map[nodeKey]*Node
}

type tokenKey struct {
	kind Kind
	text intern.ID
}

type nodeKey struct {
	kind     Kind
	len      int
	children [maxCachedChildren]Element
}

// Token returns a token with the given kind and text, reusing a previously
// created one if possible.
func (c *Cache) Token(kind Kind, text string) *Token {
	if c.Strings == nil {
		c.Strings = new(intern.Table)
	}
	if c.tokens == nil {
		c.tokens = make(map[tokenKey]*Token)
	}

	key := tokenKey{kind, c.Strings.Intern(text)}
	if tok, ok := c.tokens[key]; ok {
		return tok
	}

	tok := &Token{kind: kind, text: c.Strings.Value(key.text)}
	c.tokens[key] = tok
	return tok
}

// Node returns a node with the given kind and children, reusing a previously
// created one if possible.
//
// children is not retained.
func (c *Cache) Node(kind Kind, children []Element) *Node {
	if len(children) > maxCachedChildren {
		return NewNode(kind, children)
	}
	if c.nodes == nil {
		c.nodes = make(map[nodeKey]*Node)
	}

	key := nodeKey{kind: kind, len: len(children)}
	copy(key.children[:], children)
	if node, ok := c.nodes[key]; ok {
		return node
	}

	node := NewNode(kind, children)
	c.nodes[key] = node
	return node
}

// Len returns the number of distinct tokens and nodes held by this cache.
func (c *Cache) Len() (tokens, nodes int) {
	return len(c.tokens), len(c.nodes)
}
