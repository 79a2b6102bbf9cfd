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
	"iter"

	"github.com/mantelsql/mantel/syntax"
)

// Root is a typed view of a ROOT node.
type Root struct{ *Node }

// Select is a typed view of a SELECT statement node.
type Select struct{ *Node }

// From is a typed view of a FROM clause node.
type From struct{ *Node }

// AsRoot converts n into a [Root], if it is one.
func AsRoot(n *Node) (Root, bool) {
	if n == nil || n.Kind() != syntax.Root {
		return Root{}, false
	}
	return Root{n}, true
}

// AsSelect converts n into a [Select], if it is one.
func AsSelect(n *Node) (Select, bool) {
	if n == nil || n.Kind() != syntax.Select {
		return Select{}, false
	}
	return Select{n}, true
}

// AsFrom converts n into a [From], if it is one.
func AsFrom(n *Node) (From, bool) {
	if n == nil || n.Kind() != syntax.From {
		return From{}, false
	}
	return From{n}, true
}

// Statements returns an iterator over the statements in this tree.
func (r Root) Statements() iter.Seq[Select] {
	return func(yield func(Select) bool) {
		for child := range r.Children() {
			if s, ok := AsSelect(child); ok && !yield(s) {
				return
			}
		}
	}
}

// Keyword returns this statement's SELECT keyword.
//
// Returns nil unless the tree is lossless.
func (s Select) Keyword() *Token {
	return keyword(s.Node)
}

// Columns returns an iterator over the column list of this statement: either
// a single * or a sequence of identifiers. Separating commas are skipped.
func (s Select) Columns() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for tok := range significant(s.Node) {
			if tok.Kind() != syntax.Comma && !yield(tok) {
				return
			}
		}
	}
}

// From returns this statement's FROM clause.
//
// A statement produced by a successful parse always has one.
func (s Select) From() (From, bool) {
	for child := range s.Children() {
		if f, ok := AsFrom(child); ok {
			return f, true
		}
	}
	return From{}, false
}

// Keyword returns this clause's FROM keyword.
//
// Returns nil unless the tree is lossless.
func (f From) Keyword() *Token {
	return keyword(f.Node)
}

// Targets returns an iterator over the targets of this clause. Any token may
// be a target; commas between them are skipped.
func (f From) Targets() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		for tok := range significant(f.Node) {
			if tok.Kind() != syntax.Comma && !yield(tok) {
				return
			}
		}
	}
}

// keyword returns the keyword token that begins n in a lossless tree.
func keyword(n *Node) *Token {
	if !n.IsLossless() {
		return nil
	}
	for child := range n.ChildrenWithTokens() {
		if child.token == nil || !child.token.IsTrivia() {
			if child.token != nil && child.token.Kind().IsKeyword() {
				return child.token
			}
			return nil
		}
	}
	return nil
}

// significant returns an iterator over n's direct child tokens, skipping
// trivia and n's own keyword.
func significant(n *Node) iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		kw := keyword(n)
		for child := range n.ChildrenWithTokens() {
			tok := child.token
			if tok == nil || tok.IsTrivia() || (kw != nil && tok.index == kw.index) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}
