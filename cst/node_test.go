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

package cst_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/green"
	"github.com/mantelsql/mantel/syntax"
)

type leaf struct {
	kind syntax.Kind
	text string
}

// build builds ROOT[SELECT[columns..., FROM[targets...]]].
func build(columns, targets []leaf) *green.Node {
	b := green.NewBuilder(nil)
	b.StartNode(syntax.Root.Raw())
	b.StartNode(syntax.Select.Raw())
	for _, l := range columns {
		b.Token(l.kind.Raw(), l.text)
	}
	b.StartNode(syntax.From.Raw())
	for _, l := range targets {
		b.Token(l.kind.Raw(), l.text)
	}
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

func texts(seq func(func(*cst.Token) bool)) []string {
	var out []string
	for tok := range seq {
		out = append(out, tok.Text())
	}
	return out
}

func TestNavigation(t *testing.T) {
	t.Parallel()

	root := cst.NewRoot(build(
		[]leaf{{syntax.Identifier, "a"}, {syntax.Comma, ","}, {syntax.Identifier, "bc"}},
		[]leaf{{syntax.Identifier, "t"}},
	))

	assert.Equal(t, syntax.Root, root.Kind())
	assert.Nil(t, root.Parent())
	assert.Equal(t, "a,bct", root.Text())

	stmt := slices.Collect(root.Children())
	require.Len(t, stmt, 1)
	sel := stmt[0]
	assert.Equal(t, syntax.Select, sel.Kind())
	assert.Same(t, root, sel.Parent())

	var kinds []syntax.Kind
	var starts []int
	for child := range sel.ChildrenWithTokens() {
		kinds = append(kinds, child.Kind())
		start, _ := child.Range()
		starts = append(starts, start)
	}
	assert.Equal(t, []syntax.Kind{syntax.Identifier, syntax.Comma, syntax.Identifier, syntax.From}, kinds)
	assert.Equal(t, []int{0, 1, 2, 4}, starts)

	from := slices.Collect(sel.Children())
	require.Len(t, from, 1)
	start, end := from[0].Range()
	assert.Equal(t, 4, start)
	assert.Equal(t, 5, end)
	assert.Equal(t, 3, from[0].Index())

	var ancestors []syntax.Kind
	for n := range from[0].Ancestors() {
		ancestors = append(ancestors, n.Kind())
	}
	assert.Equal(t, []syntax.Kind{syntax.From, syntax.Select, syntax.Root}, ancestors)

	var preorder []syntax.Kind
	for e := range root.Descendants() {
		preorder = append(preorder, e.Kind())
	}
	assert.Equal(t, []syntax.Kind{
		syntax.Root, syntax.Select,
		syntax.Identifier, syntax.Comma, syntax.Identifier,
		syntax.From, syntax.Identifier,
	}, preorder)

	assert.Equal(t, []string{"a", ",", "bc", "t"}, texts(root.Tokens()))
}

func TestEarlyBreak(t *testing.T) {
	t.Parallel()

	root := cst.NewRoot(build(
		[]leaf{{syntax.Identifier, "a"}, {syntax.Comma, ","}, {syntax.Identifier, "b"}},
		[]leaf{{syntax.Identifier, "t"}},
	))

	var n int
	for range root.Descendants() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)

	n = 0
	for range root.Tokens() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestTokenAt(t *testing.T) {
	t.Parallel()

	root := cst.NewRoot(build(
		[]leaf{{syntax.Identifier, "ab"}, {syntax.Comma, ","}, {syntax.Identifier, "cd"}},
		[]leaf{{syntax.Text, ""}, {syntax.Identifier, "tab"}},
	))

	for offset, want := range []string{"ab", "ab", ",", "cd", "cd", "tab", "tab", "tab"} {
		tok := root.TokenAt(offset)
		if assert.NotNil(t, tok, "%d", offset) {
			assert.Equal(t, want, tok.Text(), "%d", offset)
		}
	}
	assert.Nil(t, root.TokenAt(-1))
	assert.Nil(t, root.TokenAt(8))

	// Lookups through a subtree only see that subtree.
	sel := slices.Collect(root.Children())[0]
	from := slices.Collect(sel.Children())[0]
	assert.Nil(t, from.TokenAt(0))
	tok := from.TokenAt(6)
	require.NotNil(t, tok)
	assert.Equal(t, "tab", tok.Text())
	assert.Equal(t, syntax.From, tok.Parent().Kind())
}

func TestTyped(t *testing.T) {
	t.Parallel()

	root := cst.NewRoot(build(
		[]leaf{{syntax.Identifier, "a"}, {syntax.Comma, ","}, {syntax.Identifier, "b"}},
		[]leaf{{syntax.Identifier, "t"}, {syntax.Identifier, "u"}},
	))

	r, ok := cst.AsRoot(root)
	require.True(t, ok)
	_, ok = cst.AsSelect(root)
	assert.False(t, ok)

	stmts := slices.Collect(r.Statements())
	require.Len(t, stmts, 1)
	assert.Nil(t, stmts[0].Keyword())
	assert.Equal(t, []string{"a", "b"}, texts(stmts[0].Columns()))

	from, ok := stmts[0].From()
	require.True(t, ok)
	assert.Nil(t, from.Keyword())
	assert.Equal(t, []string{"t", "u"}, texts(from.Targets()))
}

func TestTypedLossless(t *testing.T) {
	t.Parallel()

	// SELECT * FROM FROM, where the second FROM is a target.
	b := green.NewBuilder(nil)
	b.StartNode(syntax.Root.Raw())
	b.StartNode(syntax.Select.Raw())
	b.Token(syntax.Select.Raw(), "SELECT")
	b.Token(syntax.Whitespace.Raw(), " ")
	b.Token(syntax.All.Raw(), "*")
	b.Token(syntax.Whitespace.Raw(), " ")
	b.StartNode(syntax.From.Raw())
	b.Token(syntax.From.Raw(), "FROM")
	b.Token(syntax.Whitespace.Raw(), " ")
	b.Token(syntax.From.Raw(), "FROM")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()

	root := cst.NewLosslessRoot(b.Finish())
	assert.True(t, root.IsLossless())
	assert.Equal(t, "SELECT * FROM FROM", root.Text())

	r, _ := cst.AsRoot(root)
	stmt := slices.Collect(r.Statements())[0]
	kw := stmt.Keyword()
	require.NotNil(t, kw)
	assert.Equal(t, "SELECT", kw.Text())
	assert.Equal(t, []string{"*"}, texts(stmt.Columns()))

	from, _ := stmt.From()
	require.NotNil(t, from.Keyword())
	start, _ := from.Keyword().Range()
	assert.Equal(t, 9, start)
	assert.Equal(t, []string{"FROM"}, texts(from.Targets()))

	tok := root.TokenAt(15)
	require.NotNil(t, tok)
	start, end := tok.Range()
	assert.Equal(t, 14, start)
	assert.Equal(t, 18, end)
}

func TestLosslessWithoutKeyword(t *testing.T) {
	t.Parallel()

	// A hand-built tree may be lossless without starting each node with its
	// keyword; a quoted "SELECT" is text, not a keyword.
	root := cst.NewLosslessRoot(build(
		[]leaf{{syntax.Text, "SELECT"}, {syntax.Comma, ","}, {syntax.Identifier, "a"}},
		[]leaf{{syntax.Identifier, "t"}},
	))

	r, _ := cst.AsRoot(root)
	stmt := slices.Collect(r.Statements())[0]
	assert.Nil(t, stmt.Keyword())
	assert.Equal(t, []string{"SELECT", "a"}, texts(stmt.Columns()))

	from, _ := stmt.From()
	assert.Nil(t, from.Keyword())
	assert.Equal(t, []string{"t"}, texts(from.Targets()))
}
