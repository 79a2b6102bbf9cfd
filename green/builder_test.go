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

package green_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantelsql/mantel/green"
)

const (
	kRoot green.Kind = iota
	kList
	kWord
	kSpace
)

// shape renders a green element as nested slices, for easy comparison.
func shape(e green.Element) any {
	if tok := e.Token(); tok != nil {
		return tok.Text()
	}
	out := []any{int(e.Kind())}
	for _, child := range e.Node().Children() {
		out = append(out, shape(child))
	}
	return out
}

func TestBuilderNesting(t *testing.T) {
	t.Parallel()

	b := green.NewBuilder(nil)
	assert.Equal(t, 0, b.Depth())
	b.StartNode(kRoot)
	b.Token(kWord, "a")
	b.StartNode(kList)
	assert.Equal(t, 2, b.Depth())
	b.Token(kWord, "b")
	b.Token(kSpace, " ")
	b.Token(kWord, "c")
	b.FinishNode()
	assert.Equal(t, 1, b.Depth())
	b.FinishNode()
	assert.Equal(t, 0, b.Depth())
	root := b.Finish()

	assert.Equal(t, []any{0, "a", []any{1, "b", " ", "c"}}, shape(green.NodeElement(root)))
	assert.Equal(t, 4, root.Width())
	assert.Equal(t, "ab c", root.Text())
	assert.Equal(t, 2, root.Len())
}

func TestCheckpointWrapsRetroactively(t *testing.T) {
	t.Parallel()

	b := green.NewBuilder(nil)
	b.StartNode(kRoot)
	b.Token(kWord, "x")
	cp := b.Checkpoint()
	b.Token(kWord, "y")
	b.Token(kWord, "z")
	assert.Equal(t, 1, b.Depth())

	// Only now do we learn that y and z belong together.
	b.StartNodeAt(cp, kList)
	assert.Equal(t, 2, b.Depth())
	b.Token(kWord, "w")
	b.FinishNode()
	b.FinishNode()

	assert.Equal(t,
		[]any{0, "x", []any{1, "y", "z", "w"}},
		shape(green.NodeElement(b.Finish())),
	)
}

func TestCheckpointAroundFinishedNode(t *testing.T) {
	t.Parallel()

	b := green.NewBuilder(nil)
	b.StartNode(kRoot)
	cp := b.Checkpoint()
	b.StartNode(kList)
	b.Token(kWord, "a")
	b.FinishNode()

	// The finished list collapsed into one element at cp, so wrapping from cp
	// encloses it.
	b.StartNodeAt(cp, kList)
	b.FinishNode()
	b.FinishNode()

	assert.Equal(t,
		[]any{0, []any{1, []any{1, "a"}}},
		shape(green.NodeElement(b.Finish())),
	)
}

func TestCheckpointNested(t *testing.T) {
	t.Parallel()

	// Mirrors how a SELECT statement is built: the outer node is opened at one
	// checkpoint, and an inner node at a later one while the outer is open.
	b := green.NewBuilder(nil)
	b.StartNode(kRoot)
	outer := b.Checkpoint()
	b.StartNodeAt(outer, kList)
	b.Token(kWord, "*")
	inner := b.Checkpoint()
	b.StartNodeAt(inner, kList)
	b.Token(kWord, "t")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()

	assert.Equal(t,
		[]any{0, []any{1, "*", []any{1, "t"}}},
		shape(green.NodeElement(b.Finish())),
	)
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	t.Run("finish-without-start", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		assert.Panics(t, b.FinishNode)
	})

	t.Run("finish-while-open", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		b.StartNode(kRoot)
		assert.Panics(t, func() { b.Finish() })
	})

	t.Run("finish-empty", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		assert.Panics(t, func() { b.Finish() })
	})

	t.Run("finish-bare-token", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		b.Token(kWord, "a")
		assert.Panics(t, func() { b.Finish() })
	})

	t.Run("stale-checkpoint", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		b.StartNode(kRoot)
		b.StartNode(kList)
		b.Token(kWord, "a")
		b.Token(kWord, "b")
		cp := b.Checkpoint()
		b.Token(kWord, "c")
		b.FinishNode()
		// cp pointed inside the list, which no longer exists as pending
		// children.
		assert.Panics(t, func() { b.StartNodeAt(cp, kList) })
	})

	t.Run("crossing-checkpoint", func(t *testing.T) {
		t.Parallel()
		b := green.NewBuilder(nil)
		b.StartNode(kRoot)
		b.Token(kWord, "a")
		cp := b.Checkpoint()
		b.Token(kWord, "b")
		b.StartNode(kList)
		b.Token(kWord, "c")
		// The open list starts after cp, so a node at cp would contain the
		// start of the list but not its end.
		b.Token(kWord, "d")
		assert.NotPanics(t, func() { b.StartNodeAt(b.Checkpoint(), kList) })
		b.FinishNode()
		b.FinishNode()
		b.Token(kWord, "e")
		b.StartNode(kList)
		assert.Panics(t, func() { b.StartNodeAt(cp, kList) })
	})

	t.Run("foreign-checkpoint", func(t *testing.T) {
		t.Parallel()
		a, b := green.NewBuilder(nil), green.NewBuilder(nil)
		assert.Panics(t, func() { b.StartNodeAt(a.Checkpoint(), kList) })
	})
}

func TestCacheSharing(t *testing.T) {
	t.Parallel()

	cache := new(green.Cache)
	build := func() *green.Node {
		b := green.NewBuilder(cache)
		b.StartNode(kRoot)
		b.StartNode(kList)
		b.Token(kWord, "users")
		b.FinishNode()
		b.StartNode(kList)
		b.Token(kWord, "users")
		b.FinishNode()
		b.FinishNode()
		return b.Finish()
	}

	a, b := build(), build()
	assert.Same(t, a, b, "small identical trees should be shared outright")
	assert.Same(t, a.At(0).Node(), a.At(1).Node())

	tokens, nodes := cache.Len()
	assert.Equal(t, 1, tokens)
	assert.Equal(t, 2, nodes)
}

func TestCacheLargeNodes(t *testing.T) {
	t.Parallel()

	cache := new(green.Cache)
	build := func() *green.Node {
		b := green.NewBuilder(cache)
		b.StartNode(kList)
		for _, w := range []string{"a", "b", "c", "d"} {
			b.Token(kWord, w)
		}
		b.FinishNode()
		return b.Finish()
	}

	a, b := build(), build()
	assert.NotSame(t, a, b)
	assert.True(t, green.Equal(green.NodeElement(a), green.NodeElement(b)))
	assert.Same(t, a.At(2).Token(), b.At(2).Token())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	x := green.NodeElement(green.NewNode(kList, []green.Element{
		green.TokenElement(green.NewToken(kWord, "a")),
	}))
	y := green.NodeElement(green.NewNode(kList, []green.Element{
		green.TokenElement(green.NewToken(kWord, "a")),
	}))
	z := green.NodeElement(green.NewNode(kList, []green.Element{
		green.TokenElement(green.NewToken(kSpace, "a")),
	}))

	assert.True(t, green.Equal(x, y))
	assert.False(t, green.Equal(x, z))
	assert.False(t, green.Equal(x, x.Node().At(0)))
	assert.True(t, green.Equal(green.Element{}, green.Element{}))
	assert.True(t, green.Element{}.IsZero())
	require.Panics(t, func() { green.NewNode(kList, []green.Element{{}}) })
}
