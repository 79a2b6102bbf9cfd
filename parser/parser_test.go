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

package parser_test

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/green"
	"github.com/mantelsql/mantel/lexer"
	"github.com/mantelsql/mantel/parser"
	"github.com/mantelsql/mantel/source"
	"github.com/mantelsql/mantel/syntax"
)

// sexpr renders a tree as an S-expression, with tokens written as KIND:text.
func sexpr(n *cst.Node) string {
	var buf strings.Builder
	var walk func(*cst.Node)
	walk = func(n *cst.Node) {
		fmt.Fprintf(&buf, "(%v", n.Kind())
		for child := range n.ChildrenWithTokens() {
			buf.WriteByte(' ')
			if child.Node() != nil {
				walk(child.Node())
			} else {
				fmt.Fprintf(&buf, "%v:%s", child.Kind(), child.Text())
			}
		}
		buf.WriteByte(')')
	}
	walk(n)
	return buf.String()
}

func parse(t *testing.T, text string, opts parser.Options) (*cst.Node, error) {
	t.Helper()
	return parser.Parse(source.NewFile("test.sql", text), opts)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, text, want string
		opts             parser.Options
	}{
		{
			name: "star",
			text: "SELECT * FROM users",
			want: "(ROOT (SELECT ALL:* (FROM IDENTIFIER:users)))",
		},
		{
			name: "columns",
			text: "SELECT a, b,c FROM t",
			want: "(ROOT (SELECT IDENTIFIER:a COMMA:, IDENTIFIER:b COMMA:, IDENTIFIER:c (FROM IDENTIFIER:t)))",
		},
		{
			name: "lowercase",
			text: "select Name from People",
			want: "(ROOT (SELECT IDENTIFIER:Name (FROM IDENTIFIER:People)))",
		},
		{
			name: "text-target",
			text: "SELECT * FROM 'my table'",
			want: "(ROOT (SELECT ALL:* (FROM TEXT:my table)))",
		},
		{
			name: "from-commas",
			text: "SELECT a FROM t, u",
			want: "(ROOT (SELECT IDENTIFIER:a (FROM IDENTIFIER:t IDENTIFIER:u)))",
		},
		{
			name: "any-target",
			text: "SELECT a FROM * FROM",
			want: "(ROOT (SELECT IDENTIFIER:a (FROM ALL:* FROM:FROM)))",
		},
		{
			name: "two-statements",
			text: "SELECT a FROM t\nSELECT * FROM u",
			want: "(ROOT (SELECT IDENTIFIER:a (FROM IDENTIFIER:t)) (SELECT ALL:* (FROM IDENTIFIER:u)))",
		},
		{
			name: "empty-columns",
			text: "SELECT FROM t",
			want: "(ROOT (SELECT (FROM IDENTIFIER:t)))",
		},
		{
			name: "empty-target",
			text: "SELECT a FROM",
			want: "(ROOT (SELECT IDENTIFIER:a (FROM)))",
		},
		{
			name: "skip-junk",
			text: "t, * SELECT a FROM b",
			want: "(ROOT (SELECT IDENTIFIER:a (FROM IDENTIFIER:b)))",
		},
		{
			name: "empty",
			text: " \n\t",
			want: "(ROOT)",
		},
		{
			name: "lossless",
			text: "SELECT a, b FROM t, u",
			opts: parser.Options{Lossless: true},
			want: "(ROOT (SELECT SELECT:SELECT WHITESPACE:  IDENTIFIER:a COMMA:, WHITESPACE:  IDENTIFIER:b WHITESPACE:  " +
				"(FROM FROM:FROM WHITESPACE:  IDENTIFIER:t COMMA:, WHITESPACE:  IDENTIFIER:u)))",
		},
		{
			name: "lossless-junk",
			text: "x SELECT * FROM t",
			opts: parser.Options{Lossless: true},
			want: "(ROOT IDENTIFIER:x WHITESPACE:  (SELECT SELECT:SELECT WHITESPACE:  ALL:* WHITESPACE:  " +
				"(FROM FROM:FROM WHITESPACE:  IDENTIFIER:t)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := parse(t, tt.text, tt.opts)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, sexpr(root)); diff != "" {
				t.Errorf("tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	t.Run("trailing-comma", func(t *testing.T) {
		t.Parallel()

		for text, comma := range map[string]int{
			"SELECT a, FROM t":       8,
			"SELECT a, * FROM t":     8,
			"SELECT a,":              8,
			"SELECT a FROM t,":       15,
			"SELECT a FROM t, *":     15,
			"SELECT a FROM t , ":     16,
			"SELECT a, 'b' FROM t":   8,
			"SELECT a FROM t, 'u v'": 15,
		} {
			root, err := parse(t, text, parser.Options{})
			assert.Nil(t, root)

			var trailing *parser.ErrTrailingComma
			if assert.ErrorAs(t, err, &trailing, text) {
				assert.Equal(t, comma, trailing.Span.Start, text)
				assert.Equal(t, ",", trailing.Span.Text(), text)
			}
			assert.EqualError(t, err, "trailing comma is not allowed")
		}
	})

	t.Run("missing-from", func(t *testing.T) {
		t.Parallel()

		root, err := parse(t, "SELECT a FROM t\n  select a, b", parser.Options{})
		assert.Nil(t, root)

		var missing *parser.ErrMissingFrom
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, 18, missing.Span.Start)
		assert.Equal(t, "select", missing.Span.Text())
		assert.EqualError(t, err, "expected FROM clause")
	})

	t.Run("invalid-token", func(t *testing.T) {
		t.Parallel()

		root, err := parse(t, "SELECT * FROM t @@@", parser.Options{})
		assert.Nil(t, root)

		var invalid *lexer.ErrInvalidToken
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "@@@", invalid.Text)
	})

	t.Run("strict", func(t *testing.T) {
		t.Parallel()

		root, err := parse(t, "\n  DROP t SELECT * FROM t", parser.Options{Strict: true})
		assert.Nil(t, root)

		var unexpected *parser.ErrUnexpectedToken
		require.ErrorAs(t, err, &unexpected)
		assert.Equal(t, "DROP", unexpected.Text)
		assert.Equal(t, 3, unexpected.Span.Start)
		assert.EqualError(t, err, `unexpected "DROP", expected SELECT`)

		// FROM targets may be any token, so the statement absorbs this one.
		root, err = parse(t, "SELECT * FROM t DROP", parser.Options{Strict: true})
		require.NoError(t, err)
		assert.Equal(t, "(ROOT (SELECT ALL:* (FROM IDENTIFIER:t IDENTIFIER:DROP)))", sexpr(root))
	})
}

func TestKeywordCase(t *testing.T) {
	t.Parallel()

	var roots []*cst.Node
	for _, text := range []string{
		"SELECT a, b FROM t",
		"select a, b from t",
		"SeLeCt a,b\nfRoM t",
	} {
		root, err := parse(t, text, parser.Options{})
		require.NoError(t, err)
		roots = append(roots, root)
	}

	for _, root := range roots[1:] {
		assert.True(t, green.Equal(green.NodeElement(roots[0].Green()), green.NodeElement(root.Green())))
	}

	// Keywords are canonicalized in lossless trees too.
	root, err := parse(t, "select * from t", parser.Options{Lossless: true})
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t", root.Text())
}

func TestLosslessRoundTrip(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"",
		"SELECT * FROM t",
		"  SELECT a, b\n FROM t, u  \n",
		"SELECT a FROM t\n\nSELECT\tb,c FROM\fd",
		"junk , SELECT * FROM t *",
	} {
		root, err := parse(t, text, parser.Options{Lossless: true})
		require.NoError(t, err, "%q", text)
		assert.Equal(t, text, root.Text())

		// Every byte of the source is covered by exactly one token.
		next := 0
		for tok := range root.Tokens() {
			start, end := tok.Range()
			assert.Equal(t, next, start, "%q", text)
			assert.Equal(t, text[start:end], tok.Text())
			next = end
		}
		assert.Equal(t, len(text), next)
	}
}

func TestRelex(t *testing.T) {
	t.Parallel()

	significant := func(tokens []lexer.Token) []string {
		var out []string
		for _, tok := range tokens {
			if !tok.IsSpace() {
				out = append(out, tok.String())
			}
		}
		slices.Sort(out)
		return out
	}

	for _, text := range []string{
		"SELECT a, b FROM t",
		"select * from x, y SELECT c FROM d",
	} {
		tokens, err := lexer.Lex(text)
		require.NoError(t, err)

		root, err := parse(t, text, parser.Options{Lossless: true})
		require.NoError(t, err)

		var leaves []string
		for tok := range root.Tokens() {
			leaves = append(leaves, tok.Text())
		}
		relexed, err := lexer.Lex(strings.Join(leaves, " "))
		require.NoError(t, err)

		assert.Equal(t, significant(tokens), significant(relexed))
	}
}

func TestTyped(t *testing.T) {
	t.Parallel()

	for _, opts := range []parser.Options{{}, {Lossless: true}} {
		root, err := parse(t, "SELECT a, b FROM 'u v', t SELECT * FROM w", opts)
		require.NoError(t, err)

		r, ok := cst.AsRoot(root)
		require.True(t, ok)
		stmts := slices.Collect(r.Statements())
		require.Len(t, stmts, 2)

		var columns, targets []string
		for tok := range stmts[0].Columns() {
			columns = append(columns, tok.Text())
		}
		from, ok := stmts[0].From()
		require.True(t, ok)
		for tok := range from.Targets() {
			targets = append(targets, tok.Text())
		}
		assert.Equal(t, []string{"a", "b"}, columns)
		assert.Equal(t, []string{"u v", "t"}, targets)
		assert.Equal(t, opts.Lossless, stmts[0].Keyword() != nil)
		assert.Equal(t, opts.Lossless, from.Keyword() != nil)
		if opts.Lossless {
			assert.Equal(t, "SELECT", stmts[0].Keyword().Text())
			assert.Equal(t, "FROM", from.Keyword().Text())
		}

		for tok := range stmts[1].Columns() {
			assert.Equal(t, syntax.All, tok.Kind())
		}
	}
}

func TestReuse(t *testing.T) {
	t.Parallel()

	tokens, err := lexer.Lex("SELECT * FROM t")
	require.NoError(t, err)

	p := parser.New(tokens, parser.Options{})
	_, err = p.Parse()
	require.NoError(t, err)
	assert.Panics(t, func() { _, _ = p.Parse() })
}

func TestSharedCache(t *testing.T) {
	t.Parallel()

	cache := new(green.Cache)
	a, err := parse(t, "SELECT a FROM t", parser.Options{Cache: cache})
	require.NoError(t, err)
	tokens, nodes := cache.Len()

	b, err := parse(t, "select a from t", parser.Options{Cache: cache})
	require.NoError(t, err)
	assert.Same(t, a.Green(), b.Green())

	tokens2, nodes2 := cache.Len()
	assert.Equal(t, tokens, tokens2)
	assert.Equal(t, nodes, nodes2)
}
