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

package parser

import (
	"fmt"

	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/green"
	"github.com/mantelsql/mantel/lexer"
	"github.com/mantelsql/mantel/source"
	"github.com/mantelsql/mantel/syntax"
)

// Options configures a [Parser].
type Options struct {
	// If set, the tree keeps every token it is given, including keywords,
	// whitespace, FROM-clause commas, and tokens skipped between statements.
	Lossless bool

	// If set, a token that cannot begin a statement is an error instead of
	// being skipped.
	Strict bool

	// The cache to draw green tokens and nodes from. If nil, the parser uses
	// a fresh one.
	//
	// A cache may be shared between parsers that run one after another, but
	// not between parsers that run concurrently.
	Cache *green.Cache
}

// Parser is a single-use parser over a list of tokens.
type Parser struct {
	opts    Options
	tokens  []lexer.Token
	cursor  int
	builder *green.Builder
	spent   bool
}

// New returns a parser over tokens.
//
// Whitespace tokens are permitted anywhere; they only appear in the tree if
// opts.Lossless is set.
func New(tokens []lexer.Token, opts Options) *Parser {
	return &Parser{
		opts:    opts,
		tokens:  tokens,
		builder: green.NewBuilder(opts.Cache),
	}
}

// Parse parses a source file with the given options.
//
// This lexes the whole file first; lexing errors are returned as-is.
func Parse(file *source.File, opts Options) (*cst.Node, error) {
	tokens, err := (&lexer.Lexer{KeepSpace: opts.Lossless}).Lex(file)
	if err != nil {
		return nil, err
	}
	return New(tokens, opts).Parse()
}

// Parse consumes this parser's tokens and returns the root of the resulting
// tree.
//
// The returned error, if any, is one of [*ErrTrailingComma],
// [*ErrMissingFrom], or [*ErrUnexpectedToken].
//
// Panics if called more than once.
func (p *Parser) Parse() (*cst.Node, error) {
	if p.spent {
		panic("mantel/parser: Parse called more than once")
	}
	p.spent = true

	p.builder.StartNode(syntax.Root.Raw())
	for {
		tok, ok := p.peek()
		if !ok {
			break
		}

		switch {
		case tok.Kind == lexer.Select:
			if err := p.statement(); err != nil {
				return nil, err
			}
		case p.opts.Strict:
			return nil, &ErrUnexpectedToken{Text: tok.Value, Span: tok.Span}
		default:
			p.skip()
		}
	}
	if depth := p.builder.Depth(); depth != 1 {
		panic(fmt.Sprintf("mantel/parser: %d nodes open at end of input, want only ROOT", depth))
	}
	p.builder.FinishNode()

	root := p.builder.Finish()
	if p.opts.Lossless {
		return cst.NewLosslessRoot(root), nil
	}
	return cst.NewRoot(root), nil
}

// statement parses a single SELECT statement. The next significant token must
// be the SELECT keyword.
func (p *Parser) statement() error {
	// Both nodes are opened after the fact, once their contents have been
	// parsed.
	stmt := p.builder.Checkpoint()
	keyword := p.keyword()

	for {
		tok, ok := p.peek()
		if !ok {
			return &ErrMissingFrom{Span: keyword.Span}
		}
		if tok.Kind == lexer.From {
			break
		}

		p.bump()
		if tok.Kind == lexer.Comma {
			if err := p.expectIdentifier(tok); err != nil {
				return err
			}
		}
	}

	clause := p.builder.Checkpoint()
	p.keyword()

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind == lexer.Select {
			break
		}

		if tok.Kind != lexer.Comma {
			p.bump()
			continue
		}

		p.skip()
		if err := p.expectIdentifier(tok); err != nil {
			return err
		}
	}

	p.builder.StartNodeAt(clause, syntax.From.Raw())
	p.builder.FinishNode()
	p.builder.StartNodeAt(stmt, syntax.Select.Raw())
	p.builder.FinishNode()
	return nil
}

// expectIdentifier checks that the token after comma is an identifier.
func (p *Parser) expectIdentifier(comma lexer.Token) error {
	next, ok := p.peek()
	if !ok || next.Kind != lexer.Identifier {
		return &ErrTrailingComma{Span: comma.Span}
	}
	return nil
}

// peek returns the next significant token, if there is one.
//
// Whitespace before it is consumed; in lossless mode, it is added to the tree
// at the current position.
func (p *Parser) peek() (lexer.Token, bool) {
	for p.cursor < len(p.tokens) {
		tok := p.tokens[p.cursor]
		if !tok.IsSpace() {
			return tok, true
		}

		p.skip()
	}
	return lexer.Token{}, false
}

// bump adds the next token to the tree and advances past it.
func (p *Parser) bump() {
	kind, text := p.tokens[p.cursor].Syntax()
	p.builder.Token(kind.Raw(), text)
	p.cursor++
}

// skip advances past the next token. It is only added to the tree in lossless
// mode.
func (p *Parser) skip() {
	if p.opts.Lossless {
		p.bump()
		return
	}
	p.cursor++
}

// keyword consumes the next significant token, which must be a keyword, and
// returns it.
func (p *Parser) keyword() lexer.Token {
	tok, ok := p.peek()
	if !ok || !(tok.Kind == lexer.Select || tok.Kind == lexer.From) {
		panic(fmt.Sprintf("mantel/parser: expected a keyword, got %v", tok))
	}

	p.skip()
	return tok
}
