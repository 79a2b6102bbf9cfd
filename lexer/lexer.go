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

package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/mantelsql/mantel/source"
)

// Lexer is the SQL tokenizer.
//
// The zero value is ready to use; it discards whitespace.
type Lexer struct {
	// If set, each run of whitespace between tokens becomes a [Space] token
	// instead of being discarded.
	KeepSpace bool
}

// Lex runs lexical analysis on file and returns its tokens in source order.
//
// If file contains bytes that do not begin any token, returns an
// [*ErrInvalidToken] naming the first maximal run of them, and no tokens.
func (l *Lexer) Lex(file *source.File) ([]Token, error) {
	lx := &lexer{Lexer: l, file: file, text: file.Text()}
	if err := lx.loop(); err != nil {
		return nil, err
	}
	return lx.tokens, nil
}

// Lex is a shorthand for lexing text with a zero [Lexer].
func Lex(text string) ([]Token, error) {
	return new(Lexer).Lex(source.NewFile("", text))
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	*Lexer
	file *source.File
	text string

	cursor int
	tokens []Token

	// Used for determining longest runs of unrecognized bytes.
	badStart, badBytes int
}

// loop is the main loop of the lexer. Each iteration examines the next byte
// to determine what action to take.
func (l *lexer) loop() error {
	for l.cursor < len(l.text) {
		start := l.cursor
		c := l.text[start]

		switch {
		case isSpace(c):
			l.takeWhile(isSpace)
			if err := l.flushBad(); err != nil {
				return err
			}
			if l.KeepSpace {
				l.push(Space, start, l.text[start:l.cursor])
			}

		case c == '*':
			l.cursor++
			if err := l.pushSignificant(All, start, "*"); err != nil {
				return err
			}

		case c == ',':
			l.cursor++
			if err := l.pushSignificant(Comma, start, ","); err != nil {
				return err
			}

		case c == '"' || c == '\'':
			end := strings.IndexByte(l.text[start+1:], c)
			if end == -1 {
				// An unterminated quote does not begin a token.
				l.bad(start, 1)
				continue
			}
			l.cursor += end + 2
			if err := l.pushSignificant(Text, start, l.text[start+1:l.cursor-1]); err != nil {
				return err
			}

		case isIdentStart(c):
			word := l.takeWhile(isIdentContinue)

			kind, value := Identifier, word
			switch {
			case strings.EqualFold(word, "SELECT"):
				kind, value = Select, "SELECT"
			case strings.EqualFold(word, "FROM"):
				kind, value = From, "FROM"
			}
			if err := l.pushSignificant(kind, start, value); err != nil {
				return err
			}

		default:
			// Step over a whole rune, so that the bad run never ends in the
			// middle of a UTF-8 sequence.
			_, n := utf8.DecodeRuneInString(l.text[start:])
			l.bad(start, n)
		}
	}

	return l.flushBad()
}

// push appends a new token covering [start, l.cursor).
func (l *lexer) push(kind Kind, start int, value string) {
	l.tokens = append(l.tokens, Token{
		Kind:  kind,
		Value: value,
		Span:  l.file.Span(start, l.cursor),
	})
}

// pushSignificant is like push, but first reports any pending unrecognized
// bytes.
func (l *lexer) pushSignificant(kind Kind, start int, value string) error {
	if err := l.flushBad(); err != nil {
		return err
	}
	l.push(kind, start, value)
	return nil
}

// bad records n unrecognized bytes at start.
func (l *lexer) bad(start, n int) {
	if l.badBytes == 0 {
		l.badStart = start
	}
	l.badBytes += n
	l.cursor = start + n
}

// flushBad returns an error for the pending run of unrecognized bytes, if
// there is one.
func (l *lexer) flushBad() error {
	if l.badBytes == 0 {
		return nil
	}

	span := l.file.Span(l.badStart, l.badStart+l.badBytes)
	return &ErrInvalidToken{Text: span.Text(), Span: span}
}

// takeWhile consumes bytes while they match the given function, and returns
// the consumed text.
func (l *lexer) takeWhile(f func(byte) bool) string {
	start := l.cursor
	for l.cursor < len(l.text) && f(l.text[l.cursor]) {
		l.cursor++
	}
	return l.text[start:l.cursor]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f'
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}
