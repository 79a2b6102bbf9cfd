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
	"fmt"

	"github.com/mantelsql/mantel/report"
	"github.com/mantelsql/mantel/source"
	"github.com/mantelsql/mantel/syntax"
)

// Token is a single lexical token.
type Token struct {
	Kind Kind

	// The token's literal value.
	//
	// Keywords carry their canonical uppercase spelling, quoted text has its
	// quotes removed, and everything else is exactly as it appears in the
	// source.
	Value string

	// Where in the source this token was read from. For quoted text, this
	// includes the quotes.
	Span source.Span
}

// Syntax returns the syntax kind and text this token contributes to a tree.
func (t Token) Syntax() (syntax.Kind, string) {
	switch t.Kind {
	case Space:
		return syntax.Whitespace, t.Value
	case Select:
		return syntax.Select, "SELECT"
	case From:
		return syntax.From, "FROM"
	case Text:
		return syntax.Text, t.Value
	case Identifier:
		return syntax.Identifier, t.Value
	case All:
		return syntax.All, "*"
	case Comma:
		return syntax.Comma, ","
	default:
		panic(fmt.Sprintf("mantel/lexer: unknown token kind %v", t.Kind))
	}
}

// IsSpace returns whether this token is whitespace trivia.
func (t Token) IsSpace() bool {
	return t.Kind == Space
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Value)
}

// ErrInvalidToken is returned when the lexer encounters bytes that do not
// begin any token.
type ErrInvalidToken struct {
	// The maximal run of unrecognized bytes.
	Text string
	Span source.Span
}

var _ report.Diagnose = (*ErrInvalidToken)(nil)

// Error implements [error].
func (e *ErrInvalidToken) Error() string {
	return fmt.Sprintf("invalid token %q", e.Text)
}

// Diagnose implements [report.Diagnose].
func (e *ErrInvalidToken) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("invalid-token"),
		report.Snippet(e.Span, "not part of any token"),
	)

	switch e.Text[0] {
	case '"', '\'':
		d.With(report.Help("quoted text must be closed with a matching %c", e.Text[0]))
	case '\r':
		d.With(report.Note("carriage returns are not whitespace"))
	}
}
