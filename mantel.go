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

// Package mantel builds lossless concrete syntax trees for a minimal SQL
// dialect of SELECT statements.
//
// The work is split across several packages: [lexer] turns text into tokens,
// [parser] turns tokens into a tree with the checkpointing builder from
// [green], and [cst] provides a navigable view of the result. This package
// ties them together, with [Build] for one-off parsing and [Compiler] for
// parsing many files at once.
package mantel

import (
	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/lexer"
	"github.com/mantelsql/mantel/parser"
	"github.com/mantelsql/mantel/source"
)

// Errors that [Build] and [Compiler.Compile] may produce.
type (
	ErrInvalidToken    = lexer.ErrInvalidToken
	ErrTrailingComma   = parser.ErrTrailingComma
	ErrMissingFrom     = parser.ErrMissingFrom
	ErrUnexpectedToken = parser.ErrUnexpectedToken
)

// Build parses code with default options and returns the root of its tree.
//
// The returned error is one of [*ErrInvalidToken], [*ErrTrailingComma], or
// [*ErrMissingFrom].
func Build(code string) (*cst.Node, error) {
	return parser.Parse(source.NewFile("", code), parser.Options{})
}
