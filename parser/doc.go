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

// Package parser builds syntax trees out of SQL tokens.
//
// The grammar is small:
//
//	root        := statement*
//	statement   := SELECT column-list FROM target
//	column-list := ALL | IDENTIFIER (COMMA IDENTIFIER)*
//	target      := any token
//
// The parser is error-intolerant: the first problem aborts the parse, and no
// partial tree is produced.
//
// By default, trees keep only what is needed to reconstruct the statement's
// meaning: the SELECT and FROM keywords, commas between FROM targets, and
// whitespace are all dropped, and tokens that cannot start a statement are
// skipped. [Options.Lossless] keeps every token instead.
package parser
