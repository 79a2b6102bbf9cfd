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

	"github.com/mantelsql/mantel/report"
	"github.com/mantelsql/mantel/source"
)

// ErrTrailingComma is returned when a comma is not followed by an identifier.
type ErrTrailingComma struct {
	// The offending comma.
	Span source.Span
}

// ErrMissingFrom is returned when the input ends before a statement's FROM
// clause.
type ErrMissingFrom struct {
	// The SELECT keyword of the incomplete statement.
	Span source.Span
}

// ErrUnexpectedToken is returned in strict mode when a statement does not
// begin with SELECT.
type ErrUnexpectedToken struct {
	Text string
	Span source.Span
}

var (
	_ report.Diagnose = (*ErrTrailingComma)(nil)
	_ report.Diagnose = (*ErrMissingFrom)(nil)
	_ report.Diagnose = (*ErrUnexpectedToken)(nil)
)

// Error implements [error].
func (e *ErrTrailingComma) Error() string {
	return "trailing comma is not allowed"
}

// Diagnose implements [report.Diagnose].
func (e *ErrTrailingComma) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("trailing-comma"),
		report.Snippet(e.Span, "expected an identifier after this comma"),
		report.Help("remove the trailing comma"),
	)
}

// Error implements [error].
func (e *ErrMissingFrom) Error() string {
	return "expected FROM clause"
}

// Diagnose implements [report.Diagnose].
func (e *ErrMissingFrom) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("missing-from"),
		report.Snippet(e.Span, "this statement has no FROM clause"),
	)
	if e.Span.File != nil {
		d.With(report.Snippet(e.Span.EOF(), "input ends here"))
	}
}

// Error implements [error].
func (e *ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected %q, expected SELECT", e.Text)
}

// Diagnose implements [report.Diagnose].
func (e *ErrUnexpectedToken) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Tag("unexpected-token"),
		report.Snippet(e.Span, "statements must begin with SELECT"),
	)
}
