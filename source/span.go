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

package source

import "fmt"

// Spanner is any type with a [Span], such as a token or an error.
type Spanner interface {
	// Returns the zero [Span] if there is nothing to point at.
	Span() Span
}

// Span is a half-open byte range of a [File].
type Span struct {
	*File
	Start, End int
}

// Location is a line and column in a [File], as shown to users.
type Location struct {
	Offset int

	// 1-indexed, so a zero Line means "no location".
	Line, Column int
}

// IsZero returns whether s points at no file.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the source text s covers.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of s in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// StartLoc returns where s begins, with columns counted in terminal cells.
func (s Span) StartLoc() Location {
	return s.Location(s.Start, TermWidth)
}

// EndLoc returns where s ends, with columns counted in terminal cells.
func (s Span) EndLoc() Location {
	return s.Location(s.End, TermWidth)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer]. It prints s as path:line:col, the way
// compilers print positions, followed by the byte range.
func (s Span) String() string {
	if s.IsZero() {
		return "<no span>"
	}
	start := s.StartLoc()
	return fmt.Sprintf("%s:%d:%d (bytes %d..%d)", s.Path(), start.Line, start.Column, s.Start, s.End)
}
