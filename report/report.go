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

package report

import (
	"cmp"
	"fmt"
	"os"
	"runtime"
	"slices"
)

// debugMode is set from the MANTEL_DEBUG environment variable once at startup.
var debugMode = os.Getenv("MANTEL_DEBUG") != ""

// Report is a collection of diagnostics.
//
// A Report is not thread-safe.
type Report struct {
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, err, Warning)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, fmt.Errorf(format, args...), Remark)
}

// HasErrors returns whether this report contains any error-level diagnostics.
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.level == Error
	})
}

// Append appends every diagnostic in other to this report.
func (r *Report) Append(other *Report) {
	r.Diagnostics = append(r.Diagnostics, other.Diagnostics...)
}

// Sort canonicalizes this report's diagnostic order: by file, then by primary
// span offset, then by level. Diagnostics with no span sort first within
// their file.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		pa, pb := a.Primary(), b.Primary()
		return cmp.Or(
			cmp.Compare(a.path(), b.path()),
			cmp.Compare(pa.Start, pb.Start),
			cmp.Compare(pa.End, pb.End),
			cmp.Compare(a.level, b.level),
		)
	})
}

// path returns the path of the file this diagnostic is about, if any.
func (d *Diagnostic) path() string {
	if p := d.Primary(); p.File != nil {
		return p.Path()
	}
	return d.inFile
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, err error, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{err: err, level: level})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	// If debugging is on, capture a stack trace.
	if debugMode {
		// Unwind the stack to find program counter information.
		pc := make([]uintptr, 64)
		pc = pc[:runtime.Callers(skip+2, pc)]

		var zero runtime.Frame
		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != zero {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}
