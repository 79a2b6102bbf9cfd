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
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// tabstop is the number of columns a tab expands to when rendering source
// code windows.
const tabstop = 4

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, uses a compact one-line format for each diagnostic.
	Compact bool

	// If set, rendering results are enriched with ANSI color escapes.
	Colorize bool

	// Upgrades all warnings to errors.
	WarningsAreErrors bool

	// If set, remark diagnostics will be printed.
	ShowRemarks bool

	// If set, rendering a diagnostic will show the debug footer.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// In addition to returning the rendering result, returns the number of errors
// and warnings that were rendered.
//
// On the other hand, the actual error-typed return is an error when writing to
// the writer.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		if !r.ShowRemarks && d.level == Remark {
			continue
		}

		if _, err = fmt.Fprintln(out, r.Diagnostic(d)); err != nil {
			return
		}
		if !r.Compact {
			if _, err = fmt.Fprintln(out); err != nil {
				return
			}
		}

		switch r.level(d) {
		case Error:
			errorCount++
		case Warning:
			warningCount++
		}
	}
	if r.Compact {
		return
	}

	c := newStyleSheet(&r)
	pluralize := func(count int, what string) string {
		if count == 1 {
			return "1 " + what
		}
		return fmt.Sprint(count, " ", what, "s")
	}

	switch {
	case errorCount > 0 && warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"),
			" and ", pluralize(warningCount, "warning"), c.reset, "\n")
	case errorCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Error), "encountered ", pluralize(errorCount, "error"), c.reset, "\n")
	case warningCount > 0:
		_, err = fmt.Fprint(out, c.BoldForLevel(Warning), "encountered ", pluralize(warningCount, "warning"), c.reset, "\n")
	}
	return
}

// RenderString is a helper for calling [Renderer.Render] with a [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	e, w, _ := r.Render(report, &buf)
	return buf.String(), e, w
}

// Diagnostic renders a single diagnostic to a string.
func (r Renderer) Diagnostic(d *Diagnostic) string {
	level := r.level(d)
	c := newStyleSheet(&r)

	// For the simple style, we imitate the Go compiler.
	if r.Compact {
		primary := d.Primary()
		switch {
		case !primary.IsZero():
			start := primary.StartLoc()
			return fmt.Sprintf("%s%s: %s:%d:%d: %s%s",
				c.ColorForLevel(level), level, primary.Path(), start.Line, start.Column, d.Message(), c.reset)
		case d.inFile != "":
			return fmt.Sprintf("%s%s: %s: %s%s",
				c.ColorForLevel(level), level, d.inFile, d.Message(), c.reset)
		default:
			return fmt.Sprintf("%s%s: %s%s",
				c.ColorForLevel(level), level, d.Message(), c.reset)
		}
	}

	// For the other styles, we imitate the Rust compiler.
	var out strings.Builder
	fmt.Fprint(&out, c.BoldForLevel(level), level, ": ", d.Message(), c.reset)

	// Figure out how wide the line bar needs to be. This is given by
	// the width of the largest line value among the annotations.
	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.EndLoc().Line)
	}
	lineBarWidth := max(2, len(strconv.Itoa(greatestLine)))

	for i, a := range d.annotations {
		if i > 0 && a.File == d.annotations[i-1].File {
			continue
		}

		out.WriteByte('\n')
		out.WriteString(c.accent())
		padBy(&out, lineBarWidth)
		start := a.StartLoc()
		if i == 0 {
			fmt.Fprintf(&out, "--> %s:%d:%d", a.Path(), start.Line, start.Column)
		} else {
			fmt.Fprintf(&out, "::: %s:%d:%d", a.Path(), start.Line, start.Column)
		}

		// Add a blank line after the file. This gives the diagnostic window some
		// visual breathing room.
		out.WriteByte('\n')
		padBy(&out, lineBarWidth)
		out.WriteString(" |")

		end := i + 1
		for end < len(d.annotations) && d.annotations[end].File == a.File {
			end++
		}
		renderWindow(level, d.annotations[i:end], lineBarWidth, &c, &out)
	}

	// Render a remedial file name for spanless errors.
	if len(d.annotations) == 0 && d.inFile != "" {
		out.WriteByte('\n')
		out.WriteString(c.accent())
		padBy(&out, lineBarWidth)
		fmt.Fprintf(&out, "--> %s", d.inFile)
	}

	// Render the footers. For simplicity we collect them into an array first.
	footers := make([][3]string, 0, len(d.notes)+len(d.help)+len(d.debug))
	for _, note := range d.notes {
		footers = append(footers, [3]string{c.BoldForLevel(Remark), "note", note})
	}
	for _, help := range d.help {
		footers = append(footers, [3]string{c.BoldForLevel(Remark), "help", help})
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			footers = append(footers, [3]string{c.BoldForLevel(Error), "debug", debug})
		}
		for _, frame := range d.trace {
			footers = append(footers, [3]string{c.BoldForLevel(Error), "debug",
				fmt.Sprintf("at %s\n%s:%d", frame.Function, frame.File, frame.Line)})
		}
	}
	for _, footer := range footers {
		out.WriteByte('\n')
		out.WriteString(c.accent())
		padBy(&out, lineBarWidth)
		out.WriteString(" = ")
		fmt.Fprint(&out, footer[0], footer[1], ": ", c.reset)
		for i, line := range strings.Split(footer[2], "\n") {
			if i > 0 {
				out.WriteByte('\n')
				padBy(&out, lineBarWidth+3+len(footer[1])+2)
			}
			out.WriteString(line)
		}
	}

	out.WriteString(c.reset)
	return out.String()
}

func (r *Renderer) level(d *Diagnostic) Level {
	if d.level == Warning && r.WarningsAreErrors {
		return Error
	}
	return d.level
}

// renderWindow renders the source lines touched by annotations, which must
// all belong to the same file.
//
// Each annotation is underlined on the line it starts on; spans that run past
// the end of that line are clipped to it.
func renderWindow(level Level, annotations []annotation, lineBarWidth int, c *styleSheet, out *strings.Builder) {
	sorted := slices.Clone(annotations)
	slices.SortStableFunc(sorted, func(a, b annotation) int {
		return a.Start - b.Start
	})

	lastLine := 0
	for _, a := range sorted {
		line := a.StartLoc().Line
		lineStart, lineEnd := a.LineOffsets(line)
		text := strings.TrimRight(a.File.Text()[lineStart:lineEnd], "\r\n")

		if line != lastLine {
			if lastLine != 0 && line > lastLine+1 {
				out.WriteByte('\n')
				out.WriteString(c.accent())
				out.WriteString("...")
			}

			out.WriteByte('\n')
			out.WriteString(c.accent())
			fmt.Fprintf(out, "%*d | ", lineBarWidth, line)
			out.WriteString(c.reset)
			out.WriteString(expandTabs(text))
			lastLine = line
		}

		startCol := min(a.Start-lineStart, len(text))
		endCol := min(a.End-lineStart, len(text))
		prefix := uniseg.StringWidth(expandTabs(text[:startCol]))
		width := max(1, uniseg.StringWidth(expandTabs(text[:max(startCol, endCol)]))-prefix)

		color, underline := c.accent(), "-"
		if a.primary {
			color, underline = c.BoldForLevel(level), "^"
		}

		out.WriteByte('\n')
		out.WriteString(c.accent())
		padBy(out, lineBarWidth)
		out.WriteString(" | ")
		padBy(out, prefix)
		out.WriteString(color)
		out.WriteString(strings.Repeat(underline, width))
		if a.message != "" {
			out.WriteByte(' ')
			out.WriteString(a.message)
		}
		out.WriteString(c.reset)
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabstop))
}

func padBy(out *strings.Builder, spaces int) {
	for range spaces {
		out.WriteByte(' ')
	}
}
