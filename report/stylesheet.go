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

import "fmt"

// levelColors holds the ANSI foreground color for each level. Notes, line
// numbers and secondary underlines share the blue "accent" color, which keeps
// them apart from the SQL text itself.
var levelColors = [...]int{
	Error:     31, // Red.
	Warning:   33, // Yellow.
	Remark:    36, // Cyan.
	noteLevel: 34, // Blue.
}

// styleSheet holds the escape sequences used when rendering diagnostics. All
// of them are empty when color is off.
type styleSheet struct {
	reset string

	normal, bold [len(levelColors)]string
}

func newStyleSheet(r *Renderer) styleSheet {
	var c styleSheet
	if !r.Colorize {
		return c
	}

	c.reset = "\033[0m"
	for l, color := range levelColors {
		if color == 0 {
			continue
		}
		c.normal[l] = fmt.Sprintf("\033[0;%dm", color)
		c.bold[l] = fmt.Sprintf("\033[1;%dm", color)
	}
	return c
}

// ColorForLevel returns the escape sequence for the non-bold color to use for
// the given level.
func (c styleSheet) ColorForLevel(l Level) string {
	if l < 0 || int(l) >= len(c.normal) {
		return ""
	}
	return c.normal[l]
}

// BoldForLevel returns the escape sequence for the bold color to use for
// the given level.
func (c styleSheet) BoldForLevel(l Level) string {
	if l < 0 || int(l) >= len(c.bold) {
		return ""
	}
	return c.bold[l]
}

// accent is the color of line numbers, gutters and secondary underlines.
func (c styleSheet) accent() string {
	return c.normal[noteLevel]
}
