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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/mantelsql/mantel/parser"
	"github.com/mantelsql/mantel/report"
	"github.com/mantelsql/mantel/source"
)

const prompt = "mantel> "

// repl runs an interactive session on the terminal, parsing each line as it
// is entered.
func repl(cfg *config, renderer report.Renderer, out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)

	historyFile := filepath.Join(os.TempDir(), ".mantel_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprintln(out, "Type 'exit' or Ctrl+D to quit")
	for n := 1; ; {
		input, err := line.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Fprintln(out, "^C")
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case err != nil:
			return err
		}

		trimmed := strings.TrimSpace(input)
		switch trimmed {
		case "":
			continue
		case "exit", "quit", `\q`:
			return nil
		}

		line.AppendHistory(input)
		eval(cfg, renderer, fmt.Sprintf("<input %d>", n), input, out)
		n++
	}
}

// eval parses a single piece of input and prints either its tree or its
// diagnostics to out.
func eval(cfg *config, renderer report.Renderer, path, text string, out io.Writer) {
	root, err := parser.Parse(source.NewFile(path, text), cfg.opts)
	if err == nil {
		if err := dump(cfg, out, root); err != nil {
			fmt.Fprintln(out, "mantel:", err)
		}
		return
	}

	var r report.Report
	var diagnose report.Diagnose
	if errors.As(err, &diagnose) {
		r.Error(diagnose)
	} else {
		r.Errorf("%v", err)
	}
	_, _, _ = renderer.Render(&r, out)
}

// complete completes the last word of line to a keyword, matching the case
// the user started typing in.
func complete(line string) []string {
	start := strings.LastIndexAny(line, " \t\n\f,*") + 1
	prefix, word := line[:start], line[start:]
	if word == "" {
		return nil
	}

	var out []string
	for _, kw := range []string{"SELECT", "FROM"} {
		if !strings.HasPrefix(kw, strings.ToUpper(word)) {
			continue
		}
		if word == strings.ToLower(word) {
			kw = strings.ToLower(kw)
		}
		out = append(out, prefix+kw)
	}
	return out
}
