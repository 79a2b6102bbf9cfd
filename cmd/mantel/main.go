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

// Command mantel parses SQL files and prints their syntax trees.
//
// Usage:
//
//	mantel [flags] [file ...]
//
// With no files, mantel reads standard input. Trees are printed to stdout;
// diagnostics are printed to stderr, and any error makes mantel exit with
// status 1.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/mantelsql/mantel"
	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/parser"
	"github.com/mantelsql/mantel/printer"
	"github.com/mantelsql/mantel/report"
	"github.com/mantelsql/mantel/source"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], source.OS{}, os.Stdout, os.Stderr))
}

// config holds the parsed command-line flags.
type config struct {
	opts        parser.Options
	json        bool
	color       string
	eval        string
	hasEval     bool // Set if -e was passed, even with empty code.
	interactive bool
	jobs        int
	files       []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := new(config)

	flags := flag.NewFlagSet("mantel", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&cfg.opts.Lossless, "lossless", false, "Keep keywords, whitespace and skipped tokens in the tree")
	flags.BoolVar(&cfg.opts.Strict, "strict", false, "Reject statements that do not begin with SELECT")
	flags.BoolVar(&cfg.json, "json", false, "Print trees as JSON")
	flags.StringVar(&cfg.color, "color", "auto", "Colorize diagnostics: auto, always, or never")
	flags.StringVar(&cfg.eval, "e", "", "Parse the given code instead of reading files")
	flags.BoolVar(&cfg.interactive, "i", false, "Start an interactive session")
	flags.IntVar(&cfg.jobs, "j", 0, "Maximum number of files to parse at once (default: number of CPUs)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: mantel [flags] [file ...]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "e" {
			cfg.hasEval = true
		}
	})
	switch cfg.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid value %q for -color", cfg.color)
	}

	cfg.files = flags.Args()
	if len(cfg.files) == 0 {
		cfg.files = []string{source.Stdin}
	}
	return cfg, nil
}

// colorize decides whether diagnostics written to w should be colorized.
func (c *config) colorize(w io.Writer) bool {
	switch c.color {
	case "always":
		return true
	case "never":
		return false
	}

	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func run(ctx context.Context, args []string, opener source.Opener, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, "mantel:", err)
		return 2
	}

	renderer := report.Renderer{Colorize: cfg.colorize(stderr)}

	switch {
	case cfg.interactive:
		if err := repl(cfg, renderer, stdout); err != nil {
			fmt.Fprintln(stderr, "mantel:", err)
			return 1
		}
		return 0

	case cfg.hasEval:
		const path = "<eval>"
		opener = source.Map{path: source.NewFile(path, cfg.eval)}
		cfg.files = []string{path}
	}

	compiler := mantel.Compiler{
		Opener:         opener,
		MaxParallelism: cfg.jobs,
		Options:        cfg.opts,
	}
	files, err := compiler.Compile(ctx, cfg.files...)

	var asErr *report.AsError
	if err != nil && !errors.As(err, &asErr) {
		fmt.Fprintln(stderr, "mantel:", err)
		return 1
	}

	var diagnostics report.Report

	for _, file := range files {
		diagnostics.Append(&file.Report)
		if file.Root == nil {
			continue
		}
		if len(files) > 1 {
			fmt.Fprintf(stdout, "-- %s\n", file.Path)
		}
		if err := dump(cfg, stdout, file.Root); err != nil {
			fmt.Fprintln(stderr, "mantel:", err)
			return 1
		}
	}

	if len(diagnostics.Diagnostics) == 0 {
		return 0
	}
	errs, _, err := renderer.Render(&diagnostics, stderr)
	if err != nil || errs > 0 {
		return 1
	}
	return 0
}

// dump prints a tree in the configured format.
func dump(cfg *config, w io.Writer, root *cst.Node) error {
	if !cfg.json {
		return printer.Fprint(w, root)
	}

	data, err := printer.JSON(root)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
