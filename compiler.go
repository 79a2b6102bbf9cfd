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

package mantel

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/mantelsql/mantel/cst"
	"github.com/mantelsql/mantel/parser"
	"github.com/mantelsql/mantel/report"
	"github.com/mantelsql/mantel/source"
)

// Compiler parses batches of SQL files concurrently.
type Compiler struct {
	// Resolves paths into source files. This field is required.
	Opener source.Opener

	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int

	// Options for each parse. Options.Cache is ignored, because caches cannot
	// be shared between concurrent parses.
	Options parser.Options
}

// File is the result of compiling a single path.
type File struct {
	Path   string
	Source *source.File // Nil if the file could not be opened.
	Root   *cst.Node    // Nil if the file could not be parsed.

	// Diagnostics for this file, including warnings.
	Report report.Report
}

// Compile opens and parses each of the given paths, each on its own
// goroutine.
//
// The results are in the same order as paths. If any file could not be
// opened or parsed, the error is a [*report.AsError] holding the diagnostics
// of every file, and the results for the other files are still returned.
// Warnings alone are not an error; they are only recorded in [File.Report].
// If ctx expires first, Compile returns its error and no results.
func (c *Compiler) Compile(ctx context.Context, paths ...string) ([]File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	sem := semaphore.NewWeighted(int64(par))

	files := make([]File, len(paths))

	// Failed parses are not errors as far as the group is concerned; only a
	// context error stops it early.
	grp, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			files[i] = c.compile(path)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var all report.Report
	for i := range files {
		all.Append(&files[i].Report)
	}
	if all.HasErrors() {
		return files, &report.AsError{Report: all}
	}
	return files, nil
}

// compile compiles a single file.
func (c *Compiler) compile(path string) File {
	result := File{Path: path}
	r := &result.Report

	file, err := c.Opener.Open(path)
	if err != nil {
		r.Error(&report.ErrInFile{Err: err, Path: path})
		return result
	}
	result.Source = file

	opts := c.Options
	opts.Cache = nil
	root, err := parser.Parse(file, opts)
	if err != nil {
		var diagnose report.Diagnose
		if errors.As(err, &diagnose) {
			r.Error(diagnose)
		} else {
			r.Errorf("%v", err).With(report.InFile(file.Path()))
		}
		return result
	}
	result.Root = root

	tree, _ := cst.AsRoot(root)
	empty := true
	for range tree.Statements() {
		empty = false
		break
	}
	if empty {
		r.Warnf("file contains no statements").With(report.InFile(file.Path()))
	}
	return result
}
