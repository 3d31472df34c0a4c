// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command vimlfmt reformats Vimscript read from standard input, or from
// one or more file arguments (spec.md §6): by default it rewrites the
// source into canonical form, with --ast and --debug switching to the
// S-expression dump and the low-level debug dump respectively, and --write
// rewriting file arguments in place instead of printing to stdout.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rogpeppe/go-internal/diff"
	"github.com/spf13/cobra"

	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/format"
	"github.com/deathlyfrantic/vimlfmt/parser"
	"github.com/deathlyfrantic/vimlfmt/token"
)

func newRootCmd() *cobra.Command {
	var showAST, showDebug, showDiff, write bool
	var indent string
	var width int

	cmd := &cobra.Command{
		Use:   "vimlfmt [files...]",
		Short: "reformat Vimscript read from standard input or from file arguments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []format.Option{format.Indent(indent), format.MaxLineLength(width)}
			rc := runConfig{showAST: showAST, showDebug: showDebug, showDiff: showDiff, write: write, opts: opts}
			if len(args) == 0 {
				return runOne(cmd.InOrStdin(), cmd.OutOrStdout(), "stdin", rc)
			}
			return runFiles(cmd.OutOrStdout(), args, rc)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&showAST, "ast", false, "emit the S-expression AST dump instead of reformatting")
	cmd.Flags().BoolVar(&showDebug, "debug", false, "emit a low-level debug dump of the tree instead of reformatting")
	cmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "print a unified diff against the input instead of rewriting it")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite file arguments in place instead of printing to stdout (ignored when reading from stdin)")
	cmd.Flags().StringVar(&indent, "indent", "  ", "indent string used for each nesting level")
	cmd.Flags().IntVar(&width, "width", 80, "soft line-length budget before a container is exploded across lines")

	return cmd
}

// runConfig bundles the flags that control how a single source is
// formatted, threaded through both the single-stdin path and the
// multi-file --write path.
type runConfig struct {
	showAST, showDebug, showDiff, write bool
	opts                                []format.Option
}

// runOne formats a single source (stdin, or one file read by runFiles) and
// writes the result to out, or — when cfg.write is set and name isn't
// "stdin" — back to the file at name.
func runOne(in io.Reader, out io.Writer, name string, cfg runConfig) error {
	data, err := io.ReadAll(bufio.NewReader(in))
	if err != nil {
		return err
	}
	original := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(original, "\n")

	top, err := parser.ParseLines(lines)
	if err != nil {
		return err
	}

	switch {
	case cfg.showAST:
		fmt.Fprintln(out, parser.Dump(top))
		return nil
	case cfg.showDebug:
		fmt.Fprint(out, parser.Debug(top))
		return nil
	case cfg.showDiff:
		src, err := format.Source(top, cfg.opts...)
		if err != nil {
			return err
		}
		d := diff.Diff(name+".orig", append([]byte(original), '\n'), name, src)
		out.Write(d)
		return nil
	}

	src, err := format.Source(top, cfg.opts...)
	if err != nil {
		return err
	}
	if cfg.write && name != "stdin" {
		return os.WriteFile(name, src, 0o644)
	}
	out.Write(src)
	return nil
}

// runFiles formats each named file in turn, the way cmd/cue/cmd/fmt.go
// walks multiple build files: a parse failure in one file is recorded and
// the rest still run, so a single bad file in a batch doesn't hide
// failures in the others. The accumulated errors.List is returned (as a
// plain error) once every file has been attempted.
func runFiles(out io.Writer, paths []string, cfg runConfig) error {
	var errs errors.List
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			errs.Add(errors.Newf(token.NoPos, "%s: %s", path, err))
			continue
		}
		if err := runOne(bytes.NewReader(data), out, path, cfg); err != nil {
			if pe, ok := err.(errors.Error); ok {
				errs.Add(pe)
			} else {
				errs.Add(errors.Newf(token.NoPos, "%s: %s", path, err))
			}
		}
	}
	return errs.Err()
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if list, ok := err.(errors.List); ok {
			for _, e := range list {
				reportError(e)
			}
			os.Exit(1)
		}
		if pe, ok := err.(errors.Error); ok {
			reportError(pe)
		} else {
			fmt.Fprintf(os.Stderr, "%s\n", err)
		}
		os.Exit(1)
	}
}

func reportError(pe errors.Error) {
	pos := pe.Position()
	if pos.IsValid() {
		fmt.Fprintf(os.Stderr, "Parse error at line %d, col %d: %s\n", pos.Line, pos.Column, pe.Error())
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", pe.Error())
}
