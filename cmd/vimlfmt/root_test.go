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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/format"
)

func defaultConfig() runConfig {
	return runConfig{opts: []format.Option{format.Indent("  "), format.MaxLineLength(80)}}
}

func TestRunOneFormatsStdin(t *testing.T) {
	var out bytes.Buffer
	if err := runOne(strings.NewReader("echo   1"), &out, "stdin", defaultConfig()); err != nil {
		t.Fatalf("runOne() error: %v", err)
	}
	if got, want := out.String(), "echo 1\n"; got != want {
		t.Errorf("runOne() output = %q; want %q", got, want)
	}
}

func TestRunOneAST(t *testing.T) {
	cfg := defaultConfig()
	cfg.showAST = true
	var out bytes.Buffer
	if err := runOne(strings.NewReader("echo 1"), &out, "stdin", cfg); err != nil {
		t.Fatalf("runOne() error: %v", err)
	}
	if !strings.Contains(out.String(), "echo") {
		t.Errorf("runOne(--ast) output = %q; want it to mention the echo command", out.String())
	}
}

func TestRunOnePropagatesParseError(t *testing.T) {
	var out bytes.Buffer
	err := runOne(strings.NewReader("endif"), &out, "stdin", defaultConfig())
	if err == nil {
		t.Fatalf("expected a parse error for a stray endif")
	}
	if _, ok := err.(errors.Error); !ok {
		t.Errorf("error %v (%T) should satisfy errors.Error", err, err)
	}
}

func TestRunOneWritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vim")
	if err := os.WriteFile(path, []byte("echo   1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := defaultConfig()
	cfg.write = true
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var out bytes.Buffer
	if err := runOne(bytes.NewReader(data), &out, path, cfg); err != nil {
		t.Fatalf("runOne() error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("runOne(write=true) should not write to stdout, got %q", out.String())
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile after write: %v", err)
	}
	if want := "echo 1\n"; string(got) != want {
		t.Errorf("file contents = %q; want %q", got, want)
	}
}

func TestRunFilesAccumulatesErrorsAndKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.vim")
	bad := filepath.Join(dir, "bad.vim")
	if err := os.WriteFile(good, []byte("echo 1"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(bad, []byte("endif"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	err := runFiles(&out, []string{bad, good}, defaultConfig())
	if err == nil {
		t.Fatalf("expected an error from the batch (bad.vim should fail)")
	}
	list, ok := err.(errors.List)
	if !ok {
		t.Fatalf("error %v (%T) should be an errors.List", err, err)
	}
	if len(list) != 1 {
		t.Fatalf("errors.List has %d entries; want 1 (only bad.vim should fail)", len(list))
	}
	// good.vim must still have been formatted and written to stdout despite
	// bad.vim's failure.
	if !strings.Contains(out.String(), "echo 1") {
		t.Errorf("runFiles() stdout = %q; want it to contain good.vim's formatted output", out.String())
	}
}

func TestRunFilesWriteRewritesOnlyGoodFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vim")
	if err := os.WriteFile(path, []byte("echo   2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg := defaultConfig()
	cfg.write = true
	var out bytes.Buffer
	if err := runFiles(&out, []string{path}, cfg); err != nil {
		t.Fatalf("runFiles() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if want := "echo 2\n"; string(got) != want {
		t.Errorf("file contents = %q; want %q", got, want)
	}
}
