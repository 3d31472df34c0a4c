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

package format_test

import (
	"testing"

	"github.com/rogpeppe/go-internal/diff"

	"github.com/deathlyfrantic/vimlfmt/format"
	"github.com/deathlyfrantic/vimlfmt/parser"
)

func reformat(t *testing.T, lines []string, opts ...format.Option) string {
	t.Helper()
	top, err := parser.ParseLines(lines)
	if err != nil {
		t.Fatalf("ParseLines(%v) error: %v", lines, err)
	}
	out, err := format.Source(top, opts...)
	if err != nil {
		t.Fatalf("Source() error: %v", err)
	}
	return string(out)
}

// requireFormatted renders a unified diff on mismatch rather than dumping
// both strings raw, the way cmd/cue/cmd/fmt.go's --diff flag does for a
// badly-formatted file.
func requireFormatted(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	d := diff.Diff("want", []byte(want), "got", []byte(got))
	t.Errorf("Source() mismatch (-want +got):\n%s", d)
}

func TestSourceSimpleEcho(t *testing.T) {
	got := reformat(t, []string{"echo 1"})
	requireFormatted(t, got, "echo 1\n")
}

func TestSourceIfEndif(t *testing.T) {
	got := reformat(t, []string{"if foo", "echo 1", "endif"})
	requireFormatted(t, got, "if foo\n  echo 1\nendif\n")
}

func TestSourceFunctionHeader(t *testing.T) {
	got := reformat(t, []string{
		"function! s:Foo(a, b)",
		"return a + b",
		"endfunction",
	})
	requireFormatted(t, got, "function! s:Foo(a, b)\n  return a + b\nendfunction\n")
}

func TestSourceListOneLine(t *testing.T) {
	got := reformat(t, []string{"let x = [1, 2, 3]"})
	requireFormatted(t, got, "let x = [1, 2, 3]\n")
}

func TestSourceListExplodesWhenOverLength(t *testing.T) {
	got := reformat(t, []string{"let x = [1, 2, 3]"}, format.MaxLineLength(10))
	requireFormatted(t, got, "let x = [\n  \\ 1,\n  \\ 2,\n  \\ 3\n]\n")
}

func TestSourceAugroupEndUppercased(t *testing.T) {
	got := reformat(t, []string{"augroup myGroup", "augroup end"})
	requireFormatted(t, got, "augroup myGroup\naugroup END\n")
}

func TestSourceWhileLoop(t *testing.T) {
	got := reformat(t, []string{"while i < 10", "let i += 1", "endwhile"})
	requireFormatted(t, got, "while i < 10\n  let i += 1\nendwhile\n")
}

func TestSourceCustomIndent(t *testing.T) {
	got := reformat(t, []string{"if foo", "echo 1", "endif"}, format.Indent("\t"))
	requireFormatted(t, got, "if foo\n\techo 1\nendif\n")
}

func TestSourceTrailingNewlineAlwaysPresent(t *testing.T) {
	got := reformat(t, []string{"echo 1"})
	if got[len(got)-1] != '\n' {
		t.Errorf("Source() output must end with a newline, got %q", got)
	}
}
