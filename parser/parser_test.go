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

package parser_test

import (
	"strings"
	"testing"

	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/parser"
)

// dump is a small helper that parses lines and renders the S-expression
// dump of the whole program (every top-level statement joined by "\n", as
// parser.Dump does), for comparison against spec.md §8's scenarios.
func dump(t *testing.T, lines []string) string {
	t.Helper()
	top, err := parser.ParseLines(lines)
	if err != nil {
		t.Fatalf("ParseLines(%v) error: %v", lines, err)
	}
	return parser.Dump(top)
}

func TestDumpIfElseIfElse(t *testing.T) {
	got := dump(t, []string{
		"if foo",
		"echo $ENV",
		"elseif bar",
		"echo &number",
		"else",
		"echo @r",
		"endif",
	})
	want := "(if foo\n  (echo $ENV)\n elseif bar\n  (echo &number)\n else\n  (echo @r))"
	if got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpForDestructuredRest(t *testing.T) {
	got := dump(t, []string{
		"for [a, b; z] in something",
		"echo a b z",
		"endfor",
	})
	want := "(for (a b . z) something\n  (echo a b z))"
	if got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpFunctionLambdaTernary(t *testing.T) {
	got := dump(t, []string{
		"function! s:foo() abort dict",
		"  return map([1, 2, 3], {i, v -> v * 2 + i})",
		"endfunction",
	})
	want := "(function (s:foo)\n  (return (map (list 1 2 3) (lambda (i v) (+ (* v 2) i)))))"
	if got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpSliceSubscriptChain(t *testing.T) {
	got := dump(t, []string{`echo 'foobar'[1:-2][1]`})
	want := "(echo (subscript (slice 'foobar' 1 (- 2)) 1))"
	if got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpTryCatchFinally(t *testing.T) {
	got := dump(t, []string{
		"try",
		"echomsg 1",
		"catch /foo/",
		"echoerr 2",
		"catch",
		"echoerr 3",
		"finally",
		"echomsg 4",
		"endtry",
	})
	if !strings.HasPrefix(got, "(try") || !strings.HasSuffix(got, ")") {
		t.Fatalf("Dump() = %q; want a (try …) node", got)
	}
	if strings.Count(got, " catch") != 2 {
		t.Errorf("Dump() = %q; want exactly 2 catch clauses", got)
	}
	if !strings.Contains(got, "/foo/") {
		t.Errorf("Dump() = %q; want the pattern-bearing catch to show /foo/", got)
	}
	if !strings.Contains(got, " finally") {
		t.Errorf("Dump() = %q; want a finally clause", got)
	}
}

func TestDumpHighlightLink(t *testing.T) {
	got := dump(t, []string{"highlight link String Comment"})
	want := "(highlight link String Comment)"
	if got != want {
		t.Errorf("Dump() = %q; want %q", got, want)
	}
}

func errCode(t *testing.T, err error) string {
	t.Helper()
	pe, ok := err.(errors.Error)
	if !ok {
		t.Fatalf("error %v does not implement errors.Error", err)
	}
	return pe.Error()
}

func TestHighlightLinkMissingArgs(t *testing.T) {
	_, err := parser.ParseLines([]string{"highlight link"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E412") {
		t.Errorf("error = %q; want it to contain E412", errCode(t, err))
	}
}

func TestHighlightUnknownAttr(t *testing.T) {
	_, err := parser.ParseLines([]string{"highlight String foobar=123"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E423") {
		t.Errorf("error = %q; want it to contain E423", errCode(t, err))
	}
}

func TestBreakOutsideLoop(t *testing.T) {
	_, err := parser.ParseLines([]string{"break"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E587") {
		t.Errorf("error = %q; want it to contain E587", errCode(t, err))
	}
}

func TestEndFunctionAtTopLevel(t *testing.T) {
	_, err := parser.ParseLines([]string{"endfunction"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E193") {
		t.Errorf("error = %q; want it to contain E193", errCode(t, err))
	}
}

func TestLetInvalidLHS(t *testing.T) {
	_, err := parser.ParseLines([]string{"let 2x = 1"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E461") {
		t.Errorf("error = %q; want it to contain E461", errCode(t, err))
	}
}

func TestFunctionLowercaseNoScope(t *testing.T) {
	_, err := parser.ParseLines([]string{
		"function! foo()",
		"endfunction",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(errCode(t, err), "E128") {
		t.Errorf("error = %q; want it to contain E128", errCode(t, err))
	}
}

func TestUnterminatedDict(t *testing.T) {
	_, err := parser.ParseLines([]string{"let x = {'k1': v1, 'k2'"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := parser.ParseFile("/nonexistent/path/to/a/file.vim")
	if err == nil {
		t.Fatalf("expected error")
	}
	pe, ok := err.(errors.Error)
	if !ok {
		t.Fatalf("error does not implement errors.Error")
	}
	if pe.Position().Line != 0 {
		t.Errorf("Position().Line = %d; want 0 (zero Pos for file I/O errors)", pe.Position().Line)
	}
}

func TestBlankLinesDroppedFromDump(t *testing.T) {
	got := dump(t, []string{"echo 1", "", "echo 2"})
	want := "(echo 1)\n(echo 2)"
	if got != want {
		t.Errorf("Dump() = %q; want %q", got, want)
	}
}

func TestCommentDump(t *testing.T) {
	got := dump(t, []string{`" a comment`})
	want := `(comment " a comment)`
	if got != want {
		t.Errorf("Dump() = %q; want %q", got, want)
	}
}
