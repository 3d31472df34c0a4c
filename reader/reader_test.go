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

package reader

import "testing"

func TestNewSingleLine(t *testing.T) {
	cs := New([]string{"let x = 1"})
	if got := cs.Len(); got != len("let x = 1") {
		t.Fatalf("Len() = %d; want %d", got, len("let x = 1"))
	}
	if got := cs.Peekn(3); got != "let" {
		t.Errorf("Peekn(3) = %q; want %q", got, "let")
	}
}

func TestNewSplicesContinuationLines(t *testing.T) {
	cs := New([]string{
		"call foo(1,",
		`  \ 2,`,
		`  \ 3)`,
	})
	want := "call foo(1, 2, 3)"
	got := cs.Peekn(cs.Len())
	if got != want {
		t.Errorf("spliced buffer = %q; want %q", got, want)
	}
}

func TestNewSplicePositionsKeepOriginalLineCol(t *testing.T) {
	cs := New([]string{
		"call foo(1,",
		`  \ 2)`,
	})
	// advance to the '2' following the spliced-in space
	for cs.Peek() != '2' {
		cs.Get()
	}
	pos := cs.Getpos()
	if pos.Line != 2 {
		t.Errorf("Line = %d; want 2", pos.Line)
	}
	// column is just after "  \ " (4 chars) on the original line
	if pos.Column != 5 {
		t.Errorf("Column = %d; want 5", pos.Column)
	}
}

func TestNewInsertsNewlineBetweenLogicalLines(t *testing.T) {
	cs := New([]string{"echo 1", "echo 2"})
	begin := cs.Getpos()
	cs.SeekEnd(0)
	end := cs.Getpos()
	got := cs.Getstr(begin, end)
	want := "echo 1\necho 2"
	if got != want {
		t.Errorf("buffer = %q; want %q", got, want)
	}
}

func TestPeekGetAdvance(t *testing.T) {
	cs := New([]string{"abc"})
	if r := cs.Peek(); r != 'a' {
		t.Fatalf("Peek() = %q; want 'a'", r)
	}
	if r := cs.Get(); r != 'a' {
		t.Fatalf("Get() = %q; want 'a'", r)
	}
	if r := cs.Peek(); r != 'b' {
		t.Errorf("Peek() after Get() = %q; want 'b'", r)
	}
}

func TestAtEOF(t *testing.T) {
	cs := New([]string{"a"})
	if cs.AtEOF() {
		t.Fatalf("should not be at EOF yet")
	}
	cs.Get()
	if !cs.AtEOF() {
		t.Errorf("should be at EOF after consuming the only character")
	}
	if r := cs.Get(); r != EOF {
		t.Errorf("Get() past EOF = %q; want EOF", r)
	}
}

func TestPeekAhead(t *testing.T) {
	cs := New([]string{"abcd"})
	if r := cs.PeekAhead(2); r != 'c' {
		t.Errorf("PeekAhead(2) = %q; want 'c'", r)
	}
	cs.Get()
	if r := cs.PeekAhead(-1); r != 'a' {
		t.Errorf("PeekAhead(-1) = %q; want 'a'", r)
	}
}

func TestPeekLineStopsAtNewline(t *testing.T) {
	cs := New([]string{"foo", "bar"})
	if got := cs.PeekLine(); got != "foo" {
		t.Errorf("PeekLine() = %q; want %q", got, "foo")
	}
	// PeekLine must not have advanced the cursor
	if got := cs.Peekn(3); got != "foo" {
		t.Errorf("cursor advanced by PeekLine(): Peekn(3) = %q", got)
	}
}

func TestGetLineAdvancesPastNewline(t *testing.T) {
	cs := New([]string{"foo", "bar"})
	line := cs.GetLine()
	if line != "foo" {
		t.Fatalf("GetLine() = %q; want %q", line, "foo")
	}
	if got := cs.Peekn(3); got != "bar" {
		t.Errorf("after GetLine(), Peekn(3) = %q; want %q", got, "bar")
	}
}

func TestGetstr(t *testing.T) {
	cs := New([]string{"hello world"})
	begin := cs.Getpos()
	cs.SeekCur(5)
	end := cs.Getpos()
	if got := cs.Getstr(begin, end); got != "hello" {
		t.Errorf("Getstr() = %q; want %q", got, "hello")
	}
}

func TestSeekSetClamps(t *testing.T) {
	cs := New([]string{"abc"})
	cs.SeekSet(-5)
	if cs.Tell() != 0 {
		t.Errorf("SeekSet(-5) did not clamp to 0, got %d", cs.Tell())
	}
	cs.SeekSet(1000)
	if cs.Tell() != cs.Len() {
		t.Errorf("SeekSet(1000) did not clamp to Len(), got %d", cs.Tell())
	}
}

func TestSetposGetpos(t *testing.T) {
	cs := New([]string{"abcdef"})
	cs.SeekCur(3)
	saved := cs.Getpos()
	cs.SeekCur(2)
	cs.Setpos(saved)
	if got := cs.Peek(); got != 'd' {
		t.Errorf("after Setpos, Peek() = %q; want 'd'", got)
	}
}

func TestReaders(t *testing.T) {
	tests := []struct {
		name  string
		input string
		read  func(cs *CharSource) string
		want  string
	}{
		{"ReadAlpha", "abc123", func(cs *CharSource) string { return cs.ReadAlpha() }, "abc"},
		{"ReadAlnum", "abc123!", func(cs *CharSource) string { return cs.ReadAlnum() }, "abc123"},
		{"ReadDigit", "123abc", func(cs *CharSource) string { return cs.ReadDigit() }, "123"},
		{"ReadHexDigit", "1aF xyz", func(cs *CharSource) string { return cs.ReadHexDigit() }, "1aF"},
		{"ReadBinDigit", "101 2", func(cs *CharSource) string { return cs.ReadBinDigit() }, "101"},
		{"ReadInteger", "-123x", func(cs *CharSource) string { return cs.ReadInteger() }, "-123"},
		{"ReadWord", "foo_bar baz", func(cs *CharSource) string { return cs.ReadWord() }, "foo_bar"},
		{"ReadName", "s:foo#bar baz", func(cs *CharSource) string { return cs.ReadName() }, "s:foo#bar"},
		{"ReadWhite", "   x", func(cs *CharSource) string { return cs.ReadWhite() }, "   "},
		{"ReadNonwhite", "foo bar", func(cs *CharSource) string { return cs.ReadNonwhite() }, "foo"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cs := New([]string{tc.input})
			if got := tc.read(cs); got != tc.want {
				t.Errorf("%s(%q) = %q; want %q", tc.name, tc.input, got, tc.want)
			}
		})
	}
}

func TestSkipWhiteAndColon(t *testing.T) {
	cs := New([]string{" : : foo"})
	cs.SkipWhiteAndColon()
	if got := cs.Peekn(3); got != "foo" {
		t.Errorf("after SkipWhiteAndColon, Peekn(3) = %q; want %q", got, "foo")
	}
}

func TestNoSpaceBefore(t *testing.T) {
	cs := New([]string{"foo[1]"})
	cs.SeekCur(3) // cursor now at '['
	pos := cs.Getpos()
	if !cs.NoSpaceBefore(pos) {
		t.Errorf("NoSpaceBefore should be true directly after 'o'")
	}

	cs2 := New([]string{"foo [1]"})
	cs2.SeekCur(4) // cursor now at '['
	pos2 := cs2.Getpos()
	if cs2.NoSpaceBefore(pos2) {
		t.Errorf("NoSpaceBefore should be false after a space")
	}
}
