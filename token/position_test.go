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

package token

import "testing"

func TestNoPos(t *testing.T) {
	if NoPos.IsValid() {
		t.Errorf("NoPos should not be valid")
	}
	if got := NoPos.String(); got != "-" {
		t.Errorf("NoPos.String() = %q; want %q", got, "-")
	}
}

func TestPosIsValid(t *testing.T) {
	if !(Pos{Line: 1, Column: 1}).IsValid() {
		t.Errorf("line 1 col 1 should be valid")
	}
	if (Pos{Line: 0, Column: 1}).IsValid() {
		t.Errorf("line 0 should not be valid")
	}
}

func TestPosString(t *testing.T) {
	got := (Pos{Line: 3, Column: 7}).String()
	if want := "3:7"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestPosBefore(t *testing.T) {
	a := Pos{Cursor: 1}
	b := Pos{Cursor: 2}
	if !a.Before(b) {
		t.Errorf("a should be before b")
	}
	if b.Before(a) {
		t.Errorf("b should not be before a")
	}
	if a.Before(a) {
		t.Errorf("a should not be before itself")
	}
}

func TestFileLineCol(t *testing.T) {
	// "abc\ndef\n\nghi", lines start at offsets 0, 4, 8, 9, each at its own
	// column 1 - the plain sequential-line case.
	f := NewFile("test")
	f.AddLine(4, 2, 1)
	f.AddLine(8, 3, 1)
	f.AddLine(9, 4, 1)

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 1, 4},
		{4, 2, 1},
		{7, 2, 4},
		{8, 3, 1},
		{9, 4, 1},
		{11, 4, 3},
	}
	for _, tc := range tests {
		line, col := f.LineCol(tc.offset)
		if line != tc.wantLine || col != tc.wantCol {
			t.Errorf("LineCol(%d) = (%d, %d); want (%d, %d)", tc.offset, line, col, tc.wantLine, tc.wantCol)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := NewFile("foo.vim").Name(); got != "foo.vim" {
		t.Errorf("Name() = %q; want %q", got, "foo.vim")
	}
	if got := NewFile("").Name(); got != "" {
		t.Errorf("Name() = %q; want empty", got)
	}
}

func TestFileAddLineIgnoresNonIncreasing(t *testing.T) {
	f := NewFile("t")
	f.AddLine(5, 2, 1)
	f.AddLine(5, 99, 99) // duplicate offset, ignored
	f.AddLine(3, 77, 77) // out of order, ignored

	line, col := f.LineCol(5)
	if line != 2 || col != 1 {
		t.Errorf("LineCol(5) = (%d, %d); want (2, 1)", line, col)
	}
}

func TestFileLineColResumesMidColumn(t *testing.T) {
	// A spliced continuation line doesn't restart at column 1: breakpoint
	// at offset 10 resumes at original line 3, column 5 (as reader.CharSource
	// records for a line continued past leading whitespace and a backslash).
	f := NewFile("t")
	f.AddLine(10, 3, 5)
	line, col := f.LineCol(12)
	if line != 3 || col != 7 {
		t.Errorf("LineCol(12) = (%d, %d); want (3, 7)", line, col)
	}
}
