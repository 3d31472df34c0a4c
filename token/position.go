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

// Package token defines the position and token vocabulary shared between
// the char source, the tokenizer, the parser, and the pretty-printer.
package token

import (
	"fmt"
	"sort"
)

// Pos is the immutable (cursor, line, column) triple every AST node and
// every error carries. cursor indexes into the spliced character buffer
// that the reader produces; line/column are the position in the original,
// unspliced source, as required by spec.md's line-continuation rule.
type Pos struct {
	Cursor int
	Line   int
	Column int
}

// NoPos is the zero Pos. It is never a valid source position.
var NoPos = Pos{}

// IsValid reports whether p refers to an actual source location.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p precedes q in the character buffer.
func (p Pos) Before(q Pos) bool {
	return p.Cursor < q.Cursor
}

// File tracks the offset-to-(line,column) mapping for a spliced character
// buffer, the way cue/token.File tracks it for a source file: a sorted
// table of line-start breakpoints plus binary search on lookup. Unlike a
// CUE file, a vimlfmt File's breakpoints don't assume one line per
// sequential-line-number-and-column-1 entry, since the reader splices
// backslash-continuation lines into one logical buffer: each breakpoint
// records the *original* (line, column) that its offset corresponds to, so
// a continuation segment can resume mid-column rather than at column 1.
// AddLine is a no-op if offset does not strictly increase on the previous
// entry, which lets the reader call it unconditionally as it splices.
type File struct {
	name   string
	starts []lineStart
}

type lineStart struct {
	offset int
	line   int
	col    int
}

// NewFile creates an empty file whose first breakpoint is (line 1, column
// 1) at offset 0, ready to receive further breakpoints via AddLine.
func NewFile(name string) *File {
	return &File{name: name, starts: []lineStart{{0, 1, 1}}}
}

// Name returns the file name passed to NewFile, or "" for an anonymous file.
func (f *File) Name() string { return f.name }

// AddLine records that the character at the given cursor offset is the
// first of a new breakpoint, corresponding to original position (line,
// col). It is a no-op if offset does not strictly increase on the previous
// entry.
func (f *File) AddLine(offset, line, col int) {
	if n := len(f.starts); n == 0 || f.starts[n-1].offset < offset {
		f.starts = append(f.starts, lineStart{offset, line, col})
	}
}

// LineCol converts a cursor offset into a (line, column) pair, both
// 1-based, by finding the breakpoint covering offset and walking forward
// from its (line, col) by the distance into that breakpoint. It is used by
// the reader to stamp Pos values as characters are appended to the spliced
// buffer.
func (f *File) LineCol(offset int) (line, col int) {
	i := sort.Search(len(f.starts), func(i int) bool { return f.starts[i].offset > offset }) - 1
	if i < 0 {
		i = 0
	}
	ls := f.starts[i]
	return ls.line, ls.col + (offset - ls.offset)
}
