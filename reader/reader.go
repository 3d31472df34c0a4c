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

// Package reader implements the Char Source (spec.md §4.1): it splices
// backslash-continuation lines into one logical character buffer while
// recording each line's (line, column) breakpoint in a *token.File, the
// way cuelang.org/go/cue/scanner decodes a rune stream directly from a
// *token.File, but adapted to Vimscript's line-splicing rule, which must
// happen below the tokenizer so every later stage is unaware of it.
package reader

import (
	"strings"

	"github.com/deathlyfrantic/vimlfmt/token"
)

// EOF is the sentinel rune returned by reads past the end of the buffer.
// It never appears as a real source character.
const EOF rune = -1

// CharSource owns the spliced character buffer and the offset-to-position
// mapping described in spec.md §3. All higher layers read through it and
// are unaware that continuation lines were ever separate. The mapping is
// kept in a *token.File rather than a per-character array: a line of
// Vimscript contributes one breakpoint, not one entry per rune.
type CharSource struct {
	buf    []rune
	file   *token.File
	cursor int
}

// New splices lines (already split on "\n", with no trailing newlines) into
// a CharSource per the line-continuation rule in spec.md §3/§6: a line
// whose first non-whitespace character is '\' continues the previous
// logical line, starting at the column just after the backslash.
func New(lines []string) *CharSource {
	cs := &CharSource{file: token.NewFile("")}
	j := 0
	first := true
	for j < len(lines) {
		if !first {
			p := cs.posAt(len(cs.buf))
			cs.appendNewline(p.Line, p.Column)
		}
		first = false
		cs.appendLine(lines[j], j+1, 0)
		j++
		for j < len(lines) {
			trimmed := strings.TrimLeft(lines[j], " \t")
			if !strings.HasPrefix(trimmed, `\`) {
				break
			}
			leading := utf8Len(lines[j]) - utf8Len(trimmed)
			cs.appendLine(trimmed[1:], j+1, leading+1)
			j++
		}
	}
	cs.appendEOF()
	return cs
}

func utf8Len(s string) int {
	return len([]rune(s))
}

// appendLine appends the runes of src as a single breakpoint: the first
// rune lands at (origLine, startCol+1), and every later rune in the same
// append is one column further along.
func (cs *CharSource) appendLine(src string, origLine, startCol int) {
	cs.file.AddLine(len(cs.buf), origLine, startCol+1)
	cs.buf = append(cs.buf, []rune(src)...)
}

// appendEOF records the breakpoint for the trailing EOF sentinel, one past
// the last real character.
func (cs *CharSource) appendEOF() {
	p := cs.posAt(len(cs.buf))
	cs.file.AddLine(len(cs.buf), p.Line, p.Column)
}

// appendNewline appends the synthetic separator inserted between two
// non-continued logical lines, stamped at the column just past the end of
// the line that precedes it.
func (cs *CharSource) appendNewline(prevLine int, col int) {
	cs.file.AddLine(len(cs.buf), prevLine, col)
	cs.buf = append(cs.buf, '\n')
}

// Len returns the number of real (non-sentinel) characters in the buffer.
func (cs *CharSource) Len() int { return len(cs.buf) }

func (cs *CharSource) posAt(i int) token.Pos {
	if i < 0 {
		i = 0
	}
	line, col := cs.file.LineCol(i)
	return token.Pos{Cursor: i, Line: line, Column: col}
}

// Getpos returns the current cursor position.
func (cs *CharSource) Getpos() token.Pos { return cs.posAt(cs.cursor) }

// NoSpaceBefore reports whether the character immediately preceding pos in
// the buffer is neither whitespace nor the start of the buffer. The
// expression parser's postfix level (spec.md §4.4, level 8) uses this to
// tell "foo[1]"/"foo.bar" (postfix) from "foo [1]"/"foo . bar" (juxtaposed
// atoms), a distinction made at the character-buffer level rather than the
// token stream.
func (cs *CharSource) NoSpaceBefore(pos token.Pos) bool {
	if pos.Cursor <= 0 {
		return false
	}
	r := cs.at(pos.Cursor - 1)
	return r != ' ' && r != '\t' && r != '\n' && r != EOF
}

// Setpos restores a cursor saved from Getpos/Tell.
func (cs *CharSource) Setpos(p token.Pos) { cs.cursor = p.Cursor }

// Tell returns the raw integer cursor, for Seek*.
func (cs *CharSource) Tell() int { return cs.cursor }

// SeekSet moves the cursor to an absolute offset, clamped to [0, Len()].
func (cs *CharSource) SeekSet(off int) {
	cs.cursor = clamp(off, 0, cs.Len())
}

// SeekCur moves the cursor by a relative offset.
func (cs *CharSource) SeekCur(off int) {
	cs.SeekSet(cs.cursor + off)
}

// SeekEnd moves the cursor to Len()+off (off is typically <= 0).
func (cs *CharSource) SeekEnd(off int) {
	cs.SeekSet(cs.Len() + off)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (cs *CharSource) at(i int) rune {
	if i < 0 || i >= len(cs.buf) {
		return EOF
	}
	return cs.buf[i]
}

// Peek returns the character at the cursor without advancing.
func (cs *CharSource) Peek() rune { return cs.at(cs.cursor) }

// PeekAhead returns the character n positions ahead of the cursor (n may be
// negative) without advancing.
func (cs *CharSource) PeekAhead(n int) rune { return cs.at(cs.cursor + n) }

// Peekn returns up to k characters from the cursor, stopping early at a
// newline or EOF, without advancing.
func (cs *CharSource) Peekn(k int) string {
	var b strings.Builder
	for i := 0; i < k; i++ {
		r := cs.at(cs.cursor + i)
		if r == EOF || r == '\n' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PeekLine returns the remainder of the current line (excluding the
// newline) without advancing.
func (cs *CharSource) PeekLine() string {
	var b strings.Builder
	for i := cs.cursor; ; i++ {
		r := cs.at(i)
		if r == EOF || r == '\n' {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Get returns the character at the cursor and advances past it. Reads past
// EOF return EOF without advancing further.
func (cs *CharSource) Get() rune {
	r := cs.at(cs.cursor)
	if r != EOF {
		cs.cursor++
	}
	return r
}

// Getn consumes and returns up to k characters, stopping early at EOF.
func (cs *CharSource) Getn(k int) string {
	var b strings.Builder
	for i := 0; i < k; i++ {
		r := cs.Get()
		if r == EOF {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// GetLine consumes and returns the remainder of the current line
// (excluding the newline) and advances the cursor past the newline itself
// (or to EOF). Used by the raw here-doc/append/insert/loadkeymap readers.
func (cs *CharSource) GetLine() string {
	s := cs.PeekLine()
	cs.SeekCur(utf8Len(s))
	if cs.Peek() == '\n' {
		cs.Get()
	}
	return s
}

// Getstr returns the exact buffer substring in the half-open range
// [begin, end), by cursor.
func (cs *CharSource) Getstr(begin, end token.Pos) string {
	lo, hi := begin.Cursor, end.Cursor
	if lo < 0 {
		lo = 0
	}
	if hi > len(cs.buf) {
		hi = len(cs.buf)
	}
	if lo >= hi {
		return ""
	}
	return string(cs.buf[lo:hi])
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isBinDigit(r rune) bool { return r == '0' || r == '1' }

func isWordChar(r rune) bool { return isAlpha(r) || isDigit(r) || r == '_' }

func isNameChar(r rune) bool { return isWordChar(r) || r == ':' || r == '#' }

func isHorizWhite(r rune) bool { return r == ' ' || r == '\t' }

// readWhile consumes and returns the run of characters satisfying pred.
func (cs *CharSource) readWhile(pred func(rune) bool) string {
	var b strings.Builder
	for pred(cs.Peek()) {
		b.WriteRune(cs.Get())
	}
	return b.String()
}

// ReadAlpha consumes a run of ASCII letters.
func (cs *CharSource) ReadAlpha() string { return cs.readWhile(isAlpha) }

// ReadAlnum consumes a run of ASCII letters and digits.
func (cs *CharSource) ReadAlnum() string {
	return cs.readWhile(func(r rune) bool { return isAlpha(r) || isDigit(r) })
}

// ReadDigit consumes a run of decimal digits.
func (cs *CharSource) ReadDigit() string { return cs.readWhile(isDigit) }

// ReadHexDigit consumes a run of hex digits.
func (cs *CharSource) ReadHexDigit() string { return cs.readWhile(isHexDigit) }

// ReadBinDigit consumes a run of binary digits.
func (cs *CharSource) ReadBinDigit() string { return cs.readWhile(isBinDigit) }

// ReadInteger consumes an optional leading '+' or '-' followed by decimal
// digits.
func (cs *CharSource) ReadInteger() string {
	var b strings.Builder
	if r := cs.Peek(); r == '+' || r == '-' {
		b.WriteRune(cs.Get())
	}
	b.WriteString(cs.ReadDigit())
	return b.String()
}

// ReadWord consumes a run of word characters: alnum plus '_'.
func (cs *CharSource) ReadWord() string { return cs.readWhile(isWordChar) }

// ReadName consumes a run of name characters: word plus ':' and '#'.
func (cs *CharSource) ReadName() string { return cs.readWhile(isNameChar) }

// ReadWhite consumes a run of horizontal whitespace (spaces and tabs).
func (cs *CharSource) ReadWhite() string { return cs.readWhile(isHorizWhite) }

// ReadNonwhite consumes a run of non-whitespace, non-EOF characters.
func (cs *CharSource) ReadNonwhite() string {
	return cs.readWhile(func(r rune) bool { return r != EOF && !isHorizWhite(r) && r != '\n' })
}

// SkipWhite skips horizontal whitespace without crossing a newline.
func (cs *CharSource) SkipWhite() { cs.readWhile(isHorizWhite) }

// SkipWhiteAndColon skips horizontal whitespace and ':' characters without
// crossing a newline (used after command-modifier parsing; spec.md §4.5).
func (cs *CharSource) SkipWhiteAndColon() {
	cs.readWhile(func(r rune) bool { return isHorizWhite(r) || r == ':' })
}

// AtEOF reports whether the cursor is at or past the end of the buffer.
func (cs *CharSource) AtEOF() bool { return cs.Peek() == EOF }

