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

// Package scanner implements the expression-level Tokenizer (spec.md
// §4.3): a lexer over the Char Source producing the Token vocabulary in
// token.Kind, memoized by source position the way cuelang.org/go/cue's
// scanner amortizes repeated Scan calls, except here the cache is indexed
// explicitly (position -> token) rather than implicit in a forward-only
// stream, since the expression parser backtracks (spec.md §4.3,
// "Memoizes results by source position").
package scanner

import (
	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/reader"
	"github.com/deathlyfrantic/vimlfmt/token"
)

type cacheEntry struct {
	tok  token.Token
	next token.Pos
}

// Scanner tokenizes expression fragments out of a reader.CharSource.
type Scanner struct {
	cs    *reader.CharSource
	cache map[int]cacheEntry
}

// New creates a Scanner over cs. The Scanner does not own cs's cursor
// except transiently during Get/Peek; callers control position via
// cs.Getpos/cs.Setpos exactly as the rest of the parser does.
func New(cs *reader.CharSource) *Scanner {
	return &Scanner{cs: cs, cache: make(map[int]cacheEntry)}
}

// Peek returns the next token without advancing the Char Source cursor.
func (s *Scanner) Peek() (token.Token, error) {
	save := s.cs.Getpos()
	tok, _, err := s.scanAt(save)
	s.cs.Setpos(save)
	return tok, err
}

// Get returns the next token and advances the Char Source cursor past it.
func (s *Scanner) Get() (token.Token, error) {
	save := s.cs.Getpos()
	tok, next, err := s.scanAt(save)
	s.cs.Setpos(next)
	return tok, err
}

// scanAt tokenizes starting at pos (the position before whitespace
// skipping, per spec.md §9's cache invariant), consulting and populating
// the memoization cache.
func (s *Scanner) scanAt(pos token.Pos) (token.Token, token.Pos, error) {
	if e, ok := s.cache[pos.Cursor]; ok {
		return e.tok, e.next, nil
	}
	s.cs.Setpos(pos)
	tok, err := s.lex()
	next := s.cs.Getpos()
	if err == nil {
		s.cache[pos.Cursor] = cacheEntry{tok, next}
	}
	return tok, next, err
}

func mk(kind token.Kind, lit string, pos token.Pos) token.Token {
	return token.Token{Kind: kind, Literal: lit, Pos: pos}
}

// lex performs one tokenization step at the Char Source's current cursor,
// per the rules enumerated in spec.md §4.3.
func (s *Scanner) lex() (token.Token, error) {
	s.cs.SkipWhite()
	start := s.cs.Getpos()
	ch := s.cs.Peek()

	switch {
	case ch == reader.EOF:
		return mk(token.EOF, "", start), nil
	case ch == '\n':
		s.cs.Get()
		return mk(token.EOL, "\n", start), nil
	case isDigit(ch):
		return s.lexNumber(start)
	case ch == '|' && s.cs.PeekAhead(1) == '|':
		s.cs.Getn(2)
		return mk(token.OrOr, "||", start), nil
	case ch == '&' && s.cs.PeekAhead(1) == '&':
		s.cs.Getn(2)
		return mk(token.AndAnd, "&&", start), nil
	case ch == '&':
		return s.lexOption(start)
	case ch == '$':
		return s.lexEnv(start)
	case ch == '@':
		return s.lexReg(start)
	case ch == '-' && s.cs.PeekAhead(1) == '>':
		s.cs.Getn(2)
		return mk(token.Arrow, "->", start), nil
	case ch == '.' && s.cs.PeekAhead(1) == '.' && s.cs.PeekAhead(2) == '.':
		s.cs.Getn(3)
		return mk(token.DotDotDot, "...", start), nil
	case ch == '\'':
		s.cs.Get()
		return mk(token.SQuote, "'", start), nil
	case ch == '"':
		s.cs.Get()
		return mk(token.DQuote, `"`, start), nil
	case isComparisonStart(ch):
		if tok, ok := s.lexComparison(start); ok {
			return tok, nil
		}
		// Not actually a comparison (bare '=' or unary '!'): fall out of
		// the switch to the lexPunct lookup below rather than treating ch
		// as an identifier start, which it isn't.
	case isIdentStart(ch):
		return s.lexIdentOrKeyword(start)
	}

	if kind, lit, ok := lexPunct(ch); ok {
		s.cs.Get()
		return mk(kind, lit, start), nil
	}

	return token.Token{}, errors.Newf(start, "unexpected character %q", ch)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isComparisonStart(r rune) bool {
	switch r {
	case '=', '!', '>', '<':
		return true
	}
	return false
}

func lexPunct(ch rune) (token.Kind, string, bool) {
	switch ch {
	case '(':
		return token.POpen, "(", true
	case ')':
		return token.PClose, ")", true
	case '[':
		return token.SqOpen, "[", true
	case ']':
		return token.SqClose, "]", true
	case '{':
		return token.COpen, "{", true
	case '}':
		return token.CClose, "}", true
	case ',':
		return token.Comma, ",", true
	case ':':
		return token.Colon, ":", true
	case ';':
		return token.Semicolon, ";", true
	case '.':
		return token.Dot, ".", true
	case '`':
		return token.Backtick, "`", true
	case '#':
		return token.Sharp, "#", true
	case '?':
		return token.Question, "?", true
	case '=':
		return token.Eq, "=", true
	case '|':
		return token.Or, "|", true
	case '+':
		return token.Plus, "+", true
	case '-':
		return token.Minus, "-", true
	case '*':
		return token.Star, "*", true
	case '/':
		return token.Slash, "/", true
	case '%':
		return token.Percent, "%", true
	case '!':
		return token.Not, "!", true
	}
	return 0, "", false
}

// lexComparison handles the two-character comparisons plus their optional
// trailing '?'/'#' case-sensitivity suffix (spec.md §4.3). Returns ok=false
// if ch did not actually begin a full comparison token (e.g. a bare '=').
func (s *Scanner) lexComparison(start token.Pos) (token.Token, bool) {
	ch := s.cs.Peek()
	next := s.cs.PeekAhead(1)
	var base token.Kind
	var width int
	switch {
	case ch == '=' && next == '=':
		base, width = token.EqEq, 2
	case ch == '!' && next == '=':
		base, width = token.NotEq, 2
	case ch == '>' && next == '=':
		base, width = token.GTEq, 2
	case ch == '<' && next == '=':
		base, width = token.LTEq, 2
	case ch == '=' && next == '~':
		base, width = token.Match, 2
	case ch == '!' && next == '~':
		base, width = token.NoMatch, 2
	case ch == '>':
		base, width = token.GT, 1
	case ch == '<':
		base, width = token.LT, 1
	default:
		return token.Token{}, false
	}
	s.cs.Getn(width)
	lit := s.cs.Getstr(start, s.cs.Getpos())
	if suf := s.cs.Peek(); suf == '?' || suf == '#' {
		s.cs.Get()
		base = token.WithCaseSuffix(base, byte(suf))
		lit += string(suf)
	}
	return mk(base, lit, start), true
}

// lexNumber handles hex/bin/decimal integers and optional float/exponent
// suffixes (spec.md §4.3).
func (s *Scanner) lexNumber(start token.Pos) (token.Token, error) {
	if s.cs.Peek() == '0' && (s.cs.PeekAhead(1) == 'x' || s.cs.PeekAhead(1) == 'X') {
		s.cs.Getn(2)
		s.cs.ReadHexDigit()
		return mk(token.Number, s.cs.Getstr(start, s.cs.Getpos()), start), nil
	}
	if s.cs.Peek() == '0' && (s.cs.PeekAhead(1) == 'b' || s.cs.PeekAhead(1) == 'B') {
		s.cs.Getn(2)
		s.cs.ReadBinDigit()
		return mk(token.Number, s.cs.Getstr(start, s.cs.Getpos()), start), nil
	}
	s.cs.ReadDigit()
	if s.cs.Peek() == '.' && isDigit(s.cs.PeekAhead(1)) {
		s.cs.Get()
		s.cs.ReadDigit()
	}
	if ch := s.cs.Peek(); ch == 'e' || ch == 'E' {
		save := s.cs.Getpos()
		s.cs.Get()
		if ch := s.cs.Peek(); ch == '+' || ch == '-' {
			s.cs.Get()
		}
		if isDigit(s.cs.Peek()) {
			s.cs.ReadDigit()
		} else {
			s.cs.Setpos(save)
		}
	}
	return mk(token.Number, s.cs.Getstr(start, s.cs.Getpos()), start), nil
}

func (s *Scanner) lexOption(start token.Pos) (token.Token, error) {
	s.cs.Get() // '&'
	if (s.cs.Peek() == 'g' || s.cs.Peek() == 'l') && s.cs.PeekAhead(1) == ':' {
		s.cs.Getn(2)
	}
	s.cs.ReadWord()
	return mk(token.Option, s.cs.Getstr(start, s.cs.Getpos()), start), nil
}

func (s *Scanner) lexEnv(start token.Pos) (token.Token, error) {
	s.cs.Get() // '$'
	s.cs.ReadWord()
	return mk(token.Env, s.cs.Getstr(start, s.cs.Getpos()), start), nil
}

func (s *Scanner) lexReg(start token.Pos) (token.Token, error) {
	s.cs.Get() // '@'
	s.cs.Get() // register name: any single character
	return mk(token.Reg, s.cs.Getstr(start, s.cs.Getpos()), start), nil
}

// lexIdentOrKeyword reads a name and recognizes the "is"/"isnot" keyword
// forms (spec.md §4.3), each with optional case-sensitivity suffix.
func (s *Scanner) lexIdentOrKeyword(start token.Pos) (token.Token, error) {
	s.cs.ReadName()
	name := s.cs.Getstr(start, s.cs.Getpos())
	switch name {
	case "is":
		return s.withCaseSuffix(start, token.Is, name), nil
	case "isnot":
		return s.withCaseSuffix(start, token.IsNot, name), nil
	case "is#":
		// ReadName already consumed the '#' as a name character.
		return mk(token.IsCS, name, start), nil
	case "isnot#":
		return mk(token.IsNotCS, name, start), nil
	}
	return mk(token.Identifier, name, start), nil
}

func (s *Scanner) withCaseSuffix(start token.Pos, base token.Kind, lit string) token.Token {
	if suf := s.cs.Peek(); suf == '?' || suf == '#' {
		s.cs.Get()
		base = token.WithCaseSuffix(base, byte(suf))
		lit += string(suf)
	}
	return mk(base, lit, start)
}

// GetSString consumes '...'-string content after the opening quote has
// already been consumed by the caller, per spec.md §4.3: '' is an escaped
// single quote, and an unterminated literal (newline or EOF before the
// closer) is a lexical error.
func (s *Scanner) GetSString() (string, error) {
	var out []rune
	for {
		ch := s.cs.Peek()
		switch ch {
		case reader.EOF, '\n':
			return "", errors.Newf(s.cs.Getpos(), "unexpected EOL in string")
		case '\'':
			s.cs.Get()
			if s.cs.Peek() == '\'' {
				s.cs.Get()
				out = append(out, '\'')
				continue
			}
			return string(out), nil
		default:
			out = append(out, s.cs.Get())
		}
	}
}

// GetDString consumes "..."-string content after the opening quote has
// already been consumed. Backslash escapes are preserved verbatim into the
// returned text; the parser does not decode them (spec.md §4.3).
func (s *Scanner) GetDString() (string, error) {
	var out []rune
	for {
		ch := s.cs.Peek()
		switch ch {
		case reader.EOF, '\n':
			return "", errors.Newf(s.cs.Getpos(), "unexpected EOL in string")
		case '"':
			s.cs.Get()
			return string(out), nil
		case '\\':
			out = append(out, s.cs.Get())
			if s.cs.Peek() != reader.EOF {
				out = append(out, s.cs.Get())
			}
		default:
			out = append(out, s.cs.Get())
		}
	}
}
