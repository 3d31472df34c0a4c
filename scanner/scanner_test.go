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

package scanner

import (
	"testing"

	"github.com/deathlyfrantic/vimlfmt/reader"
	"github.com/deathlyfrantic/vimlfmt/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()
	cs := reader.New([]string{src})
	s := New(cs)
	var toks []token.Token
	for {
		tok, err := s.Get()
		if err != nil {
			t.Fatalf("Get() error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestLexPunctuation(t *testing.T) {
	toks := scan(t, "(){}[],:;.`#?=|+-*/%!")
	want := []token.Kind{
		token.POpen, token.PClose, token.COpen, token.CClose,
		token.SqOpen, token.SqClose, token.Comma, token.Colon,
		token.Semicolon, token.Dot, token.Backtick, token.Sharp,
		token.Question, token.Eq, token.Or, token.Plus, token.Minus,
		token.Star, token.Slash, token.Percent, token.Not, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens; want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s; want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"123", "123"},
		{"0x1F", "0x1F"},
		{"0X1f", "0X1f"},
		{"0b101", "0b101"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"1e", "1"}, // no digit after e: exponent rolled back
	}
	for _, tc := range tests {
		toks := scan(t, tc.src)
		if toks[0].Kind != token.Number {
			t.Errorf("%q: kind = %s; want Number", tc.src, toks[0].Kind)
			continue
		}
		if toks[0].Literal != tc.want {
			t.Errorf("%q: literal = %q; want %q", tc.src, toks[0].Literal, tc.want)
		}
	}
}

func TestLexComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want token.Kind
	}{
		{"==", token.EqEq},
		{"==#", token.EqEqCS},
		{"==?", token.EqEqCI},
		{"!=", token.NotEq},
		{"!=#", token.NotEqCS},
		{">=", token.GTEq},
		{"<=", token.LTEq},
		{">", token.GT},
		{"<", token.LT},
		{"=~", token.Match},
		{"!~", token.NoMatch},
		{"is", token.Is},
		{"is#", token.IsCS},
		{"isnot?", token.IsNotCI},
	}
	for _, tc := range tests {
		toks := scan(t, tc.src)
		if toks[0].Kind != tc.want {
			t.Errorf("%q: kind = %s; want %s", tc.src, toks[0].Kind, tc.want)
		}
	}
}

func TestLexIdentAndKeyword(t *testing.T) {
	toks := scan(t, "foo_bar")
	if toks[0].Kind != token.Identifier || toks[0].Literal != "foo_bar" {
		t.Errorf("got (%s, %q); want (Identifier, %q)", toks[0].Kind, toks[0].Literal, "foo_bar")
	}
}

func TestLexEnvRegOption(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
		lit  string
	}{
		{"$HOME", token.Env, "$HOME"},
		{"@r", token.Reg, "@r"},
		{"&number", token.Option, "&number"},
		{"&g:opt", token.Option, "&g:opt"},
	}
	for _, tc := range tests {
		toks := scan(t, tc.src)
		if toks[0].Kind != tc.kind || toks[0].Literal != tc.lit {
			t.Errorf("%q: got (%s, %q); want (%s, %q)", tc.src, toks[0].Kind, toks[0].Literal, tc.kind, tc.lit)
		}
	}
}

func TestLexAndAndOrOrArrowDotDotDot(t *testing.T) {
	toks := scan(t, "&& || -> ...")
	want := []token.Kind{token.AndAnd, token.OrOr, token.Arrow, token.DotDotDot, token.EOF}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s; want %s", i, toks[i].Kind, k)
		}
	}
}

func TestLexQuoteOpeners(t *testing.T) {
	toks := scan(t, `'"`)
	if toks[0].Kind != token.SQuote {
		t.Errorf("got %s; want SQuote", toks[0].Kind)
	}
	if toks[1].Kind != token.DQuote {
		t.Errorf("got %s; want DQuote", toks[1].Kind)
	}
}

func TestGetSString(t *testing.T) {
	cs := reader.New([]string{`it''s fine'`})
	s := New(cs)
	got, err := s.GetSString()
	if err != nil {
		t.Fatalf("GetSString() error: %v", err)
	}
	if want := "it's fine"; got != want {
		t.Errorf("GetSString() = %q; want %q", got, want)
	}
}

func TestGetSStringUnterminated(t *testing.T) {
	cs := reader.New([]string{"abc"})
	s := New(cs)
	if _, err := s.GetSString(); err == nil {
		t.Errorf("expected error for unterminated string")
	}
}

func TestGetDStringPreservesEscapes(t *testing.T) {
	cs := reader.New([]string{`a\nb"`})
	s := New(cs)
	got, err := s.GetDString()
	if err != nil {
		t.Fatalf("GetDString() error: %v", err)
	}
	if want := `a\nb`; got != want {
		t.Errorf("GetDString() = %q; want %q", got, want)
	}
}

func TestGetDStringUnterminated(t *testing.T) {
	cs := reader.New([]string{"abc"})
	s := New(cs)
	if _, err := s.GetDString(); err == nil {
		t.Errorf("expected error for unterminated string")
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	cs := reader.New([]string{"foo bar"})
	s := New(cs)
	tok1, err := s.Peek()
	if err != nil {
		t.Fatalf("Peek() error: %v", err)
	}
	tok2, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if tok1.Literal != tok2.Literal || tok1.Kind != tok2.Kind {
		t.Errorf("Peek() %v != Get() %v", tok1, tok2)
	}
	tok3, _ := s.Peek()
	if tok3.Literal != "bar" {
		t.Errorf("after consuming 'foo', Peek() = %q; want %q", tok3.Literal, "bar")
	}
}

func TestUnexpectedCharacterError(t *testing.T) {
	cs := reader.New([]string{"^"})
	s := New(cs)
	if _, err := s.Get(); err == nil {
		t.Errorf("expected error for unexpected character '^'")
	}
}

func TestEOL(t *testing.T) {
	cs := reader.New([]string{"a", "b"})
	s := New(cs)
	s.Get() // 'a' identifier
	tok, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if tok.Kind != token.EOL {
		t.Errorf("got %s; want EOL", tok.Kind)
	}
}
