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

package parser

import (
	"regexp"

	"github.com/deathlyfrantic/vimlfmt/ast"
	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/token"
)

// maxCallArgs is the call-arity limit of spec.md §4.4 ("E740: Too many
// arguments for function").
const maxCallArgs = 20

// varnamePattern validates a :let-LHS Identifier, per spec.md §4.4.
var varnamePattern = regexp.MustCompile(`^[vgslabwt]:$|^([vgslabwt]:)?[A-Za-z_][0-9A-Za-z_#]*$`)

// parseExpr parses a full expression at precedence level 1 (ternary).
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseTernary()
}

func (p *Parser) parseTernary() (ast.Expr, error) {
	cond, err := p.parseOrOr()
	if err != nil {
		return nil, err
	}
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind != token.Question {
		return cond, nil
	}
	p.sc.Get()
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.Colon); err != nil {
		return nil, err
	}
	right, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Cond: cond, Left: left, Right: right}, nil
}

func (p *Parser) parseOrOr() (ast.Expr, error) {
	left, err := p.parseAndAnd()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.OrOr {
			return left, nil
		}
		p.sc.Get()
		right, err := p.parseAndAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: ast.LogicalOr, Left: left, Right: right}
	}
}

func (p *Parser) parseAndAnd() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != token.AndAnd {
			return left, nil
		}
		p.sc.Get()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: ast.LogicalAnd, Left: left, Right: right}
	}
}

var comparisonKinds = map[token.Kind]ast.BinaryOpKind{
	token.EqEq: ast.CmpEq, token.NotEq: ast.CmpNotEq,
	token.GT: ast.CmpGT, token.GTEq: ast.CmpGTEq,
	token.LT: ast.CmpLT, token.LTEq: ast.CmpLTEq,
	token.Match: ast.CmpMatch, token.NoMatch: ast.CmpNoMatch,
	token.Is: ast.CmpIs, token.IsNot: ast.CmpIsNot,
}

var baseKindOf = map[token.Kind]token.Kind{
	token.EqEqCI: token.EqEq, token.EqEqCS: token.EqEq,
	token.NotEqCI: token.NotEq, token.NotEqCS: token.NotEq,
	token.GTCI: token.GT, token.GTCS: token.GT,
	token.GTEqCI: token.GTEq, token.GTEqCS: token.GTEq,
	token.LTCI: token.LT, token.LTCS: token.LT,
	token.LTEqCI: token.LTEq, token.LTEqCS: token.LTEq,
	token.MatchCI: token.Match, token.MatchCS: token.Match,
	token.NoMatchCI: token.NoMatch, token.NoMatchCS: token.NoMatch,
	token.IsCI: token.Is, token.IsCS: token.Is,
	token.IsNotCI: token.IsNot, token.IsNotCS: token.IsNot,
}

func caseSuffixOf(k token.Kind) ast.CaseSuffix {
	switch k {
	case token.EqEqCI, token.NotEqCI, token.GTCI, token.GTEqCI, token.LTCI, token.LTEqCI,
		token.MatchCI, token.NoMatchCI, token.IsCI, token.IsNotCI:
		return '?'
	case token.EqEqCS, token.NotEqCS, token.GTCS, token.GTEqCS, token.LTCS, token.LTEqCS,
		token.MatchCS, token.NoMatchCS, token.IsCS, token.IsNotCS:
		return '#'
	}
	return 0
}

// parseComparison implements level 4 (spec.md §4.4): non-associative, so
// at most one comparison operator is consumed.
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	base := tok.Kind
	if b, ok := baseKindOf[base]; ok {
		base = b
	}
	opKind, ok := comparisonKinds[base]
	if !ok {
		return left, nil
	}
	suffix := caseSuffixOf(tok.Kind)
	p.sc.Get()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Op: opKind, CaseSuffix: suffix, Left: left, Right: right}, nil
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		var op ast.BinaryOpKind
		switch tok.Kind {
		case token.Plus:
			op = ast.Add
		case token.Minus:
			op = ast.Subtract
		case token.Dot:
			// Whitespace-separated '.' is string concat (level 5);
			// juxtaposed "a.b" is a Dot field access handled at level 8.
			if p.cs.NoSpaceBefore(tok.Pos) {
				return left, nil
			}
			op = ast.Concat
		default:
			return left, nil
		}
		p.sc.Get()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		var op ast.BinaryOpKind
		switch tok.Kind {
		case token.Star:
			op = ast.Multiply
		case token.Slash:
			op = ast.Divide
		case token.Percent:
			op = ast.Remainder
		default:
			return left, nil
		}
		p.sc.Get()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryOp{Op: op, Left: left, Right: right}
	}
}

// parseUnary implements level 7: right-associative prefix !, -, +.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	var op ast.UnaryOpKind
	switch tok.Kind {
	case token.Not:
		op = ast.Not
	case token.Minus:
		op = ast.Negate
	case token.Plus:
		op = ast.UnaryPlus
	default:
		return p.parsePostfix(false)
	}
	p.sc.Get()
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryOp{Op: op, Right: right}, nil
}

// parsePostfix implements level 8: subscript/slice/call/dot chains. When
// restricted is true (the parse_lv variant used for assignment/for-loop
// LHS), call postfixes are refused.
func (p *Parser) parsePostfix(restricted bool) (ast.Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if !p.cs.NoSpaceBefore(tok.Pos) {
			return left, nil
		}
		switch tok.Kind {
		case token.SqOpen:
			p.sc.Get()
			left, err = p.parseSubscriptOrSlice(left)
			if err != nil {
				return nil, err
			}
		case token.Dot:
			p.sc.Get()
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left = &ast.Dot{Left: left, Right: right}
		case token.POpen:
			if restricted {
				return left, nil
			}
			p.sc.Get()
			args, err := p.parseCallArgList()
			if err != nil {
				return nil, err
			}
			left = &ast.Call{Name: left, Args: args}
		default:
			return left, nil
		}
	}
}

// parseCallArgList parses a parenthesized, comma-separated argument list
// whose opening '(' has already been consumed.
func (p *Parser) parseCallArgList() ([]ast.Expr, error) {
	var args []ast.Expr
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.PClose {
		p.sc.Get()
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if len(args) > maxCallArgs {
			return nil, errors.WithCode(tok.Pos, "E740", "too many arguments for function")
		}
		tok, err = p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Comma {
			p.sc.Get()
			continue
		}
		break
	}
	if err := p.expectKind(token.PClose); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseSubscriptOrSlice(left ast.Expr) (ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Colon {
		p.sc.Get()
		return p.finishSlice(left, nil)
	}
	idx, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	tok, err = p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.Colon {
		p.sc.Get()
		return p.finishSlice(left, idx)
	}
	if err := p.expectKind(token.SqClose); err != nil {
		return nil, err
	}
	return &ast.Subscript{Name: left, Index: idx}, nil
}

func (p *Parser) finishSlice(left, lo ast.Expr) (ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.SqClose {
		p.sc.Get()
		return &ast.Slice{Name: left, Left: lo, Right: nil}, nil
	}
	hi, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.SqClose); err != nil {
		return nil, err
	}
	return &ast.Slice{Name: left, Left: lo, Right: hi}, nil
}

// parseAtom implements level 9.
func (p *Parser) parseAtom() (ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case token.Number:
		p.sc.Get()
		return &ast.Number{Base: ast.NewBase(tok.Pos), Value: tok.Literal}, nil
	case token.SQuote:
		p.sc.Get()
		s, err := p.sc.GetSString()
		if err != nil {
			return nil, err
		}
		return &ast.String{Base: ast.NewBase(tok.Pos), Value: s, Quote: '\''}, nil
	case token.DQuote:
		p.sc.Get()
		s, err := p.sc.GetDString()
		if err != nil {
			return nil, err
		}
		return &ast.String{Base: ast.NewBase(tok.Pos), Value: s, Quote: '"'}, nil
	case token.SqOpen:
		return p.parseList()
	case token.COpen:
		return p.parseDictOrLambda()
	case token.POpen:
		p.sc.Get()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.PClose); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Base: ast.NewBase(tok.Pos), Expr: inner}, nil
	case token.Option:
		p.sc.Get()
		return &ast.Option{Base: ast.NewBase(tok.Pos), Name: tok.Literal[1:]}, nil
	case token.Env:
		p.sc.Get()
		return &ast.Env{Base: ast.NewBase(tok.Pos), Name: tok.Literal[1:]}, nil
	case token.Reg:
		p.sc.Get()
		return &ast.Reg{Base: ast.NewBase(tok.Pos), Name: tok.Literal[1:]}, nil
	case token.Identifier:
		return p.parseCurlyIdentifier()
	}
	return nil, errors.Newf(tok.Pos, "unexpected token %q", tok.Literal)
}

// parseList parses a "[ ... ]" literal, whose opening bracket has not yet
// been consumed.
func (p *Parser) parseList() (ast.Expr, error) {
	open, err := p.expectKindTok(token.SqOpen)
	if err != nil {
		return nil, err
	}
	var items []ast.Expr
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	for tok.Kind != token.SqClose {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		tok, err = p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Comma {
			p.sc.Get()
			tok, err = p.sc.Peek()
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectKind(token.SqClose); err != nil {
		return nil, err
	}
	return &ast.List{Base: ast.NewBase(open.Pos), Items: items}, nil
}

// parseDictOrLambda disambiguates "{ ... }" per spec.md §4.4: save
// position, peek ahead, and commit to either a zero/N-arg lambda or a dict
// literal. A half-closed dict such as "{key}" is not re-parsed as a
// curly-name identifier: it is parsed as a dict and fails at the missing ':'.
func (p *Parser) parseDictOrLambda() (ast.Expr, error) {
	open, err := p.expectKindTok(token.COpen)
	if err != nil {
		return nil, err
	}
	save := p.cs.Getpos()

	first, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	if first.Kind == token.Arrow {
		p.sc.Get()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.CClose); err != nil {
			return nil, err
		}
		return &ast.Lambda{Base: ast.NewBase(open.Pos), Expr: body}, nil
	}

	if first.Kind == token.Identifier || first.Kind == token.DotDotDot {
		p.sc.Get()
		second, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if second.Kind == token.Arrow || second.Kind == token.Comma {
			p.cs.Setpos(save)
			return p.parseLambda(open.Pos)
		}
	}

	p.cs.Setpos(save)
	return p.parseDict(open.Pos)
}

func (p *Parser) parseLambda(pos token.Pos) (ast.Expr, error) {
	var args []string
	seen := map[string]bool{}
	for {
		tok, err := p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Arrow {
			break
		}
		if tok.Kind != token.Identifier && tok.Kind != token.DotDotDot {
			return nil, errors.WithCode(tok.Pos, "E125", "illegal argument: %s", tok.Literal)
		}
		p.sc.Get()
		if seen[tok.Literal] {
			return nil, errors.WithCode(tok.Pos, "E853", "duplicate argument name: %s", tok.Literal)
		}
		seen[tok.Literal] = true
		args = append(args, tok.Literal)
		tok, err = p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Comma {
			p.sc.Get()
			continue
		}
		break
	}
	if err := p.expectKind(token.Arrow); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKind(token.CClose); err != nil {
		return nil, err
	}
	return &ast.Lambda{Base: ast.NewBase(pos), Args: args, Expr: body}, nil
}

func (p *Parser) parseDict(pos token.Pos) (ast.Expr, error) {
	var items []ast.DictEntry
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	for tok.Kind != token.CClose {
		key, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.Colon); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, ast.DictEntry{Key: key, Val: val})
		tok, err = p.sc.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.Comma {
			p.sc.Get()
			tok, err = p.sc.Peek()
			if err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expectKind(token.CClose); err != nil {
		return nil, err
	}
	return &ast.Dict{Base: ast.NewBase(pos), Items: items}, nil
}

// parseCurlyIdentifier reads an identifier that may embed "{expr}" pieces
// (spec.md §4.4, "Curly names"), collapsing a single-part result to a
// plain Identifier.
func (p *Parser) parseCurlyIdentifier() (ast.Expr, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return nil, err
	}
	start := tok.Pos
	p.sc.Get()
	var pieces []ast.Node
	if tok.Literal != "" {
		pieces = append(pieces, &ast.CurlyNamePart{Base: ast.NewBase(tok.Pos), Value: tok.Literal})
	}
	for p.cs.Peek() == '{' {
		cpos := p.cs.Getpos()
		p.cs.Get()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectKind(token.CClose); err != nil {
			return nil, err
		}
		pieces = append(pieces, &ast.CurlyNameExpr{Base: ast.NewBase(cpos), Expr: inner})
		if isNameStart(p.cs.Peek()) {
			npos := p.cs.Getpos()
			lit := p.cs.ReadName()
			pieces = append(pieces, &ast.CurlyNamePart{Base: ast.NewBase(npos), Value: lit})
		}
	}
	if len(pieces) == 1 {
		if part, ok := pieces[0].(*ast.CurlyNamePart); ok {
			return &ast.Identifier{Base: ast.NewBase(start), Name: part.Value}, nil
		}
	}
	return &ast.CurlyName{Base: ast.NewBase(start), Pieces: pieces}, nil
}

func isNameStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || (r >= '0' && r <= '9') || r == ':' || r == '#'
}

// parseLV parses the restricted lvalue grammar (spec.md §4.4, parse_lv):
// postfix without call, and only Identifier/CurlyName/Subscript/Slice/Dot/
// Option/Env/Reg as terminal shapes.
func (p *Parser) parseLV() (ast.Expr, error) {
	e, err := p.parsePostfix(true)
	if err != nil {
		return nil, err
	}
	switch e.(type) {
	case *ast.Identifier, *ast.CurlyName, *ast.Subscript, *ast.Slice, *ast.Dot,
		*ast.Option, *ast.Env, *ast.Reg:
		return e, nil
	}
	return nil, errors.Newf(e.Pos(), "invalid left-hand side")
}

// validateLetName enforces the :let-LHS varname regex (spec.md §4.4, E461).
func validateLetName(pos token.Pos, name string) error {
	if !varnamePattern.MatchString(name) {
		return errors.WithCode(pos, "E461", "illegal variable name: %s", name)
	}
	return nil
}

func (p *Parser) expectKind(k token.Kind) error {
	_, err := p.expectKindTok(k)
	return err
}

func (p *Parser) expectKindTok(k token.Kind) (token.Token, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Kind != k {
		return token.Token{}, errors.Newf(tok.Pos, "unexpected token %q, expected %s", tok.Literal, k)
	}
	p.sc.Get()
	return tok, nil
}
