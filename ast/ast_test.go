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

package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/deathlyfrantic/vimlfmt/token"
)

func TestBasePos(t *testing.T) {
	p := token.Pos{Line: 3, Column: 4}
	b := NewBase(p)
	if got := b.Pos(); got != p {
		t.Errorf("Pos() = %v; want %v", got, p)
	}
}

func TestNodeInterfaceSatisfiedByEveryVariant(t *testing.T) {
	p := token.Pos{Line: 1, Column: 1}
	base := NewBase(p)
	var nodes = []Node{
		&TopLevel{Base: base},
		&BlankLine{Base: base},
		&Comment{Base: base},
		&Shebang{Base: base},
		&If{Base: base},
		&ElseIf{Base: base},
		&Else{Base: base},
		&While{Base: base},
		&For{Base: base},
		&Try{Base: base},
		&Catch{Base: base},
		&Finally{Base: base},
		&Break{Base: base},
		&Continue{Base: base},
		&Return{Base: base},
		&Throw{Base: base},
		&Finish{Base: base},
		&End{Base: base},
		&Function{Base: base},
		&DelFunction{Base: base},
		&Let{Base: base},
		&Unlet{Base: base},
		&LockVar{Base: base},
		&UnlockVar{Base: base},
		&ExCmd{Base: base},
		&ExCall{Base: base},
		&Echo{Base: base},
		&EchoHl{Base: base},
		&Execute{Base: base},
		&Autocmd{Base: base},
		&Augroup{Base: base},
		&Mapping{Base: base},
		&Highlight{Base: base},
		&WinCmd{Base: base},
		&Number{Base: base},
		&String{Base: base},
		&Identifier{Base: base},
		&CurlyName{Base: base},
		&CurlyNamePart{Base: base},
		&CurlyNameExpr{Base: base},
		&Env{Base: base},
		&Reg{Base: base},
		&Option{Base: base},
		&List{Base: base},
		&Dict{Base: base},
		&Lambda{Base: base},
		&ParenExpr{Base: base},
		&Call{Base: base},
		&Subscript{Base: base},
		&Slice{Base: base},
		&Dot{Base: base},
		&Ternary{Base: base},
		&BinaryOp{Base: base},
		&UnaryOp{Base: base},
	}
	for i, n := range nodes {
		if got := n.Pos(); got != p {
			t.Errorf("node %d: Pos() = %v; want %v", i, got, p)
		}
	}
}

func TestBinaryOpKindString(t *testing.T) {
	tests := []struct {
		k    BinaryOpKind
		want string
	}{
		{Add, "+"}, {Subtract, "-"}, {Multiply, "*"}, {Divide, "/"},
		{Remainder, "%"}, {Concat, "."}, {LogicalAnd, "&&"}, {LogicalOr, "||"},
		{CmpEq, "=="}, {CmpNotEq, "!="}, {CmpGT, ">"}, {CmpGTEq, ">="},
		{CmpLT, "<"}, {CmpLTEq, "<="}, {CmpMatch, "=~"}, {CmpNoMatch, "!~"},
		{CmpIs, "is"}, {CmpIsNot, "isnot"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%d.String() = %q; want %q", tc.k, got, tc.want)
		}
	}
}

func TestBinaryOpKindIsComparison(t *testing.T) {
	comparisons := []BinaryOpKind{CmpEq, CmpNotEq, CmpGT, CmpGTEq, CmpLT, CmpLTEq, CmpMatch, CmpNoMatch, CmpIs, CmpIsNot}
	for _, k := range comparisons {
		if !k.IsComparison() {
			t.Errorf("%s.IsComparison() = false; want true", k)
		}
	}
	notComparisons := []BinaryOpKind{Add, Subtract, Multiply, Divide, Remainder, Concat, LogicalAnd, LogicalOr}
	for _, k := range notComparisons {
		if k.IsComparison() {
			t.Errorf("%s.IsComparison() = true; want false", k)
		}
	}
}

func TestUnaryOpKindString(t *testing.T) {
	tests := []struct {
		k    UnaryOpKind
		want string
	}{
		{Not, "!"}, {Negate, "-"}, {UnaryPlus, "+"}, {UnaryOpKind(99), "?"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%d.String() = %q; want %q", tc.k, got, tc.want)
		}
	}
}

func TestForVarXorListInvariant(t *testing.T) {
	// scalar form
	f1 := &For{Var: "x"}
	if f1.Var == "" || f1.List != nil {
		t.Errorf("scalar For should have Var set and List nil")
	}
	// destructuring form
	f2 := &For{List: []string{"a", "b"}, Rest: "rest"}
	if f2.Var != "" || f2.List == nil {
		t.Errorf("destructuring For should have List set and Var empty")
	}
}

func TestForDiffIgnoresPosition(t *testing.T) {
	a := &For{Base: NewBase(token.Pos{Line: 1, Column: 1}), List: []string{"a", "b"}, Rest: "rest", Body: nil}
	b := &For{Base: NewBase(token.Pos{Line: 5, Column: 9}), List: []string{"a", "b"}, Rest: "rest", Body: nil}
	if diff := cmp.Diff(a, b, cmpopts.IgnoreFields(Base{}, "P")); diff != "" {
		t.Errorf("For structs should be equal modulo position (-want +got):\n%s", diff)
	}
	c := &For{Base: NewBase(token.Pos{Line: 1, Column: 1}), List: []string{"a", "c"}, Rest: "rest"}
	if diff := cmp.Diff(a, c, cmpopts.IgnoreFields(Base{}, "P")); diff == "" {
		t.Errorf("For structs with differing List should not compare equal")
	}
}
