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

// Package parser also implements the S-expression dump side of the
// AST/Pretty-Printer component (spec.md §4.6): "( <tag> <child…> )", bodies
// indent two spaces per level, blank lines are dropped.
package parser

import (
	"strconv"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/ast"
)

// Dump renders top in the canonical S-expression form (spec.md §4.6, §8).
// Each top-level statement is rendered on its own line; blank lines are
// dropped.
func Dump(top *ast.TopLevel) string {
	var lines []string
	for _, n := range top.Body {
		if _, ok := n.(*ast.BlankLine); ok {
			continue
		}
		lines = append(lines, dumpNode(n, 0))
	}
	return strings.Join(lines, "\n")
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

// dumpBody renders each non-blank node of body on its own line, indented
// one level deeper than depth, each line prefixed with a newline so callers
// can simply concatenate it onto the header they already built.
func dumpBody(body []ast.Node, depth int) string {
	var b strings.Builder
	for _, n := range body {
		if _, ok := n.(*ast.BlankLine); ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(indent(depth + 1))
		b.WriteString(dumpNode(n, depth+1))
	}
	return b.String()
}

func dumpExprList(items []ast.Expr, depth int) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = dumpNode(it, depth)
	}
	return strings.Join(parts, " ")
}

func paren(tag string, rest string) string {
	if rest == "" {
		return "(" + tag + ")"
	}
	return "(" + tag + " " + rest + ")"
}

// dumpNode dispatches on the node's concrete type, building an S-expression
// fragment as described by spec.md §4.6. depth is the node's own nesting
// depth, used to indent any sibling branch headers (elseif/else/catch/
// finally) at the same level as their opening keyword.
func dumpNode(n ast.Node, depth int) string {
	switch v := n.(type) {
	case *ast.BlankLine:
		return ""
	case *ast.Comment:
		return paren("comment", v.Value)
	case *ast.Shebang:
		return paren("shebang", v.Value)

	case *ast.If:
		var b strings.Builder
		b.WriteString("(if ")
		b.WriteString(dumpNode(v.Cond, depth))
		b.WriteString(dumpBody(v.Body, depth))
		for _, ei := range v.ElseIfs {
			b.WriteString("\n")
			b.WriteString(indent(depth))
			b.WriteString(" elseif ")
			b.WriteString(dumpNode(ei.Cond, depth))
			b.WriteString(dumpBody(ei.Body, depth))
		}
		if v.Else != nil {
			b.WriteString("\n")
			b.WriteString(indent(depth))
			b.WriteString(" else")
			b.WriteString(dumpBody(v.Else.Body, depth))
		}
		b.WriteString(")")
		return b.String()

	case *ast.While:
		return "(while " + dumpNode(v.Cond, depth) + dumpBody(v.Body, depth) + ")"

	case *ast.For:
		var lhs string
		switch {
		case v.Rest != "":
			lhs = "(" + strings.Join(v.List, " ") + " . " + v.Rest + ")"
		case v.List != nil:
			lhs = "(" + strings.Join(v.List, " ") + ")"
		default:
			lhs = v.Var
		}
		return "(for " + lhs + " " + dumpNode(v.Right, depth) + dumpBody(v.Body, depth) + ")"

	case *ast.Try:
		var b strings.Builder
		b.WriteString("(try")
		b.WriteString(dumpBody(v.Body, depth))
		for _, c := range v.Catches {
			b.WriteString("\n")
			b.WriteString(indent(depth))
			b.WriteString(" catch")
			if c.Pattern != "" {
				b.WriteString(" /" + c.Pattern + "/")
			}
			b.WriteString(dumpBody(c.Body, depth))
		}
		if v.Finally != nil {
			b.WriteString("\n")
			b.WriteString(indent(depth))
			b.WriteString(" finally")
			b.WriteString(dumpBody(v.Finally.Body, depth))
		}
		b.WriteString(")")
		return b.String()

	case *ast.Break:
		return "(break)"
	case *ast.Continue:
		return "(continue)"
	case *ast.Finish:
		return "(finish)"
	case *ast.End:
		return "(end)"
	case *ast.Return:
		if v.Left == nil {
			return "(return)"
		}
		return "(return " + dumpNode(v.Left, depth) + ")"
	case *ast.Throw:
		return "(throw " + dumpNode(v.Err, depth) + ")"

	case *ast.Function:
		header := dumpNode(v.Name, depth)
		if len(v.Args) > 0 {
			header += " " + strings.Join(v.Args, " ")
		}
		return "(function (" + header + ")" + dumpBody(v.Body, depth) + ")"
	case *ast.DelFunction:
		return "(delfunction " + dumpNode(v.Left, depth) + ")"

	case *ast.Let:
		lhs := letLHS(v.Var, v.List, v.Rest)
		return "(let " + lhs + " " + v.Op + " " + dumpNode(v.Right, depth) + ")"
	case *ast.Unlet:
		return paren("unlet", dumpExprList(v.List, depth))
	case *ast.LockVar:
		tag := "lockvar"
		if v.Depth != nil {
			tag += " " + strconv.Itoa(*v.Depth)
		}
		return paren(tag, dumpExprList(v.List, depth))
	case *ast.UnlockVar:
		tag := "unlockvar"
		if v.Depth != nil {
			tag += " " + strconv.Itoa(*v.Depth)
		}
		return paren(tag, dumpExprList(v.List, depth))

	case *ast.ExCmd:
		s := v.Command
		if v.Bang {
			s += "!"
		}
		if v.Args != "" {
			s += " " + v.Args
		}
		return paren("excmd", s)
	case *ast.ExCall:
		return dumpNode(v.Left, depth)
	case *ast.Echo:
		return paren(v.Cmd, dumpExprList(v.List, depth))
	case *ast.EchoHl:
		return paren("echohl", v.Value)
	case *ast.Execute:
		return paren("execute", dumpExprList(v.List, depth))

	case *ast.Autocmd:
		var parts []string
		if v.Group != "" {
			parts = append(parts, v.Group)
		}
		parts = append(parts, strings.Join(v.Events, ","))
		if len(v.Patterns) > 0 {
			parts = append(parts, strings.Join(v.Patterns, ","))
		}
		if v.Nested {
			parts = append(parts, "nested")
		}
		return "(autocmd " + strings.Join(parts, " ") + dumpBody(v.Body, depth) + ")"
	case *ast.Augroup:
		return paren("augroup", v.Name)
	case *ast.Mapping:
		s := v.Command + " " + v.Left + " " + v.Right
		return paren("map", s)
	case *ast.Highlight:
		switch {
		case v.Link:
			return paren("highlight", "link "+v.Group+" "+v.ToGroup)
		case v.Clear:
			return paren("highlight", "clear "+v.Group)
		default:
			s := v.Group
			if v.Default {
				s = "default " + s
			}
			if v.None {
				s += " NONE"
			}
			for _, a := range v.Attrs {
				s += " " + a.Key + "=" + a.Value
			}
			return paren("highlight", s)
		}
	case *ast.WinCmd:
		return paren("wincmd", v.Arg)

	case *ast.Number:
		return v.Value
	case *ast.String:
		return string(v.Quote) + v.Value + string(v.Quote)
	case *ast.Identifier:
		return v.Name
	case *ast.CurlyName:
		var b strings.Builder
		for _, p := range v.Pieces {
			b.WriteString(dumpNode(p, depth))
		}
		return b.String()
	case *ast.CurlyNamePart:
		return v.Value
	case *ast.CurlyNameExpr:
		return "{" + dumpNode(v.Expr, depth) + "}"
	case *ast.Env:
		return "$" + v.Name
	case *ast.Reg:
		return "@" + v.Name
	case *ast.Option:
		return "&" + v.Name

	case *ast.List:
		return paren("list", dumpExprList(v.Items, depth))
	case *ast.Dict:
		parts := make([]string, len(v.Items))
		for i, e := range v.Items {
			parts[i] = "(" + dumpNode(e.Key, depth) + " . " + dumpNode(e.Val, depth) + ")"
		}
		return paren("dict", strings.Join(parts, " "))
	case *ast.Lambda:
		return "(lambda (" + strings.Join(v.Args, " ") + ") " + dumpNode(v.Expr, depth) + ")"
	case *ast.ParenExpr:
		return dumpNode(v.Expr, depth)
	case *ast.Call:
		s := dumpNode(v.Name, depth)
		if len(v.Args) > 0 {
			s += " " + dumpExprList(v.Args, depth)
		}
		return "(" + s + ")"
	case *ast.Subscript:
		return "(subscript " + dumpNode(v.Name, depth) + " " + dumpNode(v.Index, depth) + ")"
	case *ast.Slice:
		return "(slice " + dumpNode(v.Name, depth) + " " + dumpBound(v.Left, depth) + " " + dumpBound(v.Right, depth) + ")"
	case *ast.Dot:
		return "(dot " + dumpNode(v.Left, depth) + " " + dumpNode(v.Right, depth) + ")"
	case *ast.Ternary:
		return "(?: " + dumpNode(v.Cond, depth) + " " + dumpNode(v.Left, depth) + " " + dumpNode(v.Right, depth) + ")"
	case *ast.BinaryOp:
		return "(" + v.Op.String() + " " + dumpNode(v.Left, depth) + " " + dumpNode(v.Right, depth) + ")"
	case *ast.UnaryOp:
		return "(" + v.Op.String() + " " + dumpNode(v.Right, depth) + ")"
	}
	return ""
}

func dumpBound(e ast.Expr, depth int) string {
	if e == nil {
		return "nil"
	}
	return dumpNode(e, depth)
}

func letLHS(varName string, list []string, rest string) string {
	switch {
	case rest != "":
		return "(" + strings.Join(list, " ") + " . " + rest + ")"
	case list != nil:
		return "(" + strings.Join(list, " ") + ")"
	default:
		return varName
	}
}
