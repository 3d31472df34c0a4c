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

package format

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/ast"
)

// formatter holds the emitter's mutable state: the output buffer, the
// current indent depth, and the current column (used to decide whether a
// container fits on one line).
type formatter struct {
	cfg   *config
	buf   bytes.Buffer
	depth int
	col   int
}

func (f *formatter) emit(s string) {
	f.buf.WriteString(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		f.col = len(s) - i - 1
	} else {
		f.col += len(s)
	}
}

func (f *formatter) newline() {
	f.buf.WriteByte('\n')
	ind := strings.Repeat(f.cfg.indent, f.depth)
	f.buf.WriteString(ind)
	f.col = len(ind)
}

// fits reports whether appending s to the current line stays within the
// soft line-length budget.
func (f *formatter) fits(s string) bool {
	return f.col+len(s) <= f.cfg.maxLen
}

// container renders items between open/close, first attempting one line;
// if that crosses the length budget it rewinds (by simply not having
// committed the attempt yet) and re-emits one element per continuation
// line using the backslash continuation syntax (spec.md §4.6).
func (f *formatter) container(open, items, close string, parts []string) {
	oneLine := open + items + close
	if len(parts) <= 1 || f.fits(oneLine) {
		f.emit(oneLine)
		return
	}
	f.emit(open)
	f.depth++
	for i, p := range parts {
		f.newline()
		f.emit(f.cfg.contIndent + p)
		if i < len(parts)-1 {
			f.emit(",")
		}
	}
	f.depth--
	f.newline()
	f.emit(close)
}

func (f *formatter) file(top *ast.TopLevel) {
	f.stmts(top.Body)
	f.emit("\n")
}

// stmts renders a block body one statement per line, inserting a blank
// line before a Function unless the preceding node was a Comment (spec.md
// §4.6: "Functions are separated by blank lines unless preceded by a
// comment").
func (f *formatter) stmts(body []ast.Node) {
	var prev ast.Node
	for _, n := range body {
		if _, ok := n.(*ast.Function); ok {
			if _, wasComment := prev.(*ast.Comment); !wasComment && prev != nil {
				f.newline()
			}
		}
		f.stmt(n)
		prev = n
	}
}

func (f *formatter) stmt(n ast.Node) {
	switch v := n.(type) {
	case *ast.BlankLine:
		f.newline()
	case *ast.Comment:
		f.newline()
		f.emit(v.Value)
	case *ast.Shebang:
		f.emit(v.Value)

	case *ast.If:
		f.newline()
		f.emit("if " + f.expr(v.Cond))
		f.body(v.Body)
		for _, ei := range v.ElseIfs {
			f.newline()
			f.emit("elseif " + f.expr(ei.Cond))
			f.body(ei.Body)
		}
		if v.Else != nil {
			f.newline()
			f.emit("else")
			f.body(v.Else.Body)
		}
		f.newline()
		f.emit("endif")

	case *ast.While:
		f.newline()
		f.emit("while " + f.expr(v.Cond))
		f.body(v.Body)
		f.newline()
		f.emit("endwhile")

	case *ast.For:
		f.newline()
		f.emit("for " + forLHS(v.Var, v.List, v.Rest) + " in " + f.expr(v.Right))
		f.body(v.Body)
		f.newline()
		f.emit("endfor")

	case *ast.Try:
		f.newline()
		f.emit("try")
		f.body(v.Body)
		for _, c := range v.Catches {
			f.newline()
			s := "catch"
			if c.Pattern != "" {
				s += " /" + c.Pattern + "/"
			}
			f.emit(s)
			f.body(c.Body)
		}
		if v.Finally != nil {
			f.newline()
			f.emit("finally")
			f.body(v.Finally.Body)
		}
		f.newline()
		f.emit("endtry")

	case *ast.Break:
		f.newline()
		f.emit("break")
	case *ast.Continue:
		f.newline()
		f.emit("continue")
	case *ast.Finish:
		f.newline()
		f.emit("finish")
	case *ast.Return:
		f.newline()
		if v.Left == nil {
			f.emit("return")
		} else {
			f.emit("return " + f.expr(v.Left))
		}
	case *ast.Throw:
		f.newline()
		f.emit("throw " + f.expr(v.Err))

	case *ast.Function:
		f.newline()
		header := "function! " + f.expr(v.Name) + "(" + strings.Join(v.Args, ", ") + ")"
		if len(v.Attrs) > 0 {
			header += " " + strings.Join(v.Attrs, " ")
		}
		f.emit(header)
		f.body(v.Body)
		f.newline()
		f.emit("endfunction")
	case *ast.DelFunction:
		f.newline()
		f.emit("delfunction " + f.expr(v.Left))

	case *ast.Let:
		f.newline()
		lhs := forLHS(v.Var, v.List, v.Rest)
		f.emit("let " + lhs + " " + v.Op + " ")
		f.exprWrap(v.Right)
	case *ast.Unlet:
		f.newline()
		f.emit("unlet " + f.exprListFlat(v.List))
	case *ast.LockVar:
		f.newline()
		s := "lockvar"
		if v.Depth != nil {
			s += " " + strconv.Itoa(*v.Depth)
		}
		f.emit(s + " " + f.exprListFlat(v.List))
	case *ast.UnlockVar:
		f.newline()
		s := "unlockvar"
		if v.Depth != nil {
			s += " " + strconv.Itoa(*v.Depth)
		}
		f.emit(s + " " + f.exprListFlat(v.List))

	case *ast.ExCmd:
		f.newline()
		s := v.Command
		if v.Bang {
			s += "!"
		}
		if v.Args != "" {
			s += " " + v.Args
		}
		f.emit(s)
	case *ast.ExCall:
		f.newline()
		f.emit(f.expr(v.Left))
	case *ast.Echo:
		f.newline()
		f.emit(v.Cmd + " " + f.exprListFlat(v.List))
	case *ast.EchoHl:
		f.newline()
		f.emit("echohl " + v.Value)
	case *ast.Execute:
		f.newline()
		f.emit("execute " + f.exprListFlat(v.List))

	case *ast.Autocmd:
		f.newline()
		f.autocmd(v)
	case *ast.Augroup:
		f.newline()
		if strings.EqualFold(v.Name, "END") {
			f.emit("augroup END")
		} else {
			f.emit("augroup " + v.Name)
		}
	case *ast.Mapping:
		f.newline()
		s := v.Command
		for _, a := range v.Attrs {
			s += " <" + a + ">"
		}
		f.emit(s + " " + v.Left + " " + v.Right)
	case *ast.Highlight:
		f.newline()
		f.highlight(v)
	case *ast.WinCmd:
		f.newline()
		f.emit("wincmd " + v.Arg)
	}
}

// body renders a nested block at one indent level deeper.
func (f *formatter) body(nodes []ast.Node) {
	f.depth++
	f.stmts(nodes)
	f.depth--
}

func forLHS(varName string, list []string, rest string) string {
	switch {
	case rest != "":
		return "[" + strings.Join(list, ", ") + "; " + rest + "]"
	case list != nil:
		return "[" + strings.Join(list, ", ") + "]"
	default:
		return varName
	}
}

// autocmd renders an Autocmd's header and, per spec.md §4.6, joins its
// body sub-commands with " | " when that fits on one line, otherwise one
// per continuation line.
func (f *formatter) autocmd(v *ast.Autocmd) {
	var parts []string
	parts = append(parts, "autocmd")
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
	header := strings.Join(parts, " ")
	f.emit(header)
	if len(v.Body) == 0 {
		return
	}
	cmds := make([]string, len(v.Body))
	for i, n := range v.Body {
		cmds[i] = f.subcmdFlat(n)
	}
	oneLine := " " + strings.Join(cmds, " | ")
	if f.fits(oneLine) {
		f.emit(oneLine)
		return
	}
	f.depth++
	for _, c := range cmds {
		f.newline()
		f.emit(c)
	}
	f.depth--
}

// subcmdFlat renders a single autocmd sub-command on one line, for the
// " | "-joined rendering attempted by autocmd.
func (f *formatter) subcmdFlat(n ast.Node) string {
	save := f.buf
	saveDepth, saveCol := f.depth, f.col
	f.buf = bytes.Buffer{}
	f.depth, f.col = 0, 0
	f.stmt(n)
	out := strings.TrimPrefix(f.buf.String(), "\n")
	f.buf, f.depth, f.col = save, saveDepth, saveCol
	return out
}

func (f *formatter) highlight(v *ast.Highlight) {
	switch {
	case v.Link:
		f.emit("highlight link " + v.Group + " " + v.ToGroup)
	case v.Clear:
		if v.Group == "" {
			f.emit("highlight clear")
		} else {
			f.emit("highlight clear " + v.Group)
		}
	default:
		s := "highlight"
		if v.Default {
			s += " default"
		}
		if v.Group != "" {
			s += " " + v.Group
		}
		if v.None {
			s += " NONE"
		}
		for _, a := range v.Attrs {
			s += " " + a.Key + "=" + a.Value
		}
		f.emit(s)
	}
}

// exprWrap renders e after a prefix already emitted on the current line,
// exploding a List/Dict/Call literal across continuation lines if the
// one-line form would cross the length budget (spec.md §4.6).
func (f *formatter) exprWrap(e ast.Expr) {
	flat := f.expr(e)
	if f.fits(flat) {
		f.emit(flat)
		return
	}
	switch v := e.(type) {
	case *ast.List:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = f.expr(it)
		}
		f.container("[", strings.Join(items, ", "), "]", items)
		return
	case *ast.Dict:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = f.expr(it.Key) + ": " + f.expr(it.Val)
		}
		f.container("{", strings.Join(items, ", "), "}", items)
		return
	case *ast.Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = f.expr(a)
		}
		f.container(f.expr(v.Name)+"(", strings.Join(args, ", "), ")", args)
		return
	}
	f.emit(flat)
}

func (f *formatter) exprListFlat(list []ast.Expr) string {
	parts := make([]string, len(list))
	for i, e := range list {
		parts[i] = f.expr(e)
	}
	return strings.Join(parts, " ")
}

// expr renders e as flat, single-line Vimscript source text.
func (f *formatter) expr(e ast.Expr) string {
	if e == nil {
		return ""
	}
	switch v := e.(type) {
	case *ast.Number:
		return v.Value
	case *ast.String:
		return string(v.Quote) + v.Value + string(v.Quote)
	case *ast.Identifier:
		return v.Name
	case *ast.CurlyName:
		var b strings.Builder
		for _, p := range v.Pieces {
			b.WriteString(f.expr(p))
		}
		return b.String()
	case *ast.CurlyNamePart:
		return v.Value
	case *ast.CurlyNameExpr:
		return "{" + f.expr(v.Expr) + "}"
	case *ast.Env:
		return "$" + v.Name
	case *ast.Reg:
		return "@" + v.Name
	case *ast.Option:
		return "&" + v.Name
	case *ast.List:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = f.expr(it)
		}
		return "[" + strings.Join(items, ", ") + "]"
	case *ast.Dict:
		items := make([]string, len(v.Items))
		for i, it := range v.Items {
			items[i] = f.expr(it.Key) + ": " + f.expr(it.Val)
		}
		return "{" + strings.Join(items, ", ") + "}"
	case *ast.Lambda:
		return "{" + strings.Join(v.Args, ", ") + " -> " + f.expr(v.Expr) + "}"
	case *ast.ParenExpr:
		return "(" + f.expr(v.Expr) + ")"
	case *ast.Call:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = f.expr(a)
		}
		return f.expr(v.Name) + "(" + strings.Join(args, ", ") + ")"
	case *ast.Subscript:
		return f.expr(v.Name) + "[" + f.expr(v.Index) + "]"
	case *ast.Slice:
		left, right := "", ""
		if v.Left != nil {
			left = f.expr(v.Left)
		}
		if v.Right != nil {
			right = f.expr(v.Right)
		}
		return f.expr(v.Name) + "[" + left + ":" + right + "]"
	case *ast.Dot:
		return f.expr(v.Left) + "." + f.expr(v.Right)
	case *ast.Ternary:
		return f.expr(v.Cond) + " ? " + f.expr(v.Left) + " : " + f.expr(v.Right)
	case *ast.BinaryOp:
		return f.expr(v.Left) + " " + binarySpelling(v) + " " + f.expr(v.Right)
	case *ast.UnaryOp:
		return v.Op.String() + f.expr(v.Right)
	}
	return ""
}

func binarySpelling(v *ast.BinaryOp) string {
	s := v.Op.String()
	if v.Op.IsComparison() && v.CaseSuffix != 0 {
		s += string(byte(v.CaseSuffix))
	}
	return s
}
