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

// Package parser implements the Command Parser (spec.md §4.5): the driver
// loop that recognizes modifiers, a range, a command name via the Command
// Table, and dispatches to one of the per-command-family sub-parsers,
// threading a context stack of open blocks (if/while/for/try/function)
// the way cuelang.org/go/cue/parser threads its own open-scope state
// through a single recursive-descent pass.
package parser

import (
	"strconv"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/ast"
	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/internal/autocmdtable"
	"github.com/deathlyfrantic/vimlfmt/internal/cmdtable"
	"github.com/deathlyfrantic/vimlfmt/reader"
	"github.com/deathlyfrantic/vimlfmt/scanner"
	"github.com/deathlyfrantic/vimlfmt/token"
)

// Modifier is one recognized command modifier (spec.md §4.5), e.g.
// "silent!" or "10tab".
type Modifier struct {
	Name     string
	Bang     bool
	Count    int
	HasCount bool
}

// ExArg carries everything the driver loop recognized about one command
// before dispatch: its descriptor, canonical/abbreviated name, bang and
// modifier state, and the raw range token sequence (spec.md §4.5: "the
// command dispatcher only uses presence", so Range is kept as opaque
// strings rather than a structured range AST).
type ExArg struct {
	Cmd       *cmdtable.Command
	CmdName   string
	Bang      bool
	Range     []string
	Modifiers []Modifier
	Pos       token.Pos
}

// blockKind tags the kind of open block a context-stack frame represents.
type blockKind int

const (
	blockTop blockKind = iota
	blockIf
	blockWhile
	blockFor
	blockTry
	blockFunction
)

// frame is one entry of the context stack (spec.md §5: "the context stack
// is owned by the Command Parser; open block nodes held on the stack are
// the only live mutable references to in-flight AST subtrees"). body
// points at whichever slice new child nodes should append to: the block's
// own Body, or (after an elseif/else/catch/finally) the current branch's
// Body. ifNode/tryNode give the branch-opening commands a handle back to
// the node that owns their sibling branches; setEnd lets closeBlock record
// the terminator's position on whichever node shape the block holds.
type frame struct {
	kind       blockKind
	body       *[]ast.Node
	pos        token.Pos
	setEnd     func(token.Pos)
	ifNode     *ast.If
	tryNode    *ast.Try
	sawFinally bool
}

// Parser drives the whole pipeline: Char Source, Tokenizer, Expression
// Parser (expr.go), Command Table directory, and the open-block context
// stack.
type Parser struct {
	cs    *reader.CharSource
	sc    *scanner.Scanner
	dir   *cmdtable.Directory
	stack []*frame
}

// NewParser creates a Parser with a fresh Command Table directory.
func NewParser(cs *reader.CharSource) *Parser {
	return newParserWithDirectory(cs, cmdtable.NewDirectory())
}

// newParserWithDirectory creates a Parser sharing dir with its caller, so
// a user command synthesized in an outer parse resolves the same way in a
// nested one (spec.md §8: "find_command is idempotent"). Used for the
// Autocmd sub-parser's recursive re-entry into the whole parser.
func newParserWithDirectory(cs *reader.CharSource, dir *cmdtable.Directory) *Parser {
	return &Parser{cs: cs, sc: scanner.New(cs), dir: dir}
}

// newExprSubParser builds a standalone Parser over a synthetic one-line
// Char Source, used only to parse a `<expr>` mapping's right-hand side as
// an expression fragment (spec.md §4.5, Mapping sub-parser).
func newExprSubParser(text string) *Parser {
	cs := reader.New([]string{text})
	return &Parser{cs: cs, sc: scanner.New(cs)}
}

// ---------------------------------------------------------------------
// Context stack

func (p *Parser) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) push(f *frame) { p.stack = append(p.stack, f) }

func (p *Parser) pop() *frame {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return f
}

func (p *Parser) emit(n ast.Node) {
	f := p.top()
	*f.body = append(*f.body, n)
}

// hasEnclosing reports whether any frame on the stack (innermost to
// outermost) has one of the given kinds, used by Break/Continue/Return to
// find their required enclosing loop or function.
func (p *Parser) hasEnclosing(kinds ...blockKind) bool {
	for _, f := range p.stack {
		for _, k := range kinds {
			if f.kind == k {
				return true
			}
		}
	}
	return false
}

// closeBlock implements the End* sub-parser contract (spec.md §4.5): pop
// the stack iff its top matches kind, else fail with the Vim-specific
// mismatch code.
func (p *Parser) closeBlock(ea *ExArg, kind blockKind, code, msg string) error {
	f := p.top()
	if f == nil || f.kind != kind {
		return errors.WithCode(ea.Pos, code, msg)
	}
	p.pop()
	if f.setEnd != nil {
		f.setEnd(ea.Pos)
	}
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// Driver loop

// run executes the Command Parser's driver loop to EOF (spec.md §4.5).
func (p *Parser) run() (*ast.TopLevel, error) {
	top := &ast.TopLevel{Base: ast.NewBase(token.Pos{Line: 1, Column: 1})}
	p.stack = []*frame{{kind: blockTop, body: &top.Body}}
	for !p.cs.AtEOF() {
		if err := p.parseOneCommand(); err != nil {
			return nil, err
		}
	}
	if len(p.stack) != 1 {
		f := p.top()
		return nil, errors.WithCode(f.pos, "E126", "missing end of block")
	}
	return top, nil
}

// parseOneCommand handles the per-line special cases (shebang, blank
// line, full-line comment) before handing off to parseCommand (spec.md
// §4.5, steps 1-3).
func (p *Parser) parseOneCommand() error {
	startPos := p.cs.Getpos()
	p.cs.SkipWhite()
	switch p.cs.Peek() {
	case '\n':
		p.cs.Get()
		p.emit(&ast.BlankLine{Base: ast.NewBase(startPos)})
		return nil
	case reader.EOF:
		return nil
	}
	if startPos.Line == 1 && startPos.Column == 1 && p.cs.Peek() == '#' && p.cs.PeekAhead(1) == '!' {
		line := p.cs.GetLine()
		p.emit(&ast.Shebang{Base: ast.NewBase(startPos), Value: line})
		return nil
	}
	p.cs.SkipWhiteAndColon()
	switch p.cs.Peek() {
	case '"':
		pos := p.cs.Getpos()
		line := p.cs.GetLine()
		p.emit(&ast.Comment{Base: ast.NewBase(pos), Value: line})
		return nil
	case '\n':
		p.cs.Get()
		p.emit(&ast.BlankLine{Base: ast.NewBase(startPos)})
		return nil
	case reader.EOF:
		return nil
	}
	return p.parseCommand()
}

// parseCommand handles modifiers, range, command lookup, bang, and
// per-command pre-argument idiosyncrasies, then dispatches (spec.md §4.5,
// step 4).
func (p *Parser) parseCommand() error {
	ea := &ExArg{}
	if err := p.parseModifiers(ea); err != nil {
		return err
	}
	ea.Range = p.parseRange()
	p.cs.SkipWhite()
	if p.cs.AtEOF() || p.cs.Peek() == '\n' {
		return nil
	}

	cmdPos := p.cs.Getpos()
	cmd, name, err := p.dir.Find(p.cs)
	if err != nil {
		return err
	}
	ea.Cmd = cmd
	ea.CmdName = name
	ea.Pos = cmdPos

	if p.cs.Peek() == '!' {
		regexBang := name == "substitute" || name == "smagic" || name == "snomagic"
		if !regexBang {
			p.cs.Get()
			ea.Bang = true
			if !cmd.Flags.Has(cmdtable.BANG) && cmd.ParserKind != cmdtable.UserCmd {
				return errors.WithCode(cmdPos, "E477", "no ! allowed")
			}
		}
	}

	if err := p.parsePreArgs(ea); err != nil {
		return err
	}

	return p.dispatch(ea)
}

// finishLine enforces end-of-command per the descriptor's TRLBAR/NOTRLCOM
// flags: a trailing comment is captured, a trailing '|' ends the command
// (and lets the driver loop parse the next one), anything else is E488.
func (p *Parser) finishLine(ea *ExArg) error {
	p.cs.SkipWhite()
	switch p.cs.Peek() {
	case reader.EOF, '\n':
		return nil
	case '"':
		pos := p.cs.Getpos()
		line := p.cs.GetLine()
		p.emit(&ast.Comment{Base: ast.NewBase(pos), Value: line, Trailing: true})
		return nil
	case '|':
		if ea.Cmd != nil && ea.Cmd.Flags.Has(cmdtable.TRLBAR) && !ea.Cmd.Flags.Has(cmdtable.NOTRLCOM) {
			p.cs.Get()
			return nil
		}
	}
	pos := p.cs.Getpos()
	trail := p.cs.ReadNonwhite()
	return errors.WithCode(pos, "E488", "trailing characters: %s", trail)
}

// ---------------------------------------------------------------------
// Modifiers, range

func (p *Parser) parseModifiers(ea *ExArg) error {
	for {
		save := p.cs.Getpos()
		p.cs.SkipWhite()

		hasCount := false
		count := 0
		if isDigitRune(p.cs.Peek()) {
			n := p.cs.ReadDigit()
			hasCount = true
			count, _ = strconv.Atoi(n)
		}
		if !isAlphaRune(p.cs.Peek()) {
			p.cs.Setpos(save)
			return nil
		}

		word := p.cs.ReadAlpha()
		canon, ok := cmdtable.MatchModifier(word)
		if !ok {
			p.cs.Setpos(save)
			return nil
		}
		if hasCount && !cmdtable.CountModifiers[canon] {
			p.cs.Setpos(save)
			return nil
		}

		m := Modifier{Name: canon, Count: count, HasCount: hasCount}
		if canon == cmdtable.BangModifier && p.cs.Peek() == '!' {
			p.cs.Get()
			m.Bang = true
		}
		if canon == cmdtable.HideModifier {
			after := p.cs.Getpos()
			p.cs.SkipWhite()
			switch p.cs.Peek() {
			case reader.EOF, '\n', '"':
				p.cs.Setpos(save)
				return nil
			}
			p.cs.Setpos(after)
		}
		ea.Modifiers = append(ea.Modifiers, m)
	}
}

// parseRange gathers the range token sequence (spec.md §4.5): structural
// analysis is out of scope, so it is kept as opaque strings.
func (p *Parser) parseRange() []string {
	var parts []string
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		switch {
		case ch == '.' || ch == '$' || ch == '%' || ch == '*':
			p.cs.Get()
			parts = append(parts, string(ch))
		case ch == '\'':
			p.cs.Get()
			m := p.cs.Get()
			parts = append(parts, "'"+string(m))
		case isDigitRune(ch):
			n := p.cs.ReadDigit()
			parts = append(parts, n)
		case ch == '/' || ch == '?':
			pat, err := p.parsePattern(ch)
			if err != nil {
				return parts
			}
			parts = append(parts, pat)
		case ch == '\\':
			nxt := p.cs.PeekAhead(1)
			if nxt == '&' || nxt == '?' || nxt == '/' {
				p.cs.Getn(2)
				parts = append(parts, "\\"+string(nxt))
			} else {
				return parts
			}
		case ch == '+' || ch == '-':
			p.cs.Get()
			n := p.cs.ReadDigit()
			parts = append(parts, string(ch)+n)
		case ch == ';' || ch == ',':
			p.cs.Get()
			parts = append(parts, string(ch))
		default:
			return parts
		}
	}
}

// parsePattern reads a /pattern/ or ?pattern? range address, tracking
// [...] bracket depth and treating '\' as an escape (spec.md §4.5).
func (p *Parser) parsePattern(delim rune) (string, error) {
	start := p.cs.Getpos()
	var b strings.Builder
	b.WriteRune(p.cs.Get())
	depth := 0
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' {
			return "", errors.Newf(start, "unterminated pattern")
		}
		if ch == '\\' {
			b.WriteRune(p.cs.Get())
			if p.cs.Peek() != reader.EOF {
				b.WriteRune(p.cs.Get())
			}
			continue
		}
		if ch == '[' {
			depth++
		}
		if ch == ']' && depth > 0 {
			depth--
		}
		b.WriteRune(p.cs.Get())
		if ch == delim && depth == 0 {
			break
		}
	}
	return b.String(), nil
}

// readUntilDelim reads up to (and consuming) the closing delim, honoring
// backslash escapes, used by :catch's /pattern/.
func (p *Parser) readUntilDelim(delim rune) (string, error) {
	var b strings.Builder
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' {
			return b.String(), errors.Newf(p.cs.Getpos(), "unterminated pattern")
		}
		if ch == '\\' {
			b.WriteRune(p.cs.Get())
			if p.cs.Peek() != reader.EOF {
				b.WriteRune(p.cs.Get())
			}
			continue
		}
		if ch == delim {
			p.cs.Get()
			return b.String(), nil
		}
		b.WriteRune(p.cs.Get())
	}
}

// parsePreArgs handles :write's '>'/'>>'/'!' prefix, :read's '!' prefix,
// ARGOPT's "++opt[=val]" run, and EDITCMD's "+cmd" argument (spec.md
// §4.5).
func (p *Parser) parsePreArgs(ea *ExArg) error {
	if ea.Cmd == nil {
		return nil
	}
	flags := ea.Cmd.Flags
	if flags.Has(cmdtable.XFILE) || flags.Has(cmdtable.FILES) {
		p.cs.SkipWhite()
		switch p.cs.Peek() {
		case '>':
			pos := p.cs.Getpos()
			p.cs.Get()
			if p.cs.Peek() == '>' {
				return errors.WithCode(pos, "E494", "use w or w>>")
			}
		case '!':
			p.cs.Get()
		}
	}
	for {
		p.cs.SkipWhite()
		if flags.Has(cmdtable.ARGOPT) && p.cs.Peek() == '+' && p.cs.PeekAhead(1) == '+' {
			if err := p.parseArgOpt(); err != nil {
				return err
			}
			continue
		}
		if flags.Has(cmdtable.EDITCMD) && p.cs.Peek() == '+' && p.cs.PeekAhead(1) != '+' {
			p.cs.Get()
			p.cs.ReadNonwhite()
			continue
		}
		break
	}
	return nil
}

func (p *Parser) parseArgOpt() error {
	start := p.cs.Getpos()
	p.cs.Getn(2)
	name := p.cs.ReadAlpha()
	var val string
	if p.cs.Peek() == '=' {
		p.cs.Get()
		val = p.cs.ReadNonwhite()
	}
	switch name {
	case "bin", "nobin", "edit":
	case "ff", "fileformat", "enc", "encoding", "bad":
		if val == "" {
			return errors.WithCode(start, "E474", "invalid argument: ++%s", name)
		}
	default:
		return errors.WithCode(start, "E474", "invalid argument: ++%s", name)
	}
	return nil
}

// ---------------------------------------------------------------------
// Dispatch

func (p *Parser) dispatch(ea *ExArg) error {
	switch ea.Cmd.ParserKind {
	case cmdtable.Common, cmdtable.UserCmd:
		return p.parseCommon(ea)
	case cmdtable.Append:
		return p.parseAppendInsert(ea, "append")
	case cmdtable.Insert:
		return p.parseAppendInsert(ea, ea.Cmd.Name)
	case cmdtable.Augroup:
		return p.parseAugroup(ea)
	case cmdtable.Autocmd:
		return p.parseAutocmd(ea)
	case cmdtable.Break:
		return p.parseBreak(ea)
	case cmdtable.Continue:
		return p.parseContinue(ea)
	case cmdtable.Call:
		return p.parseCall(ea)
	case cmdtable.DelFunction:
		return p.parseDelFunction(ea)
	case cmdtable.Echo:
		return p.parseEcho(ea)
	case cmdtable.EchoHl:
		return p.parseEchoHl(ea)
	case cmdtable.Execute:
		return p.parseExecute(ea)
	case cmdtable.Throw:
		return p.parseThrow(ea)
	case cmdtable.Finish:
		return p.parseFinish(ea)
	case cmdtable.Return:
		return p.parseReturn(ea)
	case cmdtable.Let:
		return p.parseLet(ea)
	case cmdtable.Unlet:
		return p.parseUnlet(ea)
	case cmdtable.LockVar:
		return p.parseLockVar(ea)
	case cmdtable.If:
		return p.parseIf(ea)
	case cmdtable.ElseIf:
		return p.parseElseIf(ea)
	case cmdtable.Else:
		return p.parseElse(ea)
	case cmdtable.EndIf:
		return p.closeBlock(ea, blockIf, "E580", "missing :endif")
	case cmdtable.While:
		return p.parseWhile(ea)
	case cmdtable.EndWhile:
		return p.closeBlock(ea, blockWhile, "E581", "missing :endwhile")
	case cmdtable.For:
		return p.parseFor(ea)
	case cmdtable.EndFor:
		return p.closeBlock(ea, blockFor, "E582", "missing :endfor")
	case cmdtable.Try:
		return p.parseTry(ea)
	case cmdtable.Catch:
		return p.parseCatch(ea)
	case cmdtable.Finally:
		return p.parseFinally(ea)
	case cmdtable.EndTry:
		return p.closeBlock(ea, blockTry, "E588", "missing :endtry")
	case cmdtable.Function:
		return p.parseFunction(ea)
	case cmdtable.EndFunction:
		return p.closeBlock(ea, blockFunction, "E193", ":endfunction not inside a function")
	case cmdtable.Lang:
		return p.parseLang(ea)
	case cmdtable.LoadKeymap:
		return p.parseLoadKeymap(ea)
	case cmdtable.Mapping:
		return p.parseMapping(ea)
	case cmdtable.Syntax:
		return p.parseSyntax(ea)
	case cmdtable.WinCmd:
		return p.parseWinCmd(ea)
	case cmdtable.Highlight:
		return p.parseHighlight(ea)
	}
	return p.parseCommon(ea)
}

// ---------------------------------------------------------------------
// Common / Append / Insert

// parseCommon implements the catch-all sub-parser (spec.md §4.5): consume
// to end-of-command respecting TRLBAR/NOTRLCOM, the Ctrl-V escape, and
// `` `=expr` `` interpolation for file-taking commands.
func (p *Parser) parseCommon(ea *ExArg) error {
	pos := ea.Pos
	var cmd *cmdtable.Command
	if ea.Cmd != nil {
		cmd = ea.Cmd
	} else {
		cmd = &cmdtable.Command{Flags: cmdtable.TRLBAR}
	}
	allowBar := cmd.Flags.Has(cmdtable.TRLBAR) && !cmd.Flags.Has(cmdtable.NOTRLCOM)
	special := ea.CmdName == "@" || ea.CmdName == "*"
	fileish := cmd.Flags.Has(cmdtable.XFILE) || cmd.Flags.Has(cmdtable.FILES) || cmd.Flags.Has(cmdtable.FILE1)

	var b strings.Builder
	first := true
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' {
			break
		}
		if ch == '\x16' {
			p.cs.Get()
			if p.cs.Peek() != reader.EOF {
				b.WriteRune(p.cs.Get())
			}
			first = false
			continue
		}
		if fileish && ch == '`' && p.cs.PeekAhead(1) == '=' {
			b.WriteRune(p.cs.Get())
			b.WriteRune(p.cs.Get())
			for {
				c2 := p.cs.Peek()
				if c2 == reader.EOF || c2 == '\n' {
					break
				}
				b.WriteRune(p.cs.Get())
				if c2 == '`' {
					break
				}
			}
			first = false
			continue
		}
		if ch == '"' && !(ea.CmdName == "redir" && first) {
			break
		}
		if ch == '|' && allowBar && !special {
			break
		}
		b.WriteRune(p.cs.Get())
		first = false
	}
	args := strings.TrimRight(b.String(), " \t")
	p.emit(&ast.ExCmd{Base: ast.NewBase(pos), Command: ea.CmdName, Args: args, Bang: ea.Bang})
	return p.finishLine(ea)
}

// parseAppendInsert consumes raw lines until a lone "." or EOF (spec.md
// §4.5, Append/Insert contract).
func (p *Parser) parseAppendInsert(ea *ExArg, cmdName string) error {
	pos := ea.Pos
	for p.cs.Peek() != reader.EOF && p.cs.Peek() != '\n' {
		p.cs.Get()
	}
	if p.cs.Peek() == '\n' {
		p.cs.Get()
	}
	var lines []string
	for !p.cs.AtEOF() {
		line := p.cs.GetLine()
		if line == "." {
			break
		}
		lines = append(lines, line)
	}
	p.emit(&ast.ExCmd{Base: ast.NewBase(pos), Command: cmdName, Args: strings.Join(lines, "\n"), Bang: ea.Bang})
	return nil
}

// ---------------------------------------------------------------------
// Augroup / Autocmd

func (p *Parser) parseAugroup(ea *ExArg) error {
	p.cs.SkipWhite()
	name := p.cs.ReadNonwhite()
	p.emit(&ast.Augroup{Base: ast.NewBase(ea.Pos), Name: name})
	return p.finishLine(ea)
}

// isEventList reports whether s is a comma-separated run of known autocmd
// events (or the "*" wildcard), used to tell an autocmd's optional group
// name apart from its event list (spec.md §4.5).
func isEventList(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if part == "*" {
			continue
		}
		if _, ok := autocmdtable.Lookup(part); !ok {
			return false
		}
	}
	return true
}

// parseAutocmd implements the Autocmd sub-parser (spec.md §4.5): up to
// four whitespace-separated sections, then the line's remainder as a
// piped sub-command list parsed by recursively re-entering the whole
// parser.
func (p *Parser) parseAutocmd(ea *ExArg) error {
	pos := ea.Pos
	p.cs.SkipWhite()
	firstPos := p.cs.Getpos()
	first := p.cs.ReadNonwhite()
	if first == "" {
		return errors.Newf(pos, "autocmd: argument required")
	}

	var group, eventsRaw string
	if isEventList(first) {
		eventsRaw = first
	} else {
		group = first
		p.cs.SkipWhite()
		firstPos = p.cs.Getpos()
		eventsRaw = p.cs.ReadNonwhite()
	}

	var events []string
	for _, part := range strings.Split(eventsRaw, ",") {
		if part == "" {
			continue
		}
		canon, ok := autocmdtable.Lookup(part)
		if !ok {
			return errors.WithCode(firstPos, "E216", "no such event: %s", part)
		}
		events = append(events, canon)
	}

	p.cs.SkipWhite()
	var patterns []string
	patRaw := p.cs.ReadNonwhite()
	if patRaw != "" {
		patterns = strings.Split(patRaw, ",")
	}

	p.cs.SkipWhite()
	nested := false
	save := p.cs.Getpos()
	word := p.cs.ReadWord()
	if strings.EqualFold(word, "nested") {
		nested = true
		p.cs.SkipWhite()
	} else {
		p.cs.Setpos(save)
	}

	rest := p.cs.PeekLine()
	p.cs.SeekCur(runeLen(rest))
	if p.cs.Peek() == '\n' {
		p.cs.Get()
	}

	var body []ast.Node
	if strings.TrimSpace(rest) != "" {
		b, err := p.parseAutocmdBody(rest)
		if err != nil {
			return err
		}
		body = b
	}

	p.emit(&ast.Autocmd{
		Base: ast.NewBase(pos), Group: group, Events: events,
		Patterns: patterns, Nested: nested, Body: body,
	})
	return nil
}

// parseAutocmdBody splits rest on unescaped '|' and parses each chunk by
// recursively invoking the whole parser, sharing this Parser's Command
// Table directory. Unlike the original implementation this does not
// offset-adjust nested positions back into the outer source (documented
// simplification, see DESIGN.md).
func (p *Parser) parseAutocmdBody(rest string) ([]ast.Node, error) {
	var body []ast.Node
	for _, chunk := range splitUnescapedBar(rest) {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		sub := newParserWithDirectory(reader.New([]string{chunk}), p.dir)
		tree, err := sub.run()
		if err != nil {
			return nil, err
		}
		body = append(body, tree.Body...)
	}
	return body, nil
}

func splitUnescapedBar(s string) []string {
	var parts []string
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) && runes[i+1] == '|' {
			b.WriteRune('|')
			i++
			continue
		}
		if r == '|' {
			parts = append(parts, b.String())
			b.Reset()
			continue
		}
		b.WriteRune(r)
	}
	parts = append(parts, b.String())
	return parts
}

// ---------------------------------------------------------------------
// Break / Continue / Return / Call / Finish / Throw

func (p *Parser) parseBreak(ea *ExArg) error {
	if !p.hasEnclosing(blockFor, blockWhile) {
		return errors.WithCode(ea.Pos, "E587", "break used outside of a loop")
	}
	p.emit(&ast.Break{Base: ast.NewBase(ea.Pos)})
	return p.finishLine(ea)
}

func (p *Parser) parseContinue(ea *ExArg) error {
	if !p.hasEnclosing(blockFor, blockWhile) {
		return errors.WithCode(ea.Pos, "E586", "continue used outside of a loop")
	}
	p.emit(&ast.Continue{Base: ast.NewBase(ea.Pos)})
	return p.finishLine(ea)
}

func (p *Parser) parseReturn(ea *ExArg) error {
	if !p.hasEnclosing(blockFunction) {
		return errors.WithCode(ea.Pos, "E133", "cannot use :return outside a function")
	}
	p.cs.SkipWhite()
	var left ast.Expr
	ch := p.cs.Peek()
	if ch != reader.EOF && ch != '\n' && ch != '"' {
		e, err := p.parseExpr()
		if err != nil {
			return err
		}
		left = e
	}
	p.emit(&ast.Return{Base: ast.NewBase(ea.Pos), Left: left})
	return p.finishLine(ea)
}

func (p *Parser) parseCall(ea *ExArg) error {
	p.cs.SkipWhite()
	e, err := p.parseExpr()
	if err != nil {
		return err
	}
	if _, ok := e.(*ast.Call); !ok {
		return errors.Newf(ea.Pos, "not a function call")
	}
	p.emit(&ast.ExCall{Base: ast.NewBase(ea.Pos), Left: e})
	return p.finishLine(ea)
}

func (p *Parser) parseFinish(ea *ExArg) error {
	p.emit(&ast.Finish{Base: ast.NewBase(ea.Pos)})
	return p.finishLine(ea)
}

func (p *Parser) parseThrow(ea *ExArg) error {
	p.cs.SkipWhite()
	e, err := p.parseExpr()
	if err != nil {
		return err
	}
	p.emit(&ast.Throw{Base: ast.NewBase(ea.Pos), Err: e})
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// Echo / EchoHl / Execute

func (p *Parser) parseEcho(ea *ExArg) error {
	var list []ast.Expr
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' || ch == '|' {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return err
		}
		list = append(list, e)
	}
	p.emit(&ast.Echo{Base: ast.NewBase(ea.Pos), Cmd: ea.Cmd.Name, List: list})
	return p.finishLine(ea)
}

func (p *Parser) parseEchoHl(ea *ExArg) error {
	p.cs.SkipWhite()
	val := p.cs.ReadNonwhite()
	p.emit(&ast.EchoHl{Base: ast.NewBase(ea.Pos), Value: val})
	return p.finishLine(ea)
}

func (p *Parser) parseExecute(ea *ExArg) error {
	var list []ast.Expr
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' || ch == '|' {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return err
		}
		list = append(list, e)
	}
	p.emit(&ast.Execute{Base: ast.NewBase(ea.Pos), List: list})
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// Let / Unlet / LockVar / UnlockVar, and shared LHS-destructure helper

type nameValidator func(token.Pos, string) error

// readLVName reads one destructuring-list member: a plain name (word
// characters plus ':' and '#'), as stored by ast.For/ast.Let's List/Rest
// fields.
func (p *Parser) readLVName() (string, bool) {
	p.cs.SkipWhite()
	name := p.cs.ReadName()
	if name == "" {
		return "", false
	}
	return name, true
}

// readLVText reads a scalar lvalue's raw text (spec.md §3: ast.Let/ast.For
// store a scalar LHS as a string, not a parsed Expr), stopping at
// whitespace or the lookahead for an assignment operator, and tracking
// '[' ']' depth so a subscripted lvalue like "a:b[0]" reads whole.
func (p *Parser) readLVText() (token.Pos, string) {
	pos := p.cs.Getpos()
	var b strings.Builder
	depth := 0
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF {
			break
		}
		if depth == 0 && (ch == ' ' || ch == '\t' || ch == '\n') {
			break
		}
		if depth == 0 && ch == '=' {
			break
		}
		if depth == 0 && (ch == '+' || ch == '-' || ch == '.') && p.cs.PeekAhead(1) == '=' {
			break
		}
		if ch == '[' {
			depth++
		}
		if ch == ']' && depth > 0 {
			depth--
		}
		b.WriteRune(p.cs.Get())
	}
	return pos, b.String()
}

// tryParseDestructureLHS parses either a scalar lvalue or a "[a, b; rest]"
// destructuring list, shared by :let and :for (spec.md §4.5: "parse_letlhs
// (scalar or [a, b; rest] destructuring)"). validate, when non-nil, is
// applied to every scalar name encountered (used by :let for E461; :for
// passes nil). ok is false (with err nil) when no LHS characters are
// present at all, signaling the caller to fall back to Common.
func (p *Parser) tryParseDestructureLHS(validate nameValidator) (varName string, list []string, rest string, ok bool, err error) {
	p.cs.SkipWhite()
	if p.cs.Peek() == '[' {
		p.cs.Get()
		for {
			p.cs.SkipWhite()
			if p.cs.Peek() == ';' {
				p.cs.Get()
				p.cs.SkipWhite()
				namePos := p.cs.Getpos()
				name, got := p.readLVName()
				if !got {
					return "", nil, "", false, errors.Newf(namePos, "expected rest variable name")
				}
				if validate != nil {
					if verr := validate(namePos, name); verr != nil {
						return "", nil, "", false, verr
					}
				}
				rest = name
				p.cs.SkipWhite()
				break
			}
			namePos := p.cs.Getpos()
			name, got := p.readLVName()
			if !got {
				return "", nil, "", false, errors.Newf(namePos, "expected variable name")
			}
			if validate != nil {
				if verr := validate(namePos, name); verr != nil {
					return "", nil, "", false, verr
				}
			}
			list = append(list, name)
			p.cs.SkipWhite()
			if p.cs.Peek() == ',' {
				p.cs.Get()
				continue
			}
			if p.cs.Peek() == ';' {
				continue
			}
			break
		}
		if p.cs.Peek() != ']' {
			return "", nil, "", false, nil
		}
		p.cs.Get()
		return "", list, rest, true, nil
	}

	namePos, text := p.readLVText()
	if text == "" {
		return "", nil, "", false, nil
	}
	if validate != nil {
		if verr := validate(namePos, text); verr != nil {
			return "", nil, "", false, verr
		}
	}
	return text, nil, "", true, nil
}

func (p *Parser) peekAssignOp() (string, bool) {
	switch {
	case p.cs.Peek() == '=' && p.cs.PeekAhead(1) != '=':
		return "=", true
	case p.cs.Peek() == '+' && p.cs.PeekAhead(1) == '=':
		return "+=", true
	case p.cs.Peek() == '-' && p.cs.PeekAhead(1) == '=':
		return "-=", true
	case p.cs.Peek() == '.' && p.cs.PeekAhead(1) == '=':
		return ".=", true
	}
	return "", false
}

func (p *Parser) consumeAssignOp() {
	if p.cs.Peek() == '=' {
		p.cs.Get()
		return
	}
	p.cs.Getn(2)
}

// parseLet implements the Let sub-parser (spec.md §4.5): parse LHS, then
// require an assignment operator; on either miss, fall through to Common
// (":let" with no args lists variables; ":const x" with a following
// non-assignment token isn't valid :let syntax either way).
func (p *Parser) parseLet(ea *ExArg) error {
	save := p.cs.Getpos()
	varName, list, rest, ok, err := p.tryParseDestructureLHS(validateLetName)
	if err != nil {
		return err
	}
	if !ok {
		p.cs.Setpos(save)
		return p.parseCommon(ea)
	}
	p.cs.SkipWhite()
	op, ok := p.peekAssignOp()
	if !ok {
		p.cs.Setpos(save)
		return p.parseCommon(ea)
	}
	p.consumeAssignOp()
	p.cs.SkipWhite()
	right, err := p.parseExpr()
	if err != nil {
		return err
	}
	p.emit(&ast.Let{Base: ast.NewBase(ea.Pos), Var: varName, List: list, Rest: rest, Op: op, Right: right})
	return p.finishLine(ea)
}

func (p *Parser) parseUnlet(ea *ExArg) error {
	var list []ast.Expr
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' || ch == '|' {
			break
		}
		e, err := p.parseLV()
		if err != nil {
			return err
		}
		list = append(list, e)
	}
	p.emit(&ast.Unlet{Base: ast.NewBase(ea.Pos), List: list})
	return p.finishLine(ea)
}

// parseLockVar implements both :lockvar and :unlockvar, which share one
// cmdtable.Kind (spec.md §4.5).
func (p *Parser) parseLockVar(ea *ExArg) error {
	p.cs.SkipWhite()
	var depth *int
	if isDigitRune(p.cs.Peek()) {
		d := p.cs.ReadDigit()
		n, _ := strconv.Atoi(d)
		depth = &n
		p.cs.SkipWhite()
	}
	var list []ast.Expr
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' || ch == '|' {
			break
		}
		e, err := p.parseLV()
		if err != nil {
			return err
		}
		list = append(list, e)
	}
	if ea.Cmd.Name == "unlockvar" {
		p.emit(&ast.UnlockVar{Base: ast.NewBase(ea.Pos), Depth: depth, List: list})
	} else {
		p.emit(&ast.LockVar{Base: ast.NewBase(ea.Pos), Depth: depth, List: list})
	}
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// If / ElseIf / Else / While / For / Try / Catch / Finally / Function /
// DelFunction

func (p *Parser) parseIf(ea *ExArg) error {
	p.cs.SkipWhite()
	cond, err := p.parseExpr()
	if err != nil {
		return err
	}
	node := &ast.If{Base: ast.NewBase(ea.Pos), Cond: cond}
	p.emit(node)
	p.push(&frame{
		kind: blockIf, body: &node.Body, pos: ea.Pos, ifNode: node,
		setEnd: func(end token.Pos) { e := end; node.End = &e },
	})
	return p.finishLine(ea)
}

func (p *Parser) parseElseIf(ea *ExArg) error {
	f := p.top()
	if f == nil || f.kind != blockIf || f.ifNode == nil {
		return errors.Newf(ea.Pos, "elseif without matching if")
	}
	if f.ifNode.Else != nil {
		return errors.Newf(ea.Pos, "elseif after else")
	}
	p.cs.SkipWhite()
	cond, err := p.parseExpr()
	if err != nil {
		return err
	}
	branch := &ast.ElseIf{Base: ast.NewBase(ea.Pos), Cond: cond}
	f.ifNode.ElseIfs = append(f.ifNode.ElseIfs, branch)
	f.body = &branch.Body
	return p.finishLine(ea)
}

func (p *Parser) parseElse(ea *ExArg) error {
	f := p.top()
	if f == nil || f.kind != blockIf || f.ifNode == nil {
		return errors.Newf(ea.Pos, "else without matching if")
	}
	if f.ifNode.Else != nil {
		return errors.Newf(ea.Pos, "multiple :else")
	}
	branch := &ast.Else{Base: ast.NewBase(ea.Pos)}
	f.ifNode.Else = branch
	f.body = &branch.Body
	return p.finishLine(ea)
}

func (p *Parser) parseWhile(ea *ExArg) error {
	p.cs.SkipWhite()
	cond, err := p.parseExpr()
	if err != nil {
		return err
	}
	node := &ast.While{Base: ast.NewBase(ea.Pos), Cond: cond}
	p.emit(node)
	p.push(&frame{
		kind: blockWhile, body: &node.Body, pos: ea.Pos,
		setEnd: func(end token.Pos) { e := end; node.End = &e },
	})
	return p.finishLine(ea)
}

func (p *Parser) parseFor(ea *ExArg) error {
	varName, list, rest, ok, err := p.tryParseDestructureLHS(nil)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Newf(ea.Pos, "missing for loop variable")
	}
	p.cs.SkipWhite()
	word := p.cs.ReadAlpha()
	if word != "in" {
		return errors.Newf(ea.Pos, `missing "in" after :for`)
	}
	p.cs.SkipWhite()
	right, err := p.parseExpr()
	if err != nil {
		return err
	}
	node := &ast.For{Base: ast.NewBase(ea.Pos), Var: varName, List: list, Rest: rest, Right: right}
	p.emit(node)
	p.push(&frame{
		kind: blockFor, body: &node.Body, pos: ea.Pos,
		setEnd: func(end token.Pos) { e := end; node.End = &e },
	})
	return p.finishLine(ea)
}

func (p *Parser) parseTry(ea *ExArg) error {
	node := &ast.Try{Base: ast.NewBase(ea.Pos)}
	p.emit(node)
	p.push(&frame{
		kind: blockTry, body: &node.Body, pos: ea.Pos, tryNode: node,
		setEnd: func(end token.Pos) { e := end; node.End = &e },
	})
	return p.finishLine(ea)
}

func (p *Parser) parseCatch(ea *ExArg) error {
	f := p.top()
	if f == nil || f.kind != blockTry || f.tryNode == nil {
		return errors.Newf(ea.Pos, "catch without matching try")
	}
	if f.tryNode.Finally != nil {
		return errors.WithCode(ea.Pos, "E604", "catch after finally")
	}
	p.cs.SkipWhite()
	var pattern string
	ch := p.cs.Peek()
	if ch != reader.EOF && ch != '\n' && ch != '"' {
		delim := p.cs.Get()
		pat, err := p.readUntilDelim(delim)
		if err != nil {
			return err
		}
		pattern = pat
	}
	branch := &ast.Catch{Base: ast.NewBase(ea.Pos), Pattern: pattern}
	f.tryNode.Catches = append(f.tryNode.Catches, branch)
	f.body = &branch.Body
	return p.finishLine(ea)
}

func (p *Parser) parseFinally(ea *ExArg) error {
	f := p.top()
	if f == nil || f.kind != blockTry || f.tryNode == nil {
		return errors.Newf(ea.Pos, "finally without matching try")
	}
	if f.tryNode.Finally != nil {
		return errors.WithCode(ea.Pos, "E606", "multiple :finally")
	}
	branch := &ast.Finally{Base: ast.NewBase(ea.Pos)}
	f.tryNode.Finally = branch
	f.body = &branch.Body
	return p.finishLine(ea)
}

// parseFunctionName parses a (possibly scoped/curly) function name, reusing
// the expression parser's curly-identifier atom reader.
func (p *Parser) parseFunctionName() (ast.Expr, error) {
	return p.parseCurlyIdentifier()
}

// validateFunctionName enforces E128 (spec.md §8): a bare, lowercase,
// unscoped name is illegal; scoped ("s:foo", "g:Foo"), autoload
// ("foo#bar"), and capitalized names are all fine.
func validateFunctionName(pos token.Pos, name ast.Expr) error {
	ident, ok := name.(*ast.Identifier)
	if !ok {
		return nil
	}
	n := ident.Name
	if strings.ContainsAny(n, ":#") {
		return nil
	}
	if len(n) > 0 && n[0] >= 'A' && n[0] <= 'Z' {
		return nil
	}
	return errors.WithCode(pos, "E128", "function name must start with a capital or contain a colon: %s", n)
}

func (p *Parser) peekAlphaWord() string {
	save := p.cs.Getpos()
	w := p.cs.ReadAlpha()
	p.cs.Setpos(save)
	return w
}

var functionAttrs = map[string]bool{"abort": true, "range": true, "dict": true, "closure": true}

func (p *Parser) parseFunction(ea *ExArg) error {
	p.cs.SkipWhite()
	switch p.cs.Peek() {
	case reader.EOF, '\n', '"':
		p.emit(&ast.ExCmd{Base: ast.NewBase(ea.Pos), Command: "function", Bang: ea.Bang})
		return p.finishLine(ea)
	}

	namePos := p.cs.Getpos()
	nameExpr, err := p.parseFunctionName()
	if err != nil {
		return err
	}
	if err := validateFunctionName(namePos, nameExpr); err != nil {
		return err
	}
	if err := p.expectKind(token.POpen); err != nil {
		return err
	}

	var args []string
	seen := map[string]bool{}
	tok, err := p.sc.Peek()
	if err != nil {
		return err
	}
	for tok.Kind != token.PClose {
		if tok.Kind != token.Identifier && tok.Kind != token.DotDotDot {
			return errors.WithCode(tok.Pos, "E125", "illegal argument: %s", tok.Literal)
		}
		p.sc.Get()
		if seen[tok.Literal] {
			return errors.WithCode(tok.Pos, "E853", "duplicate argument name: %s", tok.Literal)
		}
		seen[tok.Literal] = true
		args = append(args, tok.Literal)
		tok, err = p.sc.Peek()
		if err != nil {
			return err
		}
		if tok.Kind == token.Comma {
			p.sc.Get()
			tok, err = p.sc.Peek()
			if err != nil {
				return err
			}
			continue
		}
		break
	}
	if err := p.expectKind(token.PClose); err != nil {
		return err
	}

	var attrs []string
	for {
		p.cs.SkipWhite()
		word := p.peekAlphaWord()
		if !functionAttrs[word] {
			break
		}
		p.cs.ReadAlpha()
		attrs = append(attrs, word)
	}

	node := &ast.Function{Base: ast.NewBase(ea.Pos), Name: nameExpr, Args: args, Attrs: attrs}
	p.emit(node)
	p.push(&frame{
		kind: blockFunction, body: &node.Body, pos: ea.Pos,
		setEnd: func(end token.Pos) { e := end; node.End = &e },
	})
	return p.finishLine(ea)
}

func (p *Parser) parseDelFunction(ea *ExArg) error {
	p.cs.SkipWhite()
	left, err := p.parseLV()
	if err != nil {
		return err
	}
	p.emit(&ast.DelFunction{Base: ast.NewBase(ea.Pos), Left: left})
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// Lang / LoadKeymap / Mapping / Syntax / WinCmd / Highlight

func (p *Parser) parseLang(ea *ExArg) error {
	p.cs.SkipWhite()
	if p.cs.Peek() == '<' && p.cs.PeekAhead(1) == '<' {
		p.cs.Getn(2)
		marker := strings.TrimSpace(p.cs.GetLine())
		if marker == "" {
			marker = "."
		}
		var lines []string
		for !p.cs.AtEOF() {
			line := p.cs.GetLine()
			if line == marker {
				break
			}
			lines = append(lines, line)
		}
		p.emit(&ast.ExCmd{Base: ast.NewBase(ea.Pos), Command: ea.Cmd.Name, Args: strings.Join(lines, "\n"), Bang: ea.Bang})
		return nil
	}
	line := p.cs.GetLine()
	p.emit(&ast.ExCmd{Base: ast.NewBase(ea.Pos), Command: ea.Cmd.Name, Args: line, Bang: ea.Bang})
	return nil
}

func (p *Parser) parseLoadKeymap(ea *ExArg) error {
	for p.cs.Peek() != reader.EOF && p.cs.Peek() != '\n' {
		p.cs.Get()
	}
	if p.cs.Peek() == '\n' {
		p.cs.Get()
	}
	var lines []string
	for !p.cs.AtEOF() {
		lines = append(lines, p.cs.GetLine())
	}
	p.emit(&ast.ExCmd{Base: ast.NewBase(ea.Pos), Command: "loadkeymap", Args: strings.Join(lines, "\n")})
	return nil
}

var mappingAttrNames = map[string]bool{
	"buffer": true, "nowait": true, "silent": true, "script": true, "unique": true, "expr": true,
}

func containsAttr(attrs []string, name string) bool {
	for _, a := range attrs {
		if a == name {
			return true
		}
	}
	return false
}

func (p *Parser) parseMapping(ea *ExArg) error {
	var attrs []string
	for {
		p.cs.SkipWhite()
		if p.cs.Peek() != '<' {
			break
		}
		save := p.cs.Getpos()
		p.cs.Get()
		word := strings.ToLower(p.cs.ReadAlpha())
		if p.cs.Peek() == '>' && mappingAttrNames[word] {
			p.cs.Get()
			attrs = append(attrs, word)
			continue
		}
		p.cs.Setpos(save)
		break
	}
	p.cs.SkipWhite()
	lhs := p.cs.ReadNonwhite()
	p.cs.SkipWhite()

	var rb strings.Builder
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' {
			break
		}
		if ch == '\\' && p.cs.PeekAhead(1) == '|' {
			p.cs.Getn(2)
			rb.WriteRune('|')
			continue
		}
		rb.WriteRune(p.cs.Get())
	}
	rhs := strings.TrimRight(rb.String(), " \t")

	var rightExpr ast.Expr
	if containsAttr(attrs, "expr") {
		sub := newExprSubParser(rhs)
		e, err := sub.parseExpr()
		if err != nil {
			return err
		}
		rightExpr = e
	}

	p.emit(&ast.Mapping{
		Base: ast.NewBase(ea.Pos), Command: ea.Cmd.Name, Attrs: attrs,
		Left: lhs, Right: rhs, RightExpr: rightExpr,
	})
	return nil
}

func (p *Parser) readOpaqueDelim(delim rune) string {
	var b strings.Builder
	b.WriteRune(p.cs.Get())
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' {
			return b.String()
		}
		if ch == '\\' {
			b.WriteRune(p.cs.Get())
			if p.cs.Peek() != reader.EOF {
				b.WriteRune(p.cs.Get())
			}
			continue
		}
		b.WriteRune(p.cs.Get())
		if ch == delim {
			return b.String()
		}
	}
}

func (p *Parser) parseSyntax(ea *ExArg) error {
	var b strings.Builder
	for {
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' {
			break
		}
		switch ch {
		case '/', '\'', '"':
			b.WriteString(p.readOpaqueDelim(ch))
		case '=':
			b.WriteRune(p.cs.Get())
			b.WriteString(p.cs.ReadNonwhite())
		default:
			b.WriteRune(p.cs.Get())
		}
	}
	p.emit(&ast.ExCmd{Base: ast.NewBase(ea.Pos), Command: "syntax", Args: strings.TrimRight(b.String(), " \t"), Bang: ea.Bang})
	return nil
}

func (p *Parser) parseWinCmd(ea *ExArg) error {
	p.cs.SkipWhite()
	ch := p.cs.Peek()
	if ch == reader.EOF || ch == '\n' {
		return errors.WithCode(ea.Pos, "E471", "argument required")
	}
	var arg string
	switch ch {
	case 'g':
		p.cs.Get()
		second := p.cs.Peek()
		if second == reader.EOF || second == '\n' {
			return errors.WithCode(ea.Pos, "E474", "invalid argument")
		}
		p.cs.Get()
		arg = "g" + string(second)
	case '\x07':
		p.cs.Get()
		arg = "\x07"
	default:
		p.cs.Get()
		arg = string(ch)
	}
	p.emit(&ast.WinCmd{Base: ast.NewBase(ea.Pos), Arg: arg})
	return p.finishLine(ea)
}

// highlightAllowedAttrs is the explicit allow-list validated against, per
// spec.md §8 scenario 6 (E423 on an unrecognized attribute).
var highlightAllowedAttrs = map[string]bool{
	"term": true, "cterm": true, "ctermfg": true, "ctermbg": true,
	"ctermul": true, "gui": true, "font": true,
	"guifg": true, "guibg": true, "guisp": true, "start": true, "stop": true,
}

func (p *Parser) parseHighlight(ea *ExArg) error {
	pos := ea.Pos
	p.cs.SkipWhite()
	word := p.peekAlphaWord()

	switch word {
	case "clear":
		p.cs.ReadAlpha()
		p.cs.SkipWhite()
		group := p.cs.ReadNonwhite()
		p.emit(&ast.Highlight{Base: ast.NewBase(pos), Clear: true, Group: group})
		return p.finishLine(ea)
	case "link":
		p.cs.ReadAlpha()
		p.cs.SkipWhite()
		from := p.cs.ReadNonwhite()
		p.cs.SkipWhite()
		to := p.cs.ReadNonwhite()
		if from == "" || to == "" {
			return errors.WithCode(pos, "E412", "not enough arguments to :highlight link")
		}
		p.emit(&ast.Highlight{Base: ast.NewBase(pos), Link: true, Group: from, ToGroup: to})
		return p.finishLine(ea)
	case "default":
		p.cs.ReadAlpha()
		p.cs.SkipWhite()
	}

	defaultFlag := word == "default"
	group := p.cs.ReadNonwhite()
	if group == "" {
		p.emit(&ast.Highlight{Base: ast.NewBase(pos), Default: defaultFlag})
		return p.finishLine(ea)
	}

	var attrs []ast.HighlightAttr
	none := false
	for {
		p.cs.SkipWhite()
		ch := p.cs.Peek()
		if ch == reader.EOF || ch == '\n' || ch == '"' || ch == '|' {
			break
		}
		start := p.cs.Getpos()
		key := p.cs.ReadAlpha()
		if key == "" {
			trail := p.cs.ReadNonwhite()
			return errors.WithCode(start, "E423", "illegal argument: %s", trail)
		}
		if p.cs.Peek() != '=' {
			if strings.EqualFold(key, "NONE") {
				none = true
				continue
			}
			return errors.WithCode(start, "E423", "illegal argument: %s", key)
		}
		p.cs.Get()
		val := p.cs.ReadNonwhite()
		if !highlightAllowedAttrs[strings.ToLower(key)] {
			return errors.WithCode(start, "E423", "illegal argument: %s", key)
		}
		attrs = append(attrs, ast.HighlightAttr{Key: key, Value: val})
	}

	p.emit(&ast.Highlight{Base: ast.NewBase(pos), Default: defaultFlag, Group: group, None: none, Attrs: attrs})
	return p.finishLine(ea)
}

// ---------------------------------------------------------------------
// Small shared helpers

func isDigitRune(r rune) bool { return r >= '0' && r <= '9' }
func isAlphaRune(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func runeLen(s string) int { return len([]rune(s)) }
