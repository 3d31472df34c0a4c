// Package cmdtable is the static Command Table (spec.md §4.2): the
// built-in ex-command descriptors (name, minimum abbreviation length, flag
// bitset, parser-kind tag) and the directory built from them. The
// descriptor list (builtins, in builtins.go) is ported entry-by-entry from
// Vim's ex_cmds.h/ex_cmds_defs.h by way of the original vimlfmt crate's
// parser/src/command.rs (spec.md §1, "a flag table borrowed verbatim from
// Vim's ex_cmds_defs.h").
package cmdtable

// Flag is one bit of the per-command syntactic contract, identical in
// spirit to Vim's ex_cmds_defs.h flags (spec.md §3, "Command descriptor").
type Flag uint32

const (
	BANG Flag = 1 << iota
	RANGE
	EXTRA
	XFILE
	NOSPC
	DFLALL
	WHOLEFOLD
	NEEDARG
	TRLBAR
	REGSTR
	COUNT
	NOTRLCOM
	ZEROR
	USECTRLV
	NOTADR
	EDITCMD
	BUFNAME
	BUFUNL
	ARGOPT
	SBOXOK
	CMDWIN
	MODIFY
	EXFLAGS
	USERCMD
)

// Derived combinations, as in ex_cmds_defs.h.
const (
	FILES = XFILE | EXTRA
	WORD1 = EXTRA | NOSPC
	FILE1 = FILES | NOSPC
)

// Has reports whether f has every bit of mask set.
func (f Flag) Has(mask Flag) bool { return f&mask == mask }

// Kind selects which sub-parser (spec.md §4.5) handles a command once
// found.
type Kind int

const (
	Common Kind = iota
	Append
	Augroup
	Autocmd
	Break
	Call
	Catch
	Continue
	DelFunction
	Echo
	EchoHl
	Else
	ElseIf
	EndFor
	EndFunction
	EndIf
	EndTry
	EndWhile
	Execute
	Finally
	Finish
	For
	Function
	Highlight
	If
	Insert
	Lang
	Let
	LoadKeymap
	LockVar
	Mapping
	Return
	Syntax
	Throw
	Try
	Unlet
	UserCmd
	While
	WinCmd
)

// Command is an immutable built-in command descriptor (spec.md §3).
type Command struct {
	Name         string
	MinAbbrevLen int
	Flags        Flag
	ParserKind   Kind
}

// Directory maps every valid abbreviation of every built-in (and any
// user-synthesized command) to its descriptor, per spec.md §3.
type Directory struct {
	byPrefix map[string]*Command
}

// NewDirectory builds the directory once from the static descriptor list:
// for every command c, every prefix of c.Name with length in
// [c.MinAbbrevLen, len(c.Name)] maps to c. Later entries overwrite earlier
// ones on key collision.
func NewDirectory() *Directory {
	d := &Directory{byPrefix: make(map[string]*Command)}
	for i := range builtins {
		d.insert(&builtins[i])
	}
	return d
}

func (d *Directory) insert(c *Command) {
	min := c.MinAbbrevLen
	if min < 1 {
		min = len(c.Name)
	}
	for n := min; n <= len(c.Name); n++ {
		d.byPrefix[c.Name[:n]] = c
	}
}

// Lookup returns the descriptor for an exact abbreviation key, as read
// from the source by Find.
func (d *Directory) Lookup(key string) (*Command, bool) {
	c, ok := d.byPrefix[key]
	return c, ok
}

// InsertUserCommand registers a synthesized user-command descriptor
// (find_command step 4) so later references within the same parse resolve
// to the same descriptor (spec.md §8, "find_command is idempotent").
func (d *Directory) InsertUserCommand(name string) *Command {
	if c, ok := d.byPrefix[name]; ok && c.Flags.Has(USERCMD) {
		return c
	}
	c := &Command{Name: name, MinAbbrevLen: len(name), Flags: USERCMD | TRLBAR, ParserKind: UserCmd}
	d.byPrefix[name] = c
	return c
}
