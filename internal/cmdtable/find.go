package cmdtable

import (
	"regexp"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/reader"
	"github.com/deathlyfrantic/vimlfmt/token"
)

// substitutePattern matches the abbreviation forms of :substitute that
// collide with other command names beginning 's' (spec.md §4.2, step 1:
// "s followed by c[^sr][^i][^p]|g|i[^mlg]|I|r[^e]").
var substitutePattern = regexp.MustCompile(`^(c[^sr][^i][^p]|g|i[^mlg]|I|r[^e])`)

// delBackoffPattern matches :delete's "[lp]" flag shorthand, which must be
// backed off by one character before directory lookup (spec.md §4.2 step 2).
var delBackoffPattern = regexp.MustCompile(`^d(elete|elet|ele|el|e)[lp]$`)

const punctuationCommands = "{@*!=><&~#"

// Find implements find_command (spec.md §4.2): reads a command name from
// cs at the current cursor and resolves it against d, synthesizing a
// user-command descriptor on an uppercase miss.
func (d *Directory) Find(cs *reader.CharSource) (*Command, string, error) {
	start := cs.Getpos()
	ch := cs.Peek()

	switch {
	case ch == 'k' && !isIdentChar(cs.PeekAhead(1)):
		cs.Get()
		return lookupOrFail(d, cs, start, "k")

	case ch == 's' && substitutePattern.MatchString(peekRun(cs, 1, 5)):
		cs.Get()
		return lookupOrFail(d, cs, start, "substitute")

	case strings.ContainsRune(punctuationCommands, ch):
		cs.Get()
		return lookupOrFail(d, cs, start, string(ch))

	case ch == 'p' && cs.PeekAhead(1) == 'y':
		name := cs.ReadAlnum()
		return lookupOrFail(d, cs, start, name)
	}

	if !isAlpha(ch) {
		return nil, "", errors.WithCode(start, "E492", "not an editor command: %c", ch)
	}

	name := cs.ReadAlpha()
	if m := delBackoffPattern.FindStringSubmatch(name); m != nil {
		name = name[:len(name)-1]
		cs.SeekCur(-1)
	}

	if c, ok := d.Lookup(name); ok {
		return c, name, nil
	}

	if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
		rest := cs.ReadAlnum()
		full := name + rest
		return d.InsertUserCommand(full), full, nil
	}

	return nil, "", errors.WithCode(start, "E492", "not an editor command: %s", name)
}

func lookupOrFail(d *Directory, cs *reader.CharSource, start token.Pos, name string) (*Command, string, error) {
	if c, ok := d.Lookup(name); ok {
		return c, name, nil
	}
	return nil, "", errors.WithCode(start, "E492", "not an editor command: %s", name)
}

// peekRun peeks a short run of characters starting n positions ahead, for
// the substitute-disambiguation lookahead; it does not advance the cursor.
func peekRun(cs *reader.CharSource, from, count int) string {
	var b strings.Builder
	for i := 0; i < count; i++ {
		r := cs.PeekAhead(from + i)
		if r == reader.EOF {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

func isIdentChar(r rune) bool {
	return isAlpha(r) || (r >= '0' && r <= '9') || r == '_'
}
