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

package cmdtable

import (
	"testing"

	"github.com/deathlyfrantic/vimlfmt/reader"
)

func TestFindSimpleCommand(t *testing.T) {
	d := NewDirectory()
	cs := reader.New([]string{"function"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "function" || c.ParserKind != Function {
		t.Errorf("got (%q, %d); want (\"function\", Function)", name, c.ParserKind)
	}
}

func TestFindAbbreviation(t *testing.T) {
	d := NewDirectory()
	cs := reader.New([]string{"endf"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "endf" || c.ParserKind != EndFunction {
		t.Errorf("got (%q, %d); want (\"endf\", EndFunction)", name, c.ParserKind)
	}
}

func TestFindKCommand(t *testing.T) {
	// ":k" is a genuine one-letter built-in (sets a mark), reached through
	// the special-cased 'k' dispatch branch rather than the alpha-name path.
	d := NewDirectory()
	cs := reader.New([]string{"k "})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "k" || c.ParserKind != Common {
		t.Errorf("got (%q, %d); want (\"k\", Common)", name, c.ParserKind)
	}
}

func TestFindPunctuationCommand(t *testing.T) {
	// "&" is a genuine built-in (repeat last :substitute), reached through
	// the punctuationCommands dispatch branch.
	d := NewDirectory()
	cs := reader.New([]string{"&"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "&" || c.ParserKind != Common {
		t.Errorf("got (%q, %d); want (\"&\", Common)", name, c.ParserKind)
	}
}

func TestFindSubstituteDisambiguation(t *testing.T) {
	d := NewDirectory()
	// "sort" starts with 's', but its suffix "ort" does not match the
	// substitute pattern, so it resolves to :sort rather than :substitute.
	cs := reader.New([]string{"sort"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "sort" || c.ParserKind != Common {
		t.Errorf("got (%q, %d); want (\"sort\", Common)", name, c.ParserKind)
	}
}

func TestFindDeleteBackoff(t *testing.T) {
	// "del" matches the "[lp]" backoff shorthand for :delete, so the
	// trailing flag character is pushed back onto the cursor and the
	// directory lookup proceeds on "de".
	d := NewDirectory()
	cs := reader.New([]string{"del"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "de" || c.ParserKind != Common {
		t.Errorf("got (%q, %d); want (\"de\", Common)", name, c.ParserKind)
	}
}

func TestFindUnknownCommandError(t *testing.T) {
	d := NewDirectory()
	cs := reader.New([]string{"zzznotacommand"})
	_, _, err := d.Find(cs)
	if err == nil {
		t.Errorf("expected error for unknown command")
	}
}

func TestFindNonAlphaError(t *testing.T) {
	d := NewDirectory()
	cs := reader.New([]string{"^"})
	_, _, err := d.Find(cs)
	if err == nil {
		t.Errorf("expected error for non-alpha command start")
	}
}

func TestFindUppercaseSynthesizesUserCommand(t *testing.T) {
	d := NewDirectory()
	cs := reader.New([]string{"MyCommand arg"})
	c, name, err := d.Find(cs)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if name != "MyCommand" || c.ParserKind != UserCmd {
		t.Errorf("got (%q, %d); want (\"MyCommand\", UserCmd)", name, c.ParserKind)
	}
}
