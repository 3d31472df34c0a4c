package cmdtable

// modifierSpec is one entry of the fixed modifier-recognition set
// (spec.md §4.5/§6): a name and its minimum abbreviation length. "silent"
// additionally consumes a trailing '!' into bang; "tab" and "verbose"
// additionally accept a leading numeric count.
type modifierSpec struct {
	Name         string
	MinAbbrevLen int
}

var modifierSpecs = []modifierSpec{
	{"aboveleft", 3},
	{"belowright", 3},
	{"browse", 3},
	{"botright", 2},
	{"confirm", 4},
	{"keepmarks", 3},
	{"keepalt", 5},
	{"keepjumps", 5},
	{"keeppatterns", 5},
	{"hide", 3},
	{"lockmarks", 3},
	{"leftabove", 5},
	{"noautocmd", 3},
	{"noswapfile", 3},
	{"rightbelow", 6},
	{"sandbox", 3},
	{"silent", 3},
	{"tab", 3},
	{"topleft", 2},
	{"unsilent", 3},
	{"vertical", 4},
	{"verbose", 4},
}

var modifierDirectory map[string]string

func init() {
	modifierDirectory = make(map[string]string)
	for _, m := range modifierSpecs {
		for n := m.MinAbbrevLen; n <= len(m.Name); n++ {
			modifierDirectory[m.Name[:n]] = m.Name
		}
	}
}

// MatchModifier resolves an alphabetic run read from the command line to
// its canonical modifier name, per the fixed abbreviation table.
func MatchModifier(name string) (string, bool) {
	c, ok := modifierDirectory[name]
	return c, ok
}

// BangModifier names the single modifier whose trailing '!' is itself part
// of the modifier (spec.md §4.5, "silent 3 (consumes trailing ! into bang)").
const BangModifier = "silent"

// CountModifiers names the modifiers that accept a leading numeric count
// (spec.md §4.5: "tab" and "verbose").
var CountModifiers = map[string]bool{"tab": true, "verbose": true}

// HideModifier is the one modifier that, read bare with nothing following,
// ends modifier parsing entirely (spec.md §4.5).
const HideModifier = "hide"
