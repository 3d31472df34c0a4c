// Package autocmdtable holds the static, case-insensitive catalog of Vim
// autocmd event names (spec.md §6, "Autocmd event catalog"). The canonical
// spelling is cross-checked against the go-nvim/pkg runtime/autocmd package's
// documentation comments, per SPEC_FULL.md's supplemented-features note.
package autocmdtable

import "strings"

// events lists every recognized autocmd event in its canonical, capitalized
// spelling. Lookup is case-insensitive (spec.md §4.5: "Unknown events fail
// E216").
var events = []string{
	"BufAdd", "BufCreate", "BufDelete", "BufEnter", "BufFilePost", "BufFilePre",
	"BufHidden", "BufLeave", "BufModifiedSet", "BufNew", "BufNewFile",
	"BufRead", "BufReadCmd", "BufReadPost", "BufReadPre", "BufUnload",
	"BufWinEnter", "BufWinLeave", "BufWipeout", "BufWrite", "BufWriteCmd",
	"BufWritePost", "BufWritePre",
	"ChanInfo", "ChanOpen",
	"CmdlineChanged", "CmdlineEnter", "CmdlineLeave",
	"CmdwinEnter", "CmdwinLeave",
	"ColorScheme", "ColorSchemePre",
	"CompleteChanged", "CompleteDone", "CompleteDonePre",
	"CursorHold", "CursorHoldI", "CursorMoved", "CursorMovedI",
	"DiffUpdated", "DirChanged", "DirChangedPre",
	"EncodingChanged", "ExitPre",
	"FileAppendCmd", "FileAppendPost", "FileAppendPre",
	"FileChangedRO", "FileChangedShell", "FileChangedShellPost",
	"FileReadCmd", "FileReadPost", "FileReadPre",
	"FileType",
	"FileWriteCmd", "FileWritePost", "FileWritePre",
	"FilterReadPost", "FilterReadPre", "FilterWritePost", "FilterWritePre",
	"FocusGained", "FocusLost", "FuncUndefined",
	"GUIEnter", "GUIFailed",
	"InsertChange", "InsertCharPre", "InsertEnter", "InsertLeave", "InsertLeavePre",
	"MenuPopup", "ModeChanged",
	"OptionSet",
	"QuickFixCmdPost", "QuickFixCmdPre", "QuitPre",
	"RemoteReply",
	"SafeState", "SessionLoadPost", "ShellCmdPost", "ShellFilterPost",
	"Signal", "SourceCmd", "SourcePost", "SourcePre",
	"SpellFileMissing", "StdinReadPost", "StdinReadPre", "SwapExists",
	"Syntax",
	"TabClosed", "TabEnter", "TabLeave", "TabNew", "TabNewEntered",
	"TermClose", "TermEnter", "TermLeave", "TermOpen", "TermResponse",
	"TextChanged", "TextChangedI", "TextChangedP", "TextYankPost",
	"UIEnter", "UILeave",
	"User", "UserGettingBored",
	"VimEnter", "VimLeave", "VimLeavePre", "VimResized", "VimResume", "VimSuspend",
	"WinClosed", "WinEnter", "WinLeave", "WinNew", "WinScrolled", "WinResized",
}

var canonical map[string]string

func init() {
	canonical = make(map[string]string, len(events))
	for _, e := range events {
		canonical[strings.ToLower(e)] = e
	}
}

// Lookup resolves a (possibly miscased) event name to its canonical
// spelling. The second return value is false for an unrecognized event,
// which the autocmd sub-parser turns into E216.
func Lookup(name string) (string, bool) {
	c, ok := canonical[strings.ToLower(name)]
	return c, ok
}

// All returns the canonical event catalog, for tooling (e.g. completion).
func All() []string {
	out := make([]string, len(events))
	copy(out, events)
	return out
}
