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

// builtins is the full built-in command descriptor table (spec.md §3),
// ported entry-by-entry, in original order, from
// original_source/parser/src/command.rs's command_vec(), which is itself
// ported from Vim's ex_cmds.h. Order matters only in that a later entry's
// abbreviation keys overwrite an earlier entry's in the directory on
// collision, matching Vim's own precedence for overlapping prefixes
// (spec.md §3, "Command directory").
//
// One deliberate deviation from the source table: ":highlight" is given
// ParserKind Highlight here instead of Common (see REDESIGN FLAGS, recorded
// in DESIGN.md) so Highlight nodes are actually reachable and testable.
var builtins = []Command{
	{"append", 1, BANG | RANGE | ZEROR | TRLBAR | CMDWIN | MODIFY, Append},
	{"abbreviate", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"abclear", 3, EXTRA | TRLBAR | CMDWIN, Common},
	{"aboveleft", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"all", 2, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"amenu", 2, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"anoremenu", 2, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"args", 2, BANG | FILES | EDITCMD | ARGOPT | TRLBAR, Common},
	{"argadd", 4, BANG | NEEDARG | RANGE | NOTADR | ZEROR | FILES | TRLBAR, Common},
	{"argdelete", 4, BANG | RANGE | NOTADR | FILES | TRLBAR, Common},
	{"argedit", 4, BANG | NEEDARG | RANGE | NOTADR | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"argdo", 5, BANG | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"argglobal", 4, BANG | FILES | EDITCMD | ARGOPT | TRLBAR, Common},
	{"arglocal", 4, BANG | FILES | EDITCMD | ARGOPT | TRLBAR, Common},
	{"argument", 4, BANG | RANGE | NOTADR | COUNT | EXTRA | EDITCMD | ARGOPT | TRLBAR, Common},
	{"ascii", 2, TRLBAR | SBOXOK | CMDWIN, Common},
	{"autocmd", 2, BANG | EXTRA | NOTRLCOM | USECTRLV | CMDWIN, Autocmd},
	{"augroup", 3, BANG | WORD1 | TRLBAR | CMDWIN, Augroup},
	{"aunmenu", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"buffer", 1, BANG | RANGE | NOTADR | BUFNAME | BUFUNL | COUNT | EXTRA | TRLBAR, Common},
	{"bNext", 2, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"ball", 2, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"badd", 3, NEEDARG | FILE1 | EDITCMD | TRLBAR | CMDWIN, Common},
	{"bdelete", 2, BANG | RANGE | NOTADR | BUFNAME | COUNT | EXTRA | TRLBAR, Common},
	{"behave", 2, NEEDARG | WORD1 | TRLBAR | CMDWIN, Common},
	{"belowright", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"bfirst", 2, BANG | RANGE | NOTADR | TRLBAR, Common},
	{"blast", 2, BANG | RANGE | NOTADR | TRLBAR, Common},
	{"bmodified", 2, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"bnext", 2, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"botright", 2, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"bprevious", 2, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"brewind", 2, BANG | RANGE | NOTADR | TRLBAR, Common},
	{"break", 4, TRLBAR | SBOXOK | CMDWIN, Break},
	{"breakadd", 6, EXTRA | TRLBAR | CMDWIN, Common},
	{"breakdel", 6, EXTRA | TRLBAR | CMDWIN, Common},
	{"breaklist", 6, EXTRA | TRLBAR | CMDWIN, Common},
	{"browse", 3, NEEDARG | EXTRA | NOTRLCOM | CMDWIN, Common},
	{"bufdo", 5, BANG | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"buffers", 7, BANG | TRLBAR | CMDWIN, Common},
	{"bunload", 3, BANG | RANGE | NOTADR | BUFNAME | COUNT | EXTRA | TRLBAR, Common},
	{"bwipeout", 2, BANG | RANGE | NOTADR | BUFNAME | BUFUNL | COUNT | EXTRA | TRLBAR, Common},
	{"change", 1, BANG | WHOLEFOLD | RANGE | COUNT | TRLBAR | CMDWIN | MODIFY, Common},
	{"cNext", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cNfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cabbrev", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cabclear", 4, EXTRA | TRLBAR | CMDWIN, Common},
	{"caddbuffer", 3, RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"caddexpr", 5, NEEDARG | WORD1 | NOTRLCOM | TRLBAR, Common},
	{"caddfile", 5, TRLBAR | FILE1, Common},
	{"call", 3, RANGE | NEEDARG | EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Call},
	{"catch", 3, EXTRA | SBOXOK | CMDWIN, Catch},
	{"cbuffer", 2, BANG | RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"cc", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cclose", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"cd", 2, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"center", 2, TRLBAR | RANGE | WHOLEFOLD | EXTRA | CMDWIN | MODIFY, Common},
	{"cexpr", 3, NEEDARG | WORD1 | NOTRLCOM | TRLBAR | BANG, Common},
	{"cfile", 2, TRLBAR | FILE1 | BANG, Common},
	{"cfirst", 4, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cgetbuffer", 5, RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"cgetexpr", 5, NEEDARG | WORD1 | NOTRLCOM | TRLBAR, Common},
	{"cgetfile", 2, TRLBAR | FILE1, Common},
	{"changes", 7, TRLBAR | CMDWIN, Common},
	{"chdir", 3, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"checkpath", 3, TRLBAR | BANG | CMDWIN, Common},
	{"checktime", 6, RANGE | NOTADR | BUFNAME | COUNT | EXTRA | TRLBAR, Common},
	{"clist", 2, BANG | EXTRA | TRLBAR | CMDWIN, Common},
	{"clast", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"close", 3, BANG | TRLBAR | CMDWIN, Common},
	{"cmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"cmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"cmenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cnext", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cnewer", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"cnfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cnoremap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"cnoreabbrev", 6, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cnoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"copy", 2, RANGE | WHOLEFOLD | EXTRA | TRLBAR | CMDWIN | MODIFY, Common},
	{"colder", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"colorscheme", 4, WORD1 | TRLBAR | CMDWIN, Common},
	{"command", 3, EXTRA | BANG | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"comclear", 4, TRLBAR | CMDWIN, Common},
	{"compiler", 4, BANG | TRLBAR | WORD1 | CMDWIN, Common},
	{"continue", 3, TRLBAR | SBOXOK | CMDWIN, Continue},
	{"confirm", 4, NEEDARG | EXTRA | NOTRLCOM | CMDWIN, Common},
	{"copen", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"cprevious", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cpfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cquit", 2, TRLBAR | BANG, Common},
	{"crewind", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"cscope", 2, EXTRA | NOTRLCOM | XFILE, Common},
	{"cstag", 3, BANG | TRLBAR | WORD1, Common},
	{"cunmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cunabbrev", 4, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"cwindow", 2, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"delete", 1, RANGE | WHOLEFOLD | REGSTR | COUNT | TRLBAR | CMDWIN | MODIFY, Common},
	{"delmarks", 4, BANG | EXTRA | TRLBAR | CMDWIN, Common},
	{"debug", 3, NEEDARG | EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Common},
	{"debuggreedy", 6, RANGE | NOTADR | ZEROR | TRLBAR | CMDWIN, Common},
	{"delcommand", 4, NEEDARG | WORD1 | TRLBAR | CMDWIN, Common},
	{"delfunction", 4, BANG | NEEDARG | WORD1 | CMDWIN, DelFunction},
	{"diffupdate", 3, BANG | TRLBAR, Common},
	{"diffget", 5, RANGE | EXTRA | TRLBAR | MODIFY, Common},
	{"diffoff", 5, BANG | TRLBAR, Common},
	{"diffpatch", 5, EXTRA | FILE1 | TRLBAR | MODIFY, Common},
	{"diffput", 6, RANGE | EXTRA | TRLBAR, Common},
	{"diffsplit", 5, EXTRA | FILE1 | TRLBAR, Common},
	{"diffthis", 5, TRLBAR, Common},
	{"digraphs", 3, EXTRA | TRLBAR | CMDWIN, Common},
	{"display", 2, EXTRA | NOTRLCOM | TRLBAR | SBOXOK | CMDWIN, Common},
	{"djump", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA, Common},
	{"dlist", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"doautocmd", 2, EXTRA | TRLBAR | CMDWIN, Common},
	{"doautoall", 7, EXTRA | TRLBAR | CMDWIN, Common},
	{"drop", 2, FILES | EDITCMD | NEEDARG | ARGOPT | TRLBAR, Common},
	{"dsearch", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"dsplit", 3, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA, Common},
	{"edit", 1, BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"earlier", 2, TRLBAR | EXTRA | NOSPC | CMDWIN, Common},
	{"echo", 2, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Echo},
	{"echoerr", 5, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Echo},
	{"echohl", 5, EXTRA | TRLBAR | SBOXOK | CMDWIN, EchoHl},
	{"echomsg", 5, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Echo},
	{"echon", 5, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Echo},
	{"else", 2, TRLBAR | SBOXOK | CMDWIN, Else},
	{"elseif", 5, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, ElseIf},
	{"emenu", 2, NEEDARG | EXTRA | TRLBAR | NOTRLCOM | RANGE | NOTADR | CMDWIN, Common},
	{"endif", 2, TRLBAR | SBOXOK | CMDWIN, EndIf},
	{"endfor", 5, TRLBAR | SBOXOK | CMDWIN, EndFor},
	{"endfunction", 4, TRLBAR | CMDWIN, EndFunction},
	{"endtry", 4, TRLBAR | SBOXOK | CMDWIN, EndTry},
	{"endwhile", 4, TRLBAR | SBOXOK | CMDWIN, EndWhile},
	{"enew", 3, BANG | TRLBAR, Common},
	{"ex", 2, BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"execute", 3, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Execute},
	{"exit", 3, RANGE | WHOLEFOLD | BANG | FILE1 | ARGOPT | DFLALL | TRLBAR | CMDWIN, Common},
	{"exusage", 3, TRLBAR, Common},
	{"file", 1, RANGE | NOTADR | ZEROR | BANG | FILE1 | TRLBAR, Common},
	{"files", 5, BANG | TRLBAR | CMDWIN, Common},
	{"filetype", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"find", 3, RANGE | NOTADR | BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"finally", 4, TRLBAR | SBOXOK | CMDWIN, Finally},
	{"finish", 4, TRLBAR | SBOXOK | CMDWIN, Finish},
	{"first", 3, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"fixdel", 3, TRLBAR | CMDWIN, Common},
	{"fold", 2, RANGE | WHOLEFOLD | TRLBAR | SBOXOK | CMDWIN, Common},
	{"foldclose", 5, RANGE | BANG | WHOLEFOLD | TRLBAR | SBOXOK | CMDWIN, Common},
	{"folddoopen", 5, RANGE | DFLALL | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"folddoclosed", 7, RANGE | DFLALL | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"foldopen", 5, RANGE | BANG | WHOLEFOLD | TRLBAR | SBOXOK | CMDWIN, Common},
	{"for", 3, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, For},
	{"function", 2, EXTRA | BANG | CMDWIN, Function},
	{"global", 1, RANGE | WHOLEFOLD | BANG | EXTRA | DFLALL | SBOXOK | CMDWIN, Common},
	{"goto", 2, RANGE | NOTADR | COUNT | TRLBAR | SBOXOK | CMDWIN, Common},
	{"grep", 2, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"grepadd", 5, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"gui", 2, BANG | FILES | EDITCMD | ARGOPT | TRLBAR | CMDWIN, Common},
	{"gvim", 2, BANG | FILES | EDITCMD | ARGOPT | TRLBAR | CMDWIN, Common},
	{"hardcopy", 2, RANGE | COUNT | EXTRA | TRLBAR | DFLALL | BANG, Common},
	{"help", 1, BANG | EXTRA | NOTRLCOM, Common},
	{"helpfind", 5, EXTRA | NOTRLCOM, Common},
	{"helpgrep", 5, EXTRA | NOTRLCOM | NEEDARG, Common},
	{"helptags", 5, NEEDARG | FILES | TRLBAR | CMDWIN, Common},
	{"highlight", 2, BANG | EXTRA | TRLBAR | SBOXOK | CMDWIN, Highlight},
	{"hide", 3, BANG | EXTRA | NOTRLCOM, Common},
	{"history", 3, EXTRA | TRLBAR | CMDWIN, Common},
	{"insert", 1, BANG | RANGE | TRLBAR | CMDWIN | MODIFY, Insert},
	{"iabbrev", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"iabclear", 4, EXTRA | TRLBAR | CMDWIN, Common},
	{"if", 2, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, If},
	{"ijump", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA, Common},
	{"ilist", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"imap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"imapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"imenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"inoremap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"inoreabbrev", 6, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"inoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"intro", 3, TRLBAR | CMDWIN, Common},
	{"isearch", 2, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"isplit", 3, BANG | RANGE | DFLALL | WHOLEFOLD | EXTRA, Common},
	{"iunmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"iunabbrev", 4, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"iunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"join", 1, BANG | RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN | MODIFY, Common},
	{"jumps", 2, TRLBAR | CMDWIN, Common},
	{"k", 1, RANGE | WORD1 | TRLBAR | SBOXOK | CMDWIN, Common},
	{"keepalt", 5, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"keepmarks", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"keepjumps", 5, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"keeppatterns", 5, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"lNext", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lNfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"list", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"laddexpr", 3, NEEDARG | WORD1 | NOTRLCOM | TRLBAR, Common},
	{"laddbuffer", 5, RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"laddfile", 5, TRLBAR | FILE1, Common},
	{"last", 2, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"language", 3, EXTRA | TRLBAR | CMDWIN, Common},
	{"later", 3, TRLBAR | EXTRA | NOSPC | CMDWIN, Common},
	{"lbuffer", 2, BANG | RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"lcd", 2, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"lchdir", 3, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"lclose", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"lcscope", 3, EXTRA | NOTRLCOM | XFILE, Common},
	{"left", 2, TRLBAR | RANGE | WHOLEFOLD | EXTRA | CMDWIN | MODIFY, Common},
	{"leftabove", 5, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"let", 3, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Let},
	{"lexpr", 3, NEEDARG | WORD1 | NOTRLCOM | TRLBAR | BANG, Common},
	{"lfile", 2, TRLBAR | FILE1 | BANG, Common},
	{"lfirst", 4, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lgetbuffer", 5, RANGE | NOTADR | WORD1 | TRLBAR, Common},
	{"lgetexpr", 5, NEEDARG | WORD1 | NOTRLCOM | TRLBAR, Common},
	{"lgetfile", 2, TRLBAR | FILE1, Common},
	{"lgrep", 3, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"lgrepadd", 6, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"lhelpgrep", 2, EXTRA | NOTRLCOM | NEEDARG, Common},
	{"ll", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"llast", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"list", 3, BANG | EXTRA | TRLBAR | CMDWIN, Common},
	{"lmake", 4, BANG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"lmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"lmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"lnext", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lnewer", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"lnfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lnoremap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"loadkeymap", 5, CMDWIN, LoadKeymap},
	{"loadview", 2, FILE1 | TRLBAR, Common},
	{"lockmarks", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"lockvar", 5, BANG | EXTRA | NEEDARG | SBOXOK | CMDWIN, LockVar},
	{"lolder", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"lopen", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"lprevious", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lpfile", 3, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"lrewind", 2, RANGE | NOTADR | COUNT | TRLBAR | BANG, Common},
	{"ls", 2, BANG | TRLBAR | CMDWIN, Common},
	{"ltag", 2, NOTADR | TRLBAR | BANG | WORD1, Common},
	{"lunmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"lua", 3, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"luado", 4, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"luafile", 4, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"lvimgrep", 2, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"lvimgrepadd", 9, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"lwindow", 2, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"move", 1, RANGE | WHOLEFOLD | EXTRA | TRLBAR | CMDWIN | MODIFY, Common},
	{"mark", 2, RANGE | WORD1 | TRLBAR | SBOXOK | CMDWIN, Common},
	{"make", 3, BANG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"map", 3, BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"mapclear", 4, EXTRA | BANG | TRLBAR | CMDWIN, Common},
	{"marks", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"match", 3, RANGE | NOTADR | EXTRA | CMDWIN, Common},
	{"menu", 2, RANGE | NOTADR | ZEROR | BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"menutranslate", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"messages", 3, TRLBAR | CMDWIN, Common},
	{"mkexrc", 2, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"mksession", 3, BANG | FILE1 | TRLBAR, Common},
	{"mkspell", 4, BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"mkvimrc", 3, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"mkview", 5, BANG | FILE1 | TRLBAR, Common},
	{"mode", 3, WORD1 | TRLBAR | CMDWIN, Common},
	{"mzscheme", 2, RANGE | EXTRA | DFLALL | NEEDARG | CMDWIN | SBOXOK, Lang},
	{"mzfile", 3, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"nbclose", 3, TRLBAR | CMDWIN, Common},
	{"nbkey", 2, EXTRA | NOTADR | NEEDARG, Common},
	{"nbstart", 3, WORD1 | TRLBAR | CMDWIN, Common},
	{"next", 1, RANGE | NOTADR | BANG | FILES | EDITCMD | ARGOPT | TRLBAR, Common},
	{"new", 3, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"nmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"nmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"nmenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"nnoremap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"nnoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"noautocmd", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"noremap", 2, BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"nohlsearch", 3, TRLBAR | SBOXOK | CMDWIN, Common},
	{"noreabbrev", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"noremenu", 6, RANGE | NOTADR | ZEROR | BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"normal", 4, RANGE | BANG | EXTRA | NEEDARG | NOTRLCOM | USECTRLV | SBOXOK | CMDWIN, Common},
	{"number", 2, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"nunmap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"nunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"oldfiles", 2, BANG | TRLBAR | SBOXOK | CMDWIN, Common},
	{"open", 1, RANGE | BANG | EXTRA, Common},
	{"omap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"omapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"omenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"only", 2, BANG | TRLBAR, Common},
	{"onoremap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"onoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"options", 3, TRLBAR, Common},
	{"ounmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"ounmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"ownsyntax", 2, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Common},
	{"pclose", 2, BANG | TRLBAR, Common},
	{"pedit", 3, BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"perl", 2, RANGE | EXTRA | DFLALL | NEEDARG | SBOXOK | CMDWIN, Lang},
	{"print", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN | SBOXOK, Common},
	{"profdel", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"profile", 4, BANG | EXTRA | TRLBAR | CMDWIN, Common},
	{"promptfind", 3, EXTRA | NOTRLCOM | CMDWIN, Common},
	{"promptrepl", 7, EXTRA | NOTRLCOM | CMDWIN, Common},
	{"perldo", 5, RANGE | EXTRA | DFLALL | NEEDARG | CMDWIN, Common},
	{"pop", 2, RANGE | NOTADR | BANG | COUNT | TRLBAR | ZEROR, Common},
	{"popup", 4, NEEDARG | EXTRA | BANG | TRLBAR | NOTRLCOM | CMDWIN, Common},
	{"ppop", 2, RANGE | NOTADR | BANG | COUNT | TRLBAR | ZEROR, Common},
	{"preserve", 3, TRLBAR, Common},
	{"previous", 4, EXTRA | RANGE | NOTADR | COUNT | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"psearch", 2, BANG | RANGE | WHOLEFOLD | DFLALL | EXTRA, Common},
	{"ptag", 2, RANGE | NOTADR | BANG | WORD1 | TRLBAR | ZEROR, Common},
	{"ptNext", 3, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"ptfirst", 3, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"ptjump", 3, BANG | TRLBAR | WORD1, Common},
	{"ptlast", 3, BANG | TRLBAR, Common},
	{"ptnext", 3, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"ptprevious", 3, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"ptrewind", 3, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"ptselect", 3, BANG | TRLBAR | WORD1, Common},
	{"put", 2, RANGE | WHOLEFOLD | BANG | REGSTR | TRLBAR | ZEROR | CMDWIN | MODIFY, Common},
	{"pwd", 2, TRLBAR | CMDWIN, Common},
	{"py3", 3, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"python3", 7, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"py3file", 4, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"python", 2, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"pyfile", 3, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"pydo", 3, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"py3do", 4, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"quit", 1, BANG | TRLBAR | CMDWIN, Common},
	{"quitall", 5, BANG | TRLBAR, Common},
	{"qall", 2, BANG | TRLBAR | CMDWIN, Common},
	{"read", 1, BANG | RANGE | WHOLEFOLD | FILE1 | ARGOPT | TRLBAR | ZEROR | CMDWIN | MODIFY, Common},
	{"recover", 3, BANG | FILE1 | TRLBAR, Common},
	{"redo", 3, TRLBAR | CMDWIN, Common},
	{"redir", 4, BANG | FILES | TRLBAR | CMDWIN, Common},
	{"redraw", 4, BANG | TRLBAR | CMDWIN, Common},
	{"redrawstatus", 7, BANG | TRLBAR | CMDWIN, Common},
	{"registers", 3, EXTRA | NOTRLCOM | TRLBAR | CMDWIN, Common},
	{"resize", 3, RANGE | NOTADR | TRLBAR | WORD1, Common},
	{"retab", 3, TRLBAR | RANGE | WHOLEFOLD | DFLALL | BANG | WORD1 | CMDWIN | MODIFY, Common},
	{"return", 4, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Return},
	{"rewind", 3, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"right", 2, TRLBAR | RANGE | WHOLEFOLD | EXTRA | CMDWIN | MODIFY, Common},
	{"rightbelow", 6, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"ruby", 3, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"rubydo", 5, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"rubyfile", 5, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"rundo", 4, NEEDARG | FILE1, Common},
	{"runtime", 2, BANG | NEEDARG | FILES | TRLBAR | SBOXOK | CMDWIN, Common},
	{"rviminfo", 2, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"substitute", 1, RANGE | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"sNext", 2, EXTRA | RANGE | NOTADR | COUNT | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"sandbox", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"sargument", 2, BANG | RANGE | NOTADR | COUNT | EXTRA | EDITCMD | ARGOPT | TRLBAR, Common},
	{"sall", 3, BANG | RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"saveas", 3, BANG | DFLALL | FILE1 | ARGOPT | CMDWIN | TRLBAR, Common},
	{"sbuffer", 2, BANG | RANGE | NOTADR | BUFNAME | BUFUNL | COUNT | EXTRA | TRLBAR, Common},
	{"sbNext", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sball", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sbfirst", 3, TRLBAR, Common},
	{"sblast", 3, TRLBAR, Common},
	{"sbmodified", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sbnext", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sbprevious", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sbrewind", 3, TRLBAR, Common},
	{"scriptnames", 3, TRLBAR | CMDWIN, Common},
	{"scriptencoding", 7, WORD1 | TRLBAR | CMDWIN, Common},
	{"scscope", 3, EXTRA | NOTRLCOM, Common},
	{"set", 2, TRLBAR | EXTRA | CMDWIN | SBOXOK, Common},
	{"setfiletype", 4, TRLBAR | EXTRA | NEEDARG | CMDWIN, Common},
	{"setglobal", 4, TRLBAR | EXTRA | CMDWIN | SBOXOK, Common},
	{"setlocal", 4, TRLBAR | EXTRA | CMDWIN | SBOXOK, Common},
	{"sfind", 2, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"sfirst", 4, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"shell", 2, TRLBAR | CMDWIN, Common},
	{"simalt", 3, NEEDARG | WORD1 | TRLBAR | CMDWIN, Common},
	{"sign", 3, NEEDARG | RANGE | NOTADR | EXTRA | CMDWIN, Common},
	{"silent", 3, NEEDARG | EXTRA | BANG | NOTRLCOM | SBOXOK | CMDWIN, Common},
	{"sleep", 2, RANGE | NOTADR | COUNT | EXTRA | TRLBAR | CMDWIN, Common},
	{"slast", 3, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"smagic", 2, RANGE | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"smap", 4, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"smapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"smenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"snext", 2, RANGE | NOTADR | BANG | FILES | EDITCMD | ARGOPT | TRLBAR, Common},
	{"sniff", 3, EXTRA | TRLBAR, Common},
	{"snomagic", 3, RANGE | WHOLEFOLD | EXTRA | CMDWIN, Common},
	{"snoremap", 4, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"snoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"sort", 3, RANGE | DFLALL | WHOLEFOLD | BANG | EXTRA | NOTRLCOM | MODIFY, Common},
	{"source", 2, BANG | FILE1 | TRLBAR | SBOXOK | CMDWIN, Common},
	{"spelldump", 6, BANG | TRLBAR, Common},
	{"spellgood", 3, BANG | RANGE | NOTADR | NEEDARG | EXTRA | TRLBAR, Common},
	{"spellinfo", 6, TRLBAR, Common},
	{"spellrepall", 6, TRLBAR, Common},
	{"spellundo", 6, BANG | RANGE | NOTADR | NEEDARG | EXTRA | TRLBAR, Common},
	{"spellwrong", 6, BANG | RANGE | NOTADR | NEEDARG | EXTRA | TRLBAR, Common},
	{"split", 2, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"sprevious", 3, EXTRA | RANGE | NOTADR | COUNT | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"srewind", 3, EXTRA | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"stop", 2, TRLBAR | BANG | CMDWIN, Common},
	{"stag", 3, RANGE | NOTADR | BANG | WORD1 | TRLBAR | ZEROR, Common},
	{"startinsert", 4, BANG | TRLBAR | CMDWIN, Common},
	{"startgreplace", 6, BANG | TRLBAR | CMDWIN, Common},
	{"startreplace", 6, BANG | TRLBAR | CMDWIN, Common},
	{"stopinsert", 5, BANG | TRLBAR | CMDWIN, Common},
	{"stjump", 3, BANG | TRLBAR | WORD1, Common},
	{"stselect", 3, BANG | TRLBAR | WORD1, Common},
	{"sunhide", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"sunmap", 4, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"sunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"suspend", 3, TRLBAR | BANG | CMDWIN, Common},
	{"sview", 2, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"swapname", 2, TRLBAR | CMDWIN, Common},
	{"syntax", 2, EXTRA | NOTRLCOM | CMDWIN, Syntax},
	{"syntime", 5, NEEDARG | WORD1 | TRLBAR | CMDWIN, Common},
	{"syncbind", 4, TRLBAR, Common},
	{"t", 1, RANGE | WHOLEFOLD | EXTRA | TRLBAR | CMDWIN | MODIFY, Common},
	{"tNext", 2, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"tabNext", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"tabclose", 4, RANGE | NOTADR | COUNT | BANG | TRLBAR | CMDWIN, Common},
	{"tabdo", 4, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"tabedit", 4, BANG | FILE1 | RANGE | NOTADR | ZEROR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"tabfind", 4, BANG | FILE1 | RANGE | NOTADR | ZEROR | EDITCMD | ARGOPT | NEEDARG | TRLBAR, Common},
	{"tabfirst", 6, TRLBAR, Common},
	{"tablast", 4, TRLBAR, Common},
	{"tabmove", 4, RANGE | NOTADR | ZEROR | EXTRA | NOSPC | TRLBAR, Common},
	{"tabnew", 6, BANG | FILE1 | RANGE | NOTADR | ZEROR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"tabnext", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"tabonly", 4, BANG | TRLBAR | CMDWIN, Common},
	{"tabprevious", 4, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"tabrewind", 4, TRLBAR, Common},
	{"tabs", 4, TRLBAR | CMDWIN, Common},
	{"tab", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"tag", 2, RANGE | NOTADR | BANG | WORD1 | TRLBAR | ZEROR, Common},
	{"tags", 4, TRLBAR | CMDWIN, Common},
	{"tcl", 2, RANGE | EXTRA | NEEDARG | CMDWIN, Lang},
	{"tcldo", 4, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"tclfile", 4, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"tearoff", 2, NEEDARG | EXTRA | TRLBAR | NOTRLCOM | CMDWIN, Common},
	{"tfirst", 2, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"throw", 2, EXTRA | NEEDARG | SBOXOK | CMDWIN, Throw},
	{"tjump", 2, BANG | TRLBAR | WORD1, Common},
	{"tlast", 2, BANG | TRLBAR, Common},
	{"tmenu", 2, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"tnext", 2, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"topleft", 2, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"tprevious", 2, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"trewind", 2, RANGE | NOTADR | BANG | TRLBAR | ZEROR, Common},
	{"try", 3, TRLBAR | SBOXOK | CMDWIN, Try},
	{"tselect", 2, BANG | TRLBAR | WORD1, Common},
	{"tunmenu", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"undo", 1, RANGE | NOTADR | COUNT | ZEROR | TRLBAR | CMDWIN, Common},
	{"undojoin", 5, TRLBAR | CMDWIN, Common},
	{"undolist", 5, TRLBAR | CMDWIN, Common},
	{"unabbreviate", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"unhide", 3, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"unlet", 3, BANG | EXTRA | NEEDARG | SBOXOK | CMDWIN, Unlet},
	{"unlockvar", 4, BANG | EXTRA | NEEDARG | SBOXOK | CMDWIN, LockVar},
	{"unmap", 3, BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"unmenu", 4, BANG | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"unsilent", 3, NEEDARG | EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Common},
	{"update", 2, RANGE | WHOLEFOLD | BANG | FILE1 | ARGOPT | DFLALL | TRLBAR, Common},
	{"vglobal", 1, RANGE | WHOLEFOLD | EXTRA | DFLALL | CMDWIN, Common},
	{"version", 2, EXTRA | TRLBAR | CMDWIN, Common},
	{"verbose", 4, NEEDARG | RANGE | NOTADR | EXTRA | NOTRLCOM | SBOXOK | CMDWIN, Common},
	{"vertical", 4, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"vimgrep", 3, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"vimgrepadd", 8, RANGE | NOTADR | BANG | NEEDARG | EXTRA | NOTRLCOM | TRLBAR | XFILE, Common},
	{"visual", 2, BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"viusage", 3, TRLBAR, Common},
	{"view", 3, BANG | FILE1 | EDITCMD | ARGOPT | TRLBAR, Common},
	{"vmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"vmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"vmenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"vnew", 3, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"vnoremap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"vnoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"vsplit", 2, BANG | FILE1 | RANGE | NOTADR | EDITCMD | ARGOPT | TRLBAR, Common},
	{"vunmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"vunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"windo", 5, BANG | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"write", 1, RANGE | WHOLEFOLD | BANG | FILE1 | ARGOPT | DFLALL | TRLBAR | CMDWIN, Common},
	{"wNext", 2, RANGE | WHOLEFOLD | NOTADR | BANG | FILE1 | ARGOPT | TRLBAR, Common},
	{"wall", 2, BANG | TRLBAR | CMDWIN, Common},
	{"while", 2, EXTRA | NOTRLCOM | SBOXOK | CMDWIN, While},
	{"winsize", 2, EXTRA | NEEDARG | TRLBAR, Common},
	{"wincmd", 4, NEEDARG | WORD1 | RANGE | NOTADR, WinCmd},
	{"winpos", 4, EXTRA | TRLBAR | CMDWIN, Common},
	{"wnext", 2, RANGE | NOTADR | BANG | FILE1 | ARGOPT | TRLBAR, Common},
	{"wprevious", 2, RANGE | NOTADR | BANG | FILE1 | ARGOPT | TRLBAR, Common},
	{"wq", 2, RANGE | WHOLEFOLD | BANG | FILE1 | ARGOPT | DFLALL | TRLBAR, Common},
	{"wqall", 3, BANG | FILE1 | ARGOPT | DFLALL | TRLBAR, Common},
	{"wsverb", 2, EXTRA | NOTADR | NEEDARG, Common},
	{"wundo", 2, BANG | NEEDARG | FILE1, Common},
	{"wviminfo", 2, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"xit", 1, RANGE | WHOLEFOLD | BANG | FILE1 | ARGOPT | DFLALL | TRLBAR | CMDWIN, Common},
	{"xall", 2, BANG | TRLBAR, Common},
	{"xmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"xmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"xmenu", 3, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"xnoremap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"xnoremenu", 7, RANGE | NOTADR | ZEROR | EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"xunmap", 2, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"xunmenu", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"yank", 1, RANGE | WHOLEFOLD | REGSTR | COUNT | TRLBAR | CMDWIN, Common},
	{"z", 1, RANGE | WHOLEFOLD | EXTRA | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"!", 1, RANGE | WHOLEFOLD | BANG | FILES | CMDWIN, Common},
	{"#", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"&", 1, RANGE | WHOLEFOLD | EXTRA | CMDWIN | MODIFY, Common},
	{"*", 1, RANGE | WHOLEFOLD | EXTRA | TRLBAR | CMDWIN, Common},
	{"<", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN | MODIFY, Common},
	{"=", 1, RANGE | TRLBAR | DFLALL | EXFLAGS | CMDWIN, Common},
	{">", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN | MODIFY, Common},
	{"@", 1, RANGE | WHOLEFOLD | EXTRA | TRLBAR | CMDWIN, Common},
	{"Next", 1, EXTRA | RANGE | NOTADR | COUNT | BANG | EDITCMD | ARGOPT | TRLBAR, Common},
	{"Print", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"X", 1, TRLBAR, Common},
	{"~", 1, RANGE | WHOLEFOLD | EXTRA | CMDWIN | MODIFY, Common},
	{"cbottom", 3, TRLBAR, Common},
	{"cdo", 3, BANG | NEEDARG | EXTRA | NOTRLCOM | RANGE | NOTADR | DFLALL, Common},
	{"cfdo", 3, BANG | NEEDARG | EXTRA | NOTRLCOM | RANGE | NOTADR | DFLALL, Common},
	{"chistory", 3, TRLBAR, Common},
	{"clearjumps", 3, TRLBAR | CMDWIN, Common},
	{"filter", 4, BANG | NEEDARG | EXTRA | NOTRLCOM, Common},
	{"helpclose", 5, RANGE | NOTADR | COUNT | TRLBAR, Common},
	{"lbottom", 3, TRLBAR, Common},
	{"ldo", 2, BANG | NEEDARG | EXTRA | NOTRLCOM | RANGE | NOTADR | DFLALL, Common},
	{"lfdo", 3, BANG | NEEDARG | EXTRA | NOTRLCOM | RANGE | NOTADR | DFLALL, Common},
	{"lhistory", 3, TRLBAR, Common},
	{"llist", 3, BANG | EXTRA | TRLBAR | CMDWIN, Common},
	{"noswapfile", 3, NEEDARG | EXTRA | NOTRLCOM, Common},
	{"packadd", 2, BANG | FILE1 | NEEDARG | TRLBAR | SBOXOK | CMDWIN, Common},
	{"packloadall", 5, BANG | TRLBAR | SBOXOK | CMDWIN, Common},
	{"smile", 3, TRLBAR | CMDWIN | SBOXOK, Common},
	{"pyx", 3, RANGE | EXTRA | NEEDARG | CMDWIN, Common},
	{"pyxdo", 4, RANGE | DFLALL | EXTRA | NEEDARG | CMDWIN, Common},
	{"pythonx", 7, RANGE | EXTRA | NEEDARG | CMDWIN, Common},
	{"pyxfile", 4, RANGE | FILE1 | NEEDARG | CMDWIN, Common},
	{"terminal", 3, RANGE | BANG | FILES | CMDWIN, Common},
	{"tmap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"tmapclear", 5, EXTRA | TRLBAR | CMDWIN, Common},
	{"tnoremap", 3, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Mapping},
	{"tunmap", 5, EXTRA | TRLBAR | NOTRLCOM | USECTRLV | CMDWIN, Common},
	{"rshada", 3, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"wshada", 3, BANG | FILE1 | TRLBAR | CMDWIN, Common},
	{"Print", 1, RANGE | WHOLEFOLD | COUNT | EXFLAGS | TRLBAR | CMDWIN, Common},
	{"fixdel", 3, TRLBAR | CMDWIN, Common},
	{"helpfind", 5, EXTRA | NOTRLCOM, Common},
	{"open", 1, RANGE | BANG | EXTRA, Common},
	{"shell", 2, TRLBAR | CMDWIN, Common},
	{"tearoff", 2, NEEDARG | EXTRA | TRLBAR | NOTRLCOM | CMDWIN, Common},
	{"gvim", 2, BANG | FILES | EDITCMD | ARGOPT | TRLBAR | CMDWIN, Common},

	// ":const" postdates the original_source snapshot of command.rs (Vim
	// added it in 8.2); it parses exactly like ":let" (spec.md §4.5).
	{"const", 3, EXTRA | NOTRLCOM | SBOXOK, Let},
}
