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

// Package errors defines the error type returned by the char source,
// tokenizer, and parser, modeled on cuelang.org/go/cue/errors: a
// position-carrying error value rather than a panic/recover exception, per
// spec.md §7 ("Errors are values, not exceptions").
package errors

import (
	"fmt"

	"github.com/deathlyfrantic/vimlfmt/token"
)

// Error is the interface satisfied by every error the core produces. It
// always carries the Position at which the error was detected.
type Error interface {
	error
	Position() token.Pos
}

// PositionError is the concrete Error implementation used throughout the
// reader, tokenizer, and parser. Code, when non-empty, is one of the Vim
// error codes in spec.md §6 ("Error codes surfaced verbatim").
type PositionError struct {
	Pos     token.Pos
	Code    string
	Message string
}

func (e *PositionError) Position() token.Pos { return e.Pos }

func (e *PositionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Newf builds a PositionError with no Vim error code attached, for purely
// syntactic or lexical failures that Vim itself does not assign a code to.
func Newf(pos token.Pos, format string, args ...interface{}) *PositionError {
	return &PositionError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// WithCode builds a PositionError carrying one of the Vim error codes, e.g.
// errors.WithCode(pos, "E492", "not an editor command: %s", name).
func WithCode(pos token.Pos, code, format string, args ...interface{}) *PositionError {
	return &PositionError{Pos: pos, Code: code, Message: fmt.Sprintf(format, args...)}
}

// List accumulates multiple errors found while attempting AllErrors-style
// recovery. The core parser (spec.md §7) aborts on the first error, so List
// is used only by tooling layered on top (e.g. batch-formatting many
// files) that wants to report more than one failure per run.
type List []Error

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
}

func (l *List) Add(err Error) {
	*l = append(*l, err)
}

func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
