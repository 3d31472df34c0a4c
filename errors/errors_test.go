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

package errors

import (
	"testing"

	"github.com/deathlyfrantic/vimlfmt/token"
)

func TestNewf(t *testing.T) {
	pos := token.Pos{Line: 2, Column: 5}
	err := Newf(pos, "unexpected %q", "x")
	if err.Position() != pos {
		t.Errorf("Position() = %v; want %v", err.Position(), pos)
	}
	if got, want := err.Error(), `unexpected "x"`; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestWithCode(t *testing.T) {
	pos := token.Pos{Line: 1, Column: 1}
	err := WithCode(pos, "E492", "not an editor command: %s", "foo")
	if got, want := err.Error(), "E492: not an editor command: foo"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
	if err.Code != "E492" {
		t.Errorf("Code = %q; want E492", err.Code)
	}
}

func TestListError(t *testing.T) {
	var l List
	if got, want := l.Error(), "no errors"; got != want {
		t.Errorf("empty List.Error() = %q; want %q", got, want)
	}
	if l.Err() != nil {
		t.Errorf("empty List.Err() should be nil")
	}

	l.Add(Newf(token.Pos{Line: 1}, "first"))
	if got, want := l.Error(), "first"; got != want {
		t.Errorf("single-element List.Error() = %q; want %q", got, want)
	}
	if l.Err() == nil {
		t.Errorf("non-empty List.Err() should not be nil")
	}

	l.Add(Newf(token.Pos{Line: 2}, "second"))
	if got, want := l.Error(), "first (and 1 more errors)"; got != want {
		t.Errorf("two-element List.Error() = %q; want %q", got, want)
	}
}

func TestErrorSatisfiesInterface(t *testing.T) {
	var _ Error = &PositionError{}
	var _ error = &PositionError{}
}
