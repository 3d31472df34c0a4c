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

import "testing"

func TestMatchModifierExactAndAbbreviated(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"silent", "silent"},
		{"sil", "silent"},
		{"vert", "vertical"},
		{"bo", "botright"},
		{"botright", "botright"},
		{"tab", "tab"},
	}
	for _, tc := range tests {
		got, ok := MatchModifier(tc.in)
		if !ok {
			t.Errorf("MatchModifier(%q) not found", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("MatchModifier(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestMatchModifierBelowMinAbbrev(t *testing.T) {
	// "botright" has MinAbbrevLen 2, so a single-character prefix must fail.
	if _, ok := MatchModifier("b"); ok {
		t.Errorf("MatchModifier(\"b\") succeeded; want not found")
	}
}

func TestMatchModifierUnknown(t *testing.T) {
	if _, ok := MatchModifier("notamodifier"); ok {
		t.Errorf("MatchModifier of unknown name succeeded")
	}
}

func TestBangAndCountModifierConstants(t *testing.T) {
	if BangModifier != "silent" {
		t.Errorf("BangModifier = %q; want \"silent\"", BangModifier)
	}
	if !CountModifiers["tab"] || !CountModifiers["verbose"] {
		t.Errorf("CountModifiers should include \"tab\" and \"verbose\"")
	}
	if CountModifiers["silent"] {
		t.Errorf("CountModifiers should not include \"silent\"")
	}
	if HideModifier != "hide" {
		t.Errorf("HideModifier = %q; want \"hide\"", HideModifier)
	}
}
