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

package autocmdtable

import "testing"

func TestLookupCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"bufwritepre", "BufWritePre"},
		{"BUFWRITEPRE", "BufWritePre"},
		{"BufWritePre", "BufWritePre"},
		{"cursorhold", "CursorHold"},
		{"VimEnter", "VimEnter"},
	}
	for _, tc := range tests {
		got, ok := Lookup(tc.name)
		if !ok {
			t.Errorf("Lookup(%q) not found", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("Lookup(%q) = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestLookupUnknownEvent(t *testing.T) {
	if _, ok := Lookup("NotARealEvent"); ok {
		t.Errorf("Lookup of unknown event succeeded")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	if len(a) == 0 {
		t.Fatalf("All() returned no events")
	}
	a[0] = "Mutated"
	b, ok := Lookup("BufAdd")
	if !ok || b != "BufAdd" {
		t.Errorf("mutating All()'s result affected the catalog: Lookup(\"BufAdd\") = (%q, %v)", b, ok)
	}
}

func TestAllContainsKnownEvents(t *testing.T) {
	all := All()
	want := map[string]bool{"BufWritePre": false, "VimEnter": false, "User": false}
	for _, e := range all {
		if _, ok := want[e]; ok {
			want[e] = true
		}
	}
	for e, found := range want {
		if !found {
			t.Errorf("All() missing expected event %q", e)
		}
	}
}
