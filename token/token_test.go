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

package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{ILLEGAL, "ILLEGAL"},
		{EOF, "EOF"},
		{Number, "Number"},
		{POpen, "("},
		{EqEq, "=="},
		{EqEqCI, "==?"},
		{EqEqCS, "==#"},
		{Is, "is"},
		{IsNot, "isnot"},
		{AndAnd, "&&"},
		{OrOr, "||"},
		{Kind(9999), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.k.String(); got != tc.want {
			t.Errorf("%d.String() = %q; want %q", tc.k, got, tc.want)
		}
	}
}

func TestWithCaseSuffix(t *testing.T) {
	tests := []struct {
		k      Kind
		suffix byte
		want   Kind
	}{
		{EqEq, '?', EqEqCI},
		{EqEq, '#', EqEqCS},
		{EqEq, 0, EqEq},
		{NotEq, '?', NotEqCI},
		{Is, '#', IsCS},
		{IsNot, '?', IsNotCI},
		{Plus, '?', Plus}, // not a comparison kind, returned unchanged
	}
	for _, tc := range tests {
		if got := WithCaseSuffix(tc.k, tc.suffix); got != tc.want {
			t.Errorf("WithCaseSuffix(%s, %q) = %s; want %s", tc.k, tc.suffix, got, tc.want)
		}
	}
}

func TestIsComparison(t *testing.T) {
	comparisons := []Kind{
		EqEq, EqEqCI, EqEqCS, NotEq, NotEqCI, NotEqCS,
		GT, GTCI, GTCS, GTEq, GTEqCI, GTEqCS,
		LT, LTCI, LTCS, LTEq, LTEqCI, LTEqCS,
		Match, MatchCI, MatchCS, NoMatch, NoMatchCI, NoMatchCS,
		Is, IsCI, IsCS, IsNot, IsNotCI, IsNotCS,
	}
	for _, k := range comparisons {
		if !IsComparison(k) {
			t.Errorf("IsComparison(%s) = false; want true", k)
		}
	}

	notComparisons := []Kind{ILLEGAL, EOF, EOL, Number, Identifier, Plus, Minus, AndAnd, OrOr}
	for _, k := range notComparisons {
		if IsComparison(k) {
			t.Errorf("IsComparison(%s) = true; want false", k)
		}
	}
}
