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

package parser

import (
	"os"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/ast"
	"github.com/deathlyfrantic/vimlfmt/errors"
	"github.com/deathlyfrantic/vimlfmt/reader"
	"github.com/deathlyfrantic/vimlfmt/token"
)

// ParseLines parses a Vimscript source already split into lines (spec.md
// §7, public entry point) and returns the top-level AST.
func ParseLines(lines []string) (*ast.TopLevel, error) {
	cs := reader.New(lines)
	return NewParser(cs).run()
}

// ParseFile reads path and parses it. A file-system error is reported at
// position (0, 0), mirroring the zero-value token.Pos an I/O failure has
// no better position to report (spec.md §7).
func ParseFile(path string) (*ast.TopLevel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Newf(token.Pos{}, "%s: %v", path, err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	return ParseLines(lines)
}
