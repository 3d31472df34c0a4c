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
	"fmt"
	"reflect"
	"strings"

	"github.com/deathlyfrantic/vimlfmt/ast"
	"github.com/deathlyfrantic/vimlfmt/token"
)

// Debug renders a multi-line, Go-like representation of top's tree,
// including every field and its source position, for the CLI's --debug
// flag (spec.md §6).
func Debug(top *ast.TopLevel) string {
	var b strings.Builder
	debugValue(&b, reflect.ValueOf(top), 0)
	b.WriteString("\n")
	return b.String()
}

var typeTokenPos = reflect.TypeOf(token.Pos{})

func debugIndent(b *strings.Builder, level int) {
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\t", level))
}

func debugValue(b *strings.Builder, v reflect.Value, level int) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}
	v = reflect.Indirect(v)
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}

	t := v.Type()
	if t == typeTokenPos {
		fmt.Fprintf(b, "%s", v.Interface().(token.Pos))
		return
	}

	switch t.Kind() {
	case reflect.Slice:
		if v.Len() == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			debugIndent(b, level+1)
			debugValue(b, v.Index(i), level+1)
		}
		debugIndent(b, level)
		b.WriteString("]")

	case reflect.Struct:
		fmt.Fprintf(b, "%s{", t.Name())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			debugIndent(b, level+1)
			fmt.Fprintf(b, "%s: ", f.Name)
			debugValue(b, v.Field(i), level+1)
		}
		debugIndent(b, level)
		b.WriteString("}")

	default:
		fmt.Fprintf(b, "%#v", v.Interface())
	}
}
