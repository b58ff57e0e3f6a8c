// Copyright 2024 The ForTheL Authors
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

package formula

import (
	"fmt"
	"strings"
)

// Sprint renders f for diagnostics and logs. Binders are opened with their
// declared names, or with vN placeholders when the declaration is empty.
func Sprint(f Formula) string {
	var b strings.Builder
	sprint(&b, f, nil)
	return b.String()
}

func sprint(b *strings.Builder, f Formula, bound []string) {
	switch x := f.(type) {
	case *All:
		v := binderName(x.Decl, len(bound))
		fmt.Fprintf(b, "forall %s ", v)
		sprint(b, x.F, append(bound, v))
	case *Exi:
		v := binderName(x.Decl, len(bound))
		fmt.Fprintf(b, "exists %s ", v)
		sprint(b, x.F, append(bound, v))
	case *Not:
		b.WriteString("not ")
		sprint(b, x.F, bound)
	case *And:
		binary(b, "and", x.F, x.G, bound)
	case *Or:
		binary(b, "or", x.F, x.G, bound)
	case *Imp:
		binary(b, "implies", x.F, x.G, bound)
	case *Iff:
		binary(b, "iff", x.F, x.G, bound)
	case *Tag:
		fmt.Fprintf(b, "[%v] ", x.K)
		sprint(b, x.F, bound)
	case *Trm:
		if x.ID == EqualityID && len(x.Args) == 2 {
			sprint(b, x.Args[0], bound)
			b.WriteString(" = ")
			sprint(b, x.Args[1], bound)
			return
		}
		b.WriteString(x.Name)
		if len(x.Args) > 0 {
			b.WriteByte('(')
			for i, a := range x.Args {
				if i > 0 {
					b.WriteByte(',')
				}
				sprint(b, a, bound)
			}
			b.WriteByte(')')
		}
	case *Var:
		b.WriteString(x.Name)
	case *Ind:
		if i := len(bound) - 1 - x.Depth; i >= 0 {
			b.WriteString(bound[i])
		} else {
			fmt.Fprintf(b, "i%d", x.Depth)
		}
	case *Top:
		b.WriteString("truth")
	case *Bot:
		b.WriteString("contradiction")
	case *ThisT:
		b.WriteString("ThisT")
	default:
		b.WriteString("?")
	}
}

func binary(b *strings.Builder, op string, f, g Formula, bound []string) {
	b.WriteByte('(')
	sprint(b, f, bound)
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	sprint(b, g, bound)
	b.WriteByte(')')
}

func binderName(decl string, n int) string {
	if decl != "" {
		return decl
	}
	return fmt.Sprintf("v%d", n)
}
