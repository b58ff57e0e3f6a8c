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

package export

import (
	"fmt"
	"strings"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

// TPTPTask renders the context and the goal as a TPTP fof problem. The
// context is emitted in chronological order: top-level statements as
// axioms, low-level ones as hypotheses, and the goal as the conjecture.
func TPTPTask(context []fact.Fact, goal fact.Fact, reduced bool) string {
	var b strings.Builder
	for i := len(context) - 1; i >= 0; i-- {
		c := context[i]
		f := taskForm(c, reduced)
		if formula.IsTop(f) {
			continue
		}
		role := "axiom"
		if c.LowLevel {
			role = "hypothesis"
		}
		fmt.Fprintf(&b, "fof(%s, %s, %s).\n", fofName(c, len(context)-1-i), role, tptpFormula(f, nil))
	}
	fmt.Fprintf(&b, "fof(m__thesis, conjecture, %s).\n", tptpFormula(taskForm(goal, reduced), nil))
	return b.String()
}

func taskForm(c fact.Fact, reduced bool) formula.Formula {
	if reduced {
		return c.Reduced
	}
	return c.Form
}

func fofName(c fact.Fact, i int) string {
	if c.Name != "" {
		return "m_" + sanitize(c.Name)
	}
	return fmt.Sprintf("m_%d", i)
}

func tptpFormula(f formula.Formula, bound []string) string {
	switch x := f.(type) {
	case *formula.All:
		v := boundName(len(bound))
		return fmt.Sprintf("(! [%s] : %s)", v, tptpFormula(x.F, append(bound, v)))
	case *formula.Exi:
		v := boundName(len(bound))
		return fmt.Sprintf("(? [%s] : %s)", v, tptpFormula(x.F, append(bound, v)))
	case *formula.Not:
		return fmt.Sprintf("(~ %s)", tptpFormula(x.F, bound))
	case *formula.And:
		return fmt.Sprintf("(%s & %s)", tptpFormula(x.F, bound), tptpFormula(x.G, bound))
	case *formula.Or:
		return fmt.Sprintf("(%s | %s)", tptpFormula(x.F, bound), tptpFormula(x.G, bound))
	case *formula.Imp:
		return fmt.Sprintf("(%s => %s)", tptpFormula(x.F, bound), tptpFormula(x.G, bound))
	case *formula.Iff:
		return fmt.Sprintf("(%s <=> %s)", tptpFormula(x.F, bound), tptpFormula(x.G, bound))
	case *formula.Tag:
		return tptpFormula(x.F, bound)
	case *formula.Trm:
		if x.ID == formula.EqualityID && len(x.Args) == 2 {
			return fmt.Sprintf("(%s = %s)", tptpFormula(x.Args[0], bound), tptpFormula(x.Args[1], bound))
		}
		return tptpTerm(x, bound)
	case *formula.Var:
		return "v" + sanitize(x.Name)
	case *formula.Ind:
		if i := len(bound) - 1 - x.Depth; i >= 0 {
			return bound[i]
		}
		return fmt.Sprintf("W%d", x.Depth)
	case *formula.Top:
		return "$true"
	case *formula.Bot:
		return "$false"
	}
	panic("forthel: unexportable formula node")
}

func tptpTerm(t *formula.Trm, bound []string) string {
	name := symbolName(t)
	if len(t.Args) == 0 {
		return name
	}
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = tptpFormula(a, bound)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ","))
}

func boundName(depth int) string {
	return fmt.Sprintf("W%d", depth)
}

// symbolName renders a symbol name in prover-safe form. User symbols get
// their identifier as a suffix so distinct symbols with clashing surface
// names stay distinct.
func symbolName(t *formula.Trm) string {
	s := sanitize(t.Name)
	if t.ID >= 0 {
		return fmt.Sprintf("%s_%d", s, t.ID)
	}
	return s
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" || !(s[0] >= 'a' && s[0] <= 'z') {
		s = "s" + s
	}
	return s
}
