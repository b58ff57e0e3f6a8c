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
	"sort"
	"strings"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

// DFGTask renders the context and the goal as a DFG problem, with the
// symbol declarations gathered from the exported formulas.
func DFGTask(context []fact.Fact, goal fact.Fact, reduced bool) string {
	var forms []formula.Formula
	for i := len(context) - 1; i >= 0; i-- {
		f := taskForm(context[i], reduced)
		if formula.IsTop(f) {
			continue
		}
		forms = append(forms, f)
	}
	goalForm := taskForm(goal, reduced)

	funcs, preds := map[string]int{}, map[string]int{}
	for _, f := range forms {
		collectSymbols(f, true, funcs, preds)
	}
	collectSymbols(goalForm, true, funcs, preds)

	var b strings.Builder
	b.WriteString("begin_problem(forthel).\n\n")
	b.WriteString("list_of_descriptions.\n")
	b.WriteString("name({* forthel task *}).\nauthor({* forthel *}).\n")
	b.WriteString("status(unknown).\ndescription({* exported reasoning task *}).\n")
	b.WriteString("end_of_list.\n\n")

	b.WriteString("list_of_symbols.\n")
	if s := symbolList(funcs); s != "" {
		fmt.Fprintf(&b, "functions[%s].\n", s)
	}
	if s := symbolList(preds); s != "" {
		fmt.Fprintf(&b, "predicates[%s].\n", s)
	}
	b.WriteString("end_of_list.\n\n")

	b.WriteString("list_of_formulae(axioms).\n")
	for i, f := range forms {
		fmt.Fprintf(&b, "formula(%s, m_%d).\n", dfgFormula(f, nil), i)
	}
	b.WriteString("end_of_list.\n\n")

	b.WriteString("list_of_formulae(conjectures).\n")
	fmt.Fprintf(&b, "formula(%s, m__thesis).\n", dfgFormula(goalForm, nil))
	b.WriteString("end_of_list.\n\nend_problem.\n")
	return b.String()
}

// collectSymbols walks f, recording predicate arities at formula positions
// and function arities at term positions. Free variables export as
// constants.
func collectSymbols(f formula.Formula, atFormula bool, funcs, preds map[string]int) {
	switch x := f.(type) {
	case *formula.Trm:
		if atFormula {
			if x.ID != formula.EqualityID {
				preds[symbolName(x)] = len(x.Args)
			}
		} else {
			funcs[symbolName(x)] = len(x.Args)
		}
		for _, a := range x.Args {
			collectSymbols(a, false, funcs, preds)
		}
	case *formula.Var:
		funcs["v"+sanitize(x.Name)] = 0
	case *formula.Tag:
		collectSymbols(x.F, atFormula, funcs, preds)
	default:
		formula.FoldF(func(g formula.Formula) {
			collectSymbols(g, true, funcs, preds)
		}, f)
	}
}

func symbolList(m map[string]int) string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("(%s,%d)", n, m[n])
	}
	return strings.Join(parts, ",")
}

func dfgFormula(f formula.Formula, bound []string) string {
	switch x := f.(type) {
	case *formula.All:
		v := boundName(len(bound))
		return fmt.Sprintf("forall([%s],%s)", v, dfgFormula(x.F, append(bound, v)))
	case *formula.Exi:
		v := boundName(len(bound))
		return fmt.Sprintf("exists([%s],%s)", v, dfgFormula(x.F, append(bound, v)))
	case *formula.Not:
		return fmt.Sprintf("not(%s)", dfgFormula(x.F, bound))
	case *formula.And:
		return fmt.Sprintf("and(%s,%s)", dfgFormula(x.F, bound), dfgFormula(x.G, bound))
	case *formula.Or:
		return fmt.Sprintf("or(%s,%s)", dfgFormula(x.F, bound), dfgFormula(x.G, bound))
	case *formula.Imp:
		return fmt.Sprintf("implies(%s,%s)", dfgFormula(x.F, bound), dfgFormula(x.G, bound))
	case *formula.Iff:
		return fmt.Sprintf("equiv(%s,%s)", dfgFormula(x.F, bound), dfgFormula(x.G, bound))
	case *formula.Tag:
		return dfgFormula(x.F, bound)
	case *formula.Trm:
		if x.ID == formula.EqualityID && len(x.Args) == 2 {
			return fmt.Sprintf("equal(%s,%s)", dfgFormula(x.Args[0], bound), dfgFormula(x.Args[1], bound))
		}
		name := symbolName(x)
		if len(x.Args) == 0 {
			return name
		}
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = dfgFormula(a, bound)
		}
		return fmt.Sprintf("%s(%s)", name, strings.Join(args, ","))
	case *formula.Var:
		return "v" + sanitize(x.Name)
	case *formula.Ind:
		if i := len(bound) - 1 - x.Depth; i >= 0 {
			return bound[i]
		}
		return fmt.Sprintf("W%d", x.Depth)
	case *formula.Top:
		return "true"
	case *formula.Bot:
		return "false"
	}
	panic("forthel: unexportable formula node")
}
