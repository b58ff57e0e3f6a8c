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

package verify

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/mpvl/unique"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

// filterContext selects the context statements that reach the provers.
//
// Without citations every statement that does not reduce to Top is kept,
// with definition and signature heads rewritten into usable form. With
// citations, the low-level segment always passes, the cited top-level
// statements are extracted, and the top-level definitions and signatures
// are retained regardless, since they carry the type information the
// provers always need.
func filterContext(v *VState, r *RState) []fact.Fact {
	link := v.Thesis.Link
	if len(link) == 0 {
		out := make([]fact.Fact, 0, len(v.Context))
		for _, c := range v.Context {
			if c, ok := usable(c); ok {
				out = append(out, c)
			}
		}
		return out
	}

	names := slices.Clone(link)
	sort.Strings(names)
	unique.Strings(&names)

	low, top := fact.LowPrefix(v.Context)
	found := make(map[string]bool, len(names))
	var linked, defsigs []fact.Fact
	for _, c := range top {
		if c.Name != "" && slices.Contains(names, c.Name) {
			found[c.Name] = true
			linked = append(linked, c)
			continue
		}
		if !c.IsDefinitional() {
			continue
		}
		if c, ok := usable(c); ok {
			defsigs = append(defsigs, c)
		}
	}

	var missing []string
	for _, n := range names {
		if !found[n] {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		r.Warnf(v.Branch, "could not find section(s) %s", strings.Join(missing, ", "))
	}

	out := make([]fact.Fact, 0, len(low)+len(linked)+len(defsigs))
	out = append(out, low...)
	out = append(out, linked...)
	return append(out, defsigs...)
}

// usable rewrites definitional heads and drops statements that reduce to
// Top, before or after the rewriting.
func usable(c fact.Fact) (fact.Fact, bool) {
	if formula.IsTop(c.Reduced) {
		return c, false
	}
	if c.IsDefinitional() {
		c = c.SetForm(rewriteHead(c.Form))
		if formula.IsTop(c.Reduced) {
			return c, false
		}
	}
	return c, true
}

// rewriteHead replaces the defining equation of a definition or signature
// head by the definiens itself: the outer universals are stripped onto
// stable index-derived names, the head term is substituted for the
// placeholder in the body, and for definitions the reverse direction is
// kept as an explicit implication. The head equation itself is redundant
// once the definiens is in place, and dropping it keeps spurious equality
// reasoning out of the prover task.
//
// A head whose body is Top erases to Top, quantifiers included.
func rewriteHead(f formula.Formula) formula.Formula {
	return diveHead(0, f)
}

func diveHead(n int, f formula.Formula) formula.Formula {
	switch x := f.(type) {
	case *formula.All:
		return diveHead(n+1, formula.Inst(headName(n), x.F))
	case *formula.Imp:
		if t, ok := headEquation(x.F); ok {
			if formula.IsTop(x.G) {
				return &formula.Top{}
			}
			return formula.Replace(t, &formula.ThisT{}, x.G)
		}
	case *formula.Iff:
		if t, ok := headEquation(x.F); ok {
			if formula.IsTop(x.G) {
				return &formula.Top{}
			}
			forward := formula.Replace(t, &formula.ThisT{}, x.G)
			reverse := formula.Formula(&formula.Imp{F: x.G, G: formula.Strip(x.F)})
			for i := n - 1; i >= 0; i-- {
				reverse = &formula.All{F: formula.Bind(headName(i), reverse)}
			}
			return &formula.And{F: forward, G: reverse}
		}
	}
	return f
}

func headName(n int) string {
	return fmt.Sprintf("%d:", n)
}

// headEquation recognizes a tagged defining equation and returns its
// definiendum side.
func headEquation(f formula.Formula) (formula.Formula, bool) {
	tg, ok := f.(*formula.Tag)
	if !ok || tg.K != formula.HeadTerm {
		return nil, false
	}
	tr, ok := formula.Strip(tg.F).(*formula.Trm)
	if !ok || tr.ID != formula.EqualityID || len(tr.Args) != 2 {
		return nil, false
	}
	return tr.Args[1], true
}
