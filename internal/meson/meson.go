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

// Package meson implements a model-elimination refutation prover, used by
// the verifier as a fast filter for locally obvious goals.
//
// Context formulas and the negated goal are clausified with fresh rule
// variables for universals and skolem terms for existentials, turned into
// contrapositive rules, and searched depth-first under a small bound. The
// search checks its context cooperatively so a caller-imposed wall-clock
// budget can cancel it promptly.
package meson

import (
	"context"
	"fmt"
	"strings"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

// SkolemID is the symbol identifier shared by all skolem terms.
const SkolemID = -101

// Search limits. The prover is a filter, not a full search: formulas too
// far from clausal form are skipped rather than expanded.
const (
	maxDepth      = 8
	maxClauses    = 64
	maxClauseSize = 16
)

// Prove reports whether goal follows from the low-level context together
// with the prepared positive and negative rules. The skolem counter seeds
// fresh symbol generation. Prove returns false as soon as ctx is cancelled.
func Prove(ctx context.Context, skolem int, low []fact.Fact, pos, neg []fact.Rule, goal formula.Formula) bool {
	p := &prover{ctx: ctx, fresh: skolem}
	for _, r := range pos {
		p.rules = append(p.rules, mrule{concl: r.Conclusion, prems: r.Premises})
	}
	for _, r := range neg {
		p.rules = append(p.rules, mrule{concl: r.Conclusion, prems: r.Premises})
	}
	for _, c := range low {
		p.assume(c.Form)
	}
	p.assume(formula.Albet(&formula.Not{F: goal}))

	for bound := 2; bound <= maxDepth; bound++ {
		for _, r := range p.falseRules {
			rr := p.rename(r)
			if p.solveAll(rr.prems, 0, nil, bound, sub{}, func(sub) bool { return true }) {
				return true
			}
			if p.stopped() {
				return false
			}
		}
	}
	return false
}

// An mrule is one contrapositive: a conclusion literal and the premises
// that remain when it fires. Contradiction rules, compiled from
// all-negative clauses, have a nil conclusion and live in their own list.
type mrule struct {
	concl formula.Formula
	prems []formula.Formula
}

type prover struct {
	ctx        context.Context
	rules      []mrule
	falseRules []mrule
	fresh      int
	renames    int
}

func (p *prover) stopped() bool {
	return p.ctx != nil && p.ctx.Err() != nil
}

// assume clausifies f and compiles its contrapositives into the rule base.
// Formulas that do not clausify within the search limits are skipped.
func (p *prover) assume(f formula.Formula) {
	cls, ok := p.clausify(f, nil)
	if !ok {
		return
	}
	for _, cl := range cls {
		if len(cl) == 0 {
			p.falseRules = append(p.falseRules, mrule{})
			continue
		}
		allNegative := true
		for i, lit := range cl {
			if !isNegative(lit) {
				allNegative = false
			}
			prems := make([]formula.Formula, 0, len(cl)-1)
			for j, other := range cl {
				if j != i {
					prems = append(prems, complement(other))
				}
			}
			p.rules = append(p.rules, mrule{concl: cl[i], prems: prems})
		}
		if allNegative {
			prems := make([]formula.Formula, len(cl))
			for i, lit := range cl {
				prems[i] = complement(lit)
			}
			p.falseRules = append(p.falseRules, mrule{prems: prems})
		}
	}
}

// clausify normalizes f into a set of literal disjunctions. Universals open
// into rule variables, existentials into skolem terms over the rule
// variables in scope. The bool result is false when f falls outside the
// fragment the filter handles.
func (p *prover) clausify(f formula.Formula, scope []formula.Formula) ([][]formula.Formula, bool) {
	f = formula.Bool(formula.Albet(f))
	switch x := f.(type) {
	case *formula.Top:
		return nil, true
	case *formula.Bot:
		return [][]formula.Formula{{}}, true
	case *formula.All:
		v := p.freshVar()
		return p.clausify(formula.InstWith(v, x.F), append(scope, v))
	case *formula.Exi:
		return p.clausify(formula.InstWith(p.skolemTerm(scope), x.F), scope)
	case *formula.And:
		l, ok := p.clausify(x.F, scope)
		if !ok {
			return nil, false
		}
		r, ok := p.clausify(x.G, scope)
		if !ok {
			return nil, false
		}
		all := append(l, r...)
		if len(all) > maxClauses {
			return nil, false
		}
		return all, true
	case *formula.Or:
		l, ok := p.clausify(x.F, scope)
		if !ok {
			return nil, false
		}
		r, ok := p.clausify(x.G, scope)
		if !ok {
			return nil, false
		}
		if len(l)*len(r) > maxClauses {
			return nil, false
		}
		var all [][]formula.Formula
		for _, cl := range l {
			for _, cr := range r {
				merged := append(append([]formula.Formula{}, cl...), cr...)
				if len(merged) > maxClauseSize {
					return nil, false
				}
				all = append(all, merged)
			}
		}
		return all, true
	case *formula.Tag:
		return p.clausify(x.F, scope)
	}
	if formula.IsLiteral(f) {
		return [][]formula.Formula{{f}}, true
	}
	return nil, false
}

func (p *prover) freshVar() formula.Formula {
	p.fresh++
	return &formula.Var{Name: fmt.Sprintf("?%d", p.fresh)}
}

func (p *prover) skolemTerm(scope []formula.Formula) formula.Formula {
	p.fresh++
	return &formula.Trm{
		ID:   SkolemID,
		Name: fmt.Sprintf("tsk%d", p.fresh),
		Args: append([]formula.Formula{}, scope...),
	}
}

// solve enumerates the ways to close goal, by unifying with the complement
// of an ancestor or by extending with a rule, and calls k on each resulting
// substitution until k accepts one.
func (p *prover) solve(goal formula.Formula, ancestors []formula.Formula, depth int, s sub, k func(sub) bool) bool {
	if p.stopped() || depth <= 0 {
		return false
	}
	neg := complement(goal)
	for _, a := range ancestors {
		if s2, ok := unify(neg, a, s.clone()); ok {
			if k(s2) {
				return true
			}
		}
	}
	for _, r := range p.rules {
		rr := p.rename(r)
		s2, ok := unify(rr.concl, goal, s.clone())
		if !ok {
			continue
		}
		anc := append(append([]formula.Formula{}, ancestors...), goal)
		if p.solveAll(rr.prems, 0, anc, depth-1, s2, k) {
			return true
		}
		if p.stopped() {
			return false
		}
	}
	return false
}

func (p *prover) solveAll(goals []formula.Formula, i int, ancestors []formula.Formula, depth int, s sub, k func(sub) bool) bool {
	if i == len(goals) {
		return k(s)
	}
	return p.solve(s.resolve(goals[i]), ancestors, depth, s, func(s2 sub) bool {
		return p.solveAll(goals, i+1, ancestors, depth, s2, k)
	})
}

// rename gives the rule variables of r fresh names for one use.
func (p *prover) rename(r mrule) mrule {
	p.renames++
	suffix := fmt.Sprintf(".%d", p.renames)
	out := mrule{prems: make([]formula.Formula, len(r.prems))}
	if r.concl != nil {
		out.concl = renameVars(r.concl, suffix)
	}
	for i, g := range r.prems {
		out.prems[i] = renameVars(g, suffix)
	}
	return out
}

// renameVars appends suffix to every rule variable that is not already
// renamed. Variables of the ambient proof text are left alone.
func renameVars(f formula.Formula, suffix string) formula.Formula {
	if v, ok := f.(*formula.Var); ok {
		if isRuleVar(v.Name) && !strings.Contains(v.Name, ".") {
			return &formula.Var{Name: v.Name + suffix}
		}
		return v
	}
	return formula.MapF(func(g formula.Formula) formula.Formula {
		return renameVars(g, suffix)
	}, f)
}

func isRuleVar(name string) bool {
	return strings.HasPrefix(name, "?")
}

func isNegative(lit formula.Formula) bool {
	_, ok := formula.Strip(lit).(*formula.Not)
	return ok
}

func complement(lit formula.Formula) formula.Formula {
	if n, ok := formula.Strip(lit).(*formula.Not); ok {
		return n.F
	}
	return &formula.Not{F: lit}
}
