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

// Package unfold implements the conservative unfolder: a polarity-driven,
// one-shot expansion of definitions, extensionalities and evaluations on the
// low-level prefix of a reasoning task.
//
// Every expanded site is wrapped in a GenericMark tag on the emitted
// formula, so no site is expanded twice, neither within a pass nor across
// the recursion rounds of the goal driver.
package unfold

import (
	"errors"

	"forthel.org/go/evidence"
	"forthel.org/go/fact"
	"forthel.org/go/formula"
	"forthel.org/go/instr"
)

var (
	// ErrDisabled reports that unfolding is switched off entirely.
	ErrDisabled = errors.New("unfolding is disabled")

	// ErrNoProgress reports that a pass performed no expansion.
	ErrNoProgress = errors.New("nothing to unfold")
)

// A Logf receives unfolding diagnostics. A nil Logf discards them.
type Logf func(format string, args ...any)

// Unfold expands the low-level prefix of task once and returns the
// refreshed task together with the number of expansions performed. The
// top-level suffix passes through untouched. A pass that cannot run or that
// expands nothing fails with ErrDisabled or ErrNoProgress so the caller can
// fall through to a sibling alternative.
func Unfold(task []fact.Fact, defs fact.Definitions, evals *fact.Evals, is instr.Set, logf Logf) ([]fact.Fact, int, error) {
	general := is.Bool(instr.Unfold, true)
	generalSF := is.Bool(instr.Unfoldsf, true)
	if !general && !generalSF {
		return nil, 0, ErrDisabled
	}
	low, top := fact.LowPrefix(task)

	st := &state{
		defs:  defs,
		evals: evals,
		defOn: general && is.Bool(instr.Unfoldlow, true),
		sfOn:  generalSF && is.Bool(instr.Unfoldlowsf, false),
		logf:  logf,
	}
	out := make([]fact.Fact, 0, len(task))
	for _, c := range low {
		out = append(out, st.conservative(c))
	}
	if st.count == 0 {
		st.log("nothing to unfold")
		return nil, 0, ErrNoProgress
	}
	return append(out, top...), st.count, nil
}

type state struct {
	defs  fact.Definitions
	evals *fact.Evals

	defOn bool // definitional expansion
	sfOn  bool // extensionality and evaluation expansion

	count int
	logf  Logf
}

func (st *state) log(format string, args ...any) {
	if st.logf != nil {
		st.logf(format, args...)
	}
}

// conservative unfolds one context entry. Local definitions only scope a
// name and are passed through.
func (st *state) conservative(c fact.Fact) fact.Fact {
	if c.Kind == fact.LowDefinition {
		return c
	}
	before := st.count
	sign := true
	f := st.fill(formula.Round{Sign: &sign}, c.Form)
	if st.count == before {
		return c
	}
	st.log("unfold: %s", formula.Sprint(f))
	return c.SetForm(f)
}

// fill walks a formula, expanding atoms under their polarity. Marked
// subtrees are left alone, and bi-implications are opened into their two
// implications first so that every position has a defined polarity.
func (st *state) fill(r formula.Round, f formula.Formula) formula.Formula {
	if tg, ok := f.(*formula.Tag); ok && tg.K == formula.GenericMark {
		return f
	}
	if trm, ok := f.(*formula.Trm); ok {
		if r.Sign == nil {
			return f
		}
		return evidence.Reduce(st.atomic(*r.Sign, trm))
	}
	if iff, ok := f.(*formula.Iff); ok {
		both := &formula.And{
			F: &formula.Imp{F: iff.F, G: iff.G},
			G: &formula.Imp{F: iff.G, G: iff.F},
		}
		return st.fill(r, both)
	}
	return formula.RoundF(st.fill, r, f)
}

// atomic expands one atom. The result is the marked atom with the atom's
// own local properties folded in by conjunction or disjunction, and the
// properties of its subterms folded in by conjunction or implication,
// depending on polarity.
func (st *state) atomic(sign bool, f *formula.Trm) formula.Formula {
	acc := formula.Formula(&formula.Tag{K: formula.GenericMark, F: f})

	local := st.localProps(sign, f)
	for i := len(local) - 1; i >= 0; i-- {
		if sign {
			acc = &formula.And{F: local[i], G: acc}
		} else {
			acc = &formula.Or{F: local[i], G: acc}
		}
	}

	sub := st.subtermProps(sign, f)
	for i := len(sub) - 1; i >= 0; i-- {
		if sign {
			acc = &formula.And{F: sub[i], G: acc}
		} else {
			acc = &formula.Imp{F: sub[i], G: acc}
		}
	}
	return acc
}

// localProps collects the local properties of the term or atom t: for an
// equation, the definitional properties of either side instantiated with
// the other plus the applicable extensionalities; for applications and
// membership atoms, the evaluation rewrites; for anything else, the
// definitional properties of t instantiated with itself.
func (st *state) localProps(sign bool, t *formula.Trm) []formula.Formula {
	switch {
	case t.ID == formula.EqualityID && len(t.Args) == 2:
		l, r := t.Args[0], t.Args[1]
		var out []formula.Formula
		out = append(out, st.defProps(sign, l, r)...)
		out = append(out, st.defProps(sign, r, l)...)
		out = append(out, st.extensionality(sign, l, r)...)
		return out
	case t.ID == formula.AppID || t.ID == formula.ElemID:
		return st.evalProps(sign, t)
	default:
		return st.defProps(sign, t, t)
	}
}

// subtermProps collects the local properties of every proper subterm of the
// atom f. Marked subtrees are not entered.
func (st *state) subtermProps(sign bool, f *formula.Trm) []formula.Formula {
	var out []formula.Formula
	var dive func(g formula.Formula)
	dive = func(g formula.Formula) {
		if tg, ok := g.(*formula.Tag); ok && tg.K == formula.GenericMark {
			return
		}
		tr, ok := formula.Strip(g).(*formula.Trm)
		if !ok {
			return
		}
		out = append(out, st.localProps(sign, tr)...)
		for _, a := range tr.Args {
			dive(a)
		}
	}
	for _, a := range f.Args {
		dive(a)
	}
	return out
}

// defProps yields the definitional property of f instantiated at g, if f
// has a definition entry whose guards hold by evidence. Signature
// extensions expand in positive positions only.
func (st *state) defProps(sign bool, f, g formula.Formula) []formula.Formula {
	if !st.defOn {
		return nil
	}
	tr, ok := formula.Strip(f).(*formula.Trm)
	if !ok {
		return nil
	}
	def, ok := st.defs[tr.ID]
	if !ok {
		return nil
	}
	if !sign && def.Kind != fact.IsDefinition {
		return nil
	}
	sb, ok := formula.Match(def.Term, tr)
	if !ok {
		return nil
	}
	for _, guard := range def.Guards {
		if !formula.IsTop(evidence.Reduce(sb.Apply(guard))) {
			return nil
		}
	}
	marked := &formula.Tag{K: formula.GenericMark, F: g}
	prop := formula.Replace(marked, &formula.ThisT{}, sb.Apply(def.Formula))
	if formula.IsTop(constFold(prop)) {
		return nil
	}
	st.count++
	return []formula.Formula{prop}
}

// constFold folds truth constants bottom-up. Properties that collapse to
// Top this way carry no information and are not worth emitting.
func constFold(f formula.Formula) formula.Formula {
	return formula.Bool(formula.MapF(constFold, f))
}

// evalProps yields the evaluation rewrite of t: the first indexed candidate
// that matches t and whose instantiated conditions are all trivial by
// evidence contributes its branch for the current polarity.
func (st *state) evalProps(sign bool, t *formula.Trm) []formula.Formula {
	if !st.sfOn {
		return nil
	}
candidates:
	for _, ev := range st.evals.Lookup(t) {
		sb, ok := formula.Match(ev.Term, t)
		if !ok {
			continue
		}
		for _, cond := range ev.Conditions {
			if !formula.IsTop(evidence.Reduce(sb.Apply(cond))) {
				continue candidates
			}
		}
		branch := ev.Positives
		if !sign {
			branch = ev.Negatives
		}
		marked := &formula.Tag{K: formula.GenericMark, F: t}
		prop := formula.Replace(marked, &formula.ThisT{}, sb.Apply(branch))
		st.count++
		return []formula.Formula{prop}
	}
	return nil
}

// extensionality yields the set and function extensionality properties for
// an equation between set- or function-typed terms.
func (st *state) extensionality(sign bool, l, r formula.Formula) []formula.Formula {
	if !st.sfOn {
		return nil
	}
	var out []formula.Formula
	if formula.HasInfoAtom(l, formula.SetID) && formula.HasInfoAtom(r, formula.SetID) {
		out = append(out, setExtensionality(l, r))
		st.count++
	}
	if formula.HasInfoAtom(l, formula.FunctionID) && formula.HasInfoAtom(r, formula.FunctionID) {
		out = append(out, funExtensionality(sign, l, r))
		st.count++
	}
	return out
}

// setExtensionality is ∀v. v ∈ l ⇔ v ∈ r.
func setExtensionality(l, r formula.Formula) formula.Formula {
	v := &formula.Ind{Depth: 0}
	return &formula.All{F: &formula.Iff{
		F: formula.Elem(v, formula.Incr(l)),
		G: formula.Elem(v, formula.Incr(r)),
	}}
}

// funExtensionality is (dom l = dom r) ∧ ∀v. v ∈ dom l ⇒ l(v) = r(v). In
// negative positions the domain equation takes its element-wise form.
func funExtensionality(sign bool, l, r formula.Formula) formula.Formula {
	var domains formula.Formula
	if sign {
		domains = formula.Equality(formula.Dom(l), formula.Dom(r))
	} else {
		v := &formula.Ind{Depth: 0}
		domains = &formula.All{F: &formula.Iff{
			F: formula.Elem(v, formula.Dom(formula.Incr(l))),
			G: formula.Elem(v, formula.Dom(formula.Incr(r))),
		}}
	}
	v := &formula.Ind{Depth: 0}
	li, ri := formula.Incr(l), formula.Incr(r)
	pointwise := &formula.All{F: &formula.Imp{
		F: formula.Elem(v, formula.Dom(li)),
		G: formula.Equality(formula.App(li, v), formula.App(ri, v)),
	}}
	return &formula.And{F: domains, G: pointwise}
}
