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

package meson

import "forthel.org/go/formula"

// A sub is a triangular substitution: rule variable names bound to terms
// that may themselves contain bound variables. Lookup chases bindings.
type sub map[string]formula.Formula

func (s sub) clone() sub {
	out := make(sub, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// walk chases variable bindings at the head of f.
func (s sub) walk(f formula.Formula) formula.Formula {
	for {
		v, ok := formula.Strip(f).(*formula.Var)
		if !ok || !isRuleVar(v.Name) {
			return formula.Strip(f)
		}
		t, bound := s[v.Name]
		if !bound {
			return v
		}
		f = t
	}
}

// resolve applies s deeply to f. The occurs check during unification
// guarantees termination.
func (s sub) resolve(f formula.Formula) formula.Formula {
	f = s.walk(f)
	return formula.MapF(s.resolve, f)
}

// occurs reports whether the rule variable v occurs in f under s.
func (s sub) occurs(v string, f formula.Formula) bool {
	f = s.walk(f)
	if x, ok := f.(*formula.Var); ok {
		return isRuleVar(x.Name) && x.Name == v
	}
	found := false
	formula.FoldF(func(g formula.Formula) {
		if !found && s.occurs(v, g) {
			found = true
		}
	}, f)
	return found
}

// unify extends s to make the literals or terms a and b equal. Only rule
// variables are unifiable; the variables of the ambient proof text behave
// as constants. Tags and evidence are ignored.
func unify(a, b formula.Formula, s sub) (sub, bool) {
	a, b = s.walk(a), s.walk(b)
	if av, ok := a.(*formula.Var); ok && isRuleVar(av.Name) {
		return s.bind(av.Name, b)
	}
	if bv, ok := b.(*formula.Var); ok && isRuleVar(bv.Name) {
		return s.bind(bv.Name, a)
	}
	switch x := a.(type) {
	case *formula.Var:
		y, ok := b.(*formula.Var)
		if ok && x.Name == y.Name {
			return s, true
		}
	case *formula.Trm:
		y, ok := b.(*formula.Trm)
		if !ok || x.ID != y.ID || len(x.Args) != len(y.Args) {
			return nil, false
		}
		if x.ID == SkolemID && x.Name != y.Name {
			return nil, false
		}
		for i := range x.Args {
			var ok2 bool
			s, ok2 = unify(x.Args[i], y.Args[i], s)
			if !ok2 {
				return nil, false
			}
		}
		return s, true
	case *formula.Not:
		y, ok := b.(*formula.Not)
		if ok {
			return unify(x.F, y.F, s)
		}
	case *formula.Top:
		if formula.IsTop(b) {
			return s, true
		}
	case *formula.Bot:
		if formula.IsBot(b) {
			return s, true
		}
	case *formula.Ind:
		y, ok := b.(*formula.Ind)
		if ok && x.Depth == y.Depth {
			return s, true
		}
	}
	return nil, false
}

func (s sub) bind(v string, t formula.Formula) (sub, bool) {
	if x, ok := t.(*formula.Var); ok && x.Name == v {
		return s, true
	}
	if s.occurs(v, t) {
		return nil, false
	}
	s[v] = t
	return s, true
}
