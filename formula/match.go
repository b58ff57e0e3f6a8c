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

// Twins reports whether a and b are syntactically equal, ignoring tags and
// evidence annotations. Bound occurrences are equal when their depths are.
func Twins(a, b Formula) bool {
	a, b = Strip(a), Strip(b)
	switch x := a.(type) {
	case *Trm:
		y, ok := b.(*Trm)
		if !ok || x.ID != y.ID || len(x.Args) != len(y.Args) {
			return false
		}
		// User symbols are keyed by identifier; names only disambiguate
		// the shared built-in range.
		if x.ID < 0 && x.Name != y.Name {
			return false
		}
		for i := range x.Args {
			if !Twins(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Var:
		y, ok := b.(*Var)
		return ok && x.Name == y.Name
	case *Ind:
		y, ok := b.(*Ind)
		return ok && x.Depth == y.Depth
	case *Top:
		return IsTop(b)
	case *Bot:
		return IsBot(b)
	case *ThisT:
		return IsThisT(b)
	case *Not:
		y, ok := b.(*Not)
		return ok && Twins(x.F, y.F)
	case *And:
		y, ok := b.(*And)
		return ok && Twins(x.F, y.F) && Twins(x.G, y.G)
	case *Or:
		y, ok := b.(*Or)
		return ok && Twins(x.F, y.F) && Twins(x.G, y.G)
	case *Imp:
		y, ok := b.(*Imp)
		return ok && Twins(x.F, y.F) && Twins(x.G, y.G)
	case *Iff:
		y, ok := b.(*Iff)
		return ok && Twins(x.F, y.F) && Twins(x.G, y.G)
	case *All:
		y, ok := b.(*All)
		return ok && Twins(x.F, y.F)
	case *Exi:
		y, ok := b.(*Exi)
		return ok && Twins(x.F, y.F)
	}
	return false
}

// LtTwins reports whether the literals a and b are equivalent: equal atoms
// under an equal number of negations, tags and evidence ignored.
func LtTwins(a, b Formula) bool {
	a, b = Strip(a), Strip(b)
	na, aok := a.(*Not)
	nb, bok := b.(*Not)
	switch {
	case aok && bok:
		return LtTwins(na.F, nb.F)
	case aok || bok:
		return false
	}
	at, aok := a.(*Trm)
	bt, bok := b.(*Trm)
	return aok && bok && Twins(at, bt)
}

// A Sub is the result of a successful match: a binding of pattern variable
// names to target subterms.
type Sub map[string]Formula

// Apply substitutes the bindings of s into f in a single pass. Terms bound
// by a match come from the target and are not substituted into again.
func (s Sub) Apply(f Formula) Formula {
	if x, ok := f.(*Var); ok {
		if t, ok := s[x.Name]; ok {
			return t
		}
		return x
	}
	return MapF(s.Apply, f)
}

// Match matches the pattern against the target one-sidedly: free variables
// of the pattern bind to subterms of the target, and a repeated variable
// must bind to Twins-equal terms. Tags and evidence are ignored on both
// sides. It reports whether the match succeeded.
func Match(pattern, target Formula) (Sub, bool) {
	s := Sub{}
	if !match(pattern, target, s) {
		return nil, false
	}
	return s, true
}

func match(p, t Formula, s Sub) bool {
	p, t = Strip(p), Strip(t)
	switch x := p.(type) {
	case *Var:
		if prev, ok := s[x.Name]; ok {
			return Twins(prev, t)
		}
		s[x.Name] = t
		return true
	case *Trm:
		y, ok := t.(*Trm)
		if !ok || x.ID != y.ID || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !match(x.Args[i], y.Args[i], s) {
				return false
			}
		}
		return true
	case *Ind:
		y, ok := t.(*Ind)
		return ok && x.Depth == y.Depth
	case *Top:
		return IsTop(t)
	case *Bot:
		return IsBot(t)
	case *ThisT:
		return IsThisT(t)
	}
	return false
}
