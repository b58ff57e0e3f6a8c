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

// Inst opens the body f of a binder, replacing the bound occurrences with a
// free variable named v. The argument is the body, not the quantifier.
func Inst(v string, f Formula) Formula {
	return InstWith(&Var{Name: v}, f)
}

// InstWith opens the body f of a binder, replacing the bound occurrences
// with the term t.
func InstWith(t Formula, f Formula) Formula {
	return instAt(t, 0, f)
}

func instAt(t Formula, d int, f Formula) Formula {
	switch x := f.(type) {
	case *Ind:
		if x.Depth == d {
			return t
		}
		return x
	case *All:
		return &All{Decl: x.Decl, F: instAt(Incr(t), d+1, x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: instAt(Incr(t), d+1, x.F)}
	}
	return MapF(func(g Formula) Formula { return instAt(t, d, g) }, f)
}

// Bind abstracts the free variable v in f, turning its occurrences into
// bound occurrences of an enclosing binder the caller is about to wrap
// around the result.
func Bind(v string, f Formula) Formula {
	return bindAt(v, 0, f)
}

func bindAt(v string, d int, f Formula) Formula {
	switch x := f.(type) {
	case *Var:
		if x.Name == v {
			return &Ind{Depth: d}
		}
		return x
	case *All:
		return &All{Decl: x.Decl, F: bindAt(v, d+1, x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: bindAt(v, d+1, x.F)}
	}
	return MapF(func(g Formula) Formula { return bindAt(v, d, g) }, f)
}

// Subst replaces the free variable v in f by the term t.
func Subst(t Formula, v string, f Formula) Formula {
	switch x := f.(type) {
	case *Var:
		if x.Name == v {
			return t
		}
		return x
	case *All:
		return &All{Decl: x.Decl, F: Subst(Incr(t), v, x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: Subst(Incr(t), v, x.F)}
	}
	return MapF(func(g Formula) Formula { return Subst(t, v, g) }, f)
}

// Replace substitutes to for every occurrence of from in f. Occurrences are
// recognized up to Twins, so tags and evidence on the occurrence do not
// prevent replacement.
func Replace(to, from, f Formula) Formula {
	if Twins(from, f) {
		return to
	}
	return MapF(func(g Formula) Formula { return Replace(to, from, g) }, f)
}

// Incr lifts the free bound-variable indices of f by one, for pushing f
// under one additional binder.
func Incr(f Formula) Formula {
	return incrAt(0, f)
}

func incrAt(d int, f Formula) Formula {
	switch x := f.(type) {
	case *Ind:
		if x.Depth >= d {
			return &Ind{Depth: x.Depth + 1}
		}
		return x
	case *All:
		return &All{Decl: x.Decl, F: incrAt(d+1, x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: incrAt(d+1, x.F)}
	}
	return MapF(func(g Formula) Formula { return incrAt(d, g) }, f)
}

// Occurs reports whether a subformula of f is Twins with needle.
func Occurs(needle, f Formula) bool {
	if Twins(needle, f) {
		return true
	}
	found := false
	FoldF(func(g Formula) {
		if !found && Occurs(needle, g) {
			found = true
		}
	}, f)
	return found
}
