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

// MapF applies fn to every direct child formula of f, including term
// arguments, and rebuilds the node. Evidence annotations are not children.
func MapF(fn func(Formula) Formula, f Formula) Formula {
	switch x := f.(type) {
	case *Not:
		return &Not{F: fn(x.F)}
	case *And:
		return &And{F: fn(x.F), G: fn(x.G)}
	case *Or:
		return &Or{F: fn(x.F), G: fn(x.G)}
	case *Imp:
		return &Imp{F: fn(x.F), G: fn(x.G)}
	case *Iff:
		return &Iff{F: fn(x.F), G: fn(x.G)}
	case *All:
		return &All{Decl: x.Decl, F: fn(x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: fn(x.F)}
	case *Tag:
		return &Tag{K: x.K, F: fn(x.F)}
	case *Trm:
		args := make([]Formula, len(x.Args))
		for i, a := range x.Args {
			args[i] = fn(a)
		}
		return &Trm{ID: x.ID, Name: x.Name, Args: args, Info: x.Info}
	}
	return f
}

// FoldF calls fn on every direct child formula of f, including term
// arguments.
func FoldF(fn func(Formula), f Formula) {
	switch x := f.(type) {
	case *Not:
		fn(x.F)
	case *And:
		fn(x.F)
		fn(x.G)
	case *Or:
		fn(x.F)
		fn(x.G)
	case *Imp:
		fn(x.F)
		fn(x.G)
	case *Iff:
		fn(x.F)
		fn(x.G)
	case *All:
		fn(x.F)
	case *Exi:
		fn(x.F)
	case *Tag:
		fn(x.F)
	case *Trm:
		for _, a := range x.Args {
			fn(a)
		}
	}
}

// A Round carries the position-dependent state of a binder-aware traversal:
// the formulas assumed at the position, the polarity of the position, and
// the number of binders crossed. Sign is nil where polarity is undefined.
type Round struct {
	Local []Formula
	Sign  *bool
	Depth int
}

func (r Round) deeper() Round {
	r.Depth++
	return r
}

func (r Round) flipped() Round {
	if r.Sign != nil {
		s := !*r.Sign
		r.Sign = &s
	}
	return r
}

func (r Round) erased() Round {
	r.Sign = nil
	return r
}

func (r Round) assume(f Formula) Round {
	local := make([]Formula, 0, len(r.Local)+1)
	local = append(local, f)
	local = append(local, r.Local...)
	r.Local = local
	return r
}

// RoundF rebuilds f by applying fn to each direct child under the updated
// traversal state: polarity flips under negation and on the antecedent of an
// implication, is erased on bi-implication branches, and depth grows under
// binders. The second operand of a conjunction or implication assumes the
// first; the second operand of a disjunction assumes the first's negation.
func RoundF(fn func(Round, Formula) Formula, r Round, f Formula) Formula {
	switch x := f.(type) {
	case *All:
		return &All{Decl: x.Decl, F: fn(r.deeper(), x.F)}
	case *Exi:
		return &Exi{Decl: x.Decl, F: fn(r.deeper(), x.F)}
	case *Iff:
		return &Iff{F: fn(r.erased(), x.F), G: fn(r.erased(), x.G)}
	case *Imp:
		return &Imp{F: fn(r.flipped(), x.F), G: fn(r.assume(x.F), x.G)}
	case *Not:
		return &Not{F: fn(r.flipped(), x.F)}
	case *And:
		return &And{F: fn(r, x.F), G: fn(r.assume(x.F), x.G)}
	case *Or:
		return &Or{F: fn(r, x.F), G: fn(r.assume(Albet(&Not{F: x.F})), x.G)}
	}
	return MapF(func(g Formula) Formula { return fn(r, g) }, f)
}
