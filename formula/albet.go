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

// Albet normalizes the head of f: a negation is pushed one level inward and
// implication shapes are opened up. Callers that need a deep normal form
// apply Albet at every level of their own recursion; the reducer does so.
//
// The name is traditional: alpha-beta normalization of polarity.
func Albet(f Formula) Formula {
	switch x := f.(type) {
	case *Iff:
		return &And{F: &Imp{F: x.F, G: x.G}, G: &Imp{F: x.G, G: x.F}}
	case *Imp:
		return &Or{F: &Not{F: x.F}, G: x.G}
	case *Tag:
		return &Tag{K: x.K, F: Albet(x.F)}
	case *Not:
		switch y := x.F.(type) {
		case *Not:
			return Albet(y.F)
		case *And:
			return &Or{F: &Not{F: y.F}, G: &Not{F: y.G}}
		case *Or:
			return &And{F: &Not{F: y.F}, G: &Not{F: y.G}}
		case *Imp:
			return &And{F: y.F, G: &Not{F: y.G}}
		case *Iff:
			return &Or{F: &Not{F: &Imp{F: y.F, G: y.G}}, G: &Not{F: &Imp{F: y.G, G: y.F}}}
		case *All:
			return &Exi{Decl: y.Decl, F: &Not{F: y.F}}
		case *Exi:
			return &All{Decl: y.Decl, F: &Not{F: y.F}}
		case *Tag:
			return &Tag{K: y.K, F: Albet(&Not{F: y.F})}
		case *Top:
			return &Bot{}
		case *Bot:
			return &Top{}
		}
		return x
	}
	return f
}

// Bool folds away trivial truth constants at the head of f:
//
//	F ∧ ⊤ = F    F ∨ ⊤ = ⊤    ⊤ ⇒ F = F    ¬⊤ = ⊥    ∀x.⊤ = ⊤
//
// and their duals. Only one level is folded; recursive passes fold bottom-up.
func Bool(f Formula) Formula {
	switch x := f.(type) {
	case *All:
		if isConst(x.F) {
			return x.F
		}
	case *Exi:
		if isConst(x.F) {
			return x.F
		}
	case *Not:
		if IsTop(x.F) {
			return &Bot{}
		}
		if IsBot(x.F) {
			return &Top{}
		}
	case *And:
		switch {
		case IsBot(x.F) || IsBot(x.G):
			return &Bot{}
		case IsTop(x.F):
			return x.G
		case IsTop(x.G):
			return x.F
		}
	case *Or:
		switch {
		case IsTop(x.F) || IsTop(x.G):
			return &Top{}
		case IsBot(x.F):
			return x.G
		case IsBot(x.G):
			return x.F
		}
	case *Imp:
		switch {
		case IsTop(x.F):
			return x.G
		case IsBot(x.F) || IsTop(x.G):
			return &Top{}
		case IsBot(x.G):
			return &Not{F: x.F}
		}
	case *Iff:
		switch {
		case IsTop(x.F):
			return x.G
		case IsTop(x.G):
			return x.F
		case IsBot(x.F):
			return &Not{F: x.G}
		case IsBot(x.G):
			return &Not{F: x.F}
		}
	case *Tag:
		if isConst(x.F) {
			return x.F
		}
	}
	return f
}

func isConst(f Formula) bool {
	return IsTop(f) || IsBot(f)
}
