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

// Package evidence implements the evidence reducer: literal simplification
// against the facts annotated on term occurrences.
//
// Every term occurrence accumulates the formulas that had to hold for it to
// be well-formed at its position, with ThisT as a placeholder for the
// occurrence. Instantiating those annotations with the actual argument gives
// a cheap decision procedure for literals that follow from pure subterm
// evidence.
package evidence

import "forthel.org/go/formula"

// Reduce simplifies f against the evidence annotations of its subterms. It
// is pure and idempotent up to albet normalization: a literal confirmed by
// an annotation becomes Top, a literal refuted by one becomes Bot, and
// everything else is rebuilt with the constants folded away.
//
// Equality atoms pass through untouched; equality has its own treatment
// downstream.
func Reduce(f formula.Formula) formula.Formula {
	f = formula.Albet(f)
	if formula.IsLiteral(f) {
		return reduceLiteral(f)
	}
	return formula.Bool(formula.MapF(Reduce, f))
}

func reduceLiteral(lit formula.Formula) formula.Formula {
	atom, ok := formula.LtAtomic(lit)
	if !ok || atom.ID == formula.EqualityID {
		return lit
	}
	neg := formula.Albet(&formula.Not{F: lit})
	for _, arg := range atom.Args {
		for _, a := range formula.InfoOf(arg) {
			inst := formula.Replace(arg, &formula.ThisT{}, a)
			if formula.LtTwins(inst, lit) {
				return &formula.Top{}
			}
			if formula.LtTwins(inst, neg) {
				return &formula.Bot{}
			}
		}
	}
	return lit
}
