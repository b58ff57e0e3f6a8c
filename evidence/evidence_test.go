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

package evidence

import (
	"testing"

	"github.com/go-quicktest/qt"

	"forthel.org/go/formula"
)

// x carrying the annotation P(ThisT): everything P holds of x.
func annotated(extra ...formula.Formula) *formula.Var {
	info := append([]formula.Formula{
		&formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{&formula.ThisT{}}},
	}, extra...)
	return &formula.Var{Name: "x", Info: info}
}

func TestLiteralConfirmedByAnnotation(t *testing.T) {
	goal := &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{annotated()}}
	qt.Assert(t, qt.IsTrue(formula.IsTop(Reduce(goal))))
}

func TestLiteralRefutedByAnnotation(t *testing.T) {
	x := &formula.Var{Name: "x", Info: []formula.Formula{
		&formula.Not{F: &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{&formula.ThisT{}}}},
	}}
	goal := &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{x}}
	qt.Assert(t, qt.IsTrue(formula.IsBot(Reduce(goal))))
}

func TestNegatedLiteralAgainstPositiveAnnotation(t *testing.T) {
	goal := &formula.Not{F: &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{annotated()}}}
	qt.Assert(t, qt.IsTrue(formula.IsBot(Reduce(goal))))
}

func TestEqualityPassesThrough(t *testing.T) {
	eq := formula.Equality(annotated(), &formula.Var{Name: "y"})
	qt.Assert(t, qt.IsTrue(formula.Twins(Reduce(eq), eq)))
}

func TestConstantFolding(t *testing.T) {
	p := &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{annotated()}}
	q := &formula.Trm{ID: 2, Name: "Q", Args: []formula.Formula{&formula.Var{Name: "y"}}}

	// P(x) ∧ Q(y) reduces to Q(y) once P(x) is confirmed.
	got := Reduce(&formula.And{F: p, G: q})
	qt.Assert(t, qt.IsTrue(formula.Twins(got, q)))

	// P(x) ∨ Q(y) reduces to Top.
	qt.Assert(t, qt.IsTrue(formula.IsTop(Reduce(&formula.Or{F: p, G: q}))))
}

func TestReduceIsIdempotent(t *testing.T) {
	x := annotated()
	p := &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{x}}
	q := &formula.Trm{ID: 2, Name: "Q", Args: []formula.Formula{&formula.Var{Name: "y"}}}
	inputs := []formula.Formula{
		p,
		&formula.Not{F: p},
		&formula.And{F: p, G: q},
		&formula.Imp{F: q, G: p},
		&formula.All{Decl: "z", F: &formula.Or{F: q, G: &formula.Not{F: q}}},
		formula.Equality(x, &formula.Var{Name: "y"}),
	}
	for _, f := range inputs {
		once := Reduce(f)
		twice := Reduce(once)
		qt.Assert(t, qt.IsTrue(formula.Twins(twice, once)), qt.Commentf("input %s", formula.Sprint(f)))
	}
}

func TestReduceWithoutEvidenceIsAlbet(t *testing.T) {
	// Without annotations and equalities, reduction is plain deep
	// normalization.
	p := &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{&formula.Var{Name: "x"}}}
	q := &formula.Trm{ID: 2, Name: "Q", Args: []formula.Formula{&formula.Var{Name: "y"}}}
	in := &formula.Not{F: &formula.And{F: p, G: q}}
	want := &formula.Or{F: &formula.Not{F: p}, G: &formula.Not{F: q}}
	qt.Assert(t, qt.IsTrue(formula.Twins(Reduce(in), want)))
}
