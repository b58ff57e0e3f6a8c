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

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

func p(arg formula.Formula) *formula.Trm {
	return &formula.Trm{ID: 1, Name: "P", Args: []formula.Formula{arg}}
}

func q(arg formula.Formula) *formula.Trm {
	return &formula.Trm{ID: 2, Name: "Q", Args: []formula.Formula{arg}}
}

func rr(arg formula.Formula) *formula.Trm {
	return &formula.Trm{ID: 3, Name: "R", Args: []formula.Formula{arg}}
}

func a() *formula.Trm { return &formula.Trm{ID: 4, Name: "a"} }

func low(f formula.Formula) fact.Fact {
	c := fact.NewFact(f, fact.Hypothesis, "")
	c.LowLevel = true
	return c
}

// ∀x. P(x) ⇒ Q(x)
func pImpQ() formula.Formula {
	return &formula.All{Decl: "x", F: &formula.Imp{F: p(&formula.Ind{}), G: q(&formula.Ind{})}}
}

func TestFact(t *testing.T) {
	ctx := []fact.Fact{low(q(a()))}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, q(a()))))
}

func TestModusPonens(t *testing.T) {
	ctx := []fact.Fact{low(p(a())), low(pImpQ())}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, q(a()))))
}

func TestChain(t *testing.T) {
	qImpR := &formula.All{Decl: "x", F: &formula.Imp{F: q(&formula.Ind{}), G: rr(&formula.Ind{})}}
	ctx := []fact.Fact{low(p(a())), low(pImpQ()), low(qImpR)}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, rr(a()))))
}

func TestUnprovable(t *testing.T) {
	ctx := []fact.Fact{low(p(a())), low(pImpQ())}
	qt.Assert(t, qt.IsFalse(Prove(context.Background(), 0, ctx, nil, nil, rr(a()))))
}

func TestContradictoryContext(t *testing.T) {
	ctx := []fact.Fact{low(p(a())), low(&formula.Not{F: p(a())})}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, rr(a()))))
}

func TestPreparedRules(t *testing.T) {
	// The prepared rule Q(?x) ⇐ P(?x), as the walker would compile it.
	x := &formula.Var{Name: "?x"}
	pos := []fact.Rule{{Conclusion: q(x), Premises: []formula.Formula{p(x)}}}
	ctx := []fact.Fact{low(p(a()))}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, pos, nil, q(a()))))
}

func TestExistentialGoal(t *testing.T) {
	ctx := []fact.Fact{low(p(a()))}
	goal := &formula.Exi{Decl: "x", F: p(&formula.Ind{})}
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, goal)))
}

func TestCancellation(t *testing.T) {
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx := []fact.Fact{low(p(a())), low(pImpQ())}
	qt.Assert(t, qt.IsFalse(Prove(cctx, 0, ctx, nil, nil, q(a()))))
}

func TestVariablesOfTheTextAreConstants(t *testing.T) {
	// A free variable of the proof text must not unify with a distinct
	// constant.
	y := &formula.Var{Name: "y"}
	ctx := []fact.Fact{low(p(y))}
	qt.Assert(t, qt.IsFalse(Prove(context.Background(), 0, ctx, nil, nil, p(a()))))
	qt.Assert(t, qt.IsTrue(Prove(context.Background(), 0, ctx, nil, nil, p(y))))
}
