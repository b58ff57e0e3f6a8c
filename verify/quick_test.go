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

package verify

import (
	"context"
	"testing"

	"github.com/go-quicktest/qt"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

func TestLaunchReasoningObviousGoal(t *testing.T) {
	mkLow := func(f formula.Formula) fact.Fact {
		c := fact.NewFact(f, fact.Assumption, "")
		c.LowLevel = true
		return c
	}
	imp := &formula.All{Decl: "x", F: &formula.Imp{
		F: atom("P", pID, &formula.Ind{}),
		G: atom("Q", qID, &formula.Ind{}),
	}}
	a := atom("a", aID)
	v := &VState{
		Thesis:  thesis(atom("Q", qID, a)),
		Context: []fact.Fact{mkLow(atom("P", pID, a)), mkLow(imp)},
	}
	qt.Assert(t, qt.IsTrue(LaunchReasoning(context.Background(), v, &RState{})))
}

func TestLaunchReasoningRespectsHostCancellation(t *testing.T) {
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := &VState{Thesis: thesis(atom("Q", qID))}
	qt.Assert(t, qt.IsFalse(LaunchReasoning(cctx, v, &RState{})))
}

func TestLaunchReasoningIgnoresTopLevelContext(t *testing.T) {
	// Only the low-level prefix reaches the filter.
	top := fact.NewFact(atom("Q", qID), fact.Lemma, "lem")
	v := &VState{Thesis: thesis(atom("Q", qID)), Context: []fact.Fact{top}}
	qt.Assert(t, qt.IsFalse(LaunchReasoning(context.Background(), v, &RState{})))
}
