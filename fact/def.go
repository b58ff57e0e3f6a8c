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

package fact

import "forthel.org/go/formula"

// A DefKind distinguishes proper definitions from signature extensions.
// Signature extensions are axiomatic symbol introductions and may be
// expanded in positive positions only.
type DefKind uint8

const (
	IsDefinition DefKind = iota
	IsSignature
)

// A Def is the unfolding entry of a defined symbol.
type Def struct {
	// Term is the defined head pattern, with free variables as the
	// pattern's parameters.
	Term formula.Formula

	// Formula is the definiens, with ThisT marking the defined occurrence.
	Formula formula.Formula

	// Guards are the conditions under which the definition applies. A
	// conservative unfolding requires them to hold by evidence.
	Guards []formula.Formula

	// Kind tells definitions from signature extensions.
	Kind DefKind

	// Evidence lists the annotations the defined symbol contributes to
	// occurrences of its head.
	Evidence []formula.Formula

	// GuardGroups partitions the guards into the type-likes of each
	// argument position.
	GuardGroups [][]formula.Formula
}

// Definitions maps symbol identifiers to their unfolding entries.
type Definitions map[int]Def

// An Evaluation is a case-split rewrite for a term shape: when Term matches
// and every instantiated condition holds by evidence, the occurrence may be
// replaced by the positive or the negative branch, depending on polarity.
type Evaluation struct {
	Term       formula.Formula
	Conditions []formula.Formula
	Positives  formula.Formula
	Negatives  formula.Formula
}

// Evals indexes evaluations by the head symbol of their term, a flat
// rendering of the evaluation discrimination tree: candidates share the head
// symbol and are discriminated by matching.
type Evals struct {
	byHead map[int][]Evaluation
}

// NewEvals builds the index over the given evaluations. Evaluations whose
// term is not headed by a symbol are ignored.
func NewEvals(evs []Evaluation) *Evals {
	e := &Evals{byHead: make(map[int][]Evaluation)}
	for _, ev := range evs {
		t, ok := formula.Strip(ev.Term).(*formula.Trm)
		if !ok {
			continue
		}
		e.byHead[t.ID] = append(e.byHead[t.ID], ev)
	}
	return e
}

// Lookup returns the evaluation candidates for the term t.
func (e *Evals) Lookup(t formula.Formula) []Evaluation {
	if e == nil {
		return nil
	}
	tr, ok := formula.Strip(t).(*formula.Trm)
	if !ok {
		return nil
	}
	return e.byHead[tr.ID]
}
