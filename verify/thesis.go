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
	"forthel.org/go/evidence"
	"forthel.org/go/fact"
	"forthel.org/go/formula"
	"forthel.org/go/instr"
	"forthel.org/go/internal/unfold"
)

// ProveThesis verifies the thesis of v, recording counters on r. The thesis
// is split into goals, and each goal is discharged in order: trivially by
// evidence, by the external prover, or by unfolding the task once and
// recursing with one round less. Failure of any goal fails the thesis and
// latches the Failed flag.
func ProveThesis(v *VState, r *RState) bool {
	depth := v.Instructions.Int(instr.Depthlimit, 3)
	if depth <= 0 {
		r.Failed = true
		return false
	}
	w := v.WithContext(filterContext(v, r))
	ok := sequenceGoals(w, r, depth, 1, splitGoal(w.Thesis.Form))
	if !ok {
		r.Failed = true
	}
	return ok
}

// splitGoal decomposes a goal after albet normalization: universals carry
// over each sub-goal, the second conjunct of a conjunction is proved under
// the first, and the left disjunct becomes a standing side-hypothesis for
// the sub-goals of the right.
func splitGoal(f formula.Formula) []formula.Formula {
	f = formula.Albet(f)
	switch x := f.(type) {
	case *formula.All:
		var out []formula.Formula
		for _, g := range splitGoal(x.F) {
			out = append(out, &formula.All{Decl: x.Decl, F: g})
		}
		return out
	case *formula.And:
		return append(splitGoal(x.F), splitGoal(&formula.Imp{F: x.F, G: x.G})...)
	case *formula.Or:
		var out []formula.Formula
		for _, g := range splitGoal(x.G) {
			out = append(out, &formula.Or{F: x.F, G: g})
		}
		return out
	}
	return []formula.Formula{f}
}

// sequenceGoals discharges the goals left to right. Later goals see earlier
// ones only through the shape the split gave them; the context is fixed at
// the point of the split.
func sequenceGoals(v *VState, r *RState, depth, iteration int, goals []formula.Formula) bool {
	printReason := v.Instructions.Bool(instr.Printreason, false)
	for _, goal := range goals {
		r.Counts.Goals++
		reduced := evidence.Reduce(goal)
		if formula.IsTop(reduced) {
			r.Counts.TrivialGoals++
			if printReason {
				r.Logf(v.Branch, "trivial: %s", formula.Sprint(goal))
			}
			continue
		}
		if launchProver(v.WithGoal(goal), r, iteration) {
			continue
		}
		if diveIn(v.WithGoal(goal), r, depth, iteration) {
			continue
		}
		r.Counts.FailedGoals++
		return false
	}
	return true
}

// diveIn is the recursive alternative: unfold the task once and retry the
// refreshed goal with one reasoning round less.
func diveIn(v *VState, r *RState, depth, iteration int) bool {
	if depth == 1 {
		if v.Instructions.Bool(instr.Printreason, false) {
			r.Logf(v.Branch, "reasoning depth exceeded")
		}
		return false
	}

	task := make([]fact.Fact, 0, len(v.Context)+1)
	task = append(task, v.Thesis.SetForm(&formula.Not{F: v.Thesis.Form}))
	task = append(task, v.Context...)

	var logf unfold.Logf
	if v.Instructions.Bool(instr.Printunfold, false) {
		logf = func(format string, args ...any) {
			r.Logf(v.Branch, format, args...)
		}
	}
	newTask, n, err := unfold.Unfold(task, v.Defs, v.Evals, v.Instructions, logf)
	if err != nil {
		return false
	}
	r.Counts.Unfolds += int64(n)

	head, rest := newTask[0], newTask[1:]
	goal := formula.Albet(&formula.Not{F: head.Form})
	return sequenceGoals(v.WithContext(rest), r, depth-1, iteration+1, []formula.Formula{goal})
}
