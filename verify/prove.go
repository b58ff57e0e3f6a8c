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
	"time"

	"forthel.org/go/formula"
	"forthel.org/go/instr"
	"forthel.org/go/internal/export"
)

// launchProver sends the current goal and context to the external prover.
// All wall time spent there accumulates on ProofTime; a successful attempt
// mirrors its time onto SuccessTime.
func launchProver(v *VState, r *RState, iteration int) bool {
	onReduced := v.Instructions.Bool(instr.Ontored, false)
	if v.Instructions.Bool(instr.Printfulltask, false) {
		printTask(v, r, onReduced)
	}

	start := time.Now()
	ok, err := export.Export(onReduced, iteration, v.Provers, v.Instructions, v.Context, v.Thesis)
	r.addTime(ProofTime, time.Since(start))

	if err != nil {
		if v.Instructions.Bool(instr.Printreason, false) {
			r.Logf(v.Branch, "prover: %v", err)
		}
		return false
	}
	if !ok {
		return false
	}
	r.addTime(SuccessTime, r.lastTime(ProofTime))
	r.Counts.SuccessfulGoals++
	return true
}

// printTask prints the full prover task: the context in chronological order
// followed by the conclusion.
func printTask(v *VState, r *RState, onReduced bool) {
	r.Logf(v.Branch, "prover task:")
	for i := len(v.Context) - 1; i >= 0; i-- {
		c := v.Context[i]
		f := c.Form
		if onReduced {
			f = c.Reduced
		}
		r.Logf(v.Branch, "  %v: %s", c.Kind, formula.Sprint(f))
	}
	f := v.Thesis.Form
	if onReduced {
		f = v.Thesis.Reduced
	}
	r.Logf(v.Branch, "  conclusion: %s", formula.Sprint(f))
}
