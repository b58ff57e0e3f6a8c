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
	"time"

	"forthel.org/go/fact"
	"forthel.org/go/internal/meson"
)

// reasoningBudget is the hard wall-clock budget of one internal reasoning
// call. The filter is meant to catch locally obvious goals, not to search.
const reasoningBudget = time.Millisecond

// LaunchReasoning runs the internal model-elimination filter on the thesis
// of v under the low-level prefix of its context. It succeeds only on a
// definite proved verdict within the budget; the search observes the
// cancellation cooperatively, so host cancellation through ctx aborts it
// promptly as well.
func LaunchReasoning(ctx context.Context, v *VState, r *RState) bool {
	low, _ := fact.LowPrefix(v.Context)

	rctx, cancel := context.WithTimeout(ctx, reasoningBudget)
	defer cancel()

	done := make(chan bool, 1)
	go func() {
		done <- meson.Prove(rctx, v.Skolem, low, v.MesonPos, v.MesonNeg, v.Thesis.Form)
	}()
	select {
	case ok := <-done:
		return ok
	case <-rctx.Done():
		return false
	}
}
