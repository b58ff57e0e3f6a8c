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
	"fmt"
	"log"
	"strings"
)

func init() {
	log.SetFlags(0)
}

// Logf prints a reasoner diagnostic, prefixed with the current proof
// branch. Callers gate it on the matching print instruction.
func (r *RState) Logf(branch []string, format string, args ...any) {
	_ = log.Output(2, fmt.Sprintf("[Reason]%s %s", branchTag(branch), fmt.Sprintf(format, args...)))
}

// Warnf prints a reasoner warning. Warnings are not gated.
func (r *RState) Warnf(branch []string, format string, args ...any) {
	_ = log.Output(2, fmt.Sprintf("[Reason]%s Warning: %s", branchTag(branch), fmt.Sprintf(format, args...)))
}

func branchTag(branch []string) string {
	if len(branch) == 0 {
		return ""
	}
	return " " + strings.Join(branch, ".")
}
