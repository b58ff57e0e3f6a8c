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

package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/go-quicktest/qt"
)

func TestAddAndSince(t *testing.T) {
	var c Counts
	c.Add(Counts{Goals: 3, TrivialGoals: 1, ProofTime: time.Second})
	c.Add(Counts{Goals: 2, SuccessfulGoals: 2, ProofTime: time.Second})

	qt.Assert(t, qt.Equals(c.Goals, int64(5)))
	qt.Assert(t, qt.Equals(c.ProofTime, 2*time.Second))

	start := Counts{Goals: 3, ProofTime: time.Second}
	d := c.Since(start)
	qt.Assert(t, qt.Equals(d.Goals, int64(2)))
	qt.Assert(t, qt.Equals(d.ProofTime, time.Second))
	qt.Assert(t, qt.Equals(d.SuccessfulGoals, int64(2)))
}

func TestString(t *testing.T) {
	c := Counts{Goals: 4, TrivialGoals: 2, SuccessfulGoals: 1, FailedGoals: 1, Unfolds: 3}
	s := c.String()
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "Goals:      4")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "Unfolds:   3")))
	// Sections are only reported when the walker maintained them.
	qt.Assert(t, qt.IsFalse(strings.Contains(s, "Sections")))
}
