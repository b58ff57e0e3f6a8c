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

// Package stats reports statistics on verification runs.
package stats

import (
	"strings"
	"sync"
	"text/template"
	"time"
)

// Counts holds counters for key events during a verification run.
type Counts struct {
	// Timers
	//
	// ProofTime accumulates wall time spent in the external prover across
	// all attempts; SuccessTime mirrors it for successful attempts only.
	// SimplifyTime is reserved for the evidence reducer when instrumented.

	ProofTime    time.Duration
	SuccessTime  time.Duration
	SimplifyTime time.Duration

	// Goal counters
	//
	// Every goal the driver sequences counts towards Goals. A goal closed
	// by evidence or by the external prover, or one that fails, counts
	// towards the matching outcome counter; a goal closed by the recursive
	// branch counts no outcome itself, the refreshed goal it is retried as
	// does.

	Goals           int64
	FailedGoals     int64
	TrivialGoals    int64
	SuccessfulGoals int64

	// Unfolds counts the definitional, extensional and evaluation
	// expansions performed by the conservative unfolder, each once.
	Unfolds int64

	// Text counters, maintained by the surrounding walker.

	Sections int64
	Symbols  int64

	// Check counters, maintained by the ontological checker.

	TrivialChecks    int64
	HardChecks       int64
	SuccessfulChecks int64

	// Equation counters, maintained by the equational evaluator.

	Equations       int64
	FailedEquations int64
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.ProofTime += other.ProofTime
	c.SuccessTime += other.SuccessTime
	c.SimplifyTime += other.SimplifyTime

	c.Goals += other.Goals
	c.FailedGoals += other.FailedGoals
	c.TrivialGoals += other.TrivialGoals
	c.SuccessfulGoals += other.SuccessfulGoals

	c.Unfolds += other.Unfolds

	c.Sections += other.Sections
	c.Symbols += other.Symbols

	c.TrivialChecks += other.TrivialChecks
	c.HardChecks += other.HardChecks
	c.SuccessfulChecks += other.SuccessfulChecks

	c.Equations += other.Equations
	c.FailedEquations += other.FailedEquations
}

// Since returns the difference between c and an earlier snapshot.
func (c Counts) Since(start Counts) Counts {
	c.ProofTime -= start.ProofTime
	c.SuccessTime -= start.SuccessTime
	c.SimplifyTime -= start.SimplifyTime

	c.Goals -= start.Goals
	c.FailedGoals -= start.FailedGoals
	c.TrivialGoals -= start.TrivialGoals
	c.SuccessfulGoals -= start.SuccessfulGoals

	c.Unfolds -= start.Unfolds

	c.Sections -= start.Sections
	c.Symbols -= start.Symbols

	c.TrivialChecks -= start.TrivialChecks
	c.HardChecks -= start.HardChecks
	c.SuccessfulChecks -= start.SuccessfulChecks

	c.Equations -= start.Equations
	c.FailedEquations -= start.FailedEquations

	return c
}

var counts = sync.OnceValue(func() *template.Template {
	return template.Must(template.New("counts").Parse(`{{"" -}}
Goals:      {{.Goals}}
Trivial:    {{.TrivialGoals}}
Successful: {{.SuccessfulGoals}}
Failed:     {{.FailedGoals}}

Unfolds:   {{.Unfolds}}
ProofTime: {{.ProofTime}}{{if .SuccessTime}}
SuccessTime: {{.SuccessTime}}{{end}}{{if .SimplifyTime}}
SimplifyTime: {{.SimplifyTime}}{{end}}{{if or .Sections .Symbols}}

Sections: {{.Sections}}
Symbols:  {{.Symbols}}{{end}}{{if .HardChecks}}

Checks:     {{.HardChecks}}
TrivialChecks:    {{.TrivialChecks}}
SuccessfulChecks: {{.SuccessfulChecks}}{{end}}{{if .Equations}}

Equations: {{.Equations}}
FailedEquations: {{.FailedEquations}}{{end}}`))
})

func (c Counts) String() string {
	buf := &strings.Builder{}
	err := counts().Execute(buf, c)
	if err != nil {
		panic(err)
	}
	return buf.String()
}
