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

// Package verify implements the goal driver of the reasoning core: it
// decides whether a thesis follows from its context by evidence, by the
// internal model-elimination filter, by an external prover, or by a bounded
// recursive unfolding of local definitions.
//
// The verification state is an immutable snapshot produced per goal by the
// surrounding proof-text walker; the driver layers overrides on it and
// funnels all mutation into a single reasoner state holding counters and
// flags.
package verify

import (
	"time"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
	"forthel.org/go/instr"
	"forthel.org/go/prover"
	"forthel.org/go/stats"
)

// A VState is the read-only verification state of one goal position.
type VState struct {
	// Thesis is the statement under verification.
	Thesis fact.Fact

	// Context lists the visible statements, most recent first.
	Context []fact.Fact

	// Defs is the definition table and Evals the evaluation index used by
	// the conservative unfolder.
	Defs  fact.Definitions
	Evals *fact.Evals

	// MesonPos and MesonNeg are the prepared model-elimination rules, by
	// polarity of their conclusion.
	MesonPos []fact.Rule
	MesonNeg []fact.Rule

	// Provers is the external prover database.
	Provers []prover.Prover

	// Instructions are the active option overrides.
	Instructions instr.Set

	// Skolem seeds fresh symbol generation.
	Skolem int

	// Branch names the enclosing proof sections, for diagnostics.
	Branch []string
}

// WithGoal returns a copy of v whose thesis carries f.
func (v *VState) WithGoal(f formula.Formula) *VState {
	w := *v
	w.Thesis = v.Thesis.SetForm(f)
	return &w
}

// WithContext returns a copy of v carrying the given context.
func (v *VState) WithContext(context []fact.Fact) *VState {
	w := *v
	w.Context = context
	return &w
}

// A TimeKind names one of the reasoner timers.
type TimeKind uint8

const (
	ProofTime TimeKind = iota
	SuccessTime
	SimplifyTime
)

// An RState is the mutable reasoner state: counters, the timer log, and the
// outcome flags. It is owned by the driving thread; nothing else mutates it.
type RState struct {
	Counts stats.Counts

	// Failed latches once any goal of the thesis fails, so downstream
	// phases can gate on it.
	Failed bool

	// AlreadyChecked marks theses the walker discharged before the driver
	// ran.
	AlreadyChecked bool

	// times is the ordered timer log, most recent entry first.
	times []timed
}

type timed struct {
	kind TimeKind
	d    time.Duration
}

// addTime records d on the timer log and on the matching counter.
func (r *RState) addTime(k TimeKind, d time.Duration) {
	r.times = append([]timed{{kind: k, d: d}}, r.times...)
	switch k {
	case ProofTime:
		r.Counts.ProofTime += d
	case SuccessTime:
		r.Counts.SuccessTime += d
	case SimplifyTime:
		r.Counts.SimplifyTime += d
	}
}

// lastTime returns the most recent log entry for k. Fetching from an empty
// log is a programming bug.
func (r *RState) lastTime(k TimeKind) time.Duration {
	for _, t := range r.times {
		if t.kind == k {
			return t.d
		}
	}
	panic("forthel: time counter fetched from empty log")
}
