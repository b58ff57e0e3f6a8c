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

// Package instr holds the instruction surface of the reasoning core: the
// layered option overrides that tune unfolding, prover dispatch and
// diagnostic output. Instructions layer like a stack; the most recent
// setting of a flag wins, and absent flags fall back to their documented
// defaults.
package instr

// A Flag names one instruction.
type Flag uint8

const (
	// Unfold enables definition unfolding overall. Default true.
	Unfold Flag = iota
	// Unfoldlow enables unfolding on low-level context items. Default true.
	Unfoldlow
	// Unfoldsf enables set/function extensionality and evaluation
	// unfolding. Default true.
	Unfoldsf
	// Unfoldlowsf is Unfoldsf for low-level context items. Default false.
	Unfoldlowsf
	// Ontored sends the evidence-reduced formulas to the external prover
	// instead of the full ones. Default false.
	Ontored
	// Printreason prints goal dispatch diagnostics. Default false.
	Printreason
	// Printfulltask prints the full prover task before invocation.
	// Default false.
	Printfulltask
	// Printunfold prints unfolding diagnostics. Default false.
	Printunfold
	// Depthlimit is the maximum number of unfold-and-retry rounds.
	// Default 3.
	Depthlimit
	// Timelimit is the base external prover timeout in seconds. Default 3.
	Timelimit
	// Prover selects the external prover by database name. Default: the
	// first prover of the database.
	Prover
	// Dump names a directory prover tasks are written to, one file per
	// invocation. Default: empty, no dumping.
	Dump

	numFlags
)

var flagNames = [numFlags]string{
	Unfold:        "unfold",
	Unfoldlow:     "unfoldlow",
	Unfoldsf:      "unfoldsf",
	Unfoldlowsf:   "unfoldlowsf",
	Ontored:       "ontored",
	Printreason:   "printreason",
	Printfulltask: "printfulltask",
	Printunfold:   "printunfold",
	Depthlimit:    "depthlimit",
	Timelimit:     "timelimit",
	Prover:        "prover",
	Dump:          "dump",
}

func (f Flag) String() string {
	if int(f) < len(flagNames) {
		return flagNames[f]
	}
	panic("forthel: unknown instruction flag")
}

// A Setting is one instruction: a flag with its value. Only the value field
// matching the flag's kind is meaningful.
type Setting struct {
	Flag Flag
	B    bool
	N    int
	S    string
}

// SetBool builds a boolean instruction.
func SetBool(f Flag, v bool) Setting { return Setting{Flag: f, B: v} }

// SetInt builds an integer instruction.
func SetInt(f Flag, v int) Setting { return Setting{Flag: f, N: v} }

// SetStr builds a string instruction.
func SetStr(f Flag, v string) Setting { return Setting{Flag: f, S: v} }

// A Set is a layered list of instructions, most recent first.
type Set []Setting

// With returns s extended with the given settings, which take precedence
// over everything already present. The receiver is not modified.
func (s Set) With(settings ...Setting) Set {
	out := make(Set, 0, len(settings)+len(s))
	for i := len(settings) - 1; i >= 0; i-- {
		out = append(out, settings[i])
	}
	return append(out, s...)
}

// Bool returns the most recent setting of f, or def if f was never set.
func (s Set) Bool(f Flag, def bool) bool {
	for _, in := range s {
		if in.Flag == f {
			return in.B
		}
	}
	return def
}

// Int returns the most recent setting of f, or def if f was never set.
func (s Set) Int(f Flag, def int) int {
	for _, in := range s {
		if in.Flag == f {
			return in.N
		}
	}
	return def
}

// Str returns the most recent setting of f, or def if f was never set.
func (s Set) Str(f Flag, def string) string {
	for _, in := range s {
		if in.Flag == f {
			return in.S
		}
	}
	return def
}
