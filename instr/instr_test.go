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

package instr

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestDefaults(t *testing.T) {
	var s Set
	qt.Assert(t, qt.Equals(s.Bool(Unfold, true), true))
	qt.Assert(t, qt.Equals(s.Bool(Ontored, false), false))
	qt.Assert(t, qt.Equals(s.Int(Depthlimit, 3), 3))
	qt.Assert(t, qt.Equals(s.Str(Prover, ""), ""))
}

func TestLayering(t *testing.T) {
	s := Set{}.With(SetInt(Depthlimit, 5), SetBool(Ontored, true))
	qt.Assert(t, qt.Equals(s.Int(Depthlimit, 3), 5))
	qt.Assert(t, qt.Equals(s.Bool(Ontored, false), true))

	// A later override shadows an earlier one; the base set is untouched.
	s2 := s.With(SetInt(Depthlimit, 1))
	qt.Assert(t, qt.Equals(s2.Int(Depthlimit, 3), 1))
	qt.Assert(t, qt.Equals(s.Int(Depthlimit, 3), 5))
}

func TestParsePreset(t *testing.T) {
	s, err := Parse([]byte("depthlimit: 5\nontored: true\nprover: eprover\n"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s.Int(Depthlimit, 3), 5))
	qt.Assert(t, qt.Equals(s.Bool(Ontored, false), true))
	qt.Assert(t, qt.Equals(s.Str(Prover, ""), "eprover"))
}

var parseErrorTests = []struct {
	name string
	in   string
}{
	{"unknown flag", "frobnicate: true\n"},
	{"wrong kind for int", "depthlimit: deep\n"},
	{"wrong kind for bool", "ontored: 3\n"},
	{"wrong kind for string", "prover: true\n"},
}

func TestParseErrors(t *testing.T) {
	for _, tc := range parseErrorTests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			qt.Assert(t, qt.IsNotNil(err))
		})
	}
}
