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

package formula

// Builders for the built-in symbols of the core. The surface names follow
// the conventions of the proof language front-end; only the identifiers are
// significant inside the core.

// Equality returns the equality atom l = r.
func Equality(l, r Formula) *Trm {
	return &Trm{ID: EqualityID, Name: "=", Args: []Formula{l, r}}
}

// Elem returns the membership atom x ∈ s.
func Elem(x, s Formula) *Trm {
	return &Trm{ID: ElemID, Name: "aElementOf", Args: []Formula{x, s}}
}

// Dom returns the domain term of a function f.
func Dom(f Formula) *Trm {
	return &Trm{ID: DomID, Name: "Dom", Args: []Formula{f}}
}

// App returns the application term f(x).
func App(f, x Formula) *Trm {
	return &Trm{ID: AppID, Name: "App", Args: []Formula{f, x}}
}

// Set returns the typing atom stating that s is a set.
func Set(s Formula) *Trm {
	return &Trm{ID: SetID, Name: "aSet", Args: []Formula{s}}
}

// Fun returns the typing atom stating that f is a function.
func Fun(f Formula) *Trm {
	return &Trm{ID: FunctionID, Name: "aFunction", Args: []Formula{f}}
}

// Thesis returns the thesis marker atom.
func Thesis() *Trm {
	return &Trm{ID: ThesisID, Name: "#TH#"}
}

// HasInfoAtom reports whether t carries an evidence annotation whose head
// symbol is id. This is how the unfolder recognizes set- and function-typed
// occurrences: well-formed terms of those types carry an aSet(ThisT) or
// aFunction(ThisT) annotation.
func HasInfoAtom(t Formula, id int) bool {
	var info []Formula
	switch x := Strip(t).(type) {
	case *Trm:
		info = x.Info
	case *Var:
		info = x.Info
	default:
		return false
	}
	for _, a := range info {
		if tr, ok := Strip(a).(*Trm); ok && tr.ID == id {
			return true
		}
	}
	return false
}

// InfoOf returns the evidence annotations attached to t, or nil if t is not
// a term or variable occurrence.
func InfoOf(t Formula) []Formula {
	switch x := Strip(t).(type) {
	case *Trm:
		return x.Info
	case *Var:
		return x.Info
	}
	return nil
}
