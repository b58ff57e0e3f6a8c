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

// Package fact defines the context entries the reasoning core works on: the
// statements visible at a proof position, the definition table, and the
// evaluation index.
package fact

import (
	"forthel.org/go/evidence"
	"forthel.org/go/formula"
)

// A Kind classifies the block a context entry stems from.
type Kind uint8

const (
	Definition Kind = iota
	Signature
	LowDefinition
	Axiom
	Hypothesis
	Assumption
	Lemma
	Proposition
	Theorem
)

var kindNames = [...]string{
	Definition:    "definition",
	Signature:     "signature",
	LowDefinition: "low definition",
	Axiom:         "axiom",
	Hypothesis:    "hypothesis",
	Assumption:    "assumption",
	Lemma:         "lemma",
	Proposition:   "proposition",
	Theorem:       "theorem",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	panic("forthel: unknown block kind")
}

// A Fact is one statement of the verification context.
type Fact struct {
	// Form is the full formula of the statement.
	Form formula.Formula

	// Reduced caches the evidence-reduced form of Form. It is maintained
	// by NewFact and SetForm.
	Reduced formula.Formula

	// Kind is the head block kind of the statement.
	Kind Kind

	// Name is the citation name; unnamed low-level items have none.
	Name string

	// Link lists the names this statement explicitly cites.
	Link []string

	// LowLevel marks entries introduced inside the current proof block,
	// as opposed to top-level theorems and definitions.
	LowLevel bool
}

// NewFact builds a context entry for f, caching its reduced form.
func NewFact(f formula.Formula, k Kind, name string) Fact {
	return Fact{Form: f, Reduced: evidence.Reduce(f), Kind: k, Name: name}
}

// SetForm returns a copy of c carrying f as its formula, with the reduced
// cache recomputed.
func (c Fact) SetForm(f formula.Formula) Fact {
	c.Form = f
	c.Reduced = evidence.Reduce(f)
	return c
}

// IsDefinitional reports whether c introduces a symbol, that is, whether it
// is a definition or a signature extension.
func (c Fact) IsDefinitional() bool {
	return c.Kind == Definition || c.Kind == Signature
}

// LowPrefix splits a context, ordered most recent first, into its leading
// low-level segment and the trailing top-level rest.
func LowPrefix(context []Fact) (low, top []Fact) {
	for i, c := range context {
		if !c.LowLevel {
			return context[:i], context[i:]
		}
	}
	return context, nil
}

// A Rule is one model-elimination rule: a conclusion literal together with
// the premises that remain to be shown when the rule fires. The verifier
// carries one rule list per polarity of the indexed literal.
type Rule struct {
	Conclusion formula.Formula
	Premises   []formula.Formula
}
