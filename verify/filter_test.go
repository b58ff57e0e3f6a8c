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
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"forthel.org/go/fact"
	"forthel.org/go/formula"
)

// signatureHead builds ∀x̄. (HeadTerm(_ = t) ⇒ body).
func signatureHead(t, body formula.Formula) formula.Formula {
	eq := &formula.Tag{K: formula.HeadTerm, F: formula.Equality(&formula.ThisT{}, t)}
	return &formula.Imp{F: eq, G: body}
}

func TestHeadRewritingSignature(t *testing.T) {
	// ∀-free head: (ThisT = c) ⇒ P(ThisT) becomes P(c).
	c := atom("c", 7)
	entry := fact.NewFact(signatureHead(c, atom("P", pID, this())), fact.Signature, "sig")

	v := &VState{Thesis: thesis(atom("Q", qID)), Context: []fact.Fact{entry}}
	out := filterContext(v, &RState{})
	qt.Assert(t, qt.HasLen(out, 1))
	qt.Assert(t, qt.IsTrue(formula.Twins(out[0].Form, atom("P", pID, c))))
}

func TestHeadRewritingDropsTopBodies(t *testing.T) {
	c := atom("c", 7)
	head := &formula.All{Decl: "x", F: signatureHead(c, &formula.Top{})}

	// A head with a Top body erases entirely, quantifiers included.
	qt.Assert(t, qt.IsTrue(formula.IsTop(rewriteHead(head))))

	entry := fact.NewFact(head, fact.Signature, "sig")
	v := &VState{Thesis: thesis(atom("Q", qID)), Context: []fact.Fact{entry}}
	out := filterContext(v, &RState{})
	qt.Assert(t, qt.HasLen(out, 0))
}

func TestHeadRewritingDefinitionKeepsReverse(t *testing.T) {
	// ∀x. HeadTerm(ThisT = f(x)) ⇔ P(ThisT, x)
	f := atom("f", 8, &formula.Ind{})
	eq := &formula.Tag{K: formula.HeadTerm, F: formula.Equality(&formula.ThisT{}, f)}
	body := atom("P", pID, &formula.ThisT{}, &formula.Ind{})
	head := &formula.All{Decl: "x", F: &formula.Iff{F: eq, G: body}}

	entry := fact.NewFact(head, fact.Definition, "def")
	v := &VState{Thesis: thesis(atom("Q", qID)), Context: []fact.Fact{entry}}
	out := filterContext(v, &RState{})
	qt.Assert(t, qt.HasLen(out, 1))

	and, ok := out[0].Form.(*formula.And)
	qt.Assert(t, qt.IsTrue(ok))
	// Forward: the definiens instantiated at the head term.
	qt.Assert(t, qt.IsTrue(formula.Twins(and.F,
		atom("P", pID, atom("f", 8, &formula.Var{Name: "0:"}), &formula.Var{Name: "0:"}))))
	// Reverse: the implication back to the equation, regeneralized.
	all, ok := and.G.(*formula.All)
	qt.Assert(t, qt.IsTrue(ok))
	imp, ok := all.F.(*formula.Imp)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(formula.IsEquality(imp.G)))
}

func TestFilterDropsTrivialEntries(t *testing.T) {
	trivial := fact.NewFact(atom("P", pID, aWith(atom("P", pID, this()))), fact.Hypothesis, "")
	kept := fact.NewFact(atom("Q", qID), fact.Hypothesis, "")

	v := &VState{Thesis: thesis(atom("R", rID)), Context: []fact.Fact{trivial, kept}}
	out := filterContext(v, &RState{})
	qt.Assert(t, qt.HasLen(out, 1))
	qt.Assert(t, qt.IsTrue(formula.Twins(out[0].Form, atom("Q", qID))))
}

func TestFilterWithCitations(t *testing.T) {
	mkLow := func(f formula.Formula) fact.Fact {
		c := fact.NewFact(f, fact.Assumption, "")
		c.LowLevel = true
		return c
	}
	lemma := fact.NewFact(atom("P", pID), fact.Lemma, "lem")
	other := fact.NewFact(atom("Q", qID), fact.Lemma, "other")
	sig := fact.NewFact(signatureHead(atom("c", 7), atom("S", sID, this())), fact.Signature, "sig")
	low := mkLow(atom("R", rID))

	goal := thesis(atom("R", rID))
	goal.Link = []string{"lem", "lem"}

	v := &VState{Thesis: goal, Context: []fact.Fact{low, lemma, other, sig}}
	out := filterContext(v, &RState{})

	// Low-level prefix, then the cited lemma, then the signature; the
	// uncited lemma is gone.
	qt.Assert(t, qt.HasLen(out, 3))
	qt.Assert(t, qt.IsTrue(formula.Twins(out[0].Form, atom("R", rID))))
	qt.Assert(t, qt.Equals(out[1].Name, "lem"))
	qt.Assert(t, qt.Equals(out[2].Name, "sig"))
	qt.Assert(t, qt.IsTrue(formula.Twins(out[2].Form, atom("S", sID, atom("c", 7)))))
}

func TestFilterWarnsOnMissingCitations(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	goal := thesis(atom("R", rID))
	goal.Link = []string{"nowhere"}
	v := &VState{Thesis: goal, Branch: []string{"lemma1"}}
	out := filterContext(v, &RState{})
	qt.Assert(t, qt.HasLen(out, 0))
	qt.Assert(t, qt.IsTrue(strings.Contains(buf.String(), "could not find section(s) nowhere")))
	qt.Assert(t, qt.IsTrue(strings.Contains(buf.String(), "lemma1")))
}
