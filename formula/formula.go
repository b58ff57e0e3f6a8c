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

// Package formula defines the formula algebra of the reasoning core: a tagged
// tree of connectives, quantifiers and terms, together with the normalization,
// substitution and matching primitives the rest of the module is built on.
//
// Binders are substitutional: a quantifier stores only the original name of
// its variable, and bound occurrences in the body are De Bruijn style *Ind
// nodes counting the binders between occurrence and binding site. Inst and
// Bind convert between the bound and the free representation.
package formula

// A Formula is a node in the formula tree.
type Formula interface {
	formulaNode()
}

// Not is the negation of F.
type Not struct {
	F Formula
}

// And is the conjunction of F and G.
type And struct {
	F, G Formula
}

// Or is the disjunction of F and G.
type Or struct {
	F, G Formula
}

// Imp is the implication from F to G.
type Imp struct {
	F, G Formula
}

// Iff is the bi-implication between F and G.
type Iff struct {
	F, G Formula
}

// All is universal quantification. Decl records the surface name of the
// bound variable; occurrences in F are *Ind nodes.
type All struct {
	Decl string
	F    Formula
}

// Exi is existential quantification, with the same binder convention as All.
type Exi struct {
	Decl string
	F    Formula
}

// A Trm is a term or atomic formula: a predicate or function symbol applied
// to arguments. Info is an ordered list of formulas recording facts known
// about this specific occurrence, with ThisT as the placeholder for the
// occurrence itself.
type Trm struct {
	ID   int
	Name string
	Args []Formula
	Info []Formula
}

// A Var is a free variable. Like term occurrences it may carry evidence.
type Var struct {
	Name string
	Info []Formula
}

// An Ind is a bound variable occurrence, counting binders up to its binding
// quantifier.
type Ind struct {
	Depth int
}

// A Tag wraps a subtree with a processing mark.
type Tag struct {
	K TagKind
	F Formula
}

// Top is the true constant.
type Top struct{}

// Bot is the false constant.
type Bot struct{}

// ThisT marks the hole of a definitional pattern: the spot where the defined
// occurrence itself is substituted back in.
type ThisT struct{}

func (*Not) formulaNode()   {}
func (*And) formulaNode()   {}
func (*Or) formulaNode()    {}
func (*Imp) formulaNode()   {}
func (*Iff) formulaNode()   {}
func (*All) formulaNode()   {}
func (*Exi) formulaNode()   {}
func (*Trm) formulaNode()   {}
func (*Var) formulaNode()   {}
func (*Ind) formulaNode()   {}
func (*Tag) formulaNode()   {}
func (*Top) formulaNode()   {}
func (*Bot) formulaNode()   {}
func (*ThisT) formulaNode() {}

// A TagKind distinguishes the processing marks a Tag can carry.
type TagKind uint8

const (
	// HeadTerm marks the defining equation of a definition or signature
	// head.
	HeadTerm TagKind = iota

	// GenericMark marks a subterm the unfolder has already expanded in the
	// current pass. Marked subtrees are never entered again.
	GenericMark
)

func (k TagKind) String() string {
	switch k {
	case HeadTerm:
		return "HeadTerm"
	case GenericMark:
		return "GenericMark"
	}
	panic("forthel: unknown tag kind")
}

// Built-in symbol identifiers. User symbols are assigned non-negative
// identifiers by the host; the core reserves the negative range.
const (
	EqualityID = -1
	ThesisID   = -3
	FunctionID = -4
	AppID      = -5
	DomID      = -6
	SetID      = -7
	ElemID     = -8
)

// IsTop reports whether f is the true constant.
func IsTop(f Formula) bool {
	_, ok := f.(*Top)
	return ok
}

// IsBot reports whether f is the false constant.
func IsBot(f Formula) bool {
	_, ok := f.(*Bot)
	return ok
}

// IsThisT reports whether f is the definitional placeholder.
func IsThisT(f Formula) bool {
	_, ok := f.(*ThisT)
	return ok
}

// IsTrm reports whether f is an atomic formula or term application.
func IsTrm(f Formula) bool {
	_, ok := f.(*Trm)
	return ok
}

// IsInd reports whether f is a bound variable occurrence.
func IsInd(f Formula) bool {
	_, ok := f.(*Ind)
	return ok
}

// IsVar reports whether f is a free variable.
func IsVar(f Formula) bool {
	_, ok := f.(*Var)
	return ok
}

// IsEquality reports whether f is an equality atom, tags ignored.
func IsEquality(f Formula) bool {
	t, ok := Strip(f).(*Trm)
	return ok && t.ID == EqualityID
}

// IsLiteral reports whether f is an atomic formula or a negated atomic
// formula, tags ignored.
func IsLiteral(f Formula) bool {
	switch x := Strip(f).(type) {
	case *Trm:
		return true
	case *Not:
		return IsTrm(Strip(x.F))
	}
	return false
}

// LtAtomic returns the atom underlying the literal f, stripping tags and at
// most one negation. It reports false if f is not a literal.
func LtAtomic(f Formula) (*Trm, bool) {
	switch x := Strip(f).(type) {
	case *Trm:
		return x, true
	case *Not:
		t, ok := Strip(x.F).(*Trm)
		return t, ok
	}
	return nil, false
}

// Strip removes the outer Tag wrappers of f.
func Strip(f Formula) Formula {
	for {
		t, ok := f.(*Tag)
		if !ok {
			return f
		}
		f = t.F
	}
}

// TrmName returns the symbol name of the term underlying f, tags stripped.
// It panics if f is not a term.
func TrmName(f Formula) string {
	return Strip(f).(*Trm).Name
}

// TrmArgs returns the argument list of the term underlying f, tags stripped.
// It panics if f is not a term.
func TrmArgs(f Formula) []Formula {
	return Strip(f).(*Trm).Args
}

// TrID returns the symbol identifier of the term underlying f, tags
// stripped. It panics if f is not a term.
func TrID(f Formula) int {
	return Strip(f).(*Trm).ID
}
