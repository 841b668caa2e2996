// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package fol

import (
	"fmt"
	"strings"
)

// Formula represents a first-order formula prior to clausification.  Formulas
// are immutable once constructed; the clausifier always rewrites into fresh
// trees.  The String method produces canonical text which, when parsed again,
// yields a structurally equal formula.
type Formula interface {
	fmt.Stringer
	// Equal determines whether two formulas are structurally identical.
	Equal(other Formula) bool
	// FreeVars accumulates the free variables of this formula, in
	// first-occurrence order, given the set of variables bound in the
	// enclosing context.
	FreeVars(bound map[string]uint, free *VarSet)
}

// Atom is a relation applied to zero or more argument terms.  Relation names
// begin with an uppercase letter.
type Atom struct {
	Predicate string
	Args      []Term
}

// Not is the negation of a formula.
type Not struct {
	Body Formula
}

// And is the conjunction of two formulas.
type And struct {
	Left  Formula
	Right Formula
}

// Or is the disjunction of two formulas.
type Or struct {
	Left  Formula
	Right Formula
}

// Implies is a material implication between two formulas.
type Implies struct {
	Left  Formula
	Right Formula
}

// Iff is a biconditional between two formulas.
type Iff struct {
	Left  Formula
	Right Formula
}

// ForAll universally quantifies a variable within a formula.
type ForAll struct {
	Var  string
	Body Formula
}

// Exists existentially quantifies a variable within a formula.
type Exists struct {
	Var  string
	Body Formula
}

// ============================================================================
// Printing
// ============================================================================

func (p Atom) String() string {
	if len(p.Args) == 0 {
		return p.Predicate
	}
	//
	parts := make([]string, len(p.Args))
	//
	for i, arg := range p.Args {
		parts[i] = arg.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Predicate, strings.Join(parts, ", "))
}

func (p Not) String() string {
	return fmt.Sprintf("!%s", p.Body)
}

func (p And) String() string {
	return fmt.Sprintf("(%s & %s)", p.Left, p.Right)
}

func (p Or) String() string {
	return fmt.Sprintf("(%s | %s)", p.Left, p.Right)
}

func (p Implies) String() string {
	return fmt.Sprintf("(%s -> %s)", p.Left, p.Right)
}

func (p Iff) String() string {
	return fmt.Sprintf("(%s <-> %s)", p.Left, p.Right)
}

func (p ForAll) String() string {
	return fmt.Sprintf("forall %s %s", p.Var, p.Body)
}

func (p Exists) String() string {
	return fmt.Sprintf("exists %s %s", p.Var, p.Body)
}

// ============================================================================
// Structural equality
// ============================================================================

// Equal implementation for the Formula interface.
func (p Atom) Equal(other Formula) bool {
	o, ok := other.(Atom)
	return ok && p.Predicate == o.Predicate && CmpTerms(p.Args, o.Args) == 0
}

// Equal implementation for the Formula interface.
func (p Not) Equal(other Formula) bool {
	o, ok := other.(Not)
	return ok && p.Body.Equal(o.Body)
}

// Equal implementation for the Formula interface.
func (p And) Equal(other Formula) bool {
	o, ok := other.(And)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

// Equal implementation for the Formula interface.
func (p Or) Equal(other Formula) bool {
	o, ok := other.(Or)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

// Equal implementation for the Formula interface.
func (p Implies) Equal(other Formula) bool {
	o, ok := other.(Implies)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

// Equal implementation for the Formula interface.
func (p Iff) Equal(other Formula) bool {
	o, ok := other.(Iff)
	return ok && p.Left.Equal(o.Left) && p.Right.Equal(o.Right)
}

// Equal implementation for the Formula interface.
func (p ForAll) Equal(other Formula) bool {
	o, ok := other.(ForAll)
	return ok && p.Var == o.Var && p.Body.Equal(o.Body)
}

// Equal implementation for the Formula interface.
func (p Exists) Equal(other Formula) bool {
	o, ok := other.(Exists)
	return ok && p.Var == o.Var && p.Body.Equal(o.Body)
}

// ============================================================================
// Free variables
// ============================================================================

// FreeVars implementation for the Formula interface.
func (p Atom) FreeVars(bound map[string]uint, free *VarSet) {
	vars := NewVarSet()
	//
	for _, arg := range p.Args {
		arg.Vars(vars)
	}
	//
	for _, name := range vars.Names() {
		if bound[name] == 0 {
			free.Add(name)
		}
	}
}

// FreeVars implementation for the Formula interface.
func (p Not) FreeVars(bound map[string]uint, free *VarSet) {
	p.Body.FreeVars(bound, free)
}

// FreeVars implementation for the Formula interface.
func (p And) FreeVars(bound map[string]uint, free *VarSet) {
	p.Left.FreeVars(bound, free)
	p.Right.FreeVars(bound, free)
}

// FreeVars implementation for the Formula interface.
func (p Or) FreeVars(bound map[string]uint, free *VarSet) {
	p.Left.FreeVars(bound, free)
	p.Right.FreeVars(bound, free)
}

// FreeVars implementation for the Formula interface.
func (p Implies) FreeVars(bound map[string]uint, free *VarSet) {
	p.Left.FreeVars(bound, free)
	p.Right.FreeVars(bound, free)
}

// FreeVars implementation for the Formula interface.
func (p Iff) FreeVars(bound map[string]uint, free *VarSet) {
	p.Left.FreeVars(bound, free)
	p.Right.FreeVars(bound, free)
}

// FreeVars implementation for the Formula interface.
func (p ForAll) FreeVars(bound map[string]uint, free *VarSet) {
	bound[p.Var]++
	p.Body.FreeVars(bound, free)
	bound[p.Var]--
}

// FreeVars implementation for the Formula interface.
func (p Exists) FreeVars(bound map[string]uint, free *VarSet) {
	bound[p.Var]++
	p.Body.FreeVars(bound, free)
	bound[p.Var]--
}

// FreeVariables returns the free variables of a formula in first-occurrence
// order.
func FreeVariables(f Formula) []string {
	free := NewVarSet()
	f.FreeVars(make(map[string]uint), free)
	//
	return free.Names()
}
