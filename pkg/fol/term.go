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
	"unicode"
)

// Term represents a first-order term, defined recursively as a variable, a
// constant, or a function applied to one or more argument terms.  Terms are
// immutable: operations which rewrite a term always return a fresh one.
type Term interface {
	fmt.Stringer
	// Cmp implements a total order over terms, which is used to keep literal
	// sets (and hence proof traces) deterministic.
	Cmp(other Term) int
	// ContainsVar checks whether a variable with the given name occurs
	// anywhere within this term.
	ContainsVar(name string) bool
	// Substitute applies a substitution to this term, returning the rewritten
	// term.
	Substitute(subst Substitution) Term
	// Vars accumulates the names of all variables occurring in this term, in
	// first-occurrence order.
	Vars(vars *VarSet)
	// Depth returns the nesting depth of this term, where variables and
	// constants have depth one.
	Depth() uint
}

// Substitution maps variable names to the terms they are bound to.  A
// substitution produced by unification is idempotent, meaning that applying it
// twice gives the same result as applying it once.
type Substitution map[string]Term

// VarSet records variable names in first-occurrence order.  Ordering matters
// because Skolem functions are applied to the enclosing universal variables,
// and that argument order must be reproducible.
type VarSet struct {
	seen  map[string]bool
	names []string
}

// NewVarSet constructs an empty variable set.
func NewVarSet() *VarSet {
	return &VarSet{seen: make(map[string]bool)}
}

// Add records a variable name, unless it was recorded before.
func (p *VarSet) Add(name string) {
	if !p.seen[name] {
		p.seen[name] = true
		p.names = append(p.names, name)
	}
}

// Contains checks whether a given name was recorded.
func (p *VarSet) Contains(name string) bool {
	return p.seen[name]
}

// Names returns the recorded names in first-occurrence order.
func (p *VarSet) Names() []string {
	return p.names
}

// ============================================================================
// Variable
// ============================================================================

// Variable is a free or bound variable.  Variable names begin with a lowercase
// letter.
type Variable struct {
	Name string
}

// NewVariable constructs a variable term with the given name.
func NewVariable(name string) Variable {
	return Variable{name}
}

func (p Variable) String() string {
	return p.Name
}

// Cmp implementation for the Term interface.
func (p Variable) Cmp(other Term) int {
	if o, ok := other.(Variable); ok {
		return strings.Compare(p.Name, o.Name)
	}
	// Variables order before everything else.
	return -1
}

// ContainsVar implementation for the Term interface.
func (p Variable) ContainsVar(name string) bool {
	return p.Name == name
}

// Substitute implementation for the Term interface.  Observe that bindings are
// chased transitively, so a triangular substitution is applied fully.
func (p Variable) Substitute(subst Substitution) Term {
	if bound, ok := subst[p.Name]; ok {
		return bound.Substitute(subst)
	}
	//
	return p
}

// Vars implementation for the Term interface.
func (p Variable) Vars(vars *VarSet) {
	vars.Add(p.Name)
}

// Depth implementation for the Term interface.
func (p Variable) Depth() uint {
	return 1
}

// ============================================================================
// Constant
// ============================================================================

// Constant is a nullary symbol.  User-written constants begin with an
// uppercase letter or a digit; the clausifier may additionally mint Skolem
// constants whose names fall outside the user-writable lexical classes.
type Constant struct {
	Name string
}

// NewConstant constructs a constant term with the given name.
func NewConstant(name string) Constant {
	return Constant{name}
}

func (p Constant) String() string {
	return p.Name
}

// Cmp implementation for the Term interface.
func (p Constant) Cmp(other Term) int {
	switch o := other.(type) {
	case Variable:
		return 1
	case Constant:
		return strings.Compare(p.Name, o.Name)
	default:
		return -1
	}
}

// ContainsVar implementation for the Term interface.
func (p Constant) ContainsVar(string) bool {
	return false
}

// Substitute implementation for the Term interface.
func (p Constant) Substitute(Substitution) Term {
	return p
}

// Vars implementation for the Term interface.
func (p Constant) Vars(*VarSet) {}

// Depth implementation for the Term interface.
func (p Constant) Depth() uint {
	return 1
}

// ============================================================================
// Function
// ============================================================================

// Function is a function symbol applied to one or more argument terms.
// Function names begin with a lowercase letter.
type Function struct {
	Name string
	Args []Term
}

// NewFunction constructs a function term with the given name and arguments.
func NewFunction(name string, args ...Term) Function {
	return Function{name, args}
}

func (p Function) String() string {
	parts := make([]string, len(p.Args))
	//
	for i, arg := range p.Args {
		parts[i] = arg.String()
	}
	//
	return fmt.Sprintf("%s(%s)", p.Name, strings.Join(parts, ", "))
}

// Cmp implementation for the Term interface.
func (p Function) Cmp(other Term) int {
	o, ok := other.(Function)
	//
	if !ok {
		// Functions order after variables and constants.
		return 1
	} else if c := strings.Compare(p.Name, o.Name); c != 0 {
		return c
	} else if len(p.Args) != len(o.Args) {
		return len(p.Args) - len(o.Args)
	}
	//
	for i := range p.Args {
		if c := p.Args[i].Cmp(o.Args[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

// ContainsVar implementation for the Term interface.
func (p Function) ContainsVar(name string) bool {
	for _, arg := range p.Args {
		if arg.ContainsVar(name) {
			return true
		}
	}
	//
	return false
}

// Substitute implementation for the Term interface.
func (p Function) Substitute(subst Substitution) Term {
	nargs := make([]Term, len(p.Args))
	//
	for i, arg := range p.Args {
		nargs[i] = arg.Substitute(subst)
	}
	//
	return Function{p.Name, nargs}
}

// Vars implementation for the Term interface.
func (p Function) Vars(vars *VarSet) {
	for _, arg := range p.Args {
		arg.Vars(vars)
	}
}

// Depth implementation for the Term interface.
func (p Function) Depth() uint {
	depth := uint(0)
	//
	for _, arg := range p.Args {
		depth = max(depth, arg.Depth())
	}
	//
	return depth + 1
}

// ============================================================================
// Lexical classes
// ============================================================================

// IsVariableName checks whether a given identifier lexes as a variable, that
// is begins with a lowercase letter.  Identifier classes are decided purely
// lexically, never semantically.
func IsVariableName(name string) bool {
	runes := []rune(name)
	return len(runes) > 0 && unicode.IsLower(runes[0])
}

// IsConstantName checks whether a given identifier lexes as a constant, that
// is begins with an uppercase letter or a digit.
func IsConstantName(name string) bool {
	runes := []rune(name)
	return len(runes) > 0 && (unicode.IsUpper(runes[0]) || unicode.IsDigit(runes[0]))
}

// CmpTerms lexicographically compares two argument lists.
func CmpTerms(lhs []Term, rhs []Term) int {
	if len(lhs) != len(rhs) {
		return len(lhs) - len(rhs)
	}
	//
	for i := range lhs {
		if c := lhs[i].Cmp(rhs[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}
