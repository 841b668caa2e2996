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
package clause

import (
	"strings"

	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/util/collection/set"
)

// Clause is a set of literals interpreted as their disjunction, implicitly
// universally closed over its variables.  Variables are local to a clause: the
// resolution engine renames clauses apart before resolving, so sharing a name
// across two clauses carries no meaning.  The empty clause represents falsity.
//
// Literals are held as a sorted duplicate-free set, which both collapses
// duplicates arising during clausification and keeps every downstream
// iteration order deterministic.
type Clause struct {
	literals set.AnySortedSet[Literal]
}

// New constructs a clause from the given literals, collapsing duplicates.
func New(literals ...Literal) Clause {
	return Clause{*set.NewAnySortedSet(literals...)}
}

// Empty constructs the empty clause, representing falsity.
func Empty() Clause {
	return New()
}

func (p Clause) String() string {
	if p.IsEmpty() {
		return "⊥"
	}
	//
	parts := make([]string, len(p.literals))
	//
	for i, lit := range p.literals {
		parts[i] = lit.String()
	}
	//
	return strings.Join(parts, ", ")
}

// Literals returns the literals of this clause in sorted order.  The returned
// array must not be mutated.
func (p Clause) Literals() []Literal {
	return p.literals.ToArray()
}

// Size returns the number of distinct literals in this clause.
func (p Clause) Size() uint {
	return uint(len(p.literals))
}

// IsEmpty checks whether this is the empty clause.
func (p Clause) IsEmpty() bool {
	return len(p.literals) == 0
}

// IsTautology checks whether this clause contains a literal together with its
// negation, rendering it universally valid and hence redundant.
func (p Clause) IsTautology() bool {
	for _, lit := range p.literals {
		if p.literals.Contains(lit.Negate()) {
			return true
		}
	}
	//
	return false
}

// Equal checks whether two clauses hold exactly the same literals.
func (p Clause) Equal(other Clause) bool {
	if len(p.literals) != len(other.literals) {
		return false
	}
	//
	for i := range p.literals {
		if p.literals[i].Cmp(other.literals[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Substitute applies a substitution to every literal, returning the rewritten
// clause.  Literals which become identical under the substitution collapse.
func (p Clause) Substitute(subst fol.Substitution) Clause {
	nlits := make([]Literal, len(p.literals))
	//
	for i, lit := range p.literals {
		nlits[i] = lit.Substitute(subst)
	}
	//
	return Clause{*set.RawAnySortedSet(nlits...)}
}

// Union constructs the clause holding all literals of this clause and another.
func (p Clause) Union(other Clause) Clause {
	var nlits set.AnySortedSet[Literal] = make([]Literal, len(p.literals))
	//
	copy(nlits, p.literals)
	nlits.InsertSorted(&other.literals)
	//
	return Clause{nlits}
}

// Remove constructs the clause holding all literals of this clause except the
// given one.
func (p Clause) Remove(lit Literal) Clause {
	var nlits set.AnySortedSet[Literal] = make([]Literal, len(p.literals))
	//
	copy(nlits, p.literals)
	nlits.Remove(lit)
	//
	return Clause{nlits}
}

// Vars returns the variables occurring in this clause, in literal order.
func (p Clause) Vars() []string {
	vars := fol.NewVarSet()
	//
	for _, lit := range p.literals {
		lit.Vars(vars)
	}
	//
	return vars.Names()
}

// Depth returns the maximum term depth across all literals of this clause.
func (p Clause) Depth() uint {
	depth := uint(0)
	//
	for _, lit := range p.literals {
		depth = max(depth, lit.Depth())
	}
	//
	return depth
}
