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
)

// Literal is an atomic formula, or the negation of one.  Literals are the only
// building block of clauses; connectives and quantifiers never occur within
// them.  Nullary predicates are permitted, in which case Args is empty.
type Literal struct {
	// Negated indicates negative polarity.
	Negated bool
	// Predicate is the relation name, which begins with an uppercase letter.
	Predicate string
	// Args are the argument terms of the relation.
	Args []fol.Term
}

// NewLiteral constructs a literal with the given polarity, predicate and
// arguments.
func NewLiteral(negated bool, predicate string, args ...fol.Term) Literal {
	return Literal{negated, predicate, args}
}

func (p Literal) String() string {
	var builder strings.Builder
	//
	if p.Negated {
		builder.WriteString("!")
	}
	//
	builder.WriteString(p.Predicate)
	//
	if len(p.Args) != 0 {
		builder.WriteString("(")
		//
		for i, arg := range p.Args {
			if i != 0 {
				builder.WriteString(", ")
			}
			//
			builder.WriteString(arg.String())
		}
		//
		builder.WriteString(")")
	}
	//
	return builder.String()
}

// Cmp implements a total order over literals: by predicate name, then arity,
// then polarity (positive first), then arguments.  Clauses hold their literals
// in this order, which keeps resolution and proof traces deterministic.
func (p Literal) Cmp(other Literal) int {
	if c := strings.Compare(p.Predicate, other.Predicate); c != 0 {
		return c
	} else if len(p.Args) != len(other.Args) {
		return len(p.Args) - len(other.Args)
	} else if p.Negated != other.Negated {
		if p.Negated {
			return 1
		}
		//
		return -1
	}
	//
	return fol.CmpTerms(p.Args, other.Args)
}

// Negate returns this literal with its polarity flipped.
func (p Literal) Negate() Literal {
	return Literal{!p.Negated, p.Predicate, p.Args}
}

// Complements checks whether two literals have the same predicate and arity
// but opposite polarity, and hence are candidates for resolution.
func (p Literal) Complements(other Literal) bool {
	return p.Negated != other.Negated && p.Predicate == other.Predicate &&
		len(p.Args) == len(other.Args)
}

// Substitute applies a substitution to every argument of this literal.
func (p Literal) Substitute(subst fol.Substitution) Literal {
	if len(p.Args) == 0 {
		return p
	}
	//
	nargs := make([]fol.Term, len(p.Args))
	//
	for i, arg := range p.Args {
		nargs[i] = arg.Substitute(subst)
	}
	//
	return Literal{p.Negated, p.Predicate, nargs}
}

// Vars accumulates the variables occurring in this literal.
func (p Literal) Vars(vars *fol.VarSet) {
	for _, arg := range p.Args {
		arg.Vars(vars)
	}
}

// Depth returns the maximum term depth across the arguments of this literal.
func (p Literal) Depth() uint {
	depth := uint(0)
	//
	for _, arg := range p.Args {
		depth = max(depth, arg.Depth())
	}
	//
	return depth
}
