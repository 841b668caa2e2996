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

// Package unify implements Robinson-style computation of most general
// unifiers over terms and literals, with the occurs check enabled.
package unify

import (
	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/fol"
)

// Literals computes a most general unifier of the argument lists of two
// literals, or returns false if none exists.  The literals must apply the same
// predicate with the same arity; polarity is deliberately not inspected here,
// since resolution requires opposite polarities whereas factoring requires
// equal ones.
func Literals(lhs clause.Literal, rhs clause.Literal) (fol.Substitution, bool) {
	if lhs.Predicate != rhs.Predicate || len(lhs.Args) != len(rhs.Args) {
		return nil, false
	}
	//
	return Terms(lhs.Args, rhs.Args)
}

// Terms computes a most general unifier of two term lists of equal length, or
// returns false if none exists.  The returned substitution is idempotent:
// applying it twice gives the same result as applying it once.
func Terms(lhs []fol.Term, rhs []fol.Term) (fol.Substitution, bool) {
	if len(lhs) != len(rhs) {
		return nil, false
	}
	//
	subst := fol.Substitution{}
	//
	for i := range lhs {
		if !unify(lhs[i].Substitute(subst), rhs[i].Substitute(subst), subst) {
			return nil, false
		}
	}
	// Resolve bindings against each other, making the substitution idempotent.
	for name, term := range subst {
		subst[name] = term.Substitute(subst)
	}
	//
	return subst, true
}

// unify a pair of terms under a growing substitution, which both terms have
// already been rewritten by.  Returns false if the terms admit no unifier.
func unify(lhs fol.Term, rhs fol.Term, subst fol.Substitution) bool {
	// Identical terms unify under no further bindings.
	if lhs.Cmp(rhs) == 0 {
		return true
	}
	//
	switch l := lhs.(type) {
	case fol.Variable:
		return bind(l, rhs, subst)
	case fol.Constant:
		if r, ok := rhs.(fol.Variable); ok {
			return bind(r, lhs, subst)
		}
		// Distinct constants, or a constant against a function.
		return false
	case fol.Function:
		switch r := rhs.(type) {
		case fol.Variable:
			return bind(r, lhs, subst)
		case fol.Function:
			if l.Name != r.Name || len(l.Args) != len(r.Args) {
				return false
			}
			// Unify arguments left-to-right under the growing substitution.
			for i := range l.Args {
				larg := l.Args[i].Substitute(subst)
				rarg := r.Args[i].Substitute(subst)
				//
				if !unify(larg, rarg, subst) {
					return false
				}
			}
			//
			return true
		}
	}
	//
	return false
}

// bind a variable to a term, subject to the occurs check.  A variable may not
// be bound to a term containing itself, as no finite term satisfies such an
// equation.
func bind(v fol.Variable, term fol.Term, subst fol.Substitution) bool {
	if term.ContainsVar(v.Name) {
		return false
	}
	//
	subst[v.Name] = term
	//
	return true
}
