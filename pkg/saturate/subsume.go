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
package saturate

import (
	"maps"

	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/fol"
)

// Subsumes checks whether one clause subsumes another, that is whether some
// substitution maps every literal of the subsumer onto a distinct literal of
// the subsumee.  A subsumed clause is logically redundant and can be dropped
// without losing refutations.
func Subsumes(subsumer clause.Clause, subsumee clause.Clause) bool {
	// A multiset inclusion cannot hold into a smaller clause.
	if subsumer.Size() > subsumee.Size() {
		return false
	}
	//
	used := make([]bool, subsumee.Size())
	//
	return matchLiterals(subsumer.Literals(), subsumee.Literals(), used, fol.Substitution{})
}

// matchLiterals searches for an injective assignment of the remaining
// subsumer literals onto unused subsumee literals, consistent with the
// matching substitution accumulated so far.  Backtracks on failure.
func matchLiterals(remaining []clause.Literal, candidates []clause.Literal, used []bool, subst fol.Substitution) bool {
	if len(remaining) == 0 {
		return true
	}
	//
	lit := remaining[0]
	//
	for i, candidate := range candidates {
		if used[i] || lit.Negated != candidate.Negated || lit.Predicate != candidate.Predicate ||
			len(lit.Args) != len(candidate.Args) {
			continue
		}
		// Match under a scratch substitution, so failure leaves ours intact.
		attempt := maps.Clone(subst)
		//
		if matchTerms(lit.Args, candidate.Args, attempt) {
			used[i] = true
			//
			if matchLiterals(remaining[1:], candidates, used, attempt) {
				return true
			}
			//
			used[i] = false
		}
	}
	//
	return false
}

// matchTerms performs one-way matching of a pattern argument list against a
// concrete one: variables of the pattern may be bound, whereas the candidate
// side is left untouched.
func matchTerms(pattern []fol.Term, concrete []fol.Term, subst fol.Substitution) bool {
	for i := range pattern {
		if !matchTerm(pattern[i], concrete[i], subst) {
			return false
		}
	}
	//
	return true
}

func matchTerm(pattern fol.Term, concrete fol.Term, subst fol.Substitution) bool {
	switch p := pattern.(type) {
	case fol.Variable:
		if bound, ok := subst[p.Name]; ok {
			return bound.Cmp(concrete) == 0
		}
		//
		subst[p.Name] = concrete
		//
		return true
	case fol.Constant:
		return p.Cmp(concrete) == 0
	case fol.Function:
		c, ok := concrete.(fol.Function)
		//
		if !ok || p.Name != c.Name || len(p.Args) != len(c.Args) {
			return false
		}
		//
		return matchTerms(p.Args, c.Args, subst)
	}
	//
	return false
}
