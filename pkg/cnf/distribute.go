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
package cnf

import (
	"fmt"

	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/fol"
)

// distribute rewrites a quantifier-free formula in negation normal form into
// conjunctive normal form, by repeatedly distributing disjunction over
// conjunction.
func distribute(f fol.Formula) fol.Formula {
	switch t := f.(type) {
	case fol.And:
		return fol.And{Left: distribute(t.Left), Right: distribute(t.Right)}
	case fol.Or:
		left := distribute(t.Left)
		right := distribute(t.Right)
		//
		if conj, ok := left.(fol.And); ok {
			return fol.And{
				Left:  distribute(fol.Or{Left: conj.Left, Right: right}),
				Right: distribute(fol.Or{Left: conj.Right, Right: right}),
			}
		} else if conj, ok := right.(fol.And); ok {
			return fol.And{
				Left:  distribute(fol.Or{Left: left, Right: conj.Left}),
				Right: distribute(fol.Or{Left: left, Right: conj.Right}),
			}
		}
		//
		return fol.Or{Left: left, Right: right}
	default:
		return f
	}
}

// extractClauses splits a formula in conjunctive normal form into one clause
// per top-level conjunct.  Duplicate literals within a clause collapse as the
// clause is built.
func extractClauses(f fol.Formula, clauses []clause.Clause) ([]clause.Clause, error) {
	if conj, ok := f.(fol.And); ok {
		clauses, err := extractClauses(conj.Left, clauses)
		//
		if err != nil {
			return nil, err
		}
		//
		return extractClauses(conj.Right, clauses)
	}
	// Not a conjunction, hence a single disjunctive clause.
	literals, err := extractLiterals(f, nil)
	//
	if err != nil {
		return nil, err
	}
	//
	return append(clauses, clause.New(literals...)), nil
}

// extractLiterals collects the literals of a disjunctive subtree.
func extractLiterals(f fol.Formula, literals []clause.Literal) ([]clause.Literal, error) {
	switch t := f.(type) {
	case fol.Or:
		literals, err := extractLiterals(t.Left, literals)
		//
		if err != nil {
			return nil, err
		}
		//
		return extractLiterals(t.Right, literals)
	case fol.Atom:
		return append(literals, clause.NewLiteral(false, t.Predicate, t.Args...)), nil
	case fol.Not:
		if atom, ok := t.Body.(fol.Atom); ok {
			return append(literals, clause.NewLiteral(true, atom.Predicate, atom.Args...)), nil
		}
	}
	//
	return nil, fmt.Errorf("internal error: %T found where a disjunction of literals was expected", f)
}
