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

// Package cnf rewrites first-order formulas into equisatisfiable sets of
// clauses.  The rewrite order is fixed, since Skolemization does not commute
// with the later rearrangements: connective elimination, negation normal
// form, standardizing variables apart, Skolemization (which also drops the
// now-redundant universal quantifiers), and finally distribution of
// disjunction over conjunction.
package cnf

import (
	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/util"
)

// Clausify transforms a formula into a set of clauses which is equisatisfiable
// with it, modulo the fresh Skolem symbols drawn from the given generator.
// Tautological clauses are dropped; consequently an empty result means the
// input formula is itself a tautology.  Errors indicate an internal failure,
// since every grammatical formula can be clausified.
func Clausify(f fol.Formula, gen *SymbolGen) ([]clause.Clause, error) {
	// Eliminate -> and <->
	f = eliminateConnectives(f)
	// Push negations down to atoms
	f, err := negationNormalForm(f)
	//
	if err != nil {
		return nil, err
	}
	// Rename bound variables apart
	f = standardizeApart(f)
	// Eliminate quantifiers.  Free variables count as outermost universals.
	f, err = skolemize(f, fol.FreeVariables(f), fol.Substitution{}, gen)
	//
	if err != nil {
		return nil, err
	}
	// Distribute disjunction over conjunction
	f = distribute(f)
	// Split into clauses
	clauses, err := extractClauses(f, nil)
	//
	if err != nil {
		return nil, err
	}
	// Drop tautologies
	clauses = util.RemoveMatching(clauses, func(c clause.Clause) bool {
		return c.IsTautology()
	})
	//
	return clauses, nil
}
