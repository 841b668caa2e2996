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

	"github.com/lemmalab/go-lemma/pkg/fol"
)

// eliminateConnectives rewrites implications and biconditionals into
// negation, conjunction and disjunction.  A biconditional expands into the
// conjunction of two disjunctions (rather than the disjunction of two
// conjunctions), which keeps the subsequent CNF distribution bounded.
func eliminateConnectives(f fol.Formula) fol.Formula {
	switch t := f.(type) {
	case fol.Implies:
		left := eliminateConnectives(t.Left)
		right := eliminateConnectives(t.Right)
		//
		return fol.Or{Left: fol.Not{Body: left}, Right: right}
	case fol.Iff:
		left := eliminateConnectives(t.Left)
		right := eliminateConnectives(t.Right)
		//
		return fol.And{
			Left:  fol.Or{Left: fol.Not{Body: left}, Right: right},
			Right: fol.Or{Left: left, Right: fol.Not{Body: right}},
		}
	case fol.Not:
		return fol.Not{Body: eliminateConnectives(t.Body)}
	case fol.And:
		return fol.And{Left: eliminateConnectives(t.Left), Right: eliminateConnectives(t.Right)}
	case fol.Or:
		return fol.Or{Left: eliminateConnectives(t.Left), Right: eliminateConnectives(t.Right)}
	case fol.ForAll:
		return fol.ForAll{Var: t.Var, Body: eliminateConnectives(t.Body)}
	case fol.Exists:
		return fol.Exists{Var: t.Var, Body: eliminateConnectives(t.Body)}
	default:
		return f
	}
}

// negationNormalForm pushes all negations inward until they apply to atoms
// only, applying De Morgan's laws, quantifier duality and double-negation
// elimination.  Assumes implications and biconditionals were eliminated
// beforehand.
func negationNormalForm(f fol.Formula) (fol.Formula, error) {
	switch t := f.(type) {
	case fol.Atom:
		return f, nil
	case fol.Not:
		return negatedNormalForm(t.Body)
	case fol.And:
		left, err := negationNormalForm(t.Left)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := negationNormalForm(t.Right)
		//
		return fol.And{Left: left, Right: right}, err
	case fol.Or:
		left, err := negationNormalForm(t.Left)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := negationNormalForm(t.Right)
		//
		return fol.Or{Left: left, Right: right}, err
	case fol.ForAll:
		body, err := negationNormalForm(t.Body)
		return fol.ForAll{Var: t.Var, Body: body}, err
	case fol.Exists:
		body, err := negationNormalForm(t.Body)
		return fol.Exists{Var: t.Var, Body: body}, err
	default:
		return nil, fmt.Errorf("internal error: unexpected connective %T in negation normal form", f)
	}
}

// negatedNormalForm converts the negation of a given formula into negation
// normal form.
func negatedNormalForm(f fol.Formula) (fol.Formula, error) {
	switch t := f.(type) {
	case fol.Atom:
		return fol.Not{Body: f}, nil
	case fol.Not:
		// Double negation collapses.
		return negationNormalForm(t.Body)
	case fol.And:
		left, err := negatedNormalForm(t.Left)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := negatedNormalForm(t.Right)
		//
		return fol.Or{Left: left, Right: right}, err
	case fol.Or:
		left, err := negatedNormalForm(t.Left)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := negatedNormalForm(t.Right)
		//
		return fol.And{Left: left, Right: right}, err
	case fol.ForAll:
		body, err := negatedNormalForm(t.Body)
		return fol.Exists{Var: t.Var, Body: body}, err
	case fol.Exists:
		body, err := negatedNormalForm(t.Body)
		return fol.ForAll{Var: t.Var, Body: body}, err
	default:
		return nil, fmt.Errorf("internal error: unexpected connective %T under negation", f)
	}
}
