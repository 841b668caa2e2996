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
	"slices"

	"github.com/lemmalab/go-lemma/pkg/fol"
)

// skolemize eliminates every quantifier of a formula in negation normal form
// with standardized variables.  Each existential variable is replaced by a
// fresh Skolem function applied to the universal variables in scope at that
// point (a Skolem constant when none are); universal quantifiers are simply
// dropped, since clauses are implicitly universally closed.  Free variables of
// the original formula count as universals at the outermost scope, and so are
// passed as the initial scope.
//
// Performing the replacement in place of each existential, before any prenex
// movement, ensures a Skolem function depends on exactly the universals whose
// scope encloses it.
func skolemize(f fol.Formula, universals []string, skolems fol.Substitution, gen *SymbolGen) (fol.Formula, error) {
	switch t := f.(type) {
	case fol.Atom:
		return fol.Atom{Predicate: t.Predicate, Args: substituteTerms(t.Args, skolems)}, nil
	case fol.Not:
		atom, ok := t.Body.(fol.Atom)
		//
		if !ok {
			return nil, fmt.Errorf("internal error: negation of %T survived normal form conversion", t.Body)
		}
		//
		return fol.Not{Body: fol.Atom{Predicate: atom.Predicate, Args: substituteTerms(atom.Args, skolems)}}, nil
	case fol.And:
		left, err := skolemize(t.Left, universals, skolems, gen)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := skolemize(t.Right, universals, skolems, gen)
		//
		return fol.And{Left: left, Right: right}, err
	case fol.Or:
		left, err := skolemize(t.Left, universals, skolems, gen)
		//
		if err != nil {
			return nil, err
		}
		//
		right, err := skolemize(t.Right, universals, skolems, gen)
		//
		return fol.Or{Left: left, Right: right}, err
	case fol.ForAll:
		// Clone to avoid sibling branches aliasing the scope array.
		scope := append(slices.Clone(universals), t.Var)
		//
		return skolemize(t.Body, scope, skolems, gen)
	case fol.Exists:
		skolems[t.Var] = skolemTerm(gen.FreshSkolem(), universals)
		//
		return skolemize(t.Body, universals, skolems, gen)
	default:
		return nil, fmt.Errorf("internal error: unexpected connective %T during skolemization", f)
	}
}

// skolemTerm constructs the replacement term for an existential variable: a
// constant when no universals are in scope, otherwise a function of them.
func skolemTerm(name string, universals []string) fol.Term {
	if len(universals) == 0 {
		return fol.NewConstant(name)
	}
	//
	args := make([]fol.Term, len(universals))
	//
	for i, u := range universals {
		args[i] = fol.NewVariable(u)
	}
	//
	return fol.NewFunction(name, args...)
}

func substituteTerms(args []fol.Term, subst fol.Substitution) []fol.Term {
	if len(args) == 0 {
		return args
	}
	//
	nargs := make([]fol.Term, len(args))
	//
	for i, arg := range args {
		nargs[i] = arg.Substitute(subst)
	}
	//
	return nargs
}
