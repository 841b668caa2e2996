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

// standardizer renames bound variables apart, so that no two quantifiers (nor
// a quantifier and a free variable) share a name.  The first occurrence of a
// name is kept as-is, which keeps traces close to what the user wrote; later
// occurrences are suffixed with a monotonic counter.  Suffixed names contain
// an underscore and hence cannot collide with user-written identifiers.
type standardizer struct {
	// All names handed out so far.
	seen map[string]bool
	// Stack of renamings for each bound variable.
	bound map[string][]string
	// Renaming for each free variable.
	free map[string]string
	// Monotonic counter for suffix generation.
	next uint
}

func newStandardizer() *standardizer {
	return &standardizer{
		seen:  make(map[string]bool),
		bound: make(map[string][]string),
		free:  make(map[string]string),
	}
}

// fresh hands out a name based on the given one, reusing it verbatim if it was
// never seen before.
func (p *standardizer) fresh(name string) string {
	if !p.seen[name] {
		p.seen[name] = true
		return name
	}
	//
	for {
		candidate := fmt.Sprintf("%s_%d", name, p.next)
		p.next++
		//
		if !p.seen[candidate] {
			p.seen[candidate] = true
			return candidate
		}
	}
}

// pushBound enters the scope of a quantifier binding the given variable.
func (p *standardizer) pushBound(name string) string {
	renamed := p.fresh(name)
	p.bound[name] = append(p.bound[name], renamed)
	//
	return renamed
}

// popBound leaves the scope of a quantifier binding the given variable.
func (p *standardizer) popBound(name string) {
	stack := p.bound[name]
	p.bound[name] = stack[:len(stack)-1]
}

// resolve maps a variable occurrence to its standardized name.  Occurrences
// outside any binder are free, and each free variable maps to a single
// standardized name.
func (p *standardizer) resolve(name string) string {
	if stack := p.bound[name]; len(stack) != 0 {
		return stack[len(stack)-1]
	} else if renamed, ok := p.free[name]; ok {
		return renamed
	}
	//
	renamed := p.fresh(name)
	p.free[name] = renamed
	//
	return renamed
}

// standardizeApart renames every bound variable of a formula to a globally
// fresh name.  This must happen before Skolemization, since Skolem functions
// close over the enclosing universal variables by name.
func standardizeApart(f fol.Formula) fol.Formula {
	return standardizeFormula(f, newStandardizer())
}

func standardizeFormula(f fol.Formula, names *standardizer) fol.Formula {
	switch t := f.(type) {
	case fol.Atom:
		return fol.Atom{Predicate: t.Predicate, Args: standardizeTerms(t.Args, names)}
	case fol.Not:
		return fol.Not{Body: standardizeFormula(t.Body, names)}
	case fol.And:
		left := standardizeFormula(t.Left, names)
		right := standardizeFormula(t.Right, names)
		//
		return fol.And{Left: left, Right: right}
	case fol.Or:
		left := standardizeFormula(t.Left, names)
		right := standardizeFormula(t.Right, names)
		//
		return fol.Or{Left: left, Right: right}
	case fol.ForAll:
		renamed := names.pushBound(t.Var)
		body := standardizeFormula(t.Body, names)
		names.popBound(t.Var)
		//
		return fol.ForAll{Var: renamed, Body: body}
	case fol.Exists:
		renamed := names.pushBound(t.Var)
		body := standardizeFormula(t.Body, names)
		names.popBound(t.Var)
		//
		return fol.Exists{Var: renamed, Body: body}
	default:
		// Implications and biconditionals were eliminated beforehand.
		panic("unreachable")
	}
}

func standardizeTerms(args []fol.Term, names *standardizer) []fol.Term {
	nargs := make([]fol.Term, len(args))
	//
	for i, arg := range args {
		nargs[i] = standardizeTerm(arg, names)
	}
	//
	return nargs
}

func standardizeTerm(term fol.Term, names *standardizer) fol.Term {
	switch t := term.(type) {
	case fol.Variable:
		return fol.NewVariable(names.resolve(t.Name))
	case fol.Function:
		return fol.Function{Name: t.Name, Args: standardizeTerms(t.Args, names)}
	default:
		return term
	}
}
