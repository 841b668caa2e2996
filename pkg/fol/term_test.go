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
	"testing"

	"github.com/lemmalab/go-lemma/pkg/util/assert"
)

func TestTerm_00(t *testing.T) {
	term := NewFunction("f", NewVariable("x"), NewConstant("A"))
	//
	assert.Equal(t, "f(x, A)", term.String())
	assert.Equal(t, uint(2), term.Depth())
	assert.True(t, term.ContainsVar("x"))
	assert.False(t, term.ContainsVar("y"))
}

func TestTerm_01(t *testing.T) {
	// substitution rewrites variables, chasing bindings transitively
	term := NewFunction("f", NewVariable("x"))
	subst := Substitution{"x": NewVariable("y"), "y": NewConstant("A")}
	//
	assert.Equal(t, "f(A)", term.Substitute(subst).String())
}

func TestTerm_02(t *testing.T) {
	// substitution leaves constants and unbound variables alone
	term := NewFunction("f", NewVariable("z"), NewConstant("B"))
	subst := Substitution{"x": NewConstant("A")}
	//
	assert.Equal(t, "f(z, B)", term.Substitute(subst).String())
}

func TestTerm_03(t *testing.T) {
	// total order: variables < constants < functions
	v, c, f := NewVariable("x"), NewConstant("A"), NewFunction("f", NewVariable("x"))
	//
	assert.True(t, v.Cmp(c) < 0)
	assert.True(t, c.Cmp(f) < 0)
	assert.True(t, f.Cmp(v) > 0)
	assert.Equal(t, 0, f.Cmp(NewFunction("f", NewVariable("x"))))
}

func TestTerm_04(t *testing.T) {
	// vars are reported in first-occurrence order
	term := NewFunction("f", NewVariable("y"), NewFunction("g", NewVariable("x"), NewVariable("y")))
	vars := NewVarSet()
	term.Vars(vars)
	//
	assert.Equal(t, []string{"y", "x"}, vars.Names())
}

func TestTerm_05(t *testing.T) {
	assert.True(t, IsVariableName("x"))
	assert.True(t, IsVariableName("animal"))
	assert.False(t, IsVariableName("Abc"))
	assert.True(t, IsConstantName("Abc"))
	assert.True(t, IsConstantName("0"))
	assert.False(t, IsConstantName("x"))
}

func TestFormula_00(t *testing.T) {
	// free variables, given bound context
	formula, errs := Parse("forall x (P(x, y) & exists z Q(z, w))")
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, []string{"y", "w"}, FreeVariables(formula))
}

func TestFormula_01(t *testing.T) {
	// a variable is free where its binder is out of scope
	formula, errs := Parse("(forall x P(x)) & Q(x)")
	//
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, []string{"x"}, FreeVariables(formula))
}
