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

func TestParser_00(t *testing.T) {
	checkParse(t, "P", "P")
}

func TestParser_01(t *testing.T) {
	checkParse(t, "P(a)", "P(a)")
}

func TestParser_02(t *testing.T) {
	checkParse(t, "P(x, Abc, 0)", "P(x, Abc, 0)")
}

func TestParser_03(t *testing.T) {
	checkParse(t, "P(f(x, g(y)))", "P(f(x, g(y)))")
}

func TestParser_04(t *testing.T) {
	checkParse(t, "!P(a)", "!P(a)")
}

func TestParser_05(t *testing.T) {
	checkParse(t, "P(a)&Q(a)", "(P(a) & Q(a))")
}

func TestParser_06(t *testing.T) {
	// & binds tighter than |
	checkParse(t, "P | Q & R", "(P | (Q & R))")
}

func TestParser_07(t *testing.T) {
	// | binds tighter than ->
	checkParse(t, "P | Q -> R", "((P | Q) -> R)")
}

func TestParser_08(t *testing.T) {
	// -> is right associative
	checkParse(t, "P -> Q -> R", "(P -> (Q -> R))")
}

func TestParser_09(t *testing.T) {
	// -> binds tighter than <->
	checkParse(t, "P <-> Q -> R", "(P <-> (Q -> R))")
}

func TestParser_10(t *testing.T) {
	// & and | are left associative
	checkParse(t, "P & Q & R", "((P & Q) & R)")
	checkParse(t, "P | Q | R", "((P | Q) | R)")
}

func TestParser_11(t *testing.T) {
	checkParse(t, "forall x P(x)", "forall x P(x)")
}

func TestParser_12(t *testing.T) {
	// quantifiers bind tighter than binary connectives
	checkParse(t, "forall x P(x) & Q(x)", "(forall x P(x) & Q(x))")
}

func TestParser_13(t *testing.T) {
	checkParse(t, "forall x exists y Loves(x, y)", "forall x exists y Loves(x, y)")
}

func TestParser_14(t *testing.T) {
	checkParse(t, "!forall x (P(x) -> Q(x))", "!forall x (P(x) -> Q(x))")
}

func TestParser_15(t *testing.T) {
	// double negation is preserved structurally
	checkParse(t, "!!P", "!!P")
}

func TestParser_16(t *testing.T) {
	checkParse(t, "  P ( a ,b )  ", "P(a, b)")
}

func TestParser_17(t *testing.T) {
	checkParse(t, "((P(a)))", "P(a)")
}

func TestParser_18(t *testing.T) {
	checkParse(t,
		"forall animal (Cat(animal) -> Mammal(animal))",
		"forall animal (Cat(animal) -> Mammal(animal))")
}

func TestParser_19(t *testing.T) {
	checkParseFails(t, "")
}

func TestParser_20(t *testing.T) {
	// lowercase relation name
	checkParseFails(t, "p(a)")
}

func TestParser_21(t *testing.T) {
	// uppercase function name
	checkParseFails(t, "P(F(a))")
}

func TestParser_22(t *testing.T) {
	// uppercase bound variable
	checkParseFails(t, "forall X P(X)")
}

func TestParser_23(t *testing.T) {
	checkParseFails(t, "P(a")
	checkParseFails(t, "P(a))")
	checkParseFails(t, "(P(a)")
}

func TestParser_24(t *testing.T) {
	checkParseFails(t, "P &")
	checkParseFails(t, "& P")
	checkParseFails(t, "P Q")
}

func TestParser_25(t *testing.T) {
	// unknown symbols
	checkParseFails(t, "P(a) <- Q(a)")
	checkParseFails(t, "P(a) - Q(a)")
	checkParseFails(t, "P(a) = Q(a)")
}

func TestParser_26(t *testing.T) {
	checkParseFails(t, "forall P(x)")
	checkParseFails(t, "exists")
}

func TestParser_27(t *testing.T) {
	// empty argument lists are not written with braces
	checkParseFails(t, "P()")
}

func TestParser_28(t *testing.T) {
	// syntax errors carry the offending position
	_, errs := Parse("P(a) & q(b)")
	//
	assert.Equal(t, 1, len(errs))
	span := errs[0].Span()
	assert.Equal(t, 7, span.Start())
}

// checkParse parses the input, checks it prints as expected, and checks the
// printed form parses back to a structurally equal formula.
func checkParse(t *testing.T, input string, expected string) {
	t.Helper()
	//
	formula, errs := Parse(input)
	//
	assert.Equal(t, 0, len(errs), "unexpected syntax errors: %v", errs)
	assert.Equal(t, expected, formula.String())
	// Round trip through the canonical printer.
	reparsed, errs := Parse(formula.String())
	//
	assert.Equal(t, 0, len(errs), "round trip failed to parse: %v", errs)
	assert.True(t, formula.Equal(reparsed), "round trip not structurally equal: %s", reparsed)
}

func checkParseFails(t *testing.T, input string) {
	t.Helper()
	//
	_, errs := Parse(input)
	//
	assert.True(t, len(errs) > 0, "expected syntax error for %q", input)
}
