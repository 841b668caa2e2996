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
	"strings"
	"testing"

	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/cnf"
	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/util/assert"
)

func TestRefute_00(t *testing.T) {
	// Modus ponens: P -> Q, P |- Q
	result := refute(t,
		[]string{"forall x (P(x) -> Q(x))", "P(a)"},
		"Q(a)")
	//
	assert.Equal(t, PROVED, result.Outcome)
	checkTrace(t, result)
	// premises, negated conclusion, one intermediate resolvent, empty clause
	assert.Equal(t, 5, len(result.Proof))
	assert.Equal(t, "0. !P(x), Q(x) (Premise, Axiom 0)", result.Proof[0].String())
	assert.Equal(t, "1. P(a) (Premise, Axiom 1)", result.Proof[1].String())
	assert.Equal(t, "2. !Q(a) (Conclusion)", result.Proof[2].String())
	assert.True(t, strings.HasPrefix(result.Proof[4].String(), "4. ⊥ (Resolve "))
}

func TestRefute_01(t *testing.T) {
	// Non-consequence: P(a) does not entail Q(a)
	result := refute(t, []string{"P(a)"}, "Q(a)")
	//
	assert.Equal(t, SATURATED, result.Outcome)
	assert.Equal(t, 0, len(result.Proof))
}

func TestRefute_02(t *testing.T) {
	// Chained implications
	result := refute(t,
		[]string{
			"forall x (Man(x) -> Mortal(x))",
			"forall x (Greek(x) -> Man(x))",
			"Greek(Socrates)",
		},
		"Mortal(Socrates)")
	//
	assert.Equal(t, PROVED, result.Outcome)
	checkTrace(t, result)
}

func TestRefute_03(t *testing.T) {
	// Skolem constants from premises flow into the trace
	result := refute(t,
		[]string{
			"forall animal (Cat(animal) -> Mammal(animal))",
			"exists animal (Pet(animal) & !Mammal(animal))",
		},
		"exists animal (Pet(animal) & !Cat(animal))")
	//
	assert.Equal(t, PROVED, result.Outcome)
	checkTrace(t, result)
	assert.True(t, strings.Contains(result.TraceString(), "sk_0"),
		"expected a Skolem constant in the trace:\n%s", result.TraceString())
}

func TestRefute_04(t *testing.T) {
	// Even/odd
	result := refute(t,
		[]string{
			"forall x !(Even(x) & Odd(x))",
			"forall x ((Even(x) -> Odd(addOne(x))) & (Odd(x) -> Even(addOne(x))))",
			"Integer(0) & Even(0)",
		},
		"!Even(addOne(0))")
	//
	assert.Equal(t, PROVED, result.Outcome)
	checkTrace(t, result)
}

func TestRefute_05(t *testing.T) {
	// An infinite generator exhausts a tight resolvent budget
	budget := Budget{MaxResolvents: 10}
	//
	result := refuteWith(t, budget,
		[]string{"P(A)", "forall x (P(x) -> P(f(x)))"},
		"Q(A)")
	//
	assert.Equal(t, EXHAUSTED, result.Outcome)
}

func TestRefute_06(t *testing.T) {
	// A tight iteration cap also exhausts
	budget := Budget{MaxProcessed: 1}
	//
	result := refuteWith(t, budget,
		[]string{"P(A)", "forall x (P(x) -> P(f(x)))"},
		"Q(A)")
	//
	assert.Equal(t, EXHAUSTED, result.Outcome)
}

func TestRefute_07(t *testing.T) {
	// Bounding term depth turns the same generator into saturation
	budget := Budget{MaxTermDepth: 3}
	//
	result := refuteWith(t, budget,
		[]string{"P(A)", "forall x (P(x) -> P(f(x)))"},
		"Q(A)")
	//
	assert.Equal(t, SATURATED, result.Outcome)
}

func TestRefute_08(t *testing.T) {
	// Deep goals within the depth budget are still reached
	goal := "P(f(f(f(f(f(f(f(f(A)))))))))"
	//
	result := refute(t,
		[]string{"P(A)", "forall x (P(x) -> P(f(x)))"},
		goal)
	//
	assert.Equal(t, PROVED, result.Outcome)
	checkTrace(t, result)
}

func TestRefute_09(t *testing.T) {
	// Determinism: identical inputs yield byte-identical traces
	axioms := []string{
		"forall x (Man(x) -> Mortal(x))",
		"forall x (Greek(x) -> Man(x))",
		"Greek(Socrates)",
	}
	//
	first := refute(t, axioms, "Mortal(Socrates)")
	second := refute(t, axioms, "Mortal(Socrates)")
	//
	assert.Equal(t, first.TraceString(), second.TraceString())
}

func TestRefute_10(t *testing.T) {
	// Factoring: P(x) | P(y) with !P(a) | !P(b) requires a factor step
	result := refute(t,
		[]string{"forall x forall y (P(x) | P(y))"},
		"exists x exists y (P(x) & P(y))")
	//
	assert.Equal(t, PROVED, result.Outcome)
}

func TestRefute_11(t *testing.T) {
	// Theorem premises are labelled as such
	theorem := premisesOf(t, SOURCE_THEOREM, "!Even(addOne(0))")
	conclusion := clausesOf(t, "!!forall x Even(x)")
	//
	result := Refute(theorem, conclusion, DefaultBudget())
	//
	assert.Equal(t, PROVED, result.Outcome)
	assert.True(t, strings.Contains(result.TraceString(), "(Premise, Theorem 0)"),
		"expected a theorem premise in the trace:\n%s", result.TraceString())
}

func TestSubsumes_00(t *testing.T) {
	// P(x) subsumes P(A)
	general := clausesOf(t, "forall x P(x)")[0]
	ground := clausesOf(t, "P(A)")[0]
	//
	assert.True(t, Subsumes(general, ground))
	assert.False(t, Subsumes(ground, general))
}

func TestSubsumes_01(t *testing.T) {
	// P(x) subsumes P(a) | Q(b)
	general := clausesOf(t, "forall x P(x)")[0]
	wider := clausesOf(t, "P(a) | Q(b)")[0]
	//
	assert.True(t, Subsumes(general, wider))
	assert.False(t, Subsumes(wider, general))
}

func TestSubsumes_02(t *testing.T) {
	// A consistent assignment is required across literals
	lhs := clausesOf(t, "forall x (P(x) | Q(x))")[0]
	rhs := clausesOf(t, "P(a) | Q(b)")[0]
	//
	assert.False(t, Subsumes(lhs, rhs))
}

func TestSubsumes_03(t *testing.T) {
	// Every clause subsumes itself, and renamings of itself
	c := clausesOf(t, "forall x (P(x) | Q(x))")[0]
	d := clausesOf(t, "forall y (P(y) | Q(y))")[0]
	//
	assert.True(t, Subsumes(c, d))
	assert.True(t, Subsumes(d, c))
}

func TestSubsumes_04(t *testing.T) {
	// Polarity matters
	pos := clausesOf(t, "forall x P(x)")[0]
	neg := clausesOf(t, "forall x !P(x)")[0]
	//
	assert.False(t, Subsumes(pos, neg))
}

// ============================================================================
// Helpers
// ============================================================================

// refute clausifies axioms and the negated goal, then runs the engine under
// the default budget.
func refute(t *testing.T, axioms []string, goal string) Result {
	t.Helper()
	return refuteWith(t, DefaultBudget(), axioms, goal)
}

func refuteWith(t *testing.T, budget Budget, axioms []string, goal string) Result {
	t.Helper()
	//
	gen := cnf.NewSymbolGen()
	//
	var premises []Premise
	//
	for i, axiom := range axioms {
		for _, c := range parseClauses(t, axiom, gen) {
			premises = append(premises, Premise{Source{SOURCE_AXIOM, i}, c})
		}
	}
	//
	conclusions := parseClauses(t, "!("+goal+")", gen)
	//
	return Refute(premises, conclusions, budget)
}

// premisesOf clausifies a single formula as a premise of the given source.
func premisesOf(t *testing.T, kind uint, formula string) []Premise {
	t.Helper()
	//
	var premises []Premise
	//
	for _, c := range clausesOf(t, formula) {
		premises = append(premises, Premise{Source{kind, 0}, c})
	}
	//
	return premises
}

func clausesOf(t *testing.T, formula string) []clause.Clause {
	t.Helper()
	return parseClauses(t, formula, cnf.NewSymbolGen())
}

func parseClauses(t *testing.T, text string, gen *cnf.SymbolGen) []clause.Clause {
	t.Helper()
	//
	parsed, errs := fol.Parse(text)
	//
	assert.Equal(t, 0, len(errs), "unexpected syntax errors: %v", errs)
	//
	clauses, err := cnf.Clausify(parsed, gen)
	//
	assert.NoError(t, err)
	//
	return clauses
}

// checkTrace verifies the soundness conditions of a proof trace: every step
// is either an input or derived from earlier steps, and the last step is the
// empty clause.
func checkTrace(t *testing.T, result Result) {
	t.Helper()
	//
	assert.True(t, len(result.Proof) > 0, "expected a non-empty proof")
	//
	for i, step := range result.Proof {
		assert.Equal(t, i, step.Index)
		//
		switch step.Kind {
		case STEP_RESOLVED:
			assert.True(t, step.Left < i && step.Right < i,
				"step %d resolves later steps %d, %d", i, step.Left, step.Right)
		case STEP_FACTORED:
			assert.True(t, step.Left < i, "step %d factors later step %d", i, step.Left)
		}
	}
	//
	last := result.Proof[len(result.Proof)-1]
	//
	assert.True(t, last.Clause.IsEmpty(), "expected the trace to end at the empty clause")
	assert.Equal(t, STEP_RESOLVED, last.Kind)
}
