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
package kb

import (
	"strings"
	"testing"

	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/rank"
	"github.com/lemmalab/go-lemma/pkg/saturate"
	"github.com/lemmalab/go-lemma/pkg/util/assert"
)

func TestKb_00(t *testing.T) {
	// Modus ponens end to end
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "forall x (P(x) -> Q(x))", "")
	addAxiom(t, knowledge, "P(a)", "")
	//
	result := prove(t, knowledge, "Q(a)", "")
	//
	assert.Equal(t, saturate.PROVED, result.Outcome)
	// the proved theorem is now stored
	entry, err := knowledge.Get(KIND_THEOREM, 0)
	//
	assert.NoError(t, err)
	assert.Equal(t, "Q(a)", entry.Formula.String())
}

func TestKb_01(t *testing.T) {
	// Failed proofs leave the theorem list untouched
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "P(a)", "")
	//
	result := prove(t, knowledge, "Q(a)", "")
	//
	assert.Equal(t, saturate.SATURATED, result.Outcome)
	//
	theorems, err := knowledge.List(KIND_THEOREM)
	//
	assert.NoError(t, err)
	assert.Equal(t, 0, len(theorems))
}

func TestKb_02(t *testing.T) {
	// Lemma reuse: a proved theorem serves as a premise
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "forall x !(Even(x) & Odd(x))", "")
	addAxiom(t, knowledge, "forall x ((Even(x) -> Odd(addOne(x))) & (Odd(x) -> Even(addOne(x))))", "")
	addAxiom(t, knowledge, "Integer(0) & Even(0)", "")
	//
	first := prove(t, knowledge, "!Even(addOne(0))", "successor of even is odd")
	assert.Equal(t, saturate.PROVED, first.Outcome)
	//
	second := prove(t, knowledge, "!forall x Even(x)", "not everything is even")
	assert.Equal(t, saturate.PROVED, second.Outcome)
	//
	assert.True(t, strings.Contains(second.TraceString(), "(Premise, Theorem 0)"),
		"expected the lemma to justify a premise:\n%s", second.TraceString())
}

func TestKb_03(t *testing.T) {
	// A trivially valid goal is refuted from its negated goal alone: the
	// conclusions !P(sk_0) and P(sk_0) resolve to ⊥ in one step
	knowledge := New(rank.All{}, 0)
	//
	result := prove(t, knowledge, "forall x (P(x) | !P(x))", "")
	//
	assert.Equal(t, saturate.PROVED, result.Outcome)
	assert.Equal(t, 3, len(result.Proof))
	assert.Equal(t, "2. ⊥ (Resolve 0, 1)", result.Proof[2].String())
}

func TestKb_04(t *testing.T) {
	// Skolem symbols stay distinct across axioms
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "exists x P(x)", "")
	addAxiom(t, knowledge, "exists x Q(x)", "")
	//
	axioms, err := knowledge.List(KIND_AXIOM)
	//
	assert.NoError(t, err)
	assert.Equal(t, "P(sk_0)", axioms[0].Clauses[0].String())
	assert.Equal(t, "Q(sk_1)", axioms[1].Clauses[0].String())
}

func TestKb_05(t *testing.T) {
	// A failed proof does not advance Skolem numbering
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "P(a)", "")
	// The negated goal introduces a Skolem constant transiently.
	result := prove(t, knowledge, "forall x Q(x)", "")
	assert.Equal(t, saturate.SATURATED, result.Outcome)
	// Numbering is unaffected by the failed attempt.
	addAxiom(t, knowledge, "exists x R(x)", "")
	//
	entry, err := knowledge.Get(KIND_AXIOM, 1)
	//
	assert.NoError(t, err)
	assert.Equal(t, "R(sk_0)", entry.Clauses[0].String())
}

func TestKb_06(t *testing.T) {
	// Descriptions can be attached and replaced
	knowledge := New(rank.All{}, 0)
	//
	addAxiom(t, knowledge, "P(a)", "initial")
	//
	assert.NoError(t, knowledge.Describe(KIND_AXIOM, 0, "replaced"))
	//
	entry, err := knowledge.Get(KIND_AXIOM, 0)
	//
	assert.NoError(t, err)
	assert.Equal(t, "replaced", entry.Description)
}

func TestKb_07(t *testing.T) {
	// Store-level errors
	knowledge := New(rank.All{}, 0)
	//
	_, err := knowledge.Get(KIND_AXIOM, 0)
	assert.True(t, err != nil)
	//
	err = knowledge.Describe(KIND_THEOREM, 3, "nothing here")
	assert.True(t, err != nil)
	//
	_, err = knowledge.List(99)
	assert.Equal(t, ErrUnknownKind, err)
}

func TestKb_08(t *testing.T) {
	// The lemma cap limits how many theorems are included
	knowledge := New(rank.All{}, 1)
	//
	addAxiom(t, knowledge, "P(a) & P(b) & Q(a)", "")
	//
	assert.Equal(t, saturate.PROVED, prove(t, knowledge, "P(a)", "first lemma").Outcome)
	assert.Equal(t, saturate.PROVED, prove(t, knowledge, "P(b)", "second lemma").Outcome)
	// With a cap of one, only the first-ranked lemma may appear.
	result := prove(t, knowledge, "Q(a)", "goal")
	trace := result.TraceString()
	//
	assert.False(t, strings.Contains(trace, "Theorem 1"), "lemma cap exceeded:\n%s", trace)
}

func TestKb_09(t *testing.T) {
	// Unselected lemmas are omitted: with no goal description, the lexical
	// selector selects nothing, and the goal is proved from the axiom alone.
	knowledge := New(rank.Lexical{}, 0)
	//
	addAxiom(t, knowledge, "P(a)", "")
	assert.Equal(t, saturate.PROVED, prove(t, knowledge, "P(a) | Q(a)", "p or q holds").Outcome)
	// Without a description nothing is selected, so no premise may be
	// justified by a theorem.
	result := prove(t, knowledge, "P(a) | R(a)", "")
	//
	assert.Equal(t, saturate.PROVED, result.Outcome)
	assert.False(t, strings.Contains(result.TraceString(), "Theorem"))
}

func addAxiom(t *testing.T, knowledge *KnowledgeBase, text string, description string) {
	t.Helper()
	//
	formula, errs := fol.Parse(text)
	//
	assert.Equal(t, 0, len(errs), "unexpected syntax errors: %v", errs)
	//
	_, err := knowledge.AddAxiom(formula, description)
	//
	assert.NoError(t, err)
}

func prove(t *testing.T, knowledge *KnowledgeBase, text string, description string) saturate.Result {
	t.Helper()
	//
	formula, errs := fol.Parse(text)
	//
	assert.Equal(t, 0, len(errs), "unexpected syntax errors: %v", errs)
	//
	result, err := knowledge.Prove(formula, description, saturate.DefaultBudget())
	//
	assert.NoError(t, err)
	//
	return result
}
