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

// Package kb maintains the knowledge base of a proof session: the ordered,
// append-only lists of accepted axioms and proved theorems, and the prove
// operation the interactive shell calls.  The knowledge base owns the
// session's Skolem symbol generator, so symbols minted across entries never
// collide.
package kb

import (
	"errors"
	"fmt"

	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/cnf"
	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/rank"
	"github.com/lemmalab/go-lemma/pkg/saturate"
	log "github.com/sirupsen/logrus"
)

// KIND_AXIOM identifies the axiom list.
const KIND_AXIOM uint = 0

// KIND_THEOREM identifies the theorem list.
const KIND_THEOREM uint = 1

// ErrUnknownKind indicates a kind other than axiom or theorem was named.
var ErrUnknownKind = errors.New("unknown kind (expected axiom or theorem)")

// ErrIndexOutOfRange indicates an entry index beyond the named list.
var ErrIndexOutOfRange = errors.New("index out of range")

// Entry is a stored axiom or theorem: the original formula, an optional
// natural-language description, and the clausal form the formula was
// normalised into when it entered the knowledge base.  Entries are immutable
// except for attaching a description.
type Entry struct {
	// Index of this entry within its list.
	Index int
	// Formula as originally stated.
	Formula fol.Formula
	// Description is optional prose attached by the user, and is what premise
	// selection ranks on.
	Description string
	// Clauses holds the clausal form of the formula.
	Clauses []clause.Clause
}

// KnowledgeBase is the façade the interactive shell drives.  It is not safe
// for concurrent use; the session is strictly synchronous.
type KnowledgeBase struct {
	axioms   []Entry
	theorems []Entry
	// Session-wide Skolem symbol generator.
	symbols *cnf.SymbolGen
	// Premise selection over proved lemmas.
	selector rank.Selector
	// Cap on the number of lemmas included per proof (0 = unlimited).
	lemmaLimit int
}

// New constructs an empty knowledge base using the given premise selector.
func New(selector rank.Selector, lemmaLimit int) *KnowledgeBase {
	return &KnowledgeBase{
		symbols:    cnf.NewSymbolGen(),
		selector:   selector,
		lemmaLimit: lemmaLimit,
	}
}

// AddAxiom clausifies a formula and appends it to the axiom list, returning
// its index.  Axioms are accepted without proof, but clausification must
// succeed for the axiom to be admitted.
func (p *KnowledgeBase) AddAxiom(formula fol.Formula, description string) (int, error) {
	clauses, err := cnf.Clausify(formula, p.symbols)
	//
	if err != nil {
		return 0, err
	}
	//
	index := len(p.axioms)
	p.axioms = append(p.axioms, Entry{index, formula, description, clauses})
	//
	return index, nil
}

// Prove attempts to derive a formula from the axioms together with a selected
// subset of previously proved theorems, by refuting its negation.  On success
// the formula is appended to the theorem list, so later proofs may use it as
// a lemma.  Failed attempts leave the knowledge base untouched.
func (p *KnowledgeBase) Prove(goal fol.Formula, description string, budget saturate.Budget) (saturate.Result, error) {
	// Clausify the negated goal against a snapshot of the symbol generator,
	// so an unsuccessful attempt cannot perturb later Skolem numbering.
	symbols := p.symbols.Clone()
	//
	negated, err := cnf.Clausify(fol.Not{Body: goal}, symbols)
	//
	if err != nil {
		return saturate.Result{}, err
	}
	// An empty clause set means the negated goal is itself a tautology, hence
	// the goal is unsatisfiable; this case is recorded as a one-step proof.
	if len(negated) == 0 {
		result := saturate.Result{
			Outcome: saturate.PROVED,
			Proof:   []saturate.Step{{Index: 0, Clause: clause.Empty(), Kind: saturate.STEP_CONCLUSION}},
		}
		//
		p.commit(goal, description, symbols)
		//
		return result, nil
	}
	//
	result := saturate.Refute(p.premises(description), negated, budget)
	//
	log.Debugf("saturation: %s", result.Stats)
	//
	if result.Proved() {
		p.commit(goal, description, symbols)
	}
	//
	return result, nil
}

// premises assembles the premise clause set for a proof attempt: every axiom,
// plus the lemmas chosen by the premise selector.
func (p *KnowledgeBase) premises(description string) []saturate.Premise {
	var premises []saturate.Premise
	//
	for _, axiom := range p.axioms {
		for _, c := range axiom.Clauses {
			premises = append(premises, saturate.Premise{
				Source: saturate.Source{Kind: saturate.SOURCE_AXIOM, Index: axiom.Index},
				Clause: c,
			})
		}
	}
	//
	for _, index := range p.selectLemmas(description) {
		theorem := p.theorems[index]
		//
		for _, c := range theorem.Clauses {
			premises = append(premises, saturate.Premise{
				Source: saturate.Source{Kind: saturate.SOURCE_THEOREM, Index: theorem.Index},
				Clause: c,
			})
		}
	}
	//
	return premises
}

// selectLemmas consults the premise selector, applying the lemma cap.  The
// selection is advisory, so a selector failure merely logs a warning and
// falls back to including every lemma.
func (p *KnowledgeBase) selectLemmas(description string) []int {
	if len(p.theorems) == 0 {
		return nil
	}
	//
	candidates := make([]string, len(p.theorems))
	//
	for i, theorem := range p.theorems {
		candidates[i] = theorem.Description
	}
	//
	selected, err := p.selector.Select(description, candidates)
	//
	if err != nil {
		log.Warnf("premise selection failed (%v); including all lemmas", err)
		//
		selected, _ = rank.All{}.Select(description, candidates)
	}
	//
	if p.lemmaLimit != 0 && len(selected) > p.lemmaLimit {
		selected = selected[:p.lemmaLimit]
	}
	//
	log.Debugf("selected lemmas %v for goal %q", selected, description)
	//
	return selected
}

// commit clausifies a proved goal and appends it to the theorem list,
// adopting the symbol generator the goal was clausified against.
func (p *KnowledgeBase) commit(goal fol.Formula, description string, symbols *cnf.SymbolGen) {
	clauses, err := cnf.Clausify(goal, symbols)
	//
	if err != nil {
		// Cannot happen: the negation of this formula clausified already.
		log.Errorf("internal error clausifying proved theorem: %v", err)
		return
	}
	//
	p.symbols = symbols
	index := len(p.theorems)
	p.theorems = append(p.theorems, Entry{index, goal, description, clauses})
}

// Describe attaches (or replaces) the description of an entry.
func (p *KnowledgeBase) Describe(kind uint, index int, description string) error {
	entries, err := p.entries(kind)
	//
	if err != nil {
		return err
	} else if index < 0 || index >= len(entries) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	//
	entries[index].Description = description
	//
	return nil
}

// List returns all entries of the given kind, in insertion order.
func (p *KnowledgeBase) List(kind uint) ([]Entry, error) {
	entries, err := p.entries(kind)
	//
	if err != nil {
		return nil, err
	}
	//
	return entries, nil
}

// Get returns a single entry of the given kind.
func (p *KnowledgeBase) Get(kind uint, index int) (Entry, error) {
	entries, err := p.entries(kind)
	//
	if err != nil {
		return Entry{}, err
	} else if index < 0 || index >= len(entries) {
		return Entry{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	//
	return entries[index], nil
}

func (p *KnowledgeBase) entries(kind uint) ([]Entry, error) {
	switch kind {
	case KIND_AXIOM:
		return p.axioms, nil
	case KIND_THEOREM:
		return p.theorems, nil
	default:
		return nil, ErrUnknownKind
	}
}
