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

// Package saturate implements a given-clause resolution loop over first-order
// clauses.  The search is deterministic: clauses are selected smallest first
// with ties broken by admission order, literal pairs are enumerated in the
// sorted order of their clauses, and every derived clause is renamed apart
// using a counter local to the search.
package saturate

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/lemmalab/go-lemma/pkg/clause"
	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/unify"
)

// Premise couples an input clause with the knowledge-base entry it came from.
type Premise struct {
	// Source entry this clause was clausified from.
	Source Source
	// Clause itself.
	Clause clause.Clause
}

// record tracks an admitted clause together with its justification and its
// standing within the search.  Records are never removed, since evicted
// clauses can still appear as ancestors within a proof; eviction merely
// clears the active flag.
type record struct {
	id     int
	clause clause.Clause
	// Justification.
	kind   uint
	source Source
	left   int
	right  int
	// Predicate fingerprint, used to prefilter subsumption checks.
	fingerprint *bitset.BitSet
	// Cleared when this clause is evicted by backward subsumption.
	active bool
}

type engine struct {
	budget Budget
	// Every admitted clause, in admission order.
	records []*record
	// Admitted clauses awaiting selection.
	unprocessed []*record
	// Clauses already selected as given.
	processed []*record
	// Interns predicate/polarity/arity triples for fingerprints.
	predicates map[string]uint
	// Counter for renaming clauses apart.
	fresh uint
	//
	stats Stats
}

// Refute searches for a derivation of the empty clause from the union of the
// given premise clauses and the clauses of the negated goal.  The search is
// total: it always returns one of PROVED, SATURATED or EXHAUSTED.  The input
// clause sets are borrowed immutably; all rewriting happens on fresh clauses.
func Refute(premises []Premise, conclusions []clause.Clause, budget Budget) Result {
	e := &engine{
		budget:     budget,
		predicates: make(map[string]uint),
	}
	//
	for _, p := range premises {
		e.admitInput(p.Clause, STEP_PREMISE, p.Source)
	}
	//
	for _, c := range conclusions {
		e.admitInput(c, STEP_CONCLUSION, Source{})
	}
	//
	return e.run()
}

func (e *engine) run() Result {
	for len(e.unprocessed) != 0 {
		// Budgets are polled once per iteration, bounding cancellation latency
		// by a single iteration's work.
		if e.overBudget() {
			return Result{Outcome: EXHAUSTED, Stats: e.stats}
		}
		// Select smallest unprocessed clause, ties by admission order.
		given := e.pickGiven()
		//
		if given == nil {
			// Everything remaining was evicted by backward subsumption.
			break
		}
		// Factor the given clause before resolving with it.  Factoring at
		// selection time reaches every clause in the pool, and cannot be
		// starved by subsumption discarding an intermediate resolvent.
		e.factorise(given)
		// Resolve against all processed clauses, and against itself.
		for _, partner := range append(e.processed, given) {
			if !partner.active {
				continue
			}
			//
			if empty := e.resolvePair(given, partner); empty != nil {
				return e.proved(empty)
			}
		}
		//
		e.processed = append(e.processed, given)
		e.stats.Processed++
	}
	// Pool exhausted without contradiction: the negated goal is satisfiable
	// together with the premises.
	return Result{Outcome: SATURATED, Stats: e.stats}
}

// resolvePair emits every resolvent of a given clause against a partner,
// returning the empty clause's record as soon as it is derived, or nil.
func (e *engine) resolvePair(given *record, partner *record) *record {
	// Rename the partner's variables apart from the given clause.  Clause
	// variables are universally quantified and locally scoped, so this
	// preserves meaning.  Resolving a clause against itself relies on it.
	renamed := e.renameApart(partner.clause)
	//
	for _, lg := range given.clause.Literals() {
		for _, lc := range renamed.Literals() {
			if !lg.Complements(lc) {
				continue
			}
			//
			mgu, ok := unify.Literals(lg, lc)
			//
			if !ok {
				continue
			}
			//
			e.stats.Generated++
			// Resolvent takes all remaining literals of both clauses, under
			// the unifier.
			resolvent := given.clause.Remove(lg).Substitute(mgu).
				Union(renamed.Remove(lc).Substitute(mgu))
			//
			admitted := e.admit(resolvent, STEP_RESOLVED, partner.id, given.id)
			//
			if admitted != nil && admitted.clause.IsEmpty() {
				return admitted
			}
		}
	}
	//
	return nil
}

// factorise admits every factor of a clause, that is every collapse of two
// unifiable same-polarity literals.
func (e *engine) factorise(origin *record) {
	literals := origin.clause.Literals()
	//
	for i := 0; i < len(literals); i++ {
		for j := i + 1; j < len(literals); j++ {
			if literals[i].Negated != literals[j].Negated {
				continue
			}
			//
			if mgu, ok := unify.Literals(literals[i], literals[j]); ok {
				e.stats.Generated++
				// The unified literals collapse under substitution.
				factor := origin.clause.Substitute(mgu)
				e.admit(factor, STEP_FACTORED, origin.id, origin.id)
			}
		}
	}
}

// pickGiven removes and returns the smallest active unprocessed clause,
// breaking ties by admission order.
func (e *engine) pickGiven() *record {
	best := -1
	//
	for i, r := range e.unprocessed {
		if !r.active {
			continue
		}
		//
		if best < 0 || r.clause.Size() < e.unprocessed[best].clause.Size() {
			best = i
		}
	}
	//
	if best < 0 {
		// Every remaining clause was evicted.
		e.unprocessed = nil
		return nil
	}
	//
	given := e.unprocessed[best]
	e.unprocessed = append(e.unprocessed[:best], e.unprocessed[best+1:]...)
	//
	return given
}

// admitInput registers an input clause without redundancy filtering, since
// premises carry their own justification and must remain addressable from
// the trace.
func (e *engine) admitInput(c clause.Clause, kind uint, source Source) {
	r := &record{
		id:          len(e.records),
		clause:      c,
		kind:        kind,
		source:      source,
		left:        -1,
		right:       -1,
		fingerprint: e.fingerprint(c),
		active:      true,
	}
	//
	e.records = append(e.records, r)
	e.unprocessed = append(e.unprocessed, r)
	e.stats.Kept++
}

// admit filters a derived clause through the tautology, size and subsumption
// checks and, if it survives, renames it apart and adds it to the unprocessed
// pool.  Returns nil if the clause was discarded.
func (e *engine) admit(c clause.Clause, kind uint, left int, right int) *record {
	if c.IsTautology() {
		e.stats.Tautologies++
		return nil
	}
	// Enforce structural budgets.
	if e.budget.MaxClauseLiterals != 0 && c.Size() > e.budget.MaxClauseLiterals {
		return nil
	} else if e.budget.MaxTermDepth != 0 && c.Depth() > e.budget.MaxTermDepth {
		return nil
	}
	// Rename apart from all existing clauses.
	c = e.renameApart(c)
	//
	fingerprint := e.fingerprint(c)
	// Forward subsumption: discard the newcomer if anything subsumes it.
	for _, r := range e.records {
		if r.active && fingerprint.IsSuperSet(r.fingerprint) && Subsumes(r.clause, c) {
			e.stats.SubsumedForward++
			return nil
		}
	}
	// Backward subsumption: evict anything the newcomer subsumes.
	for _, r := range e.records {
		if r.active && r.fingerprint.IsSuperSet(fingerprint) && Subsumes(c, r.clause) {
			r.active = false
			e.stats.SubsumedBackward++
		}
	}
	//
	r := &record{
		id:          len(e.records),
		clause:      c,
		kind:        kind,
		source:      Source{},
		left:        left,
		right:       right,
		fingerprint: fingerprint,
		active:      true,
	}
	//
	e.records = append(e.records, r)
	e.unprocessed = append(e.unprocessed, r)
	e.stats.Kept++
	//
	return r
}

// renameApart renames every variable of a clause to a name not occurring in
// any other clause of this search.
func (e *engine) renameApart(c clause.Clause) clause.Clause {
	vars := c.Vars()
	//
	if len(vars) == 0 {
		return c
	}
	//
	subst := make(fol.Substitution, len(vars))
	//
	for _, v := range vars {
		subst[v] = fol.NewVariable(fmt.Sprintf("v_%d", e.fresh))
		e.fresh++
	}
	//
	return c.Substitute(subst)
}

// fingerprint computes the set of predicate/polarity/arity combinations
// occurring in a clause.  Subsumption requires the subsumer's fingerprint to
// be a subset of the subsumee's, which discharges most checks cheaply.
func (e *engine) fingerprint(c clause.Clause) *bitset.BitSet {
	fingerprint := bitset.New(uint(len(e.predicates)))
	//
	for _, lit := range c.Literals() {
		key := fmt.Sprintf("%v/%s/%d", lit.Negated, lit.Predicate, len(lit.Args))
		//
		id, ok := e.predicates[key]
		if !ok {
			id = uint(len(e.predicates))
			e.predicates[key] = id
		}
		//
		fingerprint.Set(id)
	}
	//
	return fingerprint
}

// overBudget polls the resource bounds.  A zero bound means unlimited.
func (e *engine) overBudget() bool {
	if e.budget.expired() {
		return true
	} else if e.budget.MaxResolvents != 0 && e.stats.Generated >= e.budget.MaxResolvents {
		return true
	}
	//
	return e.budget.MaxProcessed != 0 && e.stats.Processed >= e.budget.MaxProcessed
}

// proved reconstructs the proof trace ending at the given empty clause.  Only
// ancestors of the empty clause are retained, ordered premises first, then
// the negated goal's clauses, then derivations in admission order, and
// renumbered accordingly.
func (e *engine) proved(empty *record) Result {
	included := map[int]bool{empty.id: true}
	worklist := []*record{empty}
	// Walk the ancestry of the empty clause.
	for len(worklist) != 0 {
		r := worklist[0]
		worklist = worklist[1:]
		//
		switch r.kind {
		case STEP_RESOLVED:
			for _, parent := range []int{r.left, r.right} {
				if !included[parent] {
					included[parent] = true
					worklist = append(worklist, e.records[parent])
				}
			}
		case STEP_FACTORED:
			if !included[r.left] {
				included[r.left] = true
				worklist = append(worklist, e.records[r.left])
			}
		}
	}
	// Collect ancestors, ordered premises before conclusions before
	// derivations.  Within each class admission order is kept, so derivations
	// stay in dependency order.
	var ancestors []*record
	//
	for rank := uint(0); rank <= 2; rank++ {
		for _, r := range e.records {
			if included[r.id] && stepRank(r.kind) == rank {
				ancestors = append(ancestors, r)
			}
		}
	}
	// Renumber.
	renumbering := make(map[int]int, len(ancestors))
	steps := make([]Step, len(ancestors))
	//
	for i, r := range ancestors {
		renumbering[r.id] = i
	}
	//
	for i, r := range ancestors {
		steps[i] = Step{
			Index:  i,
			Clause: r.clause,
			Kind:   r.kind,
			Source: r.source,
		}
		//
		if r.kind == STEP_RESOLVED || r.kind == STEP_FACTORED {
			steps[i].Left = renumbering[r.left]
			steps[i].Right = renumbering[r.right]
		}
	}
	//
	return Result{Outcome: PROVED, Proof: steps, Stats: e.stats}
}

func stepRank(kind uint) uint {
	switch kind {
	case STEP_PREMISE:
		return 0
	case STEP_CONCLUSION:
		return 1
	default:
		return 2
	}
}
