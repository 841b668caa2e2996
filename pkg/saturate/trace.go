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
	"fmt"
	"strings"

	"github.com/lemmalab/go-lemma/pkg/clause"
)

// SOURCE_AXIOM identifies a premise clause originating from an axiom.
const SOURCE_AXIOM uint = 0

// SOURCE_THEOREM identifies a premise clause originating from a previously
// proved theorem, reused as a lemma.
const SOURCE_THEOREM uint = 1

// Source identifies the knowledge-base entry a premise clause came from.
type Source struct {
	// Kind is either SOURCE_AXIOM or SOURCE_THEOREM.
	Kind uint
	// Index of the originating entry within its list.
	Index int
}

func (p Source) String() string {
	if p.Kind == SOURCE_AXIOM {
		return fmt.Sprintf("Axiom %d", p.Index)
	}
	//
	return fmt.Sprintf("Theorem %d", p.Index)
}

// STEP_PREMISE marks a step holding an input clause from the premise set.
const STEP_PREMISE uint = 0

// STEP_CONCLUSION marks a step holding a clause of the negated goal.
const STEP_CONCLUSION uint = 1

// STEP_RESOLVED marks a step holding the resolvent of two earlier steps.
const STEP_RESOLVED uint = 2

// STEP_FACTORED marks a step holding a factor of an earlier step, obtained by
// unifying two of its literals.
const STEP_FACTORED uint = 3

// Step is one line of a proof trace: a clause together with its
// justification.  A proof trace begins with the premises and the negated
// goal's clauses, and ends with the empty clause.
type Step struct {
	// Index of this step within the trace, counting from zero.
	Index int
	// Clause derived at this step.
	Clause clause.Clause
	// Kind of justification.
	Kind uint
	// Source of a premise step.
	Source Source
	// Left operand of a resolution step, or the origin of a factoring step.
	Left int
	// Right operand of a resolution step.
	Right int
}

func (p Step) String() string {
	var justification string
	//
	switch p.Kind {
	case STEP_PREMISE:
		justification = fmt.Sprintf("Premise, %s", p.Source)
	case STEP_CONCLUSION:
		justification = "Conclusion"
	case STEP_RESOLVED:
		justification = fmt.Sprintf("Resolve %d, %d", p.Left, p.Right)
	case STEP_FACTORED:
		justification = fmt.Sprintf("Factor %d", p.Left)
	}
	//
	return fmt.Sprintf("%d. %s (%s)", p.Index, p.Clause, justification)
}

// PROVED indicates the empty clause was derived, refuting the negated goal.
const PROVED uint = 0

// SATURATED indicates the clause pool was exhausted without deriving the
// empty clause, so the goal does not follow from the given premises.
const SATURATED uint = 1

// EXHAUSTED indicates the search ended inconclusively because the resource
// budget ran out.
const EXHAUSTED uint = 2

// Result is the total outcome of a refutation search.  The proof is populated
// only when the outcome is PROVED, holding exactly the ancestors of the empty
// clause.
type Result struct {
	// Outcome is one of PROVED, SATURATED or EXHAUSTED.
	Outcome uint
	// Proof trace, ending with the empty clause.
	Proof []Step
	// Stats describes the work performed by the search.
	Stats Stats
}

// Proved checks whether this result carries a proof.
func (p *Result) Proved() bool {
	return p.Outcome == PROVED
}

// TraceString renders the proof trace with one numbered step per line.
func (p *Result) TraceString() string {
	lines := make([]string, len(p.Proof))
	//
	for i, step := range p.Proof {
		lines[i] = step.String()
	}
	//
	return strings.Join(lines, "\n")
}

// Stats summarises the work performed during a refutation search.
type Stats struct {
	// Generated counts resolvents and factors produced, before redundancy
	// filtering.
	Generated uint
	// Kept counts clauses admitted to the pool.
	Kept uint
	// Tautologies counts generated clauses discarded as tautologies.
	Tautologies uint
	// SubsumedForward counts generated clauses discarded because an existing
	// clause subsumes them.
	SubsumedForward uint
	// SubsumedBackward counts pool clauses evicted because a new clause
	// subsumes them.
	SubsumedBackward uint
	// Processed counts completed given-clause iterations.
	Processed uint
}

func (p Stats) String() string {
	return fmt.Sprintf("%d generated, %d kept, %d processed, %d tautologies, %d/%d subsumed forward/backward",
		p.Generated, p.Kept, p.Processed, p.Tautologies, p.SubsumedForward, p.SubsumedBackward)
}
