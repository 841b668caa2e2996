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

// Package rank provides premise selection for the prover.  Given the
// description of a goal and the descriptions of all previously proved
// lemmas, a selector returns the indices of the lemmas worth including in the
// premise set, most relevant first.  The result is advisory: the prover
// always includes every axiom, and merely omits lemmas left unselected.
package rank

// Selector ranks candidate lemmas against a goal.  Implementations must be
// deterministic from the caller's perspective: the same goal and candidates
// yield the same ranking.  Internal use of models, caches or I/O is
// invisible to the prover.
type Selector interface {
	// Select returns the indices of the candidates to include, ranked most
	// relevant first.  With no candidates the selection is empty and the
	// prover proceeds with axioms only; Lexical and Embeddings also return an
	// empty selection for an empty goal, whereas All ignores the goal.
	Select(goal string, candidates []string) ([]int, error)
}

// None is the trivial selector, which never selects a lemma.
type None struct{}

// Select implementation for the Selector interface.
func (p None) Select(string, []string) ([]int, error) {
	return nil, nil
}

// All selects every candidate in index order.  Used in testing, and as the
// fallback when a configured selector fails at proof time.
type All struct{}

// Select implementation for the Selector interface.
func (p All) Select(goal string, candidates []string) ([]int, error) {
	indices := make([]int, len(candidates))
	//
	for i := range candidates {
		indices[i] = i
	}
	//
	return indices, nil
}
