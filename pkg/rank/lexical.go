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
package rank

import (
	"math"
	"sort"
	"strings"
)

// Lexical ranks lemmas by cosine similarity of bag-of-words vectors over
// their descriptions.  It needs no model and no network, and is fully
// deterministic, which makes it the default selector.  Candidates sharing no
// token with the goal are not selected at all.
type Lexical struct{}

// Select implementation for the Selector interface.
func (p Lexical) Select(goal string, candidates []string) ([]int, error) {
	if goal == "" || len(candidates) == 0 {
		return nil, nil
	}
	//
	target := tokenise(goal)
	//
	type scored struct {
		index int
		score float64
	}
	//
	var ranking []scored
	//
	for i, candidate := range candidates {
		if score := cosine(target, tokenise(candidate)); score > 0 {
			ranking = append(ranking, scored{i, score})
		}
	}
	// Sort by descending score, breaking ties by index for determinism.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].score > ranking[j].score
	})
	//
	indices := make([]int, len(ranking))
	//
	for i, r := range ranking {
		indices[i] = r.index
	}
	//
	return indices, nil
}

// tokenise lowercases a description and counts its alphanumeric words.
func tokenise(text string) map[string]float64 {
	counts := make(map[string]float64)
	//
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	//
	for _, word := range words {
		counts[word]++
	}
	//
	return counts
}

// cosine computes the cosine similarity of two sparse word-count vectors.
func cosine(lhs map[string]float64, rhs map[string]float64) float64 {
	if len(lhs) == 0 || len(rhs) == 0 {
		return 0
	}
	//
	var dot, lnorm, rnorm float64
	//
	for word, count := range lhs {
		dot += count * rhs[word]
		lnorm += count * count
	}
	//
	for _, count := range rhs {
		rnorm += count * count
	}
	//
	if dot == 0 {
		return 0
	}
	//
	return dot / (math.Sqrt(lnorm) * math.Sqrt(rnorm))
}
