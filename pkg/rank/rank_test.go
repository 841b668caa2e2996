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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNone(t *testing.T) {
	selected, err := None{}.Select("anything", []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestAll(t *testing.T) {
	selected, err := All{}.Select("anything", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, selected)
}

func TestLexicalEmptyGoal(t *testing.T) {
	selected, err := Lexical{}.Select("", []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestLexicalNoCandidates(t *testing.T) {
	selected, err := Lexical{}.Select("goal", nil)
	require.NoError(t, err)
	assert.Empty(t, selected)
}

func TestLexicalRanking(t *testing.T) {
	candidates := []string{
		"a cat is a mammal",
		"even numbers cannot be odd",
		"every pet cat is a mammal",
	}
	//
	selected, err := Lexical{}.Select("a pet cat is not a dog", candidates)
	require.NoError(t, err)
	// The arithmetic lemma shares no token with the goal, so it is omitted;
	// the description with the higher cosine similarity ranks first.
	require.Len(t, selected, 2)
	assert.Equal(t, 0, selected[0])
	assert.Equal(t, 2, selected[1])
}

func TestLexicalDeterminism(t *testing.T) {
	candidates := []string{"alpha beta", "beta alpha", "alpha beta gamma"}
	//
	first, err := Lexical{}.Select("alpha beta", candidates)
	require.NoError(t, err)
	//
	second, err := Lexical{}.Select("alpha beta", candidates)
	require.NoError(t, err)
	//
	assert.Equal(t, first, second)
}

func TestLexicalCaseInsensitive(t *testing.T) {
	selected, err := Lexical{}.Select("Cats", []string{"CATS", "dogs"})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, selected)
}
