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
package set

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"
)

// Order provides a wrapper around primitive types for use with an
// AnySortedSet.  This is mostly for testing purposes.
type Order[T cmp.Ordered] struct {
	Item T
}

// Cmp implementation for the Comparable interface.
func (lhs Order[T]) Cmp(rhs Order[T]) int {
	return cmp.Compare(lhs.Item, rhs.Item)
}

func Test_AnySortedSet_00(t *testing.T) {
	check_AnySortedSet_Insert(t, 5, 10)
	check_AnySortedSet_InsertSorted(t, 5, 10)
}

func Test_AnySortedSet_01(t *testing.T) {
	for i := 0; i < 1000; i++ {
		check_AnySortedSet_Insert(t, 10, 32)
		check_AnySortedSet_InsertSorted(t, 10, 32)
	}
}

func Test_AnySortedSet_02(t *testing.T) {
	check_AnySortedSet_Insert(t, 100, 32)
	check_AnySortedSet_InsertSorted(t, 50, 32)
}

func Test_AnySortedSet_03(t *testing.T) {
	check_AnySortedSet_Insert(t, 1000, 64)
	check_AnySortedSet_InsertSorted(t, 500, 64)
}

func Test_AnySortedSet_04(t *testing.T) {
	// construction sorts and removes duplicates
	aset := NewAnySortedSet(
		Order[uint]{3}, Order[uint]{1}, Order[uint]{3}, Order[uint]{2})
	//
	if len(*aset) != 3 {
		t.Errorf("expected 3 elements, got %d", len(*aset))
	}
	//
	for i, ith := range *aset {
		if int(ith.Item) != i+1 {
			t.Errorf("unexpected element %d at index %d", ith.Item, i)
		}
	}
}

func Test_AnySortedSet_05(t *testing.T) {
	aset := NewAnySortedSet(Order[uint]{1}, Order[uint]{2})
	//
	if !aset.Remove(Order[uint]{1}) {
		t.Errorf("expected removal to succeed")
	}
	//
	if aset.Remove(Order[uint]{7}) {
		t.Errorf("expected removal to fail")
	}
	//
	if aset.Contains(Order[uint]{1}) || !aset.Contains(Order[uint]{2}) {
		t.Errorf("unexpected contents after removal")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_AnySortedSet_Insert(t *testing.T, n uint, m uint) {
	items := generateRandomElements(n, m)
	aset := NewAnySortedSet[Order[uint]]()
	//
	for _, v := range items {
		aset.Insert(v)
	}
	//
	checkSorted(t, aset, items)
}

func check_AnySortedSet_InsertSorted(t *testing.T, n uint, m uint) {
	left := generateRandomElements(n, m)
	right := generateRandomElements(n, m)
	//
	aset := NewAnySortedSet(left...)
	aset.InsertSorted(NewAnySortedSet(right...))
	//
	checkSorted(t, aset, append(left, right...))
}

func checkSorted(t *testing.T, aset *AnySortedSet[Order[uint]], items []Order[uint]) {
	t.Helper()
	//
	for i := 1; i < len(*aset); i++ {
		if (*aset)[i-1].Cmp((*aset)[i]) >= 0 {
			t.Errorf("set not strictly sorted at index %d", i)
		}
	}
	//
	for _, v := range items {
		if !aset.Contains(v) {
			t.Errorf("set missing inserted element %d", v.Item)
		}
	}
}

func generateRandomElements(n uint, m uint) []Order[uint] {
	items := make([]Order[uint], n)
	//
	for i := range items {
		items[i] = Order[uint]{uint(rand.Intn(int(m)))}
	}
	//
	return slices.Clone(items)
}
