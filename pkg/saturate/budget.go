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

import "time"

// Budget bounds the resources a single refutation search may consume.  First
// order logic is only semi-decidable, so exhausting a budget is reported as
// an inconclusive outcome rather than a refutation of the goal.  The deadline
// is polled once per given-clause iteration, so cancellation latency is
// bounded by a single iteration's work.
type Budget struct {
	// MaxResolvents bounds the number of resolvents generated, counted before
	// any redundancy filtering.
	MaxResolvents uint
	// MaxProcessed bounds the number of given-clause iterations.
	MaxProcessed uint
	// MaxClauseLiterals bounds the size of retained clauses; larger resolvents
	// are silently discarded.
	MaxClauseLiterals uint
	// MaxTermDepth bounds the term nesting depth of retained clauses; deeper
	// resolvents are silently discarded.
	MaxTermDepth uint
	// Deadline is an optional wall-clock bound; the zero value disables it.
	Deadline time.Time
}

// DefaultBudget returns the resource bounds used when a caller expresses no
// preference.  Textbook problems complete well within these.
func DefaultBudget() Budget {
	return Budget{
		MaxResolvents:     20000,
		MaxProcessed:      4000,
		MaxClauseLiterals: 16,
		MaxTermDepth:      12,
	}
}

// expired checks whether the wall-clock deadline has passed.
func (p *Budget) expired() bool {
	return !p.Deadline.IsZero() && time.Now().After(p.Deadline)
}
