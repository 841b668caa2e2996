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
package cnf

import "fmt"

// SymbolGen mints fresh Skolem symbols.  A single generator is shared across
// all clausifications of a proof session, so Skolem symbols stay globally
// distinct across axioms and theorems.  Minted names contain an underscore,
// which user-written identifiers (being purely alphanumeric) never do, hence
// freshness against user symbols holds by construction.
type SymbolGen struct {
	next uint
}

// NewSymbolGen constructs a generator whose first Skolem symbol is sk_0.
func NewSymbolGen() *SymbolGen {
	return &SymbolGen{}
}

// FreshSkolem mints the next Skolem symbol.
func (p *SymbolGen) FreshSkolem() string {
	name := fmt.Sprintf("sk_%d", p.next)
	p.next++
	//
	return name
}

// Clone returns an independent copy of this generator.  The knowledge base
// clausifies negated goals against a clone, so a failed proof attempt leaves
// the session's symbol state untouched.
func (p *SymbolGen) Clone() *SymbolGen {
	return &SymbolGen{p.next}
}
