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
package fol

import (
	"github.com/lemmalab/go-lemma/pkg/util"
	"github.com/lemmalab/go-lemma/pkg/util/source"
	"github.com/lemmalab/go-lemma/pkg/util/source/lex"
)

// END_OF signals "end of input".
const END_OF uint = 0

// WHITESPACE signals whitespace.
const WHITESPACE uint = 1

// LBRACE signals "left brace".
const LBRACE uint = 2

// RBRACE signals "right brace".
const RBRACE uint = 3

// COMMA separates function and relation arguments.
const COMMA uint = 4

// NOT signals logical negation.
const NOT uint = 5

// AND signals logical conjunction.
const AND uint = 6

// OR signals logical disjunction.
const OR uint = 7

// IMPLIES signals material implication.
const IMPLIES uint = 8

// IFF signals a biconditional.
const IFF uint = 9

// FORALL signals universal quantification.
const FORALL uint = 10

// EXISTS signals existential quantification.
const EXISTS uint = 11

// IDENTIFIER signals a variable, constant, function or relation name.
const IDENTIFIER uint = 12

// Rule for describing whitespace.
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit(' '),
	lex.Unit('\t'),
	lex.Unit('\r'),
	lex.Unit('\n')))

// Rule for describing identifiers.  Identifiers are purely alphanumeric; their
// lexical class (variable, constant, function, relation) is decided by their
// first character and by context, never here.
var identifier lex.Scanner[rune] = lex.And(
	lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'), lex.Within('0', '9')),
	lex.Many(lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'), lex.Within('0', '9'))))

// lexing rules.  Observe that "<->" must come before "->" is attempted, since
// rules are matched in order.
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('!'), NOT),
	lex.Rule(lex.Unit('&'), AND),
	lex.Rule(lex.Unit('|'), OR),
	lex.Rule(lex.Unit('<', '-', '>'), IFF),
	lex.Rule(lex.Unit('-', '>'), IMPLIES),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Lex tokenises a given source file into a stream of FOL tokens, with
// whitespace removed and the quantifier keywords reclassified.  The final
// token is always END_OF.
func Lex(srcfile *source.File) ([]lex.Token, []source.SyntaxError) {
	lexer := lex.NewLexer(srcfile.Contents(), rules...)
	// Lex as many tokens as possible
	tokens := lexer.Collect()
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown symbol encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = util.RemoveMatching(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	// Reclassify quantifier keywords, which lex as identifiers.
	for i, t := range tokens {
		if t.Kind == IDENTIFIER {
			switch srcfile.Text(t.Span) {
			case "forall":
				tokens[i].Kind = FORALL
			case "exists":
				tokens[i].Kind = EXISTS
			}
		}
	}
	//
	return tokens, nil
}
