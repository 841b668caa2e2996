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
	"github.com/lemmalab/go-lemma/pkg/util/source"
	"github.com/lemmalab/go-lemma/pkg/util/source/lex"
)

// Parse a given input string into a formula, reporting any syntax errors
// against the enclosing positions in the input.  Parsing is pure: whitespace
// between tokens is insignificant and no symbol tables survive the call.
//
// The grammar is (lowest precedence first): "<->" and "->" are right
// associative; "|" and "&" are left associative; "!" and the quantifiers bind
// tightest, with quantifiers extending only over the following unary formula.
func Parse(input string) (Formula, []source.SyntaxError) {
	return ParseSourceFile(source.NewSourceFile("<input>", []byte(input)))
}

// ParseSourceFile parses a given source file into a formula, as for Parse.
func ParseSourceFile(srcfile *source.File) (Formula, []source.SyntaxError) {
	tokens, errs := Lex(srcfile)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	parser := &Parser{srcfile, tokens, 0}
	// Parse formula
	formula, errs := parser.parseFormula()
	// Check all tokens were consumed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "expected end of formula")
	}
	//
	return formula, errs
}

// Parser provides a recursive descent parser for first-order formulas.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has parsed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.index+1 >= len(p.tokens)
}

func (p *Parser) parseFormula() (Formula, []source.SyntaxError) {
	return p.parseIff()
}

func (p *Parser) parseIff() (Formula, []source.SyntaxError) {
	left, errs := p.parseImplies()
	//
	if len(errs) != 0 || !p.match(IFF) {
		return left, errs
	}
	// Right associative
	right, errs := p.parseIff()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return Iff{left, right}, nil
}

func (p *Parser) parseImplies() (Formula, []source.SyntaxError) {
	left, errs := p.parseOr()
	//
	if len(errs) != 0 || !p.match(IMPLIES) {
		return left, errs
	}
	// Right associative
	right, errs := p.parseImplies()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return Implies{left, right}, nil
}

func (p *Parser) parseOr() (Formula, []source.SyntaxError) {
	left, errs := p.parseAnd()
	// Left associative
	for len(errs) == 0 && p.match(OR) {
		var right Formula
		//
		right, errs = p.parseAnd()
		//
		if len(errs) == 0 {
			left = Or{left, right}
		}
	}
	//
	return left, errs
}

func (p *Parser) parseAnd() (Formula, []source.SyntaxError) {
	left, errs := p.parseUnary()
	// Left associative
	for len(errs) == 0 && p.match(AND) {
		var right Formula
		//
		right, errs = p.parseUnary()
		//
		if len(errs) == 0 {
			left = And{left, right}
		}
	}
	//
	return left, errs
}

func (p *Parser) parseUnary() (Formula, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NOT:
		p.expect(NOT)
		//
		body, errs := p.parseUnary()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return Not{body}, nil
	case FORALL, EXISTS:
		return p.parseQuantifier()
	case LBRACE:
		return p.parseBracketedFormula()
	case IDENTIFIER:
		return p.parseAtom()
	}
	//
	return nil, p.syntaxErrors(token, "expected formula")
}

func (p *Parser) parseQuantifier() (Formula, []source.SyntaxError) {
	quantifier := p.expect(p.lookahead().Kind)
	// Bound variable must follow
	token := p.lookahead()
	//
	if token.Kind != IDENTIFIER {
		return nil, p.syntaxErrors(token, "expected variable after quantifier")
	}
	//
	name := p.string(p.expect(IDENTIFIER))
	//
	if !IsVariableName(name) {
		return nil, p.syntaxErrors(token, "bound variable cannot begin with an uppercase letter or digit")
	}
	// Quantifiers bind tightest (after negation), hence the body is a unary
	// formula.
	body, errs := p.parseUnary()
	//
	if len(errs) != 0 {
		return nil, errs
	} else if quantifier.Kind == FORALL {
		return ForAll{name, body}, nil
	}
	//
	return Exists{name, body}, nil
}

func (p *Parser) parseBracketedFormula() (Formula, []source.SyntaxError) {
	p.expect(LBRACE)
	//
	formula, errs := p.parseFormula()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return formula, errs
}

func (p *Parser) parseAtom() (Formula, []source.SyntaxError) {
	token := p.expect(IDENTIFIER)
	name := p.string(token)
	// Relations are distinguished lexically from terms.
	if !IsConstantName(name) {
		return nil, p.syntaxErrors(token, "relation name must begin with an uppercase letter")
	}
	// Nullary relations are permitted, and written without braces.
	if p.lookahead().Kind != LBRACE {
		return Atom{name, nil}, nil
	}
	//
	args, errs := p.parseArgs()
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return Atom{name, args}, nil
}

// Parse a brace-enclosed, comma-separated argument list of one or more terms.
func (p *Parser) parseArgs() ([]Term, []source.SyntaxError) {
	var args []Term
	//
	p.expect(LBRACE)
	//
	for {
		term, errs := p.parseTerm()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		args = append(args, term)
		//
		if p.match(COMMA) {
			continue
		} else if p.match(RBRACE) {
			return args, nil
		}
		//
		return nil, p.syntaxErrors(p.lookahead(), "expected ',' or ')'")
	}
}

func (p *Parser) parseTerm() (Term, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind != IDENTIFIER {
		return nil, p.syntaxErrors(token, "expected term")
	}
	//
	name := p.string(p.expect(IDENTIFIER))
	// A following brace identifies a function application.
	if p.lookahead().Kind == LBRACE {
		if !IsVariableName(name) {
			return nil, p.syntaxErrors(token, "function name must begin with a lowercase letter")
		}
		//
		args, errs := p.parseArgs()
		//
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return NewFunction(name, args...), nil
	} else if IsConstantName(name) {
		return NewConstant(name), nil
	}
	//
	return NewVariable(name), nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
