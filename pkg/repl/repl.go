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

// Package repl implements the line-oriented interactive surface of the
// prover.  Every command either succeeds or prints an error and returns to
// the prompt; nothing escapes the loop except end-of-input and the exit
// command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/kb"
	"github.com/lemmalab/go-lemma/pkg/saturate"
	"github.com/lemmalab/go-lemma/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Session drives a knowledge base through line-oriented commands.
type Session struct {
	knowledge *kb.KnowledgeBase
	// Produces the resource bounds for each proof attempt.  A fresh budget is
	// taken per attempt since deadlines are absolute.
	budget func() saturate.Budget
	//
	reader *bufio.Reader
	out    io.Writer
	// Prompts are suppressed when input is not a terminal, so piped scripts
	// produce clean output.
	prompts bool
	// Verbose toggles premise-selection diagnostics.
	verbose bool
}

// NewSession constructs an interactive session over the given knowledge base.
func NewSession(knowledge *kb.KnowledgeBase, budget func() saturate.Budget, in io.Reader, out io.Writer, prompts bool) *Session {
	return &Session{
		knowledge: knowledge,
		budget:    budget,
		reader:    bufio.NewReader(in),
		out:       out,
		prompts:   prompts,
	}
}

// Run processes commands until end-of-input or the exit command.  The error
// returned reflects I/O failure only; command-level errors are printed and
// swallowed.
func (p *Session) Run() error {
	for {
		p.prompt(">>> ")
		//
		line, err := p.readLine()
		//
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		//
		command, rest := splitCommand(line)
		//
		switch command {
		case "":
			// Blank line.
		case "exit":
			return nil
		case "axiom":
			p.runAxiom(rest)
		case "theorem":
			p.runTheorem(rest)
		case "describe":
			p.runDescribe(rest)
		case "show":
			p.runShow(rest)
		case "verbose":
			p.runVerbose()
		default:
			fmt.Fprintf(p.out, "Unknown command: %s\n", command)
		}
	}
}

// ============================================================================
// Commands
// ============================================================================

func (p *Session) runAxiom(text string) {
	formula, ok := p.parseFormula(text)
	//
	if !ok {
		return
	}
	//
	description, err := p.readDescription()
	//
	if err != nil {
		fmt.Fprintf(p.out, "%v\n", err)
		return
	}
	//
	index, err := p.knowledge.AddAxiom(formula, description)
	//
	if err != nil {
		fmt.Fprintf(p.out, "Internal error: %v\n", err)
		return
	}
	//
	fmt.Fprintf(p.out, "Added axiom %d.\n", index)
}

func (p *Session) runTheorem(text string) {
	formula, ok := p.parseFormula(text)
	//
	if !ok {
		return
	}
	//
	description, err := p.readDescription()
	//
	if err != nil {
		fmt.Fprintf(p.out, "%v\n", err)
		return
	}
	//
	result, err := p.knowledge.Prove(formula, description, p.budget())
	//
	if err != nil {
		fmt.Fprintf(p.out, "Internal error: %v\n", err)
		return
	}
	//
	switch result.Outcome {
	case saturate.PROVED:
		fmt.Fprintln(p.out, result.TraceString())
	case saturate.SATURATED:
		fmt.Fprintln(p.out, "Proof failed (saturated: the theorem does not follow from the premises).")
	case saturate.EXHAUSTED:
		fmt.Fprintln(p.out, "Proof failed (budget exhausted).")
	}
}

func (p *Session) runDescribe(rest string) {
	fields := strings.Fields(rest)
	//
	if len(fields) < 3 {
		fmt.Fprintln(p.out, "Usage: describe <axiom|theorem> <index> <description>")
		return
	}
	//
	kind, index, ok := p.parseEntryRef(fields[0], fields[1])
	//
	if !ok {
		return
	}
	// The description is everything beyond the index.
	description := strings.Join(fields[2:], " ")
	//
	if err := p.knowledge.Describe(kind, index, description); err != nil {
		fmt.Fprintf(p.out, "%v\n", err)
	}
}

func (p *Session) runShow(rest string) {
	fields := strings.Fields(rest)
	//
	switch len(fields) {
	case 1:
		kind, ok := parseKind(fields[0])
		//
		if !ok {
			fmt.Fprintf(p.out, "%v\n", kb.ErrUnknownKind)
			return
		}
		//
		entries, err := p.knowledge.List(kind)
		//
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
		} else if len(entries) == 0 {
			fmt.Fprintf(p.out, "No %ss.\n", fields[0])
		}
		//
		for _, entry := range entries {
			p.showEntry(fields[0], entry)
		}
	case 2:
		kind, index, ok := p.parseEntryRef(fields[0], fields[1])
		//
		if !ok {
			return
		}
		//
		entry, err := p.knowledge.Get(kind, index)
		//
		if err != nil {
			fmt.Fprintf(p.out, "%v\n", err)
			return
		}
		//
		p.showEntry(fields[0], entry)
	default:
		fmt.Fprintln(p.out, "Usage: show <axiom|theorem> [index]")
	}
}

func (p *Session) runVerbose() {
	p.verbose = !p.verbose
	//
	if p.verbose {
		log.SetLevel(log.DebugLevel)
		fmt.Fprintln(p.out, "Premise selection diagnostics enabled.")
	} else {
		log.SetLevel(log.InfoLevel)
		fmt.Fprintln(p.out, "Premise selection diagnostics disabled.")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func (p *Session) showEntry(kindName string, entry kb.Entry) {
	fmt.Fprintf(p.out, "%s %d: %s\n", kindName, entry.Index, entry.Formula)
	//
	if entry.Description != "" {
		fmt.Fprintf(p.out, "    %s\n", entry.Description)
	}
}

// parseFormula parses a formula, printing any syntax errors.
func (p *Session) parseFormula(text string) (fol.Formula, bool) {
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(p.out, "Expected a formula.")
		return nil, false
	}
	//
	formula, errs := fol.ParseSourceFile(source.NewSourceFile("<input>", []byte(text)))
	//
	if len(errs) != 0 {
		for _, err := range errs {
			PrintSyntaxError(p.out, err)
		}
		//
		return nil, false
	}
	//
	return formula, true
}

// parseEntryRef parses a kind word plus an index.
func (p *Session) parseEntryRef(kindName string, indexText string) (uint, int, bool) {
	kind, ok := parseKind(kindName)
	//
	if !ok {
		fmt.Fprintf(p.out, "%v\n", kb.ErrUnknownKind)
		return 0, 0, false
	}
	//
	index, err := strconv.Atoi(indexText)
	//
	if err != nil {
		fmt.Fprintf(p.out, "Invalid index: %s\n", indexText)
		return 0, 0, false
	}
	//
	return kind, index, true
}

func parseKind(name string) (uint, bool) {
	switch name {
	case "axiom":
		return kb.KIND_AXIOM, true
	case "theorem":
		return kb.KIND_THEOREM, true
	default:
		return 0, false
	}
}

// readDescription prompts for the optional description line.
func (p *Session) readDescription() (string, error) {
	p.prompt("Enter description (Optional): ")
	//
	line, err := p.readLine()
	//
	if err == io.EOF {
		return "", nil
	}
	//
	return line, err
}

func (p *Session) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	//
	if err != nil && line == "" {
		return "", err
	}
	//
	return strings.TrimSpace(line), nil
}

func (p *Session) prompt(text string) {
	if p.prompts {
		fmt.Fprint(p.out, text)
	}
}

// splitCommand separates the command word from its argument text.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	//
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		return line[:i], strings.TrimSpace(line[i+1:])
	}
	//
	return line, ""
}

// PrintSyntaxError reports a syntax error against the offending input line,
// with a caret highlighting the span.
func PrintSyntaxError(out io.Writer, err source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Print error + column number
	fmt.Fprintf(out, "%d:%d: %s\n", line.Number(), span.Start()-line.Start()+1, err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent
	fmt.Fprint(out, strings.Repeat(" ", span.Start()-line.Start()))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", max(1, span.Length())))
}
