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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lemmalab/go-lemma/pkg/fol"
	"github.com/lemmalab/go-lemma/pkg/repl"
	"github.com/lemmalab/go-lemma/pkg/saturate"
	"github.com/lemmalab/go-lemma/pkg/util/source"
	"github.com/spf13/cobra"
)

var proveCmd = &cobra.Command{
	Use:   "prove [flags] goal_formula",
	Short: "prove a single goal non-interactively.",
	Long: `Prove a single goal from a file of axioms, printing the proof trace
	on success.  The axiom file holds one formula per line; blank lines and
	lines starting with # are ignored.`,
	Run: runProveCmd,
}

func runProveCmd(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(1)
	}
	//
	cfg := loadConfig(cmd)
	knowledge := newKnowledgeBase(cfg)
	// Load axioms, if given.
	if filename := GetString(cmd, "axioms"); filename != "" {
		for _, formula := range readAxiomFile(filename) {
			if _, err := knowledge.AddAxiom(formula, ""); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
		}
	}
	// Parse the goal.
	goal, errs := fol.Parse(args[0])
	//
	if len(errs) != 0 {
		reportSyntaxErrors("<goal>", errs)
	}
	//
	result, err := knowledge.Prove(goal, GetString(cmd, "describe"), cfg.Prover.Budget())
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	switch result.Outcome {
	case saturate.PROVED:
		fmt.Println(result.TraceString())
	case saturate.SATURATED:
		fmt.Println("Proof failed (saturated: the theorem does not follow from the premises).")
		os.Exit(1)
	case saturate.EXHAUSTED:
		fmt.Println("Proof failed (budget exhausted).")
		os.Exit(1)
	}
}

// readAxiomFile parses every formula in a given file, one per line.
func readAxiomFile(filename string) []fol.Formula {
	var formulas []fol.Formula
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	for _, line := range strings.Split(string(bytes), "\n") {
		line = strings.TrimSpace(line)
		//
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		//
		formula, errs := fol.ParseSourceFile(source.NewSourceFile(filename, []byte(line)))
		//
		if len(errs) != 0 {
			reportSyntaxErrors(filename, errs)
		}
		//
		formulas = append(formulas, formula)
	}
	//
	return formulas
}

// reportSyntaxErrors prints each error with highlighting, then terminates.
func reportSyntaxErrors(filename string, errs []source.SyntaxError) {
	for _, err := range errs {
		fmt.Printf("%s: ", filename)
		repl.PrintSyntaxError(os.Stdout, err)
	}
	//
	os.Exit(2)
}

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.Flags().String("axioms", "", "file of axioms, one formula per line")
	proveCmd.Flags().String("describe", "", "description of the goal, used for premise selection")
}
