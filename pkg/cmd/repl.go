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

	"github.com/lemmalab/go-lemma/pkg/repl"
	"github.com/lemmalab/go-lemma/pkg/saturate"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "start an interactive proof session.",
	Long: `Start an interactive proof session.  Commands: axiom <formula>,
	theorem <formula>, describe <kind> <index> <text>, show <kind> [index],
	verbose, exit.`,
	Run: runReplCmd,
}

func runReplCmd(cmd *cobra.Command, args []string) {
	cfg := loadConfig(cmd)
	knowledge := newKnowledgeBase(cfg)
	// Budgets are rebuilt per proof, since deadlines are absolute.
	budget := func() saturate.Budget { return cfg.Prover.Budget() }
	// Suppress prompts when input is piped.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	//
	session := repl.NewSession(knowledge, budget, os.Stdin, os.Stdout, interactive)
	//
	if err := session.Run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(replCmd)
}
