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
	"context"
	"fmt"
	"os"

	"github.com/lemmalab/go-lemma/pkg/config"
	"github.com/lemmalab/go-lemma/pkg/kb"
	"github.com/lemmalab/go-lemma/pkg/rank"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or prints the error and exits with status 2.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected flag, or prints the error and exits with status 2.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// loadConfig reads the configuration named by --config, or the default
// configuration otherwise.  Configuration failures are startup failures, and
// terminate with a non-zero exit code.
func loadConfig(cmd *cobra.Command) *config.Config {
	var (
		cfg  *config.Config
		err  error
		path = GetString(cmd, "config")
	)
	//
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if path != "" {
		cfg, err = config.LoadFromFile(path)
	} else {
		cfg, err = config.Load()
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return cfg
}

// newKnowledgeBase assembles a knowledge base using the premise selector the
// configuration calls for.  An enabled but unreachable embeddings endpoint is
// a startup failure.
func newKnowledgeBase(cfg *config.Config) *kb.KnowledgeBase {
	var selector rank.Selector = rank.Lexical{}
	//
	if cfg.Ranker.Enabled {
		key := ""
		//
		if cfg.Ranker.APIKeyEnv != "" {
			key = os.Getenv(cfg.Ranker.APIKeyEnv)
		}
		//
		embeddings := rank.NewEmbeddings(cfg.Ranker.Endpoint, key, cfg.Ranker.Model)
		//
		if err := embeddings.Ping(context.Background()); err != nil {
			fmt.Printf("embedding model unavailable: %v\n", err)
			os.Exit(2)
		}
		//
		selector = embeddings
	}
	//
	return kb.New(selector, cfg.Ranker.Limit)
}
