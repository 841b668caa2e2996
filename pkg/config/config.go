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

// Package config provides configuration loading for the prover.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/lemmalab/go-lemma/pkg/saturate"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up in the working
// directory when none is given explicitly.
const DefaultConfigFile = "go-lemma.yaml"

// Config represents the complete prover configuration.
type Config struct {
	Prover ProverConfig `yaml:"prover"`
	Ranker RankerConfig `yaml:"ranker"`
}

// ProverConfig bounds the resources of each refutation search.
type ProverConfig struct {
	// MaxResolvents bounds resolvent generation per proof (0 = unlimited).
	MaxResolvents uint `yaml:"max_resolvents"`
	// MaxProcessed bounds given-clause iterations per proof (0 = unlimited).
	MaxProcessed uint `yaml:"max_processed"`
	// MaxClauseLiterals bounds the size of retained clauses (0 = unlimited).
	MaxClauseLiterals uint `yaml:"max_clause_literals"`
	// MaxTermDepth bounds term nesting in retained clauses (0 = unlimited).
	MaxTermDepth uint `yaml:"max_term_depth"`
	// Timeout is the wall-clock bound per proof (0 = none).
	Timeout time.Duration `yaml:"timeout"`
}

// RankerConfig configures premise selection over proved lemmas.
type RankerConfig struct {
	// Enabled switches on embeddings-based selection.  When disabled, a
	// deterministic lexical ranking over descriptions is used instead.
	Enabled bool `yaml:"enabled"`
	// Endpoint is an OpenAI-compatible embeddings endpoint.
	Endpoint string `yaml:"endpoint"`
	// Model is the embedding model to request.
	Model string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the API key, which may
	// be empty for endpoints requiring none.
	APIKeyEnv string `yaml:"api_key_env"`
	// Limit caps how many lemmas are included per proof.
	Limit int `yaml:"limit"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	budget := saturate.DefaultBudget()
	//
	return &Config{
		Prover: ProverConfig{
			MaxResolvents:     budget.MaxResolvents,
			MaxProcessed:      budget.MaxProcessed,
			MaxClauseLiterals: budget.MaxClauseLiterals,
			MaxTermDepth:      budget.MaxTermDepth,
			Timeout:           0,
		},
		Ranker: RankerConfig{
			Enabled:  false,
			Endpoint: "http://localhost:11434/v1",
			Model:    "nomic-embed-text",
			Limit:    8,
		},
	}
}

// Load reads configuration from the default file if present, falling back to
// defaults otherwise.
func Load() (*Config, error) {
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		return DefaultConfig(), nil
	}
	//
	return LoadFromFile(DefaultConfigFile)
}

// LoadFromFile loads configuration from a YAML file, layered over the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	//
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	//
	config := DefaultConfig()
	//
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	//
	if err := config.Validate(); err != nil {
		return nil, err
	}
	//
	return config, nil
}

// Validate checks that the configuration is coherent.
func (c *Config) Validate() error {
	if c.Ranker.Enabled && c.Ranker.Endpoint == "" {
		return fmt.Errorf("ranker.endpoint is required when the ranker is enabled")
	} else if c.Ranker.Enabled && c.Ranker.Model == "" {
		return fmt.Errorf("ranker.model is required when the ranker is enabled")
	} else if c.Ranker.Limit < 0 {
		return fmt.Errorf("ranker.limit cannot be negative")
	}
	//
	return nil
}

// Budget converts the prover section into engine resource bounds.
func (c *ProverConfig) Budget() saturate.Budget {
	budget := saturate.Budget{
		MaxResolvents:     c.MaxResolvents,
		MaxProcessed:      c.MaxProcessed,
		MaxClauseLiterals: c.MaxClauseLiterals,
		MaxTermDepth:      c.MaxTermDepth,
	}
	//
	if c.Timeout != 0 {
		budget.Deadline = time.Now().Add(c.Timeout)
	}
	//
	return budget
}
