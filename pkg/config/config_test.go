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
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	//
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.Ranker.Enabled)
	assert.Equal(t, uint(20000), cfg.Prover.MaxResolvents)
	assert.Equal(t, 8, cfg.Ranker.Limit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go-lemma.yaml")
	//
	content := `
prover:
  max_resolvents: 500
  timeout: 2s
ranker:
  enabled: true
  endpoint: http://localhost:9999/v1
  model: test-embed
  limit: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	//
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	// overridden values
	assert.Equal(t, uint(500), cfg.Prover.MaxResolvents)
	assert.Equal(t, 2*time.Second, cfg.Prover.Timeout)
	assert.True(t, cfg.Ranker.Enabled)
	assert.Equal(t, "test-embed", cfg.Ranker.Model)
	assert.Equal(t, 3, cfg.Ranker.Limit)
	// defaults retained
	assert.Equal(t, uint(4000), cfg.Prover.MaxProcessed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prover: ["), 0644))
	//
	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ranker.Enabled = true
	cfg.Ranker.Endpoint = ""
	//
	assert.Error(t, cfg.Validate())
	//
	cfg = DefaultConfig()
	cfg.Ranker.Limit = -1
	//
	assert.Error(t, cfg.Validate())
}

func TestBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prover.Timeout = time.Minute
	//
	budget := cfg.Prover.Budget()
	//
	assert.Equal(t, uint(20000), budget.MaxResolvents)
	assert.False(t, budget.Deadline.IsZero())
	assert.True(t, budget.Deadline.After(time.Now()))
	// no timeout means no deadline
	cfg.Prover.Timeout = 0
	assert.True(t, cfg.Prover.Budget().Deadline.IsZero())
}
