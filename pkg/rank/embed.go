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
package rank

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	log "github.com/sirupsen/logrus"
)

// Embeddings ranks lemmas by cosine similarity of sentence embeddings, as
// served by any OpenAI-compatible endpoint.  Goal and candidate descriptions
// are embedded in a single request; descriptions embed to the same vector
// across calls, so the ranking is deterministic for a given model.
type Embeddings struct {
	client openai.Client
	model  string
}

// NewEmbeddings constructs an embeddings selector against a given endpoint
// and model.  The key may be empty for endpoints which require none.
func NewEmbeddings(endpoint string, key string, model string) *Embeddings {
	opts := []option.RequestOption{option.WithBaseURL(endpoint)}
	//
	if key != "" {
		opts = append(opts, option.WithAPIKey(key))
	}
	//
	return &Embeddings{openai.NewClient(opts...), model}
}

// Ping checks the endpoint is reachable and the model available, by embedding
// a trivial input.  Called once at startup, so a misconfigured model surfaces
// immediately rather than on the first theorem.
func (p *Embeddings) Ping(ctx context.Context) error {
	_, err := p.embed(ctx, []string{"ping"})
	return err
}

// Select implementation for the Selector interface.
func (p *Embeddings) Select(goal string, candidates []string) ([]int, error) {
	if goal == "" || len(candidates) == 0 {
		return nil, nil
	}
	// Embed the goal and all candidates in one request.
	vectors, err := p.embed(context.Background(), append([]string{goal}, candidates...))
	//
	if err != nil {
		return nil, err
	}
	//
	target := vectors[0]
	//
	type scored struct {
		index int
		score float64
	}
	//
	ranking := make([]scored, len(candidates))
	//
	for i, vector := range vectors[1:] {
		score := dotProduct(target, vector)
		log.Debugf("lemma %d scored %.4f against goal", i, score)
		//
		ranking[i] = scored{i, score}
	}
	// Sort by descending score, breaking ties by index for determinism.
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].score > ranking[j].score
	})
	//
	indices := make([]int, len(ranking))
	//
	for i, r := range ranking {
		indices[i] = r.index
	}
	//
	return indices, nil
}

// embed a batch of texts, returning one unit vector per text.
func (p *Embeddings) embed(ctx context.Context, texts []string) ([][]float64, error) {
	resp, err := p.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(p.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	//
	if err != nil {
		return nil, err
	} else if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("embedding endpoint returned %d vectors for %d inputs", len(resp.Data), len(texts))
	}
	//
	vectors := make([][]float64, len(resp.Data))
	//
	for i, datum := range resp.Data {
		vectors[i] = normalise(datum.Embedding)
	}
	//
	return vectors, nil
}

// normalise scales a vector to unit length, so that dot products are cosine
// similarities.
func normalise(vector []float64) []float64 {
	var norm float64
	//
	for _, x := range vector {
		norm += x * x
	}
	//
	if norm == 0 {
		return vector
	}
	//
	norm = math.Sqrt(norm)
	scaled := make([]float64, len(vector))
	//
	for i, x := range vector {
		scaled[i] = x / norm
	}
	//
	return scaled
}

func dotProduct(lhs []float64, rhs []float64) float64 {
	var dot float64
	//
	n := len(lhs)
	if len(rhs) < n {
		n = len(rhs)
	}
	for i := 0; i < n; i++ {
		dot += lhs[i] * rhs[i]
	}
	//
	return dot
}
