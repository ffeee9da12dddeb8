// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package vector

import (
	"math"
	"sort"
)

const (
	// DefaultMaxFeatures caps the vocabulary size per comparison.
	DefaultMaxFeatures = 5000

	// documentCount is fixed: vectors are always built over exactly
	// the two documents being compared, never a wider corpus.
	documentCount = 2
)

// Vectorizer converts a pair of token sequences into TF-IDF weighted
// feature vectors over a shared vocabulary. A Vectorizer holds no
// per-comparison state and is safe for concurrent use.
type Vectorizer struct {
	maxFeatures int
}

// NewVectorizer creates a Vectorizer. maxFeatures bounds the vocabulary
// size; values <= 0 select DefaultMaxFeatures.
func NewVectorizer(maxFeatures int) *Vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = DefaultMaxFeatures
	}
	return &Vectorizer{maxFeatures: maxFeatures}
}

// Vectorize builds the comparison vocabulary from the union of the two
// token sequences and returns one feature vector per sequence, indexed
// by vocabulary position. Term frequency is the raw count within a
// sequence; inverse document frequency uses the smoothed two-document
// formulation, so terms shared by both sequences weigh less than terms
// unique to one.
func (v *Vectorizer) Vectorize(tokensA, tokensB []string) ([]float64, []float64) {
	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)
	vocabulary := v.buildVocabulary(countsA, countsB)

	vecA := make([]float64, len(vocabulary))
	vecB := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		idf := math.Log(float64(1+documentCount)/float64(1+df)) + 1
		vecA[i] = float64(countsA[term]) * idf
		vecB[i] = float64(countsB[term]) * idf
	}
	return vecA, vecB
}

// buildVocabulary enumerates the distinct terms of the pair. When the
// union exceeds the cap, the terms with the highest total count across
// both sequences are kept, ties broken lexicographically. The returned
// vocabulary is sorted so vector layout is deterministic.
func (v *Vectorizer) buildVocabulary(countsA, countsB map[string]int) []string {
	terms := make([]string, 0, len(countsA)+len(countsB))
	for term := range countsA {
		terms = append(terms, term)
	}
	for term := range countsB {
		if countsA[term] == 0 {
			terms = append(terms, term)
		}
	}

	if len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			ti, tj := terms[i], terms[j]
			ci := countsA[ti] + countsB[ti]
			cj := countsA[tj] + countsB[tj]
			if ci != cj {
				return ci > cj
			}
			return ti < tj
		})
		terms = terms[:v.maxFeatures]
	}

	sort.Strings(terms)
	return terms
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}
