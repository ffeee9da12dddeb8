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


package textproc

import (
	"fmt"
	"iter"

	"github.com/go-ego/gse"
)

const (
	// lexiconFrequency is the dictionary frequency assigned to
	// registered lexicon terms. High enough that longest-match
	// segmentation always prefers the whole term over any split of it.
	lexiconFrequency = 100000

	// minTokenFrequency separates established dictionary words from
	// the rare compound entries the embedded dictionary also carries
	// (e.g. 天气晴朗, 周天). A rare compound absorbs the common words
	// inside it, so two phrasings of the same statement stop sharing
	// vocabulary terms; tokens below this floor are re-cut into their
	// frequent constituents.
	minTokenFrequency = 100
)

// Segmenter breaks cleaned text into word tokens using dictionary-based
// longest-match segmentation. It is read-only after construction and
// safe for concurrent use.
type Segmenter struct {
	seg     gse.Segmenter
	lexicon map[string]bool
}

// NewSegmenter creates a segmenter backed by the embedded Chinese
// dictionary. Every lexicon entry is force-registered so it is emitted
// as a single token wherever it appears verbatim; the lexicon is
// configuration, not shared mutable state, and cannot change after
// construction.
func NewSegmenter(lexicon []string) (*Segmenter, error) {
	s := &Segmenter{lexicon: make(map[string]bool, len(lexicon))}
	if err := s.seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("loading segmentation dictionary: %w", err)
	}
	for _, term := range lexicon {
		if err := s.seg.AddToken(term, lexiconFrequency); err != nil {
			return nil, fmt.Errorf("registering lexicon term %q: %w", term, err)
		}
		s.lexicon[term] = true
	}
	return s, nil
}

// Segment returns the token sequence for text. Tokens come from the
// dictionary path alone: the statistical model for out-of-vocabulary
// runs is disabled because it glues adjacent function characters into
// pseudo-words (我要, 是周) that never recur between two phrasings of
// the same statement. The sequence is finite and restartable: ranging
// over it again re-segments the same input and yields the identical
// tokens.
func (s *Segmenter) Segment(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, token := range s.seg.Cut(text, false) {
			for _, part := range s.refine(token) {
				if !yield(part) {
					return
				}
			}
		}
	}
}

// refine re-cuts rare dictionary compounds into their frequent
// constituents. Lexicon terms are exempt: AddToken does not raise the
// frequency of a term the dictionary already lists, so the exemption
// is what keeps the never-split guarantee for rare lexicon entries.
func (s *Segmenter) refine(token string) []string {
	runes := []rune(token)
	if len(runes) < 2 || s.lexicon[token] {
		return []string{token}
	}
	freq, _, ok := s.seg.Find(token)
	if !ok || freq >= minTokenFrequency {
		return []string{token}
	}
	return s.subTerms(runes)
}

// subTerms splits runes by greedy longest dictionary match, never
// matching the full span. Runes covered by no multi-rune term come out
// alone and are discarded by downstream filtering.
func (s *Segmenter) subTerms(runes []rune) []string {
	parts := make([]string, 0, len(runes)/2+1)
	for start := 0; start < len(runes); {
		matched := 1
		for end := len(runes); end >= start+2; end-- {
			if start == 0 && end == len(runes) {
				continue
			}
			if _, _, ok := s.seg.Find(string(runes[start:end])); ok {
				matched = end - start
				break
			}
		}
		parts = append(parts, string(runes[start:start+matched]))
		start += matched
	}
	return parts
}
