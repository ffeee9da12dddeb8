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


package checker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/poiesic/papercheck/document"
	"github.com/poiesic/papercheck/textproc"
	"github.com/poiesic/papercheck/vector"
)

// Checker computes similarity scores between pairs of documents.
// It is read-only after construction and safe for concurrent use.
type Checker struct {
	segmenter  *textproc.Segmenter
	stopWords  textproc.StopWordSet
	vectorizer *vector.Vectorizer
	loader     *document.Loader
	poolSize   int
	logger     *slog.Logger
}

// Option configures a Checker.
type Option func(*Checker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) error {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
		return nil
	}
}

// NewChecker creates a checker from cfg. A nil cfg selects the
// defaults.
func NewChecker(cfg *Config, opts ...Option) (*Checker, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	segmenter, err := textproc.NewSegmenter(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		segmenter:  segmenter,
		stopWords:  textproc.NewStopWordSet(cfg.StopWords),
		vectorizer: vector.NewVectorizer(cfg.MaxFeatures),
		poolSize:   cfg.PoolSize,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Loader is created after options so it shares the final logger.
	c.loader = document.NewLoader(document.WithLogger(c.logger))

	return c, nil
}

// Similarity scores two in-memory texts. The result is always in
// [0, 1], rounded to four decimal places. If either text has no
// comparable content after normalization the score is 0.0; that is the
// designed behavior, not an error.
func (c *Checker) Similarity(text1, text2 string) float64 {
	tokens1 := c.tokenize(text1)
	tokens2 := c.tokenize(text2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0.0
	}
	return c.scoreTokens(tokens1, tokens2, &noopMonitor{})
}

// Check loads the documents at origPath and candidatePath, scores
// them, and writes the result to outPath. On any failure the fallback
// value 0.00 is written first and the classified error is returned, so
// the output file exists in a well-defined state on every path.
func (c *Checker) Check(ctx context.Context, origPath, candidatePath, outPath string) (float64, error) {
	return c.CheckWithMonitor(ctx, origPath, candidatePath, outPath, nil)
}

// CheckWithMonitor is Check with per-stage observation hooks.
func (c *Checker) CheckWithMonitor(ctx context.Context, origPath, candidatePath, outPath string, monitor CheckMonitor) (float64, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	start := time.Now()
	monitor.Start(origPath, candidatePath)

	score, err := c.compare(ctx, origPath, candidatePath, monitor)
	if err != nil {
		c.writeFallback(outPath)
		return 0.0, err
	}

	if err := document.WriteScore(outPath, score); err != nil {
		c.writeFallback(outPath)
		return 0.0, err
	}

	elapsed := time.Since(start)
	monitor.Finish(score, elapsed)
	c.logger.Debug("check complete",
		"orig", origPath, "candidate", candidatePath,
		"score", score, "elapsed", elapsed)

	return score, nil
}

func (c *Checker) compare(ctx context.Context, origPath, candidatePath string, monitor CheckMonitor) (float64, error) {
	origText, err := c.loadDocument(origPath, monitor)
	if err != nil {
		return 0.0, err
	}
	candidateText, err := c.loadDocument(candidatePath, monitor)
	if err != nil {
		return 0.0, err
	}

	if err := ctx.Err(); err != nil {
		return 0.0, err
	}

	tokens1 := c.tokenize(origText)
	monitor.AfterTokenize(origPath, len(tokens1))
	tokens2 := c.tokenize(candidateText)
	monitor.AfterTokenize(candidatePath, len(tokens2))

	if len(tokens1) == 0 || len(tokens2) == 0 {
		c.logger.Debug("no comparable content after normalization",
			"orig", origPath, "candidate", candidatePath)
		return 0.0, nil
	}

	return c.scoreTokens(tokens1, tokens2, monitor), nil
}

// loadDocument resolves a path to non-blank text. Zero-length files
// load as empty text; they are classified here as ErrEmptyContent so
// callers see one error kind for every "no content" case.
func (c *Checker) loadDocument(path string, monitor CheckMonitor) (string, error) {
	text, err := c.loader.Load(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", document.ErrEmptyContent, path)
	}
	monitor.AfterLoad(path, utf8.RuneCountInString(text))
	return text, nil
}

func (c *Checker) tokenize(text string) []string {
	cleaned := textproc.Clean(text)
	return textproc.Filter(c.segmenter.Segment(cleaned), c.stopWords)
}

// scoreTokens runs vectorization and scoring. A panic out of the
// vector stage is absorbed and reported as 0.0; callers cannot
// distinguish that from genuine dissimilarity, which matches the
// established output contract even though it conflates the two.
func (c *Checker) scoreTokens(tokens1, tokens2 []string, monitor CheckMonitor) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("similarity computation failed", "err", r)
			score = 0.0
		}
	}()

	vecA, vecB := c.vectorizer.Vectorize(tokens1, tokens2)
	monitor.AfterVectorize(len(vecA))
	return roundScore(clamp01(vector.Cosine(vecA, vecB)))
}

// writeFallback is best-effort: a failed fallback write is logged, and
// the original comparison error still propagates to the caller.
func (c *Checker) writeFallback(outPath string) {
	if err := document.WriteFallback(outPath); err != nil {
		c.logger.Error("writing fallback result", "path", outPath, "err", err)
	}
}

// clamp01 bounds v to [0, 1], absorbing floating-point overshoot.
func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// roundScore rounds to four decimal places; output formatting later
// narrows to two.
func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}
