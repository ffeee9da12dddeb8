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


package document

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

// candidate is one encoding the Loader will attempt, in order.
type candidate struct {
	name     string
	charsets []string // detector charset names that map to this candidate
	decode   func(data []byte) (string, bool)
}

// Loader resolves file bytes to text. It is stateless apart from its
// configuration and safe for concurrent use.
type Loader struct {
	detector *chardet.Detector
	logger   *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a document loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		detector: chardet.NewTextDetector(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the file at path and returns its text content.
//
// A zero-length file yields empty text without an error; callers treat
// that the same as ErrEmptyContent upstream. Candidate encodings are
// tried in order (UTF-8, GBK, GB18030, UTF-16) and the first successful
// decode wins. ErrNotFound, ErrDecodeFailed, and ErrEmptyContent
// classify the failure modes.
func (l *Loader) Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}
	if info.Size() == 0 {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	for _, c := range l.candidateOrder(data) {
		text, ok := c.decode(data)
		if !ok {
			continue
		}
		// The first successful decode settles the encoding; a blank
		// result must not fall through to a later candidate that would
		// reinterpret the same whitespace bytes as mojibake.
		if strings.TrimSpace(text) == "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyContent, path)
		}
		l.logger.Debug("decoded document",
			"path", path, "encoding", c.name, "chars", utf8.RuneCountInString(text))
		return text, nil
	}

	return "", fmt.Errorf("%w: %s", ErrDecodeFailed, path)
}

// candidateOrder returns the candidate list, with the detector's best
// guess promoted to the front when it maps to a known candidate. The
// detector only reorders; it never adds or removes candidates.
func (l *Loader) candidateOrder(data []byte) []candidate {
	candidates := defaultCandidates()

	best, err := l.detector.DetectBest(data)
	if err != nil {
		return candidates
	}
	for i, c := range candidates {
		for _, charset := range c.charsets {
			if charset == best.Charset {
				ordered := make([]candidate, 0, len(candidates))
				ordered = append(ordered, candidates[i])
				ordered = append(ordered, candidates[:i]...)
				ordered = append(ordered, candidates[i+1:]...)
				return ordered
			}
		}
	}
	return candidates
}

func defaultCandidates() []candidate {
	return []candidate{
		{
			name:     "utf-8",
			charsets: []string{"UTF-8"},
			decode: func(data []byte) (string, bool) {
				if !utf8.Valid(data) {
					return "", false
				}
				return string(data), true
			},
		},
		{
			name:     "gbk",
			charsets: []string{"GBK", "GB2312"},
			decode:   transformDecode(simplifiedchinese.GBK),
		},
		{
			name:     "gb18030",
			charsets: []string{"GB-18030"},
			decode:   transformDecode(simplifiedchinese.GB18030),
		},
		{
			name:     "utf-16",
			charsets: []string{"UTF-16LE", "UTF-16BE"},
			decode: transformDecode(
				unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)),
		},
	}
}

// transformDecode adapts an x/text encoding into a strict decode
// attempt. x/text decoders substitute U+FFFD for bytes they cannot map
// instead of failing, so a replacement rune in the output marks the
// attempt as unsuccessful.
func transformDecode(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		if !utf8.Valid(decoded) || bytes.ContainsRune(decoded, utf8.RuneError) {
			return "", false
		}
		return string(decoded), true
	}
}
