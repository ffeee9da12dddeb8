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
	"fmt"
	"os"
	"path/filepath"
)

// FallbackScore is written to the output file when a comparison fails,
// so the output artifact exists in a well-defined state on every path.
const FallbackScore = 0.0

// WriteScore persists score to path as fixed two-decimal UTF-8 text,
// creating the parent directory if necessary and overwriting any
// existing file.
func WriteScore(path string, score float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%.2f", score)), 0o644); err != nil {
		return fmt.Errorf("writing result to %s: %w", path, err)
	}
	return nil
}

// WriteFallback writes the literal fallback value 0.00 to path.
func WriteFallback(path string) error {
	return WriteScore(path, FallbackScore)
}
