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


// Package textproc turns raw document text into comparable token sequences.
//
// Processing happens in three stages:
//   - Clean strips punctuation, digits, and non-linguistic symbols
//   - Segmenter breaks the cleaned text into words using a
//     dictionary-based algorithm suited to scripts without whitespace
//     word boundaries
//   - Filter drops stop words and tokens too short to carry meaning
//
// All three stages are deterministic: identical input always produces
// the identical token sequence.
package textproc
