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


// Package vector builds TF-IDF feature vectors over a pair of token
// sequences and measures the angle between them.
//
// The vocabulary is scoped to a single comparison: it is built from the
// union of the two token sequences, capped to the highest-frequency
// terms, and discarded afterwards. Nothing is shared between calls, so
// independent comparisons may run in parallel.
package vector
