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


// Package checker orchestrates pairwise document similarity checks.
//
// A Checker wires together the text processing, vectorization, and
// document I/O stages into two public operations:
//   - Similarity scores two in-memory texts
//   - Check loads two files, scores them, and persists the result
//
// Checks are synchronous and share no mutable state, so one Checker may
// serve concurrent comparisons; CheckMany exploits that to compare one
// original against many candidates in parallel.
package checker
