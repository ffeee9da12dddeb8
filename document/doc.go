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


// Package document reads input documents and persists comparison
// results.
//
// The Loader resolves file bytes to text across multiple candidate
// character encodings (UTF-8, GBK, GB18030, UTF-16), classifying
// failures as distinct error kinds so callers can branch on them
// instead of inspecting error strings. The writer functions persist a
// similarity score in the fixed two-decimal output format, including
// the 0.00 fallback written on any failure path.
package document
