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

import "errors"

var (
	// ErrNotFound is returned when an input path does not resolve to
	// an existing file.
	ErrNotFound = errors.New("document not found")

	// ErrDecodeFailed is returned when no candidate encoding decodes
	// the file contents.
	ErrDecodeFailed = errors.New("document could not be decoded")

	// ErrEmptyContent is returned when a document decodes successfully
	// but contains only whitespace.
	ErrEmptyContent = errors.New("document content is empty")
)
