// Copyright 2025 Naren Yellavula
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

// Package tradetree indexes trade-flow records in an AVL tree keyed by
// transaction date.
//
// Dates are written day/month/year and are compared through an ordinal
// (see Decode) rather than as text. Records sharing a date are allowed;
// they are routed to the right subtree on insert, and Search, Edit and
// Delete act on the first match found on the way down from the root.
//
// A Tree is not safe for concurrent use. Keep it in a single goroutine
// or guard it with a sync.RWMutex.
package tradetree
