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

package tradetree

// node owns one record and its two subtrees.
type node struct {
	record Record
	key    Ordinal // decoded record.Date
	height int     // 1 for a leaf
	left   *node
	right  *node
}

func newNode(record Record, key Ordinal) *node {
	return &node{
		record: record,
		key:    key,
		height: 1,
	}
}
