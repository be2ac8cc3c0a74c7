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

import "iter"

// Iterator walks a tree in ascending date order. It is single use: once
// Next has reported false it keeps doing so.
//
// Mutating the tree while an Iterator is live gives unspecified results.
type Iterator struct {
	stack []*node
}

// Iterator returns an in-order iterator positioned before the first record.
func (tree *Tree) Iterator() *Iterator {
	it := &Iterator{
		stack: make([]*node, 0, height(tree.root)),
	}
	it.pushLeft(tree.root)
	return it
}

func (it *Iterator) pushLeft(n *node) {
	for n != nil {
		it.stack = append(it.stack, n)
		n = n.left
	}
}

// Next returns the next record and true, or false when the walk is over.
func (it *Iterator) Next() (Record, bool) {
	if len(it.stack) == 0 {
		return Record{}, false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(n.right)
	return n.record, true
}

// All returns the records in ascending date order.
func (tree *Tree) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		it := tree.Iterator()
		for {
			record, ok := it.Next()
			if !ok || !yield(record) {
				return
			}
		}
	}
}

// Records collects All into a slice.
func (tree *Tree) Records() []Record {
	records := make([]Record, 0, tree.count)
	for record := range tree.All() {
		records = append(records, record)
	}
	return records
}
