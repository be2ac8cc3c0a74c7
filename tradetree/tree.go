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

// Tree holds the root of an AVL tree of records ordered by date.
type Tree struct {
	root  *node
	count int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of records in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// IsEmpty reports whether the tree holds no records.
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the tree, 0 when empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Insert adds record to the tree. A record whose date does not decode is
// still stored, keyed as InvalidOrdinal; use InsertStrict to reject it.
func (tree *Tree) Insert(record Record) {
	tree.root = insertRecursive(tree.root, record, ordinalOf(record.Date))
	tree.count++
}

// InsertStrict adds record only if its date decodes.
func (tree *Tree) InsertStrict(record Record) error {
	key, err := Decode(record.Date)
	if err != nil {
		return err
	}
	tree.root = insertRecursive(tree.root, record, key)
	tree.count++
	return nil
}

func insertRecursive(n *node, record Record, key Ordinal) *node {
	if n == nil {
		return newNode(record, key)
	}

	// equal keys go right so records sharing a date keep insertion order
	if key < n.key {
		n.left = insertRecursive(n.left, record, key)
	} else {
		n.right = insertRecursive(n.right, record, key)
	}

	return rebalance(n)
}

// Search returns the first record found for date while descending from
// the root.
func (tree *Tree) Search(date string) (Record, bool, error) {
	key, err := Decode(date)
	if err != nil {
		return Record{}, false, err
	}
	n := searchNode(tree.root, key)
	if n == nil {
		return Record{}, false, nil
	}
	return n.record, true, nil
}

func searchNode(n *node, key Ordinal) *node {
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// Edit replaces the value of the record Search would return for date.
// The key is untouched so the tree needs no rebalancing.
func (tree *Tree) Edit(date string, value uint64) error {
	key, err := Decode(date)
	if err != nil {
		return err
	}
	n := searchNode(tree.root, key)
	if n == nil {
		return &NotFoundError{Date: date}
	}
	n.record.Value = value
	return nil
}

// Delete removes the record Search would return for date. It reports
// whether a record was removed; a missing date leaves the tree untouched.
func (tree *Tree) Delete(date string) (bool, error) {
	key, err := Decode(date)
	if err != nil {
		return false, err
	}
	removed := false
	tree.root = deleteRecursive(tree.root, key, &removed)
	if removed {
		tree.count--
	}
	return removed, nil
}

func deleteRecursive(n *node, key Ordinal, removed *bool) *node {
	if n == nil {
		return nil // Key not found
	}

	switch {
	case key < n.key:
		n.left = deleteRecursive(n.left, key, removed)
	case key > n.key:
		n.right = deleteRecursive(n.right, key, removed)
	default:
		*removed = true

		// No children or only one
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}

		// Two children: take over the in-order successor and drop its
		// old position from the right subtree
		successor := findMin(n.right)
		n.record = successor.record
		n.key = successor.key
		n.right = deleteMin(n.right)
	}

	if !*removed {
		// nothing below changed, heights are still valid
		return n
	}
	return rebalance(n)
}

func findMin(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// deleteMin unlinks the leftmost node of the subtree rooted at n.
func deleteMin(n *node) *node {
	if n.left == nil {
		return n.right
	}
	n.left = deleteMin(n.left)
	return rebalance(n)
}
