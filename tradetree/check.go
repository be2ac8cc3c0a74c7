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

import "fmt"

// Check verifies the cached heights, the AVL balance, the date ordering
// and the record count. A non-nil result means the tree is corrupt.
func (tree *Tree) Check() error {
	count, err := check(tree.root, InvalidOrdinal, nil)
	if err != nil {
		return err
	}
	if count != tree.count {
		return fmt.Errorf("count mismatch: tree reports %d, found %d nodes", tree.count, count)
	}
	return nil
}

// check verifies the subtree at n, whose keys must not be below low nor
// above *high, and returns its node count.
func check(n *node, low Ordinal, high *Ordinal) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.key < low || (high != nil && n.key > *high) {
		return 0, fmt.Errorf("order violated at %q: key %d outside its subtree bounds", n.record.Date, n.key)
	}
	if key := ordinalOf(n.record.Date); key != n.key {
		return 0, fmt.Errorf("stale key at %q: cached %d, decodes to %d", n.record.Date, n.key, key)
	}

	nl, err := check(n.left, low, &n.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(n.right, n.key, high)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("height mismatch at %q: cached %d, expected %d", n.record.Date, n.height, want)
	}
	if b := balanceFactor(n); b > 1 || b < -1 {
		return 0, fmt.Errorf("unbalanced at %q: balance factor %+d", n.record.Date, b)
	}
	return 1 + nl + nr, nil
}
