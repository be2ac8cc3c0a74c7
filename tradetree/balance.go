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

func height(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

func rotateLeft(n *node) *node {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now below pivot, so its height goes first
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight(n *node) *node {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the height and balance of n after one of its
// subtrees changed and returns the new root of the subtree.
func rebalance(n *node) *node {
	updateHeight(n)

	balance := balanceFactor(n)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(n.left) < 0 {
			// Left-Right case
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(n.right) > 0 {
			// Right-Left case
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}

	return n
}
