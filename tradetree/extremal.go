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

// DefaultMatchLimit caps the records returned by Extremes.
const DefaultMatchLimit = 10

// Mode selects the extreme looked for by FindExtremal.
type Mode int

const (
	Max Mode = iota
	Min
)

func (m Mode) String() string {
	switch m {
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "unknown"
	}
}

// beats reports whether a is strictly more extreme than b.
func (m Mode) beats(a, b uint64) bool {
	if m == Min {
		return a < b
	}
	return a > b
}

// FindExtremal scans the whole tree for the record with the largest (Max)
// or smallest (Min) Value. The tree is ordered by date, not value, so
// every node is visited. Ties go to the record visited first in pre-order.
func (tree *Tree) FindExtremal(mode Mode) (Record, bool) {
	best := findExtremal(tree.root, mode, nil)
	if best == nil {
		return Record{}, false
	}
	return best.record, true
}

func findExtremal(n *node, mode Mode, best *node) *node {
	if n == nil {
		return best
	}
	if best == nil || mode.beats(n.record.Value, best.record.Value) {
		best = n
	}
	best = findExtremal(n.left, mode, best)
	return findExtremal(n.right, mode, best)
}

// CollectMatching returns, in pre-order, the records whose Value equals
// value. At most limit records are returned; limit <= 0 means no cap.
func (tree *Tree) CollectMatching(value uint64, limit int) []Record {
	var matches []Record
	collectMatching(tree.root, value, limit, &matches)
	return matches
}

// collectMatching returns false once the limit has been reached.
func collectMatching(n *node, value uint64, limit int, matches *[]Record) bool {
	if n == nil {
		return true
	}
	if n.record.Value == value {
		*matches = append(*matches, n.record)
		if limit > 0 && len(*matches) >= limit {
			return false
		}
	}
	if !collectMatching(n.left, value, limit, matches) {
		return false
	}
	return collectMatching(n.right, value, limit, matches)
}

// Extremes finds the extreme value for mode and returns up to limit
// records carrying it.
func (tree *Tree) Extremes(mode Mode, limit int) []Record {
	extreme, ok := tree.FindExtremal(mode)
	if !ok {
		return nil
	}
	return tree.CollectMatching(extreme.Value, limit)
}
