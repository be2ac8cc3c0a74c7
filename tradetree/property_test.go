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

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// randomDate draws from a small pool so that duplicates are common.
func randomDate(rng *rand.Rand) string {
	return fmt.Sprintf("%02d/%02d/%d", 1+rng.Intn(28), 1+rng.Intn(12), 2015+rng.Intn(3))
}

func requireNonDecreasing(t *testing.T, tree *Tree) {
	t.Helper()
	prev := InvalidOrdinal
	for r := range tree.All() {
		key := ordinalOf(r.Date)
		require.GreaterOrEqual(t, key, prev, "in-order walk went backwards at %s", r.Date)
		prev = key
	}
}

func TestRandomInsertDeleteKeepsInvariants(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2023} {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			tree := New()
			present := make(map[Ordinal]int)

			for step := 0; step < 2000; step++ {
				date := randomDate(rng)
				key := ordinalOf(date)

				if rng.Intn(3) == 0 {
					removed, err := tree.Delete(date)
					require.NoError(t, err)
					require.Equal(t, present[key] > 0, removed, "step %d delete %s", step, date)
					if removed {
						present[key]--
					}
				} else {
					tree.Insert(record(date, uint64(rng.Intn(50))))
					present[key]++
				}

				require.NoError(t, tree.Check(), "step %d", step)
			}

			total := 0
			for _, n := range present {
				total += n
			}
			require.Equal(t, total, tree.Len())
			requireNonDecreasing(t, tree)

			// an AVL tree of n nodes is never taller than 1.44 log2(n+2)
			limit := 1
			for n := tree.Len() + 2; n > 1; n >>= 1 {
				limit++
			}
			require.LessOrEqual(t, tree.Height(), limit*3/2)
		})
	}
}

func TestDrainInRandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	tree := New()
	var inserted []string
	for i := 0; i < 500; i++ {
		date := randomDate(rng)
		inserted = append(inserted, date)
		tree.Insert(record(date, uint64(i)))
	}
	rng.Shuffle(len(inserted), func(i, j int) {
		inserted[i], inserted[j] = inserted[j], inserted[i]
	})

	for i, date := range inserted {
		removed, err := tree.Delete(date)
		require.NoError(t, err)
		require.True(t, removed, "delete %d of %s", i, date)
		require.NoError(t, tree.Check())
		requireNonDecreasing(t, tree)
	}
	require.True(t, tree.IsEmpty())
}
