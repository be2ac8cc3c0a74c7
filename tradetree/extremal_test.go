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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindExtremal(t *testing.T) {
	tree := buildTree(t,
		record("01/01/2023", 5),
		record("02/01/2023", 3),
	)

	got, ok := tree.FindExtremal(Max)
	require.True(t, ok)
	require.Equal(t, uint64(5), got.Value)

	got, ok = tree.FindExtremal(Min)
	require.True(t, ok)
	require.Equal(t, uint64(3), got.Value)
}

func TestFindExtremalEmpty(t *testing.T) {
	tree := New()

	_, ok := tree.FindExtremal(Max)
	require.False(t, ok)
	_, ok = tree.FindExtremal(Min)
	require.False(t, ok)
	require.Nil(t, tree.Extremes(Max, DefaultMatchLimit))
}

func TestFindExtremalIgnoresDateOrder(t *testing.T) {
	values := []uint64{40, 7, 91, 12, 91, 3, 55, 3, 18}
	tree := New()
	for i, v := range values {
		tree.Insert(record(fmt.Sprintf("%02d/03/2022", i+1), v))
	}

	got, _ := tree.FindExtremal(Max)
	require.Equal(t, uint64(91), got.Value)
	got, _ = tree.FindExtremal(Min)
	require.Equal(t, uint64(3), got.Value)
}

func TestTiesGoToFirstInPreOrder(t *testing.T) {
	// ascending inserts rotate 02/01 up to the root
	tree := buildTree(t,
		record("01/01/2023", 7),
		record("02/01/2023", 7),
		record("03/01/2023", 7),
	)

	got, _ := tree.FindExtremal(Max)
	require.Equal(t, "02/01/2023", got.Date)
	got, _ = tree.FindExtremal(Min)
	require.Equal(t, "02/01/2023", got.Date)

	matches := tree.CollectMatching(7, DefaultMatchLimit)
	require.Equal(t, []string{"02/01/2023", "01/01/2023", "03/01/2023"}, dates(matches))
}

func TestCollectMatchingLimit(t *testing.T) {
	tree := New()
	for day := 1; day <= 25; day++ {
		value := uint64(1)
		if day%2 == 0 {
			value = 2
		}
		tree.Insert(record(fmt.Sprintf("%02d/05/2021", day), value))
	}

	tests := []struct {
		name     string
		value    uint64
		limit    int
		expected int
	}{
		{"Capped", 1, DefaultMatchLimit, 10},
		{"Under cap", 2, 20, 12},
		{"No cap", 1, 0, 13},
		{"Negative means no cap", 2, -1, 12},
		{"No match", 3, DefaultMatchLimit, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			matches := tree.CollectMatching(tc.value, tc.limit)
			require.Len(t, matches, tc.expected)
			for _, r := range matches {
				require.Equal(t, tc.value, r.Value)
			}
		})
	}
}

func TestExtremes(t *testing.T) {
	tree := New()
	for day := 1; day <= 28; day++ {
		tree.Insert(record(fmt.Sprintf("%02d/02/2020", day), uint64(day%4)))
	}

	maxes := tree.Extremes(Max, DefaultMatchLimit)
	require.Len(t, maxes, 7)
	for _, r := range maxes {
		require.Equal(t, uint64(3), r.Value)
	}

	mins := tree.Extremes(Min, 3)
	require.Len(t, mins, 3)
	for _, r := range mins {
		require.Equal(t, uint64(0), r.Value)
	}
	// the first listed is the one FindExtremal picked
	first, _ := tree.FindExtremal(Min)
	require.Equal(t, first, mins[0])
}

func TestModeString(t *testing.T) {
	require.Equal(t, "max", Max.String())
	require.Equal(t, "min", Min.String())
	require.Equal(t, "unknown", Mode(9).String())
}
