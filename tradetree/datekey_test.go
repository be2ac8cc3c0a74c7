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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		input    string
		expected Ordinal
	}{
		{"01/01/2020", 737331},
		{"31/12/2020", 737691},
		{"10/01/2023", 2023*365 + 30 + 10},
		{"1/2/2023", 2023*365 + 60 + 1},
		{"00/00/0000", 0},
	}

	for _, tc := range tests {
		got, err := Decode(tc.input)
		require.NoError(t, err, "Decode(%q)", tc.input)
		require.Equal(t, tc.expected, got, "Decode(%q)", tc.input)
	}
}

func TestDecodeRejectsMalformedDates(t *testing.T) {
	inputs := []string{
		"",
		"invalid date",
		"01/01",
		"01/01/2020/01",
		"aa/01/2020",
		"01//2020",
		"-1/01/2020",
		"01-01-2020",
		" 01/01/2020",
	}

	for _, input := range inputs {
		got, err := Decode(input)
		require.Error(t, err, "Decode(%q)", input)
		require.Equal(t, InvalidOrdinal, got)

		var decodeErr *DecodeError
		require.True(t, errors.As(err, &decodeErr), "Decode(%q) error type %T", input, err)
		require.Equal(t, input, decodeErr.Text)
	}
}

// The ordinal never orders a later date before an earlier one. Month
// ends may share an ordinal with the first of the next month.
func TestDecodeFollowsChronology(t *testing.T) {
	chronological := []string{
		"01/01/2020",
		"31/01/2020",
		"01/02/2020",
		"15/06/2020",
		"31/12/2020",
		"01/01/2021",
	}

	prev, err := Decode(chronological[0])
	require.NoError(t, err)
	for _, date := range chronological[1:] {
		key, err := Decode(date)
		require.NoError(t, err)
		require.GreaterOrEqual(t, key, prev, "%s should not sort before its predecessor", date)
		prev = key
	}
}

func TestDecodeMonthEndCollision(t *testing.T) {
	endOfJanuary, err := Decode("31/01/2020")
	require.NoError(t, err)
	firstOfFebruary, err := Decode("01/02/2020")
	require.NoError(t, err)

	require.Equal(t, Ordinal(737361), endOfJanuary)
	require.Equal(t, endOfJanuary, firstOfFebruary)

	// colliding dates are duplicates to the tree: both are stored and
	// a search for either lands on the one inserted first
	tree := New()
	tree.Insert(Record{Date: "31/01/2020", Value: 1})
	tree.Insert(Record{Date: "01/02/2020", Value: 2})
	require.Equal(t, 2, tree.Len())

	got, found, err := tree.Search("01/02/2020")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "31/01/2020", got.Date)
}
