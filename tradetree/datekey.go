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
	"strconv"
	"strings"
)

// Ordinal is the comparison key derived from a date.
type Ordinal int64

// InvalidOrdinal keys records whose date could not be decoded. It sorts
// before every valid date.
const InvalidOrdinal Ordinal = -1

// Decode converts a day/month/year date into its ordinal
//
//	year*365 + month*30 + day
//
// The formula treats every month as 30 days long. It is not a day count,
// only an ordering that holds as long as every comparison goes through it.
func Decode(text string) (Ordinal, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return InvalidOrdinal, &DecodeError{Text: text}
	}

	var fields [3]uint64
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return InvalidOrdinal, &DecodeError{Text: text}
		}
		fields[i] = n
	}
	day, month, year := fields[0], fields[1], fields[2]

	return Ordinal(year*365 + month*30 + day), nil
}

// ordinalOf is the permissive form of Decode used by Insert.
func ordinalOf(text string) Ordinal {
	key, err := Decode(text)
	if err != nil {
		return InvalidOrdinal
	}
	return key
}
