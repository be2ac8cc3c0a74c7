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

// Record is a single trade-flow row. Only Date and Value are interpreted
// by the tree.
type Record struct {
	Direction     string // Imports or Exports
	Year          uint16
	Date          string // dd/mm/yyyy, the ordering key
	Weekday       string
	Country       string
	Commodity     string
	TransportMode string
	Measure       string // unit of Value, e.g. $ or Tonnes
	Value         uint64
	Cumulative    uint64
}

// String renders the record as its ten fields joined by ", ".
func (r Record) String() string {
	return fmt.Sprintf("%s, %d, %s, %s, %s, %s, %s, %s, %d, %d",
		r.Direction,
		r.Year,
		r.Date,
		r.Weekday,
		r.Country,
		r.Commodity,
		r.TransportMode,
		r.Measure,
		r.Value,
		r.Cumulative,
	)
}
