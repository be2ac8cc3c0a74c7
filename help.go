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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const version = "0.3.0"

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Tradeflow %s**

Index trade-flow records by transaction date and query them from the terminal.
Lookups, edits and deletes stay logarithmic however the CSV happens to be ordered.

Built with Go %s

# 1. Features
* Load a trade-flow CSV export into a date-ordered index
* Search, edit and delete records by date (dd/mm/yyyy)
* List the records holding the largest or smallest value
* Interactive terminal UI and a plain line shell

# 2. Commands
* tradeflow ui: menu driven terminal UI (default)
* tradeflow shell: line shell, type help for the command list
* tradeflow dump | search | edit | delete | max | min: one-shot queries
* tradeflow check: verify the index after loading
* tradeflow settings: show or create ~/%s

# 3. Data format
Columns: direction, year, date, weekday, country, commodity, transport_mode, measure, value, cumulative

# Please be aware
* Records sharing a date are all kept; search, edit and delete act on the first one found
* Edits and deletes are not written back to the CSV file
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version(), configFileName)
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
