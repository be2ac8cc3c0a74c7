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
	"fmt"
)

// ErrNotFound is wrapped by NotFoundError.
var ErrNotFound = errors.New("date not found")

// DecodeError reports a date that is not three numeric parts separated
// by '/'.
type DecodeError struct {
	Text string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid date format %q: expected dd/mm/yyyy", e.Text)
}

// NotFoundError reports that no record carries the requested date.
type NotFoundError struct {
	Date string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Date)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
