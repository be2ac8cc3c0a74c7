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
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/tradeflow/tradetree"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// false positive rate of the loaded-dates filter
const dateFilterFalsePositive = 0.01

// Session owns the tree for the lifetime of one program run. Every
// request handler gets the session it works on; there is no global tree.
//
// dates remembers every date ever inserted so that lookups for dates the
// data set never had skip the tree. Deletes do not clear it, which only
// costs a descent.
type Session struct {
	tree       *tradetree.Tree
	dates      *bloom.BloomFilter
	rendered   *cache.Cache
	matchLimit int
}

func NewSession(tree *tradetree.Tree, config *Config) *Session {
	capacity := uint(tree.Len())
	if capacity < 1024 {
		capacity = 1024
	}
	s := &Session{
		tree:       tree,
		dates:      bloom.NewWithEstimates(capacity, dateFilterFalsePositive),
		rendered:   NewRenderedCache(config.CacheExpiration()),
		matchLimit: config.Scan.MatchLimit,
	}
	for record := range tree.All() {
		s.dates.AddString(filterKey(record.Date))
	}
	return s
}

// filterKey maps dates with the same ordinal ("1/2/2023", "01/02/2023")
// to the same filter and cache entry.
func filterKey(date string) string {
	key, err := tradetree.Decode(date)
	if err != nil {
		return date
	}
	return strconv.FormatInt(int64(key), 10)
}

func (s *Session) Len() int {
	return s.tree.Len()
}

func (s *Session) Height() int {
	return s.tree.Height()
}

// Insert adds a record and registers its date with the filter.
func (s *Session) Insert(record tradetree.Record) error {
	if err := s.tree.InsertStrict(record); err != nil {
		return err
	}
	s.dates.AddString(filterKey(record.Date))
	// rotations can change which duplicate any date resolves to
	s.rendered.Flush()
	return nil
}

// Dump writes every record in date order, one per line, and returns the
// number written.
func (s *Session) Dump(w io.Writer) int {
	n := 0
	for record := range s.tree.All() {
		fmt.Fprintln(w, record)
		n++
	}
	return n
}

func (s *Session) Search(date string) (tradetree.Record, bool, error) {
	if _, err := tradetree.Decode(date); err != nil {
		return tradetree.Record{}, false, err
	}
	if !s.dates.TestString(filterKey(date)) {
		return tradetree.Record{}, false, nil
	}
	return s.tree.Search(date)
}

func (s *Session) Edit(date string, value uint64) (tradetree.Record, error) {
	if err := s.tree.Edit(date, value); err != nil {
		return tradetree.Record{}, err
	}
	s.rendered.Delete(filterKey(date))
	record, _, err := s.tree.Search(date)
	return record, err
}

// Delete removes the record Search returns for date, if any.
func (s *Session) Delete(date string) (tradetree.Record, bool, error) {
	record, found, err := s.Search(date)
	if err != nil || !found {
		return tradetree.Record{}, false, err
	}
	if _, err := s.tree.Delete(date); err != nil {
		return tradetree.Record{}, false, err
	}
	// a two-child delete moves records between nodes, which can change
	// which duplicate a later search lands on
	s.rendered.Flush()
	return record, true, nil
}

// Extremes lists the records carrying the largest or smallest value.
func (s *Session) Extremes(mode tradetree.Mode) []tradetree.Record {
	return s.tree.Extremes(mode, s.matchLimit)
}

// Detail returns the markdown description of the record Search returns
// for date.
func (s *Session) Detail(date string) (string, error) {
	key := filterKey(date)
	if page := GetRendered(s.rendered, key); page != "" {
		return page, nil
	}

	record, found, err := s.Search(date)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &tradetree.NotFoundError{Date: date}
	}

	page := recordMarkdown(record)
	CacheRendered(s.rendered, key, page)
	return page, nil
}

func recordMarkdown(r tradetree.Record) string {
	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s %s\n\n", r.Direction, r.Date))
	content.WriteString(fmt.Sprintf("**Weekday:** %s\n\n", r.Weekday))
	content.WriteString(fmt.Sprintf("**Year:** %d\n\n", r.Year))
	content.WriteString(fmt.Sprintf("**Country:** %s\n\n", r.Country))
	content.WriteString(fmt.Sprintf("**Commodity:** %s\n\n", r.Commodity))
	content.WriteString(fmt.Sprintf("**Transport Mode:** %s\n\n", r.TransportMode))
	content.WriteString(fmt.Sprintf("**Value:** %d %s\n\n", r.Value, r.Measure))
	content.WriteString(fmt.Sprintf("**Cumulative:** %d %s\n\n", r.Cumulative, r.Measure))
	return content.String()
}
