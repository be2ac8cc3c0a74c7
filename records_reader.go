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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/cybrota/tradeflow/tradetree"
	"github.com/schollz/progressbar/v3"
)

// csvFields is the column order of the trade-flow CSV export.
var csvFields = []string{
	"direction",
	"year",
	"date",
	"weekday",
	"country",
	"commodity",
	"transport_mode",
	"measure",
	"value",
	"cumulative",
}

// ParseError reports a numeric column that failed to parse.
type ParseError struct {
	Line   int
	Column int // 1-based
	Field  string
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d (%s): cannot parse %q: %v", e.Line, e.Column, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseRecord builds a record from one CSV row. line is only used for
// error reporting.
func parseRecord(fields []string, line int) (tradetree.Record, error) {
	if len(fields) != len(csvFields) {
		return tradetree.Record{}, fmt.Errorf("line %d: expected %d fields, got %d", line, len(csvFields), len(fields))
	}

	parseUint := func(column int, bits int) (uint64, error) {
		n, err := strconv.ParseUint(fields[column], 10, bits)
		if err != nil {
			return 0, &ParseError{
				Line:   line,
				Column: column + 1,
				Field:  csvFields[column],
				Text:   fields[column],
				Err:    err,
			}
		}
		return n, nil
	}

	year, err := parseUint(1, 16)
	if err != nil {
		return tradetree.Record{}, err
	}
	value, err := parseUint(8, 64)
	if err != nil {
		return tradetree.Record{}, err
	}
	cumulative, err := parseUint(9, 64)
	if err != nil {
		return tradetree.Record{}, err
	}

	return tradetree.Record{
		Direction:     fields[0],
		Year:          uint16(year),
		Date:          fields[2],
		Weekday:       fields[3],
		Country:       fields[4],
		Commodity:     fields[5],
		TransportMode: fields[6],
		Measure:       fields[7],
		Value:         value,
		Cumulative:    cumulative,
	}, nil
}

// ReadRecords streams the rows of r to fn in file order, stopping at the
// first malformed row or the first error returned by fn.
func ReadRecords(r io.Reader, hasHeader bool, fn func(tradetree.Record) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvFields)
	reader.ReuseRecord = true

	if hasHeader {
		if _, err := reader.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read header: %w", err)
		}
	}

	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line, _ := reader.FieldPos(0)
		record, err := parseRecord(fields, line)
		if err != nil {
			return err
		}
		if err := fn(record); err != nil {
			return err
		}
	}
}

// loadTree bulk loads the CSV file at path into a new tree.
func loadTree(path string, config *Config) (*tradetree.Tree, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("data file %s not found. Pass --file or set data.file in ~/%s", path, configFileName)
		}
		return nil, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if config.Load.ShowProgress {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("📦 Loading records..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	start := time.Now()
	tree := tradetree.New()
	err = ReadRecords(file, config.Data.HasHeader, func(record tradetree.Record) error {
		tree.Insert(record)
		if bar != nil {
			bar.Add(1)
		}
		return nil
	})
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	log.Printf("Loaded %d records from %s in %dms", tree.Len(), path, time.Since(start).Milliseconds())
	return tree, nil
}
