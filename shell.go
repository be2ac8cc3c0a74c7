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
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/tradeflow/tradetree"
	"github.com/mattn/go-shellwords"
)

const shellPrompt = "tradeflow> "

const shellMenu = `---------------------------
1. Inorder traversal        (dump)
2. Search                   (search <date>)
3. Edit                     (edit <date> <value>)
4. Delete                   (delete <date>)
5. Find the data with the MAX value  (max)
6. Find the data with the MIN value  (min)
   Add a CSV row            (add '<row>')
   Tree statistics          (stats)
   Draw the tree            (tree)
0. Back                     (exit)`

// runShell reads commands from in until EOF or an exit command.
func runShell(s *Session, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, shellMenu)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		args, err := shellwords.Parse(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if quit := handleRequest(s, args, out); quit {
			return nil
		}
		fmt.Fprintln(out)
	}
}

// handleRequest runs one shell command against s and reports whether the
// shell should stop.
func handleRequest(s *Session, args []string, out io.Writer) bool {
	command, params := strings.ToLower(args[0]), args[1:]

	switch command {
	case "1", "dump", "inorder":
		if n := s.Dump(out); n == 0 {
			fmt.Fprintln(out, "No data found")
		}

	case "2", "search":
		date, ok := requireArgs(out, params, "search <date>")
		if !ok {
			break
		}
		record, found, err := s.Search(date[0])
		if err != nil {
			reportError(out, err)
			break
		}
		if !found {
			fmt.Fprintln(out, "No data found")
			break
		}
		fmt.Fprintln(out, record)

	case "3", "edit":
		p, ok := requireArgs(out, params, "edit <date> <value>", "value")
		if !ok {
			break
		}
		value, err := strconv.ParseUint(p[1], 10, 64)
		if err != nil {
			fmt.Fprintf(out, "%sInvalid value entered.%s\n", Error, Reset)
			break
		}
		record, err := s.Edit(p[0], value)
		if err != nil {
			reportError(out, err)
			break
		}
		fmt.Fprintln(out, "Data updated")
		fmt.Fprintln(out, record)

	case "4", "delete":
		date, ok := requireArgs(out, params, "delete <date>")
		if !ok {
			break
		}
		record, found, err := s.Delete(date[0])
		if err != nil {
			reportError(out, err)
			break
		}
		if !found {
			reportError(out, &tradetree.NotFoundError{Date: date[0]})
			break
		}
		fmt.Fprintln(out, "Data deleted")
		fmt.Fprintln(out, record)

	case "5", "max":
		printExtremes(out, s.Extremes(tradetree.Max))

	case "6", "min":
		printExtremes(out, s.Extremes(tradetree.Min))

	case "add":
		row, ok := requireArgs(out, params, "add '<csv row>'")
		if !ok {
			break
		}
		record, err := parseRow(row[0])
		if err != nil {
			reportError(out, err)
			break
		}
		if err := s.Insert(record); err != nil {
			reportError(out, err)
			break
		}
		fmt.Fprintln(out, "Data added")

	case "stats":
		fmt.Fprintf(out, "Records: %d\nHeight: %d\n", s.Len(), s.Height())

	case "tree":
		s.tree.Print(out)

	case "help", "?":
		fmt.Fprintln(out, shellMenu)

	case "0", "exit", "quit", "back":
		fmt.Fprintln(out, "bye bye")
		return true

	default:
		fmt.Fprintln(out, "Invalid choice")
	}
	return false
}

// requireArgs checks that params holds the first argument plus every
// named extra one, printing usage otherwise.
func requireArgs(out io.Writer, params []string, usage string, extra ...string) ([]string, bool) {
	if len(params) < 1+len(extra) {
		fmt.Fprintf(out, "%sUsage: %s%s\n", Warning, usage, Reset)
		return nil, false
	}
	return params, true
}

func reportError(out io.Writer, err error) {
	var decodeErr *tradetree.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		fmt.Fprintf(out, "%sInvalid date format: %q (expected dd/mm/yyyy)%s\n", Error, decodeErr.Text, Reset)
	case errors.Is(err, tradetree.ErrNotFound):
		fmt.Fprintf(out, "%sDate not found%s\n", Error, Reset)
	default:
		fmt.Fprintf(out, "%s%v%s\n", Error, err, Reset)
	}
}

func printExtremes(out io.Writer, records []tradetree.Record) {
	if len(records) == 0 {
		fmt.Fprintln(out, "No data found")
		return
	}
	for _, record := range records {
		fmt.Fprintln(out, record)
	}
}

// parseRow parses a single CSV row typed at the shell.
func parseRow(row string) (tradetree.Record, error) {
	reader := csv.NewReader(strings.NewReader(row))
	reader.FieldsPerRecord = len(csvFields)
	fields, err := reader.Read()
	if err != nil {
		return tradetree.Record{}, fmt.Errorf("invalid row: %w", err)
	}
	return parseRecord(fields, 1)
}
