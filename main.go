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
	"log"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
 _____              _       __ _
|_   _| __ __ _  __| | ___ / _| | _____      __
  | || '__/ _` + "`" + ` |/ _` + "`" + ` |/ _ \ |_| |/ _ \ \ /\ / /
  | || | | (_| | (_| |  __/  _| | (_) \ V  V /
  |_||_|  \__,_|\__,_|\___|_| |_|\___/ \_/\_/
Date-indexed trade-flow records in your terminal [Version: %s%s%s]

`

// loadSession reads the configuration and the data file and wraps the
// resulting tree in a session. Any failure here is fatal.
func loadSession(cmd *cobra.Command) (*Session, *Config) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}

	path := config.Data.File
	if flag := cmd.Flag("file"); flag != nil && flag.Changed {
		path = flag.Value.String()
	}

	tree, err := loadTree(path, config)
	if err != nil {
		log.Fatalf("Error reading records: %v", err)
	}
	return NewSession(tree, config), config
}

// oneShot builds a command that loads the data and runs a single shell
// request built from its name and arguments.
func oneShot(use, short string, args cobra.PositionalArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := loadSession(cmd)
			if limit, err := cmd.Flags().GetInt("limit"); err == nil && cmd.Flags().Changed("limit") {
				session.matchLimit = limit
			}
			handleRequest(session, append([]string{cmd.Name()}, args...), os.Stdout)
		},
	}
	return cmd
}

func main() {
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	runUI := func(cmd *cobra.Command, args []string) {
		session, _ := loadSession(cmd)
		if err := runBubbleTeaApp(session); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdUI = &cobra.Command{
		Use:   "ui",
		Short: "Launches the menu driven terminal UI",
		Long:  fmt.Sprintf("%s\n%s", logo, "UI loads the data file and opens the search, edit, delete and max/min menu"),
		Args:  cobra.NoArgs,
		Run:   runUI,
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Starts a line based shell over the loaded records",
		Long:  fmt.Sprintf("%s\n%s", logo, "Shell accepts the numbered menu choices or named commands, type help for the list"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := loadSession(cmd)
			if err := runShell(session, os.Stdin, os.Stdout); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}

	cmdDump := oneShot("dump", "Print every record in date order", cobra.NoArgs)
	cmdSearch := oneShot("search <date>", "Print the record stored for a date", cobra.ExactArgs(1))
	cmdEdit := oneShot("edit <date> <value>", "Change the value of a record (not written back)", cobra.ExactArgs(2))
	cmdDelete := oneShot("delete <date>", "Remove the record stored for a date (not written back)", cobra.ExactArgs(1))
	cmdMax := oneShot("max", "Print the records holding the largest value", cobra.NoArgs)
	cmdMin := oneShot("min", "Print the records holding the smallest value", cobra.NoArgs)
	cmdTree := oneShot("tree", "Draw the index as an ASCII tree", cobra.NoArgs)
	for _, cmd := range []*cobra.Command{cmdMax, cmdMin} {
		cmd.Flags().Int("limit", 10, "maximum number of records listed, 0 lists all")
	}

	var cmdCheck = &cobra.Command{
		Use:   "check",
		Short: "Load the data and verify the index invariants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			session, _ := loadSession(cmd)
			if err := session.tree.Check(); err != nil {
				log.Fatalf("Index is corrupt: %v", err)
			}
			fmt.Printf("%sOK%s: %d records, height %d\n", Green, Reset, session.Len(), session.Height())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current configuration settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Tradeflow usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the tradeflow CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Tradeflow version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "tradeflow",
		Version: version,
		Long:    logo,
		Args:    cobra.NoArgs,
		// Default to the UI when no subcommand is provided
		Run: runUI,
	}
	rootCmd.PersistentFlags().String("file", defaultConfig.Data.File, "trade-flow CSV file to load")
	rootCmd.AddCommand(
		cmdUI, cmdShell,
		cmdDump, cmdSearch, cmdEdit, cmdDelete, cmdMax, cmdMin,
		cmdCheck, cmdTree,
		cmdSettings, cmdUsage, cmdVersion,
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
