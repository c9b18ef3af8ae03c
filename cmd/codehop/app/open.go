// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codehop/codehop/pkg/launcher"
	"github.com/codehop/codehop/pkg/search"
)

var openCmd = &cobra.Command{
	Use:   "open <index|title> [text...]",
	Short: "Open a search result",
	Long: `Open one result of a search in the editor instance that recorded it.

The first argument selects the result, either by its 1-based position in the output
of "codehop search" with the same text, or by its exact title. The remaining arguments
are the search text.

Examples:
  codehop open 1 api          # open the best match for "api"
  codehop open "SSH: build-box"
  codehop open --reveal 2 api # show the second match in the file manager`,
	Args: cobra.MinimumNArgs(1),
	RunE: openCmdFunc,
}

var (
	openReveal bool
	openDryRun bool
)

func init() {
	openCmd.Flags().BoolVar(&openReveal, "reveal", false, "Reveal the folder of a local workspace instead of opening it")
	openCmd.Flags().BoolVar(&openDryRun, "dry-run", false, "Print the editor command line instead of running it")
}

func openCmdFunc(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	session := newSession(cfg)

	results := queryResults(cmd.Context(), session, cfg, args[1:])
	chosen, err := selectCandidate(results, args[0])
	if err != nil {
		return err
	}

	switch {
	case openDryRun:
		fmt.Println(commandLine(chosen))
		return nil
	case openReveal:
		return revealCandidate(chosen)
	default:
		return openCandidate(chosen)
	}
}

// selectCandidate picks a result by 1-based position or by exact title.
// Title comparison ignores case.
func selectCandidate(results []search.Candidate, selector string) (search.Candidate, error) {
	if len(results) == 0 {
		return search.Candidate{}, errors.New("no results")
	}
	if n, err := strconv.Atoi(selector); err == nil {
		if n < 1 || n > len(results) {
			return search.Candidate{}, fmt.Errorf("result %d out of range (1-%d)", n, len(results))
		}
		return results[n-1], nil
	}
	for _, c := range results {
		if strings.EqualFold(c.Title, selector) {
			return c, nil
		}
	}
	return search.Candidate{}, fmt.Errorf("no result titled %q", selector)
}

// commandLine renders the full editor invocation of c.
func commandLine(c search.Candidate) string {
	exe := ""
	switch {
	case c.Workspace != nil && c.Workspace.Instance != nil:
		exe = c.Workspace.Instance.ExecutablePath
	case c.Machine != nil && c.Machine.Instance != nil:
		exe = c.Machine.Instance.ExecutablePath
	}
	return launcher.Quote(exe) + " " + launcher.Arguments(c)
}
