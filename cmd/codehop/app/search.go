// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/codehop/codehop/cmd/codehop/app/ui"
	"github.com/codehop/codehop/pkg/config"
	"github.com/codehop/codehop/pkg/launcher"
	"github.com/codehop/codehop/pkg/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search workspaces and SSH remotes",
	Long: `Search the recently opened workspaces, the custom workspaces and the SSH remote
machines. Results are fuzzy matched against their titles and ordered by score; a title
containing the text always matches. Without text every candidate is listed.

With --interactive a picker opens: type to refine the query, press Enter to open the
selected result or ctrl+o to reveal a local folder in the file manager.`,
	RunE: searchCmdFunc,
}

var (
	searchFormat      string
	searchInteractive bool
)

func init() {
	searchCmd.Flags().StringVar(&searchFormat, "format", FormatText, "Output format (json or text)")
	searchCmd.Flags().BoolVarP(&searchInteractive, "interactive", "i", false, "Pick a result interactively")
}

func searchCmdFunc(cmd *cobra.Command, args []string) error {
	if err := validateFormat(searchFormat); err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	session := newSession(cfg)

	if searchInteractive {
		return runInteractiveSearch(cmd.Context(), session, cfg, strings.Join(args, " "))
	}

	results := queryResults(cmd.Context(), session, cfg, args)
	if searchFormat == FormatJSON {
		return printJSON(results)
	}
	return ui.RenderCandidatesTable(results)
}

// newQuery builds the query for the words typed after the command.
func newQuery(cfg *config.Config, text string) search.Query {
	return search.Query{
		Search:        strings.TrimSpace(text),
		ActionKeyword: cfg.ActionKeyword,
	}
}

// queryResults runs a query and orders the results by score.
func queryResults(ctx context.Context, session *search.Session, cfg *config.Config, args []string) []search.Candidate {
	results := session.BuildResults(ctx, cfg, newQuery(cfg, strings.Join(args, " ")))
	sortByScore(results)
	return results
}

// sortByScore orders candidates by descending score. Equal scores keep their
// collection order.
func sortByScore(candidates []search.Candidate) {
	slices.SortStableFunc(candidates, func(a, b search.Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

func runInteractiveSearch(ctx context.Context, session *search.Session, cfg *config.Config, initial string) error {
	// Check if terminal is interactive (not piped)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal; stdin is not a TTY")
	}

	all := session.Collect(ctx, cfg)
	matcher := search.FuzzyMatcher{}
	filter := func(text string) []search.Candidate {
		results := search.Filter(all, newQuery(cfg, text), matcher)
		sortByScore(results)
		return results
	}

	chosen, action, err := ui.RunPicker(initial, filter)
	if err != nil {
		return fmt.Errorf("failed to run search picker: %w", err)
	}

	switch action {
	case ui.PickOpen:
		return openCandidate(chosen)
	case ui.PickReveal:
		return revealCandidate(chosen)
	default:
		return nil
	}
}

// openCandidate launches the editor instance that owns c.
func openCandidate(c search.Candidate) error {
	if err := launcher.New().Open(c); err != nil {
		return err
	}
	fmt.Printf("Opening %s\n", c.Title)
	return nil
}

// revealCandidate opens the folder of a local workspace candidate.
func revealCandidate(c search.Candidate) error {
	if c.Workspace == nil {
		return fmt.Errorf("%q is not a workspace and has no folder to reveal", c.Title)
	}
	return launcher.New().RevealFolder(*c.Workspace)
}
