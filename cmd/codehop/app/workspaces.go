// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"

	"github.com/codehop/codehop/cmd/codehop/app/ui"
	"github.com/codehop/codehop/pkg/search"
)

var workspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List recently opened workspaces",
	Long: `List the custom workspaces from the settings file and the folders and workspace
files every located editor instance remembers. A workspace recorded by several
instances is shown once.`,
	Args: cobra.NoArgs,
	RunE: workspacesCmdFunc,
}

var workspacesFormat string

func init() {
	workspacesCmd.Flags().StringVar(&workspacesFormat, "format", FormatText, "Output format (json or text)")
}

func workspacesCmdFunc(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(workspacesFormat); err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	session := newSession(cfg)
	list := session.CustomWorkspaces(cfg.CustomWorkspaces)
	list = append(list, session.Workspaces(cmd.Context())...)
	list = search.Dedupe(list)

	if workspacesFormat == FormatJSON {
		return printJSON(list)
	}
	return ui.RenderWorkspacesTable(list)
}
