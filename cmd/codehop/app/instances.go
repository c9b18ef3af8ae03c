// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"

	"github.com/codehop/codehop/cmd/codehop/app/ui"
)

var instancesCmd = &cobra.Command{
	Use:   "instances",
	Short: "List the located editor installations",
	Long: `List the Visual Studio Code installations found on PATH, in the configured extra
install directories and in the platform install locations. At most one installation
is reported per user data directory.`,
	Args: cobra.NoArgs,
	RunE: instancesCmdFunc,
}

var instancesFormat string

func init() {
	instancesCmd.Flags().StringVar(&instancesFormat, "format", FormatText, "Output format (json or text)")
}

func instancesCmdFunc(_ *cobra.Command, _ []string) error {
	if err := validateFormat(instancesFormat); err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	instances := newSession(cfg).Instances()

	if instancesFormat == FormatJSON {
		return printJSON(instances)
	}
	return ui.RenderInstancesTable(instances)
}
