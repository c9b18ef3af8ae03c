// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/spf13/cobra"

	"github.com/codehop/codehop/cmd/codehop/app/ui"
)

var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List SSH remote machines",
	Long: `List the hosts of the SSH configuration files used by the Remote - SSH extension.
Each instance's remote.SSH.configFile setting is honored; ~/.ssh/config is used when
no instance configures one.`,
	Args: cobra.NoArgs,
	RunE: machinesCmdFunc,
}

var machinesFormat string

func init() {
	machinesCmd.Flags().StringVar(&machinesFormat, "format", FormatText, "Output format (json or text)")
}

func machinesCmdFunc(_ *cobra.Command, _ []string) error {
	if err := validateFormat(machinesFormat); err != nil {
		return err
	}
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	machines := newSession(cfg).Machines()

	if machinesFormat == FormatJSON {
		return printJSON(machines)
	}
	return ui.RenderMachinesTable(machines)
}
