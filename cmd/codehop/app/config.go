// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/codehop/codehop/pkg/config"
	"github.com/codehop/codehop/pkg/logger"
	"github.com/codehop/codehop/pkg/workspaces"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage codehop settings",
	Long:  "The config command provides subcommands to manage the codehop settings file.",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	Args:  cobra.NoArgs,
	RunE:  showConfigCmdFunc,
}

var addWorkspaceCmd = &cobra.Command{
	Use:   "add-workspace <uri>",
	Short: "Declare a custom workspace",
	Long: `Declare a workspace that should always be offered, whether or not an editor remembers it.
The URI uses the editor's own forms, for example:
  codehop config add-workspace file:///home/me/src/api
  codehop config add-workspace vscode-remote://ssh-remote+build-box/srv/app
  codehop config add-workspace vscode-remote://wsl+Ubuntu/home/me/proj`,
	Args: cobra.ExactArgs(1),
	RunE: addWorkspaceCmdFunc,
}

var removeWorkspaceCmd = &cobra.Command{
	Use:   "remove-workspace <uri>",
	Short: "Remove a custom workspace",
	Args:  cobra.ExactArgs(1),
	RunE:  removeWorkspaceCmdFunc,
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a scalar setting. Valid keys:
  discover_workspaces  true|false, read the editors' workspace history
  discover_machines    true|false, read the SSH configuration
  action_keyword       keyword a query is issued with, empty for global queries`,
	Args: cobra.ExactArgs(2),
	RunE: setConfigCmdFunc,
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(addWorkspaceCmd)
	configCmd.AddCommand(removeWorkspaceCmd)
	configCmd.AddCommand(setConfigCmd)
}

func showConfigCmdFunc(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

func addWorkspaceCmdFunc(_ *cobra.Command, args []string) error {
	uri := args[0]
	if _, ok := workspaces.ParseURI(uri, nil); !ok {
		return fmt.Errorf("unsupported workspace URI %q: expected file:// or vscode-remote://", uri)
	}

	added := false
	err := config.UpdateConfigAtPath(configPath(), func(c *config.Config) error {
		added = c.AddCustomWorkspace(uri)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if !added {
		fmt.Printf("Custom workspace already declared: %s\n", uri)
		return nil
	}
	logger.Infow("custom workspace added", "uri", uri, "config", configPath())
	fmt.Printf("Successfully added custom workspace: %s\n", uri)
	return nil
}

func removeWorkspaceCmdFunc(_ *cobra.Command, args []string) error {
	uri := args[0]

	removed := false
	err := config.UpdateConfigAtPath(configPath(), func(c *config.Config) error {
		removed = c.RemoveCustomWorkspace(uri)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	if !removed {
		fmt.Printf("No custom workspace declared as: %s\n", uri)
		return nil
	}
	logger.Infow("custom workspace removed", "uri", uri, "config", configPath())
	fmt.Printf("Successfully removed custom workspace: %s\n", uri)
	return nil
}

func setConfigCmdFunc(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	err := config.UpdateConfigAtPath(configPath(), func(c *config.Config) error {
		return c.Set(key, value)
	})
	if err != nil {
		return err
	}
	logger.Infow("setting changed", "key", key, "value", value, "config", configPath())
	fmt.Printf("Successfully set %s to %q\n", key, value)
	return nil
}
