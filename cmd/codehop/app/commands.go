// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app provides the entry point for the codehop command-line application.
package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codehop/codehop/pkg/config"
	"github.com/codehop/codehop/pkg/logger"
	"github.com/codehop/codehop/pkg/search"
)

var rootCmd = &cobra.Command{
	Use:               "codehop",
	DisableAutoGenTag: true,
	Short:             "codehop finds and opens your recent VS Code workspaces and SSH remotes",
	Long: `codehop locates the Visual Studio Code installations on this machine (Stable, Insiders,
Exploration and VSCodium, including portable installs) and reads what they remember:
recently opened folders and workspaces, local or remote, and the SSH hosts configured
for the Remote - SSH extension.

Everything it finds can be listed, fuzzy searched and opened in the editor instance
that recorded it.`,
	Run: func(cmd *cobra.Command, _ []string) {
		// If no subcommand is provided, print help
		if err := cmd.Help(); err != nil {
			logger.Errorf("Error displaying help: %v", err)
		}
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Initialize()
	},
}

// NewRootCmd creates a new root command for the codehop CLI.
func NewRootCmd() *cobra.Command {
	viper.SetEnvPrefix("CODEHOP")
	viper.AutomaticEnv()

	// Add persistent flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")
	err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	if err != nil {
		logger.Errorf("Error binding debug flag: %v", err)
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the codehop settings file")
	err = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	if err != nil {
		logger.Errorf("Error binding config flag: %v", err)
	}

	// Add subcommands
	rootCmd.AddCommand(instancesCmd)
	rootCmd.AddCommand(workspacesCmd)
	rootCmd.AddCommand(machinesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(newVersionCmd())

	// Silence printing the usage on error
	rootCmd.SilenceUsage = true

	return rootCmd
}

// configPath returns the settings file chosen with --config or CODEHOP_CONFIG.
// An empty path selects the default location.
func configPath() string {
	return viper.GetString("config")
}

// loadSettings loads the settings file, creating it with defaults on first use.
func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadOrCreateConfigWithPath(configPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

// newSession creates and initializes a discovery session for the settings.
func newSession(cfg *config.Config) *search.Session {
	session := search.NewSession(search.DefaultOptions(cfg.ExtraInstallDirs))
	session.Init()
	return session
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q, must be %q or %q", format, FormatText, FormatJSON)
	}
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
