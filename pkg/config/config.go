// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config contains the definition of the codehop settings file
// and logic required to load and update it.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/codehop/codehop/pkg/fileutils"
)

// DefaultActionKeyword is the query prefix that scopes a search to codehop.
const DefaultActionKeyword = "vsc"

// Config represents the persisted codehop settings.
type Config struct {
	// CustomWorkspaces are user-declared workspace URIs always offered as candidates.
	CustomWorkspaces []string `yaml:"custom_workspaces"`
	// DiscoverWorkspaces toggles reading the editors' workspace history.
	DiscoverWorkspaces bool `yaml:"discover_workspaces"`
	// DiscoverMachines toggles reading SSH configuration files.
	DiscoverMachines bool `yaml:"discover_machines"`
	// ActionKeyword is the keyword a query was issued with. An empty keyword
	// means codehop answers every query.
	ActionKeyword string `yaml:"action_keyword"`
	// ExtraInstallDirs are probed for editor installations in addition to PATH.
	ExtraInstallDirs []string `yaml:"extra_install_dirs"`
}

// defaultPathGenerator generates the default config path using xdg
var defaultPathGenerator = func() (string, error) {
	return xdg.ConfigFile("codehop/config.yaml")
}

// getConfigPath is the current path generator, can be replaced in tests
var getConfigPath = defaultPathGenerator

// createNewConfigWithDefaults creates a new config with default values
func createNewConfigWithDefaults() Config {
	return Config{
		CustomWorkspaces:   []string{},
		DiscoverWorkspaces: true,
		DiscoverMachines:   true,
		ActionKeyword:      DefaultActionKeyword,
		ExtraInstallDirs:   []string{},
	}
}

// LoadOrCreateConfigWithPath fetches the settings from a specific path.
// If configPath is empty, it uses the default path. A missing file is created
// with default values.
func LoadOrCreateConfigWithPath(configPath string) (*Config, error) {
	return NewLocalStore(configPath).Load(context.Background())
}

// UpdateConfigAtPath loads the settings, applies changes under a file lock,
// and saves them back. If configPath is empty, it uses the default path.
func UpdateConfigAtPath(configPath string, updateFn func(*Config) error) error {
	return NewLocalStore(configPath).Update(context.Background(), updateFn)
}

// saveToPath serializes the config struct and writes it to a specific path.
// If configPath is empty, it uses the default path.
func (c *Config) saveToPath(configPath string) error {
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("unable to fetch config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	configBytes, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error serializing config file: %w", err)
	}

	err = fileutils.AtomicWriteFile(configPath, configBytes, 0600)
	if err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// AddCustomWorkspace appends a workspace URI unless it is already declared.
// It reports whether the list changed.
func (c *Config) AddCustomWorkspace(uri string) bool {
	uri = strings.TrimSpace(uri)
	if uri == "" || slices.Contains(c.CustomWorkspaces, uri) {
		return false
	}
	c.CustomWorkspaces = append(c.CustomWorkspaces, uri)
	return true
}

// RemoveCustomWorkspace removes a workspace URI. It reports whether the list changed.
func (c *Config) RemoveCustomWorkspace(uri string) bool {
	uri = strings.TrimSpace(uri)
	idx := slices.Index(c.CustomWorkspaces, uri)
	if idx < 0 {
		return false
	}
	c.CustomWorkspaces = slices.Delete(c.CustomWorkspaces, idx, idx+1)
	return true
}

// Keys lists the settings that can be changed with Set.
var Keys = []string{"discover_workspaces", "discover_machines", "action_keyword"}

// Set assigns a scalar setting from its textual form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "discover_workspaces", "discover_machines":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q for %s: %w", value, key, err)
		}
		if key == "discover_workspaces" {
			c.DiscoverWorkspaces = b
		} else {
			c.DiscoverMachines = b
		}
	case "action_keyword":
		c.ActionKeyword = strings.TrimSpace(value)
	default:
		return fmt.Errorf("unknown setting %q (valid settings: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
