// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package remotes discovers SSH remote-development targets for editor instances.
package remotes

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/tailscale/hujson"
	"github.com/tidwall/gjson"

	"github.com/codehop/codehop/pkg/editor"
	"github.com/codehop/codehop/pkg/errors"
	"github.com/codehop/codehop/pkg/logger"
	"github.com/codehop/codehop/pkg/sshconfig"
)

// sshConfigFileKey is the editor setting naming a custom ssh configuration file.
// Dots are escaped because the setting name itself contains dots.
const sshConfigFileKey = `remote\.SSH\.configFile`

// Machine is an SSH target together with the instance that would open it.
type Machine struct {
	Host     string           `json:"host"`
	HostName string           `json:"host_name,omitempty"`
	User     string           `json:"user,omitempty"`
	Instance *editor.Instance `json:"-"`
}

// Discoverer reads ssh configuration files referenced by editor settings.
type Discoverer struct {
	// HomeDir is used for "~" expansion and the default configuration path.
	HomeDir string

	logger *slog.Logger
}

// NewDiscoverer creates a discoverer. An empty homeDir selects the user's home.
func NewDiscoverer(homeDir string) *Discoverer {
	if homeDir == "" {
		homeDir = xdg.Home
	}
	return &Discoverer{
		HomeDir: homeDir,
		logger:  logger.ForComponent("RemoteMachineDiscovery"),
	}
}

// DefaultSSHConfigPath returns the per-user ssh client configuration path.
func DefaultSSHConfigPath(homeDir string) string {
	return filepath.Join(homeDir, ".ssh", "config")
}

// SettingsPath returns the user settings file of an instance.
func SettingsPath(inst *editor.Instance) string {
	return filepath.Join(inst.AppDataDirectory, "User", "settings.json")
}

// Discover returns one machine per host of every distinct ssh configuration
// file referenced by the instances' settings. When no instance references a
// file, the default configuration is read and attached to the first instance.
// Problems with individual sources are returned alongside the machines.
func (d *Discoverer) Discover(instances []*editor.Instance) ([]Machine, []error) {
	var (
		machines []Machine
		errs     []error
	)
	processed := map[string]bool{}

	for _, inst := range instances {
		configPath, err := d.configuredSSHPath(inst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if configPath == "" {
			continue
		}

		key := filepath.Clean(configPath)
		if processed[key] {
			d.logger.Debug("ssh config already processed", "path", configPath, "instance", inst.DisplayName)
			continue
		}
		processed[key] = true

		found, err := d.readMachines(configPath, inst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		machines = append(machines, found...)
	}

	if len(processed) == 0 && len(instances) > 0 {
		defaultPath := DefaultSSHConfigPath(d.HomeDir)
		if _, err := os.Stat(defaultPath); err != nil {
			d.logger.Debug("no default ssh config", "path", defaultPath)
			return machines, errs
		}
		found, err := d.readMachines(defaultPath, instances[0])
		if err != nil {
			errs = append(errs, err)
		}
		machines = append(machines, found...)
	}

	return machines, errs
}

// configuredSSHPath returns the existing ssh configuration file named in the
// instance settings, or "" when the instance does not name one.
func (d *Discoverer) configuredSSHPath(inst *editor.Instance) (string, error) {
	settingsPath := SettingsPath(inst)

	// #nosec G304 - path is derived from the instance data directory
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NewMissingSourceError("settings file not found", settingsPath)
		}
		return "", errors.NewUnreadableSourceError("failed to read settings file", settingsPath, err)
	}

	configPath, err := readConfiguredSSHPath(data)
	if err != nil {
		return "", errors.NewMalformedSourceError("failed to parse settings file", settingsPath, err)
	}
	if configPath == "" {
		d.logger.Debug("settings do not name an ssh config", "settings", settingsPath)
		return "", nil
	}

	configPath = expandHome(configPath, d.HomeDir)
	if _, err := os.Stat(configPath); err != nil {
		return "", errors.NewMissingSourceError("configured ssh config not found", configPath)
	}
	return configPath, nil
}

func (d *Discoverer) readMachines(configPath string, inst *editor.Instance) ([]Machine, error) {
	hosts, err := sshconfig.ParseFile(configPath)
	if err != nil {
		return nil, errors.NewUnreadableSourceError("failed to read ssh config", configPath, err)
	}

	machines := make([]Machine, 0, len(hosts))
	for _, h := range hosts {
		machines = append(machines, Machine{
			Host:     h.Host(),
			HostName: h.HostName(),
			User:     h.User(),
			Instance: inst,
		})
	}
	d.logger.Debug("read ssh config", "path", configPath, "hosts", len(machines), "instance", inst.DisplayName)
	return machines, nil
}

// readConfiguredSSHPath extracts the ssh configuration setting from a settings
// document that may contain comments and trailing commas.
func readConfiguredSSHPath(data []byte) (string, error) {
	v, err := hujson.Parse(data)
	if err != nil {
		return "", fmt.Errorf("invalid settings document: %w", err)
	}
	v.Standardize()

	result := gjson.GetBytes(v.Pack(), sshConfigFileKey)
	if result.Type != gjson.String {
		return "", nil
	}
	return strings.TrimSpace(result.String()), nil
}

// expandHome replaces a leading "~" with homeDir.
func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
