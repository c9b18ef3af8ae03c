// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/codehop/codehop/pkg/logger"
)

// portableDataDir is the folder that switches an installation into portable mode.
const portableDataDir = "data"

// Locator scans directories for editor installations.
type Locator struct {
	// RoamingDir is the per-user data root for non-portable installations.
	RoamingDir string
	// InstallDirs are probed after the search path and are not subject to the
	// directory name filter.
	InstallDirs []string

	logger *slog.Logger
}

// NewLocator creates a locator.
func NewLocator(roamingDir string, installDirs []string) *Locator {
	return &Locator{
		RoamingDir:  roamingDir,
		InstallDirs: installDirs,
		logger:      logger.ForComponent("InstanceLocator"),
	}
}

// Locate returns every validated installation reachable from searchPaths and
// the locator's install directories, ordered by first appearance. At most one
// installation is returned per application data directory.
func (l *Locator) Locate(searchPaths []string) []*Instance {
	candidates := l.candidateDirs(searchPaths)
	l.logger.Debug("probing candidate directories",
		"search_paths", len(searchPaths), "candidates", len(candidates))

	var instances []*Instance
	claimed := map[string]bool{}
	for _, dir := range candidates {
		exe, installDir, ok := l.probe(dir)
		if !ok {
			continue
		}
		inst := l.newInstance(exe, installDir)
		slot := slotKey(inst.AppDataDirectory)
		if claimed[slot] {
			l.logger.Debug("skipping installation for already claimed data directory",
				"executable", exe, "app_data", inst.AppDataDirectory)
			continue
		}
		claimed[slot] = true
		instances = append(instances, inst)
	}

	l.logger.Debug("located editor installations", "count", len(instances))
	return instances
}

// candidateDirs filters the search path and appends the install directories,
// dropping duplicates while keeping first-appearance order.
func (l *Locator) candidateDirs(searchPaths []string) []string {
	seen := map[string]bool{}
	var dirs []string
	add := func(dir string) {
		key := slotKey(dir)
		if seen[key] {
			return
		}
		seen[key] = true
		dirs = append(dirs, dir)
	}

	for _, dir := range searchPaths {
		if isCandidatePath(dir) {
			add(dir)
		}
	}
	for _, dir := range l.InstallDirs {
		if strings.TrimSpace(dir) != "" {
			add(dir)
		}
	}
	return dirs
}

// probe finds the editor executable for a candidate directory. It returns the
// executable path and the installation directory.
func (l *Locator) probe(dir string) (string, string, bool) {
	binDir := dir
	if !strings.EqualFold(filepath.Base(dir), "bin") {
		binDir = filepath.Join(dir, "bin")
	}
	hasBin := isDir(binDir)

	// The launcher script usually lives in bin; the real executable sits next to it.
	if hasBin {
		parent := filepath.Dir(binDir)
		if exe, ok := l.firstGenuine(parent); ok {
			return exe, parent, true
		}
	}

	if exe, ok := l.firstGenuine(dir); ok {
		return exe, dir, true
	}

	if hasBin {
		entries, err := os.ReadDir(binDir)
		if err != nil {
			l.logger.Debug("failed to list bin directory", "dir", binDir, "error", err)
			return "", "", false
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if runtime.GOOS == "windows" && !strings.EqualFold(filepath.Ext(entry.Name()), ".exe") {
				continue
			}
			exe := filepath.Join(binDir, entry.Name())
			if l.isGenuine(exe) {
				return exe, filepath.Dir(binDir), true
			}
		}
	}
	return "", "", false
}

func (l *Locator) firstGenuine(dir string) (string, bool) {
	for _, name := range executableCandidates() {
		exe := filepath.Join(dir, name)
		if l.isGenuine(exe) {
			return exe, true
		}
	}
	return "", false
}

// isGenuine reports whether exe is an executable of the editor family.
func (l *Locator) isGenuine(exe string) bool {
	if !isRegularFile(exe) {
		return false
	}
	name, ok := productName(exe)
	if !ok {
		l.logger.Debug("no product metadata for executable", "executable", exe)
		return false
	}
	if !isFamilyProduct(name) {
		l.logger.Debug("executable belongs to another product", "executable", exe, "product", name)
		return false
	}
	return true
}

func (l *Locator) newInstance(exe, installDir string) *Instance {
	v := classify(exe)
	inst := &Instance{
		Version:          v.Version,
		DisplayName:      v.DisplayName,
		ExecutablePath:   exe,
		InstallDirectory: installDir,
	}

	portable := filepath.Join(installDir, portableDataDir)
	if isDir(portable) {
		inst.AppDataDirectory = filepath.Join(portable, "user-data")
		inst.Portable = true
	} else {
		inst.AppDataDirectory = filepath.Join(l.RoamingDir, v.DisplayName)
	}
	return inst
}

// slotKey normalizes a directory for identity comparisons.
func slotKey(dir string) string {
	key := filepath.Clean(dir)
	if runtime.GOOS == "windows" {
		key = strings.ToLower(key)
	}
	return key
}
