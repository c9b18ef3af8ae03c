// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"

	"github.com/stacklok/toolhive-core/env"
)

// variant describes one member of the editor family. The table below is the
// single place that maps file names to versions and data folders.
type variant struct {
	// Marker is matched case-insensitively against the executable file name.
	// An empty marker matches everything and must come last.
	Marker      string
	Version     Version
	DisplayName string
	// Executables are the file names probed directly inside a directory,
	// without the platform executable suffix.
	Executables []string
}

var variants = []variant{
	{
		Marker:      "insiders",
		Version:     Insiders,
		DisplayName: "Code - Insiders",
		Executables: []string{"Code - Insiders", "code-insiders"},
	},
	{
		Marker:      "exploration",
		Version:     Exploration,
		DisplayName: "Code - Exploration",
		Executables: []string{"Code - Exploration", "code-exploration"},
	},
	{
		Marker:      "codium",
		Version:     Stable,
		DisplayName: "VSCodium",
		Executables: []string{"VSCodium", "codium"},
	},
	{
		Marker:      "",
		Version:     Stable,
		DisplayName: "Code",
		Executables: []string{"Code", "code"},
	},
}

// probeOrder lists variant display names in the order their executables are
// looked up inside a directory.
var probeOrder = []string{"Code", "Code - Insiders", "Code - Exploration", "VSCodium"}

// pathMarkers are the case-insensitive substrings that make a search path
// entry worth probing.
var pathMarkers = []string{
	"vs code",
	"visualstudiocode",
	"visual studio code",
	"visual-studio-code",
	"codium",
	"vscode",
}

// familyNames are the product names accepted in product metadata.
var familyNames = []string{
	"Visual Studio Code",
	"VSCodium",
}

// executableSuffix is appended to probed executable names.
var executableSuffix = func() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}()

// executableCandidates returns every probed executable file name in probe order.
func executableCandidates() []string {
	var names []string
	for _, displayName := range probeOrder {
		for _, v := range variants {
			if v.DisplayName != displayName {
				continue
			}
			for _, exe := range v.Executables {
				names = append(names, exe+executableSuffix)
			}
		}
	}
	return names
}

// classify returns the variant an executable belongs to, based on its file name.
func classify(executablePath string) variant {
	name := strings.ToLower(filepath.Base(executablePath))
	for _, v := range variants {
		if v.Marker == "" || strings.Contains(name, v.Marker) {
			return v
		}
	}
	return variants[len(variants)-1]
}

// isCandidatePath reports whether a search path entry names the editor family.
func isCandidatePath(dir string) bool {
	lower := strings.ToLower(dir)
	for _, marker := range pathMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// SearchPaths returns the entries of the PATH environment variable in order.
func SearchPaths(envReader env.Reader) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(envReader.Getenv("PATH")) {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}

// RoamingDir returns the per-user roaming application data directory in which
// non-portable installations keep their state.
func RoamingDir(envReader env.Reader) string {
	if runtime.GOOS == "windows" {
		if appData := envReader.Getenv("APPDATA"); appData != "" {
			return appData
		}
		return filepath.Join(xdg.Home, "AppData", "Roaming")
	}
	return xdg.ConfigHome
}

// WellKnownInstallDirs returns the default install roots for the current
// platform. They are probed even when they do not appear on PATH.
func WellKnownInstallDirs(envReader env.Reader) []string {
	switch runtime.GOOS {
	case "windows":
		localAppData := envReader.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(xdg.Home, "AppData", "Local")
		}
		programFiles := envReader.Getenv("ProgramFiles")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		return []string{
			filepath.Join(localAppData, "Programs", "Microsoft VS Code"),
			filepath.Join(localAppData, "Programs", "Microsoft VS Code Insiders"),
			filepath.Join(localAppData, "Programs", "VSCodium"),
			filepath.Join(programFiles, "Microsoft VS Code"),
			filepath.Join(programFiles, "Microsoft VS Code Insiders"),
			filepath.Join(programFiles, "VSCodium"),
		}
	case "darwin":
		var dirs []string
		for _, root := range []string{"/Applications", filepath.Join(xdg.Home, "Applications")} {
			for _, app := range []string{"Visual Studio Code.app", "Visual Studio Code - Insiders.app", "VSCodium.app"} {
				dirs = append(dirs, filepath.Join(root, app, "Contents", "Resources", "app"))
			}
		}
		return dirs
	default:
		return []string{
			"/usr/share/code",
			"/usr/share/code-insiders",
			"/opt/visual-studio-code",
			"/opt/visual-studio-code-insiders",
			"/usr/share/codium",
			"/opt/vscodium-bin",
			filepath.Join(xdg.Home, ".local", "share", "code"),
		}
	}
}
