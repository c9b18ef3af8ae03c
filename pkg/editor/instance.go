// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package editor locates installed VS Code family editors on the host.
//
// Candidate directories come from the PATH search list plus a few well-known
// install roots. Every candidate executable is checked against the
// installation's product metadata so that unrelated binaries that merely live
// in a matching directory are rejected.
package editor

import "fmt"

// Version is the release channel of an editor installation.
type Version int

const (
	// Stable is the regular release (community forks are treated as Stable).
	Stable Version = iota
	// Insiders is the nightly channel.
	Insiders
	// Exploration is the exploration channel.
	Exploration
)

// String returns the name of the version.
func (v Version) String() string {
	switch v {
	case Stable:
		return "Stable"
	case Insiders:
		return "Insiders"
	case Exploration:
		return "Exploration"
	default:
		return fmt.Sprintf("Version(%d)", int(v))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Instance is one discovered editor installation. Instances are created by a
// scan and never modified afterwards.
type Instance struct {
	// Version is the release channel.
	Version Version `json:"version"`
	// DisplayName is the product folder name, e.g. "Code - Insiders" or "VSCodium".
	DisplayName string `json:"display_name"`
	// ExecutablePath is the validated editor executable.
	ExecutablePath string `json:"executable_path"`
	// InstallDirectory is the directory the executable was resolved from.
	InstallDirectory string `json:"install_directory"`
	// AppDataDirectory is where the editor keeps its persisted state.
	AppDataDirectory string `json:"app_data_directory"`
	// Portable is set when AppDataDirectory lives inside the installation.
	Portable bool `json:"portable"`
}
