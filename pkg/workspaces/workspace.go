// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package workspaces reads the recently opened folders and multi-root
// workspaces recorded by editor instances.
//
// Two history stores are understood: the JSON file storage.json kept by older
// releases, and the state.vscdb SQLite database used by current ones. Both
// may exist side by side and both are read.
package workspaces

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/codehop/codehop/pkg/editor"
)

// Location is where a workspace lives.
type Location int

const (
	// LocationLocal is the local filesystem.
	LocationLocal Location = iota
	// LocationWSL is a Windows Subsystem for Linux distribution.
	LocationWSL
	// LocationSSH is a machine reached over SSH.
	LocationSSH
	// LocationCodespaces is a GitHub Codespace.
	LocationCodespaces
	// LocationDevContainer is a development container.
	LocationDevContainer
)

// String returns the display name of the location.
func (l Location) String() string {
	switch l {
	case LocationLocal:
		return "Local"
	case LocationWSL:
		return "WSL"
	case LocationSSH:
		return "SSH"
	case LocationCodespaces:
		return "Codespaces"
	case LocationDevContainer:
		return "Dev Container"
	default:
		return fmt.Sprintf("Location(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Location) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Kind tells folders apart from multi-root workspace descriptors.
type Kind int

const (
	// KindFolder is a single folder.
	KindFolder Kind = iota
	// KindWorkspace is a .code-workspace descriptor file.
	KindWorkspace
)

// String returns the name of the kind.
func (k Kind) String() string {
	if k == KindWorkspace {
		return "Workspace"
	}
	return "Folder"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Workspace is one history entry of an editor instance.
type Workspace struct {
	// Path is the decoded URI.
	Path string `json:"path"`
	// RelativePath is the filesystem path inside Location, with forward slashes.
	RelativePath string `json:"relative_path"`
	// FolderName is the last path segment.
	FolderName string `json:"folder_name"`
	// ExtraInfo is the remote authority (host, distribution, container), empty for local paths.
	ExtraInfo string `json:"extra_info,omitempty"`
	// Label is a display override recorded by the editor.
	Label    string   `json:"label,omitempty"`
	Location Location `json:"location"`
	Kind     Kind     `json:"kind"`
	// Instance is the editor that recorded the entry.
	Instance *editor.Instance `json:"-"`
}

// Key identifies a workspace for de-duplication. Every field except the
// owning instance takes part, so the same entry recorded by two editors
// yields the same key.
func (w Workspace) Key() string {
	return strings.Join([]string{
		w.Path,
		w.RelativePath,
		w.FolderName,
		w.ExtraInfo,
		w.Label,
		w.Location.String(),
		w.Kind.String(),
	}, "\x00")
}

// Equal reports whether two workspaces describe the same entry.
func (w Workspace) Equal(other Workspace) bool {
	return w.Key() == other.Key()
}

// RealPath returns the path in the form the owning system writes it.
// Local paths use the host separator; remote paths are left as recorded.
func (w Workspace) RealPath() string {
	if w.Location == LocationLocal {
		return filepath.FromSlash(w.RelativePath)
	}
	return w.RelativePath
}
