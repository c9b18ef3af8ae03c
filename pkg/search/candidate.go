// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"fmt"

	"github.com/codehop/codehop/pkg/remotes"
	"github.com/codehop/codehop/pkg/workspaces"
)

// MachineSubtitle is the subtitle of every remote machine candidate.
const MachineSubtitle = "SSH remote machine"

// Candidate is one entry of a result list. Exactly one of Workspace and
// Machine is set.
type Candidate struct {
	Title     string                `json:"title"`
	Subtitle  string                `json:"subtitle"`
	Score     int                   `json:"score"`
	Workspace *workspaces.Workspace `json:"workspace,omitempty"`
	Machine   *remotes.Machine      `json:"machine,omitempty"`
}

// WorkspaceCandidate builds the candidate for a workspace.
func WorkspaceCandidate(ws workspaces.Workspace) Candidate {
	return Candidate{
		Title:     WorkspaceTitle(ws),
		Subtitle:  WorkspaceSubtitle(ws),
		Workspace: &ws,
	}
}

// MachineCandidate builds the candidate for a remote machine.
func MachineCandidate(m remotes.Machine) Candidate {
	return Candidate{
		Title:    MachineTitle(m),
		Subtitle: MachineSubtitle,
		Machine:  &m,
	}
}

// WorkspaceTitle returns the display title of a workspace. A recorded label
// always wins; remote workspaces otherwise show where they live.
func WorkspaceTitle(ws workspaces.Workspace) string {
	if ws.Label != "" {
		return ws.Label
	}
	if ws.Location == workspaces.LocationLocal {
		return ws.FolderName
	}
	title := ws.FolderName
	if ws.ExtraInfo != "" {
		title += " - " + ws.ExtraInfo
	}
	return fmt.Sprintf("%s (%s)", title, ws.Location)
}

// WorkspaceSubtitle describes where a workspace lives.
func WorkspaceSubtitle(ws workspaces.Workspace) string {
	if ws.Location == workspaces.LocationLocal {
		return "Workspace: " + ws.RealPath()
	}
	return fmt.Sprintf("Workspace in %s: %s", ws.Location, ws.RealPath())
}

// MachineTitle returns the display title of a remote machine.
func MachineTitle(m remotes.Machine) string {
	title := "SSH: " + m.Host
	if m.User != "" && m.HostName != "" {
		title += fmt.Sprintf(" [%s@%s]", m.User, m.HostName)
	}
	return title
}
