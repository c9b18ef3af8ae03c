// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package launcher opens search candidates in their editor instance.
package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"

	"github.com/codehop/codehop/pkg/editor"
	"github.com/codehop/codehop/pkg/errors"
	"github.com/codehop/codehop/pkg/logger"
	"github.com/codehop/codehop/pkg/remotes"
	"github.com/codehop/codehop/pkg/search"
	"github.com/codehop/codehop/pkg/workspaces"
)

// remoteSSHExtension is the extension that handles ssh-remote authorities.
const remoteSSHExtension = "ms-vscode-remote.remote-ssh"

// Runner starts a process without waiting for it.
type Runner interface {
	Start(executable string, args []string) error
}

// Launcher starts editor instances.
type Launcher struct {
	runner     Runner
	openFolder func(path string) error
}

// New creates a launcher that starts detached processes and opens folders
// with the desktop file manager.
func New() *Launcher {
	return NewWithRunner(execRunner{}, browser.OpenFile)
}

// NewWithRunner creates a launcher with custom process and folder openers.
func NewWithRunner(runner Runner, openFolder func(path string) error) *Launcher {
	return &Launcher{runner: runner, openFolder: openFolder}
}

// WorkspaceArgs returns the command line that opens ws.
func WorkspaceArgs(ws workspaces.Workspace) []string {
	flag := "--folder-uri"
	if ws.Kind == workspaces.KindWorkspace {
		flag = "--file-uri"
	}
	return []string{flag, ws.Path}
}

// MachineArgs returns the command line that opens a new window connected to m.
func MachineArgs(m remotes.Machine) []string {
	return []string{
		"--new-window",
		"--enable-proposed-api", remoteSSHExtension,
		"--remote", "ssh-remote+" + m.Host,
	}
}

// Arguments returns the launch arguments of c as a single command line string,
// with the target wrapped in double quotes and otherwise passed verbatim.
func Arguments(c search.Candidate) string {
	switch {
	case c.Workspace != nil:
		args := WorkspaceArgs(*c.Workspace)
		return args[0] + " " + Quote(args[1])
	case c.Machine != nil:
		args := MachineArgs(*c.Machine)
		last := len(args) - 1
		return strings.Join(args[:last], " ") + " ssh-remote+" + Quote(c.Machine.Host)
	default:
		return ""
	}
}

// Quote wraps s in double quotes without escaping its content.
func Quote(s string) string {
	return `"` + s + `"`
}

// Open starts the instance that owns c with the arguments that open it.
func (l *Launcher) Open(c search.Candidate) error {
	var (
		inst *editor.Instance
		args []string
	)
	switch {
	case c.Workspace != nil:
		inst, args = c.Workspace.Instance, WorkspaceArgs(*c.Workspace)
	case c.Machine != nil:
		inst, args = c.Machine.Instance, MachineArgs(*c.Machine)
	default:
		return errors.NewInvalidArgumentError("candidate has nothing to open", nil)
	}
	if inst == nil {
		return errors.NewInvalidArgumentError(fmt.Sprintf("no editor instance for %q", c.Title), nil)
	}

	logger.Debugw("launching editor", "executable", inst.ExecutablePath, "args", args)
	if err := l.runner.Start(inst.ExecutablePath, args); err != nil {
		return errors.NewLaunchFailedError("failed to start editor", inst.ExecutablePath, err)
	}
	return nil
}

// RevealFolder opens the folder of a local workspace in the file manager.
// A workspace descriptor reveals the folder containing it.
func (l *Launcher) RevealFolder(ws workspaces.Workspace) error {
	if ws.Location != workspaces.LocationLocal {
		return errors.NewInvalidArgumentError(
			fmt.Sprintf("%s workspaces cannot be revealed locally", ws.Location), nil)
	}
	dir := ws.RealPath()
	if ws.Kind == workspaces.KindWorkspace {
		dir = filepath.Dir(dir)
	}
	if err := l.openFolder(dir); err != nil {
		return errors.NewLaunchFailedError("failed to open folder", dir, err)
	}
	return nil
}

type execRunner struct{}

func (execRunner) Start(executable string, args []string) error {
	// #nosec G204 - executable is a validated editor installation
	cmd := exec.Command(executable, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = getSysProcAttr()

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
