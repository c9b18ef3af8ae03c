// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package ui provides terminal UI helpers for the codehop CLI.
package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/codehop/codehop/pkg/editor"
	"github.com/codehop/codehop/pkg/remotes"
	"github.com/codehop/codehop/pkg/search"
	"github.com/codehop/codehop/pkg/workspaces"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader(header),
		tablewriter.WithRendition(
			tw.Rendition{
				Borders: tw.Border{
					Left:   tw.State(1),
					Top:    tw.State(1),
					Right:  tw.State(1),
					Bottom: tw.State(1),
				},
			},
		),
		tablewriter.WithAlignment(tw.MakeAlign(len(header), tw.AlignLeft)),
	)
	return table
}

func appendRows(table *tablewriter.Table, rows [][]string) error {
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// RenderInstancesTable renders the located editor instances to stdout.
func RenderInstancesTable(instances []*editor.Instance) error {
	if len(instances) == 0 {
		fmt.Println("No Visual Studio Code installations found.")
		return nil
	}

	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		portable := "No"
		if inst.Portable {
			portable = "Yes"
		}
		rows = append(rows, []string{
			inst.DisplayName,
			inst.Version.String(),
			portable,
			inst.ExecutablePath,
			inst.AppDataDirectory,
		})
	}
	return appendRows(newTable(os.Stdout, []string{"Name", "Version", "Portable", "Executable", "Data Directory"}), rows)
}

// RenderWorkspacesTable renders workspaces to stdout.
func RenderWorkspacesTable(list []workspaces.Workspace) error {
	if len(list) == 0 {
		fmt.Println("No workspaces found.")
		return nil
	}

	rows := make([][]string, 0, len(list))
	for _, ws := range list {
		rows = append(rows, []string{
			search.WorkspaceTitle(ws),
			ws.Location.String(),
			ws.Kind.String(),
			ws.RealPath(),
			instanceName(ws.Instance),
		})
	}
	return appendRows(newTable(os.Stdout, []string{"Title", "Location", "Kind", "Path", "Instance"}), rows)
}

// RenderMachinesTable renders SSH remote machines to stdout.
func RenderMachinesTable(machines []remotes.Machine) error {
	if len(machines) == 0 {
		fmt.Println("No SSH remote machines found.")
		return nil
	}

	rows := make([][]string, 0, len(machines))
	for _, m := range machines {
		rows = append(rows, []string{m.Host, m.HostName, m.User, instanceName(m.Instance)})
	}
	return appendRows(newTable(os.Stdout, []string{"Host", "HostName", "User", "Instance"}), rows)
}

// RenderCandidatesTable renders search results, numbered from 1, to stdout.
func RenderCandidatesTable(candidates []search.Candidate) error {
	if len(candidates) == 0 {
		fmt.Println("No results.")
		return nil
	}

	rows := make([][]string, 0, len(candidates))
	for i, c := range candidates {
		rows = append(rows, []string{strconv.Itoa(i + 1), c.Title, c.Subtitle, strconv.Itoa(c.Score)})
	}
	return appendRows(newTable(os.Stdout, []string{"#", "Title", "Subtitle", "Score"}), rows)
}

func instanceName(inst *editor.Instance) string {
	if inst == nil {
		return "-"
	}
	return inst.DisplayName
}
