// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codehop/codehop/pkg/editor"
	"github.com/codehop/codehop/pkg/errors"
	"github.com/codehop/codehop/pkg/logger"
)

// StoragePaths returns the storage.json locations of an instance. Older
// releases keep the file at the data root, newer ones under globalStorage.
func StoragePaths(inst *editor.Instance) []string {
	return []string{
		filepath.Join(inst.AppDataDirectory, "storage.json"),
		filepath.Join(inst.AppDataDirectory, "User", "globalStorage", "storage.json"),
	}
}

// StateDBPath returns the state database location of an instance.
func StateDBPath(inst *editor.Instance) string {
	return filepath.Join(inst.AppDataDirectory, "User", "globalStorage", "state.vscdb")
}

// Discoverer reads workspace history from editor instances.
type Discoverer struct {
	logger *slog.Logger
}

// NewDiscoverer creates a workspace discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{logger: logger.ForComponent("WorkspaceDiscovery")}
}

// Discover returns the history entries of every instance, in instance order.
// A history store that does not exist is skipped; stores that cannot be read
// or decoded are reported in the returned errors and contribute nothing.
func (d *Discoverer) Discover(ctx context.Context, instances []*editor.Instance) ([]Workspace, []error) {
	var (
		out  []Workspace
		errs []error
	)

	for _, inst := range instances {
		count, stores := 0, 0

		for _, storagePath := range StoragePaths(inst) {
			found, exists, err := d.readStorageJSON(storagePath, inst)
			if exists {
				stores++
			}
			if err != nil {
				errs = append(errs, err)
				continue
			}
			count += len(found)
			out = append(out, found...)
		}

		found, exists, err := d.readStateDB(ctx, StateDBPath(inst), inst)
		if exists {
			stores++
		}
		if err != nil {
			errs = append(errs, err)
		}
		count += len(found)
		out = append(out, found...)

		if stores == 0 {
			d.logger.Info("no workspace history found", "instance", inst.DisplayName, "app_data", inst.AppDataDirectory)
			continue
		}
		d.logger.Debug("read workspace history",
			"instance", inst.DisplayName, "app_data", inst.AppDataDirectory, "workspaces", count)
	}

	d.logger.Debug("workspace discovery finished", "instances", len(instances), "workspaces", len(out))
	return out, errs
}

// readStorageJSON decodes one storage.json file. The second result reports
// whether the file exists.
func (*Discoverer) readStorageJSON(path string, inst *editor.Instance) ([]Workspace, bool, error) {
	// #nosec G304 - path is derived from the instance data directory
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, true, errors.NewUnreadableSourceError("failed to read storage file", path, err)
	}

	found, err := parseStorageJSON(data, inst)
	if err != nil {
		return nil, true, errors.NewMalformedSourceError("failed to decode storage file", path, err)
	}
	return found, true, nil
}

// readStateDB decodes the history row of a state database. The second result
// reports whether the database exists.
func (*Discoverer) readStateDB(ctx context.Context, path string, inst *editor.Instance) ([]Workspace, bool, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, false, nil
	}

	blob, err := readRecentlyOpened(ctx, path)
	if err != nil {
		return nil, true, errors.NewUnreadableSourceError("failed to read state database", path, err)
	}
	if blob == nil {
		return nil, true, nil
	}

	found, err := parseRecentlyOpened(blob, inst)
	if err != nil {
		return nil, true, errors.NewMalformedSourceError("failed to decode recently opened list", path, err)
	}
	return found, true, nil
}
