// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/codehop/codehop/pkg/editor"
)

var errInvalidJSON = errors.New("document is not valid JSON")

// parseStorageJSON decodes the recently opened list of a storage.json file.
// Both the legacy workspaces3 list and the entries list are read.
func parseStorageJSON(data []byte, inst *editor.Instance) ([]Workspace, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}

	var out []Workspace
	opened := gjson.GetBytes(data, "openedPathsList")

	if legacy := opened.Get("workspaces3"); legacy.IsArray() {
		for _, item := range legacy.Array() {
			if ws, ok := decodeLegacyItem(item, inst); ok {
				out = append(out, ws)
			}
		}
	}

	if entries := opened.Get("entries"); entries.IsArray() {
		out = append(out, decodeEntries(entries, inst)...)
	}
	return out, nil
}

// parseRecentlyOpened decodes the history blob stored in state.vscdb.
func parseRecentlyOpened(data []byte, inst *editor.Instance) ([]Workspace, error) {
	if !gjson.ValidBytes(data) {
		return nil, errInvalidJSON
	}
	entries := gjson.GetBytes(data, "entries")
	if !entries.IsArray() {
		return nil, nil
	}
	return decodeEntries(entries, inst), nil
}

// decodeLegacyItem handles workspaces3 items, which are either URI strings or
// objects pointing at a workspace descriptor.
func decodeLegacyItem(item gjson.Result, inst *editor.Instance) (Workspace, bool) {
	switch {
	case item.Type == gjson.String:
		return ParseURI(item.String(), inst)
	case item.IsObject():
		ws, ok := ParseURI(item.Get("configURIPath").String(), inst)
		if ok {
			ws.Kind = KindWorkspace
		}
		return ws, ok
	default:
		return Workspace{}, false
	}
}

func decodeEntries(entries gjson.Result, inst *editor.Instance) []Workspace {
	var out []Workspace
	for _, entry := range entries.Array() {
		if ws, ok := decodeEntry(entry, inst); ok {
			out = append(out, ws)
		}
	}
	return out
}

// decodeEntry handles one entries item. Folder entries carry folderUri,
// workspace entries carry workspace.configPath. Recent files are skipped.
func decodeEntry(entry gjson.Result, inst *editor.Instance) (Workspace, bool) {
	var (
		ws Workspace
		ok bool
	)
	if folder := entry.Get("folderUri"); folder.Type == gjson.String {
		ws, ok = ParseURI(folder.String(), inst)
		ws.Kind = KindFolder
	} else if config := entry.Get("workspace.configPath"); config.Type == gjson.String {
		ws, ok = ParseURI(config.String(), inst)
		ws.Kind = KindWorkspace
	}
	if !ok {
		return Workspace{}, false
	}

	if label := entry.Get("label"); label.Type == gjson.String && strings.TrimSpace(label.String()) != "" {
		ws.Label = normalizeLabel(label.String())
	}
	return ws, true
}
