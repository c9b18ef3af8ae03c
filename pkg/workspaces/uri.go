// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/codehop/codehop/pkg/editor"
)

// workspaceFileSuffix marks multi-root workspace descriptors.
const workspaceFileSuffix = ".code-workspace"

var (
	localURI  = regexp.MustCompile(`^file://(/.+)$`)
	remoteURI = regexp.MustCompile(`^vscode-remote://([a-z-]+)\+([^/]+)(/.*)$`)
	driveRoot = regexp.MustCompile(`^/[A-Za-z]:`)
)

// remoteKinds maps remote authority prefixes to locations. Other remote kinds are not offered.
var remoteKinds = map[string]Location{
	"wsl":           LocationWSL,
	"ssh-remote":    LocationSSH,
	"vsonline":      LocationCodespaces,
	"dev-container": LocationDevContainer,
}

// ParseURI decodes a workspace URI recorded by inst. It returns false for
// empty input and for schemes that cannot be opened.
func ParseURI(uri string, inst *editor.Instance) (Workspace, bool) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return Workspace{}, false
	}

	decoded, err := url.PathUnescape(uri)
	if err != nil {
		decoded = uri
	}

	ws := Workspace{
		Path:     decoded,
		Instance: inst,
	}

	if m := localURI.FindStringSubmatch(decoded); m != nil {
		ws.Location = LocationLocal
		ws.RelativePath = m[1]
		if driveRoot.MatchString(ws.RelativePath) {
			ws.RelativePath = ws.RelativePath[1:]
		}
	} else if m := remoteURI.FindStringSubmatch(decoded); m != nil {
		location, ok := remoteKinds[m[1]]
		if !ok {
			return Workspace{}, false
		}
		ws.Location = location
		ws.ExtraInfo = m[2]
		ws.RelativePath = m[3]
	} else {
		return Workspace{}, false
	}

	ws.FolderName = folderName(ws.RelativePath)
	if strings.HasSuffix(strings.ToLower(ws.RelativePath), workspaceFileSuffix) {
		ws.Kind = KindWorkspace
	}
	return ws, true
}

// folderName returns the last segment of path. A bare drive root such as
// "C:/" yields the drive letter.
func folderName(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return path
	}
	name := trimmed[strings.LastIndexAny(trimmed, `/\`)+1:]
	return strings.TrimSuffix(name, ":")
}
