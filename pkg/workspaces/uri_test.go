// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehop/codehop/pkg/editor"
)

func TestParseURI(t *testing.T) {
	t.Parallel()

	inst := &editor.Instance{DisplayName: "Code"}

	tests := []struct {
		name string
		uri  string
		want Workspace
	}{
		{
			name: "local posix folder",
			uri:  "file:///home/me/src/codehop",
			want: Workspace{
				Path:         "file:///home/me/src/codehop",
				RelativePath: "/home/me/src/codehop",
				FolderName:   "codehop",
				Location:     LocationLocal,
				Kind:         KindFolder,
			},
		},
		{
			name: "local windows folder is percent decoded",
			uri:  "file:///c%3A/Users/me/My%20Project",
			want: Workspace{
				Path:         "file:///c:/Users/me/My Project",
				RelativePath: "c:/Users/me/My Project",
				FolderName:   "My Project",
				Location:     LocationLocal,
				Kind:         KindFolder,
			},
		},
		{
			name: "drive root falls back to the drive letter",
			uri:  "file:///C:/",
			want: Workspace{
				Path:         "file:///C:/",
				RelativePath: "C:/",
				FolderName:   "C",
				Location:     LocationLocal,
				Kind:         KindFolder,
			},
		},
		{
			name: "workspace descriptor",
			uri:  "file:///home/me/all.code-workspace",
			want: Workspace{
				Path:         "file:///home/me/all.code-workspace",
				RelativePath: "/home/me/all.code-workspace",
				FolderName:   "all.code-workspace",
				Location:     LocationLocal,
				Kind:         KindWorkspace,
			},
		},
		{
			name: "ssh remote",
			uri:  "vscode-remote://ssh-remote%2Bbuild-box/srv/app",
			want: Workspace{
				Path:         "vscode-remote://ssh-remote+build-box/srv/app",
				RelativePath: "/srv/app",
				FolderName:   "app",
				ExtraInfo:    "build-box",
				Location:     LocationSSH,
				Kind:         KindFolder,
			},
		},
		{
			name: "wsl remote",
			uri:  "vscode-remote://wsl+Ubuntu/home/me/proj",
			want: Workspace{
				Path:         "vscode-remote://wsl+Ubuntu/home/me/proj",
				RelativePath: "/home/me/proj",
				FolderName:   "proj",
				ExtraInfo:    "Ubuntu",
				Location:     LocationWSL,
				Kind:         KindFolder,
			},
		},
		{
			name: "codespace",
			uri:  "vscode-remote://vsonline+fluffy-space/workspaces/repo",
			want: Workspace{
				Path:         "vscode-remote://vsonline+fluffy-space/workspaces/repo",
				RelativePath: "/workspaces/repo",
				FolderName:   "repo",
				ExtraInfo:    "fluffy-space",
				Location:     LocationCodespaces,
				Kind:         KindFolder,
			},
		},
		{
			name: "dev container",
			uri:  "vscode-remote://dev-container+7b22/workspaces/svc/",
			want: Workspace{
				Path:         "vscode-remote://dev-container+7b22/workspaces/svc/",
				RelativePath: "/workspaces/svc/",
				FolderName:   "svc",
				ExtraInfo:    "7b22",
				Location:     LocationDevContainer,
				Kind:         KindFolder,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseURI(tt.uri, inst)
			require.True(t, ok)
			assert.Same(t, inst, got.Instance)
			got.Instance = nil
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseURIRejects(t *testing.T) {
	t.Parallel()

	for _, uri := range []string{
		"",
		"   ",
		"http://example.com/repo",
		"vscode-remote://attached-container+abc/app",
		"vscode-remote://ssh-remote+hostonly",
		"vscode-vfs://github/org/repo",
		"file://server/share/folder",
		"/home/me/plain/path",
	} {
		t.Run(uri, func(t *testing.T) {
			t.Parallel()
			_, ok := ParseURI(uri, nil)
			assert.False(t, ok)
		})
	}
}

func TestWorkspace_EqualIgnoresInstance(t *testing.T) {
	t.Parallel()

	stable := &editor.Instance{Version: editor.Stable}
	insiders := &editor.Instance{Version: editor.Insiders}

	a, ok := ParseURI("file:///home/me/proj", stable)
	require.True(t, ok)
	b, ok := ParseURI("file:///home/me/proj", insiders)
	require.True(t, ok)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Key(), b.Key())

	b.Label = "[Dev] proj"
	assert.False(t, a.Equal(b))
}

func TestWorkspace_RealPath(t *testing.T) {
	t.Parallel()

	local, ok := ParseURI("file:///home/me/proj", nil)
	require.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/home/me/proj"), local.RealPath())

	remote, ok := ParseURI("vscode-remote://ssh-remote+box/srv/app", nil)
	require.True(t, ok)
	assert.Equal(t, "/srv/app", remote.RealPath())
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  string
	}{
		{"app [SSH: build-box]", "[SSH: build-box] app"},
		{"proj [WSL: Ubuntu]  ", "[WSL: Ubuntu] proj"},
		{"[Remote] myproject", "[Remote] myproject"},
		{"  plain name ", "plain name"},
		{"[only-tag]", "[only-tag]"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeLabel(tt.label))
		})
	}
}
