// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
}

func productJSON(name string) string {
	return `{"nameShort": "Code", "nameLong": "` + name + `", "quality": "stable"}`
}

// fakeInstall lays out an installation with the executable next to a bin
// folder and the product metadata under resources/app.
func fakeInstall(t *testing.T, installDir, exeName, product string) {
	t.Helper()
	writeFile(t, filepath.Join(installDir, exeName), "#!/bin/sh\n")
	writeFile(t, filepath.Join(installDir, "bin", exeName), "#!/bin/sh\n")
	writeFile(t, filepath.Join(installDir, "resources", "app", "product.json"), productJSON(product))
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setup       func(t *testing.T, root string) (searchPaths, installDirs []string)
		wantCount   int
		wantVersion Version
		wantName    string
		portable    bool
	}{
		{
			name: "stable installation from bin on PATH",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "Microsoft VS Code")
				fakeInstall(t, install, "code", "Visual Studio Code")
				return []string{"/usr/bin", filepath.Join(install, "bin")}, nil
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "Code",
		},
		{
			name: "portable installation",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "VSCode-portable")
				fakeInstall(t, install, "code", "Visual Studio Code")
				require.NoError(t, os.MkdirAll(filepath.Join(install, "data"), 0o755))
				return []string{filepath.Join(install, "bin")}, nil
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "Code",
			portable:    true,
		},
		{
			name: "insiders installation",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "Microsoft VS Code Insiders")
				fakeInstall(t, install, "code-insiders", "Visual Studio Code - Insiders")
				return []string{filepath.Join(install, "bin")}, nil
			},
			wantCount:   1,
			wantVersion: Insiders,
			wantName:    "Code - Insiders",
		},
		{
			name: "community fork",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "VSCodium")
				fakeInstall(t, install, "codium", "VSCodium")
				return []string{filepath.Join(install, "bin")}, nil
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "VSCodium",
		},
		{
			name: "launcher only in bin with metadata one level up",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				app := filepath.Join(root, "Visual Studio Code.app", "Contents", "Resources", "app")
				writeFile(t, filepath.Join(app, "bin", "code"), "#!/bin/sh\n")
				writeFile(t, filepath.Join(app, "product.json"), productJSON("Visual Studio Code"))
				return []string{filepath.Join(app, "bin")}, nil
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "Code",
		},
		{
			name: "path entry without a family marker is ignored",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "editors")
				fakeInstall(t, install, "code", "Visual Studio Code")
				return []string{filepath.Join(install, "bin")}, nil
			},
			wantCount: 0,
		},
		{
			name: "install directories bypass the marker filter",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "editors")
				fakeInstall(t, install, "code", "Visual Studio Code")
				return nil, []string{install}
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "Code",
		},
		{
			name: "impostor executable is rejected",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "vscode-tools")
				fakeInstall(t, install, "code", "Some Other Editor")
				return []string{filepath.Join(install, "bin")}, nil
			},
			wantCount: 0,
		},
		{
			name: "executable without product metadata is rejected",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				dir := filepath.Join(root, "vscode")
				writeFile(t, filepath.Join(dir, "code"), "#!/bin/sh\n")
				return []string{dir}, nil
			},
			wantCount: 0,
		},
		{
			name: "missing directory is skipped",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				return []string{filepath.Join(root, "Microsoft VS Code", "bin")}, nil
			},
			wantCount: 0,
		},
		{
			name: "same installation reached twice yields one instance",
			setup: func(t *testing.T, root string) ([]string, []string) {
				t.Helper()
				install := filepath.Join(root, "Microsoft VS Code")
				fakeInstall(t, install, "code", "Visual Studio Code")
				return []string{filepath.Join(install, "bin"), install, filepath.Join(install, "bin")}, []string{install}
			},
			wantCount:   1,
			wantVersion: Stable,
			wantName:    "Code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			roaming := filepath.Join(root, "roaming")
			searchPaths, installDirs := tt.setup(t, root)

			instances := NewLocator(roaming, installDirs).Locate(searchPaths)
			require.Len(t, instances, tt.wantCount)
			if tt.wantCount == 0 {
				return
			}

			inst := instances[0]
			assert.Equal(t, tt.wantVersion, inst.Version)
			assert.Equal(t, tt.wantName, inst.DisplayName)
			assert.Equal(t, tt.portable, inst.Portable)
			assert.FileExists(t, inst.ExecutablePath)
			if tt.portable {
				assert.Equal(t, filepath.Join(inst.InstallDirectory, "data", "user-data"), inst.AppDataDirectory)
			} else {
				assert.Equal(t, filepath.Join(roaming, tt.wantName), inst.AppDataDirectory)
			}
		})
	}
}

func TestLocator_LocateKeepsSearchOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	insiders := filepath.Join(root, "Microsoft VS Code Insiders")
	stable := filepath.Join(root, "Microsoft VS Code")
	fakeInstall(t, insiders, "code-insiders", "Visual Studio Code - Insiders")
	fakeInstall(t, stable, "code", "Visual Studio Code")

	instances := NewLocator(filepath.Join(root, "roaming"), nil).Locate([]string{
		filepath.Join(insiders, "bin"),
		filepath.Join(stable, "bin"),
	})

	require.Len(t, instances, 2)
	assert.Equal(t, Insiders, instances[0].Version)
	assert.Equal(t, Stable, instances[1].Version)
	assert.Equal(t, insiders, instances[0].InstallDirectory)
	assert.Equal(t, stable, instances[1].InstallDirectory)
}

func TestLocator_LocateOneInstancePerDataDirectory(t *testing.T) {
	t.Parallel()

	// Two separate non-portable stable installations share the roaming data folder.
	root := t.TempDir()
	first := filepath.Join(root, "vscode-a")
	second := filepath.Join(root, "vscode-b")
	fakeInstall(t, first, "code", "Visual Studio Code")
	fakeInstall(t, second, "code", "Visual Studio Code")

	instances := NewLocator(filepath.Join(root, "roaming"), nil).Locate([]string{first, second})

	require.Len(t, instances, 1)
	assert.Equal(t, first, instances[0].InstallDirectory)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exe         string
		wantVersion Version
		wantName    string
	}{
		{"/usr/share/code/code", Stable, "Code"},
		{`C:\VS Code\Code.exe`, Stable, "Code"},
		{"/opt/insiders/code-insiders", Insiders, "Code - Insiders"},
		{"Code - Insiders.exe", Insiders, "Code - Insiders"},
		{"code-exploration", Exploration, "Code - Exploration"},
		{"/usr/bin/codium", Stable, "VSCodium"},
		{"VSCodium.exe", Stable, "VSCodium"},
	}

	for _, tt := range tests {
		t.Run(tt.exe, func(t *testing.T) {
			t.Parallel()
			v := classify(tt.exe)
			assert.Equal(t, tt.wantVersion, v.Version)
			assert.Equal(t, tt.wantName, v.DisplayName)
		})
	}
}

func TestIsCandidatePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir  string
		want bool
	}{
		{`C:\Users\me\AppData\Local\Programs\Microsoft VS Code\bin`, true},
		{"/Applications/Visual Studio Code.app/Contents/Resources/app/bin", true},
		{"/opt/visual-studio-code/bin", true},
		{"/snap/VSCodium/current/bin", true},
		{"/home/me/.vscode-server/bin", true},
		{"/usr/local/bin", false},
		{"/home/me/code/bin", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isCandidatePath(tt.dir))
		})
	}
}

func TestExecutableCandidatesOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"Code", "code",
		"Code - Insiders", "code-insiders",
		"Code - Exploration", "code-exploration",
		"VSCodium", "codium",
	}
	for i := range want {
		want[i] += executableSuffix
	}
	assert.Equal(t, want, executableCandidates())
}
