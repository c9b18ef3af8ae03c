// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/toolhive-core/env/mocks"

	"github.com/codehop/codehop/pkg/config"
	"github.com/codehop/codehop/pkg/editor"
)

// fakeLocator implements editor.InstanceLocator with a function hook.
type fakeLocator struct {
	calls      atomic.Int32
	locateFunc func(searchPaths []string) []*editor.Instance
}

func (f *fakeLocator) Locate(searchPaths []string) []*editor.Instance {
	f.calls.Add(1)
	return f.locateFunc(searchPaths)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

type fixture struct {
	session  *Session
	locator  *fakeLocator
	stable   *editor.Instance
	insiders *editor.Instance
	home     string
}

// newFixture builds a session over an insiders and a stable instance that
// both remember the same folder.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	insiders := &editor.Instance{
		Version:          editor.Insiders,
		DisplayName:      "Code - Insiders",
		ExecutablePath:   filepath.Join(root, "insiders", "code-insiders"),
		AppDataDirectory: filepath.Join(root, "roaming", "Code - Insiders"),
	}
	stable := &editor.Instance{
		Version:          editor.Stable,
		DisplayName:      "Code",
		ExecutablePath:   filepath.Join(root, "stable", "code"),
		AppDataDirectory: filepath.Join(root, "roaming", "Code"),
	}

	writeFile(t, filepath.Join(insiders.AppDataDirectory, "storage.json"),
		`{"openedPathsList": {"entries": [{"folderUri": "file:///home/me/shared"}, {"folderUri": "file:///home/me/beta"}]}}`)
	writeFile(t, filepath.Join(stable.AppDataDirectory, "storage.json"),
		`{"openedPathsList": {"entries": [{"folderUri": "file:///home/me/shared"}]}}`)

	home := filepath.Join(root, "home")
	writeFile(t, filepath.Join(home, ".ssh", "config"), "Host build-box\n  HostName 10.0.0.5\n  User deploy\n")

	ctrl := gomock.NewController(t)
	mockEnv := mocks.NewMockReader(ctrl)
	mockEnv.EXPECT().Getenv("PATH").Return("/opt/vscode/bin").AnyTimes()

	locator := &fakeLocator{locateFunc: func([]string) []*editor.Instance {
		return []*editor.Instance{insiders, stable}
	}}

	session := NewSession(Options{
		Env:     mockEnv,
		HomeDir: home,
		Locator: locator,
		Matcher: FuzzyMatcher{},
	})
	session.Init()

	return &fixture{session: session, locator: locator, stable: stable, insiders: insiders, home: home}
}

func defaultSettings() *config.Config {
	return &config.Config{
		DiscoverWorkspaces: true,
		DiscoverMachines:   true,
		ActionKeyword:      config.DefaultActionKeyword,
	}
}

func TestSession_DefaultInstancePrefersStable(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	assert.Same(t, f.stable, f.session.DefaultInstance())
}

func TestSession_DefaultInstanceFallsBackToFirst(t *testing.T) {
	t.Parallel()

	insiders := &editor.Instance{Version: editor.Insiders}
	exploration := &editor.Instance{Version: editor.Exploration}
	assert.Same(t, insiders, pickDefault([]*editor.Instance{insiders, exploration}))
	assert.Nil(t, pickDefault(nil))
}

func TestSession_Collect(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	settings := defaultSettings()
	settings.CustomWorkspaces = []string{"file:///home/me/custom", "not a uri"}

	got := f.session.Collect(context.Background(), settings)

	assert.Equal(t, []string{"custom", "shared", "beta", "SSH: build-box [deploy@10.0.0.5]"}, titles(got))

	require.NotNil(t, got[0].Workspace)
	assert.Same(t, f.stable, got[0].Workspace.Instance, "custom workspaces open with the default instance")
	require.NotNil(t, got[1].Workspace)
	assert.Same(t, f.insiders, got[1].Workspace.Instance, "first recorded duplicate is kept")
	require.NotNil(t, got[3].Machine)
	assert.Same(t, f.insiders, got[3].Machine.Instance, "default ssh config attaches to the first instance")
}

func TestSession_CollectHonorsToggles(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	settings := defaultSettings()
	settings.DiscoverWorkspaces = false
	settings.DiscoverMachines = false
	settings.CustomWorkspaces = []string{"vscode-remote://ssh-remote+box/srv/app"}

	got := f.session.Collect(context.Background(), settings)
	assert.Equal(t, []string{"app - box (SSH)"}, titles(got))
}

func TestSession_CustomWorkspacesCollapseWithDiscovered(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	settings := defaultSettings()
	settings.DiscoverMachines = false
	settings.CustomWorkspaces = []string{"file:///home/me/shared"}

	got := f.session.Collect(context.Background(), settings)
	assert.Equal(t, []string{"shared", "beta"}, titles(got))
	assert.Same(t, f.stable, got[0].Workspace.Instance)
}

func TestSession_BuildResults(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	settings := defaultSettings()

	all := f.session.BuildResults(context.Background(), settings, Query{ActionKeyword: "vsc"})
	assert.Len(t, all, 3)

	got := f.session.BuildResults(context.Background(), settings, Query{ActionKeyword: "vsc", Search: "build"})
	require.Len(t, got, 1)
	assert.Equal(t, "SSH: build-box [deploy@10.0.0.5]", got[0].Title)
	assert.GreaterOrEqual(t, got[0].Score, 1)
}

func TestSession_InstancesAreScannedOncePerPath(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	settings := defaultSettings()
	for range 3 {
		f.session.Collect(context.Background(), settings)
	}
	assert.Equal(t, int32(1), f.locator.calls.Load())
}

func TestSession_NoInstances(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockEnv := mocks.NewMockReader(ctrl)
	mockEnv.EXPECT().Getenv("PATH").Return("").AnyTimes()

	session := NewSession(Options{
		Env:     mockEnv,
		HomeDir: t.TempDir(),
		Locator: &fakeLocator{locateFunc: func([]string) []*editor.Instance { return nil }},
	})
	session.Init()

	settings := defaultSettings()
	settings.CustomWorkspaces = []string{"file:///home/me/custom"}

	assert.Nil(t, session.DefaultInstance())
	assert.Empty(t, session.Collect(context.Background(), settings))
}
