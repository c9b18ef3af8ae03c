// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package search merges discovered workspaces, user-declared workspaces and
// remote machines into one scored candidate list.
package search

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/adrg/xdg"

	"github.com/stacklok/toolhive-core/env"

	"github.com/codehop/codehop/pkg/config"
	"github.com/codehop/codehop/pkg/editor"
	"github.com/codehop/codehop/pkg/errors"
	"github.com/codehop/codehop/pkg/logger"
	"github.com/codehop/codehop/pkg/remotes"
	"github.com/codehop/codehop/pkg/workspaces"
)

// Options configures a Session.
type Options struct {
	// Env supplies PATH. Defaults to the process environment.
	Env env.Reader
	// InstallDirs are probed for installations in addition to PATH.
	InstallDirs []string
	// RoamingDir is the per-user data root of non-portable installations.
	RoamingDir string
	// HomeDir locates the default ssh configuration.
	HomeDir string
	// Locator overrides the filesystem scan.
	Locator editor.InstanceLocator
	// Matcher scores titles. Defaults to FuzzyMatcher.
	Matcher Matcher
}

// DefaultOptions returns options for the current user and host. The
// configured extra install directories are probed before the platform ones.
func DefaultOptions(extraInstallDirs []string) Options {
	envReader := &env.OSReader{}
	return Options{
		Env:         envReader,
		InstallDirs: append(slices.Clone(extraInstallDirs), editor.WellKnownInstallDirs(envReader)...),
		RoamingDir:  editor.RoamingDir(envReader),
		HomeDir:     xdg.Home,
		Matcher:     FuzzyMatcher{},
	}
}

// Session is the discovery context shared by all queries of a process.
// The instance scan is cached until PATH changes; workspaces and machines are
// read again for every query.
type Session struct {
	env        env.Reader
	instances  *editor.Cache
	workspaces *workspaces.Discoverer
	machines   *remotes.Discoverer
	matcher    Matcher
	logger     *slog.Logger

	initOnce        sync.Once
	defaultInstance *editor.Instance
}

// NewSession creates a session. Call Init before the first query.
func NewSession(opts Options) *Session {
	if opts.Env == nil {
		opts.Env = &env.OSReader{}
	}
	if opts.Locator == nil {
		opts.Locator = editor.NewLocator(opts.RoamingDir, opts.InstallDirs)
	}
	if opts.Matcher == nil {
		opts.Matcher = FuzzyMatcher{}
	}
	return &Session{
		env:        opts.Env,
		instances:  editor.NewCache(opts.Locator),
		workspaces: workspaces.NewDiscoverer(),
		machines:   remotes.NewDiscoverer(opts.HomeDir),
		matcher:    opts.Matcher,
		logger:     logger.ForComponent("Search"),
	}
}

// Init scans for instances and picks the default instance: the first Stable
// one, else the first found. It runs once per session.
func (s *Session) Init() {
	s.initOnce.Do(func() {
		instances := s.Instances()
		s.defaultInstance = pickDefault(instances)
		s.logger.Info("session initialized", "instances", len(instances))
	})
}

func pickDefault(instances []*editor.Instance) *editor.Instance {
	for _, inst := range instances {
		if inst.Version == editor.Stable {
			return inst
		}
	}
	if len(instances) > 0 {
		return instances[0]
	}
	return nil
}

// Instances returns the located editor installations for the current PATH.
func (s *Session) Instances() []*editor.Instance {
	return s.instances.Instances(editor.SearchPaths(s.env))
}

// DefaultInstance returns the instance used for user-declared workspaces,
// or nil when no instance was found.
func (s *Session) DefaultInstance() *editor.Instance {
	s.Init()
	return s.defaultInstance
}

// Workspaces returns the workspace history of every instance.
func (s *Session) Workspaces(ctx context.Context) []workspaces.Workspace {
	found, errs := s.workspaces.Discover(ctx, s.Instances())
	s.reportDiscoveryErrors(errs)
	return found
}

// Machines returns the SSH targets of every instance.
func (s *Session) Machines() []remotes.Machine {
	found, errs := s.machines.Discover(s.Instances())
	s.reportDiscoveryErrors(errs)
	return found
}

// CustomWorkspaces resolves user-declared URIs against the default instance.
// Nothing is returned without an instance to open them with.
func (s *Session) CustomWorkspaces(uris []string) []workspaces.Workspace {
	inst := s.DefaultInstance()
	if inst == nil {
		return nil
	}
	var out []workspaces.Workspace
	for _, uri := range uris {
		ws, ok := workspaces.ParseURI(uri, inst)
		if !ok {
			s.logger.Debug("ignoring custom workspace with unsupported uri", "uri", uri)
			continue
		}
		out = append(out, ws)
	}
	return out
}

// Collect builds the unscored candidate list: custom workspaces, then
// discovered workspaces with duplicates removed, then remote machines.
func (s *Session) Collect(ctx context.Context, cfg *config.Config) []Candidate {
	list := s.CustomWorkspaces(cfg.CustomWorkspaces)
	customCount := len(list)

	discoveredCount := 0
	if cfg.DiscoverWorkspaces {
		discovered := s.Workspaces(ctx)
		discoveredCount = len(discovered)
		list = append(list, discovered...)
	}
	list = Dedupe(list)

	candidates := make([]Candidate, 0, len(list))
	for _, ws := range list {
		candidates = append(candidates, WorkspaceCandidate(ws))
	}

	machineCount := 0
	if cfg.DiscoverMachines {
		machines := s.Machines()
		machineCount = len(machines)
		for _, m := range machines {
			candidates = append(candidates, MachineCandidate(m))
		}
	}

	s.logger.Info("collected candidates",
		"custom_workspaces", customCount,
		"discovered_workspaces", discoveredCount,
		"distinct_workspaces", len(list),
		"machines", machineCount)
	return candidates
}

// BuildResults collects the candidates and filters them against the query.
func (s *Session) BuildResults(ctx context.Context, cfg *config.Config, query Query) []Candidate {
	return Filter(s.Collect(ctx, cfg), query, s.matcher)
}

// reportDiscoveryErrors logs per-source discovery problems. Missing sources
// are expected on most hosts and only logged at info level.
func (s *Session) reportDiscoveryErrors(errs []error) {
	for _, err := range errs {
		switch {
		case errors.IsMissingSource(err):
			s.logger.Info("discovery source not available", "error", err)
		case errors.IsMalformedSource(err), errors.IsUnreadableSource(err):
			s.logger.Warn("skipping discovery source", "error", err)
		default:
			s.logger.Error("discovery failed", "error", err)
		}
	}
}
