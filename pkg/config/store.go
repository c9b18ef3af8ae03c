// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/codehop/codehop/pkg/logger"
)

// lockTimeout is the maximum time to wait for a file lock
const lockTimeout = 1 * time.Second

// Store defines the interface for configuration storage operations
type Store interface {
	// Load loads the configuration from storage
	Load(ctx context.Context) (*Config, error)
	// Save saves the configuration to storage
	Save(ctx context.Context, config *Config) error
	// Update performs a locked update operation on the configuration
	Update(ctx context.Context, updateFn func(*Config) error) error
}

// LocalStore implements Store using local file system
type LocalStore struct {
	configPath string
}

// NewLocalStore creates a new local file-based configuration store.
// An empty path selects the default location.
func NewLocalStore(configPath string) *LocalStore {
	return &LocalStore{
		configPath: configPath,
	}
}

// Path returns the file the store reads and writes.
func (s *LocalStore) Path() (string, error) {
	if s.configPath != "" {
		return filepath.Clean(s.configPath), nil
	}
	configPath, err := getConfigPath()
	if err != nil {
		return "", fmt.Errorf("unable to fetch config path: %w", err)
	}
	return filepath.Clean(configPath), nil
}

// Load loads configuration from local file, creating it with defaults when missing.
func (s *LocalStore) Load(_ context.Context) (*Config, error) {
	configPath, err := s.Path()
	if err != nil {
		return nil, err
	}

	// #nosec G304: path comes from xdg or the --config flag
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to read config file %s: %w", configPath, err)
		}

		config := createNewConfigWithDefaults()
		logger.Debugf("initializing configuration file at %s", configPath)
		if err := config.saveToPath(configPath); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		return &config, nil
	}

	// Start from defaults so keys absent from older files keep their default.
	config := createNewConfigWithDefaults()
	if err := yaml.Unmarshal(configFile, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file yaml: %w", err)
	}
	if config.CustomWorkspaces == nil {
		config.CustomWorkspaces = []string{}
	}
	return &config, nil
}

// Save saves configuration to local file
func (s *LocalStore) Save(_ context.Context, config *Config) error {
	configPath, err := s.Path()
	if err != nil {
		return err
	}
	return config.saveToPath(configPath)
}

// Update performs a locked update operation on the configuration.
// Nothing is written when updateFn returns an error.
func (s *LocalStore) Update(ctx context.Context, updateFn func(*Config) error) error {
	configPath, err := s.Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Use a separate lock file for cross-platform compatibility
	fileLock := flock.New(configPath + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := fileLock.TryLockContext(lockCtx, 100*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock: timeout after %v", lockTimeout)
	}
	defer fileLock.Unlock()

	// Load the config after acquiring the lock to avoid race conditions
	config, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := updateFn(config); err != nil {
		return err
	}

	if err := s.Save(ctx, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}
