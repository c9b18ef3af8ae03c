// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// InstanceLocator scans a search path list for installations.
type InstanceLocator interface {
	Locate(searchPaths []string) []*Instance
}

// Cache memoizes the result of a scan for a given search path list.
// Concurrent callers asking for the same list share a single scan.
type Cache struct {
	locator InstanceLocator

	mu        sync.RWMutex
	cached    bool
	key       string
	instances []*Instance

	singleFlight singleflight.Group
}

// NewCache creates a cache backed by the given locator.
func NewCache(locator InstanceLocator) *Cache {
	return &Cache{locator: locator}
}

// Instances returns the installations reachable from searchPaths, scanning
// only when the list differs from the one cached last.
func (c *Cache) Instances(searchPaths []string) []*Instance {
	key := strings.Join(searchPaths, "\x00")

	if instances, ok := c.lookup(key); ok {
		return instances
	}

	result, _, _ := c.singleFlight.Do(key, func() (any, error) {
		// Double-check: another caller may have finished the scan.
		if instances, ok := c.lookup(key); ok {
			return instances, nil
		}

		instances := c.locator.Locate(searchPaths)

		c.mu.Lock()
		c.cached = true
		c.key = key
		c.instances = instances
		c.mu.Unlock()

		return instances, nil
	})

	// Waiters of one flight share the result, so each gets its own copy.
	return slices.Clone(result.([]*Instance))
}

// Invalidate drops the cached scan.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = false
	c.key = ""
	c.instances = nil
}

func (c *Cache) lookup(key string) ([]*Instance, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.cached || c.key != key {
		return nil, false
	}
	return slices.Clone(c.instances), true
}
