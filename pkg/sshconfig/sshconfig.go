// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package sshconfig reads host records from an OpenSSH client configuration file.
//
// The reader is line based. A record starts at every line whose first
// character is a word character and runs until the next such line, so the
// usual indented layout is understood:
//
//	Host build-box
//	    HostName 10.0.0.5
//	    User deploy
//
// Each line contributes one directive made of the first word and the first
// token after it. Values are not unquoted and Include is not expanded.
package sshconfig

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Directive names read by callers.
const (
	KeyHost     = "Host"
	KeyHostName = "HostName"
	KeyUser     = "User"
)

var (
	recordStart = regexp.MustCompile(`^\w`)
	directive   = regexp.MustCompile(`^\s*(\w+)\s+(\S+)`)
)

// Host is one configuration block: directive name to value, as written.
type Host map[string]string

// Host returns the Host directive value.
func (h Host) Host() string { return h[KeyHost] }

// HostName returns the HostName directive value, or "" when unset.
func (h Host) HostName() string { return h[KeyHostName] }

// User returns the User directive value, or "" when unset.
func (h Host) User() string { return h[KeyUser] }

// Parse returns the host records of text in file order. Records without a
// Host directive are dropped. Parse never fails; unrecognized lines are ignored.
func Parse(text string) []Host {
	var (
		hosts   []Host
		current Host
	)
	flush := func() {
		if current != nil && current.Host() != "" {
			hosts = append(hosts, current)
		}
		current = nil
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r", ""), "\n") {
		if recordStart.MatchString(line) {
			flush()
			current = Host{}
		}
		if current == nil {
			continue
		}
		if m := directive.FindStringSubmatch(line); m != nil {
			current[m[1]] = m[2]
		}
	}
	flush()

	return hosts
}

// ParseFile reads and parses the configuration file at path.
func ParseFile(path string) ([]Host, error) {
	// #nosec G304 - path is the user's own ssh configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ssh config %s: %w", path, err)
	}
	return Parse(string(data)), nil
}
