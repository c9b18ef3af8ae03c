// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"regexp"
	"strings"
)

// trailingTag matches labels such as "project [SSH: box]".
var trailingTag = regexp.MustCompile(`^(.+?)\s*(\[.+\])\s*$`)

// normalizeLabel moves a trailing bracket tag to the front:
// "project [SSH: box]" becomes "[SSH: box] project". Labels without a
// trailing tag are returned trimmed.
func normalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if m := trailingTag.FindStringSubmatch(label); m != nil {
		return m[2] + " " + strings.TrimSpace(m[1])
	}
	return label
}
