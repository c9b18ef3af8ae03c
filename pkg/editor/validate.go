// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// productJSONLocations are the directories, relative to the resolved
// executable's directory, where an installation keeps its product.json.
var productJSONLocations = []string{
	filepath.Join("resources", "app"),
	".",
	"..",
	filepath.Join("..", "resources", "app"),
	filepath.Join("..", "Resources", "app"),
}

// productName returns the product name declared by the installation that owns
// executablePath. The second result is false when no product metadata exists.
func productName(executablePath string) (string, bool) {
	resolved, err := filepath.EvalSymlinks(executablePath)
	if err != nil {
		resolved = executablePath
	}
	dir := filepath.Dir(resolved)

	for _, rel := range productJSONLocations {
		// #nosec G304 - path is derived from a probed install directory
		data, err := os.ReadFile(filepath.Join(dir, rel, "product.json"))
		if err != nil {
			continue
		}
		name := gjson.GetBytes(data, "nameLong").String()
		if name == "" {
			name = gjson.GetBytes(data, "nameShort").String()
		}
		return name, true
	}
	return "", false
}

// isFamilyProduct reports whether a product name belongs to the editor family.
func isFamilyProduct(name string) bool {
	lower := strings.ToLower(name)
	for _, family := range familyNames {
		if strings.Contains(lower, strings.ToLower(family)) {
			return true
		}
	}
	return false
}

// isRegularFile reports whether path exists and is not a directory.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
