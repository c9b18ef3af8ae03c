// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package workspaces

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"

	// Pure Go SQLite driver
	_ "modernc.org/sqlite"
)

// recentlyOpenedKey is the ItemTable row holding the history blob.
const recentlyOpenedKey = "history.recentlyOpenedPathsList"

// readOnlyDSN returns a SQLite URI that opens path without write access.
func readOnlyDSN(path string) string {
	p := filepath.ToSlash(path)
	if runtime.GOOS == "windows" {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}
	return u.String()
}

// readRecentlyOpened returns the history blob stored in the state database at
// path. A database without the row yields nil.
func readRecentlyOpened(ctx context.Context, path string) ([]byte, error) {
	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	var value []byte
	err = db.QueryRowContext(ctx,
		`SELECT value FROM ItemTable WHERE key = ?`, recentlyOpenedKey,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recently opened list: %w", err)
	}
	return value, nil
}
