// Package accounts reads the local group and user databases into lists of
// lowercase names. Files are read on every call; nothing is cached.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Default database locations, relative to the root of RootFS.
const (
	GroupFile  = "etc/group"
	PasswdFile = "etc/passwd"
)

const (
	groupFields  = 4
	passwdFields = 7
)

// RootFS exposes the host filesystem so the default paths resolve to
// /etc/group and /etc/passwd.
func RootFS() fs.FS {
	return os.DirFS("/")
}

// Groups lists group names from a group(5) style file. Names starting with
// an underscore are skipped.
func Groups(ctx context.Context, filesystem fs.FS, name string) ([]string, error) {
	records, err := readRecords(ctx, filesystem, name, groupFields)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, fields := range records {
		if strings.HasPrefix(fields[0], "_") {
			continue
		}
		out = append(out, strings.ToLower(fields[0]))
	}
	return out, nil
}

// Users lists login names from a passwd(5) style file.
func Users(ctx context.Context, filesystem fs.FS, name string) ([]string, error) {
	records, err := readRecords(ctx, filesystem, name, passwdFields)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(records))
	for _, fields := range records {
		out = append(out, strings.ToLower(fields[0]))
	}
	return out, nil
}

// readRecords splits every non-blank line on ':' after dropping anything
// from '#' onwards. Lines with the wrong field count are rejected.
func readRecords(ctx context.Context, filesystem fs.FS, name string, fields int) ([][]string, error) {
	data, err := load(ctx, filesystem, name)
	if err != nil {
		return nil, err
	}

	var records [][]string
	for i, raw := range strings.Split(string(data), "\n") {
		line, _, _ := strings.Cut(strings.TrimSuffix(raw, "\r"), "#")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) != fields {
			return nil, fmt.Errorf("accounts: %s:%d: expected %d fields, got %d", name, i+1, fields, len(parts))
		}
		records = append(records, parts)
	}
	return records, nil
}

func load(ctx context.Context, filesystem fs.FS, name string) ([]byte, error) {
	if filesystem == nil {
		return nil, errors.New("accounts: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("accounts: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(filesystem, strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("accounts: read %s: %w", name, err)
	}
	return data, nil
}
