package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when an input path cannot be resolved.
var ErrNotFound = errors.New("path not found")

// EnsureDir ensures the provided directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SafeWriteFile writes data to a temp file and atomically renames it into place.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// PrettyJSON marshals a value as indented JSON.
func PrettyJSON(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}

// ResolvePath locates rel by checking start and then each parent directory.
// Absolute paths are returned as-is when they exist. If start is empty the
// working directory is used; if start is a file its directory is used.
func ResolvePath(start, rel string) (string, error) {
	path, _, err := ResolveBase(start, rel)
	return path, err
}

// ResolveBase is ResolvePath that also returns the directory rel was joined
// to. For an absolute rel the base is the working directory.
func ResolveBase(start, rel string) (path, base string, err error) {
	if filepath.IsAbs(rel) {
		if _, err := os.Stat(rel); err != nil {
			return "", "", fmt.Errorf("%w: %s", ErrNotFound, rel)
		}
		wd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		return rel, wd, nil
	}
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", "", err
		}
		start = wd
	}
	info, err := os.Stat(start)
	if err != nil {
		return "", "", err
	}
	dir := start
	if !info.IsDir() {
		dir = filepath.Dir(start)
	}
	for {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}
	return "", "", fmt.Errorf("%w: %s (searched upward from %s)", ErrNotFound, rel, start)
}

// Anchor joins a relative path to base; absolute paths are returned unchanged.
func Anchor(base, p string) string {
	if filepath.IsAbs(p) || base == "" {
		return p
	}
	return filepath.Join(base, p)
}
