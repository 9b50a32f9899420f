// Package report owns run-folder bookkeeping and the artifacts a run
// produces: per-episode score logs, summary metrics, score plots and a
// live terminal progress line. It consumes runner output and holds no
// decision logic.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// MakeRunDir creates <base>/<timestamp>[-tag] and returns its path.
func MakeRunDir(base, tag string) (string, error) {
	id := time.Now().Format("20060102-150405")
	if tag != "" {
		id = id + "-" + tag
	}
	dir := filepath.Join(base, id)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("report: creating run dir: %w", err)
	}
	return dir, nil
}

// LatestRunDir returns the most recently modified run dir under base.
func LatestRunDir(base string) (string, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("report: reading runs root: %w", err)
	}
	dirs := make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		dirs = append(dirs, info)
	}
	if len(dirs) == 0 {
		return "", fmt.Errorf("report: no runs found under %s", base)
	}
	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].ModTime().After(dirs[j].ModTime())
	})
	return filepath.Join(base, dirs[0].Name()), nil
}
