package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SaveJSON writes v to path, indented.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}

// SaveScoresCSV writes the per-episode scores, one row per completed
// episode in episode order, with 1-based episode indices.
func SaveScoresCSV(path string, scores []int) error {
	var b strings.Builder
	b.WriteString("episode,score\n")
	for i, s := range scores {
		fmt.Fprintf(&b, "%d,%d\n", i+1, s)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("report: writing %s: %w", path, err)
	}
	return nil
}
