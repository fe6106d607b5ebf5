package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SaveReport writes an import run report as YAML under the reports directory
// and returns the file path.
func SaveReport(report Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	path := filepath.Join(dir, reportFilename(report.StartedAt, report.RunID))

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

func reportFilename(startedAt time.Time, runID string) string {
	return fmt.Sprintf("import_%s_%s.yaml", startedAt.Format("2006-01-02_15-04-05"), runID[:8])
}
