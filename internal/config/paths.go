package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Paths resolves the output locations for one run. All relative
// configured paths are anchored at the working directory the operator
// launched from, which is where a one-shot report belongs.
type Paths struct {
	OutputDir  string
	ReportsDir string
	LogsDir    string
}

// NewPaths builds resolved paths from the configuration.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(wd, p)
	}

	return &Paths{
		OutputDir:  resolve(cfg.OutputDir),
		ReportsDir: resolve(cfg.ReportsDir),
		LogsDir:    resolve(cfg.LogsDir),
	}, nil
}

// EnsureDirectories creates all output directories if missing.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.OutputDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the path of a file inside the reports directory.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetOutputPath returns the path of a file inside the output directory.
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}

// GetLogPath returns the path of a file inside the logs directory.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetWorkbookPath returns the dated path for the report workbook.
func (p *Paths) GetWorkbookPath(date time.Time) string {
	return p.GetReportPath(fmt.Sprintf("sales_performance_report_%s.xlsx", date.Format("20060102")))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
