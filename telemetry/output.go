package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/lahkro/snowfall/config"
)

// OutputManager handles structured run output: a config snapshot plus a
// CSV stream of windowed frame statistics.
type OutputManager struct {
	dir        string
	framesFile *os.File

	headerWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	framesPath := filepath.Join(dir, "frames.csv")
	f, err := os.Create(framesPath)
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}

	return &OutputManager{dir: dir, framesFile: f}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrameStats appends a window stats record to frames.csv.
func (om *OutputManager) WriteFrameStats(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
		om.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.framesFile == nil {
		return nil
	}
	return om.framesFile.Close()
}
