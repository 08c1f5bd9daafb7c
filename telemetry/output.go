package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir      string
	daysFile *os.File
	perfFile *os.File

	// Track if headers have been written
	daysHeaderWritten bool
	perfHeaderWritten bool
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

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "days.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating days.csv: %w", err)
	}
	om.daysFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.daysFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteDay appends a day stats record to days.csv.
func (om *OutputManager) WriteDay(stats DayStats) error {
	if om == nil {
		return nil
	}

	records := []DayStats{stats}

	if !om.daysHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.daysFile); err != nil {
			return fmt.Errorf("writing day stats: %w", err)
		}
		om.daysHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.daysFile); err != nil {
			return fmt.Errorf("writing day stats: %w", err)
		}
	}

	return nil
}

// WritePerf appends a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, day int) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(day)}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteRoster writes the final roster to roster.csv, replacing any earlier one.
func (om *OutputManager) WriteRoster(roster []components.BlobState) error {
	if om == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(om.dir, "roster.csv"))
	if err != nil {
		return fmt.Errorf("creating roster.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.Marshal(roster, f); err != nil {
		return fmt.Errorf("writing roster: %w", err)
	}
	return nil
}

// ReadRoster loads a roster.csv written by WriteRoster.
func ReadRoster(path string) ([]components.BlobState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()

	var roster []components.BlobState
	if err := gocsv.UnmarshalFile(f, &roster); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	return roster, nil
}

// WriteReport saves the end-of-run report as plain text.
func (om *OutputManager) WriteReport(r Report) error {
	if om == nil {
		return nil
	}

	if err := os.WriteFile(filepath.Join(om.dir, "report.txt"), []byte(r.Text()), 0644); err != nil {
		return fmt.Errorf("writing report.txt: %w", err)
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

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.daysFile != nil {
		if err := om.daysFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
