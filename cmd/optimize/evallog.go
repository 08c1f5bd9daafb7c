package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// evalRow is one line of optimize_log.csv.
type evalRow struct {
	Eval          int     `csv:"eval"`
	Fitness       float64 `csv:"fitness"`
	MeanSurvivors float64 `csv:"mean_survivors"`
	MeanDaysRun   float64 `csv:"mean_days_run"`
	Extinctions   int     `csv:"extinctions"`
	Failures      int     `csv:"failures"`
	InitialSpeed  float64 `csv:"initial_speed"`
	InitialSight  float64 `csv:"initial_sight_distance"`
}

// evalLog appends evaluations to a CSV file, header first.
type evalLog struct {
	file          *os.File
	headerWritten bool
}

func newEvalLog(path string) (*evalLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating eval log: %w", err)
	}
	return &evalLog{file: f}, nil
}

// Write appends one evaluation. Rows are flushed as they are written so a
// long search can be watched while it runs.
func (l *evalLog) Write(row evalRow) error {
	rows := []evalRow{row}
	if !l.headerWritten {
		if err := gocsv.Marshal(rows, l.file); err != nil {
			return fmt.Errorf("writing eval log: %w", err)
		}
		l.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, l.file); err != nil {
		return fmt.Errorf("writing eval log: %w", err)
	}
	return nil
}

func (l *evalLog) Close() error {
	return l.file.Close()
}
