package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/blobs/components"
	"github.com/pthm-cable/blobs/config"
)

func TestNewOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// Nil manager is a no-op everywhere
	if err := om.WriteDay(DayStats{}); err != nil {
		t.Errorf("WriteDay on nil manager: %v", err)
	}
	if err := om.WriteRoster(nil); err != nil {
		t.Errorf("WriteRoster on nil manager: %v", err)
	}
	if err := om.WriteReport(Report{}); err != nil {
		t.Errorf("WriteReport on nil manager: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager: %v", err)
	}
	if om.Dir() != "" {
		t.Errorf("Dir on nil manager = %q", om.Dir())
	}
}

func TestReadRosterMissing(t *testing.T) {
	if _, err := ReadRoster(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected an error for a missing roster")
	}
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for day := 1; day <= 3; day++ {
		if err := om.WriteDay(DayStats{Day: day, Alive: 20 - day}); err != nil {
			t.Fatalf("WriteDay: %v", err)
		}
	}
	if err := om.WritePerf(PerfStats{AvgTick: time.Millisecond}, 3); err != nil {
		t.Fatalf("WritePerf: %v", err)
	}
	roster := []components.BlobState{
		{ID: "a", Index: 0, Alive: true, Speed: 15, SightDistance: 30},
		{ID: "b", Index: 1, Alive: false, Speed: 16, SightDistance: 29},
	}
	if err := om.WriteRoster(roster); err != nil {
		t.Fatalf("WriteRoster: %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.WriteReport(NewReport(roster, RunInfo{DaysRun: 3})); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	days := readLines(t, filepath.Join(dir, "days.csv"))
	if len(days) != 4 {
		t.Fatalf("days.csv has %d lines, want header + 3", len(days))
	}
	if !strings.HasPrefix(days[0], "day,alive,births") {
		t.Errorf("unexpected header %q", days[0])
	}
	if !strings.HasPrefix(days[3], "3,17,") {
		t.Errorf("unexpected last row %q", days[3])
	}

	rows := readLines(t, filepath.Join(dir, "roster.csv"))
	if len(rows) != 3 {
		t.Errorf("roster.csv has %d lines, want header + 2", len(rows))
	}
	back, err := ReadRoster(filepath.Join(dir, "roster.csv"))
	if err != nil {
		t.Fatalf("ReadRoster: %v", err)
	}
	if len(back) != 2 || back[1].ID != "b" || back[1].Alive || back[0].Speed != 15 {
		t.Errorf("roster read back as %+v", back)
	}

	perf := readLines(t, filepath.Join(dir, "perf.csv"))
	if len(perf) != 2 || !strings.HasPrefix(perf[1], "3,0,1000,") {
		t.Errorf("unexpected perf.csv %q", perf)
	}

	loaded, err := config.Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("config snapshot does not load: %v", err)
	}
	if *loaded != *config.Default() {
		t.Error("config snapshot differs from the written config")
	}

	report, err := os.ReadFile(filepath.Join(dir, "report.txt"))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.Contains(string(report), "1 Blobs survived") {
		t.Errorf("report missing survivor line:\n%s", report)
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
