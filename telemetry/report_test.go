package telemetry

import (
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/blobs/components"
)

func TestNewReport(t *testing.T) {
	roster := []components.BlobState{
		{Index: 0, Alive: false, DaysAlive: 7, Speed: 12, SightDistance: 35},
		{Index: 1, Alive: true, DaysAlive: 3, Speed: 16, SightDistance: 28},
		{Index: 2, Alive: true, DaysAlive: 5, Speed: 14, SightDistance: 32},
	}

	r := NewReport(roster, RunInfo{DaysRun: 10, Elapsed: 2 * time.Second, StartSpeed: 15, StartSight: 30})

	if r.Total != 3 || r.Survivors != 2 {
		t.Errorf("total=%d survivors=%d, want 3 and 2", r.Total, r.Survivors)
	}
	if r.MaxDaysAlive != 7 || r.OldestSurvivor != 5 {
		t.Errorf("max days=%d oldest survivor=%d, want 7 and 5", r.MaxDaysAlive, r.OldestSurvivor)
	}
	if r.Speed.Min != 12 || r.Speed.Max != 16 {
		t.Errorf("overall speed range %+v", r.Speed)
	}
	if r.SurvivorSpeed.Min != 14 || r.SurvivorSpeed.Max != 16 || r.SurvivorSpeed.Mean != 15 {
		t.Errorf("survivor speed range %+v", r.SurvivorSpeed)
	}
	if r.SurvivorSight.Mean != 30 {
		t.Errorf("survivor sight mean = %v, want 30", r.SurvivorSight.Mean)
	}

	text := r.Text()
	for _, want := range []string{
		"2 Blobs survived",
		"Simulation Run Time: 2.00s",
		"Max days alive: 7",
		"Oldest Surviving Blob: 5",
		"Average speed: 15.00",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q:\n%s", want, text)
		}
	}
}

func TestNewReportExtinct(t *testing.T) {
	roster := []components.BlobState{
		{Index: 0, Alive: false, Speed: 15, SightDistance: 30},
	}
	r := NewReport(roster, RunInfo{DaysRun: 1, Extinct: true, ExtinctionDay: 2})

	if r.Survivors != 0 || r.SurvivorSpeed != (TraitRange{}) {
		t.Errorf("extinct run should have no survivor stats: %+v", r)
	}
	text := r.Text()
	if strings.Contains(text, "Surviving Blob Statistics") {
		t.Error("extinct report should omit the survivor section")
	}
	if !strings.Contains(text, "Extinct on day 2") {
		t.Errorf("report missing extinction line:\n%s", text)
	}
}

func TestNewReportEmptyRoster(t *testing.T) {
	r := NewReport(nil, RunInfo{})
	if r.Total != 0 || r.Speed != (TraitRange{}) {
		t.Errorf("empty roster report: %+v", r)
	}
	_ = r.Text()
}
