package game

import (
	"log/slog"
	"time"
)

// Stepper advances a game one tick at a time across day boundaries. Run
// drives it to completion; the viewer interleaves it with drawing.
type Stepper struct {
	g       *Game
	lastDay int
	open    bool // a day has begun and not yet ended
	done    bool
	start   time.Time
	result  RunResult
}

// NewStepper prepares to simulate up to days days after the current one.
func (g *Game) NewStepper(days int) *Stepper {
	return &Stepper{
		g:       g,
		lastDay: g.day + max(days, 0),
		start:   time.Now(),
	}
}

// Step runs one tick, opening and closing days as needed. It returns false
// once the requested days have run or the population is extinct.
func (s *Stepper) Step() bool {
	if s.done {
		return false
	}
	g := s.g

	if !s.open {
		day := g.day + 1
		if day > s.lastDay {
			s.finish()
			return false
		}
		if g.aliveCount == 0 {
			s.result.Extinct = true
			s.result.ExtinctionDay = day
			slog.Info("population extinct", "day", day, "seed", g.rngSeed)
			s.finish()
			return false
		}
		g.BeginDay(day)
		s.open = true
	}

	if g.tick < g.cfg.Day.Length {
		g.Tick()
	}
	if g.tick >= g.cfg.Day.Length {
		g.EndDay()
		s.open = false
		s.result.DaysRun++
	}
	return true
}

// FinishDay steps until the open day, if any, has ended.
func (s *Stepper) FinishDay() {
	if !s.open {
		s.Step()
	}
	for s.open && s.Step() {
	}
}

// InDay reports whether a day is in progress.
func (s *Stepper) InDay() bool { return s.open }

// Done reports whether the run is over.
func (s *Stepper) Done() bool { return s.done }

// LastDay is the final day the stepper will run.
func (s *Stepper) LastDay() int { return s.lastDay }

// Result describes the run so far.
func (s *Stepper) Result() RunResult {
	res := s.result
	if !s.done {
		res.Elapsed = time.Since(s.start)
	}
	return res
}

func (s *Stepper) finish() {
	s.done = true
	s.result.Elapsed = time.Since(s.start)
}
