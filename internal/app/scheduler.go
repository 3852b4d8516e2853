package app

import "time"

// Scheduler turns the last notified step period into ticks. It is owned by
// the app loop goroutine.
type Scheduler struct {
	ticker *time.Ticker
	period time.Duration
	paused bool
}

func NewScheduler(periodMs int) *Scheduler {
	period := toDuration(periodMs)
	return &Scheduler{
		ticker: time.NewTicker(period),
		period: period,
	}
}

// C is nil while paused so a select on it blocks.
func (s *Scheduler) C() <-chan time.Time {
	if s.paused {
		return nil
	}
	return s.ticker.C
}

func (s *Scheduler) Period() time.Duration {
	return s.period
}

func (s *Scheduler) Paused() bool {
	return s.paused
}

func (s *Scheduler) SetPeriod(periodMs int) {
	s.period = toDuration(periodMs)
	s.ticker.Reset(s.period)
}

func (s *Scheduler) Pause() {
	s.paused = true
	s.ticker.Stop()
}

func (s *Scheduler) Resume(periodMs int) {
	s.paused = false
	s.SetPeriod(periodMs)
}

func (s *Scheduler) Stop() {
	s.ticker.Stop()
}

func toDuration(periodMs int) time.Duration {
	if periodMs < 1 {
		periodMs = 1
	}
	return time.Duration(periodMs) * time.Millisecond
}
