// services/scheduler.go
package services

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartStatsReporter logs and resets the dispatch counters every interval.
// The caller owns the returned scheduler and must Shutdown it.
func (s *ApplicationService) StartStatsReporter(interval time.Duration) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("stats interval must be positive, got %s", interval)
	}

	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.ReportStats),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("schedule stats job: %w", err)
	}

	sched.Start()
	return sched, nil
}

// ReportStats logs the counters accumulated since the previous report.
func (s *ApplicationService) ReportStats() {
	counts := s.Stats.Drain()
	var total int64
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		s.Log.Debugw("[STATS] no submissions in the last period")
		return
	}
	s.Log.Infow("📊 [STATS] submissions in the last period",
		"total", total,
		"sent", counts[OutcomeSent.String()],
		"fallback", counts[OutcomeFallback.String()],
		"simulated", counts[OutcomeSimulated.String()],
		"unconfigured", counts[OutcomeUnconfigured.String()],
		"spam", counts[OutcomeSpam.String()],
		"invalid", counts[OutcomeInvalid.String()],
		"failed", counts[OutcomeFailed.String()],
	)
}
