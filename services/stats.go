// services/stats.go
package services

import "sync/atomic"

// Outcome is how one submission ended.
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeFallback
	OutcomeSimulated
	OutcomeUnconfigured
	OutcomeSpam
	OutcomeInvalid
	OutcomeFailed
	outcomeCount
)

var outcomeNames = [outcomeCount]string{
	OutcomeSent:         "sent",
	OutcomeFallback:     "fallback",
	OutcomeSimulated:    "simulated",
	OutcomeUnconfigured: "unconfigured",
	OutcomeSpam:         "spam",
	OutcomeInvalid:      "invalid",
	OutcomeFailed:       "failed",
}

func (o Outcome) String() string {
	if o < 0 || o >= outcomeCount {
		return "unknown"
	}
	return outcomeNames[o]
}

// DispatchStats counts submission outcomes since the last reset.
// Safe for concurrent use.
type DispatchStats struct {
	counters [outcomeCount]atomic.Int64
}

func (s *DispatchStats) Record(o Outcome) {
	if o < 0 || o >= outcomeCount {
		return
	}
	s.counters[o].Add(1)
}

// Snapshot returns the current counts keyed by outcome name.
func (s *DispatchStats) Snapshot() map[string]int64 {
	out := make(map[string]int64, outcomeCount)
	for i := range s.counters {
		out[Outcome(i).String()] = s.counters[i].Load()
	}
	return out
}

// Drain returns the current counts and zeroes them.
func (s *DispatchStats) Drain() map[string]int64 {
	out := make(map[string]int64, outcomeCount)
	for i := range s.counters {
		out[Outcome(i).String()] = s.counters[i].Swap(0)
	}
	return out
}
