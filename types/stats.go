package types

import "time"

// RunStats contains aggregated statistics for a test run. It is recomputed
// from the complete record collection whenever a snapshot is taken.
type RunStats struct {
	Total       int           `json:"total"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Skipped     int           `json:"skipped"`
	TimedOut    int           `json:"timedOut"`
	Flaky       int           `json:"flaky"` // passed with retries > 0
	Duration    time.Duration `json:"duration"`
	PassRate    float64       `json:"passRate"`    // percent, 0 when Total == 0
	AvgDuration time.Duration `json:"avgDuration"` // 0 when Total == 0
}

// ComputeStats derives RunStats from a record collection in one pass.
// Division guards keep zero-test runs at passRate=0 and avgDuration=0.
func ComputeStats(records []TestRecord, wallClock time.Duration) RunStats {
	stats := RunStats{Duration: wallClock}
	var totalDuration time.Duration

	for i := range records {
		r := &records[i]
		stats.Total++
		totalDuration += r.Duration

		switch r.Status {
		case TestStatusPassed:
			stats.Passed++
		case TestStatusFailed:
			stats.Failed++
		case TestStatusSkipped:
			stats.Skipped++
		case TestStatusTimedOut:
			stats.TimedOut++
		}
		if r.IsFlaky() {
			stats.Flaky++
		}
	}

	if stats.Total > 0 {
		stats.PassRate = float64(stats.Passed) / float64(stats.Total) * 100
		stats.AvgDuration = totalDuration / time.Duration(stats.Total)
	}
	return stats
}

// HasFailures reports whether the run contains failed or timed-out tests.
func (s RunStats) HasFailures() bool {
	return s.Failed > 0 || s.TimedOut > 0
}

// Status collapses the run's statistics to a single overall status.
func (s RunStats) Status() TestStatus {
	switch {
	case s.HasFailures():
		return TestStatusFailed
	case s.Passed == 0 && s.Skipped > 0:
		return TestStatusSkipped
	default:
		return TestStatusPassed
	}
}
