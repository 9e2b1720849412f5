package types

import "time"

// EnvironmentInfo is captured once at run end.
type EnvironmentInfo struct {
	OS              string        `json:"os"`
	GoVersion       string        `json:"goVersion"`
	ReporterVersion string        `json:"reporterVersion"`
	Timestamp       string        `json:"timestamp"` // RFC3339
	Duration        time.Duration `json:"duration"`
	Workers         int           `json:"workers"`
}

// Snapshot is the complete, immutable point-in-time view of a run handed to
// the renderers. Renderers treat it as read-only; output is a pure function
// of the snapshot plus the localization choice.
type Snapshot struct {
	Records     []TestRecord            `json:"tests"`
	Stats       RunStats                `json:"stats"`
	ByProject   map[string][]TestRecord `json:"testsByProject"`
	ByFile      map[string][]TestRecord `json:"testsByFile"`
	Environment EnvironmentInfo         `json:"environment"`
	Config      ReporterConfig          `json:"config"`
	GeneratedAt time.Time               `json:"generatedAt"`
}

// FailedTests returns the failed and timed-out records, in arrival order.
func (s *Snapshot) FailedTests() []TestRecord {
	var out []TestRecord
	for _, r := range s.Records {
		if r.Status == TestStatusFailed || r.Status == TestStatusTimedOut {
			out = append(out, r)
		}
	}
	return out
}
