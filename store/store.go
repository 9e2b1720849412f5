// Package store accumulates normalized test records during a run and
// derives statistics, groupings, and ranked queries from them at render
// time. The store is the run's single piece of mutable shared state; writes
// are mutex-serialized so concurrent host bindings cannot interleave them.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/qa-infra/enterprise-reporter/types"
)

// GroupCount is one bucket of a grouping index with its record count.
type GroupCount struct {
	Name  string
	Count int
}

// Store holds the insertion-ordered record collection and the two grouping
// indexes. The collection only grows during a run; records are immutable
// once appended.
type Store struct {
	mu      sync.Mutex
	records []types.TestRecord

	byProject    map[string][]types.TestRecord
	projectOrder []string // first-seen order, used for tie-breaking

	byFile    map[string][]types.TestRecord
	fileOrder []string
}

// New creates an empty store.
func New() *Store {
	return &Store{
		byProject: make(map[string][]types.TestRecord),
		byFile:    make(map[string][]types.TestRecord),
	}
}

// Record appends one test record and updates both grouping indexes.
// Arrival order becomes insertion order for all tie-breaking.
func (s *Store) Record(rec types.TestRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)

	project := rec.ProjectOrDefault()
	if _, seen := s.byProject[project]; !seen {
		s.projectOrder = append(s.projectOrder, project)
	}
	s.byProject[project] = append(s.byProject[project], rec)

	file := rec.FileBasename()
	if _, seen := s.byFile[file]; !seen {
		s.fileOrder = append(s.fileOrder, file)
	}
	s.byFile[file] = append(s.byFile[file], rec)
}

// Len returns the number of recorded attempts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Records returns a copy of the ordered record collection.
func (s *Store) Records() []types.TestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.TestRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Stats computes aggregate statistics from the complete collection. It is
// recomputed on every call; there is no cached state to go stale.
func (s *Store) Stats(wallClock time.Duration) types.RunStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.ComputeStats(s.records, wallClock)
}

// Snapshot assembles the complete immutable view handed to the renderers.
func (s *Store) Snapshot(env types.EnvironmentInfo, cfg types.ReporterConfig) *types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]types.TestRecord, len(s.records))
	copy(records, s.records)

	byProject := make(map[string][]types.TestRecord, len(s.byProject))
	for name, recs := range s.byProject {
		group := make([]types.TestRecord, len(recs))
		copy(group, recs)
		byProject[name] = group
	}
	byFile := make(map[string][]types.TestRecord, len(s.byFile))
	for name, recs := range s.byFile {
		group := make([]types.TestRecord, len(recs))
		copy(group, recs)
		byFile[name] = group
	}

	return &types.Snapshot{
		Records:     records,
		Stats:       types.ComputeStats(s.records, env.Duration),
		ByProject:   byProject,
		ByFile:      byFile,
		Environment: env,
		Config:      cfg,
		GeneratedAt: time.Now(),
	}
}

// TopProjects returns up to n projects ranked by test count descending,
// ties broken by first-seen order.
func (s *Store) TopProjects(n int) []GroupCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topGroups(s.byProject, s.projectOrder, n)
}

// TopFiles returns up to n source files ranked by test count descending,
// ties broken by first-seen order.
func (s *Store) TopFiles(n int) []GroupCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return topGroups(s.byFile, s.fileOrder, n)
}

// SlowestTests returns up to n records ranked by duration descending, ties
// broken by arrival order.
func (s *Store) SlowestTests(n int) []types.TestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]types.TestRecord, len(s.records))
	copy(sorted, s.records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Duration > sorted[j].Duration
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// ByStatus returns the records with the given status in arrival order.
func (s *Store) ByStatus(status types.TestStatus) []types.TestRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.TestRecord
	for _, r := range s.records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

func topGroups(index map[string][]types.TestRecord, order []string, n int) []GroupCount {
	counts := make([]GroupCount, 0, len(order))
	for _, name := range order {
		counts = append(counts, GroupCount{Name: name, Count: len(index[name])})
	}
	// Stable sort preserves first-seen order among equal counts.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}
