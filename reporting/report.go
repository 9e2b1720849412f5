// Package reporting renders run snapshots into the report artifacts:
// an interactive HTML page, a machine-readable JSON snapshot and a
// Markdown summary. Every sink consumes the same immutable snapshot,
// so output is a pure function of the snapshot plus the language.
package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"sort"

	"github.com/qa-infra/enterprise-reporter/i18n"
	"github.com/qa-infra/enterprise-reporter/types"
)

// Number of entries in the overview summary cards.
const summaryCardSize = 5

// trendHistory is the illustrative pass-rate history rendered ahead of
// the current run in the trend chart.
var trendHistory = []float64{85, 88, 90, 87}

// TimelineItem pairs a record with its bar width relative to the slowest
// test in the run.
type TimelineItem struct {
	Record  types.TestRecord
	Percent float64
}

// ProjectGroup is one project's tests in arrival order.
type ProjectGroup struct {
	Name  string
	Tests []types.TestRecord
}

// GroupCount is a named bucket size, used for the per-file ranking.
type GroupCount struct {
	Name  string
	Count int
}

// ReportData is the fully prepared view handed to the sinks. Building it
// once keeps the three renderers in agreement about ordering and grouping.
type ReportData struct {
	Snapshot *types.Snapshot
	Config   types.ReporterConfig
	Stats    types.RunStats
	Env      types.EnvironmentInfo

	Lang string
	T    i18n.Table

	// Listing is the all-tests tab content, honoring the show-passed and
	// show-skipped options. Failed and timed-out tests are always listed.
	Listing []types.TestRecord
	Failed  []types.TestRecord

	// Timeline holds every record sorted by duration, slowest first.
	Timeline []TimelineItem
	Projects []ProjectGroup
	TopFiles []GroupCount
	Slowest  []types.TestRecord

	// Pre-marshaled payloads injected into the report's script block.
	TestsJSON        template.JS
	StatsJSON        template.JS
	TranslationsJSON template.JS
	TrendJSON        template.JS
}

// Translations exposes the localization table to the testItem sub-template.
func (d *ReportData) Translations() map[string]string { return d.T }

// ScreenshotsEnabled reports whether inline screenshots should render.
func (d *ReportData) ScreenshotsEnabled() bool { return d.Config.IncludeScreenshots }

// BuildReportData prepares the shared renderer view from a snapshot.
func BuildReportData(snap *types.Snapshot) (*ReportData, error) {
	table := i18n.Strings(snap.Config.Language)

	data := &ReportData{
		Snapshot: snap,
		Config:   snap.Config,
		Stats:    snap.Stats,
		Env:      snap.Environment,
		Lang:     snap.Config.Language,
		T:        table,
		Listing:  filterListing(snap.Records, snap.Config),
		Failed:   snap.FailedTests(),
		Timeline: buildTimeline(snap.Records),
		Projects: groupProjects(snap.Records),
		TopFiles: topFiles(snap.Records, summaryCardSize),
	}
	data.Slowest = slowestTests(snap.Records, summaryCardSize)

	var err error
	if data.TestsJSON, err = scriptPayload(snap.Records); err != nil {
		return nil, fmt.Errorf("failed to marshal test payload: %w", err)
	}
	if data.StatsJSON, err = scriptPayload(snap.Stats); err != nil {
		return nil, fmt.Errorf("failed to marshal stats payload: %w", err)
	}
	if data.TranslationsJSON, err = scriptPayload(table); err != nil {
		return nil, fmt.Errorf("failed to marshal translations payload: %w", err)
	}
	trend := append(append([]float64(nil), trendHistory...), math.Round(snap.Stats.PassRate*10)/10)
	if data.TrendJSON, err = scriptPayload(trend); err != nil {
		return nil, fmt.Errorf("failed to marshal trend payload: %w", err)
	}
	return data, nil
}

// scriptPayload marshals v for direct injection into the report's script
// block. HTML-sensitive characters are escaped so record text can never
// terminate the surrounding <script> element.
func scriptPayload(v any) (template.JS, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return template.JS(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func filterListing(records []types.TestRecord, cfg types.ReporterConfig) []types.TestRecord {
	out := make([]types.TestRecord, 0, len(records))
	for _, r := range records {
		switch r.Status {
		case types.TestStatusPassed:
			if !cfg.ShowPassedTests {
				continue
			}
		case types.TestStatusSkipped:
			if !cfg.ShowSkippedTests {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func buildTimeline(records []types.TestRecord) []TimelineItem {
	sorted := sortByDuration(records)
	var max float64
	if len(sorted) > 0 {
		max = sorted[0].Duration.Seconds()
	}

	items := make([]TimelineItem, 0, len(sorted))
	for _, r := range sorted {
		item := TimelineItem{Record: r}
		if max > 0 {
			item.Percent = r.Duration.Seconds() / max * 100
		}
		items = append(items, item)
	}
	return items
}

func groupProjects(records []types.TestRecord) []ProjectGroup {
	index := make(map[string]int)
	var groups []ProjectGroup
	for _, r := range records {
		name := r.ProjectOrDefault()
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, ProjectGroup{Name: name})
		}
		groups[i].Tests = append(groups[i].Tests, r)
	}
	return groups
}

// topFiles ranks source files by test count, first-seen order breaking ties.
func topFiles(records []types.TestRecord, n int) []GroupCount {
	index := make(map[string]int)
	var counts []GroupCount
	for i := range records {
		name := records[i].FileBasename()
		j, ok := index[name]
		if !ok {
			j = len(counts)
			index[name] = j
			counts = append(counts, GroupCount{Name: name})
		}
		counts[j].Count++
	}
	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func slowestTests(records []types.TestRecord, n int) []types.TestRecord {
	sorted := sortByDuration(records)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func sortByDuration(records []types.TestRecord) []types.TestRecord {
	out := append([]types.TestRecord(nil), records...)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Duration > out[b].Duration
	})
	return out
}
