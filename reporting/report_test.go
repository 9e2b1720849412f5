package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-infra/enterprise-reporter/types"
)

func fixtureSnapshot() *types.Snapshot {
	records := []types.TestRecord{
		{
			ID: "a-0", Title: "logs in", FullTitle: "Login > logs in",
			File: "auth.spec.ts", Line: 10,
			Status: types.TestStatusPassed, Duration: 2 * time.Second,
			Project: "chromium", Category: "smoke",
		},
		{
			ID: "b-0", Title: "adds to cart", FullTitle: "Cart > adds to cart",
			File: "cart.spec.ts", Line: 20,
			Status: types.TestStatusFailed, Duration: 4 * time.Second,
			Error:   &types.TestError{Message: "expected 2 items, got 1"},
			Project: "chromium", Category: "e2e",
		},
		{
			ID: "c-0", Title: "shows banner", FullTitle: "Home > shows banner",
			File: "home.spec.ts", Line: 5,
			Status: types.TestStatusSkipped, Duration: 0,
			Project: "firefox", Category: "other",
		},
	}

	cfg := types.ReporterConfig{
		OutputDir:           "out",
		ReportTitle:         "Test Execution Report",
		CompanyName:         "Acme",
		ProjectName:         "Storefront",
		ShowPassedTests:     true,
		ShowSkippedTests:    true,
		IncludeScreenshots:  true,
		PrimaryColor:        "#667eea",
		ShowEnvironmentInfo: true,
		TestCategories:      []string{"smoke", "regression", "integration", "e2e"},
		Language:            "en",
	}

	byProject := map[string][]types.TestRecord{
		"chromium": {records[0], records[1]},
		"firefox":  {records[2]},
	}
	byFile := map[string][]types.TestRecord{
		"auth.spec.ts": {records[0]},
		"cart.spec.ts": {records[1]},
		"home.spec.ts": {records[2]},
	}

	return &types.Snapshot{
		Records:   records,
		Stats:     types.ComputeStats(records, 7*time.Second),
		ByProject: byProject,
		ByFile:    byFile,
		Environment: types.EnvironmentInfo{
			OS: "linux", GoVersion: "go1.22", ReporterVersion: "1.0.0",
			Timestamp: "2026-02-10T12:00:00Z", Duration: 7 * time.Second, Workers: 4,
		},
		Config:      cfg,
		GeneratedAt: time.Date(2026, 2, 10, 12, 0, 7, 0, time.UTC),
	}
}

func TestBuildReportData(t *testing.T) {
	data, err := BuildReportData(fixtureSnapshot())
	require.NoError(t, err)

	assert.Equal(t, "en", data.Lang)
	assert.Len(t, data.Listing, 3)
	require.Len(t, data.Failed, 1)
	assert.Equal(t, "adds to cart", data.Failed[0].Title)

	require.Len(t, data.Timeline, 3)
	assert.Equal(t, "b-0", data.Timeline[0].Record.ID)
	assert.InDelta(t, 100.0, data.Timeline[0].Percent, 0.001)
	assert.InDelta(t, 50.0, data.Timeline[1].Percent, 0.001)

	require.Len(t, data.Projects, 2)
	assert.Equal(t, "chromium", data.Projects[0].Name)
	assert.Len(t, data.Projects[0].Tests, 2)

	require.Len(t, data.Slowest, 3)
	assert.Equal(t, "b-0", data.Slowest[0].ID)
}

func TestBuildReportDataHonorsListingOptions(t *testing.T) {
	snap := fixtureSnapshot()
	snap.Config.ShowPassedTests = false
	snap.Config.ShowSkippedTests = false

	data, err := BuildReportData(snap)
	require.NoError(t, err)

	require.Len(t, data.Listing, 1)
	assert.Equal(t, types.TestStatusFailed, data.Listing[0].Status)
	// The failed tab is unaffected by listing options.
	assert.Len(t, data.Failed, 1)
}

func TestBuildReportDataTrend(t *testing.T) {
	data, err := BuildReportData(fixtureSnapshot())
	require.NoError(t, err)

	// 1/3 passed → 33.3 after rounding to one decimal.
	assert.Equal(t, "[85,88,90,87,33.3]", string(data.TrendJSON))
}

func TestScriptPayloadEscapesHTML(t *testing.T) {
	payload, err := scriptPayload(map[string]string{"msg": "</script><b>&"})
	require.NoError(t, err)

	s := string(payload)
	assert.NotContains(t, s, "</script>")
	assert.NotContains(t, s, "<b>")
	assert.Contains(t, s, `\u003c`)
	assert.Contains(t, s, `\u0026`)
}

func TestTopFilesTieBreak(t *testing.T) {
	records := []types.TestRecord{
		{File: "b.ts"}, {File: "a.ts"}, {File: "c.ts"},
		{File: "b.ts"}, {File: "a.ts"}, {File: "c.ts"}, {File: "c.ts"},
	}

	top := topFiles(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, GroupCount{Name: "c.ts", Count: 3}, top[0])
	assert.Equal(t, GroupCount{Name: "b.ts", Count: 2}, top[1])
}

func TestBuildTimelineEmpty(t *testing.T) {
	items := buildTimeline(nil)
	assert.Empty(t, items)
}

func TestBuildTimelineZeroDurations(t *testing.T) {
	items := buildTimeline([]types.TestRecord{{ID: "a"}, {ID: "b"}})
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Zero(t, item.Percent)
	}
}

func TestGroupProjectsFirstSeenOrder(t *testing.T) {
	records := []types.TestRecord{
		{ID: "1", Project: "firefox"},
		{ID: "2"}, // default bucket
		{ID: "3", Project: "firefox"},
		{ID: "4", Project: "chromium"},
	}

	groups := groupProjects(records)
	require.Len(t, groups, 3)
	assert.Equal(t, "firefox", groups[0].Name)
	assert.Equal(t, "default", groups[1].Name)
	assert.Equal(t, "chromium", groups[2].Name)
	assert.Len(t, groups[0].Tests, 2)
}

func TestReportDataViewHelpers(t *testing.T) {
	data, err := BuildReportData(fixtureSnapshot())
	require.NoError(t, err)

	assert.True(t, data.ScreenshotsEnabled())
	assert.NotEmpty(t, data.Translations()["noFailedTests"])
}
