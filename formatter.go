package reporter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/qa-infra/enterprise-reporter/i18n"
	"github.com/qa-infra/enterprise-reporter/templates"
	"github.com/qa-infra/enterprise-reporter/types"
	"github.com/qa-infra/enterprise-reporter/ui"
)

// printStartBanner frames the run header the way the interactive report
// frames its own: title, project, planned test count and worker count.
func printStartBanner(w io.Writer, cfg types.ReporterConfig, totalTests, workers int) {
	banner := ui.NewBanner().
		AddLine(fmt.Sprintf("🚀 %s", cfg.ReportTitle)).
		AddSeparator().
		AddLine(fmt.Sprintf("📦 Project: %s", cfg.ProjectName)).
		AddLine(fmt.Sprintf("🧪 Total Tests: %d", totalTests)).
		AddLine(fmt.Sprintf("👷 Workers: %d", workers))
	fmt.Fprintf(w, "\n%s\n", banner.Render())
}

// printSummaryBanner prints the localized end-of-run summary box.
func printSummaryBanner(w io.Writer, t i18n.Table, stats types.RunStats) {
	banner := ui.NewBanner().
		AddLine(fmt.Sprintf("📊 %s", t["summary"])).
		AddSeparator().
		AddLine(fmt.Sprintf("%s: %d", t["totalTests"], stats.Total)).
		AddLine(fmt.Sprintf("✅ %s: %d", t["passed"], stats.Passed)).
		AddLine(fmt.Sprintf("❌ %s: %d", t["failed"], stats.Failed)).
		AddLine(fmt.Sprintf("⏭️  %s: %d", t["skipped"], stats.Skipped)).
		AddLine(fmt.Sprintf("🔄 %s: %d", t["flaky"], stats.Flaky)).
		AddLine(fmt.Sprintf("⏱️  %s: %.2fs", t["duration"], stats.Duration.Seconds())).
		AddLine(fmt.Sprintf("📈 %s: %.1f%%", t["passRate"], stats.PassRate))
	fmt.Fprintf(w, "\n%s\n", banner.Render())
}

// formatProjectTable prints the per-project result table.
func formatProjectTable(w io.Writer, snap *types.Snapshot) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle(fmt.Sprintf("Test Results by Project (%.2fs)", snap.Stats.Duration.Seconds()))

	tw.AppendHeader(table.Row{
		"Project", "Tests", "Passed", "Failed", "Skipped", "Flaky", "Status",
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Project", WidthMax: 40, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Flaky", Align: text.AlignRight},
	})

	for _, name := range projectOrder(snap) {
		stats := types.ComputeStats(snap.ByProject[name], 0)
		tw.AppendRow(table.Row{
			name,
			stats.Total,
			stats.Passed,
			stats.Failed + stats.TimedOut,
			stats.Skipped,
			stats.Flaky,
			resultString(stats.Status()),
		})
	}
	tw.AppendFooter(table.Row{
		"TOTAL",
		snap.Stats.Total,
		snap.Stats.Passed,
		snap.Stats.Failed + snap.Stats.TimedOut,
		snap.Stats.Skipped,
		snap.Stats.Flaky,
		resultString(snap.Stats.Status()),
	})
	tw.Render()
}

// formatFailureDetails lists each failed test with its error text as
// tree-connected detail lines.
func formatFailureDetails(w io.Writer, t i18n.Table, snap *types.Snapshot) {
	failed := snap.FailedTests()
	if len(failed) == 0 {
		return
	}

	fmt.Fprintf(w, "\n❌ %s:\n", t["failedTests"])
	for i, rec := range failed {
		branch := ui.TreeBranch
		detail := ui.TreeContinue
		if i == len(failed)-1 {
			branch = ui.TreeLastBranch
			detail = "    "
		}
		fmt.Fprintf(w, "%s%s (%s:%d)\n", branch, rec.FullTitle, rec.FileBasename(), rec.Line)
		if rec.Error != nil && rec.Error.Message != "" {
			fmt.Fprintf(w, "%s%s%s\n", detail, ui.TreeLastBranch, rec.Error.Message)
		}
	}
}

// projectOrder recovers a stable project ordering from the snapshot's
// record sequence.
func projectOrder(snap *types.Snapshot) []string {
	seen := make(map[string]bool, len(snap.ByProject))
	var order []string
	for _, rec := range snap.Records {
		name := rec.ProjectOrDefault()
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}
	return order
}

// resultString returns a glyphed status cell for the console table.
func resultString(status types.TestStatus) string {
	switch status {
	case types.TestStatusPassed:
		return templates.StatusSymbol(types.TestStatusPassed) + " pass"
	case types.TestStatusSkipped:
		return "- skip"
	default:
		return templates.StatusSymbol(types.TestStatusFailed) + " fail"
	}
}
