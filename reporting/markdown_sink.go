package reporting

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/qa-infra/enterprise-reporter/types"
)

// MarkdownFileName is the plain-text summary artifact.
const MarkdownFileName = "report.md"

// Number of entries in the Markdown slowest-tests ranking.
const markdownSlowestCount = 10

// MarkdownSink writes a compact summary suitable for chat posts and
// pull-request comments.
type MarkdownSink struct {
	outputDir string
	log       *zap.SugaredLogger
}

func NewMarkdownSink(outputDir string, log *zap.SugaredLogger) *MarkdownSink {
	return &MarkdownSink{outputDir: outputDir, log: log}
}

func (s *MarkdownSink) Name() string { return "markdown" }

func (s *MarkdownSink) Render(data *ReportData) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", data.Config.ReportTitle)
	fmt.Fprintf(&b, "**%s** - %s\n\n", data.Config.CompanyName, data.Config.ProjectName)

	fmt.Fprintf(&b, "## 📊 Summary\n\n")
	fmt.Fprintf(&b, "- **Total Tests**: %d\n", data.Stats.Total)
	fmt.Fprintf(&b, "- **Passed**: ✅ %d (%.1f%%)\n", data.Stats.Passed, data.Stats.PassRate)
	fmt.Fprintf(&b, "- **Failed**: ❌ %d\n", data.Stats.Failed)
	fmt.Fprintf(&b, "- **Skipped**: ⏭️ %d\n", data.Stats.Skipped)
	fmt.Fprintf(&b, "- **Flaky**: 🔄 %d\n", data.Stats.Flaky)
	fmt.Fprintf(&b, "- **Duration**: %.2fs\n", data.Stats.Duration.Seconds())
	fmt.Fprintf(&b, "- **Generated**: %s\n\n", data.Snapshot.GeneratedAt.UTC().Format("2006-01-02T15:04:05.000Z"))

	fmt.Fprintf(&b, "## Failed Tests\n\n")
	if len(data.Failed) == 0 {
		b.WriteString("_No failed tests_\n")
	} else {
		for _, t := range data.Failed {
			fmt.Fprintf(&b, "### ❌ %s\n\n", t.Title)
			fmt.Fprintf(&b, "- **File**: %s:%d\n", t.File, t.Line)
			fmt.Fprintf(&b, "- **Duration**: %.2fs\n", t.Duration.Seconds())
			fmt.Fprintf(&b, "- **Error**: %s\n\n", errorMessage(t.Error))
		}
	}

	fmt.Fprintf(&b, "\n## Performance\n\n")
	fmt.Fprintf(&b, "### Slowest Tests\n\n")
	for i, t := range slowestTests(data.Snapshot.Records, markdownSlowestCount) {
		fmt.Fprintf(&b, "%d. %s - %.2fs\n", i+1, t.Title, t.Duration.Seconds())
	}

	if err := writeFileAtomic(s.outputDir, MarkdownFileName, []byte(b.String())); err != nil {
		return err
	}
	s.log.Infow("Wrote Markdown summary",
		"path", filepath.Join(s.outputDir, MarkdownFileName))
	return nil
}

func errorMessage(e *types.TestError) string {
	if e == nil || e.Message == "" {
		return "N/A"
	}
	return e.Message
}
