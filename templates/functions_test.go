package templates

import (
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qa-infra/enterprise-reporter/types"
)

func TestReportTemplateParses(t *testing.T) {
	_, err := template.New("report").Funcs(Funcs()).Parse(ReportHTML())
	require.NoError(t, err)
}

func TestSecondsFormatting(t *testing.T) {
	assert.Equal(t, "2.50", Seconds(2500*time.Millisecond))
	assert.Equal(t, "0.00", Seconds(0))
	assert.Equal(t, "1.5", SecondsShort(1500*time.Millisecond))
}

func TestPercentFormatting(t *testing.T) {
	assert.Equal(t, "75.0", Percent(75.0))
	assert.Equal(t, "33.3", Percent(100.0/3))
	assert.Equal(t, "75", PercentRound(75.4))
	assert.Equal(t, "76", PercentRound(75.5))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"short stays", "abc", 5, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long trimmed", "abcdefgh", 5, "abcde..."},
		{"multibyte safe", "тестова назва", 4, "тест..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Truncate(tc.input, tc.n))
		})
	}
}

func TestStatusSymbol(t *testing.T) {
	assert.Equal(t, "✅", StatusSymbol(types.TestStatusPassed))
	assert.Equal(t, "❌", StatusSymbol(types.TestStatusFailed))
	assert.Equal(t, "⏭️", StatusSymbol(types.TestStatusSkipped))
	assert.Equal(t, "⏱️", StatusSymbol(types.TestStatusTimedOut))
	assert.Equal(t, "❓", StatusSymbol(types.TestStatus("bogus")))
}

func TestNewTestContextBuildsDataURIs(t *testing.T) {
	rec := types.TestRecord{
		Attachments: []types.AttachmentRecord{
			{Name: "shot", ContentType: "image/png", Base64: "aGk="},
			{Name: "unreadable", ContentType: "image/png"}, // no payload
			{Name: "trace", ContentType: "application/zip", Base64: "eHg="},
		},
	}

	ctx := NewTestContext(rec, fakeParent{})
	require.Len(t, ctx.Screenshots, 1)
	assert.Equal(t, "shot", ctx.Screenshots[0].Name)
	assert.Equal(t, template.URL("data:image/png;base64,aGk="), ctx.Screenshots[0].Src)
	assert.True(t, ctx.IncludeScreenshots)
}

type fakeParent struct{}

func (fakeParent) Translations() map[string]string { return map[string]string{} }
func (fakeParent) ScreenshotsEnabled() bool        { return true }
