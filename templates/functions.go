// Package templates embeds the HTML report template and exposes the
// function map it is parsed with.
package templates

import (
	_ "embed"
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/qa-infra/enterprise-reporter/types"
)

//go:embed report.html.tmpl
var reportHTML string

// ReportHTML returns the embedded report template source.
func ReportHTML() string {
	return reportHTML
}

// TestContext is the data passed to the shared "testItem" sub-template:
// one record plus the report-level strings and options it needs.
type TestContext struct {
	Rec                types.TestRecord
	T                  map[string]string
	IncludeScreenshots bool
	Screenshots        []ScreenshotView
}

// ScreenshotView is an inlined image attachment ready for embedding.
// The data URI is built here because the template engine rejects the
// data: scheme in untrusted src attributes.
type ScreenshotView struct {
	Name string
	Src  template.URL
}

// testParent is the subset of the root template context the testItem
// sub-template needs. The renderer's view struct satisfies it.
type testParent interface {
	Translations() map[string]string
	ScreenshotsEnabled() bool
}

// Funcs returns the template function map used to render the report.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"seconds":      Seconds,
		"secondsShort": SecondsShort,
		"percent":      Percent,
		"percentRound": PercentRound,
		"basename":     filepath.Base,
		"truncate":     Truncate,
		"statusSymbol": StatusSymbol,
		"safeCSS":      SafeCSS,
		"testCtx":      NewTestContext,
	}
}

// NewTestContext builds the sub-template context for one record.
func NewTestContext(rec types.TestRecord, parent testParent) TestContext {
	var shots []ScreenshotView
	for _, a := range rec.Screenshots() {
		if a.Base64 == "" {
			continue
		}
		shots = append(shots, ScreenshotView{
			Name: a.Name,
			Src:  template.URL("data:" + a.ContentType + ";base64," + a.Base64),
		})
	}
	return TestContext{
		Rec:                rec,
		T:                  parent.Translations(),
		IncludeScreenshots: parent.ScreenshotsEnabled(),
		Screenshots:        shots,
	}
}

// Seconds formats a duration as seconds with two decimal places.
func Seconds(d time.Duration) string {
	return formatFloat(d.Seconds(), "%.2f")
}

// SecondsShort formats a duration as seconds with one decimal place.
func SecondsShort(d time.Duration) string {
	return formatFloat(d.Seconds(), "%.1f")
}

// Percent formats a ratio already scaled to 0..100 with one decimal place.
func Percent(v float64) string {
	return formatFloat(v, "%.1f")
}

// PercentRound formats a 0..100 value with no decimal places.
func PercentRound(v float64) string {
	return formatFloat(v, "%.0f")
}

// Truncate shortens s to at most n runes, appending "..." when trimmed.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// StatusSymbol returns the console glyph for a test status.
func StatusSymbol(st types.TestStatus) string {
	switch st {
	case types.TestStatusPassed:
		return "✅"
	case types.TestStatusFailed:
		return "❌"
	case types.TestStatusSkipped:
		return "⏭️"
	case types.TestStatusTimedOut:
		return "⏱️"
	default:
		return "❓"
	}
}

// SafeCSS marks a config-supplied value as trusted CSS so the template
// engine keeps it verbatim inside the style block.
func SafeCSS(s string) template.CSS {
	return template.CSS(s)
}

func formatFloat(v float64, verb string) string {
	return fmt.Sprintf(verb, v)
}
