// Package host defines the narrow boundary between the reporting engine and
// the test-execution framework driving it. The engine consumes exactly three
// lifecycle calls; everything in this package is the raw, host-shaped payload
// of those calls, before normalization.
package host

import "time"

// RunConfig is the host configuration exposed at run begin.
type RunConfig struct {
	Workers int `json:"workers"`
}

// TestPlan exposes the full planned test count before any test runs.
type TestPlan struct {
	TotalTests int `json:"totalTests"`
}

// RunResult is the host's final verdict delivered at run end.
type RunResult struct {
	Status string `json:"status"`
}

// Step is a raw sub-operation report inside a test completion.
type Step struct {
	Title    string        `json:"title"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
	Category string        `json:"category"`
}

// Attachment is a raw evidence reference inside a test completion.
type Attachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Path        string `json:"path,omitempty"`
}

// Annotation is a raw host marker on a test, e.g. {type: "tag"}.
type Annotation struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ErrorInfo carries the host's error text, possibly containing ANSI escape
// sequences; sanitization happens during normalization.
type ErrorInfo struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// TestCompletion is delivered once per finished attempt. Retries arrive as
// separate completions sharing TestID with distinct Retry values.
type TestCompletion struct {
	TestID    string   `json:"testId"`
	Title     string   `json:"title"`
	TitlePath []string `json:"titlePath"` // describe/group breadcrumb, outermost first
	File      string   `json:"file"`
	Line      int      `json:"line"`
	Column    int      `json:"column"`

	Status    string        `json:"status"`
	Duration  time.Duration `json:"duration"`
	StartTime time.Time     `json:"startTime"`

	Steps       []Step       `json:"steps,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Error       *ErrorInfo   `json:"error,omitempty"`

	Retry   int    `json:"retry"`
	Project string `json:"project,omitempty"`
}

// Reporter is the three-operation lifecycle contract the engine exposes to
// any host binding. Calls are expected in order: one OnRunBegin, any number
// of OnTestComplete, one OnRunEnd.
type Reporter interface {
	OnRunBegin(cfg RunConfig, plan TestPlan) error
	OnTestComplete(ev TestCompletion) error
	OnRunEnd(res RunResult) error
}
