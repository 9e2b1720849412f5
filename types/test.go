package types

import (
	"path/filepath"
	"time"
)

// TestStatus represents the possible outcomes of a test attempt as reported
// by the host framework.
type TestStatus string

const (
	TestStatusPassed   TestStatus = "passed"
	TestStatusFailed   TestStatus = "failed"
	TestStatusSkipped  TestStatus = "skipped"
	TestStatusTimedOut TestStatus = "timedOut"
)

// ParseStatus maps a raw host status string onto a TestStatus. The second
// return value reports whether the input was one of the known statuses.
func ParseStatus(s string) (TestStatus, bool) {
	switch TestStatus(s) {
	case TestStatusPassed, TestStatusFailed, TestStatusSkipped, TestStatusTimedOut:
		return TestStatus(s), true
	default:
		return TestStatusFailed, false
	}
}

// DefaultCategory is assigned when none of a test's tags match the
// configured category vocabulary.
const DefaultCategory = "other"

// TestError holds a sanitized (ANSI-stripped) error from a failed attempt.
type TestError struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// StepRecord is one sub-operation inside a test. Start and end times are
// derived by accumulating prior step durations from the test's start time,
// so they are monotonically non-decreasing in sequence order.
type StepRecord struct {
	Title     string        `json:"title"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
	Category  string        `json:"category"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
}

// AttachmentRecord is evidence captured during a test. Base64 is populated
// only for image content-types when screenshot inlining is enabled and the
// source file was readable.
type AttachmentRecord struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Path        string `json:"path,omitempty"`
	Base64      string `json:"base64,omitempty"`
}

// Annotation is a host-supplied marker on a test, e.g. {type: "tag"}.
type Annotation struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// TestRecord captures one execution attempt of one test case. Records are
// created once by the normalizer and never mutated afterwards.
type TestRecord struct {
	ID        string `json:"id"` // base test identity + retry index
	Title     string `json:"title"`
	FullTitle string `json:"fullTitle"` // breadcrumb of group titles
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`

	Status    TestStatus    `json:"status"`
	Duration  time.Duration `json:"duration"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Error     *TestError    `json:"error,omitempty"`

	Steps       []StepRecord       `json:"steps"`
	Annotations []Annotation       `json:"annotations"`
	Attachments []AttachmentRecord `json:"attachments"`

	Retries  int      `json:"retries"`
	Browser  string   `json:"browser,omitempty"`
	Project  string   `json:"project,omitempty"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// FileBasename returns the basename of the record's source file, the key
// used by the per-file grouping index.
func (r *TestRecord) FileBasename() string {
	return filepath.Base(r.File)
}

// ProjectOrDefault returns the grouping bucket for the record's project,
// "default" when the host supplied none.
func (r *TestRecord) ProjectOrDefault() string {
	if r.Project == "" {
		return "default"
	}
	return r.Project
}

// IsFlaky reports whether the attempt passed only after at least one retry.
func (r *TestRecord) IsFlaky() bool {
	return r.Status == TestStatusPassed && r.Retries > 0
}

// Screenshots returns the record's image attachments.
func (r *TestRecord) Screenshots() []AttachmentRecord {
	var out []AttachmentRecord
	for _, a := range r.Attachments {
		if isImageContentType(a.ContentType) {
			out = append(out, a)
		}
	}
	return out
}

func isImageContentType(ct string) bool {
	return len(ct) >= 6 && ct[:6] == "image/"
}

// IsImageContentType reports whether a content-type denotes an inlineable
// image attachment.
func IsImageContentType(ct string) bool {
	return isImageContentType(ct)
}
