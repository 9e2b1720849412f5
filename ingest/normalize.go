// Package ingest converts raw host completion events into canonical test
// records. Normalization is a pure transformation apart from attachment
// reads; it never fails — malformed events yield best-effort records.
package ingest

import (
	"encoding/base64"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/acarl005/stripansi"
	"go.uber.org/zap"

	"github.com/qa-infra/enterprise-reporter/host"
	"github.com/qa-infra/enterprise-reporter/types"
)

// stripansi handles SGR color codes; this catches the remaining CSI and
// single-character escape sequences test frameworks emit.
var csiRegex = regexp.MustCompile(`[\x1b\x9b][[()#;?]*(?:[0-9]{1,4}(?:;[0-9]{0,4})*)?[0-9A-ORZcf-nqry=><]`)

// Normalizer turns host.TestCompletion events into types.TestRecord.
type Normalizer struct {
	cfg types.ReporterConfig
	log *zap.SugaredLogger
}

// New creates a normalizer bound to the run's configuration.
func New(cfg types.ReporterConfig, log *zap.SugaredLogger) *Normalizer {
	return &Normalizer{cfg: cfg, log: log}
}

// Normalize builds the canonical record for one completed attempt. It never
// returns an error; recoverable faults (unreadable attachments, unknown
// status strings) degrade with a warning log.
func (n *Normalizer) Normalize(ev host.TestCompletion) types.TestRecord {
	status, known := types.ParseStatus(ev.Status)
	if !known {
		n.log.Warnw("Unknown test status reported by host", "test", ev.Title, "status", ev.Status)
	}

	duration := ev.Duration
	if duration < 0 {
		duration = 0
	}

	rec := types.TestRecord{
		ID:          fmt.Sprintf("%s-%d", ev.TestID, ev.Retry),
		Title:       ev.Title,
		FullTitle:   strings.Join(ev.TitlePath, " > "),
		File:        ev.File,
		Line:        ev.Line,
		Column:      ev.Column,
		Status:      status,
		Duration:    duration,
		StartTime:   ev.StartTime,
		EndTime:     ev.StartTime.Add(duration),
		Steps:       n.normalizeSteps(ev),
		Annotations: normalizeAnnotations(ev.Annotations),
		Attachments: n.normalizeAttachments(ev),
		Retries:     ev.Retry,
		Browser:     ev.Project,
		Project:     ev.Project,
	}

	if ev.Error != nil {
		rec.Error = &types.TestError{
			Message: StripANSI(ev.Error.Message),
			Stack:   StripANSI(ev.Error.Stack),
		}
	}

	rec.Tags = extractTags(ev.Annotations)
	rec.Category = deriveCategory(rec.Tags, n.cfg.TestCategories)
	return rec
}

// normalizeSteps derives step start/end times by accumulating durations
// from the test's recorded start.
func (n *Normalizer) normalizeSteps(ev host.TestCompletion) []types.StepRecord {
	steps := make([]types.StepRecord, 0, len(ev.Steps))
	current := ev.StartTime
	for _, s := range ev.Steps {
		d := s.Duration
		if d < 0 {
			d = 0
		}
		end := current.Add(d)
		steps = append(steps, types.StepRecord{
			Title:     s.Title,
			Duration:  d,
			Error:     StripANSI(s.Error),
			Category:  s.Category,
			StartTime: current,
			EndTime:   end,
		})
		current = end
	}
	return steps
}

// normalizeAttachments copies identifying fields and inlines screenshot
// payloads when configured. A read failure leaves the record without a
// payload and never aborts processing.
func (n *Normalizer) normalizeAttachments(ev host.TestCompletion) []types.AttachmentRecord {
	attachments := make([]types.AttachmentRecord, 0, len(ev.Attachments))
	for _, a := range ev.Attachments {
		rec := types.AttachmentRecord{
			Name:        a.Name,
			ContentType: a.ContentType,
			Path:        a.Path,
		}
		if n.cfg.IncludeScreenshots && a.Path != "" && types.IsImageContentType(a.ContentType) {
			data, err := os.ReadFile(a.Path)
			if err != nil {
				n.log.Warnw("Could not read screenshot", "path", a.Path, "err", err)
			} else {
				rec.Base64 = base64.StdEncoding.EncodeToString(data)
			}
		}
		attachments = append(attachments, rec)
	}
	return attachments
}

func normalizeAnnotations(anns []host.Annotation) []types.Annotation {
	out := make([]types.Annotation, 0, len(anns))
	for _, a := range anns {
		out = append(out, types.Annotation{Type: a.Type, Description: a.Description})
	}
	return out
}

// extractTags collects descriptions of annotations with type "tag".
func extractTags(anns []host.Annotation) []string {
	tags := make([]string, 0)
	for _, a := range anns {
		if a.Type == "tag" {
			tags = append(tags, a.Description)
		}
	}
	return tags
}

// deriveCategory matches tags case-insensitively against the configured
// vocabulary; first match wins, otherwise the default category.
func deriveCategory(tags []string, vocabulary []string) string {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, cat := range vocabulary {
			if lower == strings.ToLower(cat) {
				return lower
			}
		}
	}
	return types.DefaultCategory
}

// StripANSI removes ANSI color and CSI escape sequences from host-supplied
// text. HTML escaping is deliberately left to the renderers.
func StripANSI(s string) string {
	if s == "" {
		return ""
	}
	return csiRegex.ReplaceAllString(stripansi.Strip(s), "")
}
