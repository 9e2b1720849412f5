package reporting

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/qa-infra/enterprise-reporter/templates"
)

// HTMLFileName is the interactive report artifact.
const HTMLFileName = "index.html"

// Sink renders one artifact from the prepared report view.
type Sink interface {
	Name() string
	Render(data *ReportData) error
}

// HTMLSink renders the interactive HTML report.
type HTMLSink struct {
	outputDir string
	tmpl      *template.Template
	log       *zap.SugaredLogger
}

// NewHTMLSink parses the embedded report template and returns a sink
// writing into outputDir.
func NewHTMLSink(outputDir string, log *zap.SugaredLogger) (*HTMLSink, error) {
	tmpl, err := template.New("report").Funcs(templates.Funcs()).Parse(templates.ReportHTML())
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLSink{
		outputDir: outputDir,
		tmpl:      tmpl,
		log:       log,
	}, nil
}

func (s *HTMLSink) Name() string { return "html" }

// Render executes the report template into a buffer and writes it
// atomically, so a failed render never clobbers a previous report.
func (s *HTMLSink) Render(data *ReportData) error {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}
	if err := writeFileAtomic(s.outputDir, HTMLFileName, buf.Bytes()); err != nil {
		return err
	}
	s.log.Infow("Wrote HTML report",
		"path", filepath.Join(s.outputDir, HTMLFileName),
		"bytes", buf.Len())
	return nil
}
