package reporting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// JSONFileName is the machine-readable snapshot artifact.
const JSONFileName = "report.json"

// JSONSink writes the full run snapshot as indented JSON. Unlike the
// script payloads embedded in the HTML report, this artifact keeps text
// verbatim so downstream consumers see exactly what the host reported.
type JSONSink struct {
	outputDir string
	log       *zap.SugaredLogger
}

func NewJSONSink(outputDir string, log *zap.SugaredLogger) *JSONSink {
	return &JSONSink{outputDir: outputDir, log: log}
}

func (s *JSONSink) Name() string { return "json" }

func (s *JSONSink) Render(data *ReportData) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data.Snapshot); err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	if err := writeFileAtomic(s.outputDir, JSONFileName, buf.Bytes()); err != nil {
		return err
	}
	s.log.Infow("Wrote JSON report",
		"path", filepath.Join(s.outputDir, JSONFileName),
		"tests", len(data.Snapshot.Records))
	return nil
}
