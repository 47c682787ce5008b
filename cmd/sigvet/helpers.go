package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sigvet/sigvet/internal/harness"
	"github.com/sigvet/sigvet/internal/manifest"
	"github.com/sigvet/sigvet/internal/report"
	"github.com/sigvet/sigvet/internal/vector"
)

// resolveVectorPath joins a manifest entry path with the vector directory.
func resolveVectorPath(file, vectorDir string) string {
	if filepath.IsAbs(file) || vectorDir == "" {
		return file
	}
	return filepath.Join(vectorDir, file)
}

// executeEntry loads and runs one manifest entry. The returned report
// carries the verdict; a non-nil error means the entry could not be
// executed at all (unreadable file, bad parameters).
func executeEntry(runner *harness.Runner, entry manifest.Entry, vectorDir string) (*report.Report, error) {
	path := resolveVectorPath(entry.File, vectorDir)

	doc, err := vector.Load(path)
	if err != nil {
		return nil, err
	}
	format, err := harness.ParseFormat(entry.Format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.File, err)
	}
	op, err := harness.ParseOperation(entry.Operation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.File, err)
	}

	algorithm := strings.ToUpper(entry.Algorithm)
	opts := harness.Options{
		File:              filepath.Base(path),
		AllowSkippingKeys: entry.AllowSkippingKeys,
	}

	var tally *harness.Tally
	var verdict error
	if op == harness.OpSign {
		tally, verdict = runner.Sign(doc, algorithm, format, opts)
	} else {
		tally, verdict = runner.Verify(doc, algorithm, format, opts)
	}
	return report.New(opts.File, algorithm, format, op, tally, verdict), nil
}
