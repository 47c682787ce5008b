// Package report renders conformance run results. Each executed document
// produces one Report; a Run aggregates them with totals. Reports stream to
// a JSONL writer during the run, and a whole Run can be encoded as JSON or
// CBOR for downstream tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/sigvet/sigvet/internal/harness"
)

// Report is the outcome of one document.
type Report struct {
	File        string   `json:"file"`
	Algorithm   string   `json:"algorithm"`
	Format      string   `json:"format"`
	Operation   string   `json:"operation"`
	Executed    int      `json:"executed"`
	Errors      int      `json:"errors"`
	SkippedKeys int      `json:"skipped_keys"`
	SkipReasons []string `json:"skip_reasons,omitempty"`
	Passed      bool     `json:"passed"`
	Reason      string   `json:"reason,omitempty"` // verdict failure text
	Timestamp   string   `json:"timestamp"`        // RFC3339 UTC
}

// New builds a report from a finished tally. verdictErr is the verdict
// returned by the executor; nil means the document passed.
func New(file, algorithm string, format harness.Format, op harness.Operation, tally *harness.Tally, verdictErr error) *Report {
	r := &Report{
		File:        file,
		Algorithm:   algorithm,
		Format:      format.String(),
		Operation:   op.String(),
		Executed:    tally.Executed,
		Errors:      tally.Errors,
		SkippedKeys: tally.SkippedKeys,
		SkipReasons: tally.SkipReasons(),
		Passed:      verdictErr == nil,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if verdictErr != nil {
		r.Reason = verdictErr.Error()
	}
	return r
}

// String renders a one-line human-readable summary.
func (r *Report) String() string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	s := fmt.Sprintf("%s %s [%s/%s/%s] executed:%d errors:%d",
		status, r.File, r.Algorithm, r.Format, r.Operation, r.Executed, r.Errors)
	if r.SkippedKeys > 0 {
		s += fmt.Sprintf(" skippedKeys:%d", r.SkippedKeys)
		for _, reason := range r.SkipReasons {
			s += fmt.Sprintf(" [%s]", reason)
		}
	}
	return s
}

// Totals aggregates counters across a run.
type Totals struct {
	Documents   int `json:"documents"`
	Failed      int `json:"failed"`
	Executed    int `json:"executed"`
	Errors      int `json:"errors"`
	SkippedKeys int `json:"skipped_keys"`
}

// Run is a whole conformance run.
type Run struct {
	Reports []*Report `json:"reports"`
	Totals  Totals    `json:"totals"`
}

// Add appends a report and folds it into the totals.
func (run *Run) Add(r *Report) {
	run.Reports = append(run.Reports, r)
	run.Totals.Documents++
	if !r.Passed {
		run.Totals.Failed++
	}
	run.Totals.Executed += r.Executed
	run.Totals.Errors += r.Errors
	run.Totals.SkippedKeys += r.SkippedKeys
}

// EncodeJSON writes the run as indented JSON.
func (run *Run) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

// EncodeCBOR writes the run as CBOR.
func (run *Run) EncodeCBOR(w io.Writer) error {
	return cbor.NewEncoder(w).Encode(run)
}
