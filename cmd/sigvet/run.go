package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvet/sigvet/internal/harness"
	"github.com/sigvet/sigvet/internal/manifest"
	"github.com/sigvet/sigvet/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a suite of test-vector documents",
	Long: `Run every entry of a manifest: each entry names a vector file and the
algorithm, signature format, operation and skip policy to use.

The built-in manifest reproduces the standard signature suite (ECDSA,
RSA PKCS#1 v1.5, DSA, EdDSA across the usual curves and digests).

Examples:
  # Built-in suite
  sigvet run --builtin --vector-dir ./testvectors

  # Custom manifest with a streamed JSONL report
  sigvet run --manifest suite.yaml --report results.jsonl

  # Machine-readable summary of the whole run
  sigvet run --builtin --vector-dir ./testvectors --summary run.json
  sigvet run --builtin --vector-dir ./testvectors --summary run.cbor --summary-format cbor`,
	RunE:          runRun,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	runManifestPath  string
	runBuiltin       bool
	runVectorDir     string
	runReportPath    string
	runSummaryPath   string
	runSummaryFormat string
)

func init() {
	flags := runCmd.Flags()
	flags.StringVar(&runManifestPath, "manifest", "", "YAML manifest of documents to run")
	flags.BoolVar(&runBuiltin, "builtin", false, "run the built-in suite")
	flags.StringVar(&runVectorDir, "vector-dir", "", "directory containing the vector files")
	flags.StringVar(&runReportPath, "report", "", "append per-document reports to this JSONL file")
	flags.StringVar(&runSummaryPath, "summary", "", "write a whole-run summary to this file")
	flags.StringVar(&runSummaryFormat, "summary-format", "json", "summary encoding: json or cbor")

	runCmd.MarkFlagsMutuallyExclusive("manifest", "builtin")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	var m *manifest.Manifest
	switch {
	case runBuiltin:
		m = manifest.Builtin()
	case runManifestPath != "":
		loaded, err := manifest.Load(runManifestPath)
		if err != nil {
			return err
		}
		m = loaded
	default:
		return fmt.Errorf("either --manifest or --builtin is required")
	}
	if runVectorDir != "" {
		m.VectorDir = runVectorDir
	}

	var writer report.Writer = report.NopWriter{}
	if runReportPath != "" {
		fw, err := report.NewFileWriter(runReportPath)
		if err != nil {
			return err
		}
		writer = fw
	}
	defer writer.Close()

	runner := harness.NewRunnerWithLogger(logger)
	var run report.Run
	for _, entry := range m.Entries {
		rep, err := executeEntry(runner, entry, m.VectorDir)
		if err != nil {
			return err
		}
		run.Add(rep)
		if err := writer.Write(rep); err != nil {
			return err
		}
		fmt.Println(rep)
	}

	if runSummaryPath != "" {
		if err := writeSummary(&run, runSummaryPath, runSummaryFormat); err != nil {
			return err
		}
	}

	if run.Totals.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed", run.Totals.Failed, run.Totals.Documents)
	}
	return nil
}

func writeSummary(run *report.Run, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	switch format {
	case "json":
		return run.EncodeJSON(f)
	case "cbor":
		return run.EncodeCBOR(f)
	}
	return fmt.Errorf("unknown summary format: %q", format)
}
