// Command sigvet checks signature implementations against JSON test-vector
// files: it verifies signatures with known-good and crafted-invalid inputs
// and, for deterministic schemes, compares generated signatures byte for
// byte.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var verbose bool

// logger is configured before any command runs.
var logger zerolog.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sigvet",
	Short: "Signature conformance harness for JSON test vectors",
	Long: `sigvet drives a signature implementation through externally supplied
JSON test vectors and checks that every observed outcome matches the
expected one.

Supported primitives:
  ECDSA (ASN.1 and P1363 signatures), RSA PKCS#1 v1.5 (verify and
  deterministic generation), DSA (ASN.1 and P1363), Ed25519 and Ed448.

Vectors for unsupported parameter sets (e.g. uncommon curves) can be
skipped per document instead of failing the run.

Examples:
  # Run the built-in suite against a directory of vector files
  sigvet run --builtin --vector-dir ./testvectors

  # Run a custom manifest and keep a CBOR summary
  sigvet run --manifest suite.yaml --summary run.cbor --summary-format cbor

  # Verify one document
  sigvet verify ecdsa_secp256r1_sha256_test.json --algorithm ECDSA --format ASN1

  # Check deterministic signature generation
  sigvet sign rsa_sig_gen_misc_test.json --algorithm RSA`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped groups and per-case details")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
