package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigvet/sigvet/internal/harness"
	"github.com/sigvet/sigvet/internal/manifest"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <vector-file>",
	Short: "Run one verification document",
	Long: `Verify every test case of a single vector file and report the outcome.

Examples:
  sigvet verify ecdsa_secp256r1_sha256_test.json --algorithm ECDSA --format ASN1
  sigvet verify ecdsa_test.json --algorithm ECDSA --format ASN1 --allow-skipped-keys
  sigvet verify rsa_signature_2048_sha256_test.json --algorithm RSA --format RAW`,
	Args:          cobra.ExactArgs(1),
	RunE:          runVerifyDocument,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verifyAlgorithm  string
	verifyFormat     string
	verifyAllowSkips bool
)

func init() {
	flags := verifyCmd.Flags()
	flags.StringVar(&verifyAlgorithm, "algorithm", "", "signature algorithm of the vectors (ECDSA, RSA, DSA, EDDSA)")
	flags.StringVar(&verifyFormat, "format", "ASN1", "signature format (RAW, ASN1, P1363)")
	flags.BoolVar(&verifyAllowSkips, "allow-skipped-keys", false, "tolerate groups with unsupported keys or curves")

	_ = verifyCmd.MarkFlagRequired("algorithm")

	rootCmd.AddCommand(verifyCmd)
}

func runVerifyDocument(cmd *cobra.Command, args []string) error {
	entry := manifest.Entry{
		File:              args[0],
		Algorithm:         verifyAlgorithm,
		Format:            verifyFormat,
		Operation:         "verify",
		AllowSkippingKeys: verifyAllowSkips,
	}
	rep, err := executeEntry(harness.NewRunnerWithLogger(logger), entry, "")
	if err != nil {
		return err
	}
	fmt.Println(rep)
	if !rep.Passed {
		return fmt.Errorf("%s: %s", rep.File, rep.Reason)
	}
	return nil
}
