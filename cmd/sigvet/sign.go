package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sigvet/sigvet/internal/harness"
	"github.com/sigvet/sigvet/internal/manifest"
)

var signCmd = &cobra.Command{
	Use:   "sign <vector-file>",
	Short: "Run one signing document (deterministic schemes)",
	Long: `Sign every test case's message and compare the produced signature byte
for byte against the expected one. Only deterministic schemes such as
RSA PKCS#1 v1.5 have a canonical signature to compare against.

Examples:
  sigvet sign rsa_sig_gen_misc_test.json --algorithm RSA`,
	Args:          cobra.ExactArgs(1),
	RunE:          runSignDocument,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	signAlgorithm  string
	signFormat     string
	signAllowSkips bool
)

func init() {
	flags := signCmd.Flags()
	flags.StringVar(&signAlgorithm, "algorithm", "RSA", "signature algorithm of the vectors")
	flags.StringVar(&signFormat, "format", "RAW", "signature format (RAW, ASN1, P1363)")
	flags.BoolVar(&signAllowSkips, "allow-skipped-keys", false, "tolerate groups with unsupported keys")

	rootCmd.AddCommand(signCmd)
}

func runSignDocument(cmd *cobra.Command, args []string) error {
	entry := manifest.Entry{
		File:              args[0],
		Algorithm:         signAlgorithm,
		Format:            signFormat,
		Operation:         "sign",
		AllowSkippingKeys: signAllowSkips,
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
