package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvet/sigvet/internal/vector"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <vector-file>",
	Short: "Show a document's metadata without running it",
	Long: `Print the declared algorithm, schema, test counts and per-group key
parameters of a vector file.

Examples:
  sigvet inspect ecdsa_test.json
  sigvet inspect ecdsa_test.json --json`,
	Args:          cobra.ExactArgs(1),
	RunE:          runInspect,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var inspectJSON bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "print the parsed document as JSON")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := vector.Load(args[0])
	if err != nil {
		return err
	}

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Printf("Algorithm:      %s\n", doc.Algorithm)
	fmt.Printf("Schema:         %s\n", doc.Schema)
	fmt.Printf("Declared tests: %d\n", doc.NumberOfTests)
	fmt.Printf("Groups:         %d\n", len(doc.TestGroups))
	fmt.Printf("Cases:          %d\n", doc.CaseCount())
	for i, g := range doc.TestGroups {
		line := fmt.Sprintf("  group %d: %d cases", i+1, len(g.Tests))
		if g.SHA != "" {
			line += ", sha " + g.SHA
		}
		if curve := g.Curve(); curve != "" {
			line += ", curve " + curve
		}
		fmt.Println(line)
	}
	return nil
}
