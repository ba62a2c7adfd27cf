package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract comment blocks without parsing them",
	Long: `Extract the raw /** ... */ comment blocks of every source file and save them
to the intermediary JSON file (doccomments.json unless configured otherwise).

Examples:
  doccomment extract
  doccomment extract -s lib -r`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	docs, err := extractDocs()
	if err != nil {
		return err
	}

	// Extraction is only useful with its checkpoint.
	cfg.Output.WriteIntermediary = true
	if err := saveCheckpoint(docs); err != nil {
		return err
	}

	blocks := 0
	for _, unit := range docs.Tree {
		blocks += len(unit)
	}
	fmt.Printf("Extracted %d comment blocks from %d files.\n", blocks, len(docs.Tree))
	return nil
}
