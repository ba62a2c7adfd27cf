package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"doccomment/internal/adapter/store"
	"doccomment/internal/domain"
)

var parseFrom string

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse comment blocks into the intermediary module tree",
	Long: `Extract and parse the documentation of every source file and save the
module tree to the intermediary JSON file without rendering it.

Examples:
  doccomment parse
  doccomment parse --from extracted.json   # Parse blocks saved by extract`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFrom, "from", "", "read extracted blocks from this JSON file instead of the sources")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		extracted *domain.ExtractedDocs
		err       error
	)
	if parseFrom != "" {
		extracted, err = store.ReadExtracted(resolvePath(parseFrom))
	} else {
		extracted, err = extractDocs()
	}
	if err != nil {
		return err
	}

	result, err := buildDocs(cmd.Context(), extracted, !verbose)
	if err != nil {
		return err
	}

	cfg.Output.WriteIntermediary = true
	if err := saveCheckpoint(result.Docs); err != nil {
		return err
	}

	fmt.Printf("Parsed %d files (%d from cache).\n", len(result.Docs.Tree), result.UnitsCached)
	return nil
}
