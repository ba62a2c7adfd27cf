package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"doccomment/internal/adapter/fs"
	"doccomment/internal/adapter/markup"
)

var markupOut string

var markupCmd = &cobra.Command{
	Use:   "markup <file>",
	Short: "Render a tag-language document to HTML",
	Long: `Render a document written in the editor tag language (@root, @section,
@list, @item, @table, ...) to HTML. Unknown tags are reported and skipped.

Examples:
  doccomment markup guide.doc              # Print HTML to stdout
  doccomment markup guide.doc -o guide.html`,
	Args: cobra.ExactArgs(1),
	RunE: runMarkup,
}

func init() {
	markupCmd.Flags().StringVarP(&markupOut, "out", "o", "", "output file (default is stdout)")
	rootCmd.AddCommand(markupCmd)
}

func runMarkup(cmd *cobra.Command, args []string) error {
	input, err := fs.ReadFile(args[0])
	if err != nil {
		return err
	}

	out, warnings := markup.Render(input)
	for _, w := range warnings {
		logger.Warn("unknown tag", "line", w.Line, "tag", w.Tag)
	}

	if markupOut == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(markupOut, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", markupOut, err)
	}
	return nil
}
