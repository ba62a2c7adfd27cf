package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"doccomment/internal/adapter/render"
	"doccomment/internal/adapter/store"
	"doccomment/internal/domain"
	"doccomment/internal/port"
	"doccomment/internal/usecase"
)

var (
	outPath      string
	format       string
	generateFrom string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate human-readable documentation (default)",
	Long: `Extract, parse and render the documentation of every source file.

Examples:
  doccomment generate                      # Write API.md
  doccomment generate -f html -o api.html
  doccomment generate --from doccomments.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default is API.md)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: md, html or json")
	cmd.Flags().StringVar(&generateFrom, "from", "", "render a module tree saved by parse instead of the sources")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("out") {
		cfg.Output.Out = outPath
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}

	renderer, err := render.New(cfg.Output.Format)
	if err != nil {
		return err
	}

	docs, err := loadBuilt(cmd)
	if err != nil {
		return err
	}

	generateUC := usecase.NewGenerateUseCase(renderer, logger)
	result, err := generateUC.Generate(docs, resolvePath(cfg.Output.Out), port.RenderOptions{
		Footer: cfg.Output.Footer,
	})
	if err != nil {
		return err
	}

	tree, err := render.JSONRenderer{}.Render(docs, port.RenderOptions{})
	if err != nil {
		return err
	}
	fmt.Printf("Built %s @ %s from JSON @ %s.\n", cfg.Output.Out, result.Size(), humanize.Bytes(uint64(len(tree))))
	return nil
}

func loadBuilt(cmd *cobra.Command) (*domain.BuiltDocs, error) {
	if generateFrom != "" {
		return store.ReadBuilt(resolvePath(generateFrom))
	}

	extracted, err := extractDocs()
	if err != nil {
		return nil, err
	}
	if err := saveCheckpoint(extracted); err != nil {
		return nil, err
	}

	result, err := buildDocs(cmd.Context(), extracted, !verbose)
	if err != nil {
		return nil, err
	}
	if err := saveCheckpoint(result.Docs); err != nil {
		return nil, err
	}
	return result.Docs, nil
}
