package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"doccomment/config"
)

var (
	cfgFile   string
	cfg       *config.Config
	rootDir   string
	logger    *slog.Logger
	verbose   bool
	name      string
	version   string
	sourceDir string
	patterns  []string
	recursive bool
	saveJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "doccomment",
	Short: "Generate API documentation from doc comments",
	Long: `doccomment extracts @module, @method, @arg and related tags from /** ... */
comment blocks, folds them into one module tree per source file and renders
the tree as Markdown, HTML or JSON.

Example usage:
  doccomment                         # Write API.md from ./src
  doccomment -s lib -r -o docs/API.md
  doccomment extract -i              # Save raw comment blocks to doccomments.json
  doccomment serve                   # Preview at http://127.0.0.1:8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		// A missing .env is fine.
		_ = godotenv.Load(filepath.Join(rootDir, ".env"))

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.ApplyEnv()
		applyFlags(cmd)

		logger, err = newLogger(cfg.Logging, verbose)
		return err
	},
	RunE: runGenerate,
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("name") {
		cfg.Project.Name = name
	}
	if flags.Changed("version") {
		cfg.Project.Version = version
	}
	if flags.Changed("source") {
		cfg.Source.Dir = sourceDir
	}
	if flags.Changed("pattern") {
		cfg.Source.Includes = patterns
	}
	if flags.Changed("recursive") {
		cfg.Source.Recursive = recursive
	}
	if flags.Changed("intermediary") {
		cfg.Output.WriteIntermediary = saveJSON
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("doccomment failed", "error", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./doccomment.yaml)")
	flags.StringVarP(&rootDir, "dir", "d", "", "project directory (default is current directory)")
	flags.StringVarP(&name, "name", "n", "", "project name (default is the name in package.json)")
	flags.StringVarP(&version, "version", "v", "", "documentation version (default is the version in package.json)")
	flags.StringVarP(&sourceDir, "source", "s", "", "directory to search for source files (default is src)")
	flags.StringSliceVarP(&patterns, "pattern", "t", nil, "glob selecting source files (default is **/*.js)")
	flags.BoolVarP(&recursive, "recursive", "r", false, "search the source directory recursively")
	flags.BoolVarP(&saveJSON, "intermediary", "i", false, "save intermediary output as JSON")
	flags.BoolVar(&verbose, "verbose", false, "log debug output")

	addGenerateFlags(rootCmd)
}

// resolvePath makes a configured path relative to the project directory.
func resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}
