package cmd

import (
	"fmt"
	"os"

	"github.com/openbr/plugin-docs/internal/config"
	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/openbr/plugin-docs/internal/logging"
	"github.com/openbr/plugin-docs/internal/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "plugin-docs",
	Short: "OpenBR plugin documentation generator",
	Long: `plugin-docs renders the plugin reference pages from the annotation
comments in the plugin sources.

Each module directory under the plugins path becomes one markdown page
listing its plugins alphabetically, with their parent, see-also links,
authors and properties.`,
	SilenceUsage: true, // Don't print usage on errors unrelated to flags
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetColor(!noColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// GetConfigPath returns the configured config file path.
func GetConfigPath() string {
	return cfgFile
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

func newLogger() logging.Logger {
	return logging.NewConsoleLogger(IsVerbose())
}

// loadGenerator loads the configuration and wires a generator over the
// host filesystem.
func loadGenerator(log logging.Logger) (*config.Config, *docs.Manager, *generator.Generator, error) {
	cfg, err := config.Load(GetConfigPath())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	manager := docs.NewManager(afero.NewOsFs(), cfg.Paths.Plugins, cfg.Paths.Output, cfg.Exclude)
	gen := generator.New(manager, render.New(cfg.APIDocsPrefix), log)
	return cfg, manager, gen, nil
}
