package cmd

import (
	"fmt"

	"github.com/openbr/plugin-docs/internal/config"
	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/openbr/plugin-docs/internal/template"
	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Write the module index page",
	Long: `Render every module and write the index page listing each module
and its plugins.

The page is written to index.file inside the output directory, using
index.template when set or the built-in template otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg, manager, gen, err := loadGenerator(log)
		if err != nil {
			return err
		}

		results, err := gen.RenderAll()
		if err != nil {
			return err
		}

		if err := writeIndex(cfg, manager, results); err != nil {
			return err
		}
		log.Info("Wrote %s", cfg.IndexPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

// writeIndex renders the index template over results and writes it to the
// output directory.
func writeIndex(cfg *config.Config, manager *docs.Manager, results []*generator.Result) error {
	engine := template.New()
	if err := engine.LoadIndexTemplate(cfg.Index.Template); err != nil {
		return fmt.Errorf("loading index template: %w", err)
	}

	output, err := engine.Render(template.IndexTemplateName, template.BuildIndexData(results))
	if err != nil {
		return fmt.Errorf("rendering index: %w", err)
	}

	if err := manager.WriteOutputFile(cfg.Index.File, output); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
