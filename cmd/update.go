package cmd

import (
	"fmt"
	"io"

	"github.com/openbr/plugin-docs/internal/config"
	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/openbr/plugin-docs/internal/github"
	"github.com/openbr/plugin-docs/internal/logging"
	"github.com/spf13/cobra"
)

var updateIndex bool

var updateCmd = &cobra.Command{
	Use:   "update [module]",
	Short: "Write module pages to the output directory",
	Long: `Render module pages and write them to the output directory.

Without a module argument, updates every module and, when enabled, the
module index page. With a module argument, updates only that page.
A read or write failure aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg, manager, gen, err := loadGenerator(log)
		if err != nil {
			return err
		}

		if len(args) > 0 {
			return updateModule(gen, log, args[0])
		}
		return updateAllModules(cmd.OutOrStdout(), cfg, manager, gen, log)
	},
}

func init() {
	updateCmd.Flags().BoolVar(&updateIndex, "index", false, "also write the module index page")
	rootCmd.AddCommand(updateCmd)
}

// updateModule updates the page of a single module.
func updateModule(gen *generator.Generator, log logging.Logger, module string) error {
	result, changed, err := gen.UpdateModule(module)
	if err != nil {
		return fmt.Errorf("updating %s: %w", module, err)
	}
	reportSkipped(log, result)

	if changed {
		log.Info("Updated %s (%d plugins)", module, len(result.Plugins))
	} else {
		log.Info("%s is up to date", module)
	}
	return nil
}

// updateAllModules updates every module page and writes the step summary.
func updateAllModules(w io.Writer, cfg *config.Config, manager *docs.Manager, gen *generator.Generator, log logging.Logger) error {
	modules, err := gen.Modules()
	if err != nil {
		return fmt.Errorf("listing modules: %w", err)
	}
	log.Verbose("Found %d modules", len(modules))

	summary := github.NewUpdateSummary()
	results := make([]*generator.Result, 0, len(modules))

	for _, module := range modules {
		log.Verbose("Updating: %s", module)

		result, changed, err := gen.UpdateModule(module)
		if err != nil {
			summary.AddModule(github.ModuleResult{Name: module, Status: github.StatusError, Error: err.Error()})
			writeSummary(summary, log)
			return fmt.Errorf("updating %s: %w", module, err)
		}
		reportSkipped(log, result)
		results = append(results, result)

		status := github.StatusUnchanged
		if changed {
			status = github.StatusUpdated
			log.Verbose("  Updated %s", manager.PagePath(module))
		}
		summary.AddModule(github.ModuleResult{
			Name:    module,
			Status:  status,
			Plugins: len(result.Plugins),
			Skipped: len(result.Skipped),
		})
	}

	fmt.Fprintf(w, "Updated %d modules, %d unchanged\n", summary.Updated, summary.Unchanged)

	if updateIndex || cfg.Index.Enabled {
		if err := writeIndex(cfg, manager, results); err != nil {
			return err
		}
		summary.IndexUpdated = true
		log.Verbose("Wrote %s", cfg.IndexPath())
	}

	writeSummary(summary, log)
	return nil
}

func writeSummary(summary *github.UpdateSummary, log logging.Logger) {
	if err := summary.WriteGitHubSummary(); err != nil {
		log.Warn("failed to write GitHub summary: %v", err)
	}
}

// reportSkipped logs the annotation blocks left out of a module page.
func reportSkipped(log logging.Logger, result *generator.Result) {
	for _, s := range result.Skipped {
		log.Verbose("  skipped %s:%d: %v", s.File, s.Line, s.Reason)
	}
}
