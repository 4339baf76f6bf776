package cmd

import (
	"fmt"

	"github.com/openbr/plugin-docs/internal/config"
	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration and annotation blocks",
	Long:  "Validate the configuration file and the plugin annotation blocks.",
}

var validateConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate plugin-docs.yml",
	Long:  "Validate the configuration file for required fields and correct format.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load() calls Validate() itself
		if _, err := config.Load(GetConfigPath()); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ Config is valid")
		return nil
	},
}

var validateBlocksCmd = &cobra.Command{
	Use:   "blocks [module]",
	Short: "List annotation blocks left out of the pages",
	Long: `List every annotation block that does not produce a plugin entry,
with the reason it was skipped: no class declaration, no tags, or a
registration helper. This is informational and never fails on skips.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, gen, err := loadGenerator(newLogger())
		if err != nil {
			return err
		}

		var results []*generator.Result
		if len(args) > 0 {
			result, err := gen.RenderModule(args[0])
			if err != nil {
				return fmt.Errorf("rendering %s: %w", args[0], err)
			}
			results = append(results, result)
		} else if results, err = gen.RenderAll(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		documented, skipped := 0, 0
		for _, result := range results {
			documented += len(result.Plugins)
			for _, s := range result.Skipped {
				fmt.Fprintf(out, "%s:%d: %v\n", s.File, s.Line, s.Reason)
				skipped++
			}
		}

		fmt.Fprintf(out, "%d plugins documented, %d blocks skipped\n", documented, skipped)
		return nil
	},
}

func init() {
	validateCmd.AddCommand(validateConfigCmd)
	validateCmd.AddCommand(validateBlocksCmd)
	rootCmd.AddCommand(validateCmd)
}
