package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [module]",
	Short: "Render module pages to stdout",
	Long: `Render module pages to stdout without writing any file.

Without a module argument, renders every module, each preceded by a
"=== <module> ===" header line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		_, _, gen, err := loadGenerator(log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if len(args) > 0 {
			result, err := gen.RenderModule(args[0])
			if err != nil {
				return fmt.Errorf("rendering %s: %w", args[0], err)
			}
			fmt.Fprint(out, result.Content)
			return nil
		}

		results, err := gen.RenderAll()
		if err != nil {
			return err
		}
		for _, result := range results {
			fmt.Fprintf(out, "=== %s ===\n", result.Module)
			fmt.Fprint(out, result.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

