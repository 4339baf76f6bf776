package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/openbr/plugin-docs/internal/config"
	"github.com/openbr/plugin-docs/internal/generator"
	"github.com/openbr/plugin-docs/internal/github"
	"github.com/openbr/plugin-docs/internal/logging"
	"github.com/spf13/cobra"
)

var (
	manageIssue bool
	issueLabel  string
	showDiff    bool
)

// errStale is returned when any page needs regenerating.
var errStale = errors.New("plugin documentation is out of date")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that module pages are up to date",
	Long: `Render every module in memory and compare it with the page on disk.

Checks for:
  - Stale pages whose content differs from the rendered output
  - Modules without a page
  - Pages without a corresponding module (reported, not fatal)

Exits non-zero when any page is stale or missing. Use --manage-issue to
create, update, or close a GitHub issue based on the results. This
requires the gh CLI to be installed and authenticated.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		cfg, _, gen, err := loadGenerator(log)
		if err != nil {
			return err
		}

		result, stale, err := runChecks(cfg, gen)
		if err != nil {
			return err
		}

		printCheckResults(cmd.OutOrStdout(), result, stale)
		return reportChecks(result, log)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&manageIssue, "manage-issue", false, "create/update/close GitHub issue based on results (requires gh CLI)")
	checkCmd.Flags().StringVar(&issueLabel, "issue-label", "plugin-docs", "label to use for the managed GitHub issue")
	checkCmd.Flags().BoolVar(&showDiff, "diff", true, "print a unified diff for each stale page")
	rootCmd.AddCommand(checkCmd)
}

// runChecks compares rendered output with the pages on disk.
func runChecks(cfg *config.Config, gen *generator.Generator) (*github.CheckResult, []generator.Stale, error) {
	stale, err := gen.Check()
	if err != nil {
		return nil, nil, fmt.Errorf("checking pages: %w", err)
	}

	result := &github.CheckResult{}
	for _, s := range stale {
		if s.Missing {
			result.MissingPages = append(result.MissingPages, s.Module)
		} else {
			result.StalePages = append(result.StalePages, s.Module)
		}
	}

	orphans, err := gen.Orphans(cfg.Index.File)
	if err != nil {
		return nil, nil, fmt.Errorf("finding orphaned pages: %w", err)
	}
	result.OrphanedDocs = orphans

	return result, stale, nil
}

// reportChecks publishes the results to GitHub and decides the exit status.
func reportChecks(result *github.CheckResult, log logging.Logger) error {
	issues := github.NewIssueManager(github.GetRepository(), github.GetWorkflowURL(), log)

	if err := issues.OutputGitHubActions(result); err != nil {
		log.Warn("failed to write GitHub outputs: %v", err)
	}

	if manageIssue {
		if err := issues.ManageIssue(result, issueLabel); err != nil {
			log.Warn("failed to manage GitHub issue: %v", err)
		}
	}

	if len(result.StalePages) > 0 || len(result.MissingPages) > 0 {
		return errStale
	}
	return nil
}

// printCheckResults prints the check results to w.
func printCheckResults(w io.Writer, result *github.CheckResult, stale []generator.Stale) {
	if showDiff {
		for _, s := range stale {
			fmt.Fprint(w, s.Diff)
		}
	}

	fmt.Fprintln(w, "## 📝 Plugin Documentation Status")
	fmt.Fprintln(w)

	printList(w, "Stale Pages", "Pages that no longer match the plugin annotations:", result.StalePages)
	printList(w, "Missing Pages", "Modules without a generated page:", result.MissingPages)
	printList(w, "Orphaned Pages", "Pages without a corresponding plugin module:", result.OrphanedDocs)

	if !result.HasIssues() {
		fmt.Fprintln(w, "✅ All pages are up to date!")
	} else {
		fmt.Fprintf(w, "❌ Found %d issue(s)\n", result.TotalIssues())
	}
}

func printList(w io.Writer, title, intro string, modules []string) {
	if len(modules) == 0 {
		return
	}
	fmt.Fprintf(w, "### %s (%d)\n", title, len(modules))
	fmt.Fprintln(w, intro)
	fmt.Fprintln(w)
	for _, m := range modules {
		fmt.Fprintf(w, "- [ ] `%s`\n", m)
	}
	fmt.Fprintln(w)
}
