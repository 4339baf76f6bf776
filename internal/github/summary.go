package github

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ModuleStatus represents the processing status of a module.
type ModuleStatus string

const (
	StatusUpdated   ModuleStatus = "updated"
	StatusUnchanged ModuleStatus = "unchanged"
	StatusError     ModuleStatus = "error"
)

// ModuleResult holds the result of processing a single module.
type ModuleResult struct {
	Name    string
	Status  ModuleStatus
	Plugins int    // Documented plugins on the page
	Skipped int    // Annotation blocks left out
	Error   string // Error message if failed
}

// UpdateSummary holds the complete summary of an update run.
type UpdateSummary struct {
	Modules      []ModuleResult
	IndexUpdated bool
	TotalModules int
	TotalPlugins int
	Updated      int
	Unchanged    int
	Errors       int
	CheckResult  *CheckResult // optional check results
}

// NewUpdateSummary creates a new UpdateSummary.
func NewUpdateSummary() *UpdateSummary {
	return &UpdateSummary{
		Modules: make([]ModuleResult, 0),
	}
}

// AddModule adds a module result to the summary.
func (s *UpdateSummary) AddModule(result ModuleResult) {
	s.Modules = append(s.Modules, result)
	s.TotalModules++
	s.TotalPlugins += result.Plugins

	switch result.Status {
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	case StatusError:
		s.Errors++
	}
}

// SetCheckResult sets the check results for the summary.
func (s *UpdateSummary) SetCheckResult(result *CheckResult) {
	s.CheckResult = result
}

// WriteGitHubSummary writes the summary to GITHUB_STEP_SUMMARY if running in GitHub Actions.
func (s *UpdateSummary) WriteGitHubSummary() error {
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		return nil
	}

	summaryFile := os.Getenv("GITHUB_STEP_SUMMARY")
	if summaryFile == "" {
		return nil
	}

	f, err := os.OpenFile(summaryFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening summary file: %w", err)
	}
	defer f.Close()

	return s.WriteMarkdown(f)
}

// WriteMarkdown writes the summary as markdown.
func (s *UpdateSummary) WriteMarkdown(w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("## 📚 Plugin Documentation Results\n\n")

	sb.WriteString("### Statistics\n\n")
	sb.WriteString("| Metric | Count |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Modules Processed | %d |\n", s.TotalModules))
	sb.WriteString(fmt.Sprintf("| Plugins Documented | %d |\n", s.TotalPlugins))
	sb.WriteString(fmt.Sprintf("| ✅ Updated | %d |\n", s.Updated))
	sb.WriteString(fmt.Sprintf("| ➖ Unchanged | %d |\n", s.Unchanged))
	sb.WriteString(fmt.Sprintf("| ❌ Errors | %d |\n", s.Errors))
	if s.IndexUpdated {
		sb.WriteString("| 🗂️ Index | Updated |\n")
	}
	sb.WriteString("\n")

	if s.Updated > 0 {
		updated := s.getModulesByStatus(StatusUpdated)
		if len(updated) > 10 {
			sb.WriteString("<details>\n")
			sb.WriteString(fmt.Sprintf("<summary><strong>Updated Pages (%d modules)</strong></summary>\n\n", len(updated)))
		} else {
			sb.WriteString(fmt.Sprintf("### Updated Pages (%d)\n\n", len(updated)))
		}

		sb.WriteString("| Module | Plugins | Skipped Blocks |\n")
		sb.WriteString("|--------|---------|----------------|\n")
		for _, m := range updated {
			sb.WriteString(fmt.Sprintf("| %s | %d | %d |\n", m.Name, m.Plugins, m.Skipped))
		}
		sb.WriteString("\n")

		if len(updated) > 10 {
			sb.WriteString("</details>\n\n")
		}
	}

	if s.Errors > 0 {
		failed := s.getModulesByStatus(StatusError)
		sb.WriteString(fmt.Sprintf("### ❌ Errors (%d)\n\n", len(failed)))

		sb.WriteString("| Module | Error |\n")
		sb.WriteString("|--------|-------|\n")
		for _, m := range failed {
			errMsg := strings.ReplaceAll(m.Error, "|", "\\|")
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", m.Name, errMsg))
		}
		sb.WriteString("\n")
	}

	if s.CheckResult != nil && s.CheckResult.HasIssues() {
		sb.WriteString("### 🔍 Check Results\n\n")
		writeDetails(&sb, "Stale Pages", s.CheckResult.StalePages)
		writeDetails(&sb, "Missing Pages", s.CheckResult.MissingPages)
		writeDetails(&sb, "Orphaned Pages", s.CheckResult.OrphanedDocs)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDetails(sb *strings.Builder, title string, modules []string) {
	if len(modules) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("**%s:** %d\n", title, len(modules)))
	sb.WriteString("<details>\n<summary>Show modules</summary>\n\n")
	for _, m := range modules {
		sb.WriteString(fmt.Sprintf("- `%s`\n", m))
	}
	sb.WriteString("\n</details>\n\n")
}

// getModulesByStatus returns all modules with the given status.
func (s *UpdateSummary) getModulesByStatus(status ModuleStatus) []ModuleResult {
	var results []ModuleResult
	for _, m := range s.Modules {
		if m.Status == status {
			results = append(results, m)
		}
	}
	return results
}
