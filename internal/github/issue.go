package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/openbr/plugin-docs/internal/logging"
)

// CheckResult holds the results of a staleness check.
type CheckResult struct {
	StalePages   []string // Modules whose page differs from rendered output
	MissingPages []string // Modules without a page
	OrphanedDocs []string // Pages without a module
}

// HasIssues returns true if there are any problems.
func (r *CheckResult) HasIssues() bool {
	return r.TotalIssues() > 0
}

// TotalIssues returns the total number of issues.
func (r *CheckResult) TotalIssues() int {
	return len(r.StalePages) + len(r.MissingPages) + len(r.OrphanedDocs)
}

// Runner executes the gh CLI and returns its standard output.
type Runner func(args ...string) ([]byte, error)

// IssueManager keeps a single labelled tracking issue in sync with check results.
type IssueManager struct {
	repo        string // Repository in format "owner/repo"
	workflowURL string // URL to the workflow run
	run         Runner
	log         logging.Logger
}

// NewIssueManager creates a new GitHub issue manager using the gh CLI.
func NewIssueManager(repo, workflowURL string, log logging.Logger) *IssueManager {
	return NewIssueManagerWithRunner(repo, workflowURL, ghRunner, log)
}

// NewIssueManagerWithRunner creates an issue manager with a custom gh runner.
func NewIssueManagerWithRunner(repo, workflowURL string, run Runner, log logging.Logger) *IssueManager {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &IssueManager{repo: repo, workflowURL: workflowURL, run: run, log: log}
}

// GenerateIssueBody generates the markdown body for a GitHub issue.
func (m *IssueManager) GenerateIssueBody(result *CheckResult) string {
	var builder strings.Builder

	builder.WriteString("## Plugin Documentation Status\n\n")

	writeList := func(title, intro string, modules []string) {
		if len(modules) == 0 {
			return
		}
		builder.WriteString(fmt.Sprintf("### %s (%d)\n", title, len(modules)))
		builder.WriteString(intro + "\n\n")
		for _, module := range modules {
			builder.WriteString(fmt.Sprintf("- [ ] `%s`\n", module))
		}
		builder.WriteString("\n")
	}

	writeList("Stale Pages", "Module pages that no longer match the plugin annotations:", result.StalePages)
	writeList("Missing Pages", "Modules without a generated page:", result.MissingPages)
	writeList("Orphaned Pages", "Pages without a corresponding plugin module:", result.OrphanedDocs)

	builder.WriteString("Run `plugin-docs update` to regenerate.\n\n")
	builder.WriteString("---\n")
	if m.workflowURL != "" {
		builder.WriteString(fmt.Sprintf("**Workflow run:** [link](%s)\n", m.workflowURL))
	}
	builder.WriteString("*This issue is automatically managed by plugin-docs*\n")

	return builder.String()
}

// GenerateIssueTitle generates the issue title.
func (m *IssueManager) GenerateIssueTitle(result *CheckResult) string {
	return fmt.Sprintf("[Plugin Docs] %d documentation issue(s) found", result.TotalIssues())
}

// OutputGitHubActions writes step outputs when running in GitHub Actions.
func (m *IssueManager) OutputGitHubActions(result *CheckResult) error {
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		return nil
	}

	outputFile := os.Getenv("GITHUB_OUTPUT")
	if outputFile == "" {
		return nil
	}

	f, err := os.OpenFile(outputFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "has_issues=%t\n", result.HasIssues())
	fmt.Fprintf(f, "total_issues=%d\n", result.TotalIssues())
	fmt.Fprintf(f, "stale_pages=%d\n", len(result.StalePages))
	fmt.Fprintf(f, "missing_pages=%d\n", len(result.MissingPages))
	fmt.Fprintf(f, "orphaned_docs=%d\n", len(result.OrphanedDocs))
	return nil
}

// GetWorkflowURL attempts to construct the workflow URL from environment variables.
func GetWorkflowURL() string {
	serverURL := os.Getenv("GITHUB_SERVER_URL")
	repo := os.Getenv("GITHUB_REPOSITORY")
	runID := os.Getenv("GITHUB_RUN_ID")

	if serverURL == "" || repo == "" || runID == "" {
		return ""
	}

	return fmt.Sprintf("%s/%s/actions/runs/%s", serverURL, repo, runID)
}

// GetRepository returns the repository from environment variables.
func GetRepository() string {
	return os.Getenv("GITHUB_REPOSITORY")
}

// ghIssue represents a GitHub issue from gh CLI JSON output.
type ghIssue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// ManageIssue creates, updates, reopens or closes the tracking issue.
func (m *IssueManager) ManageIssue(result *CheckResult, label string) error {
	existing, err := m.findExistingIssue(label)
	if err != nil {
		return fmt.Errorf("finding existing issue: %w", err)
	}

	if !result.HasIssues() {
		if existing == nil || existing.State == "CLOSED" {
			m.log.Info("No issues found and no open tracking issue exists")
			return nil
		}
		if _, err := m.gh("issue", "comment", num(existing.Number), "--body", "All plugin pages are up to date. Closing this issue."); err != nil {
			m.log.Warn("could not add closing comment: %v", err)
		}
		if _, err := m.gh("issue", "close", num(existing.Number)); err != nil {
			return fmt.Errorf("closing issue: %w", err)
		}
		m.log.Info("Closed issue #%d", existing.Number)
		return nil
	}

	title := m.GenerateIssueTitle(result)
	body := m.GenerateIssueBody(result)

	if existing == nil {
		number, err := m.createIssue(title, body, label)
		if err != nil {
			return fmt.Errorf("creating issue: %w", err)
		}
		m.log.Info("Created issue #%d", number)
		return nil
	}

	if _, err := m.gh("issue", "edit", num(existing.Number), "--title", title, "--body", body); err != nil {
		return fmt.Errorf("updating issue: %w", err)
	}
	m.log.Info("Updated issue #%d", existing.Number)

	if existing.State == "CLOSED" {
		if _, err := m.gh("issue", "reopen", num(existing.Number)); err != nil {
			return fmt.Errorf("reopening issue: %w", err)
		}
		m.log.Info("Reopened issue #%d", existing.Number)
	}
	return nil
}

// findExistingIssue finds the most recent issue with the given label.
func (m *IssueManager) findExistingIssue(label string) (*ghIssue, error) {
	out, err := m.gh("issue", "list",
		"--label", label,
		"--state", "all",
		"--limit", "1",
		"--json", "number,title,state")
	if err != nil {
		return nil, err
	}

	var issues []ghIssue
	if err := json.Unmarshal(out, &issues); err != nil {
		return nil, fmt.Errorf("parsing issue list: %w", err)
	}

	if len(issues) == 0 {
		return nil, nil
	}
	return &issues[0], nil
}

// createIssue creates a new GitHub issue and returns its number.
func (m *IssueManager) createIssue(title, body, label string) (int, error) {
	out, err := m.gh("issue", "create", "--title", title, "--body", body, "--label", label)
	if err != nil {
		return 0, err
	}

	// gh prints the issue URL, e.g. "https://github.com/owner/repo/issues/123".
	output := strings.TrimSpace(string(out))
	number, err := strconv.Atoi(output[strings.LastIndex(output, "/")+1:])
	if err != nil {
		return 0, fmt.Errorf("could not parse issue number from: %s", output)
	}
	return number, nil
}

// gh runs a gh subcommand against the configured repository.
func (m *IssueManager) gh(args ...string) ([]byte, error) {
	if m.repo != "" {
		args = append(args, "--repo", m.repo)
	}
	return m.run(args...)
}

func num(n int) string {
	return strconv.Itoa(n)
}

// ghRunner runs the real gh CLI.
func ghRunner(args ...string) ([]byte, error) {
	if _, err := exec.LookPath("gh"); err != nil {
		return nil, fmt.Errorf("gh CLI not found: %w", err)
	}

	cmd := exec.Command("gh", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", strings.TrimSpace(stderr.String()), err)
	}
	return stdout.Bytes(), nil
}
