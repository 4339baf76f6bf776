package docs

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff between the page on disk and freshly rendered
// content. It is empty when both are identical.
func Diff(doc *Document, rendered string) string {
	from := doc.Path
	if !doc.Exists {
		from = "/dev/null"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(doc.Content),
		B:        difflib.SplitLines(rendered),
		FromFile: from,
		ToFile:   doc.Path,
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
