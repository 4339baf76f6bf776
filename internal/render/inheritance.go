package render

import (
	"strings"

	"github.com/openbr/plugin-docs/internal/types"
)

// DefaultAPIDocsPrefix is where the abstraction reference pages live,
// relative to a module page.
const DefaultAPIDocsPrefix = "../cpp_api"

// InheritanceLink returns the link target for a parent type. Abstractions
// point at their API reference page, anything else at an anchor on the same
// page. The parent is not checked for existence.
func (r *Renderer) InheritanceLink(parent string) string {
	lower := strings.ToLower(parent)
	if types.IsAbstraction(parent) {
		return r.apiDocsPrefix + "/" + lower + "/" + lower + ".md"
	}
	return anchor(parent)
}

// anchor returns the same-page anchor for a name.
func anchor(name string) string {
	return "#" + strings.ToLower(name)
}
