// Package render turns parsed plugin annotations into markdown reference pages.
package render

import (
	"sort"
	"strings"

	"github.com/openbr/plugin-docs/internal/parser"
)

// Renderer renders plugin fragments and module documents.
type Renderer struct {
	apiDocsPrefix string
}

// New creates a Renderer linking abstractions below apiDocsPrefix.
// An empty prefix selects DefaultAPIDocsPrefix.
func New(apiDocsPrefix string) *Renderer {
	if apiDocsPrefix == "" {
		apiDocsPrefix = DefaultAPIDocsPrefix
	}
	return &Renderer{apiDocsPrefix: strings.TrimRight(apiDocsPrefix, "/")}
}

// Fragment renders one plugin, ending with a horizontal rule.
func (r *Renderer) Fragment(plugin parser.Plugin) string {
	attrs := plugin.Attributes

	var sb strings.Builder
	sb.WriteString("# " + attrs.Name() + "\n\n")
	sb.WriteString(Summary(attrs) + "\n\n")
	sb.WriteString(File(plugin.File))
	sb.WriteString(r.Inherits(attrs))
	sb.WriteString(SeeAlso(attrs))
	sb.WriteString(Authors(attrs))
	sb.WriteString(Properties(attrs))
	sb.WriteString("\n---\n\n")
	return sb.String()
}

// Module collects the fragments of one module. A later plugin with the same
// name replaces an earlier one.
type Module struct {
	Name      string
	renderer  *Renderer
	fragments map[string]string
}

// NewModule creates an empty module document.
func (r *Renderer) NewModule(name string) *Module {
	return &Module{
		Name:      name,
		renderer:  r,
		fragments: make(map[string]string),
	}
}

// Add renders plugin and stores it under its declared name.
func (m *Module) Add(plugin parser.Plugin) {
	m.fragments[plugin.Name()] = m.renderer.Fragment(plugin)
}

// AddAll adds every plugin in order.
func (m *Module) AddAll(plugins []parser.Plugin) {
	for _, p := range plugins {
		m.Add(p)
	}
}

// Names returns the documented plugin names in output order.
func (m *Module) Names() []string {
	names := make([]string, 0, len(m.fragments))
	for name := range m.fragments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of documented plugins.
func (m *Module) Len() int {
	return len(m.fragments)
}

// String returns the module document with fragments sorted by name.
func (m *Module) String() string {
	var sb strings.Builder
	for _, name := range m.Names() {
		sb.WriteString(m.fragments[name])
	}
	return sb.String()
}
