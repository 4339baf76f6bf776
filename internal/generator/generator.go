// Package generator renders module pages from the plugin source tree.
package generator

import (
	"fmt"

	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/logging"
	"github.com/openbr/plugin-docs/internal/parser"
	"github.com/openbr/plugin-docs/internal/render"
)

// Result is the outcome of rendering one module.
type Result struct {
	Module  string
	Content string
	Plugins []string         // Documented plugin names, in page order
	Skipped []parser.Skipped // Blocks left out of the page
}

// Generator renders module pages.
type Generator struct {
	docs     *docs.Manager
	renderer *render.Renderer
	log      logging.Logger
}

// New creates a Generator reading sources through manager.
func New(manager *docs.Manager, renderer *render.Renderer, log logging.Logger) *Generator {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &Generator{docs: manager, renderer: renderer, log: log}
}

// Modules returns every module to document.
func (g *Generator) Modules() ([]string, error) {
	return g.docs.ListModules()
}

// RenderModule parses every file of a module and renders its page.
// Read errors abort the module; malformed blocks are only reported.
func (g *Generator) RenderModule(module string) (*Result, error) {
	if !g.docs.HasModule(module) {
		return nil, fmt.Errorf("module %q not found", module)
	}

	files, err := g.docs.ListPluginFiles(module)
	if err != nil {
		return nil, err
	}

	p := parser.New(module)
	page := g.renderer.NewModule(module)
	result := &Result{Module: module}

	for _, file := range files {
		content, err := g.docs.ReadPluginFile(module, file)
		if err != nil {
			return nil, err
		}

		parsed := p.ParseFile(file, content)
		for _, plugin := range parsed.Plugins {
			g.log.Verbose("  %s (%s:%d)", plugin.Name(), plugin.File, plugin.Line)
		}
		page.AddAll(parsed.Plugins)
		result.Skipped = append(result.Skipped, parsed.Skipped...)
	}

	result.Content = page.String()
	result.Plugins = page.Names()
	return result, nil
}

// RenderAll renders every module in name order. The first error aborts.
func (g *Generator) RenderAll() ([]*Result, error) {
	modules, err := g.Modules()
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(modules))
	for _, module := range modules {
		g.log.Verbose("Rendering: %s", module)
		result, err := g.RenderModule(module)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", module, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// UpdateModule renders a module and writes its page. It reports whether the
// page content changed.
func (g *Generator) UpdateModule(module string) (*Result, bool, error) {
	result, err := g.RenderModule(module)
	if err != nil {
		return nil, false, err
	}

	doc, err := g.docs.LoadDocument(module)
	if err != nil {
		return nil, false, err
	}
	if doc.Exists && doc.Content == result.Content {
		return result, false, nil
	}

	doc.Content = result.Content
	if err := g.docs.SaveDocument(doc); err != nil {
		return nil, false, err
	}
	return result, true, nil
}

// Stale describes a page that differs from freshly rendered output.
type Stale struct {
	Module  string
	Path    string
	Missing bool
	Diff    string
}

// Check renders every module and compares it with the page on disk.
func (g *Generator) Check() ([]Stale, error) {
	results, err := g.RenderAll()
	if err != nil {
		return nil, err
	}

	var stale []Stale
	for _, result := range results {
		doc, err := g.docs.LoadDocument(result.Module)
		if err != nil {
			return nil, err
		}
		if doc.Exists && doc.Content == result.Content {
			continue
		}
		stale = append(stale, Stale{
			Module:  result.Module,
			Path:    doc.Path,
			Missing: !doc.Exists,
			Diff:    docs.Diff(doc, result.Content),
		})
	}
	return stale, nil
}

// Orphans returns pages in the output directory with no matching module.
// Pages named in ignore (such as the index) are not reported.
func (g *Generator) Orphans(ignore ...string) ([]string, error) {
	modules, err := g.Modules()
	if err != nil {
		return nil, err
	}
	pages, err := g.docs.ListPages()
	if err != nil {
		return nil, err
	}

	known := make(map[string]bool)
	for _, m := range modules {
		known[m] = true
	}
	for _, name := range ignore {
		known[docs.ExtractModuleName(name)] = true
	}

	var orphans []string
	for _, page := range pages {
		if !known[page] {
			orphans = append(orphans, page)
		}
	}
	return orphans, nil
}
