package template

import (
	"github.com/openbr/plugin-docs/internal/docs"
	"github.com/openbr/plugin-docs/internal/generator"
)

// IndexData contains all data needed to render the module index page.
type IndexData struct {
	Modules []ModuleData
	Total   int // Plugins across every module
}

// ModuleData describes one module page for the index.
type ModuleData struct {
	Name    string   // Directory name (e.g. "imgproc")
	Title   string   // Display title (e.g. "Imgproc")
	Page    string   // Page file name relative to the index (e.g. "imgproc.md")
	Plugins []string // Documented plugin names, sorted
}

// HasPlugins returns true if the module documents at least one plugin.
func (m ModuleData) HasPlugins() bool {
	return len(m.Plugins) > 0
}

// BuildIndexData builds index data from rendered modules, keeping their order.
func BuildIndexData(results []*generator.Result) *IndexData {
	data := &IndexData{Modules: make([]ModuleData, 0, len(results))}
	for _, r := range results {
		data.Modules = append(data.Modules, ModuleData{
			Name:    r.Module,
			Title:   ModuleTitle(r.Module),
			Page:    r.Module + docs.PageExt,
			Plugins: r.Plugins,
		})
		data.Total += len(r.Plugins)
	}
	return data
}
