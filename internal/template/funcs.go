package template

import (
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// moduleTitleOverrides maps module names that do not title-case cleanly.
var moduleTitleOverrides = map[string]string{
	"io": "i/o",
}

// ModuleTitle returns the display title of a module: "imgproc" -> "Imgproc".
func ModuleTitle(module string) string {
	if title, ok := moduleTitleOverrides[module]; ok {
		return title
	}
	return cases.Title(language.English).String(module)
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		// String functions
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"title":     titleCaser.String,
		"trimSpace": strings.TrimSpace,
		"join":      strings.Join,

		// Module functions
		"moduleTitle": ModuleTitle,
		"anchor":      anchor,
		"plural":      plural,
	}
}

// anchor returns the in-page anchor of a plugin heading.
func anchor(name string) string {
	return "#" + strings.ToLower(name)
}

// plural picks the singular or plural word for n.
func plural(n int, singular, pluralWord string) string {
	if n == 1 {
		return singular
	}
	return pluralWord
}
