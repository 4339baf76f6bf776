package render

import (
	"regexp"
	"strings"

	"github.com/openbr/plugin-docs/internal/parser"
	"github.com/openbr/plugin-docs/internal/types"
)

var (
	// Shortest bracketed span on one line: "[a, b, c]".
	fieldListRe = regexp.MustCompile(`\[(.*?)\]`)
)

// Property is one parsed property tag.
type Property struct {
	Type        string
	Name        string
	Description string
}

// ParseProperty splits a property value into "<type> <name> <description...>".
// Missing parts are left empty.
func ParseProperty(value string) Property {
	parts := strings.SplitN(value, " ", 3)
	var prop Property
	prop.Type = parts[0]
	if len(parts) > 1 {
		prop.Name = parts[1]
	}
	if len(parts) > 2 {
		prop.Description = parts[2]
	}
	return prop
}

// Properties renders the property tags as a table.
func Properties(attrs parser.Attributes) string {
	values := attrs.Values(types.Property)
	if len(values) == 0 {
		return "* **properties:** None\n\n"
	}

	var sb strings.Builder
	sb.WriteString("* **properties:**\n\n")
	sb.WriteString("Property | Type | Description\n")
	sb.WriteString("--- | --- | ---\n")
	for _, value := range values {
		prop := ParseProperty(value)
		sb.WriteString(prop.Name + " | " + prop.Type + " | " + ExpandFieldLists(prop.Description) + "\n")
	}
	return sb.String()
}

// ExpandFieldLists replaces every bracketed list in a description with a
// nested HTML list, left to right. Text around each list is trimmed.
// Scanning resumes after the inserted list, so every pass consumes one span.
func ExpandFieldLists(desc string) string {
	offset := 0
	for {
		loc := fieldListRe.FindStringSubmatchIndex(desc[offset:])
		if loc == nil {
			return desc
		}
		start, end := offset+loc[0], offset+loc[1]

		before := strings.TrimSpace(desc[:start])
		list := fieldList(desc[offset+loc[2] : offset+loc[3]])
		desc = before + list + strings.TrimSpace(desc[end:])
		offset = len(before) + len(list)
	}
}

// fieldList renders "a, b, c" as <ul><li>a</li><li>b</li><li>c</li></ul>.
func fieldList(content string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, field := range strings.Split(content, ",") {
		sb.WriteString("<li>" + strings.TrimSpace(field) + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}
