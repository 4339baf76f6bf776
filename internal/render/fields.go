package render

import (
	"strings"

	"github.com/openbr/plugin-docs/internal/parser"
	"github.com/openbr/plugin-docs/internal/types"
)

// urlMarker identifies see-also values that are already links.
const urlMarker = "http"

// Summary joins every brief into one paragraph.
func Summary(attrs parser.Attributes) string {
	return strings.Join(attrs.Values(types.Brief), " ")
}

// File renders the source file bullet.
func File(file string) string {
	return "* **file:** " + file + "\n"
}

// Inherits renders the parent type bullet.
func (r *Renderer) Inherits(attrs parser.Attributes) string {
	parent := attrs.Parent()
	return "* **inherits:** " + link(parent, r.InheritanceLink(parent)) + "\n"
}

// SeeAlso renders the see tags. One value stays inline, several become a
// nested list.
func SeeAlso(attrs parser.Attributes) string {
	sees := attrs.Values(types.See)
	if len(sees) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("* **see:**")

	if len(sees) == 1 {
		sb.WriteString(" " + link(sees[0], seeTarget(sees[0])) + "\n")
		return sb.String()
	}

	sb.WriteString("\n\n")
	for _, see := range sees {
		sb.WriteString("\t* " + link(see, seeTarget(see)) + "\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// seeTarget keeps URLs as they are and turns names into anchors.
func seeTarget(see string) string {
	if strings.Contains(see, urlMarker) {
		return see
	}
	return anchor(see)
}

// Authors renders the author tags.
func Authors(attrs parser.Attributes) string {
	authors := attrs.Values(types.Author)
	switch len(authors) {
	case 0:
		return "* **authors:** None\n"
	case 1:
		return "* **author:** " + authors[0] + "\n"
	default:
		return "* **authors:** " + strings.Join(authors, ", ") + "\n"
	}
}

func link(text, target string) string {
	return "[" + text + "](" + target + ")"
}
