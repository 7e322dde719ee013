package convert

import (
	"strings"

	"github.com/chrisuehlinger/hiccup/html"
)

// attrRenames maps HTML attribute names to their UI-call property names.
// Everything not listed passes through unchanged (spellcheck included).
// class is absent because it is compacted into the selector shorthand
// rather than renamed to className.
var attrRenames = map[string]string{
	"for":          "htmlFor",
	"tabindex":     "tabIndex",
	"viewbox":      "viewBox",
	"autocorrect":  "autoCorrect",
	"autocomplete": "autoComplete",
}

// normalizeAttrs converts raw element attributes into the call form:
// renamed keys, and the style attribute parsed into a camelCased property
// map. The class attribute never survives into the map: its class list is
// carried by the selector shorthand instead, and a class list with no
// usable tokens is dropped outright so className can never appear twice
// or dangle empty.
//
// The returned attrs map is nil when no attributes survive. The style map
// is nil when there was no style attribute or it could not be parsed; in
// the unparsable case the raw declaration text stays in attrs under
// "style".
func normalizeAttrs(raw []html.Attribute) (attrs map[string]string, style map[string]string) {
	for _, a := range raw {
		if a.Key == "class" {
			continue
		}
		key := a.Key
		if renamed, ok := attrRenames[key]; ok {
			key = renamed
		}
		if key == "style" {
			if parsed, ok := parseStyle(a.Value); ok {
				style = parsed
				continue
			}
			// Unparsable declaration block: pass the raw text through.
		}
		if attrs == nil {
			attrs = make(map[string]string)
		}
		attrs[key] = a.Value
	}
	return attrs, style
}

// parseStyle parses an inline CSS declaration block ("color: red;
// margin-top: 4px") into a property map with camelCased keys. Segments
// without a colon, or with an empty property or value, are skipped. The
// second return is false when nothing parseable was found, which signals
// the caller to fall back to the raw string.
func parseStyle(styleAttr string) (map[string]string, bool) {
	props := make(map[string]string)
	for _, part := range strings.Split(styleAttr, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		colonIdx := strings.Index(part, ":")
		if colonIdx == -1 {
			continue
		}

		property := strings.TrimSpace(part[:colonIdx])
		value := strings.TrimSpace(part[colonIdx+1:])
		if property == "" || value == "" {
			continue
		}

		props[camelCaseProperty(property)] = value
	}
	if len(props) == 0 {
		return nil, false
	}
	return props, true
}

// camelCaseProperty converts a kebab-case CSS property name to camelCase.
// Examples: "margin-top" -> "marginTop", "-webkit-transform" -> "webkitTransform"
func camelCaseProperty(name string) string {
	if name == "" {
		return ""
	}

	// Vendor prefixes lose the leading dash.
	name = strings.TrimPrefix(name, "-")

	parts := strings.Split(name, "-")
	var result strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 {
			result.WriteString(part)
		} else {
			result.WriteString(strings.ToUpper(part[:1]) + part[1:])
		}
	}
	return result.String()
}
