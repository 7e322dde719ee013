package convert

import "strings"

// classSelector compacts an HTML class attribute into the dot-joined
// selector shorthand: "btn btn-large" -> ".btn.btn-large". Returns ""
// when the class list has no usable tokens.
func classSelector(classAttr string) string {
	tokens := strings.Fields(classAttr)
	if len(tokens) == 0 {
		return ""
	}
	return "." + strings.Join(tokens, ".")
}
