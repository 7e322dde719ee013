// Package printer renders compiled call trees as ClojureScript-style
// source text, the form a developer would paste into a component body.
package printer

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/chrisuehlinger/hiccup/convert"
)

const indentStep = "  "

// Sprint renders one call as source text.
func Sprint(call convert.Call) string {
	var sb strings.Builder
	writeCall(&sb, call, "")
	return sb.String()
}

// Fprint renders one call as source text to w.
func Fprint(w io.Writer, call convert.Call) error {
	_, err := io.WriteString(w, Sprint(call))
	return err
}

// SprintResult renders a whole conversion result: a bare form for a
// single-call result, otherwise one top-level form per line.
func SprintResult(res convert.Result) string {
	if call, ok := res.Single(); ok {
		return Sprint(call)
	}
	forms := make([]string, len(res.Calls))
	for i, call := range res.Calls {
		forms[i] = Sprint(call)
	}
	return strings.Join(forms, "\n")
}

func writeCall(sb *strings.Builder, call convert.Call, indent string) {
	switch c := call.(type) {
	case convert.TextFragment:
		sb.WriteString(strconv.Quote(string(c)))
	case convert.EntityRef:
		sb.WriteString("ent/" + string(c))
	case *convert.ElementCall:
		writeElement(sb, c, indent)
	}
}

func writeElement(sb *strings.Builder, el *convert.ElementCall, indent string) {
	sb.WriteString("(" + el.Tag)
	if el.Selector != "" {
		sb.WriteString(" :" + el.Selector)
	}
	if el.Attrs != nil || el.Style != nil {
		sb.WriteString(" ")
		writeAttrMap(sb, el)
	}

	if len(el.Children) == 0 {
		sb.WriteString(")")
		return
	}

	// Pure text content stays on one line; element children get their
	// own indented lines.
	if textOnly(el.Children) {
		for _, child := range el.Children {
			sb.WriteString(" ")
			writeCall(sb, child, indent)
		}
		sb.WriteString(")")
		return
	}

	childIndent := indent + indentStep
	for _, child := range el.Children {
		sb.WriteString("\n" + childIndent)
		writeCall(sb, child, childIndent)
	}
	sb.WriteString(")")
}

func textOnly(children []convert.Call) bool {
	for _, c := range children {
		if _, ok := c.(*convert.ElementCall); ok {
			return false
		}
	}
	return true
}

func writeAttrMap(sb *strings.Builder, el *convert.ElementCall) {
	keys := make([]string, 0, len(el.Attrs)+1)
	for k := range el.Attrs {
		keys = append(keys, k)
	}
	if el.Style != nil {
		keys = append(keys, "style")
	}
	sort.Strings(keys)

	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(":" + k + " ")
		if k == "style" && el.Style != nil {
			writeStyleMap(sb, el.Style)
		} else {
			sb.WriteString(strconv.Quote(el.Attrs[k]))
		}
	}
	sb.WriteString("}")
}

func writeStyleMap(sb *strings.Builder, style map[string]string) {
	keys := make([]string, 0, len(style))
	for k := range style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(":" + k + " " + strconv.Quote(style[k]))
	}
	sb.WriteString("}")
}
