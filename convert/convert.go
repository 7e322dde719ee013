package convert

import (
	"strings"

	"github.com/chrisuehlinger/hiccup/html"
)

// FromString parses an HTML fragment and compiles every top-level node
// into a Call. Whitespace-only text and comments vanish; the zero-call
// case is an empty Result, not an error. The only error source is the
// fragment parser itself.
func FromString(fragment string, opts Options) (Result, error) {
	roots, err := html.ParseFragment(fragment)
	if err != nil {
		return Result{}, err
	}

	var calls []Call
	for _, root := range roots {
		calls = append(calls, NodeCalls(root, opts)...)
	}
	return Result{Calls: calls}, nil
}

// NodeCalls compiles one parsed node. An element yields exactly one call,
// a text node zero or more (its entity segmentation, already flattened),
// and comments or whitespace-only text yield none.
func NodeCalls(node *html.Node, opts Options) []Call {
	switch node.Type {
	case html.TextNode:
		if strings.TrimSpace(node.Data) == "" {
			return nil
		}
		return segmentText(node.Data)

	case html.ElementNode:
		return []Call{elementCall(node, opts)}

	default:
		// Comments and anything else the parser surfaces are dropped.
		return nil
	}
}

func elementCall(node *html.Node, opts Options) *ElementCall {
	tag := node.Data
	if opts.Namespace != "" {
		tag = opts.Namespace + "/" + tag
	}

	selector := classSelector(node.GetAttribute("class"))
	attrs, style := normalizeAttrs(node.Attributes)

	if attrs == nil && style == nil && opts.KeepEmptyAttrs {
		attrs = map[string]string{}
	}

	var children []Call
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, NodeCalls(c, opts)...)
	}

	return &ElementCall{
		Tag:      tag,
		Selector: selector,
		Attrs:    attrs,
		Style:    style,
		Children: children,
	}
}
