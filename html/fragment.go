package html

import (
	"io"
	"strings"
)

// voidElements are elements that never have children and need no end tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// ParseFragment parses an HTML fragment and returns its top-level nodes in
// document order. The fragment is treated as body content; no enclosing
// <html> or <body> wrapper is required or implied in the result.
//
// Parsing is lenient: unmatched end tags are ignored, unclosed elements are
// closed at end of input, and mis-nested end tags close every open element
// up to the nearest matching start tag. Text node content keeps character
// references (&nbsp;, &#169;) in their raw, undecoded form.
func ParseFragment(fragment string) ([]*Node, error) {
	root := &Node{Type: DocumentNode}
	stack := []*Node{root}
	top := func() *Node { return stack[len(stack)-1] }

	t := NewTokenizerString(fragment)
	for {
		switch t.Next() {
		case ErrorToken:
			if err := t.Err(); err != io.EOF {
				return nil, err
			}
			return root.Children(), nil

		case TextToken:
			// Raw, not Token().Data: keep character references undecoded.
			top().AppendChild(&Node{Type: TextNode, Data: string(t.Raw())})

		case CommentToken:
			top().AppendChild(&Node{Type: CommentNode, Data: t.Token().Data})

		case StartTagToken, SelfClosingTagToken:
			tok := t.Token()
			node := &Node{
				Type:       ElementNode,
				Data:       tok.Data,
				Attributes: tok.Attributes,
			}
			top().AppendChild(node)
			if tok.Type == StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, node)
			}

		case EndTagToken:
			name := strings.ToLower(t.Token().Data)
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == name {
					stack = stack[:i]
					break
				}
			}

		case DoctypeToken:
			// Fragments have no doctype; drop it.
		}
	}
}
