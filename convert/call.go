// Package convert compiles parsed HTML fragments into trees of declarative
// UI element calls: the hiccup-style (dom/div :.cls {:id "x"} ...) shape.
package convert

// Call is one node of the compiled output tree. It is a closed union:
// ElementCall, TextFragment or EntityRef.
type Call interface {
	call()
}

// ElementCall is the compiled form of one HTML element.
type ElementCall struct {
	// Tag is the element constructor name, qualified with the configured
	// namespace when one is set ("dom/div") and bare otherwise ("div").
	Tag string

	// Selector is the compact class shorthand (".a.b"), or "" when the
	// element had no usable class attribute.
	Selector string

	// Attrs holds the normalized attributes. A nil map means the
	// attributes position is omitted from the call; a non-nil empty map
	// means an explicit empty attributes map (Options.KeepEmptyAttrs).
	Attrs map[string]string

	// Style holds the parsed inline style when the style attribute was
	// well formed; the raw declaration text stays in Attrs otherwise.
	Style map[string]string

	Children []Call
}

// TextFragment is a literal run of text.
type TextFragment string

// EntityRef is a named character reference kept symbolic, e.g. "nbsp"
// for &nbsp;. Numeric references are never represented this way; they
// pass through as TextFragment verbatim.
type EntityRef string

func (*ElementCall) call() {}
func (TextFragment) call() {}
func (EntityRef) call()    {}

// Options configures a conversion.
type Options struct {
	// Namespace qualifies every emitted tag ("dom" gives dom/div).
	Namespace string

	// KeepEmptyAttrs emits an explicit empty attributes map on elements
	// that have no meaningful attributes, instead of omitting the
	// attributes position.
	KeepEmptyAttrs bool
}

// Result holds the calls produced from one fragment in document order.
type Result struct {
	Calls []Call
}

// Single returns the sole produced call when the fragment compiled to
// exactly one, mirroring the convention that a one-root fragment yields a
// bare call rather than a list.
func (r Result) Single() (Call, bool) {
	if len(r.Calls) == 1 {
		return r.Calls[0], true
	}
	return nil, false
}

// Empty reports whether the fragment produced no calls at all.
func (r Result) Empty() bool {
	return len(r.Calls) == 0
}
