package convert

import "strings"

// segmentText splits raw text into literal runs and named character
// references, in document order. "A&nbsp;B" becomes
// [TextFragment("A"), EntityRef("nbsp"), TextFragment("B")].
//
// Numeric references (&#169;, &#x2603;) are not decoded; they are
// re-emitted verbatim inside the surrounding literal run. A reference
// left unterminated at end of input (&copy with no semicolon) is still
// captured as an EntityRef, while a bare trailing "&" stays literal.
// Empty literal runs are never emitted.
func segmentText(text string) []Call {
	var calls []Call
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			calls = append(calls, TextFragment(run.String()))
			run.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] != '&' {
			run.WriteByte(text[i])
			i++
			continue
		}

		// Scan the reference: everything between & and ; (or end of input).
		j := i + 1
		for j < len(text) && text[j] != ';' {
			j++
		}
		name := text[i+1 : j]
		end := j
		if j < len(text) {
			end = j + 1 // consume the semicolon
		}

		if name == "" || strings.HasPrefix(name, "#") {
			// Bare ampersand or numeric reference: pass through raw.
			run.WriteString(text[i:end])
		} else {
			flush()
			calls = append(calls, EntityRef(name))
		}
		i = end
	}

	flush()
	return calls
}
