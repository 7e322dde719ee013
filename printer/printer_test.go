package printer

import (
	"strings"
	"testing"

	"github.com/chrisuehlinger/hiccup/convert"
)

func convertOne(t *testing.T, fragment string, opts convert.Options) convert.Result {
	t.Helper()
	res, err := convert.FromString(fragment, opts)
	if err != nil {
		t.Fatalf("FromString(%q) failed: %v", fragment, err)
	}
	return res
}

func TestSprintResult_Nested(t *testing.T) {
	res := convertOne(t, `<div class="b"><p>Paragraph</p></div>`, convert.Options{Namespace: "dom"})
	got := SprintResult(res)
	want := "(dom/div :.b\n  (dom/p \"Paragraph\"))"
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprintResult_Attributes(t *testing.T) {
	res := convertOne(t, `<label for="x" id="lbl">Name</label>`, convert.Options{})
	got := SprintResult(res)
	want := `(label {:htmlFor "x" :id "lbl"} "Name")`
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprintResult_StyleMap(t *testing.T) {
	res := convertOne(t, `<div style="margin-top:4px; color:red"></div>`, convert.Options{})
	got := SprintResult(res)
	want := `(div {:style {:color "red" :marginTop "4px"}})`
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprintResult_EntityRef(t *testing.T) {
	res := convertOne(t, "<p>A&nbsp;B</p>", convert.Options{})
	got := SprintResult(res)
	want := `(p "A" ent/nbsp "B")`
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprintResult_MultiRoot(t *testing.T) {
	res := convertOne(t, "<p>A</p><p>B</p>", convert.Options{})
	got := SprintResult(res)
	want := "(p \"A\")\n(p \"B\")"
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprintResult_KeepEmptyAttrs(t *testing.T) {
	res := convertOne(t, "<div></div>", convert.Options{KeepEmptyAttrs: true})
	if got := SprintResult(res); got != "(div {})" {
		t.Errorf("SprintResult = %q, want %q", got, "(div {})")
	}

	res = convertOne(t, "<div></div>", convert.Options{})
	if got := SprintResult(res); got != "(div)" {
		t.Errorf("SprintResult = %q, want %q", got, "(div)")
	}
}

func TestSprintResult_DeepIndentation(t *testing.T) {
	res := convertOne(t, "<ul><li><a href=\"/x\">x</a></li></ul>", convert.Options{})
	got := SprintResult(res)
	want := "(ul\n  (li\n    (a {:href \"/x\"} \"x\")))"
	if got != want {
		t.Errorf("SprintResult = %q, want %q", got, want)
	}
}

func TestSprint_EscapesQuotes(t *testing.T) {
	res := convertOne(t, `<p>say "hi"</p>`, convert.Options{})
	got := SprintResult(res)
	if !strings.Contains(got, `"say \"hi\""`) {
		t.Errorf("Quotes should be escaped, got %q", got)
	}
}

func TestSprintResult_Empty(t *testing.T) {
	res := convertOne(t, "<!-- nothing here -->", convert.Options{})
	if got := SprintResult(res); got != "" {
		t.Errorf("Empty result should print nothing, got %q", got)
	}
}
