package convert

import (
	"reflect"
	"testing"
)

func TestSegmentText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Call
	}{
		{
			"plain text",
			"hello",
			[]Call{TextFragment("hello")},
		},
		{
			"entity between runs",
			"A&nbsp;B",
			[]Call{TextFragment("A"), EntityRef("nbsp"), TextFragment("B")},
		},
		{
			"adjacent entities, no empty runs",
			"A&amp;&lt;B",
			[]Call{TextFragment("A"), EntityRef("amp"), EntityRef("lt"), TextFragment("B")},
		},
		{
			"entity only",
			"&copy;",
			[]Call{EntityRef("copy")},
		},
		{
			"leading entity",
			"&gt;x",
			[]Call{EntityRef("gt"), TextFragment("x")},
		},
		{
			"numeric reference passes through raw",
			"A&#169;B",
			[]Call{TextFragment("A&#169;B")},
		},
		{
			"hex numeric reference passes through raw",
			"&#x2603;",
			[]Call{TextFragment("&#x2603;")},
		},
		{
			"unterminated entity at end of input",
			"A&copy",
			[]Call{TextFragment("A"), EntityRef("copy")},
		},
		{
			"bare trailing ampersand stays literal",
			"A&",
			[]Call{TextFragment("A&")},
		},
		{
			"empty reference stays literal",
			"A&;B",
			[]Call{TextFragment("A&;B")},
		},
		{
			"empty input",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := segmentText(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("segmentText(%q) = %#v, want %#v", tt.text, got, tt.want)
			}
		})
	}
}
