package convert

import "testing"

func TestClassSelector(t *testing.T) {
	tests := []struct {
		name  string
		class string
		want  string
	}{
		{"single class", "btn", ".btn"},
		{"multiple classes", "a b c", ".a.b.c"},
		{"irregular spacing", "  a   b  ", ".a.b"},
		{"tabs and newlines", "a\tb\nc", ".a.b.c"},
		{"empty", "", ""},
		{"whitespace only", "   \t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classSelector(tt.class); got != tt.want {
				t.Errorf("classSelector(%q) = %q, want %q", tt.class, got, tt.want)
			}
		})
	}
}
