package engine

import "testing"

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "What is 2+2?", "What is 2+2?"},
		{"strips tags", "<p>Hello <b>world</b></p>", "Hello world"},
		{"decodes entities", "a &lt; b &amp;&amp; b &gt; c", "a < b && b > c"},
		{"collapses whitespace", "  one \n\t two   three ", "one two three"},
		{"tags then entities", "<div>x &times; y</div>", "x × y"},
		{"empty", "", ""},
		{"only markup", "<br><hr>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeInput(tt.in); got != tt.want {
				t.Errorf("NormalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripNotationDelimiters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"inline parens", `\(x^2\)`, "x^2"},
		{"display brackets", `\[\frac{a}{b}\]`, `\frac{a}{b}`},
		{"single dollars", "$E = mc^2$", "E = mc^2"},
		{"double dollars", "$$a+b$$", "a+b"},
		{"no delimiters", "x + y", "x + y"},
		{"surrounding space", "  $x$  ", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripNotationDelimiters(tt.in); got != tt.want {
				t.Errorf("StripNotationDelimiters(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Dhaka is the capital", "Dhaka is the capital"},
		{"frac flattened", `\(\frac{1}{2}\)`, "1/2"},
		{"times symbol", `3 \times 4`, "3 × 4"},
		{"leq symbol", `x \leq 5`, "x ≤ 5"},
		{"mathrm unwrapped", `\mathrm{km}`, "km"},
		{"text unwrapped", `\text{speed}`, "speed"},
		{"braces unwrapped", `x^{2}`, "x^2"},
		{"backslashes removed", `\alpha + \beta`, "alpha + beta"},
		{"html with notation", `<p>area \(\frac{a}{2}\)</p>`, "area a/2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
