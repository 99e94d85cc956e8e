package engine

import (
	"strings"
	"testing"
)

func TestEstimateExplanationHeight(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"empty stays at floor", "", ExplanationMinHeight + 3*explanationLineHeight},
		{"short text stays at floor", "because", ExplanationMinHeight + 3*explanationLineHeight},
		{"four lines", strings.Repeat("x", 81*3+1), ExplanationMinHeight + 4*explanationLineHeight},
		{"very long clamps to ceiling", strings.Repeat("x", 10000), ExplanationMaxHeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateExplanationHeight(tt.in); got != tt.want {
				t.Errorf("EstimateExplanationHeight() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestEstimateExplanationHeightMonotone(t *testing.T) {
	prev := 0.0
	for n := 0; n <= 4000; n += 200 {
		h := EstimateExplanationHeight(strings.Repeat("a", n))
		if h < prev {
			t.Fatalf("height decreased at length %d: %g < %g", n, h, prev)
		}
		prev = h
	}
}

func TestEstimateExplanationHeightIgnoresMarkup(t *testing.T) {
	plain := strings.Repeat("x", 400)
	tagged := "<p>" + plain + "</p>"
	if EstimateExplanationHeight(plain) != EstimateExplanationHeight(tagged) {
		t.Error("markup should not count toward estimated lines")
	}
}

func TestExplanationCardHTML(t *testing.T) {
	html, err := ExplanationCardHTML("<p>Because \\(F = ma\\)</p>", "element-42")
	if err != nil {
		t.Fatalf("ExplanationCardHTML() error: %v", err)
	}

	for _, want := range []string{
		`"element-42"`,
		`"excalidraw:resize"`,
		"katex.min.js",
		"auto-render.min.js",
		"requestAnimationFrame",
		"ResizeObserver",
		"MutationObserver",
		"postMessage",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Explanation payload must arrive as an escaped JS string literal.
	if !strings.Contains(html, `<p>`) && !strings.Contains(html, `<p>Because`) {
		t.Error("explanation payload not embedded")
	}
}

func TestExplanationCardHTMLEscapesQuotes(t *testing.T) {
	html, err := ExplanationCardHTML(`say "hello"`, "id-1")
	if err != nil {
		t.Fatalf("ExplanationCardHTML() error: %v", err)
	}
	if !strings.Contains(html, `\"hello\"`) {
		t.Error("quotes in the explanation must be escaped inside the script")
	}
}
