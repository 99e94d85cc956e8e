package engine

import (
	"reflect"
	"testing"
)

func TestSplitNotationSegments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Segment
	}{
		{
			name: "plain text only",
			in:   "What is the boiling point of water?",
			want: []Segment{{SegmentText, "What is the boiling point of water?"}},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "inline parens",
			in:   `Solve \(x^2 = 4\) for x`,
			want: []Segment{
				{SegmentText, "Solve"},
				{SegmentNotation, `\(x^2 = 4\)`},
				{SegmentText, "for x"},
			},
		},
		{
			name: "display brackets",
			in:   `Given \[\frac{a}{b}\] find b`,
			want: []Segment{
				{SegmentText, "Given"},
				{SegmentNotation, `\[\frac{a}{b}\]`},
				{SegmentText, "find b"},
			},
		},
		{
			name: "single dollar",
			in:   "speed is $v = s/t$ here",
			want: []Segment{
				{SegmentText, "speed is"},
				{SegmentNotation, "$v = s/t$"},
				{SegmentText, "here"},
			},
		},
		{
			name: "double dollar not split into empty inline spans",
			in:   "$$a + b$$",
			want: []Segment{{SegmentNotation, "$$a + b$$"}},
		},
		{
			name: "multiple spans keep reading order",
			in:   `if \(a\) then $b$ else`,
			want: []Segment{
				{SegmentText, "if"},
				{SegmentNotation, `\(a\)`},
				{SegmentText, "then"},
				{SegmentNotation, "$b$"},
				{SegmentText, "else"},
			},
		},
		{
			name: "notation at end",
			in:   `total: \(n!\)`,
			want: []Segment{
				{SegmentText, "total:"},
				{SegmentNotation, `\(n!\)`},
			},
		},
		{
			name: "markup stripped before split",
			in:   `<b>Find</b> \(x\)`,
			want: []Segment{
				{SegmentText, "Find"},
				{SegmentNotation, `\(x\)`},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitNotationSegments(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitNotationSegments(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestContainsNotation(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain text", "no math here", false},
		{"inline parens", `\(x\)`, true},
		{"display brackets", `\[x\]`, true},
		{"dollar pair", "$x+y$", true},
		{"frac command without delimiters", `\frac{1}{2}`, true},
		{"sqrt command", `\sqrt{2}`, true},
		{"begin environment", `\begin{matrix}`, true},
		{"lone dollar sign", "costs $5 at most", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsNotation(tt.in); got != tt.want {
				t.Errorf("ContainsNotation(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
