package engine

import (
	"regexp"
	"strings"
)

type SegmentKind string

const (
	SegmentText     SegmentKind = "text"
	SegmentNotation SegmentKind = "notation"
)

// Segment is one piece of a content block in reading order. The sequence
// is fully re-derivable from the source string; there is no hidden state.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// All four delimiter pairs in one pass. $$..$$ must come before $..$ so
// display math is not split into two empty inline spans.
var notationSpanRegex = regexp.MustCompile(
	`(\\\((?s:.*?)\\\))|(\\\[(?s:.*?)\\\])|(\$\$(?s:.*?)\$\$)|(\$[^$]*?\$)`,
)

var notationHintRegex = regexp.MustCompile(
	`\\\(|\\\[|\\begin\{|\$[^$]+\$|\\frac|\\sqrt|\\sum|\\int`,
)

// SplitNotationSegments normalizes the input and splits it into plain text
// and notation spans, preserving reading order. Delimiters stay attached
// to notation values; empty text runs are dropped.
func SplitNotationSegments(value string) []Segment {
	normalized := NormalizeInput(value)
	if normalized == "" {
		return nil
	}

	var segments []Segment
	lastIndex := 0

	for _, loc := range notationSpanRegex.FindAllStringIndex(normalized, -1) {
		if loc[0] > lastIndex {
			if textPart := strings.TrimSpace(normalized[lastIndex:loc[0]]); textPart != "" {
				segments = append(segments, Segment{Kind: SegmentText, Value: textPart})
			}
		}
		if notationPart := strings.TrimSpace(normalized[loc[0]:loc[1]]); notationPart != "" {
			segments = append(segments, Segment{Kind: SegmentNotation, Value: notationPart})
		}
		lastIndex = loc[1]
	}

	if lastIndex < len(normalized) {
		if textPart := strings.TrimSpace(normalized[lastIndex:]); textPart != "" {
			segments = append(segments, Segment{Kind: SegmentText, Value: textPart})
		}
	}

	return segments
}

// ContainsNotation is a fast predicate used to pick the pure-notation
// rendering path without paying for full segmentation. The pattern is
// deliberately broader than the segmenter's delimiters.
func ContainsNotation(value string) bool {
	return notationHintRegex.MatchString(NormalizeInput(value))
}
