package engine

import (
	"bytes"
	"fmt"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// Server-side notation typesetting. This is intentionally a subset
// renderer: expressions are flattened to unicode text with superscript
// and subscript runs, then emitted as styled SVG text. It trades TeX
// completeness for determinism; anything it cannot express still renders
// as readable inline math.
const (
	mathFontSize = 20.0
	mathPadding  = 6.0
	scriptScale  = 0.7
	mathFill     = "#1f2937"
)

type scriptLevel int

const (
	levelBase scriptLevel = 0
	levelSup  scriptLevel = 1
	levelSub  scriptLevel = -1
)

type mathSpan struct {
	text  string
	level scriptLevel
}

// parseMathSpans splits a delimiter-stripped expression into base,
// superscript and subscript runs. A script argument is either the single
// following character or one brace group. Unbalanced braces are tolerated
// by reading to the end of input.
func parseMathSpans(expr string) []mathSpan {
	var spans []mathSpan
	var current strings.Builder

	flush := func(level scriptLevel) {
		if text := notationToPlainText(current.String()); strings.TrimSpace(text) != "" {
			spans = append(spans, mathSpan{text: strings.TrimSpace(text), level: level})
		}
		current.Reset()
	}

	runes := []rune(expr)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '^' && r != '_' {
			current.WriteRune(r)
			continue
		}

		flush(levelBase)
		level := levelSup
		if r == '_' {
			level = levelSub
		}

		if i+1 >= len(runes) {
			break
		}
		i++
		if runes[i] == '{' {
			depth := 1
			var arg strings.Builder
			for i+1 < len(runes) && depth > 0 {
				i++
				switch runes[i] {
				case '{':
					depth++
				case '}':
					depth--
				}
				if depth > 0 {
					arg.WriteRune(runes[i])
				}
			}
			current.WriteString(arg.String())
		} else {
			current.WriteRune(runes[i])
		}
		flush(level)
	}
	flush(levelBase)

	return spans
}

// typesetSVG lays the spans out on one baseline and returns SVG markup
// with explicit pixel width and height attributes. Returns "" when the
// expression flattens to nothing renderable.
func (r *NotationRenderer) typesetSVG(expr string) string {
	spans := parseMathSpans(expr)
	if len(spans) == 0 {
		return ""
	}

	hasScripts := false
	totalWidth := 0.0
	for _, span := range spans {
		size := mathFontSize
		if span.level != levelBase {
			size = mathFontSize * scriptScale
			hasScripts = true
		}
		w, _ := r.measurer.TextSize(span.text, size)
		totalWidth += w
	}

	height := mathFontSize*lineHeightFactor + 2*mathPadding
	if hasScripts {
		height = mathFontSize*1.5 + 2*mathPadding
	}
	width := totalWidth + 2*mathPadding
	baseline := mathPadding + mathFontSize

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(width+0.5), int(height+0.5))

	x := mathPadding
	for _, span := range spans {
		size := mathFontSize
		y := baseline
		switch span.level {
		case levelSup:
			size = mathFontSize * scriptScale
			y = baseline - mathFontSize*0.45
		case levelSub:
			size = mathFontSize * scriptScale
			y = baseline + mathFontSize*0.25
		}

		style := fmt.Sprintf(
			"font-family:serif;font-style:italic;font-size:%.1fpx;fill:%s",
			size, mathFill,
		)
		canvas.Text(int(x+0.5), int(y+0.5), span.text, style)

		w, _ := r.measurer.TextSize(span.text, size)
		x += w
	}
	canvas.End()

	return buf.String()
}
