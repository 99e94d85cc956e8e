package engine

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/srwiley/oksvg"

	"quizboard_backend/pkg/monitoring"
)

// RenderedNotation is one cache entry: vector markup encoded as a
// displayable image reference plus intrinsic pixel dimensions.
type RenderedNotation struct {
	DataURL string
	Width   float64
	Height  float64
}

// Fallback size when a notation's markup carries no usable dimensions.
const (
	fallbackNotationWidth  = 120.0
	fallbackNotationHeight = 40.0
)

// NotationRenderer converts notation spans to SVG. Entries are content
// addressed by the normalized, delimiter-stripped expression and never
// evicted for the lifetime of the process; rendering is deterministic per
// key, so a concurrent double render is wasted work, not corruption.
type NotationRenderer struct {
	mu          sync.Mutex
	measurer    *Measurer
	imageCache  map[string]*RenderedNotation
	markupCache map[string]string
}

func NewNotationRenderer(measurer *Measurer) *NotationRenderer {
	return &NotationRenderer{
		measurer:    measurer,
		imageCache:  make(map[string]*RenderedNotation),
		markupCache: make(map[string]string),
	}
}

// RenderToImage renders a notation value (delimiters included) to an SVG
// data URL with pixel dimensions. Returns nil for input that normalizes
// to nothing; callers treat that as "segment unrenderable" and skip it.
func (r *NotationRenderer) RenderToImage(value string) *RenderedNotation {
	stripped := StripNotationDelimiters(NormalizeInput(value))
	if stripped == "" {
		return nil
	}

	r.mu.Lock()
	if cached, ok := r.imageCache[stripped]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	markup := r.typesetSVG(stripped)
	if markup == "" {
		monitoring.NotationRenderCounter.WithLabelValues("failed").Inc()
		return nil
	}
	markup = ensureSVGNamespaces(markup)
	monitoring.NotationRenderCounter.WithLabelValues("rendered").Inc()

	width, height := svgDimensions(markup)
	rendered := &RenderedNotation{
		DataURL: toBase64DataURL(markup),
		Width:   width,
		Height:  height,
	}

	r.mu.Lock()
	r.imageCache[stripped] = rendered
	r.mu.Unlock()

	return rendered
}

// RenderToMarkup returns the raw SVG markup for direct inline display,
// cached independently of the image form.
func (r *NotationRenderer) RenderToMarkup(value string) string {
	stripped := StripNotationDelimiters(NormalizeInput(value))
	if stripped == "" {
		return ""
	}

	r.mu.Lock()
	if cached, ok := r.markupCache[stripped]; ok {
		r.mu.Unlock()
		return cached
	}
	r.mu.Unlock()

	markup := r.typesetSVG(stripped)
	if markup == "" {
		return ""
	}
	markup = ensureSVGNamespaces(markup)

	r.mu.Lock()
	r.markupCache[stripped] = markup
	r.mu.Unlock()

	return markup
}

func ensureSVGNamespaces(markup string) string {
	if !strings.Contains(markup, "xmlns=") {
		markup = strings.Replace(markup, "<svg ", `<svg xmlns="http://www.w3.org/2000/svg" `, 1)
	}
	if !strings.Contains(markup, "xmlns:xlink=") {
		markup = strings.Replace(markup, "<svg ", `<svg xmlns:xlink="http://www.w3.org/1999/xlink" `, 1)
	}
	return markup
}

func toBase64DataURL(markup string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(markup))
}

var (
	svgWidthAttrRegex  = regexp.MustCompile(`width="([^"]+)"`)
	svgHeightAttrRegex = regexp.MustCompile(`height="([^"]+)"`)
	svgViewBoxRegex    = regexp.MustCompile(`viewBox="([^"]+)"`)
	svgDimensionRegex  = regexp.MustCompile(`([0-9.]+)\s*(px|ex|em)?`)
)

// parseSVGDimension understands px, ex and em units the way the notation
// markup uses them; ex approximates 8px and em 16px.
func parseSVGDimension(raw string) (float64, bool) {
	m := svgDimensionRegex.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	switch m[2] {
	case "", "px":
		return value, true
	case "ex":
		return value * 8, true
	case "em":
		return value * 16, true
	}
	return value, true
}

// svgDimensions resolves intrinsic pixel dimensions: explicit width/height
// attributes first, then the viewBox, then a decode probe, then a fixed
// fallback.
func svgDimensions(markup string) (float64, float64) {
	var width, height float64
	if m := svgWidthAttrRegex.FindStringSubmatch(markup); m != nil {
		width, _ = parseSVGDimension(m[1])
	}
	if m := svgHeightAttrRegex.FindStringSubmatch(markup); m != nil {
		height, _ = parseSVGDimension(m[1])
	}
	if width > 0 && height > 0 {
		return width, height
	}

	if m := svgViewBoxRegex.FindStringSubmatch(markup); m != nil {
		parts := strings.Fields(m[1])
		if len(parts) == 4 {
			w, errW := strconv.ParseFloat(parts[2], 64)
			h, errH := strconv.ParseFloat(parts[3], 64)
			if errW == nil && errH == nil && w > 0 && h > 0 {
				return w, h
			}
		}
	}

	if icon, err := oksvg.ReadIconStream(strings.NewReader(markup)); err == nil {
		if icon.ViewBox.W > 0 && icon.ViewBox.H > 0 {
			return icon.ViewBox.W, icon.ViewBox.H
		}
	}

	return fallbackNotationWidth, fallbackNotationHeight
}
