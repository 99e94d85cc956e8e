package engine

import (
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Line height multiplier used by the canvas frontend for its text elements.
const lineHeightFactor = 1.25

// Measurer answers "how wide is this string at this font size" questions
// for the flow layout. Faces are derived from one embedded face so results
// are deterministic across hosts; no font files are read at runtime.
type Measurer struct {
	mu    sync.Mutex
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewMeasurer() (*Measurer, error) {
	parsed, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &Measurer{
		font:  parsed,
		faces: make(map[float64]font.Face),
	}, nil
}

func (m *Measurer) face(size float64) font.Face {
	if f, ok := m.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[size] = f
	return f
}

// TextSize measures a single-line string. Height is the line box, not the
// glyph extent, to match how the canvas host sizes text elements.
func (m *Measurer) TextSize(s string, fontSize float64) (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(m.face(fontSize))
	w, _ := dc.MeasureString(s)
	return w, fontSize * lineHeightFactor
}

// Wrap breaks s into lines no wider than maxWidth, joined by newlines.
// A single token wider than maxWidth is left unbroken on its own line.
func (m *Measurer) Wrap(s string, fontSize, maxWidth float64) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(m.face(fontSize))
	lines := dc.WordWrap(s, maxWidth)
	return strings.Join(lines, "\n")
}

// MultilineSize measures a wrapped block produced by Wrap.
func (m *Measurer) MultilineSize(s string, fontSize float64) (float64, float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dc := gg.NewContext(1, 1)
	dc.SetFontFace(m.face(fontSize))

	var maxW float64
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if w, _ := dc.MeasureString(line); w > maxW {
			maxW = w
		}
	}
	return maxW, float64(len(lines)) * fontSize * lineHeightFactor
}
