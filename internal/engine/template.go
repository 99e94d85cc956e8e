package engine

import (
	"regexp"
	"strings"

	"quizboard_backend/internal/model"
)

type LabelFormat string

const (
	LabelAlpha   LabelFormat = "alpha"
	LabelNumeric LabelFormat = "numeric"
)

// TemplateStyles is one named, immutable style set applied uniformly to
// all quiz-tagged elements.
type TemplateStyles struct {
	OptionBg          string
	OptionStroke      string
	OptionStrokeWidth float64
	OptionRoughness   float64
	OptionRoundness   *model.Roundness
	SlideBg           string
	SlideStroke       string
	SlideStrokeWidth  float64
	SlideRoughness    float64
	SlideRoundness    *model.Roundness
	SlidePadding      float64
	AnswerBg          string
	AnswerStroke      string
	AnswerText        string
	ExplanationBg     string
	ExplanationStroke string
	LabelColor        string
	LabelFormat       LabelFormat
}

const DefaultTemplate = "playful"

var adaptive = &model.Roundness{Type: model.RoundnessAdaptive}
var proportional = &model.Roundness{Type: model.RoundnessProportional}

// Templates is the full named style table. Keys are what the preference
// store persists; unknown keys fall back to DefaultTemplate.
var Templates = map[string]TemplateStyles{
	"playful": {
		OptionBg: "#fff6ff", OptionStroke: "#7b3ff2", OptionStrokeWidth: 2,
		OptionRoughness: 0.7, OptionRoundness: adaptive,
		SlideBg: "#fff0fb", SlideStroke: "#c4a0ff", SlideStrokeWidth: 2,
		SlideRoughness: 0.6, SlideRoundness: adaptive, SlidePadding: 28,
		AnswerBg: "#dce9ff", AnswerStroke: "#4d7cff", AnswerText: "#1f3b8f",
		ExplanationBg: "#fff3d6", ExplanationStroke: "#ff9f40",
		LabelColor: "#5c2bd9", LabelFormat: LabelAlpha,
	},
	"chalk": {
		OptionBg: "#f1f5f9", OptionStroke: "#0f172a", OptionStrokeWidth: 3,
		OptionRoughness: 0, OptionRoundness: nil,
		SlideBg: "#ffffff", SlideStroke: "#0f172a", SlideStrokeWidth: 3,
		SlideRoughness: 0, SlideRoundness: nil, SlidePadding: 24,
		AnswerBg: "#e2e8f0", AnswerStroke: "#0f172a", AnswerText: "#0f172a",
		ExplanationBg: "#e9f2ff", ExplanationStroke: "#1d4ed8",
		LabelColor: "#0f172a", LabelFormat: LabelNumeric,
	},
	"sticky": {
		OptionBg: "#fff7a8", OptionStroke: "#b08900", OptionStrokeWidth: 2,
		OptionRoughness: 0.6, OptionRoundness: adaptive,
		SlideBg: "#fff2a8", SlideStroke: "#d2a100", SlideStrokeWidth: 2,
		SlideRoughness: 0.8, SlideRoundness: adaptive, SlidePadding: 36,
		AnswerBg: "#ffd36a", AnswerStroke: "#c27c00", AnswerText: "#7a4b00",
		ExplanationBg: "#fff1c1", ExplanationStroke: "#d4a017",
		LabelColor: "#7a4b00", LabelFormat: LabelAlpha,
	},
	"whiteboard": {
		OptionBg: "#ffffff", OptionStroke: "#0ea5e9", OptionStrokeWidth: 2,
		OptionRoughness: 0.2, OptionRoundness: adaptive,
		SlideBg: "#ffffff", SlideStroke: "#cbd5f5", SlideStrokeWidth: 2,
		SlideRoughness: 0.2, SlideRoundness: adaptive, SlidePadding: 20,
		AnswerBg: "#e0f2fe", AnswerStroke: "#0284c7", AnswerText: "#075985",
		ExplanationBg: "#f1f5f9", ExplanationStroke: "#94a3b8",
		LabelColor: "#0f172a", LabelFormat: LabelNumeric,
	},
	"noteboard": {
		OptionBg: "#fdf2f8", OptionStroke: "#db2777", OptionStrokeWidth: 2,
		OptionRoughness: 0.5, OptionRoundness: proportional,
		SlideBg: "#fff7fb", SlideStroke: "#f9a8d4", SlideStrokeWidth: 2,
		SlideRoughness: 0.5, SlideRoundness: proportional, SlidePadding: 26,
		AnswerBg: "#fbcfe8", AnswerStroke: "#be185d", AnswerText: "#831843",
		ExplanationBg: "#fff1f2", ExplanationStroke: "#fb7185",
		LabelColor: "#9d174d", LabelFormat: LabelAlpha,
	},
	"insta": {
		OptionBg: "#f5f3ff", OptionStroke: "#7c3aed", OptionStrokeWidth: 2,
		OptionRoughness: 0.4, OptionRoundness: adaptive,
		SlideBg: "#fdf4ff", SlideStroke: "#f0abfc", SlideStrokeWidth: 2,
		SlideRoughness: 0.4, SlideRoundness: adaptive, SlidePadding: 30,
		AnswerBg: "#fee2e2", AnswerStroke: "#ef4444", AnswerText: "#991b1b",
		ExplanationBg: "#ede9fe", ExplanationStroke: "#a855f7",
		LabelColor: "#6d28d9", LabelFormat: LabelNumeric,
	},
}

// TemplateNames lists the selectable templates in menu order.
var TemplateNames = []string{
	"playful", "chalk", "sticky", "whiteboard", "noteboard", "insta",
}

// TemplateByName resolves a stored or requested name, falling back to the
// default for anything unrecognized.
func TemplateByName(name string) (TemplateStyles, string) {
	if tpl, ok := Templates[name]; ok {
		return tpl, name
	}
	return Templates[DefaultTemplate], DefaultTemplate
}

var (
	alphaLabelRegex   = regexp.MustCompile(`^[A-Z]\.$`)
	numericLabelRegex = regexp.MustCompile(`^\d+\.$`)
)

// isOptionLabel matches labels by metadata, with a textual fallback for
// content that predates metadata tagging. Legacy matches are heuristic
// only; metadata is authoritative when present.
func isOptionLabel(el *model.Element) bool {
	if el.Type != model.ElementText {
		return false
	}
	if el.CustomData != nil && el.CustomData.QuizOption != nil && el.CustomData.QuizOption.Role == "label" {
		return true
	}
	trimmed := strings.TrimSpace(el.Text)
	return alphaLabelRegex.MatchString(trimmed) || numericLabelRegex.MatchString(trimmed)
}

// ApplyTemplate restyles every quiz-tagged element to the target template
// without touching geometry. Elements matching no predicate pass through
// unchanged. Explanation boxes are found indirectly through the ids listed
// on answer-indicator elements.
func ApplyTemplate(elements []model.Element, tpl TemplateStyles) []model.Element {
	explanationBoxIDs := make(map[string]bool)
	for i := range elements {
		if cd := elements[i].CustomData; cd != nil && cd.AnswerButton != nil {
			for _, id := range cd.AnswerButton.ExplanationElementIDs {
				explanationBoxIDs[id] = true
			}
		}
	}

	out := make([]model.Element, len(elements))
	for i := range elements {
		el := elements[i]
		cd := el.CustomData

		switch {
		case cd != nil && cd.QuizOption != nil && el.Type == model.ElementRectangle:
			el.BackgroundColor = tpl.OptionBg
			el.StrokeColor = tpl.OptionStroke
			el.StrokeWidth = tpl.OptionStrokeWidth
			el.Roughness = tpl.OptionRoughness
			el.Roundness = tpl.OptionRoundness

		case cd != nil && cd.QuizSlideBackground && el.Type == model.ElementRectangle:
			el.BackgroundColor = tpl.SlideBg
			el.StrokeColor = tpl.SlideStroke
			el.StrokeWidth = tpl.SlideStrokeWidth
			el.Roughness = tpl.SlideRoughness
			el.Roundness = tpl.SlideRoundness

		case isOptionLabel(&el):
			el.StrokeColor = tpl.LabelColor

		case cd != nil && cd.AnswerButton != nil && el.Type == model.ElementRectangle:
			el.BackgroundColor = tpl.AnswerBg
			el.StrokeColor = tpl.AnswerStroke
			el.StrokeWidth = tpl.OptionStrokeWidth
			el.Roughness = tpl.OptionRoughness
			el.Roundness = tpl.OptionRoundness

		case cd != nil && cd.AnswerButton != nil && el.Type == model.ElementText:
			el.StrokeColor = tpl.AnswerText

		case explanationBoxIDs[el.ID] && el.Type == model.ElementRectangle:
			el.BackgroundColor = tpl.ExplanationBg
			el.StrokeColor = tpl.ExplanationStroke
			el.StrokeWidth = tpl.OptionStrokeWidth
			el.Roughness = tpl.OptionRoughness
			el.Roundness = tpl.OptionRoundness
		}

		out[i] = el
	}
	return out
}
