package engine

import (
	"testing"

	"quizboard_backend/internal/model"
)

func TestTemplateByName(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		resolved string
	}{
		{"known template", "chalk", "chalk"},
		{"default", "playful", "playful"},
		{"unknown falls back", "neon", "playful"},
		{"empty falls back", "", "playful"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := TemplateByName(tt.in)
			if got != tt.resolved {
				t.Errorf("TemplateByName(%q) resolved %q, want %q", tt.in, got, tt.resolved)
			}
		})
	}
}

func TestTemplateNamesAllExist(t *testing.T) {
	if len(TemplateNames) != len(Templates) {
		t.Fatalf("TemplateNames has %d entries, Templates has %d", len(TemplateNames), len(Templates))
	}
	for _, name := range TemplateNames {
		if _, ok := Templates[name]; !ok {
			t.Errorf("TemplateNames lists %q but Templates has no such key", name)
		}
	}
}

func TestIsOptionLabel(t *testing.T) {
	labelMeta := &model.CustomData{
		QuizOption: &model.QuizOptionMeta{Role: "label"},
	}

	tests := []struct {
		name string
		el   model.Element
		want bool
	}{
		{
			name: "metadata role",
			el:   model.Element{Type: model.ElementText, Text: "anything", CustomData: labelMeta},
			want: true,
		},
		{
			name: "legacy alpha label",
			el:   model.Element{Type: model.ElementText, Text: "B."},
			want: true,
		},
		{
			name: "legacy numeric label",
			el:   model.Element{Type: model.ElementText, Text: "12."},
			want: true,
		},
		{
			name: "legacy label with whitespace",
			el:   model.Element{Type: model.ElementText, Text: " C. "},
			want: true,
		},
		{
			name: "plain sentence",
			el:   model.Element{Type: model.ElementText, Text: "A. is not alone"},
			want: false,
		},
		{
			name: "rectangle never a label",
			el:   model.Element{Type: model.ElementRectangle, Text: "A.", CustomData: labelMeta},
			want: false,
		},
		{
			name: "lowercase letter not legacy",
			el:   model.Element{Type: model.ElementText, Text: "b."},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isOptionLabel(&tt.el); got != tt.want {
				t.Errorf("isOptionLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyTemplate(t *testing.T) {
	tpl := Templates["chalk"]
	optionMeta := &model.CustomData{QuizOption: &model.QuizOptionMeta{OptionIndex: 0}}

	elements := []model.Element{
		{ID: "opt-rect", Type: model.ElementRectangle, BackgroundColor: "#000", CustomData: optionMeta},
		{ID: "slide-bg", Type: model.ElementRectangle, CustomData: &model.CustomData{QuizSlideBackground: true}},
		{ID: "label", Type: model.ElementText, Text: "A.", StrokeColor: "#000"},
		{ID: "answer-rect", Type: model.ElementRectangle, CustomData: &model.CustomData{
			AnswerButton: &model.AnswerButtonMeta{ExplanationElementIDs: []string{"exp-box"}},
		}},
		{ID: "answer-text", Type: model.ElementText, Text: "Show answer", CustomData: &model.CustomData{
			AnswerButton: &model.AnswerButtonMeta{},
		}},
		{ID: "exp-box", Type: model.ElementRectangle},
		{ID: "bystander", Type: model.ElementText, Text: "free-hand note", StrokeColor: "#123456"},
	}

	out := ApplyTemplate(elements, tpl)
	if len(out) != len(elements) {
		t.Fatalf("ApplyTemplate returned %d elements, want %d", len(out), len(elements))
	}

	byID := make(map[string]model.Element)
	for _, el := range out {
		byID[el.ID] = el
	}

	if got := byID["opt-rect"]; got.BackgroundColor != tpl.OptionBg || got.StrokeColor != tpl.OptionStroke {
		t.Errorf("option rect restyle: bg %q stroke %q", got.BackgroundColor, got.StrokeColor)
	}
	if got := byID["slide-bg"]; got.BackgroundColor != tpl.SlideBg {
		t.Errorf("slide background restyle: bg %q, want %q", got.BackgroundColor, tpl.SlideBg)
	}
	if got := byID["label"]; got.StrokeColor != tpl.LabelColor {
		t.Errorf("label restyle: stroke %q, want %q", got.StrokeColor, tpl.LabelColor)
	}
	if got := byID["answer-rect"]; got.BackgroundColor != tpl.AnswerBg {
		t.Errorf("answer rect restyle: bg %q, want %q", got.BackgroundColor, tpl.AnswerBg)
	}
	if got := byID["answer-text"]; got.StrokeColor != tpl.AnswerText {
		t.Errorf("answer text restyle: stroke %q, want %q", got.StrokeColor, tpl.AnswerText)
	}
	if got := byID["exp-box"]; got.BackgroundColor != tpl.ExplanationBg {
		t.Errorf("explanation box restyle via answer indicator: bg %q, want %q", got.BackgroundColor, tpl.ExplanationBg)
	}
	if got := byID["bystander"]; got.StrokeColor != "#123456" {
		t.Errorf("untagged element modified: stroke %q", got.StrokeColor)
	}

	// Input slice untouched.
	if elements[0].BackgroundColor != "#000" {
		t.Error("ApplyTemplate mutated its input")
	}
}

func TestApplyTemplateKeepsGeometry(t *testing.T) {
	tpl := Templates["sticky"]
	in := []model.Element{{
		ID: "r", Type: model.ElementRectangle,
		X: 10, Y: 20, Width: 300, Height: 80,
		CustomData: &model.CustomData{QuizOption: &model.QuizOptionMeta{}},
	}}
	out := ApplyTemplate(in, tpl)
	got := out[0]
	if got.X != 10 || got.Y != 20 || got.Width != 300 || got.Height != 80 {
		t.Errorf("geometry changed: %+v", got)
	}
}
