package engine

import (
	"testing"

	"quizboard_backend/internal/model"
)

func newTestComposer(t *testing.T) *SlideComposer {
	t.Helper()
	m, err := NewMeasurer()
	if err != nil {
		t.Fatalf("NewMeasurer() error: %v", err)
	}
	return NewSlideComposer(NewFlowLayout(m, NewNotationRenderer(m)), m)
}

func sampleQuestions() []model.ExamQuestion {
	return []model.ExamQuestion{
		{
			ID:           float64(1),
			Question:     "What is the capital of Bangladesh?",
			Options:      []string{"Dhaka", "Chattogram", "Sylhet", "Khulna"},
			CorrectIndex: float64(0),
			Explanation:  "<p>Dhaka has been the capital since 1971.</p>",
		},
		{
			ID:       "q2",
			Question: `Evaluate \(2^3\)`,
			Options:  []string{"6", "8"},
			Answer:   "8",
		},
	}
}

func TestComposeSlidePlacement(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(sampleQuestions(), Templates["playful"])

	if len(result.Anchors) != 2 {
		t.Fatalf("got %d anchors, want one per question", len(result.Anchors))
	}

	// Second slide sits one pitch to the right of the first.
	gap := result.Anchors[1].CenterX - result.Anchors[0].CenterX
	if gap < SlideGap/2 || gap > SlideGap*1.5 {
		t.Errorf("slide pitch %g nowhere near %g", gap, SlideGap)
	}
}

func TestComposeBackgroundFirstInSlide(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(sampleQuestions()[:1], Templates["playful"])

	if len(result.Elements) == 0 {
		t.Fatal("no elements composed")
	}
	first := result.Elements[0]
	if first.Type != model.ElementRectangle || first.CustomData == nil || !first.CustomData.QuizSlideBackground {
		t.Error("first element of a slide must be its background rectangle")
	}

	// Background bounds cover every element of the slide.
	for i, el := range result.Elements[1:] {
		if el.X < first.X || el.Y < first.Y ||
			el.X+el.Width > first.X+first.Width ||
			el.Y+el.Height > first.Y+first.Height {
			t.Errorf("element %d outside background bounds", i+1)
		}
	}
}

func TestComposeSharedGroupPerQuestion(t *testing.T) {
	composer := newTestComposer(t)
	questions := sampleQuestions()
	result := composer.Compose(questions, Templates["playful"])

	groups := make(map[string]bool)
	for _, el := range result.Elements {
		if len(el.GroupIDs) != 1 {
			t.Fatalf("element %s has %d group ids", el.ID, len(el.GroupIDs))
		}
		groups[el.GroupIDs[0]] = true
	}
	if len(groups) != len(questions) {
		t.Errorf("got %d distinct groups, want %d", len(groups), len(questions))
	}
}

func TestComposeOptionMetadata(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(sampleQuestions()[:1], Templates["playful"])

	var rects []model.Element
	for _, el := range result.Elements {
		if el.Type == model.ElementRectangle && el.CustomData != nil && el.CustomData.QuizOption != nil {
			rects = append(rects, el)
		}
	}
	if len(rects) != 4 {
		t.Fatalf("got %d option rects, want 4", len(rects))
	}

	correct := 0
	for _, rect := range rects {
		meta := rect.CustomData.QuizOption
		if meta.OptionElementID != rect.ID {
			t.Errorf("option %d metadata points at %q, not its own rect", meta.OptionIndex, meta.OptionElementID)
		}
		if meta.QuestionID != "1" {
			t.Errorf("option %d question id %q, want 1", meta.OptionIndex, meta.QuestionID)
		}
		if meta.IsCorrect {
			correct++
			if meta.OptionIndex != 0 {
				t.Errorf("wrong option %d marked correct", meta.OptionIndex)
			}
		}
		if rect.Width != OptionMaxWidth {
			t.Errorf("option rect width %g, want %g", rect.Width, OptionMaxWidth)
		}
	}
	if correct != 1 {
		t.Errorf("%d options marked correct, want 1", correct)
	}
}

func TestComposeOptionLabels(t *testing.T) {
	composer := newTestComposer(t)

	alpha := composer.Compose(sampleQuestions()[:1], Templates["playful"])
	labels := labelTexts(alpha.Elements)
	if len(labels) != 4 || labels[0] != "A." || labels[3] != "D." {
		t.Errorf("alpha labels = %v", labels)
	}

	numeric := composer.Compose(sampleQuestions()[:1], Templates["chalk"])
	labels = labelTexts(numeric.Elements)
	if len(labels) != 4 || labels[0] != "1." || labels[3] != "4." {
		t.Errorf("numeric labels = %v", labels)
	}
}

func labelTexts(elements []model.Element) []string {
	var out []string
	for _, el := range elements {
		if el.Type == model.ElementText && el.CustomData != nil &&
			el.CustomData.QuizOption != nil && el.CustomData.QuizOption.Role == "label" {
			out = append(out, el.Text)
		}
	}
	return out
}

func TestComposeExplanationCard(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(sampleQuestions(), Templates["playful"])

	var cards []model.Element
	for _, el := range result.Elements {
		if el.Type == model.ElementEmbed {
			cards = append(cards, el)
		}
	}
	if len(cards) != 1 {
		t.Fatalf("got %d explanation cards, want 1 (second question has none)", len(cards))
	}

	card := cards[0]
	if card.CustomData == nil || card.CustomData.GenerationData == nil {
		t.Fatal("card carries no generation data")
	}
	if card.CustomData.GenerationData.Status != "done" {
		t.Errorf("card status %q, want done", card.CustomData.GenerationData.Status)
	}
	if card.CustomData.GenerationData.HTML == "" {
		t.Error("card html empty")
	}
	if card.Height < ExplanationMinHeight {
		t.Errorf("card height %g below minimum box size", card.Height)
	}
}

func TestComposeNotationRegistersFiles(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(sampleQuestions(), Templates["playful"])

	if len(result.Files) == 0 {
		t.Fatal("notation prompt produced no files")
	}
	for id, entry := range result.Files {
		if entry.ID != id {
			t.Errorf("file entry id %q under key %q", entry.ID, id)
		}
	}

	used := make(map[string]bool)
	for _, el := range result.Elements {
		if el.FileID != "" {
			used[el.FileID] = true
		}
	}
	for id := range result.Files {
		if !used[id] {
			t.Errorf("file %s registered but referenced by no element", id)
		}
	}
}

func TestComposeEmpty(t *testing.T) {
	composer := newTestComposer(t)
	result := composer.Compose(nil, Templates["playful"])
	if len(result.Elements) != 0 || len(result.Anchors) != 0 {
		t.Errorf("empty input composed %d elements, %d anchors", len(result.Elements), len(result.Anchors))
	}
}
