package engine

import (
	"fmt"

	"github.com/google/uuid"

	"quizboard_backend/internal/model"
)

const (
	QuestionFontSize = 21.0
	OptionFontSize   = 18.0
	QuestionMaxWidth = 800.0
	OptionMaxWidth   = 550.0
	OptionPadding    = 12.0
	OptionGap        = 16.0
	QuestionGap      = 24.0
	QuestionBlockGap = 48.0

	// SlideGap is the horizontal pitch between consecutive questions. It
	// must stay above any plausible slide width so slides never overlap.
	SlideGap     = 2000.0
	SlidePadding = 60.0
)

// SlideAnchor is the scroll-to center of one composed slide.
type SlideAnchor struct {
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
}

type ComposeResult struct {
	Elements []model.Element
	Files    map[string]model.FileEntry
	Anchors  []SlideAnchor
}

// SlideComposer assembles one slide per question: flowed prompt, option
// rows, optional explanation card, then a background rectangle inserted
// in front of the question's elements so it renders behind them.
type SlideComposer struct {
	flow     *FlowLayout
	measurer *Measurer
}

func NewSlideComposer(flow *FlowLayout, measurer *Measurer) *SlideComposer {
	return &SlideComposer{flow: flow, measurer: measurer}
}

func optionLabel(format LabelFormat, index int) string {
	if format == LabelNumeric {
		return fmt.Sprintf("%d", index+1)
	}
	return string(rune('A' + index))
}

func questionIDString(id interface{}) string {
	if id == nil {
		return ""
	}
	return fmt.Sprint(id)
}

// Compose lays out all questions side by side along the fixed pitch.
// Layout runs strictly in array order; the result is returned whole so
// the caller can commit it as one atomic scene update.
func (c *SlideComposer) Compose(questions []model.ExamQuestion, tpl TemplateStyles) *ComposeResult {
	result := &ComposeResult{
		Files: make(map[string]model.FileEntry),
	}

	for questionIndex := range questions {
		item := &questions[questionIndex]

		var questionElements []model.Element
		groupID := uuid.New().String()
		slideStartIndex := len(result.Elements)
		slideX := float64(questionIndex)*SlideGap + SlidePadding
		currentY := SlidePadding

		prompt := c.flow.Layout(FlowRequest{
			RawText:  item.Question,
			X:        slideX,
			Y:        currentY,
			MaxWidth: QuestionMaxWidth,
			FontSize: QuestionFontSize,
			GroupID:  groupID,
			Files:    result.Files,
		})
		questionElements = append(questionElements, prompt.Elements...)
		result.Elements = append(result.Elements, prompt.Elements...)
		currentY += prompt.Height + QuestionGap

		options := item.Options
		correctIndex := ResolveCorrectIndex(item, options)
		explanationText := item.ExplanationValue()

		for optionIndex, optionTextRaw := range options {
			optionRectID := uuid.New().String()

			optionMeta := &model.CustomData{
				QuizOption: &model.QuizOptionMeta{
					OptionIndex:     optionIndex,
					OptionElementID: optionRectID,
					IsCorrect:       correctIndex != nil && optionIndex == *correctIndex,
					QuestionID:      questionIDString(item.ID),
				},
			}

			label := optionLabel(tpl.LabelFormat, optionIndex) + "."
			labelWidth, labelHeight := c.measurer.TextSize(label, OptionFontSize)
			labelMeta := &model.CustomData{
				QuizOption: &model.QuizOptionMeta{
					OptionIndex:     optionIndex,
					OptionElementID: optionRectID,
					IsCorrect:       correctIndex != nil && optionIndex == *correctIndex,
					QuestionID:      questionIDString(item.ID),
					Role:            "label",
				},
			}
			labelElement := model.Element{
				ID:            uuid.New().String(),
				Type:          model.ElementText,
				X:             slideX + OptionPadding,
				Y:             currentY + OptionPadding,
				Width:         labelWidth,
				Height:        labelHeight,
				Text:          label,
				FontSize:      OptionFontSize,
				FontFamily:    model.FontVirgil,
				TextAlign:     "left",
				VerticalAlign: "top",
				StrokeColor:   tpl.LabelColor,
				Opacity:       100,
				GroupIDs:      []string{groupID},
				CustomData:    labelMeta,
			}

			content := c.flow.Layout(FlowRequest{
				RawText:    optionTextRaw,
				X:          slideX + OptionPadding + labelWidth + 6,
				Y:          currentY + OptionPadding,
				MaxWidth:   OptionMaxWidth - OptionPadding*2,
				FontSize:   OptionFontSize,
				GroupID:    groupID,
				CustomData: optionMeta,
				Files:      result.Files,
			})

			optionHeight := content.Height + OptionPadding*2
			optionRect := model.Element{
				ID:              optionRectID,
				Type:            model.ElementRectangle,
				X:               slideX,
				Y:               currentY,
				Width:           OptionMaxWidth,
				Height:          optionHeight,
				FillStyle:       "solid",
				BackgroundColor: tpl.OptionBg,
				StrokeColor:     tpl.OptionStroke,
				StrokeWidth:     tpl.OptionStrokeWidth,
				Roughness:       tpl.OptionRoughness,
				Roundness:       tpl.OptionRoundness,
				Opacity:         100,
				GroupIDs:        []string{groupID},
				CustomData:      optionMeta,
			}

			questionElements = append(questionElements, optionRect, labelElement)
			questionElements = append(questionElements, content.Elements...)
			result.Elements = append(result.Elements, optionRect, labelElement)
			result.Elements = append(result.Elements, content.Elements...)

			currentY += optionHeight + OptionGap
		}

		if explanationText != "" {
			cardID := uuid.New().String()
			cardHeight := EstimateExplanationHeight(explanationText) + 100

			html, err := ExplanationCardHTML(explanationText, cardID)
			if err == nil {
				card := model.Element{
					ID:              cardID,
					Type:            model.ElementEmbed,
					X:               slideX,
					Y:               currentY,
					Width:           700,
					Height:          cardHeight,
					FillStyle:       "solid",
					BackgroundColor: "rgba(255, 255, 255, 0)",
					StrokeColor:     "rgba(255, 255, 255, 0)",
					StrokeStyle:     "transparent",
					Roughness:       tpl.OptionRoughness,
					Opacity:         100,
					GroupIDs:        []string{groupID},
					CustomData: &model.CustomData{
						GenerationData: &model.GenerationData{
							Status: "done",
							HTML:   html,
						},
					},
				}
				questionElements = append(questionElements, card)
				result.Elements = append(result.Elements, card)
				currentY += cardHeight + OptionGap
			}
		}

		if len(questionElements) > 0 {
			minX, minY, maxX, maxY := elementBounds(questionElements)
			padding := tpl.SlidePadding
			if padding == 0 {
				padding = SlidePadding
			}
			background := model.Element{
				ID:              uuid.New().String(),
				Type:            model.ElementRectangle,
				X:               minX - padding,
				Y:               minY - padding,
				Width:           maxX - minX + padding*2,
				Height:          maxY - minY + padding*2,
				FillStyle:       "solid",
				BackgroundColor: tpl.SlideBg,
				StrokeColor:     tpl.SlideStroke,
				StrokeWidth:     tpl.SlideStrokeWidth,
				Roughness:       tpl.SlideRoughness,
				Roundness:       tpl.SlideRoundness,
				Opacity:         100,
				GroupIDs:        []string{groupID},
				CustomData:      &model.CustomData{QuizSlideBackground: true},
			}

			questionElements = append([]model.Element{background}, questionElements...)
			result.Elements = append(result.Elements, model.Element{})
			copy(result.Elements[slideStartIndex+1:], result.Elements[slideStartIndex:])
			result.Elements[slideStartIndex] = background
		}

		minX, minY, maxX, maxY := elementBounds(questionElements)
		result.Anchors = append(result.Anchors, SlideAnchor{
			CenterX: (minX + maxX) / 2,
			CenterY: (minY + maxY) / 2,
		})
	}

	return result
}

func elementBounds(elements []model.Element) (minX, minY, maxX, maxY float64) {
	for i, el := range elements {
		if i == 0 || el.X < minX {
			minX = el.X
		}
		if i == 0 || el.Y < minY {
			minY = el.Y
		}
		if i == 0 || el.X+el.Width > maxX {
			maxX = el.X + el.Width
		}
		if i == 0 || el.Y+el.Height > maxY {
			maxY = el.Y + el.Height
		}
	}
	return
}
