package model

// Roundness corner styles, matching the canvas frontend's encoding.
const (
	RoundnessProportional = 2
	RoundnessAdaptive     = 3
)

type Roundness struct {
	Type  int     `json:"type"`
	Value float64 `json:"value,omitempty"`
}

// Element types emitted by the layout engine. The canvas host understands
// more, but the engine only ever produces these four.
const (
	ElementRectangle = "rectangle"
	ElementText      = "text"
	ElementImage     = "image"
	ElementEmbed     = "iframe"
)

// QuizOptionMeta tags every element belonging to one answer option.
// IsCorrect is computed once at import time and never re-derived from
// canvas state afterwards.
type QuizOptionMeta struct {
	OptionIndex     int    `json:"optionIndex"`
	OptionElementID string `json:"optionElementId"`
	IsCorrect       bool   `json:"isCorrect"`
	QuestionID      string `json:"questionId,omitempty"`
	Role            string `json:"role,omitempty"`
}

// AnswerButtonMeta marks an answer-indicator element. Its explanation
// element ids link the indicator to the rectangles revealed by it.
type AnswerButtonMeta struct {
	ExplanationElementIDs []string `json:"explanationElementIds,omitempty"`
}

// GenerationData carries the embedded document of an explanation card.
type GenerationData struct {
	Status string `json:"status"`
	HTML   string `json:"html"`
}

type CustomData struct {
	QuizOption          *QuizOptionMeta   `json:"quizOption,omitempty"`
	QuizSlideBackground bool              `json:"quizSlideBackground,omitempty"`
	AnswerButton        *AnswerButtonMeta `json:"answerButton,omitempty"`
	GenerationData      *GenerationData   `json:"generationData,omitempty"`
}

// Element is one positioned shape on the infinite canvas. The engine sets
// geometry and style; host concerns (selection, history) never appear here.
type Element struct {
	ID              string      `json:"id"`
	Type            string      `json:"type"`
	X               float64     `json:"x"`
	Y               float64     `json:"y"`
	Width           float64     `json:"width"`
	Height          float64     `json:"height"`
	Angle           float64     `json:"angle"`
	StrokeColor     string      `json:"strokeColor,omitempty"`
	BackgroundColor string      `json:"backgroundColor,omitempty"`
	FillStyle       string      `json:"fillStyle,omitempty"`
	StrokeWidth     float64     `json:"strokeWidth,omitempty"`
	StrokeStyle     string      `json:"strokeStyle,omitempty"`
	Roughness       float64     `json:"roughness"`
	Roundness       *Roundness  `json:"roundness,omitempty"`
	Opacity         float64     `json:"opacity"`
	GroupIDs        []string    `json:"groupIds,omitempty"`
	FontSize        float64     `json:"fontSize,omitempty"`
	FontFamily      int         `json:"fontFamily,omitempty"`
	Text            string      `json:"text,omitempty"`
	TextAlign       string      `json:"textAlign,omitempty"`
	VerticalAlign   string      `json:"verticalAlign,omitempty"`
	FileID          string      `json:"fileId,omitempty"`
	Status          string      `json:"status,omitempty"`
	CustomData      *CustomData `json:"customData,omitempty"`
}

// FontVirgil matches the canvas frontend's hand-drawn default face.
const FontVirgil = 1

// FileEntry is one binary attachment referenced by image elements.
type FileEntry struct {
	ID       string `json:"id"`
	DataURL  string `json:"dataURL"`
	MimeType string `json:"mimeType"`
	Created  int64  `json:"created"`
}

// SceneUpdate is the atomic result of one import: either the whole set of
// elements lands on the canvas or none of it does.
type SceneUpdate struct {
	Elements []Element            `json:"elements"`
	Files    map[string]FileEntry `json:"files"`
	ScrollX  float64              `json:"scrollX"`
	ScrollY  float64              `json:"scrollY"`
}
