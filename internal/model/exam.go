package model

// ExamQuestion is one record of the upstream exam API. The provider has
// gone through several schema generations, so the correct answer and the
// explanation each arrive under any of several alternately named fields.
// Values may be numbers or strings; resolution happens in the engine.
type ExamQuestion struct {
	ID          interface{} `json:"ID"`
	Question    string      `json:"question"`
	Options     []string    `json:"options"`
	Subject     string      `json:"subject"`
	Answer      interface{} `json:"answer"`
	Explanation string      `json:"explanation"`
	ExplanationText string  `json:"explanation_text"`
	Solution    string      `json:"solution"`

	CorrectIndex  interface{} `json:"correctIndex"`
	CorrectIndexS interface{} `json:"correct_index"`
	CorrectOption interface{} `json:"correctOption"`
	CorrectOptionS interface{} `json:"correct_option"`
	CorrectAnswer interface{} `json:"correctAnswer"`
}

// AnswerValue returns the first populated answer field, preserving the
// provider's historical precedence. Later fields only matter when every
// earlier one is absent.
func (q *ExamQuestion) AnswerValue() interface{} {
	for _, v := range []interface{}{
		q.CorrectIndex,
		q.CorrectIndexS,
		q.CorrectOption,
		q.CorrectOptionS,
		q.CorrectAnswer,
		q.Answer,
	} {
		if v != nil {
			return v
		}
	}
	return nil
}

// ExplanationValue returns the first populated explanation field.
func (q *ExamQuestion) ExplanationValue() string {
	if q.Explanation != "" {
		return q.Explanation
	}
	if q.ExplanationText != "" {
		return q.ExplanationText
	}
	return q.Solution
}

// ExamAPIResponse is the upstream payload envelope.
type ExamAPIResponse struct {
	Count int            `json:"count"`
	Data  []ExamQuestion `json:"data"`
}
