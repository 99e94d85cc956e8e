package engine

import (
	"regexp"
	"strconv"
	"strings"

	"quizboard_backend/internal/model"
)

var optionLetterRegex = regexp.MustCompile(`(?i)^option\s*([a-z])$`)

var bareLetters = []string{"a", "b", "c", "d"}

// ResolveCorrectIndex maps the question's answer encoding, whichever
// generation of the upstream schema it uses, to a zero-based option index.
// Returns nil when no encoding matches; callers must tolerate that and
// leave every option unmarked.
//
// The fallback order is load-bearing: numeric index (0-based, then
// 1-based), "option X" phrase, bare letter, numeric string, literal
// option text. Multiple fields with conflicting values resolve silently
// by this precedence.
func ResolveCorrectIndex(q *model.ExamQuestion, options []string) *int {
	raw := q.AnswerValue()

	if num, ok := raw.(float64); ok {
		return resolveNumeric(num, len(options))
	}

	str, ok := raw.(string)
	if !ok {
		return nil
	}

	normalized := strings.ToLower(SanitizeText(str))

	if m := optionLetterRegex.FindStringSubmatch(normalized); m != nil {
		index := int(strings.ToLower(m[1])[0]) - 'a'
		if index >= 0 && index < len(options) {
			return &index
		}
	}

	for i, letter := range bareLetters {
		if normalized == letter {
			index := i
			return &index
		}
	}

	if parsed, err := strconv.Atoi(normalized); err == nil {
		return resolveNumeric(float64(parsed), len(options))
	}

	for i, option := range options {
		if strings.ToLower(SanitizeText(option)) == normalized {
			index := i
			return &index
		}
	}

	return nil
}

func resolveNumeric(value float64, count int) *int {
	n := int(value)
	if float64(n) != value {
		return nil
	}
	if n >= 0 && n < count {
		return &n
	}
	if n >= 1 && n <= count {
		n--
		return &n
	}
	return nil
}
