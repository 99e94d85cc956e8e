package util

import "errors"

var (
	ErrNoQuestions     = errors.New("no questions found for the provided exam id")
	ErrExamFetchFailed = errors.New("failed to fetch exam questions")
	ErrUnknownTemplate = errors.New("unknown quiz template")
	ErrImportNotFound  = errors.New("import record not found")
)
