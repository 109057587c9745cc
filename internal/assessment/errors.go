package assessment

import "errors"

var (
	ErrAnswerCount = errors.New("assessment requires exactly five answers")
	ErrEmptyAnswer = errors.New("assessment answers must not be empty")
)
