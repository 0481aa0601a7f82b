package service

import "errors"

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidUserType  = errors.New("invalid user type")
	ErrUnknownInterest  = errors.New("unknown interest")
	ErrNoActiveQuiz     = errors.New("no active quiz")
	ErrInvalidOption    = errors.New("invalid option")
	ErrQuestionMismatch = errors.New("question is not the current one")
	ErrNoResult         = errors.New("no quiz result")
	ErrUserNotFound     = errors.New("user not found")
)
