package services

import "errors"

// Sentinel errors the controllers map onto HTTP status codes.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrMaterialNotFound = errors.New("material not found")
)
