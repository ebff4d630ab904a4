package usecase

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("resource not found")
	ErrSaveBlocked    = errors.New("lineup save blocked while roster changes are pending")
	ErrSaveInProgress = errors.New("lineup save already in progress")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrClosed         = errors.New("editor is closed")
)
