package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNotCreator      = errors.New("only the project creator can launch")
	ErrAlreadyLaunched = errors.New("project already launched")
	ErrFundingNotMet   = errors.New("funding target not met")
	ErrInvalidProject  = errors.New("invalid project")
	ErrInvalidAmount   = errors.New("amount must be positive")
)
