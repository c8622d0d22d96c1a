package usecase

import "errors"

var (
	// ErrEmptyURL is returned when an operation needs a URL and got none.
	ErrEmptyURL = errors.New("url cannot be empty")
	// ErrCannotGoBack is returned when the view has no back history.
	ErrCannotGoBack = errors.New("cannot go back")
	// ErrCannotGoForward is returned when the view has no forward history.
	ErrCannotGoForward = errors.New("cannot go forward")
	// ErrNoView is returned when there is no view to drive.
	ErrNoView = errors.New("no navigable view")
)
