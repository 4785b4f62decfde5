package domain

import "errors"

var (
	ErrNoAccountSelected      = errors.New("no account selected")
	ErrNoForkStrategySelected = errors.New("no fork selected")
	ErrNoRepositoryName       = errors.New("repository has no name")

	ErrGenreNotSelected = errors.New("genre not selected")
	ErrStepLocked       = errors.New("step is locked")
)
