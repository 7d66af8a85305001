package mines

import (
	"errors"
	"fmt"
)

var (
	ErrConfig             = errors.New("invalid grid configuration")
	ErrAlreadyInitialized = errors.New("grid already initialized")
	ErrOutOfBounds        = errors.New("point out of bounds")
)

type ConfigError struct {
	Width, Height, MineCount int
	message                  string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf(
		"invalid grid %dx%d(%d): %s", e.Width, e.Height, e.MineCount, e.message,
	)
}

func (e ConfigError) Unwrap() error {
	return ErrConfig
}

type AlreadyInitializedError struct {
	Width, Height, MineCount int
}

// [AlreadyInitializedError] implements [error]
func (e AlreadyInitializedError) Error() string {
	return fmt.Sprintf(
		"mines already placed on grid %dx%d(%d)", e.Width, e.Height, e.MineCount,
	)
}

func (e AlreadyInitializedError) Unwrap() error {
	return ErrAlreadyInitialized
}

type OutOfBoundsError struct {
	Point         Point
	Width, Height int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"point %s is outside of grid %dx%d", e.Point, e.Width, e.Height,
	)
}

func (e OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}
