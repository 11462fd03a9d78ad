package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidCommand     = errors.New("invalid command")
	ErrInvalidPlanetSize  = errors.New("invalid planet size")
	ErrInvalidGrid        = errors.New("invalid planet grid")
	ErrInvalidConfig      = errors.New("invalid mission configuration")
)

// CommandError reports the first unrecognized token of a command batch.
// Commands before Index were already applied when it is returned.
type CommandError struct {
	Kind  CommandKind
	Index int
	Token string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s command %d is %q (allowed: %s)",
		ErrInvalidCommand, e.Kind, e.Index+1, e.Token, e.Kind.alphabet())
}

func (e *CommandError) Unwrap() error {
	return ErrInvalidCommand
}
