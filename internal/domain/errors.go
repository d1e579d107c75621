package domain

import (
	"errors"
	"fmt"
)

var (
	// Transaction errors
	ErrInvalidTransaction = errors.New("invalid transaction")

	// Report errors
	ErrInvalidRange = errors.New("date range start is after end")

	// ErrUnknownScope marks a scope id that the directory does not know.
	// Distinguishable from a valid empty scope, which is a normal empty report.
	ErrUnknownScope = errors.New("scope id not found in directory")

	ErrUnknownAgent     = fmt.Errorf("%w: agent", ErrUnknownScope)
	ErrUnknownArea      = fmt.Errorf("%w: area", ErrUnknownScope)
	ErrUnknownCollector = fmt.Errorf("%w: collector", ErrUnknownScope)
)
