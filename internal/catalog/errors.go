package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrSealed       = errors.New("catalog: registry is sealed")
	ErrInvalidEntry = errors.New("catalog: label and renderer are required")
)

// DuplicateLabelError is returned when a label is registered twice.
type DuplicateLabelError struct {
	Label string
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("catalog: duplicate label %q", e.Label)
}

// UnknownLabelError is returned when a selection has no renderer. Suggestion
// holds the closest registered label, if any is close enough.
type UnknownLabelError struct {
	Label      string
	Suggestion string
}

func (e *UnknownLabelError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown topic %q (did you mean %q?)", e.Label, e.Suggestion)
	}
	return fmt.Sprintf("unknown topic %q", e.Label)
}
