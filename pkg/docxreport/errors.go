package docxreport

import (
	"errors"
	"fmt"
)

// ErrInputMissing indicates the input file does not exist.
var ErrInputMissing = errors.New("input file not found")

// ErrInputRead indicates the input file exists but could not be read.
var ErrInputRead = errors.New("input file not readable")

// ErrInputMalformed indicates the input file is not a JSON object.
var ErrInputMalformed = errors.New("could not decode JSON")

// ErrOutputWrite indicates the output file could not be written.
var ErrOutputWrite = errors.New("could not save output")

// Kind classifies a generation failure.
type Kind string

const (
	KindInputMissing   Kind = "input_missing"
	KindInputRead      Kind = "input_read"
	KindInputMalformed Kind = "input_malformed"
	KindOutputWrite    Kind = "output_write"
)

func (k Kind) sentinel() error {
	switch k {
	case KindInputMissing:
		return ErrInputMissing
	case KindInputRead:
		return ErrInputRead
	case KindInputMalformed:
		return ErrInputMalformed
	case KindOutputWrite:
		return ErrOutputWrite
	}
	return nil
}

// GenerateError represents a failed report generation.
type GenerateError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *GenerateError) Error() string {
	switch e.Kind {
	case KindInputMissing:
		return fmt.Sprintf("JSON file not found at %s", e.Path)
	case KindInputMalformed:
		return fmt.Sprintf("could not decode JSON from %s: %v", e.Path, e.Err)
	case KindOutputWrite:
		return fmt.Sprintf("error saving %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the failure kind.
func (e *GenerateError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(kind Kind, path string, err error) *GenerateError {
	return &GenerateError{
		Kind: kind,
		Path: path,
		Err:  err,
	}
}

// KindOf returns the failure kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var ge *GenerateError
	if errors.As(err, &ge) {
		return ge.Kind, true
	}
	return "", false
}
