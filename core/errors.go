package core

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks input that could not be read or is not valid JSON.
	ErrParse = errors.New("parse error")

	// ErrMissingInput marks an envelope without a string-valued "input" key.
	ErrMissingInput = fmt.Errorf("%w: missing string field \"input\"", ErrParse)

	// ErrNestedParse marks an "input" string whose contents are not valid JSON.
	ErrNestedParse = fmt.Errorf("%w: nested input is not valid JSON", ErrParse)

	ErrMissingKey = errors.New("missing key")
	ErrMalformed  = errors.New("malformed value")
	ErrUnknownKey = errors.New("unknown key")
)

// MissingKeyError reports a required key that is absent or null.
type MissingKeyError struct {
	Path string // dotted, e.g. "pubkey.modulus"
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing key %q", e.Path)
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// FieldError reports a value whose JSON shape does not match its schema kind.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Path, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrMalformed }

// UnknownKeyError reports a key outside the schema. Only returned in strict mode.
type UnknownKeyError struct {
	Path string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Path)
}

func (e *UnknownKeyError) Unwrap() error { return ErrUnknownKey }
