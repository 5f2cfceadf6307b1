// Package reader defines the interface for parsing fixture files into the
// ProverInput model.
package reader

import "github.com/sonnes/provertoml/core"

// Reader parses a fixture file into a validated ProverInput.
type Reader interface {
	// ReadFile reads and decodes the file at path. Required keys are checked
	// before it returns, so a nil error means the input is complete.
	ReadFile(path string) (*core.ProverInput, error)
}
