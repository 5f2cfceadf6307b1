// Package plain reads a file holding the ProverInput object directly, with no
// envelope around it.
package plain

import (
	"fmt"
	"os"

	"github.com/sonnes/provertoml/core"
)

// Reader decodes a bare ProverInput JSON object.
type Reader struct {
	Options core.DecodeOptions
}

// ReadFile reads the object at path.
func (r *Reader) ReadFile(path string) (*core.ProverInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	return core.Decode(data, r.Options)
}
