// Package envelope reads inputs.json files, where the ProverInput object is
// stored as JSON text inside the string field "input".
package envelope

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sonnes/provertoml/core"
)

// Field is the envelope key that holds the encoded ProverInput.
const Field = "input"

// Reader decodes an inputs.json envelope in two stages: the outer object,
// then the JSON text found in its "input" field.
type Reader struct {
	Options core.DecodeOptions
}

// ReadFile reads the envelope at path.
func (r *Reader) ReadFile(path string) (*core.ProverInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	return r.Decode(data)
}

// Decode runs both decode stages on an in-memory envelope.
func (r *Reader) Decode(data []byte) (*core.ProverInput, error) {
	inner, err := Unwrap(data)
	if err != nil {
		return nil, err
	}

	var obj core.Object
	if err := json.Unmarshal([]byte(inner), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrNestedParse, err)
	}
	return core.FromObject(obj, r.Options)
}

// Unwrap returns the raw JSON text stored in the envelope's "input" field.
func Unwrap(data []byte) (string, error) {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(data, &outer); err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrParse, err)
	}

	raw, ok := outer[Field]
	if !ok {
		return "", core.ErrMissingInput
	}

	var inner *string
	if err := json.Unmarshal(raw, &inner); err != nil || inner == nil {
		return "", core.ErrMissingInput
	}
	return *inner, nil
}
