package json

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/reader/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRoundTrip(t *testing.T) {
	p, err := (&envelope.Reader{}).ReadFile("../../reader/envelope/testdata/inputs.json")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, p))

	back, err := core.Decode(buf.Bytes(), core.DecodeOptions{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestRenderKeyOrder(t *testing.T) {
	p, err := (&envelope.Reader{}).ReadFile("../../reader/envelope/testdata/inputs.json")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, p))
	out := buf.String()

	// The envelope stores keys in reverse order; output follows the schema.
	assert.Less(t, strings.Index(out, `"body_hash_index"`), strings.Index(out, `"command"`))
	assert.Less(t, strings.Index(out, `"x_handle_next_states"`), strings.Index(out, `"body"`))
	assert.Less(t, strings.Index(out, `"header"`), strings.Index(out, `"pubkey"`))
}

func TestRenderOmitsAbsentSubKeys(t *testing.T) {
	p, err := (&envelope.Reader{}).ReadFile("../../reader/envelope/testdata/inputs.json")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, (&Renderer{}).Render(&buf, p))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))

	var dkim map[string]any
	require.NoError(t, json.Unmarshal(raw["dkim_header_sequence"], &dkim))
	assert.NotContains(t, dkim, "len")
	assert.NotContains(t, dkim, "storage")
	assert.Equal(t, "12", dkim["index"])
}
