package plain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/reader/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileMatchesEnvelope(t *testing.T) {
	r := &Reader{}
	got, err := r.ReadFile("testdata/input.json")
	require.NoError(t, err)

	want, err := (&envelope.Reader{}).ReadFile("../envelope/testdata/inputs.json")
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := (&Reader{}).ReadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, core.ErrParse)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o644))
	_, err = (&Reader{}).ReadFile(bad)
	assert.ErrorIs(t, err, core.ErrParse)
	assert.NotErrorIs(t, err, core.ErrNestedParse)

	partial := filepath.Join(dir, "partial.json")
	require.NoError(t, os.WriteFile(partial, []byte(`{"command": []}`), 0o644))
	_, err = (&Reader{}).ReadFile(partial)
	assert.ErrorIs(t, err, core.ErrMissingKey)
}
