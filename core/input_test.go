package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaOrder(t *testing.T) {
	want := []string{
		"body_hash_index",
		"command",
		"partial_body_hash",
		"partial_body_real_length",
		"prover_address",
		"sender_domain_capture_group_1_id",
		"sender_domain_capture_group_1_start",
		"sender_domain_capture_group_start_indices",
		"sender_domain_current_states",
		"sender_domain_match_length",
		"sender_domain_match_start",
		"sender_domain_next_states",
		"signature",
		"x_handle_capture_group_1_id",
		"x_handle_capture_group_1_start",
		"x_handle_capture_group_start_indices",
		"x_handle_current_states",
		"x_handle_match_length",
		"x_handle_match_start",
		"x_handle_next_states",
	}

	var got []string
	for _, f := range Schema {
		got = append(got, f.Name)
	}
	assert.Equal(t, want, got)

	var sections []string
	for _, s := range Sections {
		sections = append(sections, s.Name)
	}
	assert.Equal(t, []string{"body", "decoded_body", "dkim_header_sequence", "header"}, sections)
}

func TestSchemaKinds(t *testing.T) {
	scalars := map[string]bool{
		"body_hash_index":            true,
		"partial_body_real_length":   true,
		"sender_domain_match_length": true,
		"sender_domain_match_start":  true,
		"x_handle_match_length":      true,
		"x_handle_match_start":       true,
	}
	for _, f := range Schema {
		if scalars[f.Name] {
			assert.Equal(t, KindScalar, f.Kind, f.Name)
		} else {
			assert.Equal(t, KindList, f.Kind, f.Name)
		}
	}
}

// The JSON tags must agree with the schema names, since the json renderer
// relies on struct order and tags.
func TestSchemaMatchesJSONTags(t *testing.T) {
	m := validInput()
	data, err := json.Marshal(m)
	require.NoError(t, err)

	p, err := Decode(data, DecodeOptions{})
	require.NoError(t, err)

	out, err := json.Marshal(p)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))
	for _, f := range Schema {
		assert.Contains(t, back, f.Name)
	}
	for _, s := range Sections {
		assert.Contains(t, back, s.Name)
	}
	assert.Contains(t, back, PubKeySection)
}

func TestSectionEntriesOrder(t *testing.T) {
	l, idx, length := Scalar("3"), Scalar("1"), Scalar("2")
	storage := List{"a"}
	s := Section{Length: &length, Index: &idx, Storage: &storage, Len: &l}

	var keys []string
	for _, e := range s.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"len", "storage", "index", "length"}, keys)
}

func TestGroupsOrder(t *testing.T) {
	p := &ProverInput{PubKey: PubKey{Modulus: List{}, Redc: List{}}}

	var names []string
	for _, g := range p.Groups() {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"body", "decoded_body", "dkim_header_sequence", "header", "pubkey"}, names)

	pk := p.Groups()[4]
	require.Len(t, pk.Entries, 2, "pubkey entries are never skipped")
	assert.Equal(t, "modulus", pk.Entries[0].Key)
	assert.Equal(t, "redc", pk.Entries[1].Key)
}

func TestListStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, List{"a", "b"}.Strings())
	assert.Equal(t, []string{}, List{}.Strings())
}
