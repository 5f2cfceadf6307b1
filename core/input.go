// Package core defines the ProverInput model: the decoded field set that all
// readers produce and all renderers consume.
package core

// Kind tells a renderer how to format a value.
type Kind int

const (
	KindScalar Kind = iota // rendered as key = "value"
	KindList               // rendered as key = ["a", "b"]
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Scalar is a single value in its string form. JSON strings keep their text,
// numbers keep their literal text and booleans become "true" or "false".
type Scalar string

// List is a sequence of scalars. A decoded List is never nil, so an empty
// JSON array stays distinguishable from an absent one.
type List []Scalar

// Strings returns the list elements as plain strings.
func (l List) Strings() []string {
	out := make([]string, len(l))
	for i, s := range l {
		out[i] = string(s)
	}
	return out
}

// Value is one renderable value, either a Scalar or a List depending on Kind.
type Value struct {
	Kind   Kind
	Scalar Scalar
	List   List
}

// Entry pairs a key with its value, in render order.
type Entry struct {
	Key   string
	Value Value
}

// ProverInput is the full field set written to Prover.toml. Struct field order
// matches the output order, so encoding/json emits keys in the same order.
type ProverInput struct {
	BodyHashIndex                        Scalar `json:"body_hash_index"`
	Command                              List   `json:"command"`
	PartialBodyHash                      List   `json:"partial_body_hash"`
	PartialBodyRealLength                Scalar `json:"partial_body_real_length"`
	ProverAddress                        List   `json:"prover_address"`
	SenderDomainCaptureGroup1ID          List   `json:"sender_domain_capture_group_1_id"`
	SenderDomainCaptureGroup1Start       List   `json:"sender_domain_capture_group_1_start"`
	SenderDomainCaptureGroupStartIndices List   `json:"sender_domain_capture_group_start_indices"`
	SenderDomainCurrentStates            List   `json:"sender_domain_current_states"`
	SenderDomainMatchLength              Scalar `json:"sender_domain_match_length"`
	SenderDomainMatchStart               Scalar `json:"sender_domain_match_start"`
	SenderDomainNextStates               List   `json:"sender_domain_next_states"`
	Signature                            List   `json:"signature"`
	XHandleCaptureGroup1ID               List   `json:"x_handle_capture_group_1_id"`
	XHandleCaptureGroup1Start            List   `json:"x_handle_capture_group_1_start"`
	XHandleCaptureGroupStartIndices      List   `json:"x_handle_capture_group_start_indices"`
	XHandleCurrentStates                 List   `json:"x_handle_current_states"`
	XHandleMatchLength                   Scalar `json:"x_handle_match_length"`
	XHandleMatchStart                    Scalar `json:"x_handle_match_start"`
	XHandleNextStates                    List   `json:"x_handle_next_states"`

	Body               Section `json:"body"`
	DecodedBody        Section `json:"decoded_body"`
	DKIMHeaderSequence Section `json:"dkim_header_sequence"`
	Header             Section `json:"header"`
	PubKey             PubKey  `json:"pubkey"`
}

// Section is a bounded-vector group. Every sub-key is optional; nil means the
// key was absent from the input and is skipped on output.
type Section struct {
	Len     *Scalar `json:"len,omitempty"`
	Storage *List   `json:"storage,omitempty"`
	Index   *Scalar `json:"index,omitempty"`
	Length  *Scalar `json:"length,omitempty"`
}

// Entries returns the present sub-keys in the order len, storage, index, length.
func (s *Section) Entries() []Entry {
	var out []Entry
	if s.Len != nil {
		out = append(out, Entry{Key: "len", Value: Value{Kind: KindScalar, Scalar: *s.Len}})
	}
	if s.Storage != nil {
		out = append(out, Entry{Key: "storage", Value: Value{Kind: KindList, List: *s.Storage}})
	}
	if s.Index != nil {
		out = append(out, Entry{Key: "index", Value: Value{Kind: KindScalar, Scalar: *s.Index}})
	}
	if s.Length != nil {
		out = append(out, Entry{Key: "length", Value: Value{Kind: KindScalar, Scalar: *s.Length}})
	}
	return out
}

// PubKey holds the RSA public key limbs. Both lists are required.
type PubKey struct {
	Modulus List `json:"modulus"`
	Redc    List `json:"redc"`
}

// Entries returns modulus then redc.
func (k *PubKey) Entries() []Entry {
	return []Entry{
		{Key: "modulus", Value: Value{Kind: KindList, List: k.Modulus}},
		{Key: "redc", Value: Value{Kind: KindList, List: k.Redc}},
	}
}

// Entries returns the top-level fields in schema order.
func (p *ProverInput) Entries() []Entry {
	out := make([]Entry, len(Schema))
	for i, f := range Schema {
		out[i] = Entry{Key: f.Name, Value: f.Get(p)}
	}
	return out
}

// Group is a named block of entries rendered under a [name] header.
type Group struct {
	Name    string
	Entries []Entry
}

// Groups returns the four sections followed by pubkey, in output order.
func (p *ProverInput) Groups() []Group {
	out := make([]Group, 0, len(Sections)+1)
	for _, s := range Sections {
		out = append(out, Group{Name: s.Name, Entries: s.Get(p).Entries()})
	}
	return append(out, Group{Name: PubKeySection, Entries: p.PubKey.Entries()})
}
