package core

// PubKeySection is the name of the trailing public key section.
const PubKeySection = "pubkey"

// Field describes one required top-level key and where it lives in ProverInput.
type Field struct {
	Name string
	Kind Kind

	scalar func(p *ProverInput) *Scalar
	list   func(p *ProverInput) *List
}

// Get returns the field's value from p.
func (f Field) Get(p *ProverInput) Value {
	if f.Kind == KindList {
		return Value{Kind: KindList, List: *f.list(p)}
	}
	return Value{Kind: KindScalar, Scalar: *f.scalar(p)}
}

func scalarField(name string, fn func(p *ProverInput) *Scalar) Field {
	return Field{Name: name, Kind: KindScalar, scalar: fn}
}

func listField(name string, fn func(p *ProverInput) *List) Field {
	return Field{Name: name, Kind: KindList, list: fn}
}

// Schema is the fixed, ordered list of top-level fields. Output order follows
// this table, never the key order of the input document.
var Schema = []Field{
	scalarField("body_hash_index", func(p *ProverInput) *Scalar { return &p.BodyHashIndex }),
	listField("command", func(p *ProverInput) *List { return &p.Command }),
	listField("partial_body_hash", func(p *ProverInput) *List { return &p.PartialBodyHash }),
	scalarField("partial_body_real_length", func(p *ProverInput) *Scalar { return &p.PartialBodyRealLength }),
	listField("prover_address", func(p *ProverInput) *List { return &p.ProverAddress }),

	listField("sender_domain_capture_group_1_id", func(p *ProverInput) *List { return &p.SenderDomainCaptureGroup1ID }),
	listField("sender_domain_capture_group_1_start", func(p *ProverInput) *List { return &p.SenderDomainCaptureGroup1Start }),
	listField("sender_domain_capture_group_start_indices", func(p *ProverInput) *List { return &p.SenderDomainCaptureGroupStartIndices }),
	listField("sender_domain_current_states", func(p *ProverInput) *List { return &p.SenderDomainCurrentStates }),
	scalarField("sender_domain_match_length", func(p *ProverInput) *Scalar { return &p.SenderDomainMatchLength }),
	scalarField("sender_domain_match_start", func(p *ProverInput) *Scalar { return &p.SenderDomainMatchStart }),
	listField("sender_domain_next_states", func(p *ProverInput) *List { return &p.SenderDomainNextStates }),

	listField("signature", func(p *ProverInput) *List { return &p.Signature }),

	listField("x_handle_capture_group_1_id", func(p *ProverInput) *List { return &p.XHandleCaptureGroup1ID }),
	listField("x_handle_capture_group_1_start", func(p *ProverInput) *List { return &p.XHandleCaptureGroup1Start }),
	listField("x_handle_capture_group_start_indices", func(p *ProverInput) *List { return &p.XHandleCaptureGroupStartIndices }),
	listField("x_handle_current_states", func(p *ProverInput) *List { return &p.XHandleCurrentStates }),
	scalarField("x_handle_match_length", func(p *ProverInput) *Scalar { return &p.XHandleMatchLength }),
	scalarField("x_handle_match_start", func(p *ProverInput) *Scalar { return &p.XHandleMatchStart }),
	listField("x_handle_next_states", func(p *ProverInput) *List { return &p.XHandleNextStates }),
}

// SectionField names a required section and where it lives in ProverInput.
type SectionField struct {
	Name string
	Get  func(p *ProverInput) *Section
}

// Sections lists the bounded-vector sections in output order. The pubkey
// section always follows them.
var Sections = []SectionField{
	{Name: "body", Get: func(p *ProverInput) *Section { return &p.Body }},
	{Name: "decoded_body", Get: func(p *ProverInput) *Section { return &p.DecodedBody }},
	{Name: "dkim_header_sequence", Get: func(p *ProverInput) *Section { return &p.DKIMHeaderSequence }},
	{Name: "header", Get: func(p *ProverInput) *Section { return &p.Header }},
}
