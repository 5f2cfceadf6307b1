package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Object is a JSON object with its values left undecoded.
type Object map[string]json.RawMessage

// DecodeOptions controls how keys outside the schema are treated.
type DecodeOptions struct {
	// Strict rejects unknown keys with an UnknownKeyError.
	Strict bool

	// OnUnknown, when non-nil, is called with the dotted path of every
	// unknown key that was ignored. Not called in strict mode.
	OnUnknown func(path string)
}

// Decode parses data as a JSON object and validates it into a ProverInput.
func Decode(data []byte, opts DecodeOptions) (*ProverInput, error) {
	var obj Object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromObject(obj, opts)
}

// FromObject validates obj against the schema and builds a ProverInput. All
// required keys are checked here, so renderers never see a partial input.
func FromObject(obj Object, opts DecodeOptions) (*ProverInput, error) {
	if obj == nil {
		return nil, &FieldError{Path: "(root)", Reason: "expected an object"}
	}

	p := &ProverInput{}
	known := make(map[string]bool, len(Schema)+len(Sections)+1)

	for _, f := range Schema {
		known[f.Name] = true
		raw, err := required(obj, f.Name, f.Name)
		if err != nil {
			return nil, err
		}
		switch f.Kind {
		case KindScalar:
			s, err := decodeScalar(f.Name, raw)
			if err != nil {
				return nil, err
			}
			*f.scalar(p) = s
		case KindList:
			l, err := decodeList(f.Name, raw)
			if err != nil {
				return nil, err
			}
			*f.list(p) = l
		}
	}

	for _, sf := range Sections {
		known[sf.Name] = true
		raw, err := required(obj, sf.Name, sf.Name)
		if err != nil {
			return nil, err
		}
		if err := decodeSection(sf.Name, raw, sf.Get(p), opts); err != nil {
			return nil, err
		}
	}

	known[PubKeySection] = true
	raw, err := required(obj, PubKeySection, PubKeySection)
	if err != nil {
		return nil, err
	}
	if err := decodePubKey(raw, &p.PubKey, opts); err != nil {
		return nil, err
	}

	if err := checkUnknown(obj, known, "", opts); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeSection(name string, raw json.RawMessage, s *Section, opts DecodeOptions) error {
	obj, err := decodeObject(name, raw)
	if err != nil {
		return err
	}

	if s.Len, err = optionalScalar(obj, name, "len"); err != nil {
		return err
	}
	if raw, ok := optional(obj, "storage"); ok {
		l, err := decodeList(name+".storage", raw)
		if err != nil {
			return err
		}
		s.Storage = &l
	}
	if s.Index, err = optionalScalar(obj, name, "index"); err != nil {
		return err
	}
	if s.Length, err = optionalScalar(obj, name, "length"); err != nil {
		return err
	}

	known := map[string]bool{"len": true, "storage": true, "index": true, "length": true}
	return checkUnknown(obj, known, name+".", opts)
}

func optionalScalar(obj Object, section, key string) (*Scalar, error) {
	raw, ok := optional(obj, key)
	if !ok {
		return nil, nil
	}
	v, err := decodeScalar(section+"."+key, raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func decodePubKey(raw json.RawMessage, k *PubKey, opts DecodeOptions) error {
	obj, err := decodeObject(PubKeySection, raw)
	if err != nil {
		return err
	}

	for _, key := range []string{"modulus", "redc"} {
		path := PubKeySection + "." + key
		raw, err := required(obj, key, path)
		if err != nil {
			return err
		}
		l, err := decodeList(path, raw)
		if err != nil {
			return err
		}
		if key == "modulus" {
			k.Modulus = l
		} else {
			k.Redc = l
		}
	}

	known := map[string]bool{"modulus": true, "redc": true}
	return checkUnknown(obj, known, PubKeySection+".", opts)
}

// checkUnknown reports keys of obj not in known, in sorted order so that the
// first error is deterministic.
func checkUnknown(obj Object, known map[string]bool, prefix string, opts DecodeOptions) error {
	var extra []string
	for key := range obj {
		if !known[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)

	for _, key := range extra {
		if opts.Strict {
			return &UnknownKeyError{Path: prefix + key}
		}
		if opts.OnUnknown != nil {
			opts.OnUnknown(prefix + key)
		}
	}
	return nil
}

// required returns obj[key], treating null the same as absent.
func required(obj Object, key, path string) (json.RawMessage, error) {
	raw, ok := optional(obj, key)
	if !ok {
		return nil, &MissingKeyError{Path: path}
	}
	return raw, nil
}

func optional(obj Object, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeObject(path string, raw json.RawMessage) (Object, error) {
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &FieldError{Path: path, Reason: "expected an object, got " + jsonKind(raw)}
	}
	return obj, nil
}

func decodeList(path string, raw json.RawMessage) (List, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &FieldError{Path: path, Reason: "expected an array, got " + jsonKind(raw)}
	}

	l := make(List, 0, len(items))
	for i, item := range items {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		if isNull(item) {
			return nil, &FieldError{Path: elemPath, Reason: "null element"}
		}
		s, err := decodeScalar(elemPath, item)
		if err != nil {
			return nil, err
		}
		l = append(l, s)
	}
	return l, nil
}

// decodeScalar coerces a string, number or boolean to its string form.
func decodeScalar(path string, raw json.RawMessage) (Scalar, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", &FieldError{Path: path, Reason: err.Error()}
	}

	switch x := v.(type) {
	case string:
		return Scalar(x), nil
	case json.Number:
		return Scalar(x.String()), nil
	case bool:
		return Scalar(strconv.FormatBool(x)), nil
	default:
		return "", &FieldError{Path: path, Reason: "expected a string, number or boolean, got " + jsonKind(raw)}
	}
}

// jsonKind names the JSON type of raw for error messages.
func jsonKind(raw json.RawMessage) string {
	b := bytes.TrimSpace(raw)
	if len(b) == 0 {
		return "nothing"
	}
	switch b[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
