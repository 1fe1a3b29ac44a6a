package fhirmodels

import (
	"encoding/json"
	"errors"
)

// Resource is implemented by every generated resource type.
type Resource interface {
	ResourceType() string
	ResourceID() string
}

// RawResource is an undecoded resource document. It answers cheap questions
// (type, id, a single member) without building the typed model, which lets
// stream readers route or reject documents before paying for a full decode.
type RawResource json.RawMessage

var errNotObject = errors.New("not a json object")

func (r RawResource) members() (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(r, &m); err != nil {
		return nil, classify(err, r)
	}
	if m == nil {
		return nil, &DecodeError{Kind: TypeMismatch, Value: snippet(r), Err: errNotObject}
	}
	return m, nil
}

func (r RawResource) stringMember(key string) string {
	var s string
	if raw := r.Get(key); raw != nil {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// ResourceType returns the resourceType member, or "" when it is absent or
// not a string.
func (r RawResource) ResourceType() string {
	return r.stringMember("resourceType")
}

// ID returns the id member, or "".
func (r RawResource) ID() string {
	return r.stringMember("id")
}

// Get returns the raw value of the top-level member key, or nil.
func (r RawResource) Get(key string) json.RawMessage {
	m, err := r.members()
	if err != nil {
		return nil
	}
	return m[key]
}

// Validate checks that the document is a JSON object carrying a
// resourceType, without decoding the rest.
func (r RawResource) Validate() error {
	m, err := r.members()
	if err != nil {
		return err
	}
	if _, ok := m["resourceType"]; !ok {
		return &DecodeError{Kind: MissingRequiredField, Path: "resourceType"}
	}
	return nil
}

// Decode builds the typed resource.
func (r RawResource) Decode() (Resource, error) {
	return UnmarshalResource(r)
}

func (r RawResource) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawResource) UnmarshalJSON(data []byte) error {
	if r == nil {
		return errors.New("fhirmodels: UnmarshalJSON on nil RawResource")
	}
	*r = append((*r)[0:0], data...)
	return nil
}
