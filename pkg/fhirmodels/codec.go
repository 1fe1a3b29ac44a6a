package fhirmodels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Unmarshal decodes the FHIR JSON document data into v, which is usually a
// pointer to one of the generated types. Every failure is a *DecodeError,
// including input that is not JSON at all (MalformedJSON).
func Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return classify(err, data)
	}
	return nil
}

// Decode is the generic form of Unmarshal.
func Decode[T any](data []byte) (*T, error) {
	v := new(T)
	if err := Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal encodes v as FHIR JSON. Unlike json.Marshal it leaves <, > and &
// unescaped, which keeps narrative XHTML readable.
func Marshal(v any) ([]byte, error) {
	return marshalValue(v)
}

// UnmarshalResource decodes a resource of any type, dispatching on its
// resourceType member.
func UnmarshalResource(data []byte) (Resource, error) {
	if !json.Valid(data) {
		var probe any
		return nil, classify(json.Unmarshal(data, &probe), data)
	}
	return unmarshalResource(data)
}

func unmarshalResource(data []byte) (Resource, error) {
	if isNull(data) {
		return nil, nil
	}
	d, err := newObjectDecoder(data)
	if err != nil {
		return nil, err
	}
	var resourceType *string
	field(d, "resourceType", &resourceType)
	if d.err != nil {
		return nil, d.err
	}
	if resourceType == nil {
		return nil, &DecodeError{Kind: MissingRequiredField, Path: "resourceType"}
	}
	r := newResource(*resourceType)
	if r == nil {
		return nil, &DecodeError{Kind: UnknownEnumValue, Path: "resourceType", Value: *resourceType}
	}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, classify(err, data)
	}
	return r, nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---------------------------------------------------------------------------
// Decoding
// ---------------------------------------------------------------------------

// objectDecoder holds the members of one JSON object while a generated
// UnmarshalJSON assigns them to fields. The first error sticks and turns
// every later call into a no-op.
type objectDecoder struct {
	members map[string]json.RawMessage
	err     error
}

func newObjectDecoder(data []byte) (*objectDecoder, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, classify(err, data)
	}
	return &objectDecoder{members: members}, nil
}

// commit stores v into dst unless decoding failed, so a failed decode never
// leaves a partially populated value behind.
func commit[T any](d *objectDecoder, dst *T, v T) error {
	if d.err != nil {
		return d.err
	}
	*dst = v
	return nil
}

// checkResourceType rejects a document whose resourceType names another
// resource. An absent resourceType is accepted.
func checkResourceType(d *objectDecoder, want string) {
	var got *string
	if field(d, "resourceType", &got) && got != nil && *got != want {
		d.err = &DecodeError{Kind: TypeMismatch, Path: "resourceType", Value: *got}
	}
}

// field decodes member key into dst and reports whether it was present and
// decoded cleanly.
func field[T any](d *objectDecoder, key string, dst *T) bool {
	if d.err != nil {
		return false
	}
	raw, ok := d.members[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		d.err = withPath(err, key, raw)
		return false
	}
	return true
}

// list decodes the array member key element by element so errors carry the
// failing index. An explicit empty array yields an empty, non-nil slice.
func list[T any](d *objectDecoder, key string, dst *[]T) {
	if d.err != nil {
		return
	}
	raw, ok := d.members[key]
	if !ok {
		return
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.err = withPath(err, key, raw)
		return
	}
	if items == nil {
		return
	}
	out := make([]T, len(items))
	for i, item := range items {
		if err := json.Unmarshal(item, &out[i]); err != nil {
			d.err = withPath(err, key+"["+strconv.Itoa(i)+"]", item)
			return
		}
	}
	*dst = out
}

// resource decodes a polymorphic resource member.
func resource(d *objectDecoder, key string, dst *Resource) {
	if d.err != nil {
		return
	}
	raw, ok := d.members[key]
	if !ok {
		return
	}
	r, err := unmarshalResource(raw)
	if err != nil {
		d.err = withPath(err, key, raw)
		return
	}
	*dst = r
}

func resourceList(d *objectDecoder, key string, dst *[]Resource) {
	var items []json.RawMessage
	list(d, key, &items)
	if d.err != nil || items == nil {
		return
	}
	out := make([]Resource, len(items))
	for i, item := range items {
		r, err := unmarshalResource(item)
		if err != nil {
			d.err = withPath(err, key+"["+strconv.Itoa(i)+"]", item)
			return
		}
		out[i] = r
	}
	*dst = out
}

// choice returns the suffix of the single "<prefix><Suffix>" member present
// among suffixes, or "" when there is none. More than one is a TypeMismatch.
func choice(d *objectDecoder, prefix string, suffixes ...string) string {
	if d.err != nil {
		return ""
	}
	found := ""
	for _, s := range suffixes {
		if _, ok := d.members[prefix+s]; !ok {
			continue
		}
		if found != "" {
			d.err = &DecodeError{
				Kind:  TypeMismatch,
				Path:  prefix + "[x]",
				Value: prefix + found + ", " + prefix + s,
			}
			return ""
		}
		found = s
	}
	return found
}

// choiceExt decodes the "_<prefix><Suffix>" sibling of a primitive choice
// alternative.
func choiceExt(d *objectDecoder, prefix string, suffixes ...string) *ChoiceElement {
	for _, s := range suffixes {
		var el *Element
		if field(d, "_"+prefix+s, &el) && el != nil {
			return &ChoiceElement{Type: s, Element: *el}
		}
	}
	return nil
}

// unmarshalCode decodes a closed code, rejecting anything outside the set.
func unmarshalCode[T interface {
	~string
	Valid() bool
}](data []byte, dst *T) error {
	if isNull(data) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return classify(err, data)
	}
	if !T(s).Valid() {
		return &DecodeError{Kind: UnknownEnumValue, Value: s}
	}
	*dst = T(s)
	return nil
}

// ---------------------------------------------------------------------------
// Encoding
// ---------------------------------------------------------------------------

// objectEncoder writes one JSON object member by member, in the order the
// generated MarshalJSON calls it.
type objectEncoder struct {
	buf bytes.Buffer
	err error
}

func newObjectEncoder() *objectEncoder {
	e := &objectEncoder{}
	e.buf.WriteByte('{')
	return e
}

func newResourceEncoder(resourceType string) *objectEncoder {
	e := newObjectEncoder()
	e.member("resourceType", []byte(strconv.Quote(resourceType)))
	return e
}

func (e *objectEncoder) member(key string, raw []byte) {
	if e.buf.Len() > 1 {
		e.buf.WriteByte(',')
	}
	e.buf.WriteByte('"')
	e.buf.WriteString(key)
	e.buf.WriteString(`":`)
	e.buf.Write(raw)
}

func (e *objectEncoder) bytes() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	e.buf.WriteByte('}')
	return e.buf.Bytes(), nil
}

func encodeValue[T any](e *objectEncoder, key string, v T) {
	if e.err != nil {
		return
	}
	raw, err := marshalValue(v)
	if err != nil {
		e.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	e.member(key, raw)
}

func encodePtr[T any](e *objectEncoder, key string, v *T) {
	if v != nil {
		encodeValue(e, key, v)
	}
}

func encodeList[T any](e *objectEncoder, key string, v []T) {
	if v != nil {
		encodeValue(e, key, v)
	}
}

func encodeResource(e *objectEncoder, key string, r Resource) {
	if r != nil {
		encodeValue(e, key, r)
	}
}

func encodeResources(e *objectEncoder, key string, rs []Resource) {
	if rs != nil {
		encodeValue(e, key, rs)
	}
}

// encodeChoiceExt writes the "_<prefix><Suffix>" sibling of a primitive
// choice. The suffix recorded on ext wins over the one of the value.
func encodeChoiceExt(e *objectEncoder, prefix, suffix string, ext *ChoiceElement) {
	if ext == nil {
		return
	}
	if ext.Type != "" {
		suffix = ext.Type
	}
	if suffix == "" {
		return
	}
	encodeValue(e, "_"+prefix+suffix, ext.Element)
}

func marshalValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
