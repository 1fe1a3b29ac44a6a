package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/fhirmodels/internal/config"
	"github.com/ehr/fhirmodels/internal/platform/blobstore"
)

func newTestApp(docs map[string]string) (*app, *bytes.Buffer) {
	src := blobstore.NewMemorySource()
	for loc, body := range docs {
		src.Put(loc, []byte(body))
	}
	var out bytes.Buffer
	return &app{
		cfg:    &config.Config{Workers: 2, MaxDocumentBytes: 1 << 20},
		logger: zerolog.Nop(),
		source: src,
		out:    &out,
	}, &out
}

func execute(a *app, args ...string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func outcomeCodes(t *testing.T, data []byte) []string {
	t.Helper()
	var o struct {
		ResourceType string `json:"resourceType"`
		Issue        []struct {
			Code       string   `json:"code"`
			Expression []string `json:"expression"`
		} `json:"issue"`
	}
	if err := json.Unmarshal(data, &o); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, data)
	}
	if o.ResourceType != "OperationOutcome" {
		t.Fatalf("expected an OperationOutcome, got %s", data)
	}
	var codes []string
	for _, issue := range o.Issue {
		codes = append(codes, issue.Code+"@"+strings.Join(issue.Expression, ","))
	}
	return codes
}

func TestDecode_Canonical(t *testing.T) {
	a, out := newTestApp(map[string]string{
		"patient.json": `{"gender":"female","resourceType":"Patient","unknown":1,"id":"p1"}`,
	})
	if err := execute(a, "decode", "patient.json"); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := `{"resourceType":"Patient","id":"p1","gender":"female"}` + "\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestDecode_WithType(t *testing.T) {
	a, out := newTestApp(map[string]string{
		"address.json": `{"use":"home","city":"Boston"}`,
	})
	if err := execute(a, "decode", "--type", "Address", "--pretty", "address.json"); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := "{\n  \"use\": \"home\",\n  \"city\": \"Boston\"\n}\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestDecode_InvalidPrintsOutcome(t *testing.T) {
	a, out := newTestApp(map[string]string{
		"address.json": `{"use":"bogus"}`,
	})
	err := execute(a, "decode", "--type", "Address", "address.json")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	codes := outcomeCodes(t, out.Bytes())
	if len(codes) != 1 || codes[0] != "code-invalid@use" {
		t.Errorf("issues = %v", codes)
	}
}

func TestDecode_Missing(t *testing.T) {
	a, out := newTestApp(nil)
	err := execute(a, "decode", "nowhere.json")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	if codes := outcomeCodes(t, out.Bytes()); codes[0] != "not-found@" {
		t.Errorf("issues = %v", codes)
	}
}

func TestDecode_UnknownType(t *testing.T) {
	a, _ := newTestApp(map[string]string{"doc.json": `{}`})
	err := execute(a, "decode", "--type", "Gizmo", "doc.json")
	if err == nil || !strings.Contains(err.Error(), `unknown FHIR type "Gizmo"`) {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

const stream = `{"resourceType":"Patient","id":"p1"}
{"resourceType":"Patient","id":"p2","gender":"robot"}
{"resourceType":"Observation","status":"final"}
`

func TestValidate(t *testing.T) {
	a, out := newTestApp(map[string]string{"export.ndjson": stream})
	err := execute(a, "validate", "export.ndjson")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one outcome line, got %d:\n%s", len(lines), out.String())
	}
	if codes := outcomeCodes(t, []byte(lines[0])); codes[0] != "code-invalid@gender" {
		t.Errorf("issues = %v", codes)
	}
}

func TestValidate_Clean(t *testing.T) {
	a, out := newTestApp(map[string]string{"ok.ndjson": `{"resourceType":"Basic"}` + "\n"})
	if err := execute(a, "validate", "ok.ndjson"); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %s", out.String())
	}
}

func TestRoundtrip(t *testing.T) {
	a, out := newTestApp(map[string]string{
		"obs.json":   `{"resourceType":"Observation","status":"final","valueQuantity":{"value":1.50,"unit":"mg"}}`,
		"extra.json": `{"resourceType":"Basic","extra":true}`,
	})
	if err := execute(a, "roundtrip", "obs.json"); err != nil {
		t.Fatalf("roundtrip failed: %v", err)
	}
	if !strings.Contains(out.String(), `"value":1.50`) {
		t.Errorf("decimal precision lost: %s", out.String())
	}

	out.Reset()
	if err := execute(a, "roundtrip", "extra.json"); err != nil {
		t.Fatalf("lossy roundtrip without --strict should pass: %v", err)
	}
	out.Reset()
	err := execute(a, "roundtrip", "--strict", "extra.json")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid with --strict, got %v", err)
	}
}

func TestJSONEqual(t *testing.T) {
	if !jsonEqual([]byte(`{"a":1,"b":[true]}`), []byte(`{ "b":[true], "a":1 }`)) {
		t.Error("member order should not matter")
	}
	if jsonEqual([]byte(`{"a":1.50}`), []byte(`{"a":1.5}`)) {
		t.Error("numbers compare by their literal text")
	}
	if jsonEqual([]byte(`{`), []byte(`{}`)) {
		t.Error("malformed input is never equal")
	}
}

func TestBundle(t *testing.T) {
	a, out := newTestApp(map[string]string{
		"ok.ndjson": `{"resourceType":"Patient","id":"p1"}` + "\n" + `{"resourceType":"Observation","status":"final"}` + "\n",
	})
	if err := execute(a, "bundle", "--type", "transaction", "ok.ndjson"); err != nil {
		t.Fatalf("bundle failed: %v", err)
	}
	var b struct {
		ResourceType string `json:"resourceType"`
		Type         string `json:"type"`
		Entry        []struct {
			FullURL string `json:"fullUrl"`
			Request struct {
				Method string `json:"method"`
				URL    string `json:"url"`
			} `json:"request"`
		} `json:"entry"`
	}
	if err := json.Unmarshal(out.Bytes(), &b); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if b.ResourceType != "Bundle" || b.Type != "transaction" || len(b.Entry) != 2 {
		t.Fatalf("bundle = %+v", b)
	}
	if !strings.HasPrefix(b.Entry[0].FullURL, "urn:uuid:") {
		t.Errorf("fullUrl = %s", b.Entry[0].FullURL)
	}
	if b.Entry[0].Request.Method != "PUT" || b.Entry[0].Request.URL != "Patient/p1" {
		t.Errorf("entry 0 request = %+v", b.Entry[0].Request)
	}
	if b.Entry[1].Request.Method != "POST" || b.Entry[1].Request.URL != "Observation" {
		t.Errorf("entry 1 request = %+v", b.Entry[1].Request)
	}
}

func TestBundle_InvalidStream(t *testing.T) {
	a, out := newTestApp(map[string]string{"export.ndjson": stream})
	err := execute(a, "bundle", "export.ndjson")
	if !errors.Is(err, errInvalid) {
		t.Fatalf("expected errInvalid, got %v", err)
	}
	outcomeCodes(t, out.Bytes())
}

func TestBundle_BadType(t *testing.T) {
	a, _ := newTestApp(map[string]string{"ok.ndjson": ""})
	if err := execute(a, "bundle", "--type", "searchset", "ok.ndjson"); err == nil {
		t.Fatal("expected error for searchset")
	}
}

func TestTypes(t *testing.T) {
	a, out := newTestApp(nil)
	if err := execute(a, "types", "--resources"); err != nil {
		t.Fatalf("types failed: %v", err)
	}
	names := strings.Fields(out.String())
	if len(names) != 146 {
		t.Errorf("expected 146 resource types, got %d", len(names))
	}

	out.Reset()
	if err := execute(a, "types"); err != nil {
		t.Fatalf("types failed: %v", err)
	}
	if !strings.Contains(out.String(), "\nClaim_Diagnosis\n") {
		t.Error("expected backbone names in the full list")
	}
}
