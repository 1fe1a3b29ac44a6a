package fhir

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

func TestBatchValidator_MixedStream(t *testing.T) {
	input := strings.Join([]string{
		`{"resourceType":"Patient","id":"p1","gender":"female"}`,
		`{"resourceType":"Patient","id":"p2","gender":"robot"}`,
		``,
		`{"resourceType":"Observation","id":"o1","status":"final","valueQuantity":{"value":72.5,"unit":"/min"}}`,
		`{"resourceType":"Nope"}`,
		`null`,
		`{"resourceType":"Observation","status":"final","valueBoolean":true,"valueString":"x"}`,
	}, "\n")

	v := &BatchValidator{Workers: 3, Logger: zerolog.Nop()}
	res, err := v.Validate(context.Background(), NewNDJSONReader(strings.NewReader(input), 0))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if res.TotalCount != 6 || res.ValidCount != 2 || res.InvalidCount != 4 {
		t.Fatalf("counts = %d/%d/%d, want 6/2/4", res.TotalCount, res.ValidCount, res.InvalidCount)
	}

	wantLines := []int{1, 2, 4, 5, 6, 7}
	wantValid := []bool{true, false, true, false, false, false}
	for i, r := range res.Results {
		if r.Line != wantLines[i] {
			t.Errorf("result %d: line = %d, want %d", i, r.Line, wantLines[i])
		}
		if r.Valid() != wantValid[i] {
			t.Errorf("line %d: valid = %v, want %v", r.Line, r.Valid(), wantValid[i])
		}
	}

	p, ok := res.Results[0].Resource.(*fhirmodels.Patient)
	if !ok {
		t.Fatalf("line 1 decoded to %T", res.Results[0].Resource)
	}
	if *p.Gender != fhirmodels.AdministrativeGenderFemale {
		t.Errorf("gender = %s", *p.Gender)
	}
	if res.Results[1].ResourceID != "p2" || res.Results[1].ResourceType != "Patient" {
		t.Errorf("invalid line should keep its type and id, got %s/%s", res.Results[1].ResourceType, res.Results[1].ResourceID)
	}

	issue := res.Results[1].Outcome.Issue[0]
	if *issue.Code != fhirmodels.IssueTypeCodeInvalid || issue.Expression[0] != "gender" {
		t.Errorf("line 2 issue = %s at %v", *issue.Code, issue.Expression)
	}
	if !strings.HasPrefix(*issue.Diagnostics, "line 2: ") {
		t.Errorf("diagnostics = %q", *issue.Diagnostics)
	}

	choice := res.Results[5].Outcome.Issue[0]
	if choice.Expression[0] != "value[x]" {
		t.Errorf("two choice alternatives: expression = %v", choice.Expression)
	}

	combined := res.Outcome()
	if len(combined.Issue) != 4 || !HasErrors(combined) {
		t.Errorf("combined outcome has %d issues", len(combined.Issue))
	}
}

func TestBatchValidator_AllValid(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&b, `{"resourceType":"Basic","id":"b%d"}`+"\n", i)
	}
	v := &BatchValidator{Logger: zerolog.Nop()}
	res, err := v.Validate(context.Background(), NewNDJSONReader(strings.NewReader(b.String()), 0))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if res.ValidCount != 200 || res.InvalidCount != 0 {
		t.Fatalf("counts = %d valid, %d invalid", res.ValidCount, res.InvalidCount)
	}
	for i, r := range res.Results {
		if want := fmt.Sprintf("b%d", i); r.Resource.ResourceID() != want {
			t.Fatalf("result %d: id = %s, want %s; order must follow the input", i, r.Resource.ResourceID(), want)
		}
	}
	if HasErrors(res.Outcome()) {
		t.Error("expected a success outcome")
	}
}

func TestBatchValidator_LineTooLong(t *testing.T) {
	input := `{"resourceType":"Basic"}` + "\n" + `{"resourceType":"Basic","id":"` + strings.Repeat("x", 200) + `"}`
	v := &BatchValidator{Workers: 1, Logger: zerolog.Nop()}
	_, err := v.Validate(context.Background(), NewNDJSONReader(strings.NewReader(input), 100))
	if !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
}

func TestBatchValidator_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	v := &BatchValidator{Logger: zerolog.Nop()}
	_, err := v.Validate(ctx, NewNDJSONReader(strings.NewReader(`{"resourceType":"Basic"}`), 0))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
