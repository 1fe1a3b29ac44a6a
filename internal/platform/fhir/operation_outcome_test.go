package fhir

import (
	"testing"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

func TestOutcomeBuilder(t *testing.T) {
	details := fhirmodels.NewCodeableConcept(fhirmodels.SystemOperationOutcomeCode, "MSG_UNKNOWN_TYPE", "")
	o := NewOutcomeBuilder().
		AddIssue(fhirmodels.IssueSeverityWarning, fhirmodels.IssueTypeProcessing, "slow").
		AddIssueWithDetails(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeNotSupported, "", details).
		AddIssueWithExpression(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeRequired, "status missing", "Observation.status").
		AddIssueWithExpression(fhirmodels.IssueSeverityInformation, fhirmodels.IssueTypeInformational, "note", "").
		Build()

	if len(o.Issue) != 4 {
		t.Fatalf("expected 4 issues, got %d", len(o.Issue))
	}
	if *o.Issue[0].Severity != fhirmodels.IssueSeverityWarning || *o.Issue[0].Diagnostics != "slow" {
		t.Errorf("issue 0 = %+v", o.Issue[0])
	}
	if o.Issue[1].Diagnostics != nil {
		t.Errorf("empty diagnostics should be left out, got %q", *o.Issue[1].Diagnostics)
	}
	if o.Issue[1].Details != details {
		t.Error("details not attached")
	}
	if len(o.Issue[2].Expression) != 1 || o.Issue[2].Expression[0] != "Observation.status" {
		t.Errorf("expression = %v", o.Issue[2].Expression)
	}
	if o.Issue[3].Expression != nil {
		t.Errorf("empty expression should be left out, got %v", o.Issue[3].Expression)
	}
}

func TestOutcomeBuilder_JSON(t *testing.T) {
	o := NewOperationOutcome(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeCodeInvalid, "bad code")
	data, err := fhirmodels.Marshal(o)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"resourceType":"OperationOutcome","issue":[{"severity":"error","code":"code-invalid","diagnostics":"bad code"}]}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestHasErrors(t *testing.T) {
	tests := []struct {
		name    string
		outcome *fhirmodels.OperationOutcome
		want    bool
	}{
		{"nil", nil, false},
		{"empty", &fhirmodels.OperationOutcome{}, false},
		{"information", SuccessOutcome("ok"), false},
		{"warning", WarningOutcome("careful"), false},
		{"error", NewOperationOutcome(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeInvalid, "x"), true},
		{"fatal", InternalErrorOutcome("boom"), true},
		{"no severity", &fhirmodels.OperationOutcome{Issue: []fhirmodels.OperationOutcomeIssue{{}}}, false},
	}
	for _, tt := range tests {
		if got := HasErrors(tt.outcome); got != tt.want {
			t.Errorf("%s: HasErrors = %v, want %v", tt.name, got, tt.want)
		}
	}
}
