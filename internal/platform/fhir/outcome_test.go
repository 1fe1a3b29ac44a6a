package fhir

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ehr/fhirmodels/internal/platform/blobstore"
	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

func singleIssue(t *testing.T, o *fhirmodels.OperationOutcome) fhirmodels.OperationOutcomeIssue {
	t.Helper()
	if o == nil || len(o.Issue) != 1 {
		t.Fatalf("expected exactly one issue, got %+v", o)
	}
	return o.Issue[0]
}

func TestFromDecodeError_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantCode fhirmodels.IssueType
		wantExpr string
	}{
		{"malformed", `{"resourceType":`, fhirmodels.IssueTypeStructure, ""},
		{"type mismatch", `{"resourceType":"Patient","active":"yes"}`, fhirmodels.IssueTypeStructure, "active"},
		{"unknown code", `{"resourceType":"Patient","gender":"robot"}`, fhirmodels.IssueTypeCodeInvalid, "gender"},
		{"missing resourceType", `{"id":"x"}`, fhirmodels.IssueTypeRequired, "resourceType"},
		{"nested", `{"resourceType":"Patient","name":[{},{"use":"nick"}]}`, fhirmodels.IssueTypeCodeInvalid, "name[1].use"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fhirmodels.UnmarshalResource([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected decode error")
			}
			issue := singleIssue(t, FromDecodeError(err))
			if *issue.Severity != fhirmodels.IssueSeverityError {
				t.Errorf("severity = %s, want error", *issue.Severity)
			}
			if *issue.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", *issue.Code, tt.wantCode)
			}
			var gotExpr string
			if len(issue.Expression) > 0 {
				gotExpr = issue.Expression[0]
			}
			if gotExpr != tt.wantExpr {
				t.Errorf("expression = %q, want %q", gotExpr, tt.wantExpr)
			}
			if issue.Diagnostics == nil || !strings.HasPrefix(*issue.Diagnostics, "fhir: ") {
				t.Errorf("diagnostics = %v, want the decode error text", issue.Diagnostics)
			}
		})
	}
}

func TestFromDecodeError_Wrapped(t *testing.T) {
	err := fmt.Errorf("line 7: %w", &fhirmodels.DecodeError{Kind: fhirmodels.UnknownEnumValue, Path: "status", Value: "done"})
	issue := singleIssue(t, FromDecodeError(err))
	if *issue.Code != fhirmodels.IssueTypeCodeInvalid {
		t.Errorf("code = %s, want code-invalid", *issue.Code)
	}
	if *issue.Diagnostics != "fhir: unknown enum value at status: done" {
		t.Errorf("diagnostics = %q", *issue.Diagnostics)
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		err      error
		severity fhirmodels.IssueSeverity
		code     fhirmodels.IssueType
	}{
		{fmt.Errorf("%w: a.json", blobstore.ErrNotFound), fhirmodels.IssueSeverityError, fhirmodels.IssueTypeNotFound},
		{blobstore.ErrTooLarge, fhirmodels.IssueSeverityError, fhirmodels.IssueTypeTooLong},
		{ErrLineTooLong, fhirmodels.IssueSeverityError, fhirmodels.IssueTypeTooLong},
		{blobstore.ErrUnsupportedScheme, fhirmodels.IssueSeverityError, fhirmodels.IssueTypeNotSupported},
		{errors.New("disk on fire"), fhirmodels.IssueSeverityFatal, fhirmodels.IssueTypeException},
	}
	for _, tt := range tests {
		issue := singleIssue(t, FromDecodeError(tt.err))
		if *issue.Severity != tt.severity || *issue.Code != tt.code {
			t.Errorf("%v: got %s/%s, want %s/%s", tt.err, *issue.Severity, *issue.Code, tt.severity, tt.code)
		}
		if *issue.Diagnostics != tt.err.Error() {
			t.Errorf("diagnostics = %q, want %q", *issue.Diagnostics, tt.err.Error())
		}
	}
}

func TestLineOutcome(t *testing.T) {
	o := NewOutcomeBuilder().
		AddIssue(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeStructure, "broken").
		AddIssue(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeStructure, "").
		Build()
	LineOutcome(12, o)
	if *o.Issue[0].Diagnostics != "line 12: broken" {
		t.Errorf("diagnostics = %q", *o.Issue[0].Diagnostics)
	}
	if *o.Issue[1].Diagnostics != "line 12" {
		t.Errorf("diagnostics = %q", *o.Issue[1].Diagnostics)
	}
}
