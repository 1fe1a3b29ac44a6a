package fhir

import (
	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

// OutcomeBuilder provides a fluent API for constructing OperationOutcome resources.
type OutcomeBuilder struct {
	outcome *fhirmodels.OperationOutcome
}

// NewOutcomeBuilder creates a new OutcomeBuilder.
func NewOutcomeBuilder() *OutcomeBuilder {
	return &OutcomeBuilder{outcome: &fhirmodels.OperationOutcome{}}
}

func newIssue(severity fhirmodels.IssueSeverity, code fhirmodels.IssueType, diagnostics string) fhirmodels.OperationOutcomeIssue {
	issue := fhirmodels.OperationOutcomeIssue{
		Severity: fhirmodels.Ptr(severity),
		Code:     fhirmodels.Ptr(code),
	}
	if diagnostics != "" {
		issue.Diagnostics = fhirmodels.Ptr(diagnostics)
	}
	return issue
}

// AddIssue adds a single issue to the OperationOutcome.
func (b *OutcomeBuilder) AddIssue(severity fhirmodels.IssueSeverity, code fhirmodels.IssueType, diagnostics string) *OutcomeBuilder {
	b.outcome.Issue = append(b.outcome.Issue, newIssue(severity, code, diagnostics))
	return b
}

// AddIssueWithDetails adds an issue with a CodeableConcept details field.
func (b *OutcomeBuilder) AddIssueWithDetails(severity fhirmodels.IssueSeverity, code fhirmodels.IssueType, diagnostics string, details *fhirmodels.CodeableConcept) *OutcomeBuilder {
	issue := newIssue(severity, code, diagnostics)
	issue.Details = details
	b.outcome.Issue = append(b.outcome.Issue, issue)
	return b
}

// AddIssueWithExpression adds an issue pointing at a FHIRPath expression.
// An empty expression is left out.
func (b *OutcomeBuilder) AddIssueWithExpression(severity fhirmodels.IssueSeverity, code fhirmodels.IssueType, diagnostics, expression string) *OutcomeBuilder {
	issue := newIssue(severity, code, diagnostics)
	if expression != "" {
		issue.Expression = []string{expression}
	}
	b.outcome.Issue = append(b.outcome.Issue, issue)
	return b
}

// Build returns the constructed OperationOutcome.
func (b *OutcomeBuilder) Build() *fhirmodels.OperationOutcome {
	return b.outcome
}

// NewOperationOutcome creates an OperationOutcome with a single issue.
func NewOperationOutcome(severity fhirmodels.IssueSeverity, code fhirmodels.IssueType, diagnostics string) *fhirmodels.OperationOutcome {
	return NewOutcomeBuilder().AddIssue(severity, code, diagnostics).Build()
}

// HasErrors returns true if the outcome contains any error or fatal issues.
func HasErrors(o *fhirmodels.OperationOutcome) bool {
	if o == nil {
		return false
	}
	for _, issue := range o.Issue {
		if issue.Severity == nil {
			continue
		}
		switch *issue.Severity {
		case fhirmodels.IssueSeverityError, fhirmodels.IssueSeverityFatal:
			return true
		}
	}
	return false
}
