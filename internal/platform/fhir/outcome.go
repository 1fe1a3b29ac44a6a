package fhir

import (
	"errors"
	"fmt"

	"github.com/ehr/fhirmodels/internal/platform/blobstore"
	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

// FromDecodeError describes a decoding failure as an OperationOutcome. A
// *fhirmodels.DecodeError anywhere in err's chain becomes one error issue
// whose expression is the failing path; other errors become an exception.
func FromDecodeError(err error) *fhirmodels.OperationOutcome {
	var de *fhirmodels.DecodeError
	if !errors.As(err, &de) {
		return FromError(err)
	}
	code := fhirmodels.IssueTypeStructure
	switch de.Kind {
	case fhirmodels.UnknownEnumValue:
		code = fhirmodels.IssueTypeCodeInvalid
	case fhirmodels.MissingRequiredField:
		code = fhirmodels.IssueTypeRequired
	}
	return NewOutcomeBuilder().
		AddIssueWithExpression(fhirmodels.IssueSeverityError, code, de.Error(), de.Path).
		Build()
}

// FromError maps an arbitrary error. Document sources' sentinel errors get
// their own issue types.
func FromError(err error) *fhirmodels.OperationOutcome {
	switch {
	case errors.Is(err, blobstore.ErrNotFound):
		return NewOperationOutcome(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeNotFound, err.Error())
	case errors.Is(err, blobstore.ErrTooLarge), errors.Is(err, ErrLineTooLong):
		return NewOperationOutcome(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeTooLong, err.Error())
	case errors.Is(err, blobstore.ErrUnsupportedScheme), errors.Is(err, blobstore.ErrInvalidLocation):
		return NewOperationOutcome(fhirmodels.IssueSeverityError, fhirmodels.IssueTypeNotSupported, err.Error())
	}
	return InternalErrorOutcome(err.Error())
}

// SuccessOutcome creates a success OperationOutcome with severity=information.
func SuccessOutcome(message string) *fhirmodels.OperationOutcome {
	return NewOperationOutcome(fhirmodels.IssueSeverityInformation, fhirmodels.IssueTypeInformational, message)
}

// WarningOutcome creates a warning OperationOutcome.
func WarningOutcome(message string) *fhirmodels.OperationOutcome {
	return NewOperationOutcome(fhirmodels.IssueSeverityWarning, fhirmodels.IssueTypeProcessing, message)
}

// InternalErrorOutcome creates a fatal OperationOutcome for unexpected errors.
func InternalErrorOutcome(diagnostics string) *fhirmodels.OperationOutcome {
	return NewOperationOutcome(fhirmodels.IssueSeverityFatal, fhirmodels.IssueTypeException, diagnostics)
}

// LineOutcome prefixes every issue of o with the NDJSON line it came from,
// so outcomes of a stream stay attributable once collected.
func LineOutcome(line int, o *fhirmodels.OperationOutcome) *fhirmodels.OperationOutcome {
	for i := range o.Issue {
		issue := &o.Issue[i]
		msg := fmt.Sprintf("line %d", line)
		if issue.Diagnostics != nil {
			msg += ": " + *issue.Diagnostics
		}
		issue.Diagnostics = fhirmodels.Ptr(msg)
	}
	return o
}
