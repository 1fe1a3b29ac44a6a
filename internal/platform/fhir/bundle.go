package fhir

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

// ErrUnsupportedBundleType is returned for bundle types BundleBuilder cannot
// assemble.
var ErrUnsupportedBundleType = errors.New("unsupported bundle type")

// BundleBuilder wraps resources into a collection, transaction or batch
// Bundle. Every entry gets a urn:uuid: fullUrl; transaction and batch
// entries also get a request: PUT Type/id for resources with an id, POST
// Type otherwise.
type BundleBuilder struct {
	typ     fhirmodels.BundleType
	entries []fhirmodels.BundleEntry
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewBundleBuilder creates a builder for typ.
func NewBundleBuilder(typ fhirmodels.BundleType) (*BundleBuilder, error) {
	switch typ {
	case fhirmodels.BundleTypeCollection, fhirmodels.BundleTypeTransaction, fhirmodels.BundleTypeBatch:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBundleType, typ)
	}
	return &BundleBuilder{typ: typ, now: time.Now, newID: uuid.New}, nil
}

// Add appends resource as a new entry.
func (b *BundleBuilder) Add(resource fhirmodels.Resource) *BundleBuilder {
	entry := fhirmodels.BundleEntry{
		FullURL:  fhirmodels.Ptr("urn:uuid:" + b.newID().String()),
		Resource: resource,
	}
	if b.typ != fhirmodels.BundleTypeCollection {
		entry.Request = entryRequest(resource)
	}
	b.entries = append(b.entries, entry)
	return b
}

func entryRequest(resource fhirmodels.Resource) *fhirmodels.BundleEntryRequest {
	rt := resource.ResourceType()
	if id := resource.ResourceID(); id != "" {
		return &fhirmodels.BundleEntryRequest{
			Method: fhirmodels.Ptr(fhirmodels.HTTPVerbPUT),
			URL:    fhirmodels.Ptr(fhirmodels.FormatReference(rt, id)),
		}
	}
	return &fhirmodels.BundleEntryRequest{
		Method: fhirmodels.Ptr(fhirmodels.HTTPVerbPOST),
		URL:    fhirmodels.Ptr(rt),
	}
}

// Len returns the number of entries added so far.
func (b *BundleBuilder) Len() int {
	return len(b.entries)
}

// Build returns the Bundle. The builder may be reused; later entries do not
// leak into bundles already built.
func (b *BundleBuilder) Build() *fhirmodels.Bundle {
	entries := make([]fhirmodels.BundleEntry, len(b.entries))
	copy(entries, b.entries)
	return &fhirmodels.Bundle{
		ID:        fhirmodels.Ptr(b.newID().String()),
		Type:      fhirmodels.Ptr(b.typ),
		Timestamp: fhirmodels.Ptr(b.now().UTC().Format(time.RFC3339)),
		Entry:     entries,
	}
}

// Resources returns the entry resources of bundle, skipping empty entries.
func Resources(bundle *fhirmodels.Bundle) []fhirmodels.Resource {
	if bundle == nil {
		return nil
	}
	out := make([]fhirmodels.Resource, 0, len(bundle.Entry))
	for _, e := range bundle.Entry {
		if e.Resource != nil {
			out = append(out, e.Resource)
		}
	}
	return out
}
