package fhir

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

func fixedBuilder(t *testing.T, typ fhirmodels.BundleType) *BundleBuilder {
	t.Helper()
	b, err := NewBundleBuilder(typ)
	if err != nil {
		t.Fatalf("NewBundleBuilder(%s): %v", typ, err)
	}
	var n byte
	b.newID = func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}
	b.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return b
}

func TestBundleBuilder_Collection(t *testing.T) {
	b := fixedBuilder(t, fhirmodels.BundleTypeCollection)
	b.Add(&fhirmodels.Patient{ID: fhirmodels.Ptr("p1")})
	b.Add(&fhirmodels.Basic{})
	bundle := b.Build()

	data, err := fhirmodels.Marshal(bundle)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"resourceType":"Bundle","id":"00000000-0000-0000-0000-000000000003","type":"collection","timestamp":"2024-03-01T12:00:00Z","entry":[` +
		`{"fullUrl":"urn:uuid:00000000-0000-0000-0000-000000000001","resource":{"resourceType":"Patient","id":"p1"}},` +
		`{"fullUrl":"urn:uuid:00000000-0000-0000-0000-000000000002","resource":{"resourceType":"Basic"}}]}`
	if string(data) != want {
		t.Errorf("bundle =\n%s\nwant\n%s", data, want)
	}
}

func TestBundleBuilder_Transaction(t *testing.T) {
	b := fixedBuilder(t, fhirmodels.BundleTypeTransaction)
	b.Add(&fhirmodels.Patient{ID: fhirmodels.Ptr("p1")}).
		Add(&fhirmodels.Observation{})
	bundle := b.Build()

	if len(bundle.Entry) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(bundle.Entry))
	}
	put := bundle.Entry[0].Request
	if *put.Method != fhirmodels.HTTPVerbPUT || *put.URL != "Patient/p1" {
		t.Errorf("entry 0 request = %s %s, want PUT Patient/p1", *put.Method, *put.URL)
	}
	post := bundle.Entry[1].Request
	if *post.Method != fhirmodels.HTTPVerbPOST || *post.URL != "Observation" {
		t.Errorf("entry 1 request = %s %s, want POST Observation", *post.Method, *post.URL)
	}

	data, err := fhirmodels.Marshal(bundle)
	if err != nil {
		t.Fatal(err)
	}
	back, err := fhirmodels.Decode[fhirmodels.Bundle](data)
	if err != nil {
		t.Fatalf("decoding the built bundle: %v", err)
	}
	resources := Resources(back)
	if len(resources) != 2 || resources[0].ResourceType() != "Patient" || resources[1].ResourceType() != "Observation" {
		t.Errorf("resources = %v", resources)
	}
}

func TestBundleBuilder_BuildIsSnapshot(t *testing.T) {
	b := fixedBuilder(t, fhirmodels.BundleTypeBatch)
	b.Add(&fhirmodels.Basic{})
	first := b.Build()
	b.Add(&fhirmodels.Basic{})
	if len(first.Entry) != 1 {
		t.Errorf("first bundle grew to %d entries", len(first.Entry))
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestBundleBuilder_UnsupportedType(t *testing.T) {
	for _, typ := range []fhirmodels.BundleType{fhirmodels.BundleTypeSearchset, fhirmodels.BundleTypeDocument, "nonsense"} {
		if _, err := NewBundleBuilder(typ); !errors.Is(err, ErrUnsupportedBundleType) {
			t.Errorf("%s: expected ErrUnsupportedBundleType, got %v", typ, err)
		}
	}
}

func TestResources_Nil(t *testing.T) {
	if got := Resources(nil); got != nil {
		t.Errorf("Resources(nil) = %v", got)
	}
}
