package fhirmodels

// Primitive wrapper types. Struct fields hold primitives as plain Go values
// (*string, *bool, ...); these named types exist so a primitive can sit in a
// choice field next to complex alternatives, e.g. ObservationValue holding a
// Boolean or a *Quantity.
type (
	Base64Binary string
	Boolean      bool
	Canonical    string
	Code         string
	Date         string
	DateTime     string
	ID           string
	Instant      string
	Integer      int
	Markdown     string
	OID          string
	PositiveInt  uint32
	String       string
	Time         string
	URI          string
	URL          string
	UUID         string
	UnsignedInt  uint32
)

// ChoiceElement is the "_value<Type>" sibling of a primitive choice
// alternative. Type is the alternative's suffix ("Boolean", "DateTime"), so
// the sibling survives even when the value itself is absent.
type ChoiceElement struct {
	Type string
	Element
}

// Ptr returns a pointer to v. It keeps literal construction of optional
// fields short: Address{City: fhirmodels.Ptr("Boston")}.
func Ptr[T any](v T) *T {
	return &v
}

// FormatReference builds a relative literal reference such as "Patient/123".
func FormatReference(resourceType, id string) string {
	return resourceType + "/" + id
}

// NewReference returns a Reference pointing at r.
func NewReference(r Resource) *Reference {
	return &Reference{
		Reference: Ptr(FormatReference(r.ResourceType(), r.ResourceID())),
		Type:      Ptr(r.ResourceType()),
	}
}
