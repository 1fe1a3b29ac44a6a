// Package fhirmodels holds Go types for the FHIR R4 data model together with
// their JSON encoding.
//
// Every complex datatype, resource and backbone element of the base
// specification is a struct whose fields mirror the JSON member names.
// Primitive fields are pointers so an absent member stays distinguishable
// from a zero value, and every primitive has a companion "_name" extension
// field. Choice elements ("value[x]") are sealed interfaces, and codes bound
// to a required value set are string types that reject unknown codes on
// decode.
//
// Decoding reports failures as *DecodeError, which carries the path of the
// offending member:
//
//	p, err := fhirmodels.Decode[fhirmodels.Patient](data)
//	if errors.Is(err, fhirmodels.ErrUnknownEnumValue) {
//		...
//	}
//
// The types are generated from internal/fhirgen/schema.
package fhirmodels

//go:generate go run ../../cmd/fhirgen generate --out .
