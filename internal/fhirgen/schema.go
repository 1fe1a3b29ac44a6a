// Package fhirgen turns the FHIR R4 schema table (YAML, one row per field)
// into the Go source of package fhirmodels.
package fhirgen

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind selects the base fields injected into a schema row.
type Kind string

const (
	KindElement        Kind = "element"
	KindDatatype       Kind = "datatype"
	KindBackbone       Kind = "backbone"
	KindResource       Kind = "resource"
	KindDomainResource Kind = "domainresource"
)

var baseFields = map[Kind][]string{
	KindElement: {
		"id string noext",
		"extension Extension*",
	},
	KindDatatype: {
		"id string noext",
		"extension Extension*",
	},
	KindBackbone: {
		"id string noext",
		"extension Extension*",
		"modifierExtension Extension*",
	},
	KindResource: {
		"id id noext",
		"meta Meta",
		"implicitRules uri",
		"language code",
	},
	KindDomainResource: {
		"id id noext",
		"meta Meta",
		"implicitRules uri",
		"language code",
		"text Narrative",
		"contained Resource*",
		"extension Extension*",
		"modifierExtension Extension*",
	},
}

// file is one YAML document of the schema table.
type file struct {
	Types     []typeRow            `yaml:"types"`
	ValueSets map[string][]codeRow `yaml:"valueSets"`
}

// typeRow declares one schema. Each entry of Fields reads
//
//	<name> <type>[*] [noext] [go:<GoName>]
//
// where <type> is a FHIR primitive, a schema name, Resource, or
// code(<ValueSet>) for a required binding. A trailing * makes the field a
// list. Choice fields are written <name>[x] T1|T2|... or <name>[x] * for the
// open type.
type typeRow struct {
	Name   string   `yaml:"name"`
	Kind   Kind     `yaml:"kind"`
	Doc    string   `yaml:"doc"`
	Fields []string `yaml:"fields"`
}

// codeRow is one code of a value set: a bare scalar, or a mapping that also
// overrides the Go constant suffix.
type codeRow struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

func (c *codeRow) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		c.Code = n.Value
		return nil
	}
	type plain codeRow
	return n.Decode((*plain)(c))
}

// ---------------------------------------------------------------------------
// Resolved model
// ---------------------------------------------------------------------------

// Model is the resolved schema table, ready to render.
type Model struct {
	Types     []*Type
	ValueSets []*ValueSet
	Choices   []*Choice
	DataType  *Choice
}

// Type is one schema: a datatype, resource or backbone element.
type Type struct {
	Name   string
	GoName string
	Kind   Kind
	Doc    string
	Fields []*Field
	// File is the generated file holding the type, named after the
	// top-level schema it belongs to.
	File string
}

// IsResource reports whether the type is a resource.
func (t *Type) IsResource() bool {
	return t.Kind == KindResource || t.Kind == KindDomainResource
}

// TopLevel reports whether the type is not a backbone element of another.
func (t *Type) TopLevel() bool {
	return !strings.Contains(t.Name, "_")
}

// FieldKind says how a field is stored and coded.
type FieldKind int

const (
	FieldPrimitive FieldKind = iota
	FieldEnum
	FieldComplex
	FieldResource
	FieldChoice
)

// Field is one member of a schema.
type Field struct {
	Wire   string
	GoName string
	Kind   FieldKind
	// GoType is the element type: "string", "AddressUse", "Identifier".
	GoType string
	List   bool
	NoExt  bool
	Choice *Choice
}

// HasExt reports whether the field carries a "_wire" sibling.
func (f *Field) HasExt() bool {
	switch f.Kind {
	case FieldPrimitive, FieldEnum:
		return !f.NoExt
	case FieldChoice:
		return f.Choice.HasPrimitive()
	}
	return false
}

// Choice is a value[x] field: a sealed interface over its alternatives.
type Choice struct {
	Name  string
	Owner *Type
	Wire  string
	Alts  []Alt
}

// HasPrimitive reports whether any alternative is a primitive.
func (c *Choice) HasPrimitive() bool {
	for _, a := range c.Alts {
		if a.Primitive {
			return true
		}
	}
	return false
}

// PrimitiveSuffixes lists the wire suffixes of the primitive alternatives.
func (c *Choice) PrimitiveSuffixes() []string {
	var out []string
	for _, a := range c.Alts {
		if a.Primitive {
			out = append(out, a.Suffix)
		}
	}
	return out
}

// Alt is one alternative of a choice.
type Alt struct {
	// Suffix is appended to the field name on the wire: "Boolean",
	// "CodeableConcept".
	Suffix    string
	GoType    string
	Primitive bool
}

// ValueSet is a closed code set rendered as a string type.
type ValueSet struct {
	Name  string
	Codes []Code
}

// Code is one constant of a value set.
type Code struct {
	Value string
	Const string
}
