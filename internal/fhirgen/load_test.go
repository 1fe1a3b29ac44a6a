package fhirgen

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findType(m *Model, name string) *Type {
	for _, t := range m.Types {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func findField(t *Type, wire string) *Field {
	for _, f := range t.Fields {
		if f.Wire == wire {
			return f
		}
	}
	return nil
}

// baseRows declares the types every kind's injected base fields refer to.
const baseRows = `
types:
  - name: Extension
    kind: datatype
    fields:
      - url uri noext
  - name: Meta
    kind: datatype
    fields:
      - versionId id
`

func schemaFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{"base.yaml": &fstest.MapFile{Data: []byte(baseRows)}}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadBuiltinSchema(t *testing.T) {
	m, err := Load(Schema())
	require.NoError(t, err)

	assert.Len(t, m.Types, 659)
	assert.Len(t, m.ValueSets, 207)
	assert.Len(t, m.Choices, 177)

	patient := findType(m, "Patient")
	require.NotNil(t, patient)
	assert.True(t, patient.IsResource())
	assert.Equal(t, "patient.go", patient.File)

	id := findField(patient, "id")
	require.NotNil(t, id)
	assert.False(t, id.HasExt())

	birthDate := findField(patient, "birthDate")
	require.NotNil(t, birthDate)
	assert.Equal(t, FieldPrimitive, birthDate.Kind)
	assert.True(t, birthDate.HasExt())

	gender := findField(patient, "gender")
	require.NotNil(t, gender)
	assert.Equal(t, FieldEnum, gender.Kind)
	assert.Equal(t, "AdministrativeGender", gender.GoType)

	deceased := findField(patient, "deceased")
	require.NotNil(t, deceased)
	assert.Equal(t, FieldChoice, deceased.Kind)
	assert.Equal(t, []string{"Boolean", "DateTime"}, deceased.Choice.PrimitiveSuffixes())

	contained := findField(patient, "contained")
	require.NotNil(t, contained)
	assert.Equal(t, FieldResource, contained.Kind)
	assert.True(t, contained.List)

	diagnosis := findType(m, "Claim_Diagnosis")
	require.NotNil(t, diagnosis)
	assert.False(t, diagnosis.TopLevel())
	assert.Equal(t, "ClaimDiagnosis", diagnosis.GoName)
	assert.Equal(t, "claim.go", diagnosis.File)
	assert.NotNil(t, findField(diagnosis, "modifierExtension"))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		bare  bool
		want  string
	}{
		{
			name:  "no files",
			files: map[string]string{"README.md": "nothing"},
			bare:  true,
			want:  "no *.yaml files",
		},
		{
			name: "unknown field type",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "size Gadget"
`},
			want: "unknown type Gadget",
		},
		{
			name: "unknown value set",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "status code(WidgetStatus)"
`},
			want: "unknown value set WidgetStatus",
		},
		{
			name: "unused value set",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "label string"
valueSets:
  WidgetStatus: [on, off]
`},
			want: "value set WidgetStatus is not bound to any field",
		},
		{
			name: "duplicate code",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "status code(WidgetStatus)"
valueSets:
  WidgetStatus: [on, on]
`},
			want: `duplicate code "on"`,
		},
		{
			name: "duplicate wire name",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "valueString string"
      - "value[x] string|boolean"
`},
			want: "wire name valueString used by",
		},
		{
			name: "duplicate type",
			files: map[string]string{
				"a.yaml": "types:\n  - name: Widget\n    kind: datatype\n",
				"b.yaml": "types:\n  - name: Widget\n    kind: datatype\n",
			},
			want: "type Widget declared in a.yaml and b.yaml",
		},
		{
			name: "unknown kind",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: gizmo
`},
			want: `unknown kind "gizmo"`,
		},
		{
			name: "orphan backbone",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget_Part
    kind: backbone
`},
			want: "no top-level type Widget",
		},
		{
			name: "clash with hand-written code",
			files: map[string]string{"a.yaml": `
types:
  - name: RawResource
    kind: datatype
`},
			want: "identifier RawResource declared by fhirmodels and type RawResource",
		},
		{
			name: "resource as choice alternative",
			files: map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: resource
    fields:
      - "subject[x] string|Widget"
`},
			want: "Widget is not a datatype",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := schemaFS(tt.files)
			if tt.bare {
				delete(fsys, "base.yaml")
			}
			_, err := Load(fsys)
			require.ErrorIs(t, err, ErrSchema)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadReportsEveryProblem(t *testing.T) {
	fsys := schemaFS(map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "size Gadget"
      - "weight Sprocket"
`})
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gadget")
	assert.Contains(t, err.Error(), "Sprocket")
}

func TestLoadCodeOverride(t *testing.T) {
	fsys := schemaFS(map[string]string{"a.yaml": `
types:
  - name: Widget
    kind: datatype
    fields:
      - "comparator code(WidgetComparator)"
valueSets:
  WidgetComparator:
    - "<"
    - code: "ad"
      name: Additive
`})
	m, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, m.ValueSets, 1)
	assert.Equal(t, []Code{
		{Value: "<", Const: "WidgetComparatorLessThan"},
		{Value: "ad", Const: "WidgetComparatorAdditive"},
	}, m.ValueSets[0].Codes)

	w := findType(m, "Widget")
	require.NotNil(t, w)
	names := make([]string, 0, len(w.Fields))
	for _, f := range w.Fields {
		names = append(names, f.Wire)
	}
	assert.Equal(t, []string{"id", "extension", "comparator"}, names)
}
