package fhirgen

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrSchema marks every problem found in the schema table.
var ErrSchema = errors.New("invalid schema")

// Load reads every *.yaml file at the root of fsys and resolves the schema
// table. All problems found are reported together.
func Load(fsys fs.FS) (*Model, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no *.yaml files", ErrSchema)
	}
	sort.Strings(names)

	l := &loader{
		typeFile: make(map[string]string),
		vsFile:   make(map[string]string),
		vsRows:   make(map[string][]codeRow),
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		l.add(name, &f)
	}
	return l.resolve()
}

type loader struct {
	rows     []typeRow
	typeFile map[string]string
	vsRows   map[string][]codeRow
	vsFile   map[string]string
	dataType *Choice
	openUsed bool
	errs     []error
}

func (l *loader) fail(format string, args ...any) {
	l.errs = append(l.errs, fmt.Errorf("%w: "+format, append([]any{ErrSchema}, args...)...))
}

func (l *loader) add(name string, f *file) {
	for _, row := range f.Types {
		if prev, ok := l.typeFile[row.Name]; ok {
			l.fail("type %s declared in %s and %s", row.Name, prev, name)
			continue
		}
		l.typeFile[row.Name] = name
		l.rows = append(l.rows, row)
	}
	for vs, codes := range f.ValueSets {
		if prev, ok := l.vsFile[vs]; ok {
			l.fail("value set %s declared in %s and %s", vs, prev, name)
			continue
		}
		l.vsFile[vs] = name
		l.vsRows[vs] = codes
	}
}

func (l *loader) resolve() (*Model, error) {
	m := &Model{}
	types := make(map[string]*Type, len(l.rows))
	for _, row := range l.rows {
		if _, ok := baseFields[row.Kind]; !ok {
			l.fail("type %s: unknown kind %q", row.Name, row.Kind)
			continue
		}
		t := &Type{
			Name:   row.Name,
			GoName: typeName(row.Name),
			Kind:   row.Kind,
			Doc:    strings.TrimSpace(row.Doc),
		}
		top := strings.SplitN(row.Name, "_", 2)[0]
		if _, ok := l.typeFile[top]; !ok {
			l.fail("type %s: no top-level type %s", row.Name, top)
		}
		t.File = fileName(typeName(top))
		types[row.Name] = t
		m.Types = append(m.Types, t)
	}

	valueSets := l.valueSets(m)
	used := make(map[string]bool)

	alts, missing := dataTypeAlts(types)
	l.dataType = &Choice{Name: "DataType", Alts: alts}
	m.DataType = l.dataType
	for _, row := range l.rows {
		t := types[row.Name]
		if t == nil {
			continue
		}
		specs := append(append([]string(nil), baseFields[row.Kind]...), row.Fields...)
		for _, spec := range specs {
			f, err := l.parseField(t, spec, types, valueSets)
			if err != nil {
				l.fail("type %s: %v", row.Name, err)
				continue
			}
			if f.Kind == FieldEnum {
				used[f.GoType] = true
			}
			if f.Kind == FieldChoice && f.Choice != l.dataType {
				m.Choices = append(m.Choices, f.Choice)
			}
			t.Fields = append(t.Fields, f)
		}
		l.checkType(t)
	}
	if l.openUsed {
		for _, name := range missing {
			l.fail("open type alternative %s is not declared", name)
		}
	}
	for _, vs := range m.ValueSets {
		if !used[vs.Name] {
			l.fail("value set %s is not bound to any field", vs.Name)
		}
	}
	l.checkPackage(m)

	if len(l.errs) > 0 {
		return nil, errors.Join(l.errs...)
	}
	return m, nil
}

func (l *loader) valueSets(m *Model) map[string]*ValueSet {
	names := make([]string, 0, len(l.vsRows))
	for name := range l.vsRows {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]*ValueSet, len(names))
	for _, name := range names {
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			l.fail("value set %q is not an exported Go identifier", name)
		}
		vs := &ValueSet{Name: name}
		seen := make(map[string]bool)
		for _, row := range l.vsRows[name] {
			if row.Code == "" {
				l.fail("value set %s: empty code", name)
				continue
			}
			if seen[row.Code] {
				l.fail("value set %s: duplicate code %q", name, row.Code)
				continue
			}
			seen[row.Code] = true
			c, err := constName(name, row.Code, row.Name)
			if err != nil {
				l.fail("value set %s: %v", name, err)
				continue
			}
			vs.Codes = append(vs.Codes, Code{Value: row.Code, Const: c})
		}
		out[name] = vs
		m.ValueSets = append(m.ValueSets, vs)
	}
	return out
}

// parseField resolves one field spec of owner.
func (l *loader) parseField(owner *Type, spec string, types map[string]*Type, valueSets map[string]*ValueSet) (*Field, error) {
	tokens := strings.Fields(spec)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("field %q: want <name> <type>", spec)
	}
	f := &Field{Wire: tokens[0]}
	for _, flag := range tokens[2:] {
		switch {
		case flag == "noext":
			f.NoExt = true
		case strings.HasPrefix(flag, "go:"):
			f.GoName = strings.TrimPrefix(flag, "go:")
		default:
			return nil, fmt.Errorf("field %s: unknown flag %q", f.Wire, flag)
		}
	}

	typ := tokens[1]
	if strings.HasSuffix(f.Wire, "[x]") {
		f.Wire = strings.TrimSuffix(f.Wire, "[x]")
		if f.GoName == "" {
			f.GoName = exportName(f.Wire)
		}
		if strings.HasSuffix(typ, "*") && typ != "*" {
			return nil, fmt.Errorf("field %s: choice fields cannot repeat", f.Wire)
		}
		f.Kind = FieldChoice
		if typ == "*" {
			l.openUsed = true
			f.Choice = l.dataType
		} else {
			c, err := choiceOf(owner, f, typ, types)
			if err != nil {
				return nil, err
			}
			f.Choice = c
		}
		f.GoType = f.Choice.Name
		return f, nil
	}

	if f.GoName == "" {
		f.GoName = exportName(f.Wire)
	}
	if strings.HasSuffix(typ, "*") {
		f.List = true
		typ = strings.TrimSuffix(typ, "*")
	}
	switch {
	case strings.HasPrefix(typ, "code(") && strings.HasSuffix(typ, ")"):
		name := typ[len("code(") : len(typ)-1]
		if _, ok := valueSets[name]; !ok {
			return nil, fmt.Errorf("field %s: unknown value set %s", f.Wire, name)
		}
		f.Kind, f.GoType = FieldEnum, name
	case typ == "Resource":
		f.Kind, f.GoType = FieldResource, "Resource"
	default:
		if p, ok := primitives[typ]; ok {
			f.Kind, f.GoType = FieldPrimitive, p[0]
			break
		}
		t, ok := types[typ]
		if !ok {
			return nil, fmt.Errorf("field %s: unknown type %s", f.Wire, typ)
		}
		f.Kind, f.GoType = FieldComplex, t.GoName
	}
	return f, nil
}

func choiceOf(owner *Type, f *Field, spec string, types map[string]*Type) (*Choice, error) {
	c := &Choice{
		Name:  owner.GoName + f.GoName,
		Owner: owner,
		Wire:  f.Wire,
	}
	seen := make(map[string]bool)
	for _, alt := range strings.Split(spec, "|") {
		if seen[alt] {
			return nil, fmt.Errorf("field %s[x]: duplicate alternative %s", f.Wire, alt)
		}
		seen[alt] = true
		if p, ok := primitives[alt]; ok {
			if p[1] == "" {
				return nil, fmt.Errorf("field %s[x]: %s cannot be a choice alternative", f.Wire, alt)
			}
			c.Alts = append(c.Alts, Alt{Suffix: upperFirst(alt), GoType: p[1], Primitive: true})
			continue
		}
		t, ok := types[alt]
		if !ok {
			return nil, fmt.Errorf("field %s[x]: unknown type %s", f.Wire, alt)
		}
		if t.IsResource() || !t.TopLevel() {
			return nil, fmt.Errorf("field %s[x]: %s is not a datatype", f.Wire, alt)
		}
		c.Alts = append(c.Alts, Alt{Suffix: alt, GoType: t.GoName})
	}
	return c, nil
}

// openTypes are the alternatives of the FHIR R4 open type, in the order
// the FHIR specification lists them.
var openTypes = []string{
	"base64Binary", "boolean", "canonical", "code", "date", "dateTime",
	"decimal", "id", "instant", "integer", "markdown", "oid", "positiveInt",
	"string", "time", "unsignedInt", "uri", "url", "uuid",
	"Address", "Age", "Annotation", "Attachment", "CodeableConcept", "Coding",
	"ContactPoint", "Count", "Distance", "Duration", "HumanName", "Identifier",
	"Money", "Period", "Quantity", "Range", "Ratio", "Reference", "SampledData",
	"Signature", "Timing",
	"ContactDetail", "Contributor", "DataRequirement", "Expression",
	"ParameterDefinition", "RelatedArtifact", "TriggerDefinition",
	"UsageContext",
	"Dosage", "Meta",
}

func dataTypeAlts(types map[string]*Type) (alts []Alt, missing []string) {
	for _, name := range openTypes {
		if p, ok := primitives[name]; ok {
			alts = append(alts, Alt{Suffix: upperFirst(name), GoType: p[1], Primitive: true})
			continue
		}
		t, ok := types[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		alts = append(alts, Alt{Suffix: name, GoType: t.GoName})
	}
	return alts, missing
}

// ---------------------------------------------------------------------------
// Checks
// ---------------------------------------------------------------------------

// methodNames are declared on every generated struct, plus the Resource
// methods on resources.
var (
	methodNames   = []string{"MarshalJSON", "UnmarshalJSON"}
	resourceNames = []string{"ResourceType", "ResourceID"}
)

// checkType enforces unique wire names and Go identifiers within t.
func (l *loader) checkType(t *Type) {
	wires := make(map[string]string)
	goNames := make(map[string]string)
	claimWire := func(name, by string) {
		if prev, ok := wires[name]; ok {
			l.fail("type %s: wire name %s used by %s and %s", t.Name, name, prev, by)
			return
		}
		wires[name] = by
	}
	claimGo := func(name, by string) {
		if prev, ok := goNames[name]; ok {
			l.fail("type %s: Go name %s used by %s and %s", t.Name, name, prev, by)
			return
		}
		goNames[name] = by
	}

	for _, m := range methodNames {
		claimGo(m, "method")
	}
	if t.IsResource() {
		claimWire("resourceType", "resourceType")
		for _, m := range resourceNames {
			claimGo(m, "method")
		}
	}
	for _, f := range t.Fields {
		claimGo(f.GoName, f.Wire)
		if f.HasExt() {
			claimGo(f.GoName+"Ext", f.Wire)
		}
		if f.Kind != FieldChoice {
			claimWire(f.Wire, f.Wire)
			if f.HasExt() {
				claimWire("_"+f.Wire, f.Wire)
			}
			continue
		}
		for _, a := range f.Choice.Alts {
			claimWire(f.Wire+a.Suffix, f.Wire+"[x]")
			if a.Primitive {
				claimWire("_"+f.Wire+a.Suffix, f.Wire+"[x]")
			}
		}
	}
}

// checkPackage enforces unique identifiers across the generated package.
func (l *loader) checkPackage(m *Model) {
	idents := make(map[string]string)
	claim := func(name, by string) {
		if prev, ok := idents[name]; ok {
			l.fail("identifier %s declared by %s and %s", name, prev, by)
			return
		}
		idents[name] = by
	}
	for _, name := range reserved {
		claim(name, "fhirmodels")
	}
	for _, p := range primitives {
		if p[1] != "" && p[1] != "Decimal" {
			claim(p[1], "primitive wrapper")
		}
	}
	for _, t := range m.Types {
		claim(t.GoName, "type "+t.Name)
	}
	for _, vs := range m.ValueSets {
		claim(vs.Name, "value set "+vs.Name)
		for _, c := range vs.Codes {
			claim(c.Const, fmt.Sprintf("code %q of %s", c.Value, vs.Name))
		}
	}
	claim(m.DataType.Name, "the open type")
	for _, c := range m.Choices {
		claim(c.Name, "choice "+c.Owner.Name+"."+c.Wire+"[x]")
	}
}
