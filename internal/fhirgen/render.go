package fhirgen

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/imports"
)

// Header opens every generated file. Write uses it to recognize stale files.
const Header = "// Code generated by fhirgen. DO NOT EDIT."

// PackageName is the package of the generated files.
const PackageName = "fhirmodels"

const (
	valueSetsFile     = "value_sets.go"
	choicesFile       = "choices.go"
	registryFile      = "registry.go"
	valueSetsTestFile = "zz_value_sets_test.go"
	typesTestFile     = "zz_types_test.go"
)

// gofmt keeps an empty function body on the header line only while the
// header is narrower than this.
const oneLineFuncMax = 100

// Render produces the formatted Go source of package fhirmodels, keyed by
// file name.
func Render(m *Model) (map[string][]byte, error) {
	files := make(map[string]*generator)
	get := func(name string) *generator {
		g, ok := files[name]
		if !ok {
			g = newGenerator()
			files[name] = g
		}
		return g
	}

	for _, t := range m.Types {
		g := get(t.File)
		g.typeDecl(t)
		for _, f := range t.Fields {
			if f.Kind == FieldChoice && f.Choice != m.DataType {
				g.choiceDecl(f.Choice, false)
			}
		}
	}
	get(valueSetsFile).valueSets(m.ValueSets)
	get(choicesFile).choiceDecl(m.DataType, true)
	get(registryFile).registry(m.Types)
	get(valueSetsTestFile).valueSetsTest(m.ValueSets)
	get(typesTestFile).typesTest(m.Types)

	out := make(map[string][]byte, len(files))
	for name, g := range files {
		src, err := imports.Process(name, g.buf.Bytes(), nil)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", name, err)
		}
		out[name] = src
	}
	return out, nil
}

type generator struct {
	buf bytes.Buffer
}

func newGenerator() *generator {
	g := &generator{}
	g.Printf("%s\n\npackage %s\n", Header, PackageName)
	return g
}

func (g *generator) Printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// comment writes text as a // block wrapped near 80 columns.
func (g *generator) comment(indent, text string) {
	for _, line := range wrap(text, 76) {
		g.Printf("%s// %s\n", indent, line)
	}
}

func wrap(text string, width int) []string {
	var lines []string
	var cur string
	for _, w := range strings.Fields(text) {
		switch {
		case cur == "":
			cur = w
		case len(cur)+1+len(w) <= width:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// lowerFirst lowercases a leading capital unless it starts an acronym.
func lowerFirst(s string) string {
	rs := []rune(s)
	if len(rs) > 1 && unicode.IsUpper(rs[0]) && !unicode.IsUpper(rs[1]) {
		rs[0] = unicode.ToLower(rs[0])
	}
	return string(rs)
}

func typeDoc(t *Type) string {
	switch {
	case t.Doc != "":
		return t.GoName + " is " + lowerFirst(t.Doc)
	case !t.TopLevel():
		return t.GoName + " is the " + wirePath(t.Name) + " backbone element."
	case t.IsResource():
		return t.GoName + " is the FHIR " + t.Name + " resource."
	}
	return t.GoName + " is the FHIR " + t.Name + " datatype."
}

// ---------------------------------------------------------------------------
// Structs
// ---------------------------------------------------------------------------

func fieldType(f *Field) string {
	switch f.Kind {
	case FieldChoice:
		return f.GoType
	case FieldResource:
		if f.List {
			return "[]Resource"
		}
		return "Resource"
	}
	if f.List {
		return "[]" + f.GoType
	}
	return "*" + f.GoType
}

func extType(f *Field) string {
	switch {
	case f.Kind == FieldChoice:
		return "*ChoiceElement"
	case f.List:
		return "[]*Element"
	}
	return "*Element"
}

func wireTag(f *Field) string {
	if f.Kind == FieldChoice {
		return f.Wire + "[x]"
	}
	return f.Wire
}

func (g *generator) typeDecl(t *Type) {
	g.Printf("\n")
	g.comment("", typeDoc(t))
	g.Printf("type %s struct {\n", t.GoName)
	for _, f := range t.Fields {
		g.Printf("\t%s %s `json:\"%s,omitempty\"`\n", f.GoName, fieldType(f), wireTag(f))
		if f.HasExt() {
			g.Printf("\t%sExt %s `json:\"_%s,omitempty\"`\n", f.GoName, extType(f), wireTag(f))
		}
	}
	g.Printf("}\n")

	g.Printf("\nfunc (v *%s) UnmarshalJSON(data []byte) error {\n", t.GoName)
	g.Printf("\td, err := newObjectDecoder(data)\n")
	g.Printf("\tif err != nil {\n\t\treturn err\n\t}\n")
	if t.IsResource() {
		g.Printf("\tcheckResourceType(d, %q)\n", t.Name)
	}
	g.Printf("\tvar out %s\n", t.GoName)
	for _, f := range t.Fields {
		g.decodeField(f)
	}
	g.Printf("\treturn commit(d, v, out)\n}\n")

	g.Printf("\nfunc (v %s) MarshalJSON() ([]byte, error) {\n", t.GoName)
	if t.IsResource() {
		g.Printf("\te := newResourceEncoder(%q)\n", t.Name)
	} else {
		g.Printf("\te := newObjectEncoder()\n")
	}
	for _, f := range t.Fields {
		g.encodeField(f)
	}
	g.Printf("\treturn e.bytes()\n}\n")

	if t.IsResource() {
		g.Printf("\n// ResourceType returns %q.\n", t.Name)
		g.Printf("func (v *%s) ResourceType() string {\n\treturn %q\n}\n", t.GoName, t.Name)
		g.Printf("\n// ResourceID returns the logical id, or \"\" when unset.\n")
		g.Printf("func (v *%s) ResourceID() string {\n\treturn deref(v.ID)\n}\n", t.GoName)
	}
}

func (g *generator) decodeField(f *Field) {
	switch f.Kind {
	case FieldChoice:
		if f.HasExt() {
			g.Printf("\tout.%s, out.%sExt = decode%s(d, %q)\n", f.GoName, f.GoName, f.Choice.Name, f.Wire)
		} else {
			g.Printf("\tout.%s = decode%s(d, %q)\n", f.GoName, f.Choice.Name, f.Wire)
		}
		return
	case FieldResource:
		if f.List {
			g.Printf("\tresourceList(d, %q, &out.%s)\n", f.Wire, f.GoName)
		} else {
			g.Printf("\tresource(d, %q, &out.%s)\n", f.Wire, f.GoName)
		}
		return
	}
	fn := "field"
	if f.List {
		fn = "list"
	}
	g.Printf("\t%s(d, %q, &out.%s)\n", fn, f.Wire, f.GoName)
	if f.HasExt() {
		g.Printf("\t%s(d, %q, &out.%sExt)\n", fn, "_"+f.Wire, f.GoName)
	}
}

func (g *generator) encodeField(f *Field) {
	switch f.Kind {
	case FieldChoice:
		if f.HasExt() {
			g.Printf("\tencode%s(e, %q, v.%s, v.%sExt)\n", f.Choice.Name, f.Wire, f.GoName, f.GoName)
		} else {
			g.Printf("\tencode%s(e, %q, v.%s)\n", f.Choice.Name, f.Wire, f.GoName)
		}
		return
	case FieldResource:
		if f.List {
			g.Printf("\tencodeResources(e, %q, v.%s)\n", f.Wire, f.GoName)
		} else {
			g.Printf("\tencodeResource(e, %q, v.%s)\n", f.Wire, f.GoName)
		}
		return
	}
	fn := "encodePtr"
	if f.List {
		fn = "encodeList"
	}
	g.Printf("\t%s(e, %q, v.%s)\n", fn, f.Wire, f.GoName)
	if f.HasExt() {
		g.Printf("\t%s(e, %q, v.%sExt)\n", fn, "_"+f.Wire, f.GoName)
	}
}

// ---------------------------------------------------------------------------
// Choices
// ---------------------------------------------------------------------------

func altGoType(a Alt) string {
	if a.Primitive {
		return a.GoType
	}
	return "*" + a.GoType
}

func choiceDoc(c *Choice, open bool) string {
	if open {
		return "DataType is the FHIR open type: the value of Extension.value[x] and " +
			"of every other [x] element that admits any datatype."
	}
	alts := make([]string, len(c.Alts))
	for i, a := range c.Alts {
		alts[i] = altGoType(a)
	}
	list := alts[0]
	if n := len(alts); n > 1 {
		list = strings.Join(alts[:n-1], ", ") + " or " + alts[n-1]
	}
	return fmt.Sprintf("%s is the %s.%s[x] choice: %s.", c.Name, wirePath(c.Owner.Name), c.Wire, list)
}

func (g *generator) choiceDecl(c *Choice, open bool) {
	marker := "is" + c.Name
	g.Printf("\n")
	g.comment("", choiceDoc(c, open))
	g.Printf("type %s interface {\n\t%s()\n}\n\n", c.Name, marker)
	for _, a := range c.Alts {
		recv := "*" + a.GoType
		if a.Primitive {
			recv = a.GoType
		}
		header := fmt.Sprintf("func (%s) %s()", recv, marker)
		if len(header) < oneLineFuncMax {
			g.Printf("%s {}\n", header)
		} else {
			g.Printf("%s {\n}\n", header)
		}
	}

	suffixes := make([]string, len(c.Alts))
	for i, a := range c.Alts {
		suffixes[i] = strconv.Quote(a.Suffix)
	}
	var prims []string
	for _, s := range c.PrimitiveSuffixes() {
		prims = append(prims, strconv.Quote(s))
	}
	suffixArgs := strings.Join(suffixes, ", ")
	primArgs := strings.Join(prims, ", ")
	if open {
		g.Printf("\nvar dataTypeSuffixes = []string{\n")
		for _, s := range suffixes {
			g.Printf("\t%s,\n", s)
		}
		g.Printf("}\n\nvar dataTypePrimitives = []string{\n")
		for _, s := range prims {
			g.Printf("\t%s,\n", s)
		}
		g.Printf("}\n")
		suffixArgs, primArgs = "dataTypeSuffixes...", "dataTypePrimitives..."
	}

	ext := c.HasPrimitive()
	ret, zero := c.Name, "nil"
	if ext {
		ret, zero = "("+c.Name+", *ChoiceElement)", "nil, ext"
	}
	g.Printf("\nfunc decode%s(d *objectDecoder, prefix string) %s {\n", c.Name, ret)
	if ext {
		g.Printf("\text := choiceExt(d, prefix, %s)\n", primArgs)
	}
	g.Printf("\tswitch choice(d, prefix, %s) {\n", suffixArgs)
	for _, a := range c.Alts {
		val := "v"
		if a.Primitive {
			val = "*v"
		}
		if ext {
			val += ", ext"
		}
		g.Printf("\tcase %q:\n", a.Suffix)
		g.Printf("\t\tvar v *%s\n", a.GoType)
		g.Printf("\t\tif field(d, prefix+%q, &v) && v != nil {\n", a.Suffix)
		g.Printf("\t\t\treturn %s\n\t\t}\n", val)
	}
	g.Printf("\t}\n\treturn %s\n}\n", zero)

	if ext {
		g.Printf("\nfunc encode%s(e *objectEncoder, prefix string, value %s, ext *ChoiceElement) {\n", c.Name, c.Name)
		g.Printf("\tsuffix := \"\"\n")
	} else {
		g.Printf("\nfunc encode%s(e *objectEncoder, prefix string, value %s) {\n", c.Name, c.Name)
	}
	g.Printf("\tswitch v := value.(type) {\n")
	for _, a := range c.Alts {
		fn := "encodePtr"
		if a.Primitive {
			fn = "encodeValue"
		}
		g.Printf("\tcase %s:\n", altGoType(a))
		if ext {
			g.Printf("\t\tsuffix = %q\n", a.Suffix)
			g.Printf("\t\t%s(e, prefix+suffix, v)\n", fn)
		} else {
			g.Printf("\t\t%s(e, prefix+%q, v)\n", fn, a.Suffix)
		}
	}
	g.Printf("\t}\n")
	if ext {
		g.Printf("\tencodeChoiceExt(e, prefix, suffix, ext)\n")
	}
	g.Printf("}\n")
}

// ---------------------------------------------------------------------------
// Value sets
// ---------------------------------------------------------------------------

func valueSetDoc(vs *ValueSet) string {
	codes := make([]string, len(vs.Codes))
	for i, c := range vs.Codes {
		codes[i] = c.Value
	}
	if list := strings.Join(codes, " | "); len(list) <= 60 {
		return fmt.Sprintf("%s enumerates the FHIR codes %s.", vs.Name, list)
	}
	return fmt.Sprintf("%s enumerates %d FHIR codes.", vs.Name, len(codes))
}

func (g *generator) valueSets(sets []*ValueSet) {
	for _, vs := range sets {
		g.Printf("\n")
		g.comment("", valueSetDoc(vs))
		g.Printf("type %s string\n\nconst (\n", vs.Name)
		for _, c := range vs.Codes {
			g.Printf("\t%s %s = %s\n", c.Const, vs.Name, strconv.Quote(c.Value))
		}
		g.Printf(")\n")

		g.Printf("\n// Valid reports whether c is one of the declared codes.\n")
		g.Printf("func (c %s) Valid() bool {\n\tswitch c {\n", vs.Name)
		for i, c := range vs.Codes {
			switch {
			case len(vs.Codes) == 1:
				g.Printf("\tcase %s:\n", c.Const)
			case i == 0:
				g.Printf("\tcase %s,\n", c.Const)
			case i == len(vs.Codes)-1:
				g.Printf("\t\t%s:\n", c.Const)
			default:
				g.Printf("\t\t%s,\n", c.Const)
			}
		}
		g.Printf("\t\treturn true\n\t}\n\treturn false\n}\n")

		g.Printf("\nfunc (c *%s) UnmarshalJSON(data []byte) error {\n", vs.Name)
		g.Printf("\treturn unmarshalCode(data, c)\n}\n")
	}
}

// ---------------------------------------------------------------------------
// Registry
// ---------------------------------------------------------------------------

func sortedTypes(types []*Type) []*Type {
	out := append([]*Type(nil), types...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (g *generator) registry(types []*Type) {
	sorted := sortedTypes(types)

	g.Printf("\n// New returns a pointer to a zero value of the type with the given FHIR\n")
	g.Printf("// name, e.g. \"Patient\" or \"Claim_Diagnosis\".\n")
	g.Printf("func New(name string) (any, bool) {\n\tswitch name {\n")
	for _, t := range sorted {
		g.Printf("\tcase %q:\n\t\treturn new(%s), true\n", t.Name, t.GoName)
	}
	g.Printf("\t}\n\treturn nil, false\n}\n")

	g.Printf("\nfunc newResource(resourceType string) Resource {\n\tswitch resourceType {\n")
	for _, t := range sorted {
		if t.IsResource() {
			g.Printf("\tcase %q:\n\t\treturn new(%s)\n", t.Name, t.GoName)
		}
	}
	g.Printf("\t}\n\treturn nil\n}\n")

	g.Printf("\n// TypeNames returns the FHIR names of all generated types, sorted.\n")
	g.Printf("func TypeNames() []string {\n\treturn []string{\n")
	for _, t := range sorted {
		g.Printf("\t\t%q,\n", t.Name)
	}
	g.Printf("\t}\n}\n")

	g.Printf("\n// ResourceTypes returns the names of all resource types, sorted.\n")
	g.Printf("func ResourceTypes() []string {\n\treturn []string{\n")
	for _, t := range sorted {
		if t.IsResource() {
			g.Printf("\t\t%q,\n", t.Name)
		}
	}
	g.Printf("\t}\n}\n")
}

// ---------------------------------------------------------------------------
// Generated tests
// ---------------------------------------------------------------------------

func (g *generator) valueSetsTest(sets []*ValueSet) {
	g.Printf("\nimport \"testing\"\n")
	g.Printf("\nfunc TestValueSetCodes(t *testing.T) {\n")
	for _, vs := range sets {
		g.Printf("\tcheckCodes(t, %q, []%s{\n", vs.Name, vs.Name)
		for _, c := range vs.Codes {
			g.Printf("\t\t%s,\n", c.Const)
		}
		g.Printf("\t})\n")
	}
	g.Printf("}\n")
}

func (g *generator) typesTest(types []*Type) {
	g.Printf("\nimport \"testing\"\n")
	g.Printf("\nfunc TestGeneratedTypes(t *testing.T) {\n")
	for _, t := range sortedTypes(types) {
		g.Printf("\tcheckType[%s](t, %q)\n", t.GoName, t.Name)
	}
	g.Printf("}\n")
}
