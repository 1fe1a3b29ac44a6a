package fhirgen

import (
	"fmt"
	"strings"
	"unicode"
)

var initialisms = map[string]string{
	"Api":  "API",
	"Fhir": "FHIR",
	"Html": "HTML",
	"Http": "HTTP",
	"Id":   "ID",
	"Json": "JSON",
	"Oid":  "OID",
	"Sql":  "SQL",
	"Udi":  "UDI",
	"Uri":  "URI",
	"Url":  "URL",
	"Uuid": "UUID",
	"Xml":  "XML",
}

// Codes made only of punctuation.
var symbolNames = map[string]string{
	"<":  "LessThan",
	"<=": "LessOrEqual",
	">=": "GreaterOrEqual",
	">":  "GreaterThan",
	"=":  "Equal",
	"!=": "NotEqual",
	"*":  "Wildcard",
}

// primitives maps FHIR primitive types to the Go type of a struct field and
// to the wrapper type used inside choices. xhtml never appears in a choice.
var primitives = map[string][2]string{
	"base64Binary": {"string", "Base64Binary"},
	"boolean":      {"bool", "Boolean"},
	"canonical":    {"string", "Canonical"},
	"code":         {"string", "Code"},
	"date":         {"string", "Date"},
	"dateTime":     {"string", "DateTime"},
	"decimal":      {"Decimal", "Decimal"},
	"id":           {"string", "ID"},
	"instant":      {"string", "Instant"},
	"integer":      {"int", "Integer"},
	"markdown":     {"string", "Markdown"},
	"oid":          {"string", "OID"},
	"positiveInt":  {"uint32", "PositiveInt"},
	"string":       {"string", "String"},
	"time":         {"string", "Time"},
	"unsignedInt":  {"uint32", "UnsignedInt"},
	"uri":          {"string", "URI"},
	"url":          {"string", "URL"},
	"uuid":         {"string", "UUID"},
	"xhtml":        {"string", ""},
}

// reserved are identifiers declared by the hand-written part of fhirmodels.
var reserved = []string{
	"ChoiceElement", "Decimal", "DecodeError", "ErrorKind",
	"RawResource", "Resource",
	"MalformedJSON", "TypeMismatch", "UnknownEnumValue", "MissingRequiredField",
}

// camelWords splits an identifier at lower-to-upper transitions:
// "versionId" gives [version Id], "base64Binary" gives [base64 Binary] and
// "GET" stays whole.
func camelWords(s string) []string {
	var words []string
	start := 0
	rs := []rune(s)
	for i := 1; i < len(rs); i++ {
		prev := rs[i-1]
		if unicode.IsUpper(rs[i]) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			words = append(words, string(rs[start:i]))
			start = i
		}
	}
	return append(words, string(rs[start:]))
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}

// exportName turns a FHIR member name into a Go identifier:
// "versionId" gives VersionID, "udiCarrier" gives UDICarrier.
func exportName(s string) string {
	var b strings.Builder
	for _, w := range camelWords(s) {
		w = upperFirst(w)
		if v, ok := initialisms[w]; ok {
			w = v
		}
		b.WriteString(w)
	}
	return b.String()
}

// typeName turns a FHIR schema name into a Go type name:
// "Claim_Diagnosis" gives ClaimDiagnosis.
func typeName(fhirName string) string {
	var b strings.Builder
	for _, part := range strings.Split(fhirName, "_") {
		b.WriteString(exportName(part))
	}
	return b.String()
}

// constName builds the Go constant for code of value set vs. An explicit
// override replaces the derived suffix.
func constName(vs, code, override string) (string, error) {
	if override != "" {
		return vs + override, nil
	}
	if sym, ok := symbolNames[code]; ok {
		return vs + sym, nil
	}
	parts := strings.FieldsFunc(code, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return "", fmt.Errorf("code %q of %s needs an explicit name", code, vs)
	}
	var b strings.Builder
	b.WriteString(vs)
	prevDigit := unicode.IsDigit(lastRune(vs))
	for _, p := range parts {
		if prevDigit && unicode.IsDigit([]rune(p)[0]) {
			b.WriteByte('_')
		}
		b.WriteString(exportName(p))
		prevDigit = unicode.IsDigit(lastRune(p))
	}
	return b.String(), nil
}

func lastRune(s string) rune {
	rs := []rune(s)
	if len(rs) == 0 {
		return 0
	}
	return rs[len(rs)-1]
}

// fileName is the generated file of a top-level schema:
// "ExplanationOfBenefit" gives explanation_of_benefit.go.
func fileName(goName string) string {
	var b strings.Builder
	for i, w := range camelWords(goName) {
		if i > 0 {
			b.WriteByte('_')
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String() + ".go"
}

// wirePath renders a backbone name as its FHIR path:
// "Claim_Diagnosis" gives Claim.diagnosis.
func wirePath(fhirName string) string {
	parts := strings.Split(fhirName, "_")
	for i := 1; i < len(parts); i++ {
		rs := []rune(parts[i])
		rs[0] = unicode.ToLower(rs[0])
		parts[i] = string(rs)
	}
	return strings.Join(parts, ".")
}
