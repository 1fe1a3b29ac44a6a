package fhirgen

import (
	"embed"
	"io/fs"
)

//go:embed schema/*.yaml
var schemaFiles embed.FS

// Schema returns the built-in FHIR R4 schema table.
func Schema() fs.FS {
	sub, err := fs.Sub(schemaFiles, "schema")
	if err != nil {
		panic(err)
	}
	return sub
}
