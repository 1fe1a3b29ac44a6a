package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/ehr/fhirmodels/internal/platform/blobstore"
	"github.com/ehr/fhirmodels/internal/platform/fhir"
	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

var errUnstable = errors.New("canonical form is not stable across a second round trip")

func (a *app) read(cmd *cobra.Command, location string) ([]byte, error) {
	return blobstore.ReadAll(cmd.Context(), a.source, location, a.cfg.MaxDocumentBytes)
}

// writeJSON prints v as FHIR JSON, indented with --pretty.
func (a *app) writeJSON(cmd *cobra.Command, v any) error {
	data, err := fhirmodels.Marshal(v)
	if err != nil {
		return err
	}
	if pretty, _ := cmd.Flags().GetBool("pretty"); pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = a.out.Write(data)
	return err
}

// fail prints the OperationOutcome for err and returns errInvalid.
func (a *app) fail(cmd *cobra.Command, err error) error {
	if werr := a.writeJSON(cmd, fhir.FromDecodeError(err)); werr != nil {
		return werr
	}
	return errInvalid
}

// decodeDocument decodes data as typeName, or as whatever resource its
// resourceType names when typeName is empty.
func decodeDocument(data []byte, typeName string) (any, error) {
	if typeName == "" {
		if err := fhirmodels.RawResource(data).Validate(); err != nil {
			return nil, err
		}
		return fhirmodels.UnmarshalResource(data)
	}
	v, ok := fhirmodels.New(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown FHIR type %q", typeName)
	}
	if err := fhirmodels.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <location>",
		Short: "Decode one document and print its canonical JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")

			data, err := a.read(cmd, args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			v, err := decodeDocument(data, typeName)
			if err != nil {
				var de *fhirmodels.DecodeError
				if !errors.As(err, &de) {
					return err
				}
				a.logger.Debug().Str("path", de.Path).Stringer("kind", de.Kind).Msg("decode failed")
				return a.fail(cmd, err)
			}
			return a.writeJSON(cmd, v)
		},
	}
	cmd.Flags().String("type", "", "FHIR type name, e.g. Patient or Bundle_Entry (default: from resourceType)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <location>",
		Short: "Decode every resource of an NDJSON stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.validate(cmd, args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			w := fhir.NewNDJSONWriter(a.out)
			for _, r := range res.Results {
				if r.Outcome == nil {
					continue
				}
				if err := w.WriteResource(r.Outcome); err != nil {
					return err
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if res.InvalidCount > 0 {
				return errInvalid
			}
			return nil
		},
	}
}

func (a *app) validate(cmd *cobra.Command, location string) (*fhir.BatchResult, error) {
	rc, err := a.source.Open(cmd.Context(), location)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	v := &fhir.BatchValidator{Workers: a.cfg.Workers, Logger: a.logger.With().Str("location", location).Logger()}
	return v.Validate(cmd.Context(), fhir.NewNDJSONReader(rc, int(a.cfg.MaxDocumentBytes)))
}

func roundtripCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <location>",
		Short: "Check that decode and encode reach a stable canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, _ := cmd.Flags().GetString("type")
			strict, _ := cmd.Flags().GetBool("strict")

			data, err := a.read(cmd, args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			first, err := decodeDocument(data, typeName)
			if err != nil {
				return a.fail(cmd, err)
			}
			canonical, err := fhirmodels.Marshal(first)
			if err != nil {
				return err
			}
			second, err := decodeDocument(canonical, typeName)
			if err != nil {
				return fmt.Errorf("decoding canonical form: %w", err)
			}
			again, err := fhirmodels.Marshal(second)
			if err != nil {
				return err
			}
			if !bytes.Equal(canonical, again) {
				return errUnstable
			}

			lossless := jsonEqual(data, canonical)
			a.logger.Info().Str("location", args[0]).Bool("lossless", lossless).Msg("round trip stable")
			if !lossless {
				a.logger.Warn().Msg("canonical form differs from the input; unknown members or null list entries were dropped")
				if strict {
					if err := a.writeJSON(cmd, fhir.WarningOutcome("canonical form differs from the input")); err != nil {
						return err
					}
					return errInvalid
				}
			}
			return a.writeJSON(cmd, first)
		},
	}
	cmd.Flags().String("type", "", "FHIR type name (default: from resourceType)")
	cmd.Flags().Bool("strict", false, "Fail when the canonical form differs from the input")
	return cmd
}

// jsonEqual compares two JSON documents ignoring member order and
// whitespace. Numbers compare by their literal text.
func jsonEqual(a, b []byte) bool {
	va, err := decodeAny(a)
	if err != nil {
		return false
	}
	vb, err := decodeAny(b)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}

func decodeAny(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	err := dec.Decode(&v)
	return v, err
}

func bundleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <location>",
		Short: "Wrap the resources of an NDJSON stream into a Bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")

			builder, err := fhir.NewBundleBuilder(fhirmodels.BundleType(typ))
			if err != nil {
				return err
			}
			res, err := a.validate(cmd, args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			if res.InvalidCount > 0 {
				if err := a.writeJSON(cmd, res.Outcome()); err != nil {
					return err
				}
				return errInvalid
			}
			for _, r := range res.Results {
				builder.Add(r.Resource)
			}
			a.logger.Info().Str("type", typ).Int("entries", builder.Len()).Msg("bundle built")
			return a.writeJSON(cmd, builder.Build())
		},
	}
	cmd.Flags().String("type", string(fhirmodels.BundleTypeCollection), "Bundle type: collection, transaction or batch")
	return cmd
}

func typesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the known FHIR type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, _ := cmd.Flags().GetBool("resources")
			names := fhirmodels.TypeNames()
			if resources {
				names = fhirmodels.ResourceTypes()
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(a.out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("resources", false, "List resource types only")
	return cmd
}
