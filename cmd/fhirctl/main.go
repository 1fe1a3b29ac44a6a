// Command fhirctl decodes, validates and repackages FHIR R4 JSON documents
// with the fhirmodels types.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/fhirmodels/internal/config"
	"github.com/ehr/fhirmodels/internal/platform/blobstore"
	"github.com/ehr/fhirmodels/internal/platform/logging"
)

// errInvalid is returned after an OperationOutcome describing the failure
// has been printed.
var errInvalid = errors.New("invalid input")

// app carries what every subcommand needs. Fields left nil are filled from
// the environment before a subcommand runs.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	source blobstore.Source
	stdin  io.Reader
	out    io.Writer
	logOut io.Writer
}

func main() {
	a := &app{stdin: os.Stdin, out: os.Stdout, logOut: os.Stderr}
	a.logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := newRootCmd(a).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			a.logger.Error().Err(err).Msg("fhirctl failed")
		}
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fhirctl",
		Short:         "Inspect FHIR R4 JSON documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")

	rootCmd.AddCommand(decodeCmd(a))
	rootCmd.AddCommand(validateCmd(a))
	rootCmd.AddCommand(roundtripCmd(a))
	rootCmd.AddCommand(bundleCmd(a))
	rootCmd.AddCommand(typesCmd(a))
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logger, err := logging.New(a.logOut, cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger = logger
	}
	if a.source == nil {
		router := blobstore.NewRouter(blobstore.FileSource{Stdin: a.stdin})
		if a.cfg.HasObjectStore() {
			objects, err := blobstore.NewObjectSource(a.cfg.ObjectStore())
			if err != nil {
				return err
			}
			router.Handle(blobstore.ObjectScheme, objects)
			a.logger.Debug().Str("endpoint", a.cfg.S3Endpoint).Msg("object store enabled")
		}
		a.source = router
	}
	if a.out == nil {
		a.out = cmd.OutOrStdout()
	}
	return nil
}
