// Command fhirgen regenerates package fhirmodels from the FHIR schema table.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ehr/fhirmodels/internal/config"
	"github.com/ehr/fhirmodels/internal/fhirgen"
	"github.com/ehr/fhirmodels/internal/platform/logging"
)

// errStale is returned by check when the generated code is out of date.
var errStale = errors.New("generated code is out of date; run fhirgen generate")

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if err := newRootCmd(&logger, os.Stderr).Execute(); err != nil {
		logger.Error().Err(err).Msg("fhirgen failed")
		os.Exit(1)
	}
}

func newRootCmd(logger *zerolog.Logger, logOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fhirgen",
		Short:         "Generate the FHIR R4 Go model from the schema table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			l, err := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			*logger = l
			return nil
		},
	}
	rootCmd.PersistentFlags().String("schema", "", "Directory holding the schema *.yaml files (default: built-in schema)")
	rootCmd.PersistentFlags().String("out", "pkg/fhirmodels", "Directory of the generated package")

	rootCmd.AddCommand(generateCmd(logger))
	rootCmd.AddCommand(checkCmd(logger))
	return rootCmd
}

func schemaFS(cmd *cobra.Command) fs.FS {
	dir, _ := cmd.Flags().GetString("schema")
	if dir == "" {
		return fhirgen.Schema()
	}
	return os.DirFS(dir)
}

// render loads the schema table and renders every generated file.
func render(cmd *cobra.Command, logger *zerolog.Logger) (map[string][]byte, error) {
	model, err := fhirgen.Load(schemaFS(cmd))
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Int("types", len(model.Types)).
		Int("valueSets", len(model.ValueSets)).
		Int("choices", len(model.Choices)).
		Msg("schema loaded")

	files, err := fhirgen.Render(model)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return files, nil
}

func generateCmd(logger *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated files",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			clean, _ := cmd.Flags().GetBool("clean")

			files, err := render(cmd, logger)
			if err != nil {
				return err
			}
			res, err := fhirgen.Write(out, files, clean)
			if err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			for _, name := range res.Written {
				logger.Debug().Str("file", name).Msg("written")
			}
			for _, name := range res.Removed {
				logger.Info().Str("file", name).Msg("removed stale file")
			}
			logger.Info().
				Str("out", out).
				Int("written", len(res.Written)).
				Int("unchanged", res.Unchanged).
				Int("removed", len(res.Removed)).
				Msg("generation complete")
			return nil
		},
	}
	cmd.Flags().Bool("clean", true, "Remove generated files that are no longer produced")
	return cmd
}

func checkCmd(logger *zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that the generated files are up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			files, err := render(cmd, logger)
			if err != nil {
				return err
			}
			diff, err := fhirgen.Diff(out, files)
			if err != nil {
				return fmt.Errorf("diff %s: %w", out, err)
			}
			for _, name := range diff {
				logger.Warn().Str("file", name).Msg("out of date")
			}
			if len(diff) > 0 {
				return errStale
			}
			logger.Info().Str("out", out).Int("files", len(files)).Msg("generated code is up to date")
			return nil
		},
	}
}
