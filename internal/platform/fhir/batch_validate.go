package fhir

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ehr/fhirmodels/pkg/fhirmodels"
)

// DefaultWorkers is the worker count used when a BatchValidator has none.
const DefaultWorkers = 4

// LineResult is the outcome of decoding one NDJSON line.
type LineResult struct {
	Line         int
	ResourceType string
	ResourceID   string
	// Resource is the decoded resource, nil when the line is invalid.
	Resource fhirmodels.Resource
	// Outcome describes why the line is invalid, nil when it decoded.
	Outcome *fhirmodels.OperationOutcome
}

// Valid reports whether the line decoded.
func (r *LineResult) Valid() bool {
	return r.Outcome == nil
}

// BatchResult holds the aggregated validation results of a stream.
type BatchResult struct {
	TotalCount   int
	ValidCount   int
	InvalidCount int
	// Results are in input order.
	Results []*LineResult
}

// Outcome collects the issues of every invalid line into one
// OperationOutcome, or reports success when all lines decoded.
func (b *BatchResult) Outcome() *fhirmodels.OperationOutcome {
	if b.InvalidCount == 0 {
		return SuccessOutcome("all resources decoded")
	}
	out := &fhirmodels.OperationOutcome{}
	for _, r := range b.Results {
		if r.Outcome != nil {
			out.Issue = append(out.Issue, r.Outcome.Issue...)
		}
	}
	return out
}

// BatchValidator decodes every resource of an NDJSON stream with a bounded
// number of workers. Decoding failures are reported per line; only a broken
// stream or a cancelled context stops the batch.
type BatchValidator struct {
	Workers int
	Logger  zerolog.Logger
}

// Validate reads r to the end and decodes each line.
func (v *BatchValidator) Validate(ctx context.Context, r *NDJSONReader) (*BatchResult, error) {
	workers := v.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var results []*LineResult
	for {
		if err := gctx.Err(); err != nil {
			break
		}
		line, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			g.Wait()
			return nil, err
		}
		res := &LineResult{Line: line.Number}
		results = append(results, res)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decodeLine(line, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := &BatchResult{TotalCount: len(results), Results: results}
	for _, res := range results {
		if res.Valid() {
			batch.ValidCount++
			continue
		}
		batch.InvalidCount++
		v.Logger.Debug().
			Int("line", res.Line).
			Str("resourceType", res.ResourceType).
			Msg("invalid resource")
	}
	v.Logger.Info().
		Int("total", batch.TotalCount).
		Int("valid", batch.ValidCount).
		Int("invalid", batch.InvalidCount).
		Msg("batch validated")
	return batch, nil
}

func decodeLine(line Line, res *LineResult) {
	res.ResourceType = line.Raw.ResourceType()
	res.ResourceID = line.Raw.ID()
	err := line.Raw.Validate()
	var resource fhirmodels.Resource
	if err == nil {
		resource, err = line.Raw.Decode()
	}
	if err != nil {
		res.Outcome = LineOutcome(line.Number, FromDecodeError(err))
		return
	}
	res.Resource = resource
}
