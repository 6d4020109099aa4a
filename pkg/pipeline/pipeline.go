// Package pipeline executes all registered pipes in sequence.
//
// The pipeline runs pipes in stages:
//   - Validation stage: runs all validation pipes to check configuration
//   - Execution stage: resolves content types, hashes and publishes files
//
// Usage:
//
//	ctx := context.NewContext(context.Background(), cfg, logger)
//	ctx.Files = files
//	if err := pipeline.RunAll(ctx); err != nil {
//	    // Handle error
//	}
package pipeline

import (
	"errors"
	"fmt"
	"time"

	"github.com/mimeset/mimeset/pkg/context"
	"github.com/mimeset/mimeset/pkg/logging"
	"github.com/mimeset/mimeset/pkg/pipe"
	"github.com/sirupsen/logrus"
)

// RunValidation executes only the validation pipes.
// Used by the check command.
func RunValidation(ctx *context.Context) error {
	return runPipes(ctx, pipe.ValidationPipes)
}

// RunExecution executes only the execution pipes.
// Should be called after RunValidation succeeds.
func RunExecution(ctx *context.Context) error {
	return runPipes(ctx, pipe.ExecutionPipes)
}

// RunAll executes validation pipes first, then execution pipes.
// Used by the upload command.
func RunAll(ctx *context.Context) error {
	if err := RunValidation(ctx); err != nil {
		return err
	}
	return RunExecution(ctx)
}

// RunResolve validates the content type rules and assigns content types
// without publishing anything. Used by the resolve command.
func RunResolve(ctx *context.Context) error {
	return runPipes(ctx, pipe.ResolvePipes)
}

// runPipes executes a slice of pipes in sequence.
func runPipes(ctx *context.Context, pipes []Piper) error {
	for _, p := range pipes {
		if err := ctx.Err(); err != nil {
			return err
		}

		ctx.Logger.WithField(logging.ActionKey, p.String()).Info()
		start := time.Now()

		if err := p.Run(ctx); err != nil {
			if isSkip(err) {
				ctx.Logger.Infof("skipped: %v", err)
				continue
			}
			return fmt.Errorf("%s: %w", p.String(), err)
		}

		ctx.Logger.WithFields(logrus.Fields{
			"took": time.Since(start).Round(time.Millisecond),
		}).Debugf("completed: %s", p.String())
	}
	return nil
}

func isSkip(err error) bool {
	var s pipe.IsSkip
	return errors.As(err, &s) && s.IsSkip()
}

// Piper is re-exported for convenience within the pipeline package.
type Piper = pipe.Piper
