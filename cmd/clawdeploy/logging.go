package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/openclaw/clawdeploy/internal/logging"
)

// withCmdRunLogger implements the Span pattern for CLI command logging.
// It emits a start log line and returns a context with logger attributes
// attached, plus a cleanup function to emit the success or failure log line.
//
// Usage:
//
//	ctx, cleanup := withCmdRunLogger(ctx, "deploy", name)
//	defer func() { cleanup(err) }()
//
// Log message format:
// - Start:   CMD:<operation>/S
// - Success: CMD:<operation>/EOK (elapsed in logger attributes)
// - Failure: CMD:<operation>/EFAIL (err, elapsed in logger attributes)
func withCmdRunLogger(ctx context.Context, operation, resourceID string) (context.Context, func(err error)) {
	startAt := time.Now()
	runID := uuid.NewString()
	logger := logging.FromContext(ctx).With("runId", runID, "resourceId", resourceID)
	ctx = logging.WithLogger(ctx, logger)

	logger.Info(ctx, "CMD:"+operation+"/S")
	cleanup := func(err error) {
		elapsed := time.Since(startAt)
		if err != nil {
			logger.Info(ctx, "CMD:"+operation+"/EFAIL", "err", err.Error(), "elapsed", elapsed.String())
			return
		}
		logger.Info(ctx, "CMD:"+operation+"/EOK", "elapsed", elapsed.String())
	}
	return ctx, cleanup
}
