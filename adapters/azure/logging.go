package azure

import (
	"context"
	"time"

	"github.com/openclaw/clawdeploy/internal/logging"
)

// withOpLogger emits a start line and returns a context with resource
// attributes attached, plus a cleanup to emit the end line.
//
// Usage:
//
//	ctx, cleanup := c.withOpLogger(ctx, "EnsureCluster", name)
//	defer func() { cleanup(err) }()
func (c *Client) withOpLogger(ctx context.Context, op, resource string) (context.Context, func(err error)) {
	startAt := time.Now()

	logger := logging.FromContext(ctx).With("op", "Azure."+op, "resource", resource)
	ctx = logging.WithLogger(ctx, logger)
	logger.Info(ctx, "Azure:"+op+":START")

	cleanup := func(err error) {
		elapsed := time.Since(startAt).Seconds()
		if err == nil {
			logger.Info(ctx, "Azure:"+op+":END:OK", "elapsed", elapsed)
		} else {
			logger.Warn(ctx, "Azure:"+op+":END:FAILED", "err", err.Error(), "elapsed", elapsed)
		}
	}
	return ctx, cleanup
}
