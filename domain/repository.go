package domain

import (
	"context"

	"github.com/openclaw/clawdeploy/domain/model"
)

// RunRepository stores and retrieves deployment Run records.
type RunRepository interface {
	Create(ctx context.Context, r *model.Run) error
	Get(ctx context.Context, id string) (*model.Run, error)
	List(ctx context.Context) ([]*model.Run, error)
	Update(ctx context.Context, r *model.Run) error
}
