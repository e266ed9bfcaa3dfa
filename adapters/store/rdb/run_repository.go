package rdb

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openclaw/clawdeploy/domain"
	"github.com/openclaw/clawdeploy/domain/model"
)

type RunRepository struct{ db *gorm.DB }

func NewRunRepository(db *gorm.DB) *RunRepository { return &RunRepository{db: db} }

func runToRecord(r *model.Run) *RunRecord {
	return &RunRecord{
		ID:             r.ID,
		DeploymentName: r.DeploymentName,
		Location:       r.Location,
		ModelName:      r.ModelName,
		ResourceGroup:  r.ResourceGroup,
		ClusterName:    r.ClusterName,
		ProxyURL:       r.ProxyURL,
		Status:         r.Status,
		Error:          r.Error,
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
	}
}

func runToModel(rec *RunRecord) *model.Run {
	return &model.Run{
		ID:             rec.ID,
		DeploymentName: rec.DeploymentName,
		Location:       rec.Location,
		ModelName:      rec.ModelName,
		ResourceGroup:  rec.ResourceGroup,
		ClusterName:    rec.ClusterName,
		ProxyURL:       rec.ProxyURL,
		Status:         rec.Status,
		Error:          rec.Error,
		StartedAt:      rec.StartedAt,
		FinishedAt:     rec.FinishedAt,
	}
}

func (r *RunRepository) Create(ctx context.Context, run *model.Run) error {
	rec := runToRecord(run)
	if rec.ID == "" {
		rec.ID = "run-" + uuid.NewString()
		run.ID = rec.ID
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RunRepository) Get(ctx context.Context, id string) (*model.Run, error) {
	var rec RunRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrRunNotFound
		}
		return nil, err
	}
	return runToModel(&rec), nil
}

func (r *RunRepository) List(ctx context.Context) ([]*model.Run, error) {
	var recs []RunRecord
	if err := r.db.WithContext(ctx).Order("started_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.Run, 0, len(recs))
	for i := range recs {
		out = append(out, runToModel(&recs[i]))
	}
	return out, nil
}

func (r *RunRepository) Update(ctx context.Context, run *model.Run) error {
	rec := runToRecord(run)
	res := r.db.WithContext(ctx).Model(&RunRecord{}).Where("id = ?", rec.ID).Updates(rec)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrRunNotFound
	}
	return nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
