package rdb

import "time"

// RunRecord is the RDB persistence model for domain Run.
// Table name: runs
type RunRecord struct {
	ID             string    `gorm:"primaryKey;type:text;not null"`
	DeploymentName string    `gorm:"type:text;not null"`
	Location       string    `gorm:"type:text;not null"`
	ModelName      string    `gorm:"type:text;not null"`
	ResourceGroup  string    `gorm:"type:text"`
	ClusterName    string    `gorm:"type:text"`
	ProxyURL       string    `gorm:"type:text"`
	Status         string    `gorm:"type:text;not null"`
	Error          string    `gorm:"type:text"`
	StartedAt      time.Time `gorm:"not null"`
	FinishedAt     time.Time
}

func (RunRecord) TableName() string { return "runs" }
