package model

import "time"

// Run status values.
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// Run records one invocation of the deploy pipeline for operator reference.
type Run struct {
	ID             string
	DeploymentName string
	Location       string
	ModelName      string
	ResourceGroup  string
	ClusterName    string
	ProxyURL       string
	Status         string
	Error          string
	StartedAt      time.Time
	FinishedAt     time.Time
}
