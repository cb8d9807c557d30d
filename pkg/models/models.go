package models

import (
	"time"
)

// Design status values
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Design represents a persisted horn synthesis request (for internal use)
type Design struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Mode        ProfileMode     `json:"mode"`
	Params      SynthesisParams `json:"params"`
	Metadata    ProfileMetadata `json:"metadata"`
	ProfileKey  *string         `json:"profile_key,omitempty"`
	Status      string          `json:"status"`
	Progress    int             `json:"progress"`
	ErrorMsg    *string         `json:"error_message,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// SimulationResults represents the stored outcome of simulating a design
type SimulationResults struct {
	ID         string         `json:"id"`
	DesignID   string         `json:"design_id"`
	Simulation Simulation     `json:"simulation"`
	Fractal    FractalMetrics `json:"fractal"`
	Score      AcousticScore  `json:"score"`
	Warnings   []string       `json:"warnings,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Comparison is a persisted ranking of several designs
type Comparison struct {
	ID        string       `json:"id"`
	DesignIDs []string     `json:"design_ids"`
	Result    RankedResult `json:"result"`
	CreatedAt time.Time    `json:"created_at"`
}
