package ports

import (
	"context"

	"gophi/domain/core"
	"gophi/domain/phi"
)

// BigMipRecord is a persisted whole-subsystem result.
type BigMipRecord struct {
	ID        core.ResultID     `json:"id"`
	RunID     core.RunID        `json:"run_id"`
	Phi       float64           `json:"phi"`
	Payload   phi.BigMipPayload `json:"payload"`
	CreatedAt core.Timestamp    `json:"created_at"`
}

// ResultStore persists search results.
type ResultStore interface {
	SaveBigMip(ctx context.Context, record BigMipRecord) error
	GetBigMip(ctx context.Context, id core.ResultID) (*BigMipRecord, error)
	ListBigMipsByRun(ctx context.Context, runID core.RunID) ([]BigMipRecord, error)
}
