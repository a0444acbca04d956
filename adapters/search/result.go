package search

import (
	"time"

	"gophi/domain/core"
	"gophi/domain/phi"
	"gophi/ports"
)

// Timing is the provenance side-record of a search result. It is written
// exactly once, by the worker that computed the result, before the
// result is shared; the container types themselves stay immutable.
type Timing struct {
	// Total is the wall time of the whole search.
	Total time.Duration `json:"total"`
	// SmallPhi is the wall time spent on the unpartitioned
	// constellation.
	SmallPhi time.Duration `json:"small_phi"`
}

// ConceptResult pairs a computed concept with its provenance.
type ConceptResult struct {
	Concept   *phi.Concept
	Elapsed   time.Duration
	CreatedAt core.Timestamp
}

// Result is a completed whole-subsystem search.
type Result struct {
	ID        core.ResultID
	RunID     core.RunID
	BigMip    *phi.BigMip
	Timing    Timing
	CreatedAt core.Timestamp
}

// Record converts the result to its persistence form.
func (r *Result) Record() ports.BigMipRecord {
	return ports.BigMipRecord{
		ID:        r.ID,
		RunID:     r.RunID,
		Phi:       r.BigMip.Phi(),
		Payload:   r.BigMip.ToPayload(),
		CreatedAt: r.CreatedAt,
	}
}
