package domain

import "time"

// MaxBatchSize caps a single batch call. Oversize batches are rejected before
// any item is processed.
const MaxBatchSize = 100

// BookingRequest is one line of a booking order: equipment, period, quantity
// and the client/project context it belongs to.
type BookingRequest struct {
	EquipmentID int32     `json:"equipment_id"`
	ClientID    int32     `json:"client_id"`
	ProjectID   *int32    `json:"project_id,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Quantity    int32     `json:"quantity"`
}

type BatchOutcome string

const (
	BatchOutcomeCreated  BatchOutcome = "CREATED"
	BatchOutcomeMerged   BatchOutcome = "MERGED"
	BatchOutcomeRejected BatchOutcome = "REJECTED"
)

// BatchItemResult reports what happened to a single request, identified by
// its zero-based position in the submitted batch.
type BatchItemResult struct {
	Index     int          `json:"index"`
	Outcome   BatchOutcome `json:"outcome"`
	Booking   *Booking     `json:"booking,omitempty"`
	Reason    string       `json:"reason,omitempty"`
	Conflicts []BookingConflict `json:"conflicts,omitempty"`
}

// BatchResult is the per-item report of a batch call. Validation and conflict
// rejections land in Failed without touching sibling items; an infrastructure
// fault rolls the whole batch back and sets RolledBack.
type BatchResult struct {
	BatchID    string            `json:"batch_id"`
	Total      int               `json:"total"`
	Succeeded  []BatchItemResult `json:"succeeded"`
	Failed     []BatchItemResult `json:"failed"`
	RolledBack bool              `json:"rolled_back"`
}
