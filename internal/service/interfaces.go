package service

import "team-schedule-backend/internal/schedule"

// ScheduleServiceInterface defines the schedule document operations
// exposed to the HTTP layer.
type ScheduleServiceInterface interface {
	// GetDocument returns the stored document, creating and persisting
	// the empty skeleton on first read so reads are never "not found".
	GetDocument() (*schedule.Document, error)

	// SaveDocument validates the patch against the stored document and
	// replaces it wholesale, returning the new updatedAt token. A stale
	// updatedAt on a patch touching schedule data is a conflict unless
	// force is set.
	SaveDocument(patch schedule.DocumentPatch, force bool) (string, error)

	// UpsertAgents merges agents by id into the stored roster without
	// touching schedule arrays, generating ids for new agents.
	UpsertAgents(req *AgentsUpdateRequest) (string, error)

	// ApplyShiftBatch applies deletes then upserts to the stored shifts,
	// normalizing only the upserted shifts.
	ApplyShiftBatch(req *ShiftBatchRequest) (string, error)
}
