package schedule

import "fmt"

// Error codes surfaced to HTTP clients. The handler layer maps these
// onto status codes and response bodies.
const (
	CodeInvalidBody         = "invalid_body"
	CodeMappingConflict     = "agent_mapping_conflict"
	CodeDuplicateShiftID    = "duplicate_shift_id"
	CodeDuplicateOverrideID = "duplicate_override_id"
)

// FieldError locates one malformed field on one record.
type FieldError struct {
	Where string `json:"where"`
	ID    string `json:"id,omitempty"`
	Field string `json:"field"`
}

// ValidationErrors carries every shape error found in a submission.
// Shape checks never short-circuit so a caller can fix all problems in
// one round-trip.
type ValidationErrors struct {
	Details []FieldError
}

func (e *ValidationErrors) Error() string {
	return fmt.Sprintf("%s: %d invalid field(s)", CodeInvalidBody, len(e.Details))
}

// MappingConflict describes the record that violated the name/id
// consistency invariant.
type MappingConflict struct {
	Where   string `json:"where"`
	ID      string `json:"id,omitempty"`
	Person  string `json:"person"`
	AgentID string `json:"agentId"`
}

// MappingConflictError is returned when one submission maps a name to
// two ids or an id to two names. Detection is fail-fast: once a
// conflict exists, which pairing is "correct" cannot be resolved
// automatically.
type MappingConflictError struct {
	Conflict MappingConflict
}

func (e *MappingConflictError) Error() string {
	return fmt.Sprintf("%s: %q vs agent %q in %s", CodeMappingConflict,
		e.Conflict.Person, e.Conflict.AgentID, e.Conflict.Where)
}

// DuplicateIDError reports the first duplicate record id found.
// Code is CodeDuplicateShiftID or CodeDuplicateOverrideID.
type DuplicateIDError struct {
	Code string
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.ID)
}
