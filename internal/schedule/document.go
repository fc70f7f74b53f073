package schedule

import "time"

// Validate runs the full pipeline over an inbound patch and the
// previously persisted document, producing the complete next document
// or a typed error. The pipeline is a single pass with fail-fast
// gates: shape errors are collected exhaustively first, then the
// identity mapper, shift normalizer, and duplicate-id checks run in
// order. The optimistic-concurrency check is the caller's job; it
// happens before this function is invoked.
func Validate(patch DocumentPatch, prev *Document, now time.Time) (*Document, error) {
	if prev == nil {
		prev = NewSkeleton(now.UTC().Format(time.RFC3339))
	}

	next := &Document{
		SchemaVersion: 2,
		Agents:        selectAgents(patch.Agents, prev.Agents),
		Shifts:        selectSlice(patch.Shifts),
		PTO:           selectSlice(patch.PTO),
		Overrides:     selectSlice(patch.Overrides),
		CalendarSegs:  selectSlice(patch.CalendarSegs),
	}
	if patch.SchemaVersion != nil && *patch.SchemaVersion > 2 {
		next.SchemaVersion = *patch.SchemaVersion
	}

	if errs := checkRecords(next); len(errs) > 0 {
		return nil, &ValidationErrors{Details: errs}
	}

	ids, conflict := buildIdentityMap(next)
	if conflict != nil {
		return nil, conflict
	}
	backfillAgentIDs(next, ids, prev.AgentsIndex)

	normalizeShifts(next.Shifts)

	if dup := firstDuplicateShiftID(next.Shifts); dup != "" {
		return nil, &DuplicateIDError{Code: CodeDuplicateShiftID, ID: dup}
	}
	if dup := firstDuplicateOverrideID(next.Overrides); dup != "" {
		return nil, &DuplicateIDError{Code: CodeDuplicateOverrideID, ID: dup}
	}

	next.AgentsIndex = ids.agentsIndex(next.Agents)
	next.UpdatedAt = now.UTC().Format(time.RFC3339)
	return next, nil
}

// selectAgents keeps the previous agent roster when the patch omits it;
// the schedule arrays instead fall back to empty (selectSlice). Callers
// wanting a partial update of one record kind use the narrower agent or
// shift-batch endpoints.
func selectAgents(patch *[]Agent, prev []Agent) []Agent {
	if patch != nil {
		return *patch
	}
	if prev != nil {
		return prev
	}
	return []Agent{}
}

func selectSlice[T any](patch *[]T) []T {
	if patch != nil {
		return *patch
	}
	return []T{}
}

func firstDuplicateShiftID(shifts []Shift) string {
	seen := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		if _, ok := seen[s.ID]; ok {
			return s.ID
		}
		seen[s.ID] = struct{}{}
	}
	return ""
}

func firstDuplicateOverrideID(overrides []Override) string {
	seen := make(map[string]struct{}, len(overrides))
	for _, o := range overrides {
		if _, ok := seen[o.ID]; ok {
			return o.ID
		}
		seen[o.ID] = struct{}{}
	}
	return ""
}
