package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"team-schedule-backend/internal/cache"
	apperrors "team-schedule-backend/internal/errors"
	"team-schedule-backend/internal/notify"
	"team-schedule-backend/internal/repository"
	"team-schedule-backend/internal/schedule"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ScheduleService provides schedule-document business logic: it owns
// the read-validate-write cycle around the pure validation engine.
type ScheduleService struct {
	repo      repository.ScheduleRepositoryInterface
	mirror    cache.DocumentCacheInterface // optional
	notifier  notify.BroadcasterInterface  // optional
	validator *validator.Validate
	docKey    string
	now       func() time.Time
}

// Ensure ScheduleService implements ScheduleServiceInterface
var _ ScheduleServiceInterface = (*ScheduleService)(nil)

// NewScheduleService creates a new ScheduleService. mirror and notifier
// may be nil; both are best-effort collaborators.
func NewScheduleService(repo repository.ScheduleRepositoryInterface, mirror cache.DocumentCacheInterface, notifier notify.BroadcasterInterface, validator *validator.Validate, docKey string) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		mirror:    mirror,
		notifier:  notifier,
		validator: validator,
		docKey:    docKey,
		now:       time.Now,
	}
}

// AgentInput is one agent in an agents-only update. An empty id means
// "create": a fresh uuid is assigned. At least one name half is
// required so the agent can be indexed.
type AgentInput struct {
	ID            string `json:"id" validate:"omitempty"`
	FirstName     string `json:"firstName" validate:"required_without=LastName"`
	LastName      string `json:"lastName" validate:"required_without=FirstName"`
	TZID          string `json:"tzId"`
	Hidden        bool   `json:"hidden"`
	IsSupervisor  bool   `json:"isSupervisor"`
	SupervisorID  string `json:"supervisorId"`
	MeetingCohort string `json:"meetingCohort"`
	Notes         string `json:"notes"`
}

// AgentsUpdateRequest is the body of the agents-only write endpoint.
type AgentsUpdateRequest struct {
	Agents []AgentInput `json:"agents" validate:"required,dive"`
}

// ShiftBatchRequest is the body of the shift-batch write endpoint.
// Deletes are applied before upserts.
type ShiftBatchRequest struct {
	Upserts []schedule.Shift `json:"upserts"`
	Deletes []string         `json:"deletes"`
}

// GetDocument retrieves the current document, preferring the mirror and
// falling back to the database. The first read persists an empty
// skeleton so the caller always gets a document.
func (s *ScheduleService) GetDocument() (*schedule.Document, error) {
	if s.mirror != nil {
		ctx, cancel := s.mirrorContext()
		raw, err := s.mirror.Get(ctx, s.docKey)
		cancel()
		if err != nil {
			logrus.WithError(err).Warn("schedule mirror read failed, falling back to database")
		} else if raw != nil {
			var doc schedule.Document
			if err := json.Unmarshal(raw, &doc); err == nil {
				return &doc, nil
			}
			logrus.Warn("mirrored schedule document is malformed, falling back to database")
		}
	}

	doc, err := s.loadStored()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}

	// First read: persist the skeleton so subsequent writes have a
	// previous document to validate against.
	skeleton := schedule.NewSkeleton(s.now().UTC().Format(time.RFC3339))
	if err := s.persist(skeleton); err != nil {
		return nil, err
	}
	return skeleton, nil
}

// SaveDocument runs the optimistic-concurrency gate and the validation
// pipeline, then replaces the stored document.
func (s *ScheduleService) SaveDocument(patch schedule.DocumentPatch, force bool) (string, error) {
	prev, err := s.loadStored()
	if err != nil {
		return "", &apperrors.WriteError{Err: err}
	}

	if !force && prev != nil && staleWrite(patch, prev) {
		return "", &apperrors.ConflictError{PrevUpdatedAt: prev.UpdatedAt}
	}

	next, err := schedule.Validate(patch, prev, s.now())
	if err != nil {
		return "", err
	}

	if err := s.persist(next); err != nil {
		return "", &apperrors.WriteError{Err: err}
	}
	s.announce(next.UpdatedAt)
	return next.UpdatedAt, nil
}

// UpsertAgents merges the submitted agents into the stored roster by
// id. Schedule arrays are untouched, so this path bypasses the
// concurrency gate: agent edits cannot race schedule edits.
func (s *ScheduleService) UpsertAgents(req *AgentsUpdateRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", err
	}

	doc, err := s.GetDocument()
	if err != nil {
		return "", err
	}

	byID := make(map[string]int, len(doc.Agents))
	for i, a := range doc.Agents {
		byID[a.ID] = i
	}
	for _, in := range req.Agents {
		agent := schedule.Agent{
			ID:            in.ID,
			FirstName:     in.FirstName,
			LastName:      in.LastName,
			TZID:          in.TZID,
			Hidden:        in.Hidden,
			IsSupervisor:  in.IsSupervisor,
			SupervisorID:  in.SupervisorID,
			MeetingCohort: in.MeetingCohort,
			Notes:         in.Notes,
		}
		if agent.ID == "" {
			agent.ID = uuid.New().String()
		}
		if i, ok := byID[agent.ID]; ok {
			doc.Agents[i] = agent
		} else {
			byID[agent.ID] = len(doc.Agents)
			doc.Agents = append(doc.Agents, agent)
		}
	}

	doc.AgentsIndex = schedule.BuildAgentsIndex(doc)
	doc.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.persist(doc); err != nil {
		return "", &apperrors.WriteError{Err: err}
	}
	s.announce(doc.UpdatedAt)
	return doc.UpdatedAt, nil
}

// ApplyShiftBatch merges shift deletes and upserts into the stored
// shifts. Only the upserted shifts are shape-checked and normalized;
// unrelated record kinds are left as stored.
func (s *ScheduleService) ApplyShiftBatch(req *ShiftBatchRequest) (string, error) {
	if err := schedule.ValidateShifts(req.Upserts); err != nil {
		return "", err
	}

	doc, err := s.GetDocument()
	if err != nil {
		return "", err
	}

	deleted := make(map[string]struct{}, len(req.Deletes))
	for _, id := range req.Deletes {
		deleted[id] = struct{}{}
	}
	kept := doc.Shifts[:0]
	for _, sh := range doc.Shifts {
		if _, gone := deleted[sh.ID]; !gone {
			kept = append(kept, sh)
		}
	}
	doc.Shifts = kept

	byID := make(map[string]int, len(doc.Shifts))
	for i, sh := range doc.Shifts {
		byID[sh.ID] = i
	}
	for _, up := range req.Upserts {
		schedule.NormalizeShift(&up)
		if i, ok := byID[up.ID]; ok {
			doc.Shifts[i] = up
		} else {
			byID[up.ID] = len(doc.Shifts)
			doc.Shifts = append(doc.Shifts, up)
		}
	}

	doc.AgentsIndex = schedule.BuildAgentsIndex(doc)
	doc.UpdatedAt = s.now().UTC().Format(time.RFC3339)

	if err := s.persist(doc); err != nil {
		return "", &apperrors.WriteError{Err: err}
	}
	s.announce(doc.UpdatedAt)
	return doc.UpdatedAt, nil
}

// staleWrite reports whether the patch lost a race: it carries an
// updatedAt strictly before the stored one AND touches schedule data.
// Unparseable tokens disable the gate rather than block the write.
func staleWrite(patch schedule.DocumentPatch, prev *schedule.Document) bool {
	if patch.UpdatedAt == "" || prev.UpdatedAt == "" || !patch.TouchesSchedule() {
		return false
	}
	incoming, err := time.Parse(time.RFC3339, patch.UpdatedAt)
	if err != nil {
		return false
	}
	stored, err := time.Parse(time.RFC3339, prev.UpdatedAt)
	if err != nil {
		return false
	}
	return incoming.Before(stored)
}

// loadStored reads the document from the database, returning nil when
// no document exists yet.
func (s *ScheduleService) loadStored() (*schedule.Document, error) {
	raw, err := s.repo.Get(s.docKey)
	if err != nil {
		return nil, fmt.Errorf("read schedule document: %w", err)
	}
	if raw == nil {
		return nil, nil
	}
	var doc schedule.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode schedule document: %w", err)
	}
	return &doc, nil
}

// persist writes the document to the database and refreshes the mirror.
// The blob is pretty-printed so stored documents diff cleanly.
func (s *ScheduleService) persist(doc *schedule.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule document: %w", err)
	}
	if err := s.repo.Put(s.docKey, raw); err != nil {
		return err
	}

	if s.mirror != nil {
		ctx, cancel := s.mirrorContext()
		defer cancel()
		if err := s.mirror.Set(ctx, s.docKey, raw); err != nil {
			logrus.WithError(err).Warn("schedule mirror write failed")
		}
	}
	return nil
}

// announce signals "write succeeded" to SSE clients. With a mirror the
// event goes through its channel so every instance (this one included,
// via its subscription) fans it out; without one it goes straight to
// the local broadcaster. Fire-and-forget either way.
func (s *ScheduleService) announce(updatedAt string) {
	if s.mirror != nil {
		ctx, cancel := s.mirrorContext()
		defer cancel()
		err := s.mirror.PublishUpdate(ctx, updatedAt)
		if err == nil {
			return
		}
		logrus.WithError(err).Warn("schedule update publish failed")
	}
	if s.notifier != nil {
		s.notifier.Broadcast(updatedAt)
	}
}

func (s *ScheduleService) mirrorContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
