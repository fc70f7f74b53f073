package testutils

import (
	"team-schedule-backend/internal/schedule"

	"github.com/google/uuid"
)

// DocumentFactory provides methods to create test schedule documents
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a small but fully-linked document: one agent, one
// shift, and an index covering both.
func (f *DocumentFactory) Create() *schedule.Document {
	doc := schedule.NewSkeleton("2024-06-01T12:00:00Z")
	doc.Agents = []schedule.Agent{
		{ID: "a1", FirstName: "Ann", LastName: "Lee", TZID: "America/New_York"},
	}
	doc.Shifts = []schedule.Shift{
		{ID: "s1", Person: "Ann Lee", AgentID: "a1", Day: "Mon", Start: "09:00", End: "17:00", EndDay: "Mon"},
	}
	doc.AgentsIndex = schedule.BuildAgentsIndex(doc)
	return doc
}

// WithShift appends one more shift for the factory agent.
func (f *DocumentFactory) WithShift(id, day, start, end string) *schedule.Document {
	doc := f.Create()
	doc.Shifts = append(doc.Shifts, schedule.Shift{
		ID: id, Person: "Ann Lee", AgentID: "a1", Day: day, Start: start, End: end,
	})
	return doc
}

// Agent creates a standalone roster agent with a fresh id.
func (f *DocumentFactory) Agent(firstName, lastName string) schedule.Agent {
	return schedule.Agent{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
	}
}
