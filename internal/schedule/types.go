// Package schedule implements the schedule document validation engine:
// record shape checks, the person-name/agent-id mapping invariant,
// shift end-day normalization, and assembly of the next persistable
// document. The package is pure; persistence and transport live in the
// repository and handler layers.
package schedule

import "strings"

// Day tokens used by shifts and calendar segments, in week order.
var Days = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// ShiftSegment is a sub-interval of a shift tagged with a task. Segments
// are carried through verbatim and are not validated beyond JSON shape.
type ShiftSegment struct {
	ID     string `json:"id,omitempty"`
	TaskID string `json:"taskId,omitempty"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Shift is one recurring weekly shift for one person.
type Shift struct {
	ID       string         `json:"id"`
	Person   string         `json:"person"`
	AgentID  string         `json:"agentId,omitempty"`
	Day      string         `json:"day"`
	Start    string         `json:"start"`
	End      string         `json:"end"`
	EndDay   string         `json:"endDay,omitempty"`
	Segments []ShiftSegment `json:"segments,omitempty"`
}

// PtoEntry is a date-ranged absence for one person.
type PtoEntry struct {
	ID        string `json:"id"`
	Person    string `json:"person"`
	AgentID   string `json:"agentId,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Notes     string `json:"notes,omitempty"`
}

// CalendarSegment is a recurring weekly block on the shared calendar.
// Segments may wrap past midnight (end at or before start in minutes)
// but may never have literally equal start and end strings.
type CalendarSegment struct {
	Person  string `json:"person"`
	AgentID string `json:"agentId,omitempty"`
	Day     string `json:"day"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Override is an ad-hoc one-off schedule change.
type Override struct {
	ID         string `json:"id"`
	Person     string `json:"person"`
	AgentID    string `json:"agentId,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	EndDay     string `json:"endDay,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Recurrence string `json:"recurrence,omitempty"`
}

// Agent is a person who can appear on the schedule.
type Agent struct {
	ID            string `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	TZID          string `json:"tzId,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	IsSupervisor  bool   `json:"isSupervisor,omitempty"`
	SupervisorID  string `json:"supervisorId,omitempty"`
	MeetingCohort string `json:"meetingCohort,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// FullName returns the agent's display name as indexed in agentsIndex.
func (a Agent) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// Document is the persisted schedule document, the system of record.
// AgentsIndex maps normalized person names to agent ids; it is derived
// on every write and never taken from caller input.
type Document struct {
	SchemaVersion int               `json:"schemaVersion"`
	Agents        []Agent           `json:"agents"`
	Shifts        []Shift           `json:"shifts"`
	PTO           []PtoEntry        `json:"pto"`
	Overrides     []Override        `json:"overrides"`
	CalendarSegs  []CalendarSegment `json:"calendarSegs"`
	AgentsIndex   map[string]string `json:"agentsIndex"`
	UpdatedAt     string            `json:"updatedAt"`
}

// DocumentPatch is an inbound write payload. Nil slices mean "field
// absent": agents fall back to the previous document, schedule arrays
// fall back to empty. An inbound agentsIndex is deliberately not
// modeled; the index is always re-derived.
type DocumentPatch struct {
	SchemaVersion *int               `json:"schemaVersion,omitempty"`
	Agents        *[]Agent           `json:"agents,omitempty"`
	Shifts        *[]Shift           `json:"shifts,omitempty"`
	PTO           *[]PtoEntry        `json:"pto,omitempty"`
	Overrides     *[]Override        `json:"overrides,omitempty"`
	CalendarSegs  *[]CalendarSegment `json:"calendarSegs,omitempty"`
	UpdatedAt     string             `json:"updatedAt,omitempty"`
}

// TouchesSchedule reports whether the patch carries any schedule array.
// Agent-only payloads bypass the optimistic-concurrency gate.
func (p DocumentPatch) TouchesSchedule() bool {
	return p.Shifts != nil || p.PTO != nil || p.Overrides != nil || p.CalendarSegs != nil
}

// NewSkeleton returns an empty document persisted on first read so that
// reads are never "not found".
func NewSkeleton(updatedAt string) *Document {
	return &Document{
		SchemaVersion: 2,
		Agents:        []Agent{},
		Shifts:        []Shift{},
		PTO:           []PtoEntry{},
		Overrides:     []Override{},
		CalendarSegs:  []CalendarSegment{},
		AgentsIndex:   map[string]string{},
		UpdatedAt:     updatedAt,
	}
}

// NormalizeName maps a display name to its agentsIndex key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
