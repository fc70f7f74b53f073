package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validShift() Shift {
	return Shift{ID: "s1", Person: "Ann Lee", Day: "Mon", Start: "09:00", End: "17:00"}
}

func TestCheckShift_Valid(t *testing.T) {
	assert.Empty(t, checkShift(validShift(), nil))
}

func TestCheckShift_CollectsEveryProblem(t *testing.T) {
	s := Shift{ID: "", Person: "", Day: "Monday", Start: "24:00", End: "09:61"}
	errs := checkShift(s, nil)

	fields := make([]string, len(errs))
	for i, e := range errs {
		assert.Equal(t, "shifts", e.Where)
		fields[i] = e.Field
	}
	assert.ElementsMatch(t, []string{"id", "person", "day", "start", "end"}, fields)
}

func TestCheckShift_StartMayNotBeMidnightBoundary(t *testing.T) {
	s := validShift()
	s.Start = "24:00"
	errs := checkShift(s, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "start", errs[0].Field)
}

func TestCheckShift_EndMayBeMidnightBoundary(t *testing.T) {
	s := validShift()
	s.End = "24:00"
	assert.Empty(t, checkShift(s, nil))
}

func TestCheckShift_EndPastMidnightBoundaryRejected(t *testing.T) {
	for _, end := range []string{"24:01", "24:59", "99:30"} {
		s := validShift()
		s.End = end
		errs := checkShift(s, nil)
		assert.Len(t, errs, 1, "end %q", end)
		assert.Equal(t, "end", errs[0].Field, "end %q", end)
	}
}

func TestCheckCalendarSeg_EndPastMidnightBoundaryRejected(t *testing.T) {
	cs := CalendarSegment{Person: "Ann", Day: "Wed", Start: "22:00", End: "24:01"}
	errs := checkCalendarSeg(cs, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "end", errs[0].Field)
}

func TestCheckOverride_EndPastMidnightBoundaryRejected(t *testing.T) {
	o := Override{ID: "o1", Person: "Ann", StartDate: "2024-06-01", EndDate: "2024-06-01", End: "24:01"}
	errs := checkOverride(o, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "end", errs[0].Field)
}

func TestCheckShift_BadExplicitEndDay(t *testing.T) {
	s := validShift()
	s.EndDay = "Someday"
	errs := checkShift(s, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "endDay", errs[0].Field)
}

func TestCheckPto(t *testing.T) {
	ok := PtoEntry{ID: "p1", Person: "Ann", StartDate: "2024-06-01", EndDate: "2024-06-07"}
	assert.Empty(t, checkPto(ok, nil))

	bad := PtoEntry{ID: "p2", Person: "Ann", StartDate: "06/01/2024", EndDate: "2024-6-7"}
	errs := checkPto(bad, nil)
	assert.Len(t, errs, 2)
	assert.Equal(t, "pto", errs[0].Where)
	assert.Equal(t, "p2", errs[0].ID)
}

func TestCheckPto_DateShapeOnlyNotCalendarValidity(t *testing.T) {
	// Feb 30 passes on purpose: rejecting it would break replay of
	// previously accepted documents.
	p := PtoEntry{ID: "p1", Person: "Ann", StartDate: "2024-02-30", EndDate: "2024-02-30"}
	assert.Empty(t, checkPto(p, nil))
}

func TestCheckCalendarSeg_EqualStartEndRejected(t *testing.T) {
	cs := CalendarSegment{Person: "Ann", Day: "Wed", Start: "09:00", End: "09:00"}
	errs := checkCalendarSeg(cs, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "calendarSegs", errs[0].Where)
	assert.Equal(t, "end", errs[0].Field)
}

func TestCheckCalendarSeg_WrapAroundAllowed(t *testing.T) {
	cs := CalendarSegment{Person: "Ann", Day: "Wed", Start: "22:00", End: "02:00"}
	assert.Empty(t, checkCalendarSeg(cs, nil))
}

func TestCheckOverride(t *testing.T) {
	ok := Override{ID: "o1", Person: "Ann", StartDate: "2024-06-01", EndDate: "2024-06-01"}
	assert.Empty(t, checkOverride(ok, nil))

	withTimes := ok
	withTimes.Start = "10:00"
	withTimes.End = "24:00"
	withTimes.EndDay = "Mon"
	assert.Empty(t, checkOverride(withTimes, nil))

	bad := ok
	bad.Start = "24:00"
	bad.EndDay = "later"
	errs := checkOverride(bad, nil)
	fields := []string{errs[0].Field, errs[1].Field}
	assert.ElementsMatch(t, []string{"start", "endDay"}, fields)
}

func TestCheckAgent(t *testing.T) {
	assert.Empty(t, checkAgent(Agent{ID: "a1"}, nil))

	errs := checkAgent(Agent{FirstName: "Ann"}, nil)
	assert.Len(t, errs, 1)
	assert.Equal(t, "agents", errs[0].Where)
	assert.Equal(t, "id", errs[0].Field)
}

func TestCheckRecords_AggregatesAcrossKinds(t *testing.T) {
	doc := &Document{
		Shifts:       []Shift{{ID: "s1", Person: "Ann", Day: "Nope", Start: "09:00", End: "17:00"}},
		PTO:          []PtoEntry{{ID: "", Person: "Ann", StartDate: "2024-01-01", EndDate: "2024-01-02"}},
		CalendarSegs: []CalendarSegment{{Person: "Ann", Day: "Mon", Start: "09:00", End: "09:00"}},
	}
	errs := checkRecords(doc)
	assert.Len(t, errs, 3)
}
