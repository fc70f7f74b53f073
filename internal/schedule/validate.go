package schedule

import "regexp"

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validTime checks an HH:MM field. Start fields may never be "24:00";
// end fields may reach hour 24 only as exactly "24:00". TimeToMinutes
// is deliberately lenient about the hour component, so the one-day
// bound is enforced here: anything past 1440 minutes is not a
// time of day.
func validTime(hhmm string, isStart bool) bool {
	m, ok := TimeToMinutes(hhmm)
	if !ok {
		return false
	}
	if isStart && hhmm == "24:00" {
		return false
	}
	return m <= 1440
}

func validDate(d string) bool {
	// Shape only. Calendar validity (e.g. Feb 30) is intentionally not
	// checked so historical documents replay cleanly.
	return dateShape.MatchString(d)
}

// checkShift appends a FieldError for every malformed field on s.
func checkShift(s Shift, errs []FieldError) []FieldError {
	add := func(field string) []FieldError {
		return append(errs, FieldError{Where: "shifts", ID: s.ID, Field: field})
	}
	if s.ID == "" {
		errs = add("id")
	}
	if s.Person == "" {
		errs = add("person")
	}
	if !IsDay(s.Day) {
		errs = add("day")
	}
	if !validTime(s.Start, true) {
		errs = add("start")
	}
	if !validTime(s.End, false) {
		errs = add("end")
	}
	if s.EndDay != "" && !IsDay(s.EndDay) {
		errs = add("endDay")
	}
	return errs
}

func checkPto(p PtoEntry, errs []FieldError) []FieldError {
	add := func(field string) []FieldError {
		return append(errs, FieldError{Where: "pto", ID: p.ID, Field: field})
	}
	if p.ID == "" {
		errs = add("id")
	}
	if p.Person == "" {
		errs = add("person")
	}
	if !validDate(p.StartDate) {
		errs = add("startDate")
	}
	if !validDate(p.EndDate) {
		errs = add("endDate")
	}
	return errs
}

func checkCalendarSeg(cs CalendarSegment, errs []FieldError) []FieldError {
	add := func(field string) []FieldError {
		return append(errs, FieldError{Where: "calendarSegs", Field: field})
	}
	if cs.Person == "" {
		errs = add("person")
	}
	if !IsDay(cs.Day) {
		errs = add("day")
	}
	if !validTime(cs.Start, true) {
		errs = add("start")
	}
	if !validTime(cs.End, false) {
		errs = add("end")
	}
	// Wrap-around (end at or before start in minutes) is allowed, a
	// literally zero-length segment is not.
	if cs.Start != "" && cs.Start == cs.End {
		errs = add("end")
	}
	return errs
}

func checkOverride(o Override, errs []FieldError) []FieldError {
	add := func(field string) []FieldError {
		return append(errs, FieldError{Where: "overrides", ID: o.ID, Field: field})
	}
	if o.ID == "" {
		errs = add("id")
	}
	if o.Person == "" {
		errs = add("person")
	}
	if !validDate(o.StartDate) {
		errs = add("startDate")
	}
	if !validDate(o.EndDate) {
		errs = add("endDate")
	}
	if o.Start != "" && !validTime(o.Start, true) {
		errs = add("start")
	}
	if o.End != "" && !validTime(o.End, false) {
		errs = add("end")
	}
	if o.EndDay != "" && !IsDay(o.EndDay) {
		errs = add("endDay")
	}
	return errs
}

func checkAgent(a Agent, errs []FieldError) []FieldError {
	if a.ID == "" {
		errs = append(errs, FieldError{Where: "agents", Field: "id"})
	}
	return errs
}

// ValidateShifts shape-checks a batch of shifts outside the full
// pipeline. Used by the shift-batch write path, which touches no other
// record kind.
func ValidateShifts(shifts []Shift) error {
	var errs []FieldError
	for _, s := range shifts {
		errs = checkShift(s, errs)
	}
	if len(errs) > 0 {
		return &ValidationErrors{Details: errs}
	}
	return nil
}

// checkRecords runs every record of every kind through its shape check
// and returns the full list of problems. It never stops early.
func checkRecords(doc *Document) []FieldError {
	var errs []FieldError
	for _, s := range doc.Shifts {
		errs = checkShift(s, errs)
	}
	for _, p := range doc.PTO {
		errs = checkPto(p, errs)
	}
	for _, cs := range doc.CalendarSegs {
		errs = checkCalendarSeg(cs, errs)
	}
	for _, o := range doc.Overrides {
		errs = checkOverride(o, errs)
	}
	for _, a := range doc.Agents {
		errs = checkAgent(a, errs)
	}
	return errs
}
