package schedule

// NormalizeShift fills the shift's endDay from its times and start day.
// An explicitly supplied endDay is never overwritten. Malformed times
// are skipped silently; the record validators report those.
func NormalizeShift(s *Shift) {
	if s.EndDay != "" {
		return
	}
	sMin, okS := TimeToMinutes(s.Start)
	eMin, okE := TimeToMinutes(s.End)
	if !okS || !okE {
		return
	}
	switch {
	case eMin == 1440:
		// Ends exactly at midnight: by convention the shift belongs to
		// its start day.
		s.EndDay = s.Day
	case eMin <= sMin:
		s.EndDay = NextDayOfWeek(s.Day)
	default:
		s.EndDay = s.Day
	}
}

func normalizeShifts(shifts []Shift) {
	for i := range shifts {
		NormalizeShift(&shifts[i])
	}
}
