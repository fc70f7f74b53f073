package schedule

// TimeToMinutes parses an HH:MM string into minutes since midnight.
// The boundary value "24:00" maps to 1440. Malformed input (wrong
// shape, minutes >= 60) returns ok=false rather than an error so that
// callers can treat it as a skip signal. The hour component is not
// bounded here; the record validators reject values past one day.
func TimeToMinutes(hhmm string) (int, bool) {
	if hhmm == "24:00" {
		return 1440, true
	}
	if len(hhmm) != 5 || hhmm[2] != ':' {
		return 0, false
	}
	h, ok := twoDigits(hhmm[0], hhmm[1])
	if !ok {
		return 0, false
	}
	m, ok := twoDigits(hhmm[3], hhmm[4])
	if !ok || m >= 60 {
		return 0, false
	}
	return h*60 + m, true
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// NextDayOfWeek returns the cyclic successor of a day token in the
// fixed Sun..Sat order. Unrecognized input is returned unchanged; the
// record validators reject bad day tokens upstream, so the lenient
// branch never fires inside the validated pipeline.
func NextDayOfWeek(day string) string {
	for i, d := range Days {
		if d == day {
			return Days[(i+1)%len(Days)]
		}
	}
	return day
}

// IsDay reports whether day is one of the 7 fixed tokens.
func IsDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
