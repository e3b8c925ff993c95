package booking

import "regexp"

var intervalPattern = regexp.MustCompile(`^\d{1,2}:\d{2}-\d{1,2}:\d{2}$`)

// NormalizeInterval canonicalizes a time interval into the stored form, which
// omits leading hour zeros ("09:00-09:50" becomes "9:00-9:50"). The rule is
// positional: a '0' at byte 0 is dropped, and after that shift a '0' at byte
// 5 of the shortened string (the end hour's leading zero) is dropped too.
// Bookings are matched by string equality, so every time string must pass
// through here before it is stored or counted.
//
// Inputs that do not fit the H:MM-H:MM shape fail with
// InvalidTimeFormatError instead of being inspected out of bounds.
func NormalizeInterval(raw string) (string, error) {
	if !intervalPattern.MatchString(raw) {
		return "", &InvalidTimeFormatError{Raw: raw}
	}
	s := raw
	if s[0] == '0' {
		s = s[1:]
		if s[5] == '0' {
			s = s[:5] + s[6:]
		}
	}
	return s, nil
}
