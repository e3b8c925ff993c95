package booking

import "fmt"

// InvalidTimeFormatError reports a time interval that does not fit the
// expected H:MM-H:MM wire shape.
type InvalidTimeFormatError struct {
	Raw string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid time interval %q", e.Raw)
}

// DentistNotFoundError reports a dentist id that does not resolve in the
// registry.
type DentistNotFoundError struct {
	DentistID int
}

func (e *DentistNotFoundError) Error() string {
	return fmt.Sprintf("dentist %d not found", e.DentistID)
}

// NoFreeSlotsError reports an exhausted (dentist, date, time) slot.
type NoFreeSlotsError struct {
	DentistID int
	Date      string
	Time      string
}

func (e *NoFreeSlotsError) Error() string {
	return fmt.Sprintf("no free slots for dentist %d at %s %s", e.DentistID, e.Date, e.Time)
}

// SaveFailedError wraps a persistence failure during admission.
type SaveFailedError struct {
	Err error
}

func (e *SaveFailedError) Error() string {
	return fmt.Sprintf("saving booking failed: %v", e.Err)
}

func (e *SaveFailedError) Unwrap() error { return e.Err }
