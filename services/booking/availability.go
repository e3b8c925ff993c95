package booking

import "fmt"

// hasCapacity reports whether the dentist still has a free chair for the
// given (date, time) slot. Bookings are matched on the exact normalized
// tuple; intervals are never compared for overlap.
func (s *DefaultAdmissionService) hasCapacity(dentistID int, date, timeSlot string) (bool, error) {
	dentist, err := s.DentistRepo.FindByID(dentistID)
	if err != nil {
		return false, fmt.Errorf("failed to fetch dentist %d: %w", dentistID, err)
	}
	if dentist == nil {
		return false, &DentistNotFoundError{DentistID: dentistID}
	}

	count, err := s.BookingRepo.CountForSlot(dentistID, date, timeSlot)
	if err != nil {
		return false, fmt.Errorf("failed to count bookings for dentist %d: %w", dentistID, err)
	}
	return count < int64(dentist.Dentists), nil
}
