package bookingRepo

import "dentistimo/models"

// BookingRepository persists admitted bookings. Bookings are insert-only;
// there are no update or delete operations.
type BookingRepository interface {
	// CountForSlot counts bookings matching the exact (dentist, date, time)
	// tuple. The time string must already be normalized.
	CountForSlot(dentistID int, date, timeSlot string) (int64, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
}
