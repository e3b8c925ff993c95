package booking

import "dentistimo/models"

// AdmissionService decides whether a booking request still fits into its
// requested slot and, if so, persists it. Admit returns the confirmation to
// publish, or one of the typed errors from errors.go.
type AdmissionService interface {
	Admit(req models.BookingRequest) (*models.BookingConfirmation, error)
}
