package dentistRepo

import "dentistimo/models"

// DentistRepository provides read access to the dentist registry. The
// registry is owned by an external service; this repository never writes.
type DentistRepository interface {
	// FindAll returns every registered dentist.
	FindAll() ([]models.Dentist, error)
	// FindByID returns the dentist with the given id, or (nil, nil) when the
	// id does not resolve.
	FindByID(id int) (*models.Dentist, error)
}
