package models

// Dentist represents a dental clinic as registered by the external dentist
// registry. Read-only for this service. The Dentists field is the number of
// chairs that can be booked concurrently for any one (date, time) slot.
type Dentist struct {
	ID           int    `bson:"id" json:"id"`
	Name         string `bson:"name" json:"name"`
	Owner        string `bson:"owner" json:"owner"`
	Address      string `bson:"address" json:"address"`
	City         string `bson:"city,omitempty" json:"city,omitempty"`
	Dentists     int    `bson:"dentists" json:"dentists"`
	OpeningHours string `bson:"openinghours,omitempty" json:"openinghours,omitempty"`
}
