package models

import "time"

// BookingRequest is the wire form of a booking/save message. The session id
// addresses the asynchronous response back to the caller; it is never stored.
type BookingRequest struct {
	DentistID int    `json:"dentistid"`
	UserID    string `json:"userid"`
	RequestID int64  `json:"requestid"`
	Issuance  int64  `json:"issuance"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	SessionID string `json:"sessionid"`
	Name      string `json:"name"`
}

// Booking is the persistent record created exactly once per admitted request.
// Records are insert-only; this service never updates or deletes them. Time
// is always stored in normalized form so slot counts can match on equality.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	DentistID int       `bson:"dentistid" json:"dentistid"`
	UserID    string    `bson:"userid" json:"userid"`
	RequestID int64     `bson:"requestid" json:"requestid"`
	Issuance  int64     `bson:"issuance" json:"issuance"`
	Date      string    `bson:"date" json:"date"`
	Time      string    `bson:"time" json:"time"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BookingConfirmation is published on booking/confirmed/<sessionId> after a
// successful admission.
type BookingConfirmation struct {
	UserID    string `json:"userid"`
	RequestID int64  `json:"requestid"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Name      string `json:"name"`
}
