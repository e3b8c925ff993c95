package bus

// Topics subscribed and published by the booking coordinator. Booking
// responses are addressed to the requester by suffixing its session id.
const (
	TopicDentistRequest  = "data/dentist/request"
	TopicDentistResponse = "data/dentist/response"
	TopicBookingSave     = "booking/save"

	topicBookingConfirmedPrefix = "booking/confirmed/"
	topicBookingErrorPrefix     = "booking/error/"
)

// BookingConfirmedTopic returns the confirmation topic for a session.
func BookingConfirmedTopic(sessionID string) string {
	return topicBookingConfirmedPrefix + sessionID
}

// BookingErrorTopic returns the rejection topic for a session.
func BookingErrorTopic(sessionID string) string {
	return topicBookingErrorPrefix + sessionID
}
