package handlers

import (
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"dentistimo/bus"
	"dentistimo/models"
	"dentistimo/services/booking"
	"dentistimo/utils"
)

// Wire-level rejection messages. Clients display these verbatim.
const (
	msgNoFreeSlots   = "No free slots available"
	msgBookingFailed = "Booking was unsuccessful"
)

// BookingHandler turns booking/save messages into admission pipeline runs
// and publishes the outcome on the request's session topics.
type BookingHandler struct {
	Service   booking.AdmissionService
	Publisher bus.Publisher
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.AdmissionService, pub bus.Publisher) *BookingHandler {
	return &BookingHandler{Service: svc, Publisher: pub}
}

// HandleSave processes one booking/save payload. Every request produces at
// most one publish: a confirmation or a rejection on the session's topic.
// Errors never escape; a failed pipeline must not affect other messages.
func (h *BookingHandler) HandleSave(_ string, payload []byte) {
	logger := utils.GetLogger()

	var req models.BookingRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		logger.Warn("undecodable booking request", zap.Error(err))
		// The payload may still carry a session id even when the rest of the
		// structure is broken; answer the session when one is recoverable.
		if sessionID := probeSessionID(payload); sessionID != "" {
			h.publishError(sessionID, msgBookingFailed)
		}
		return
	}
	if req.SessionID == "" {
		logger.Warn("booking request without session id, dropping")
		return
	}

	confirmation, err := h.Service.Admit(req)
	if err != nil {
		h.reject(req.SessionID, err)
		return
	}

	body, err := json.Marshal(confirmation)
	if err != nil {
		logger.Error("failed to encode confirmation", zap.String("sessionID", req.SessionID), zap.Error(err))
		h.publishError(req.SessionID, msgBookingFailed)
		return
	}
	if err := h.Publisher.Publish(bus.BookingConfirmedTopic(req.SessionID), body); err != nil {
		logger.Error("failed to publish confirmation", zap.String("sessionID", req.SessionID), zap.Error(err))
	}
}

// reject maps pipeline errors onto the wire vocabulary: capacity exhaustion
// gets its own message, everything else the generic one.
func (h *BookingHandler) reject(sessionID string, err error) {
	msg := msgBookingFailed
	var noSlots *booking.NoFreeSlotsError
	if errors.As(err, &noSlots) {
		msg = msgNoFreeSlots
	}
	utils.GetLogger().Info("booking rejected", zap.String("sessionID", sessionID), zap.Error(err))
	h.publishError(sessionID, msg)
}

func (h *BookingHandler) publishError(sessionID, msg string) {
	body, _ := json.Marshal(msg)
	if err := h.Publisher.Publish(bus.BookingErrorTopic(sessionID), body); err != nil {
		utils.GetLogger().Error("failed to publish rejection", zap.String("sessionID", sessionID), zap.Error(err))
	}
}

// probeSessionID pulls the session id out of a payload that failed full
// decoding. Returns "" when none is recoverable.
func probeSessionID(payload []byte) string {
	var probe struct {
		SessionID string `json:"sessionid"`
	}
	if err := json.Unmarshal(payload, &probe); err != nil {
		return ""
	}
	return probe.SessionID
}
