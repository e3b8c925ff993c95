package handlers

import (
	"encoding/json"

	"go.uber.org/zap"

	"dentistimo/bus"
	dentistRepo "dentistimo/database/repository/dentist"
	"dentistimo/models"
	"dentistimo/utils"
)

// DentistHandler answers directory requests with a broadcast of all
// registered dentists. The response goes to the shared response topic, not a
// session topic.
type DentistHandler struct {
	Repo      dentistRepo.DentistRepository
	Publisher bus.Publisher
}

// NewDentistHandler constructs a DentistHandler.
func NewDentistHandler(repo dentistRepo.DentistRepository, pub bus.Publisher) *DentistHandler {
	return &DentistHandler{Repo: repo, Publisher: pub}
}

// HandleRequest publishes the full dentist registry. The request payload is
// ignored.
func (h *DentistHandler) HandleRequest(_ string, _ []byte) {
	logger := utils.GetLogger()

	dentists, err := h.Repo.FindAll()
	if err != nil {
		logger.Error("failed to fetch dentists", zap.Error(err))
		return
	}
	if dentists == nil {
		// An empty registry still broadcasts a JSON array, not null.
		dentists = []models.Dentist{}
	}

	body, err := json.Marshal(dentists)
	if err != nil {
		logger.Error("failed to encode dentists", zap.Error(err))
		return
	}
	if err := h.Publisher.Publish(bus.TopicDentistResponse, body); err != nil {
		logger.Error("failed to publish dentists", zap.Error(err))
	}
}
