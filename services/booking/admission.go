package booking

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "dentistimo/database/repository/booking"
	dentistRepo "dentistimo/database/repository/dentist"
	"dentistimo/models"
	"dentistimo/utils"
)

// DefaultAdmissionService runs the admission pipeline:
// normalize -> capacity check -> persist.
type DefaultAdmissionService struct {
	DentistRepo dentistRepo.DentistRepository
	BookingRepo bookingRepo.BookingRepository

	locks *slotLocks
}

// NewDefaultAdmissionService constructs the admission service.
func NewDefaultAdmissionService(dentists dentistRepo.DentistRepository, bookings bookingRepo.BookingRepository) *DefaultAdmissionService {
	return &DefaultAdmissionService{
		DentistRepo: dentists,
		BookingRepo: bookings,
		locks:       newSlotLocks(),
	}
}

// Admit normalizes the requested time, checks remaining capacity under the
// slot lock and persists the booking. The check and the insert hold the same
// per-slot lock, so two requests for one slot can never both observe a free
// chair.
func (s *DefaultAdmissionService) Admit(req models.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	normalized, err := NormalizeInterval(req.Time)
	if err != nil {
		return nil, err
	}
	req.Time = normalized

	key := slotKey(req.DentistID, req.Date, req.Time)
	lock := s.locks.acquire(key)
	defer s.locks.release(key, lock)

	free, err := s.hasCapacity(req.DentistID, req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, &NoFreeSlotsError{DentistID: req.DentistID, Date: req.Date, Time: req.Time}
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		DentistID: req.DentistID,
		UserID:    req.UserID,
		RequestID: req.RequestID,
		Issuance:  req.Issuance,
		Date:      req.Date,
		Time:      req.Time,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := s.BookingRepo.Create(booking); err != nil {
		logger.Error("failed to save booking",
			zap.String("bookingID", booking.ID),
			zap.Int("dentistID", booking.DentistID),
			zap.Error(err))
		return nil, &SaveFailedError{Err: err}
	}

	logger.Info("booking admitted",
		zap.String("bookingID", booking.ID),
		zap.Int("dentistID", booking.DentistID),
		zap.String("date", booking.Date),
		zap.String("time", booking.Time))

	return &models.BookingConfirmation{
		UserID:    booking.UserID,
		RequestID: booking.RequestID,
		Date:      booking.Date,
		Time:      booking.Time,
		Name:      booking.Name,
	}, nil
}
