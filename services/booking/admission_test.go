package booking

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"dentistimo/models"
)

type fakeDentistRepo struct {
	dentists map[int]models.Dentist
	err      error
}

func (f *fakeDentistRepo) FindAll() ([]models.Dentist, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Dentist
	for _, d := range f.dentists {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDentistRepo) FindByID(id int) (*models.Dentist, error) {
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.dentists[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []models.Booking
	createErr error
}

func (f *fakeBookingRepo) CountForSlot(dentistID int, date, timeSlot string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.bookings {
		if b.DentistID == dentistID && b.Date == date && b.Time == timeSlot {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *b)
	return nil
}

func newTestService(chairs int) (*DefaultAdmissionService, *fakeBookingRepo) {
	dentists := &fakeDentistRepo{dentists: map[int]models.Dentist{
		1: {ID: 1, Name: "Tooth Fairy Clinic", Dentists: chairs},
	}}
	bookings := &fakeBookingRepo{}
	return NewDefaultAdmissionService(dentists, bookings), bookings
}

func request(session, timeSlot string) models.BookingRequest {
	return models.BookingRequest{
		DentistID: 1,
		UserID:    "user@mail.com",
		RequestID: 42,
		Issuance:  1714550400000,
		Date:      "2024-05-01",
		Time:      timeSlot,
		SessionID: session,
		Name:      "Jordan Smith",
	}
}

func TestAdmitPersistsAndConfirms(t *testing.T) {
	svc, repo := newTestService(2)

	conf, err := svc.Admit(request("S1", "09:00-09:50"))
	if err != nil {
		t.Fatalf("Admit returned error: %v", err)
	}
	if conf.UserID != "user@mail.com" || conf.RequestID != 42 || conf.Name != "Jordan Smith" {
		t.Errorf("confirmation does not echo the request: %+v", conf)
	}
	if conf.Time != "9:00-9:50" {
		t.Errorf("confirmation time = %q, want normalized %q", conf.Time, "9:00-9:50")
	}

	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	stored := repo.bookings[0]
	if stored.Time != "9:00-9:50" {
		t.Errorf("stored time = %q, want normalized %q", stored.Time, "9:00-9:50")
	}
	if stored.ID == "" {
		t.Error("stored booking has no id")
	}
	if stored.CreatedAt.IsZero() {
		t.Error("stored booking has no creation timestamp")
	}
}

func TestAdmitRejectsWhenSlotFull(t *testing.T) {
	svc, repo := newTestService(2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Admit(request(fmt.Sprintf("S%d", i), "9:00-9:50")); err != nil {
			t.Fatalf("admission %d failed: %v", i, err)
		}
	}

	_, err := svc.Admit(request("S3", "9:00-9:50"))
	var noSlots *NoFreeSlotsError
	if !errors.As(err, &noSlots) {
		t.Fatalf("expected NoFreeSlotsError, got %v", err)
	}
	if len(repo.bookings) != 2 {
		t.Errorf("slot overbooked: %d bookings for 2 chairs", len(repo.bookings))
	}
}

func TestAdmitCountsAcrossClientFormats(t *testing.T) {
	// "09:00-09:50" and "9:00-9:50" are the same slot once normalized.
	svc, repo := newTestService(1)

	if _, err := svc.Admit(request("S1", "09:00-09:50")); err != nil {
		t.Fatalf("first admission failed: %v", err)
	}
	_, err := svc.Admit(request("S2", "9:00-9:50"))
	var noSlots *NoFreeSlotsError
	if !errors.As(err, &noSlots) {
		t.Fatalf("expected NoFreeSlotsError for equivalent time format, got %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("expected 1 booking, got %d", len(repo.bookings))
	}
}

func TestAdmitUnknownDentist(t *testing.T) {
	svc, repo := newTestService(2)

	req := request("S1", "9:00-9:50")
	req.DentistID = 99
	_, err := svc.Admit(req)
	var notFound *DentistNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected DentistNotFoundError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("booking persisted for unknown dentist")
	}
}

func TestAdmitInvalidTime(t *testing.T) {
	svc, repo := newTestService(2)

	_, err := svc.Admit(request("S1", "whenever"))
	var invalid *InvalidTimeFormatError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTimeFormatError, got %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Errorf("booking persisted despite invalid time")
	}
}

func TestAdmitSaveFailure(t *testing.T) {
	svc, repo := newTestService(2)
	repo.createErr = errors.New("write concern failure")

	_, err := svc.Admit(request("S1", "9:00-9:50"))
	var saveErr *SaveFailedError
	if !errors.As(err, &saveErr) {
		t.Fatalf("expected SaveFailedError, got %v", err)
	}
}

func TestAdmitConcurrentRequestsNeverOverbook(t *testing.T) {
	const chairs = 2
	const attempts = 20

	svc, repo := newTestService(chairs)

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted, rejected := 0, 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.Admit(request(fmt.Sprintf("S%d", i), "9:00-9:50"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				admitted++
			default:
				var noSlots *NoFreeSlotsError
				if !errors.As(err, &noSlots) {
					t.Errorf("unexpected error: %v", err)
					return
				}
				rejected++
			}
		}(i)
	}
	wg.Wait()

	if admitted != chairs {
		t.Errorf("admitted %d requests for %d chairs", admitted, chairs)
	}
	if rejected != attempts-chairs {
		t.Errorf("rejected %d requests, want %d", rejected, attempts-chairs)
	}
	if len(repo.bookings) != chairs {
		t.Errorf("stored %d bookings for %d chairs", len(repo.bookings), chairs)
	}
}
