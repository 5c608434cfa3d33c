package booking

import (
	"context"
	"errors"
	"time"

	"github.com/liamkavfc/SculpoDatabase/internal/catalog"
	"github.com/liamkavfc/SculpoDatabase/internal/logger"
	"github.com/liamkavfc/SculpoDatabase/internal/metrics"
	"github.com/liamkavfc/SculpoDatabase/internal/profile"
)

var (
	ErrMissingBookingID = errors.New("booking id is required")
	ErrMissingUserID    = errors.New("user id is required")
	ErrInvalidStatus    = errors.New("status must be between 0 and 7")
)

// Notifier is the email collaborator; confirmation delivery is queued, never
// part of the booking write.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, clientName, trainerName string, when time.Time) error
}

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus, notes string) error
	SendBookingConfirmation(ctx context.Context, bookingID string) error
	GetBookingsByUserID(ctx context.Context, userID string) ([]BookingView, error)
	GetDashboardMetrics(ctx context.Context, trainerID string) (*DashboardMetrics, error)
	GetClientsByTrainerID(ctx context.Context, trainerID string) ([]profile.Profile, error)
}

type service struct {
	repo     Repository
	profiles profile.Repository
	catalog  catalog.Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, profiles profile.Repository, cat catalog.Repository, notifier Notifier) Service {
	return &service{repo: repo, profiles: profiles, catalog: cat, notifier: notifier, now: time.Now}
}

// CreateBooking stores a new booking in Pending. It does not re-check the
// trainer's availability; callers are expected to have read availability
// first, and concurrent double-booking is resolved by trainer review.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	b := &Booking{
		ServiceID:              req.ServiceID,
		ClientID:               req.ClientID,
		TrainerID:              req.TrainerID,
		BookingDate:            req.BookingDate,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		DeliveryFormatID:       req.DeliveryFormatID,
		DeliveryFormatOptionID: req.DeliveryFormatOptionID,
		Notes:                  req.Notes,
		Status:                 StatusPending,
		Price:                  req.Price,
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		logger.Error("failed to create booking", "trainerId", req.TrainerID, "clientId", req.ClientID, "error", err)
		return nil, err
	}

	metrics.RecordBooking(created.Status.String())
	logger.Info("booking created", "bookingId", created.ID, "trainerId", created.TrainerID)

	return &CreateBookingResponse{
		BookingID: created.ID,
		Message:   "Booking created successfully",
		Status:    created.Status.String(),
	}, nil
}

// UpdateBookingStatus overwrites the booking's status unconditionally. There
// is no transition table: any status is reachable from any other, including
// out of terminal states. Tightening this requires renegotiating the client
// contract first.
func (s *service) UpdateBookingStatus(ctx context.Context, bookingID string, status BookingStatus, notes string) error {
	if bookingID == "" {
		return ErrMissingBookingID
	}
	if status < StatusPending || status > StatusRejected {
		return ErrInvalidStatus
	}

	if err := s.repo.UpdateStatus(ctx, bookingID, status, notes); err != nil {
		if !errors.Is(err, ErrBookingNotFound) {
			logger.Error("failed to update booking status", "bookingId", bookingID, "status", status.String(), "error", err)
		}
		return err
	}

	metrics.RecordStatusTransition(status.String())
	return nil
}

// SendBookingConfirmation resolves the booking, client and trainer, then
// queues the confirmation email. A missing booking or profile aborts with a
// log line and no error; delivery is best effort.
func (s *service) SendBookingConfirmation(ctx context.Context, bookingID string) error {
	if bookingID == "" {
		return ErrMissingBookingID
	}

	b, err := s.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		logger.Error("confirmation skipped, booking lookup failed", "bookingId", bookingID, "error", err)
		return nil
	}

	client, err := s.profiles.GetProfile(ctx, b.ClientID)
	if err != nil || client == nil {
		logger.Error("confirmation skipped, client profile missing", "bookingId", bookingID, "clientId", b.ClientID)
		return nil
	}

	trainer, err := s.profiles.GetProfile(ctx, b.TrainerID)
	if err != nil || trainer == nil {
		logger.Error("confirmation skipped, trainer profile missing", "bookingId", bookingID, "trainerId", b.TrainerID)
		return nil
	}

	if client.Email == "" {
		logger.Error("confirmation skipped, client has no email", "bookingId", bookingID, "clientId", b.ClientID)
		return nil
	}

	err = s.notifier.SendBookingConfirmation(ctx, client.Email, client.DisplayName(), trainer.DisplayName(), b.StartTime)
	if err != nil {
		logger.Error("failed to queue booking confirmation", "bookingId", bookingID, "error", err)
		return err
	}

	logger.Info("booking confirmation queued", "bookingId", bookingID, "to", client.Email)
	return nil
}

// GetBookingsByUserID returns the user's bookings enriched with display
// names and service titles. Names are resolved with one batched lookup over
// the deduplicated id set; a lookup miss falls back to "Unknown".
func (s *service) GetBookingsByUserID(ctx context.Context, userID string) ([]BookingView, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to list bookings", "userId", userID, "error", err)
		return []BookingView{}, nil
	}

	return s.enrich(ctx, bookings), nil
}

func (s *service) enrich(ctx context.Context, bookings []Booking) []BookingView {
	userIDs := make([]string, 0, len(bookings)*2)
	serviceIDs := make([]string, 0, len(bookings))
	seenUser := make(map[string]bool)
	seenService := make(map[string]bool)
	for _, b := range bookings {
		for _, id := range []string{b.ClientID, b.TrainerID} {
			if id != "" && !seenUser[id] {
				seenUser[id] = true
				userIDs = append(userIDs, id)
			}
		}
		if b.ServiceID != "" && !seenService[b.ServiceID] {
			seenService[b.ServiceID] = true
			serviceIDs = append(serviceIDs, b.ServiceID)
		}
	}

	profiles, err := s.profiles.GetProfilesByIDs(ctx, userIDs)
	if err != nil {
		logger.Error("failed to batch load profiles", "error", err)
		profiles = nil
	}
	titles, err := s.catalog.GetTitlesByIDs(ctx, serviceIDs)
	if err != nil {
		logger.Error("failed to batch load service titles", "error", err)
		titles = nil
	}

	name := func(id, fallback string) string {
		if p, ok := profiles[id]; ok && p != nil {
			return p.DisplayName()
		}
		return fallback
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		title, ok := titles[b.ServiceID]
		if !ok || title == "" {
			title = "Unknown Service"
		}
		views = append(views, BookingView{
			Booking:      b,
			ClientName:   name(b.ClientID, "Unknown Client"),
			TrainerName:  name(b.TrainerID, "Unknown Trainer"),
			ServiceTitle: title,
		})
	}
	return views
}

// GetDashboardMetrics summarises a trainer's upcoming bookings and the count
// of bookings made in the last thirty days.
func (s *service) GetDashboardMetrics(ctx context.Context, trainerID string) (*DashboardMetrics, error) {
	if trainerID == "" {
		return nil, ErrMissingUserID
	}

	now := s.now()
	bookings, err := s.repo.QueryByTrainerAndDateRange(ctx, trainerID, now.AddDate(0, 0, -30), now.AddDate(0, 0, 30))
	if err != nil {
		logger.Error("failed to load dashboard bookings", "trainerId", trainerID, "error", err)
		return &DashboardMetrics{UpcomingBookings: []BookingView{}}, nil
	}

	var upcoming []Booking
	recent := 0
	for _, b := range bookings {
		if b.BookingDate.After(now) && b.Status.BlocksAvailability() {
			upcoming = append(upcoming, b)
		}
		if !b.CreatedAt.Before(now.AddDate(0, 0, -30)) {
			recent++
		}
	}

	return &DashboardMetrics{
		UpcomingBookings:       s.enrich(ctx, upcoming),
		LastThirtyDaysBookings: recent,
	}, nil
}

// GetClientsByTrainerID returns the distinct clients that have ever booked
// with the trainer, resolved to profiles. Clients whose profile is missing
// are dropped.
func (s *service) GetClientsByTrainerID(ctx context.Context, trainerID string) ([]profile.Profile, error) {
	if trainerID == "" {
		return nil, ErrMissingUserID
	}

	ids, err := s.repo.ListClientIDsByTrainer(ctx, trainerID)
	if err != nil {
		logger.Error("failed to list client ids", "trainerId", trainerID, "error", err)
		return []profile.Profile{}, nil
	}

	profiles, err := s.profiles.GetProfilesByIDs(ctx, ids)
	if err != nil {
		logger.Error("failed to batch load client profiles", "trainerId", trainerID, "error", err)
		return []profile.Profile{}, nil
	}

	clients := make([]profile.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := profiles[id]; ok && p != nil {
			clients = append(clients, *p)
		}
	}
	return clients, nil
}
