package bookings

import (
	"context"
	"errors"
	"fmt"
	"log"

	"retreatly/internal/notifications"
	"retreatly/internal/pricemods"
	"retreatly/internal/programs"
	"retreatly/internal/properties"
	"retreatly/internal/retreats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInstanceSelection = errors.New("exactly one of retreat_instance_id and program_instance_id must be set")
	ErrInstanceFull      = errors.New("no available slots for the requested guests")
	ErrInvalidTransition = errors.New("booking status transition not allowed")
	ErrNotBookingOwner   = errors.New("booking does not belong to this user")
)

type Service interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error)
	GetBookingByID(ctx context.Context, id string, userID uuid.UUID, isAdmin bool) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	ConfirmBooking(ctx context.Context, id string) (*Booking, error)
	CancelBooking(ctx context.Context, id string, userID uuid.UUID, isAdmin bool) (*Booking, error)
}

type service struct {
	db           *gorm.DB
	repo         Repository
	retreatRepo  retreats.Repository
	programRepo  programs.Repository
	propertyRepo properties.Repository
	priceMods    pricemods.Service
	producer     notifications.Producer
}

func NewService(
	db *gorm.DB,
	repo Repository,
	retreatRepo retreats.Repository,
	programRepo programs.Repository,
	propertyRepo properties.Repository,
	priceMods pricemods.Service,
	producer notifications.Producer,
) Service {
	return &service{
		db:           db,
		repo:         repo,
		retreatRepo:  retreatRepo,
		programRepo:  programRepo,
		propertyRepo: propertyRepo,
		priceMods:    priceMods,
		producer:     producer,
	}
}

func (s *service) CreateBooking(ctx context.Context, userID uuid.UUID, req CreateBookingRequest) (*Booking, error) {
	if (req.RetreatInstanceID == nil) == (req.ProgramInstanceID == nil) {
		return nil, ErrInstanceSelection
	}

	var (
		kind       pricemods.Kind
		instanceID uuid.UUID
		err        error
	)
	if req.RetreatInstanceID != nil {
		kind = pricemods.KindRetreat
		instanceID, err = uuid.Parse(*req.RetreatInstanceID)
	} else {
		kind = pricemods.KindProgram
		instanceID, err = uuid.Parse(*req.ProgramInstanceID)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid instance ID: %w", err)
	}

	// One resolution pins down the ancestor chain and the price inputs.
	result := s.priceMods.GetAllPriceMods(ctx, instanceID.String(), kind)
	if !result.OK {
		return nil, fmt.Errorf("%s", result.Error)
	}

	propertyID, err := uuid.Parse(result.Data.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid resolved property ID: %w", err)
	}

	booking := &Booking{
		ID:         uuid.New(),
		BookingRef: generateBookingRef(),
		UserID:     userID,
		PropertyID: propertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: ComputeTotalPrice(result.Data.AllPriceMods, req.Guests),
		Status:     StatusPending,
	}
	if kind == pricemods.KindRetreat {
		booking.RetreatInstanceID = &instanceID
	} else {
		booking.ProgramInstanceID = &instanceID
	}

	// Slot decrement and booking insert commit together; a full instance
	// rolls the whole thing back.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if kind == pricemods.KindRetreat {
			if err := s.retreatRepo.DecrementSlots(ctx, tx, instanceID, req.Guests); err != nil {
				if errors.Is(err, retreats.ErrNoSlots) {
					return ErrInstanceFull
				}
				return err
			}
		} else {
			if err := s.programRepo.DecrementSlots(ctx, tx, instanceID, req.Guests); err != nil {
				if errors.Is(err, programs.ErrNoSlots) {
					return ErrInstanceFull
				}
				return err
			}
		}
		return s.repo.Create(ctx, tx, booking)
	})
	if err != nil {
		if errors.Is(err, ErrInstanceFull) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publishEvent(ctx, notifications.EventBookingCreated, booking)
	return booking, nil
}

func (s *service) GetBookingByID(ctx context.Context, id string, userID uuid.UUID, isAdmin bool) (*Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	return booking, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	rows, totalCount, err := s.repo.GetByUserID(ctx, userID, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	return rows, totalCount, nil
}

// ConfirmBooking moves PENDING -> CONFIRMED. Payment capture is out of scope;
// the admin confirmation endpoint stands in for the processor callback.
func (s *service) ConfirmBooking(ctx context.Context, id string) (*Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.CanTransitionTo(StatusConfirmed) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, s.db, bookingID, StatusConfirmed); err != nil {
		return nil, fmt.Errorf("failed to confirm booking: %w", err)
	}
	booking.Status = StatusConfirmed

	s.publishEvent(ctx, notifications.EventBookingConfirmed, booking)
	return booking, nil
}

func (s *service) CancelBooking(ctx context.Context, id string, userID uuid.UUID, isAdmin bool) (*Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID: %w", err)
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking not found")
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if !isAdmin && booking.UserID != userID {
		return nil, ErrNotBookingOwner
	}
	if !booking.CanTransitionTo(StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	// Status change and slot restore commit together so cancelled seats
	// reappear exactly once.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.UpdateStatus(ctx, tx, bookingID, StatusCancelled); err != nil {
			return err
		}
		if booking.RetreatInstanceID != nil {
			return s.retreatRepo.RestoreSlots(ctx, tx, *booking.RetreatInstanceID, booking.Guests)
		}
		if booking.ProgramInstanceID != nil {
			return s.programRepo.RestoreSlots(ctx, tx, *booking.ProgramInstanceID, booking.Guests)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	booking.Status = StatusCancelled

	s.publishEvent(ctx, notifications.EventBookingCancelled, booking)
	return booking, nil
}

// publishEvent fires a booking lifecycle event. Delivery problems are logged,
// never surfaced to the booking flow.
func (s *service) publishEvent(ctx context.Context, eventType notifications.EventType, booking *Booking) {
	event := notifications.NewBookingEvent(eventType)
	event.BookingID = booking.ID
	event.BookingRef = booking.BookingRef
	event.CheckIn = booking.CheckIn
	event.CheckOut = booking.CheckOut
	event.Guests = booking.Guests
	event.TotalPrice = booking.TotalPrice

	if user, err := s.repo.GetUser(ctx, booking.UserID); err == nil {
		event.RecipientID = user.ID
		event.RecipientEmail = user.Email
		event.RecipientName = user.FirstName + " " + user.LastName
	} else {
		log.Printf("Warning: failed to load user for booking event: %v", err)
	}

	if property, err := s.propertyRepo.GetByID(ctx, booking.PropertyID); err == nil {
		event.PropertyName = property.Name
	}

	event.OfferingName = s.offeringName(ctx, booking)

	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		log.Printf("Warning: failed to publish booking event %s: %v", eventType, err)
	}
}

func (s *service) offeringName(ctx context.Context, booking *Booking) string {
	if booking.RetreatInstanceID != nil {
		instance, err := s.retreatRepo.GetInstanceByID(ctx, *booking.RetreatInstanceID)
		if err != nil {
			return ""
		}
		retreat, err := s.retreatRepo.GetByID(ctx, instance.RetreatID)
		if err != nil {
			return ""
		}
		return retreat.Name
	}
	if booking.ProgramInstanceID != nil {
		instance, err := s.programRepo.GetInstanceByID(ctx, *booking.ProgramInstanceID)
		if err != nil {
			return ""
		}
		program, err := s.programRepo.GetByID(ctx, instance.ProgramID)
		if err != nil {
			return ""
		}
		return program.Name
	}
	return ""
}
