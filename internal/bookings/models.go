package bookings

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Booking links a guest, a property and exactly one date instance (retreat or
// program). The services validate the exactly-one rule; there is no database
// constraint for it.
type Booking struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BookingRef string    `json:"booking_ref" gorm:"uniqueIndex;not null;size:20"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;index;not null"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;index;not null"`

	RetreatInstanceID *uuid.UUID `json:"retreat_instance_id,omitempty" gorm:"type:uuid;index"`
	ProgramInstanceID *uuid.UUID `json:"program_instance_id,omitempty" gorm:"type:uuid;index"`

	CheckIn    time.Time `json:"check_in" gorm:"not null"`
	CheckOut   time.Time `json:"check_out" gorm:"not null"`
	Guests     int       `json:"guests" gorm:"not null;check:guests > 0"`
	TotalPrice float64   `json:"total_price" gorm:"not null"`
	Status     Status    `json:"status" gorm:"type:varchar(20);default:'PENDING';index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// CanTransitionTo encodes the allowed status moves: PENDING -> CONFIRMED,
// PENDING/CONFIRMED -> CANCELLED. Terminal states never move.
func (b *Booking) CanTransitionTo(next Status) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
