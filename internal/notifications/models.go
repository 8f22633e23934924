package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names a booking lifecycle transition worth telling the guest about
type EventType string

const (
	EventBookingCreated   EventType = "booking.created"
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
)

// BookingEvent is the Kafka payload published on every booking transition.
// Everything the email needs rides in the event so the consumer never calls
// back into the database.
type BookingEvent struct {
	ID         uuid.UUID `json:"id"`
	Type       EventType `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	BookingRef string    `json:"booking_ref"`

	RecipientID    uuid.UUID `json:"recipient_id"`
	RecipientEmail string    `json:"recipient_email"`
	RecipientName  string    `json:"recipient_name"`

	PropertyName string    `json:"property_name"`
	OfferingName string    `json:"offering_name"` // retreat or program name
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Guests       int       `json:"guests"`
	TotalPrice   float64   `json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
}

// NewBookingEvent stamps a fresh event envelope
func NewBookingEvent(eventType EventType) *BookingEvent {
	return &BookingEvent{
		ID:        uuid.New(),
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
	}
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one booking to the same partition so a
// cancellation can never overtake its confirmation.
func (e *BookingEvent) PartitionKey() string {
	return e.BookingID.String()
}

// Subject renders the email subject line for an event
func (e *BookingEvent) Subject() string {
	switch e.Type {
	case EventBookingCreated:
		return "Booking received: " + e.OfferingName
	case EventBookingConfirmed:
		return "Booking confirmed: " + e.OfferingName
	case EventBookingCancelled:
		return "Booking cancelled: " + e.OfferingName
	default:
		return "Update on your booking " + e.BookingRef
	}
}
