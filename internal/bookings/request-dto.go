package bookings

import "time"

// CreateBookingRequest books one date instance. Exactly one of
// retreat_instance_id / program_instance_id must be set.
type CreateBookingRequest struct {
	RetreatInstanceID *string   `json:"retreat_instance_id" binding:"omitempty,uuid"`
	ProgramInstanceID *string   `json:"program_instance_id" binding:"omitempty,uuid"`
	CheckIn           time.Time `json:"check_in" binding:"required"`
	CheckOut          time.Time `json:"check_out" binding:"required,gtfield=CheckIn"`
	Guests            int       `json:"guests" binding:"required,min=1,max=50"`
}

// BookingListQuery paginates a user's booking history
type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED"`
}
