package programs

import "time"

// CreateProgramRequest is the payload for adding a program to a property
type CreateProgramRequest struct {
	PropertyID  string `json:"property_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"max=5000"`
	Category    string `json:"category" binding:"max=120"`
}

// UpdateProgramRequest carries partial updates; nil fields are untouched
type UpdateProgramRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Category    *string `json:"category" binding:"omitempty,max=120"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft published archived"`
}

// ProgramListQuery are the filters accepted by the listing endpoint
type ProgramListQuery struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NameContains string `form:"name"`
	Category     string `form:"category"`
	Status       string `form:"status" binding:"omitempty,oneof=draft published archived"`
	PropertyID   string `form:"property_id" binding:"omitempty,uuid"`
}

// CreateInstanceRequest schedules a concrete date range under a program
type CreateInstanceRequest struct {
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
	Capacity       int       `json:"capacity" binding:"required,min=1"`
	AvailableSlots *int      `json:"available_slots" binding:"omitempty,min=0"`
}

// UpdateInstanceRequest carries partial instance updates
type UpdateInstanceRequest struct {
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Capacity       *int       `json:"capacity" binding:"omitempty,min=1"`
	AvailableSlots *int       `json:"available_slots" binding:"omitempty,min=0"`
}
