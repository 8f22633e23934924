package retreats

import (
	"time"

	"retreatly/internal/properties"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Retreat is a bookable experience offered at a property. Concrete dates live
// on RetreatInstance rows.
type Retreat struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PropertyID  uuid.UUID `json:"property_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:120;index"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'draft'"`

	Property  *properties.Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Instances []RetreatInstance    `json:"instances,omitempty" gorm:"foreignKey:RetreatID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// RetreatInstance is a concrete bookable date range.
// IsFull must be true exactly when AvailableSlots is zero; the services
// recompute it on every create, update and slot change since there is no
// database constraint backing it.
type RetreatInstance struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	RetreatID      uuid.UUID `json:"retreat_id" gorm:"type:uuid;index;not null"`
	StartDate      time.Time `json:"start_date" gorm:"not null;index"`
	EndDate        time.Time `json:"end_date" gorm:"not null"`
	Capacity       int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	AvailableSlots int       `json:"available_slots" gorm:"not null"`
	IsFull         bool      `json:"is_full" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RetreatResponse is the API shape for a retreat
type RetreatResponse struct {
	ID          string                       `json:"id"`
	PropertyID  string                       `json:"property_id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Category    string                       `json:"category"`
	Status      Status                       `json:"status"`
	Property    *properties.PropertyResponse `json:"property,omitempty"`
	Instances   []RetreatInstance            `json:"instances,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// PaginatedRetreats wraps a page of retreats
type PaginatedRetreats struct {
	Retreats   []RetreatResponse `json:"retreats"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ToResponse converts a Retreat to its API shape
func (r *Retreat) ToResponse() RetreatResponse {
	resp := RetreatResponse{
		ID:          r.ID.String(),
		PropertyID:  r.PropertyID.String(),
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Status:      r.Status,
		Instances:   r.Instances,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Property != nil {
		propertyResp := r.Property.ToResponse()
		resp.Property = &propertyResp
	}
	return resp
}

// TableName specifies the table name for GORM
func (Retreat) TableName() string {
	return "retreats"
}

func (RetreatInstance) TableName() string {
	return "retreat_instances"
}
