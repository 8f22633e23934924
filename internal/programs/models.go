package programs

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

// Program is a recurring bookable activity at a property (a yoga course, a
// surf school week). Concrete dates live on ProgramInstance rows.
type Program struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PropertyID  uuid.UUID `json:"property_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Category    string    `json:"category" gorm:"size:120;index"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'draft'"`

	Property  *properties.Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
	Instances []ProgramInstance    `json:"instances,omitempty" gorm:"foreignKey:ProgramID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// ProgramInstance is a concrete bookable date range. IsFull is recomputed on
// every write so it always equals AvailableSlots == 0.
type ProgramInstance struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ProgramID      uuid.UUID `json:"program_id" gorm:"type:uuid;index;not null"`
	StartDate      time.Time `json:"start_date" gorm:"not null;index"`
	EndDate        time.Time `json:"end_date" gorm:"not null"`
	Capacity       int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	AvailableSlots int       `json:"available_slots" gorm:"not null"`
	IsFull         bool      `json:"is_full" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProgramResponse is the API shape for a program
type ProgramResponse struct {
	ID          string                       `json:"id"`
	PropertyID  string                       `json:"property_id"`
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Category    string                       `json:"category"`
	Status      Status                       `json:"status"`
	Property    *properties.PropertyResponse `json:"property,omitempty"`
	Instances   []ProgramInstance            `json:"instances,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// PaginatedPrograms wraps a page of programs
type PaginatedPrograms struct {
	Programs   []ProgramResponse `json:"programs"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

// ToResponse converts a Program to its API shape
func (p *Program) ToResponse() ProgramResponse {
	resp := ProgramResponse{
		ID:          p.ID.String(),
		PropertyID:  p.PropertyID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Status:      p.Status,
		Instances:   p.Instances,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Property != nil {
		propertyResp := p.Property.ToResponse()
		resp.Property = &propertyResp
	}
	return resp
}

// TableName specifies the table name for GORM
func (Program) TableName() string {
	return "programs"
}

func (ProgramInstance) TableName() string {
	return "program_instances"
}
