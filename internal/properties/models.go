package properties

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Property is a host-owned place that offers retreats and programs.
// Lat/Lng are nullable: a property without coordinates is excluded from
// radius search but still eligible for country grouping.
type Property struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	HostID      uuid.UUID `json:"host_id" gorm:"type:uuid;index;not null"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Address     string    `json:"address" gorm:"size:500"`
	City        string    `json:"city" gorm:"size:120"`
	Country     string    `json:"country" gorm:"size:2;index"` // ISO 3166-1 alpha-2
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	Status      Status    `json:"status" gorm:"type:varchar(20);default:'draft'"`

	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE;"`
	Images    []Image   `json:"images,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE;"`
	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:property_amenities;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Room is a sleeping arrangement within a property
type Room struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;index;not null"`
	Name       string    `json:"name" gorm:"not null;size:255"`
	Capacity   int       `json:"capacity" gorm:"not null;check:capacity > 0"`
	BedCount   int       `json:"bed_count" gorm:"default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Image is an uploaded picture attached to a property
type Image struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;index;not null"`
	URL        string    `json:"url" gorm:"not null;size:500"`
	Alt        string    `json:"alt" gorm:"size:255"`
	Position   int       `json:"position" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

// Amenity is a reusable feature tag (pool, sauna, wifi)
type Amenity struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null;size:120"`
	Icon      string    `json:"icon" gorm:"size:120"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyResponse is the API shape for a property
type PropertyResponse struct {
	ID          string    `json:"id"`
	HostID      string    `json:"host_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Lat         *float64  `json:"lat"`
	Lng         *float64  `json:"lng"`
	Status      Status    `json:"status"`
	Rooms       []Room    `json:"rooms,omitempty"`
	Images      []Image   `json:"images,omitempty"`
	Amenities   []Amenity `json:"amenities,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NearbyProperty is a property annotated with its distance from a query point
type NearbyProperty struct {
	PropertyResponse
	DistanceMiles float64 `json:"distance_miles"`
}

// PaginatedProperties wraps a page of properties
type PaginatedProperties struct {
	Properties []PropertyResponse `json:"properties"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// ToResponse converts a Property to its API shape
func (p *Property) ToResponse() PropertyResponse {
	return PropertyResponse{
		ID:          p.ID.String(),
		HostID:      p.HostID.String(),
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Lat:         p.Lat,
		Lng:         p.Lng,
		Status:      p.Status,
		Rooms:       p.Rooms,
		Images:      p.Images,
		Amenities:   p.Amenities,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// TableName specifies the table name for GORM
func (Property) TableName() string {
	return "properties"
}

func (Room) TableName() string {
	return "rooms"
}

func (Image) TableName() string {
	return "images"
}

func (Amenity) TableName() string {
	return "amenities"
}
