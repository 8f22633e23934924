package pricemods

import (
	"time"

	"github.com/google/uuid"
)

// ModType classifies how a price mod's value is applied and where it sits in
// the display order. FIXED and PERCENT are legacy values still present in old
// rows; they rank after the named tiers.
type ModType string

const (
	TypeBasePrice ModType = "BASE_PRICE"
	TypeBaseMod   ModType = "BASE_MOD"
	TypeAddon     ModType = "ADDON"
	TypeFee       ModType = "FEE"
	TypeTax       ModType = "TAX"
	TypeFixed     ModType = "FIXED"   // legacy
	TypePercent   ModType = "PERCENT" // legacy
)

// Source is the derived attachment level of a price mod. It is computed from
// which association column is set, never stored.
type Source string

const (
	SourceInstance Source = "instance"
	SourceRetreat  Source = "retreat"
	SourceProgram  Source = "program"
	SourceProperty Source = "property"
)

// Kind selects which instance table an operation targets
type Kind string

const (
	KindRetreat Kind = "retreat"
	KindProgram Kind = "program"
)

// PriceMod is a price adjustment rule attachable to a host, property, retreat,
// program or one specific date instance. At most one attachment column is set
// per row; the services validate this since no database constraint does.
type PriceMod struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:255"`
	Description string    `json:"description" gorm:"type:text"`
	Type        ModType   `json:"type" gorm:"type:varchar(20);not null;index"`
	Value       float64   `json:"value" gorm:"not null"`

	HostID            *uuid.UUID `json:"host_id,omitempty" gorm:"type:uuid;index"`
	PropertyID        *uuid.UUID `json:"property_id,omitempty" gorm:"type:uuid;index"`
	RetreatID         *uuid.UUID `json:"retreat_id,omitempty" gorm:"type:uuid;index"`
	ProgramID         *uuid.UUID `json:"program_id,omitempty" gorm:"type:uuid;index"`
	RetreatInstanceID *uuid.UUID `json:"retreat_instance_id,omitempty" gorm:"type:uuid;index"`
	ProgramInstanceID *uuid.UUID `json:"program_instance_id,omitempty" gorm:"type:uuid;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PriceModWithSource is a price mod tagged with its derived attachment level
type PriceModWithSource struct {
	PriceMod
	Source Source `json:"source"`
}

// RelatedIDs carries the association filters for a collect query. Nil fields
// are not matched.
type RelatedIDs struct {
	PropertyID        *uuid.UUID
	RetreatID         *uuid.UUID
	ProgramID         *uuid.UUID
	RetreatInstanceID *uuid.UUID
	ProgramInstanceID *uuid.UUID
}

// IsEmpty reports whether no association filter is set
func (ids RelatedIDs) IsEmpty() bool {
	return ids.PropertyID == nil &&
		ids.RetreatID == nil &&
		ids.ProgramID == nil &&
		ids.RetreatInstanceID == nil &&
		ids.ProgramInstanceID == nil
}

// ResolvedIDs is the ancestor chain of an instance: the instance itself, its
// parent retreat or program, and the owning property.
type ResolvedIDs struct {
	InstanceID uuid.UUID `json:"instance_id"`
	ParentID   uuid.UUID `json:"parent_id"`
	PropertyID uuid.UUID `json:"property_id"`
}

// ResolvedPriceMods is the payload of a successful GetAllPriceMods call
type ResolvedPriceMods struct {
	AllPriceMods []PriceModWithSource `json:"all_price_mods"`
	PropertyID   string               `json:"property_id"`
	RetreatID    string               `json:"retreat_id,omitempty"`
	ProgramID    string               `json:"program_id,omitempty"`
}

// Result is the terminal outcome of a resolution call. Data-layer failures are
// logged and folded into it; nothing propagates past this boundary as an
// error value callers must branch on by message.
type Result struct {
	OK    bool               `json:"ok"`
	Data  *ResolvedPriceMods `json:"data,omitempty"`
	Error string             `json:"error,omitempty"`
}

// TableName specifies the table name for GORM
func (PriceMod) TableName() string {
	return "price_mods"
}
