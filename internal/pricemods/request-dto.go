package pricemods

// CreatePriceModRequest creates a price adjustment rule. At most one of the
// attachment IDs may be set; a request with none attaches nothing and derives
// the property-level source.
type CreatePriceModRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=255"`
	Description string  `json:"description" binding:"max=2000"`
	Type        string  `json:"type" binding:"required,oneof=BASE_PRICE BASE_MOD ADDON FEE TAX FIXED PERCENT"`
	Value       float64 `json:"value" binding:"required"`

	HostID            *string `json:"host_id" binding:"omitempty,uuid"`
	PropertyID        *string `json:"property_id" binding:"omitempty,uuid"`
	RetreatID         *string `json:"retreat_id" binding:"omitempty,uuid"`
	ProgramID         *string `json:"program_id" binding:"omitempty,uuid"`
	RetreatInstanceID *string `json:"retreat_instance_id" binding:"omitempty,uuid"`
	ProgramInstanceID *string `json:"program_instance_id" binding:"omitempty,uuid"`
}

// UpdatePriceModRequest carries partial updates to the value fields.
// Attachments are immutable after creation; delete and recreate to move a mod.
type UpdatePriceModRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Type        *string  `json:"type" binding:"omitempty,oneof=BASE_PRICE BASE_MOD ADDON FEE TAX FIXED PERCENT"`
	Value       *float64 `json:"value"`
}

// PriceModListQuery paginates the admin listing
type PriceModListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// InstancePriceModsQuery selects the instance whose chain is resolved
type InstancePriceModsQuery struct {
	Kind string `form:"kind" binding:"required,oneof=retreat program"`
}
