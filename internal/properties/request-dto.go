package properties

// CreatePropertyRequest is the payload for listing a new property
type CreatePropertyRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=255"`
	Description string   `json:"description" binding:"max=5000"`
	Address     string   `json:"address" binding:"max=500"`
	City        string   `json:"city" binding:"max=120"`
	Country     string   `json:"country" binding:"omitempty,len=2"`
	Lat         *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
	AmenityIDs  []string `json:"amenity_ids"`
}

// UpdatePropertyRequest carries partial updates; nil fields are untouched
type UpdatePropertyRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=5000"`
	Address     *string  `json:"address" binding:"omitempty,max=500"`
	City        *string  `json:"city" binding:"omitempty,max=120"`
	Country     *string  `json:"country" binding:"omitempty,len=2"`
	Lat         *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng         *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
	Status      *string  `json:"status" binding:"omitempty,oneof=draft published archived"`
	AmenityIDs  []string `json:"amenity_ids"`
}

// PropertyListQuery are the filters accepted by the listing endpoint
type PropertyListQuery struct {
	Page         int    `form:"page" binding:"omitempty,min=1"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NameContains string `form:"name"`
	Country      string `form:"country"`
	Status       string `form:"status" binding:"omitempty,oneof=draft published archived"`
}

// NearbyQuery are the parameters for the nearby property search
type NearbyQuery struct {
	Latitude    float64  `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude   float64  `form:"longitude" binding:"required,min=-180,max=180"`
	RadiusMiles *float64 `form:"radius_miles" binding:"omitempty,gt=0"`
	Limit       int      `form:"limit" binding:"omitempty,min=1,max=100"`
}

// CreateRoomRequest adds a room to a property
type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	BedCount int    `json:"bed_count" binding:"omitempty,min=1"`
}

// CreateImageRequest attaches an already-hosted image URL to a property
type CreateImageRequest struct {
	URL      string `json:"url" binding:"required,url,max=500"`
	Alt      string `json:"alt" binding:"max=255"`
	Position int    `json:"position" binding:"omitempty,min=0"`
}

// CreateAmenityRequest registers a reusable amenity
type CreateAmenityRequest struct {
	Name string `json:"name" binding:"required,min=2,max=120"`
	Icon string `json:"icon" binding:"max=120"`
}
