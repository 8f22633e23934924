package properties

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"retreatly/internal/shared/config"
	"retreatly/internal/shared/constants"
	"retreatly/internal/shared/geo"
	"retreatly/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrNotOwner = errors.New("property does not belong to this host")

type Service interface {
	CreateProperty(ctx context.Context, hostID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error)
	GetPropertyByID(ctx context.Context, id string) (*PropertyResponse, error)
	GetProperties(ctx context.Context, query PropertyListQuery) (*PaginatedProperties, error)
	GetHostProperties(ctx context.Context, hostID uuid.UUID) ([]PropertyResponse, error)
	UpdateProperty(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdatePropertyRequest) (*PropertyResponse, error)
	DeleteProperty(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error

	// SearchNearby ranks published properties by distance from a query point.
	// The default radius here is the legacy nearby value, not the
	// destination-search default; the two differ on purpose.
	SearchNearby(ctx context.Context, query NearbyQuery) ([]NearbyProperty, error)

	AddRoom(ctx context.Context, propertyID string, hostID uuid.UUID, isAdmin bool, req CreateRoomRequest) (*Room, error)
	AddImage(ctx context.Context, propertyID string, hostID uuid.UUID, isAdmin bool, req CreateImageRequest) (*Image, error)
	CreateAmenity(ctx context.Context, req CreateAmenityRequest) (*Amenity, error)
	GetAmenities(ctx context.Context) ([]Amenity, error)
}

type service struct {
	repo        Repository
	config      *config.Config
	redisClient *redis.Client
	cacheSvc    cache.Service
}

func NewService(repo Repository, cfg *config.Config) Service {
	s := &service{
		repo:        repo,
		config:      cfg,
		redisClient: cache.Client(),
	}
	if s.redisClient != nil {
		s.cacheSvc = cache.NewService(s.redisClient)
	}
	return s
}

func (s *service) CreateProperty(ctx context.Context, hostID uuid.UUID, req CreatePropertyRequest) (*PropertyResponse, error) {
	property := &Property{
		ID:          uuid.New(),
		HostID:      hostID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		Country:     strings.ToUpper(req.Country),
		Lat:         req.Lat,
		Lng:         req.Lng,
		Status:      StatusDraft,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if len(req.AmenityIDs) > 0 {
		amenityIDs, err := parseUUIDs(req.AmenityIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAmenities(ctx, property, amenityIDs); err != nil {
			return nil, fmt.Errorf("failed to attach amenities: %w", err)
		}
	}

	s.invalidateListCaches(ctx)

	resp := property.ToResponse()
	return &resp, nil
}

func (s *service) GetPropertyByID(ctx context.Context, id string) (*PropertyResponse, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	cacheKey := constants.BuildPropertyDetailKey(id)

	var cached PropertyResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for property: %s", cacheKey)
		return &cached, nil
	}

	property, err := s.repo.GetByIDWithRelations(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	resp := property.ToResponse()

	if err := SetCache(ctx, s.redisClient, cacheKey, resp, constants.TTL_PROPERTY_DETAIL); err != nil {
		log.Printf("Warning: failed to cache property: %v", err)
	}

	return &resp, nil
}

func (s *service) GetProperties(ctx context.Context, query PropertyListQuery) (*PaginatedProperties, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:name:%s:country:%s:status:%s",
		constants.CACHE_KEY_PROPERTIES_LIST,
		query.Page, query.Limit, query.NameContains, query.Country, query.Status,
	)

	var cached PaginatedProperties
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for property list: %s", cacheKey)
		return &cached, nil
	}

	rows, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	result := &PaginatedProperties{
		Properties: toResponses(rows),
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int((totalCount + int64(query.Limit) - 1) / int64(query.Limit)),
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, result, constants.TTL_PROPERTY_LIST); err != nil {
		log.Printf("Warning: failed to cache property list: %v", err)
	}

	return result, nil
}

func (s *service) GetHostProperties(ctx context.Context, hostID uuid.UUID) ([]PropertyResponse, error) {
	rows, err := s.repo.GetByHostID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("failed to list host properties: %w", err)
	}
	return toResponses(rows), nil
}

func (s *service) UpdateProperty(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdatePropertyRequest) (*PropertyResponse, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if !isAdmin && existing.HostID != hostID {
		return nil, ErrNotOwner
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Country != nil {
		updates["country"] = strings.ToUpper(*req.Country)
	}
	if req.Lat != nil {
		updates["lat"] = *req.Lat
	}
	if req.Lng != nil {
		updates["lng"] = *req.Lng
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, propertyID, updates); err != nil {
			return nil, fmt.Errorf("failed to update property: %w", err)
		}
	}

	if req.AmenityIDs != nil {
		amenityIDs, err := parseUUIDs(req.AmenityIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceAmenities(ctx, existing, amenityIDs); err != nil {
			return nil, fmt.Errorf("failed to replace amenities: %w", err)
		}
	}

	s.invalidateDetailCache(ctx, id)
	s.invalidateListCaches(ctx)

	updated, err := s.repo.GetByIDWithRelations(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload property: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteProperty(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid property ID: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("property not found")
		}
		return fmt.Errorf("failed to get property: %w", err)
	}

	if !isAdmin && existing.HostID != hostID {
		return ErrNotOwner
	}

	if err := s.repo.Delete(ctx, propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.invalidateDetailCache(ctx, id)
	s.invalidateListCaches(ctx)

	return nil
}

func (s *service) SearchNearby(ctx context.Context, query NearbyQuery) ([]NearbyProperty, error) {
	radius := s.config.Search.NearbyRadiusMiles
	if query.RadiusMiles != nil {
		radius = *query.RadiusMiles
	}
	limit := query.Limit
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.repo.GetPublishedWithCoordinates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	nearby := make([]NearbyProperty, 0, len(rows))
	for i := range rows {
		distance := geo.Haversine(query.Latitude, query.Longitude, rows[i].Lat, rows[i].Lng)
		if distance > radius {
			continue
		}
		nearby = append(nearby, NearbyProperty{
			PropertyResponse: rows[i].ToResponse(),
			DistanceMiles:    distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMiles < nearby[j].DistanceMiles
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

func (s *service) AddRoom(ctx context.Context, propertyID string, hostID uuid.UUID, isAdmin bool, req CreateRoomRequest) (*Room, error) {
	property, err := s.ownedProperty(ctx, propertyID, hostID, isAdmin)
	if err != nil {
		return nil, err
	}

	bedCount := req.BedCount
	if bedCount <= 0 {
		bedCount = 1
	}

	room := &Room{
		ID:         uuid.New(),
		PropertyID: property.ID,
		Name:       req.Name,
		Capacity:   req.Capacity,
		BedCount:   bedCount,
	}

	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidateDetailCache(ctx, propertyID)
	return room, nil
}

func (s *service) AddImage(ctx context.Context, propertyID string, hostID uuid.UUID, isAdmin bool, req CreateImageRequest) (*Image, error) {
	property, err := s.ownedProperty(ctx, propertyID, hostID, isAdmin)
	if err != nil {
		return nil, err
	}

	image := &Image{
		ID:         uuid.New(),
		PropertyID: property.ID,
		URL:        req.URL,
		Alt:        req.Alt,
		Position:   req.Position,
	}

	if err := s.repo.CreateImage(ctx, image); err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	s.invalidateDetailCache(ctx, propertyID)
	return image, nil
}

func (s *service) CreateAmenity(ctx context.Context, req CreateAmenityRequest) (*Amenity, error) {
	amenity := &Amenity{
		ID:   uuid.New(),
		Name: req.Name,
		Icon: req.Icon,
	}

	if err := s.repo.CreateAmenity(ctx, amenity); err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.Delete(ctx, constants.CACHE_KEY_AMENITIES); err != nil {
			log.Printf("Warning: failed to invalidate amenity cache: %v", err)
		}
	}

	return amenity, nil
}

// GetAmenities serves the amenity catalog cache-aside; the catalog only
// changes when an admin adds to it.
func (s *service) GetAmenities(ctx context.Context) ([]Amenity, error) {
	if s.cacheSvc == nil {
		amenities, err := s.repo.GetAmenities(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list amenities: %w", err)
		}
		return amenities, nil
	}

	var amenities []Amenity
	err := s.cacheSvc.GetOrSet(ctx, constants.CACHE_KEY_AMENITIES, constants.TTL_AMENITIES, func() (interface{}, error) {
		return s.repo.GetAmenities(ctx)
	}, &amenities)
	if err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return amenities, nil
}

// ownedProperty loads a property and enforces host ownership
func (s *service) ownedProperty(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) (*Property, error) {
	propertyID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	property, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	if !isAdmin && property.HostID != hostID {
		return nil, ErrNotOwner
	}

	return property, nil
}

func (s *service) invalidateDetailCache(ctx context.Context, id string) {
	if err := DeleteCache(ctx, s.redisClient, constants.BuildPropertyDetailKey(id)); err != nil {
		log.Printf("Warning: failed to invalidate property cache: %v", err)
	}
}

func (s *service) invalidateListCaches(ctx context.Context) {
	if err := InvalidatePropertyCache(ctx, s.redisClient); err != nil {
		log.Printf("Warning: failed to invalidate property list caches: %v", err)
	}
}

func toResponses(rows []Property) []PropertyResponse {
	result := make([]PropertyResponse, len(rows))
	for i := range rows {
		result[i] = rows[i].ToResponse()
	}
	return result
}

func parseUUIDs(ids []string) ([]uuid.UUID, error) {
	result := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ID %q: %w", raw, err)
		}
		result = append(result, id)
	}
	return result, nil
}
