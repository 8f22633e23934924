package retreats

import (
	"context"
	"errors"
	"fmt"
	"log"

	"retreatly/internal/properties"
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/constants"
	"retreatly/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrNotOwner = errors.New("retreat does not belong to this host")

type Service interface {
	CreateRetreat(ctx context.Context, hostID uuid.UUID, isAdmin bool, req CreateRetreatRequest) (*RetreatResponse, error)
	GetRetreatByID(ctx context.Context, id string) (*RetreatResponse, error)
	GetRetreats(ctx context.Context, query RetreatListQuery) (*PaginatedRetreats, error)
	UpdateRetreat(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdateRetreatRequest) (*RetreatResponse, error)
	DeleteRetreat(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error

	CreateInstance(ctx context.Context, retreatID string, hostID uuid.UUID, isAdmin bool, req CreateInstanceRequest) (*RetreatInstance, error)
	UpdateInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool, req UpdateInstanceRequest) (*RetreatInstance, error)
	DeleteInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool) error
	GetInstances(ctx context.Context, retreatID string) ([]RetreatInstance, error)
}

type service struct {
	repo         Repository
	propertyRepo properties.Repository
	config       *config.Config
	redisClient  *redis.Client
}

func NewService(repo Repository, propertyRepo properties.Repository, cfg *config.Config) Service {
	return &service{
		repo:         repo,
		propertyRepo: propertyRepo,
		config:       cfg,
		redisClient:  cache.Client(),
	}
}

func (s *service) CreateRetreat(ctx context.Context, hostID uuid.UUID, isAdmin bool, req CreateRetreatRequest) (*RetreatResponse, error) {
	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("invalid property ID: %w", err)
	}

	property, err := s.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property not found")
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !isAdmin && property.HostID != hostID {
		return nil, ErrNotOwner
	}

	retreat := &Retreat{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Status:      StatusDraft,
	}

	if err := s.repo.Create(ctx, retreat); err != nil {
		return nil, fmt.Errorf("failed to create retreat: %w", err)
	}

	s.invalidateCaches(ctx)

	resp := retreat.ToResponse()
	return &resp, nil
}

func (s *service) GetRetreatByID(ctx context.Context, id string) (*RetreatResponse, error) {
	retreatID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID: %w", err)
	}

	cacheKey := constants.CACHE_KEY_RETREAT_DETAIL + id

	var cached RetreatResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for retreat: %s", cacheKey)
		return &cached, nil
	}

	retreat, err := s.repo.GetByIDWithRelations(ctx, retreatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("retreat not found")
		}
		return nil, fmt.Errorf("failed to get retreat: %w", err)
	}

	resp := retreat.ToResponse()

	if err := SetCache(ctx, s.redisClient, cacheKey, resp, constants.TTL_RETREAT_DETAIL); err != nil {
		log.Printf("Warning: failed to cache retreat: %v", err)
	}

	return &resp, nil
}

func (s *service) GetRetreats(ctx context.Context, query RetreatListQuery) (*PaginatedRetreats, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:name:%s:category:%s:status:%s:property:%s",
		constants.CACHE_KEY_RETREATS_LIST,
		query.Page, query.Limit, query.NameContains, query.Category, query.Status, query.PropertyID,
	)

	var cached PaginatedRetreats
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for retreat list: %s", cacheKey)
		return &cached, nil
	}

	rows, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list retreats: %w", err)
	}

	result := &PaginatedRetreats{
		Retreats:   toResponses(rows),
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int((totalCount + int64(query.Limit) - 1) / int64(query.Limit)),
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, result, constants.TTL_RETREAT_LIST); err != nil {
		log.Printf("Warning: failed to cache retreat list: %v", err)
	}

	return result, nil
}

func (s *service) UpdateRetreat(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdateRetreatRequest) (*RetreatResponse, error) {
	retreat, err := s.ownedRetreat(ctx, id, hostID, isAdmin)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, retreat.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update retreat: %w", err)
		}
	}

	s.invalidateCaches(ctx)

	updated, err := s.repo.GetByIDWithRelations(ctx, retreat.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload retreat: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteRetreat(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error {
	retreat, err := s.ownedRetreat(ctx, id, hostID, isAdmin)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, retreat.ID); err != nil {
		return fmt.Errorf("failed to delete retreat: %w", err)
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) CreateInstance(ctx context.Context, retreatID string, hostID uuid.UUID, isAdmin bool, req CreateInstanceRequest) (*RetreatInstance, error) {
	retreat, err := s.ownedRetreat(ctx, retreatID, hostID, isAdmin)
	if err != nil {
		return nil, err
	}

	availableSlots := req.Capacity
	if req.AvailableSlots != nil {
		availableSlots = *req.AvailableSlots
	}
	if availableSlots > req.Capacity {
		return nil, fmt.Errorf("available slots cannot exceed capacity")
	}

	instance := &RetreatInstance{
		ID:             uuid.New(),
		RetreatID:      retreat.ID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Capacity:       req.Capacity,
		AvailableSlots: availableSlots,
		IsFull:         availableSlots == 0,
	}

	if err := s.repo.CreateInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to create retreat instance: %w", err)
	}

	s.invalidateCaches(ctx)
	return instance, nil
}

func (s *service) UpdateInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool, req UpdateInstanceRequest) (*RetreatInstance, error) {
	id, err := uuid.Parse(instanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid instance ID: %w", err)
	}

	instance, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("retreat instance not found")
		}
		return nil, fmt.Errorf("failed to get retreat instance: %w", err)
	}

	if _, err := s.ownedRetreat(ctx, instance.RetreatID.String(), hostID, isAdmin); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if req.StartDate != nil {
		updates["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		updates["end_date"] = *req.EndDate
	}

	capacity := instance.Capacity
	if req.Capacity != nil {
		capacity = *req.Capacity
		updates["capacity"] = capacity
	}

	availableSlots := instance.AvailableSlots
	if req.AvailableSlots != nil {
		availableSlots = *req.AvailableSlots
	}
	if availableSlots > capacity {
		return nil, fmt.Errorf("available slots cannot exceed capacity")
	}
	if req.AvailableSlots != nil || req.Capacity != nil {
		updates["available_slots"] = availableSlots
		updates["is_full"] = availableSlots == 0
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateInstance(ctx, id, updates); err != nil {
			return nil, fmt.Errorf("failed to update retreat instance: %w", err)
		}
	}

	s.invalidateCaches(ctx)

	updated, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload retreat instance: %w", err)
	}
	return updated, nil
}

func (s *service) DeleteInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool) error {
	id, err := uuid.Parse(instanceID)
	if err != nil {
		return fmt.Errorf("invalid instance ID: %w", err)
	}

	instance, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("retreat instance not found")
		}
		return fmt.Errorf("failed to get retreat instance: %w", err)
	}

	if _, err := s.ownedRetreat(ctx, instance.RetreatID.String(), hostID, isAdmin); err != nil {
		return err
	}

	if err := s.repo.DeleteInstance(ctx, id); err != nil {
		return fmt.Errorf("failed to delete retreat instance: %w", err)
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) GetInstances(ctx context.Context, retreatID string) ([]RetreatInstance, error) {
	id, err := uuid.Parse(retreatID)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID: %w", err)
	}

	instances, err := s.repo.GetInstancesByRetreatID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list retreat instances: %w", err)
	}
	return instances, nil
}

// ownedRetreat loads a retreat and enforces ownership through its property
func (s *service) ownedRetreat(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) (*Retreat, error) {
	retreatID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid retreat ID: %w", err)
	}

	retreat, err := s.repo.GetByID(ctx, retreatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("retreat not found")
		}
		return nil, fmt.Errorf("failed to get retreat: %w", err)
	}

	if !isAdmin {
		property, err := s.propertyRepo.GetByID(ctx, retreat.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("failed to get property: %w", err)
		}
		if property.HostID != hostID {
			return nil, ErrNotOwner
		}
	}

	return retreat, nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if err := InvalidateRetreatCache(ctx, s.redisClient); err != nil {
		log.Printf("Warning: failed to invalidate retreat caches: %v", err)
	}
}

func toResponses(rows []Retreat) []RetreatResponse {
	result := make([]RetreatResponse, len(rows))
	for i := range rows {
		result[i] = rows[i].ToResponse()
	}
	return result
}
