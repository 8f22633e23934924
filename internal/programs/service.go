package programs

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

var ErrNotOwner = errors.New("program does not belong to this host")

type Service interface {
	CreateProgram(ctx context.Context, hostID uuid.UUID, isAdmin bool, req CreateProgramRequest) (*ProgramResponse, error)
	GetProgramByID(ctx context.Context, id string) (*ProgramResponse, error)
	GetPrograms(ctx context.Context, query ProgramListQuery) (*PaginatedPrograms, error)
	UpdateProgram(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdateProgramRequest) (*ProgramResponse, error)
	DeleteProgram(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error

	CreateInstance(ctx context.Context, programID string, hostID uuid.UUID, isAdmin bool, req CreateInstanceRequest) (*ProgramInstance, error)
	UpdateInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool, req UpdateInstanceRequest) (*ProgramInstance, error)
	DeleteInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool) error
	GetInstances(ctx context.Context, programID string) ([]ProgramInstance, error)
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

func (s *service) CreateProgram(ctx context.Context, hostID uuid.UUID, isAdmin bool, req CreateProgramRequest) (*ProgramResponse, error) {
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

	program := &Program{
		ID:          uuid.New(),
		PropertyID:  propertyID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Status:      StatusDraft,
	}

	if err := s.repo.Create(ctx, program); err != nil {
		return nil, fmt.Errorf("failed to create program: %w", err)
	}

	s.invalidateCaches(ctx)

	resp := program.ToResponse()
	return &resp, nil
}

func (s *service) GetProgramByID(ctx context.Context, id string) (*ProgramResponse, error) {
	programID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid program ID: %w", err)
	}

	cacheKey := constants.CACHE_KEY_PROGRAM_DETAIL + id

	var cached ProgramResponse
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for program: %s", cacheKey)
		return &cached, nil
	}

	program, err := s.repo.GetByIDWithRelations(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program not found")
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	resp := program.ToResponse()

	if err := SetCache(ctx, s.redisClient, cacheKey, resp, constants.TTL_RETREAT_DETAIL); err != nil {
		log.Printf("Warning: failed to cache program: %v", err)
	}

	return &resp, nil
}

func (s *service) GetPrograms(ctx context.Context, query ProgramListQuery) (*PaginatedPrograms, error) {
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
		constants.CACHE_KEY_PROGRAMS_LIST,
		query.Page, query.Limit, query.NameContains, query.Category, query.Status, query.PropertyID,
	)

	var cached PaginatedPrograms
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for program list: %s", cacheKey)
		return &cached, nil
	}

	rows, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}

	result := &PaginatedPrograms{
		Programs:   toResponses(rows),
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int((totalCount + int64(query.Limit) - 1) / int64(query.Limit)),
	}

	if err := SetCache(ctx, s.redisClient, cacheKey, result, constants.TTL_RETREAT_LIST); err != nil {
		log.Printf("Warning: failed to cache program list: %v", err)
	}

	return result, nil
}

func (s *service) UpdateProgram(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool, req UpdateProgramRequest) (*ProgramResponse, error) {
	program, err := s.ownedProgram(ctx, id, hostID, isAdmin)
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
		if err := s.repo.Update(ctx, program.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update program: %w", err)
		}
	}

	s.invalidateCaches(ctx)

	updated, err := s.repo.GetByIDWithRelations(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload program: %w", err)
	}

	resp := updated.ToResponse()
	return &resp, nil
}

func (s *service) DeleteProgram(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) error {
	program, err := s.ownedProgram(ctx, id, hostID, isAdmin)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, program.ID); err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) CreateInstance(ctx context.Context, programID string, hostID uuid.UUID, isAdmin bool, req CreateInstanceRequest) (*ProgramInstance, error) {
	program, err := s.ownedProgram(ctx, programID, hostID, isAdmin)
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

	instance := &ProgramInstance{
		ID:             uuid.New(),
		ProgramID:      program.ID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Capacity:       req.Capacity,
		AvailableSlots: availableSlots,
		IsFull:         availableSlots == 0,
	}

	if err := s.repo.CreateInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to create program instance: %w", err)
	}

	s.invalidateCaches(ctx)
	return instance, nil
}

func (s *service) UpdateInstance(ctx context.Context, instanceID string, hostID uuid.UUID, isAdmin bool, req UpdateInstanceRequest) (*ProgramInstance, error) {
	id, err := uuid.Parse(instanceID)
	if err != nil {
		return nil, fmt.Errorf("invalid instance ID: %w", err)
	}

	instance, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program instance not found")
		}
		return nil, fmt.Errorf("failed to get program instance: %w", err)
	}

	if _, err := s.ownedProgram(ctx, instance.ProgramID.String(), hostID, isAdmin); err != nil {
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
			return nil, fmt.Errorf("failed to update program instance: %w", err)
		}
	}

	s.invalidateCaches(ctx)

	updated, err := s.repo.GetInstanceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload program instance: %w", err)
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
			return fmt.Errorf("program instance not found")
		}
		return fmt.Errorf("failed to get program instance: %w", err)
	}

	if _, err := s.ownedProgram(ctx, instance.ProgramID.String(), hostID, isAdmin); err != nil {
		return err
	}

	if err := s.repo.DeleteInstance(ctx, id); err != nil {
		return fmt.Errorf("failed to delete program instance: %w", err)
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) GetInstances(ctx context.Context, programID string) ([]ProgramInstance, error) {
	id, err := uuid.Parse(programID)
	if err != nil {
		return nil, fmt.Errorf("invalid program ID: %w", err)
	}

	instances, err := s.repo.GetInstancesByProgramID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list program instances: %w", err)
	}
	return instances, nil
}

// ownedProgram loads a program and enforces ownership through its property
func (s *service) ownedProgram(ctx context.Context, id string, hostID uuid.UUID, isAdmin bool) (*Program, error) {
	programID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid program ID: %w", err)
	}

	program, err := s.repo.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("program not found")
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	if !isAdmin {
		property, err := s.propertyRepo.GetByID(ctx, program.PropertyID)
		if err != nil {
			return nil, fmt.Errorf("failed to get property: %w", err)
		}
		if property.HostID != hostID {
			return nil, ErrNotOwner
		}
	}

	return program, nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if err := InvalidateProgramCache(ctx, s.redisClient); err != nil {
		log.Printf("Warning: failed to invalidate program caches: %v", err)
	}
}

func toResponses(rows []Program) []ProgramResponse {
	result := make([]ProgramResponse, len(rows))
	for i := range rows {
		result[i] = rows[i].ToResponse()
	}
	return result
}
