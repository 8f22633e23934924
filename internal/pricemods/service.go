package pricemods

import (
	"context"
	"errors"
	"fmt"
	"log"

	"retreatly/internal/shared/constants"
	"retreatly/pkg/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrMultipleAttachments = errors.New("a price mod can be attached to at most one entity")

type Service interface {
	CreatePriceMod(ctx context.Context, req CreatePriceModRequest) (*PriceMod, error)
	GetPriceModByID(ctx context.Context, id string) (*PriceMod, error)
	GetPriceMods(ctx context.Context, query PriceModListQuery) ([]PriceMod, int64, error)
	UpdatePriceMod(ctx context.Context, id string, req UpdatePriceModRequest) (*PriceMod, error)
	DeletePriceMod(ctx context.Context, id string) error

	// GetAllPriceMods resolves the ancestor chain of an instance, collects
	// every attached mod and returns them sorted. Failures come back inside
	// the Result, never as an error.
	GetAllPriceMods(ctx context.Context, instanceID string, kind Kind) Result
}

type service struct {
	repo        Repository
	redisClient *redis.Client
}

func NewService(repo Repository) Service {
	return &service{
		repo:        repo,
		redisClient: cache.Client(),
	}
}

func (s *service) CreatePriceMod(ctx context.Context, req CreatePriceModRequest) (*PriceMod, error) {
	attachments := 0
	for _, raw := range []*string{req.HostID, req.PropertyID, req.RetreatID, req.ProgramID, req.RetreatInstanceID, req.ProgramInstanceID} {
		if raw != nil {
			attachments++
		}
	}
	if attachments > 1 {
		return nil, ErrMultipleAttachments
	}

	mod := &PriceMod{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Type:        ModType(req.Type),
		Value:       req.Value,
	}

	var err error
	if mod.HostID, err = parseOptionalUUID(req.HostID); err != nil {
		return nil, err
	}
	if mod.PropertyID, err = parseOptionalUUID(req.PropertyID); err != nil {
		return nil, err
	}
	if mod.RetreatID, err = parseOptionalUUID(req.RetreatID); err != nil {
		return nil, err
	}
	if mod.ProgramID, err = parseOptionalUUID(req.ProgramID); err != nil {
		return nil, err
	}
	if mod.RetreatInstanceID, err = parseOptionalUUID(req.RetreatInstanceID); err != nil {
		return nil, err
	}
	if mod.ProgramInstanceID, err = parseOptionalUUID(req.ProgramInstanceID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, mod); err != nil {
		return nil, fmt.Errorf("failed to create price mod: %w", err)
	}

	s.invalidateCaches(ctx)
	return mod, nil
}

func (s *service) GetPriceModByID(ctx context.Context, id string) (*PriceMod, error) {
	modID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid price mod ID: %w", err)
	}

	mod, err := s.repo.GetByID(ctx, modID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("price mod not found")
		}
		return nil, fmt.Errorf("failed to get price mod: %w", err)
	}
	return mod, nil
}

func (s *service) GetPriceMods(ctx context.Context, query PriceModListQuery) ([]PriceMod, int64, error) {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	mods, totalCount, err := s.repo.GetAll(ctx, query.Page, query.Limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list price mods: %w", err)
	}
	return mods, totalCount, nil
}

func (s *service) UpdatePriceMod(ctx context.Context, id string, req UpdatePriceModRequest) (*PriceMod, error) {
	modID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid price mod ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, modID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("price mod not found")
		}
		return nil, fmt.Errorf("failed to get price mod: %w", err)
	}

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Value != nil {
		updates["value"] = *req.Value
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, modID, updates); err != nil {
			return nil, fmt.Errorf("failed to update price mod: %w", err)
		}
	}

	s.invalidateCaches(ctx)

	return s.repo.GetByID(ctx, modID)
}

func (s *service) DeletePriceMod(ctx context.Context, id string) error {
	modID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid price mod ID: %w", err)
	}

	if _, err := s.repo.GetByID(ctx, modID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("price mod not found")
		}
		return fmt.Errorf("failed to get price mod: %w", err)
	}

	if err := s.repo.Delete(ctx, modID); err != nil {
		return fmt.Errorf("failed to delete price mod: %w", err)
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *service) GetAllPriceMods(ctx context.Context, instanceID string, kind Kind) Result {
	id, err := uuid.Parse(instanceID)
	if err != nil {
		return Result{OK: false, Error: fmt.Sprintf("%s instance not found", kind)}
	}

	cacheKey := constants.BuildPriceModsKey(string(kind), instanceID)

	var cached Result
	if err := GetCache(ctx, s.redisClient, cacheKey, &cached); err == nil {
		log.Printf("Cache HIT for price mods: %s", cacheKey)
		return cached
	}

	resolved, err := s.repo.ResolveRelatedIDs(ctx, id, kind)
	if err != nil {
		log.Printf("Error resolving related IDs for %s instance %s: %v", kind, instanceID, err)
		return Result{OK: false, Error: "failed to resolve price mods"}
	}
	if resolved == nil {
		return Result{OK: false, Error: fmt.Sprintf("%s instance not found", kind)}
	}

	ids := RelatedIDs{PropertyID: &resolved.PropertyID}
	data := &ResolvedPriceMods{PropertyID: resolved.PropertyID.String()}
	switch kind {
	case KindRetreat:
		ids.RetreatID = &resolved.ParentID
		ids.RetreatInstanceID = &resolved.InstanceID
		data.RetreatID = resolved.ParentID.String()
	case KindProgram:
		ids.ProgramID = &resolved.ParentID
		ids.ProgramInstanceID = &resolved.InstanceID
		data.ProgramID = resolved.ParentID.String()
	}

	mods, err := s.repo.CollectPriceMods(ctx, ids)
	if err != nil {
		log.Printf("Error collecting price mods for %s instance %s: %v", kind, instanceID, err)
		return Result{OK: false, Error: "failed to collect price mods"}
	}

	data.AllPriceMods = SortPriceMods(TagSources(mods))

	result := Result{OK: true, Data: data}

	if err := SetCache(ctx, s.redisClient, cacheKey, result, constants.TTL_PRICE_MODS); err != nil {
		log.Printf("Warning: failed to cache price mods: %v", err)
	}

	return result
}

func (s *service) invalidateCaches(ctx context.Context) {
	if err := InvalidatePriceModCache(ctx, s.redisClient); err != nil {
		log.Printf("Warning: failed to invalidate price mod caches: %v", err)
	}
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid ID %q: %w", *raw, err)
	}
	return &id, nil
}
