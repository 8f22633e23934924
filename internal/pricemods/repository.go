package pricemods

import (
	"context"
	"errors"

	"retreatly/internal/programs"
	"retreatly/internal/retreats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, mod *PriceMod) error
	GetByID(ctx context.Context, id uuid.UUID) (*PriceMod, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, page, limit int) ([]PriceMod, int64, error)

	// CollectPriceMods runs a single OR query across the association columns.
	// A row matching several filters still comes back once.
	CollectPriceMods(ctx context.Context, ids RelatedIDs) ([]PriceMod, error)

	// ResolveRelatedIDs walks instance -> parent -> property. A missing
	// instance yields (nil, nil), not an error.
	ResolveRelatedIDs(ctx context.Context, instanceID uuid.UUID, kind Kind) (*ResolvedIDs, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, mod *PriceMod) error {
	return r.db.WithContext(ctx).Create(mod).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*PriceMod, error) {
	var mod PriceMod
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&mod).Error
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&PriceMod{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&PriceMod{}).Error
}

func (r *repository) GetAll(ctx context.Context, page, limit int) ([]PriceMod, int64, error) {
	db := r.db.WithContext(ctx).Model(&PriceMod{})

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var result []PriceMod
	err := db.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, 0, err
	}

	return result, totalCount, nil
}

func (r *repository) CollectPriceMods(ctx context.Context, ids RelatedIDs) ([]PriceMod, error) {
	if ids.IsEmpty() {
		return []PriceMod{}, nil
	}

	db := r.db.WithContext(ctx).Model(&PriceMod{})

	conditions := r.db.Where("1 = 0")
	if ids.PropertyID != nil {
		conditions = conditions.Or("property_id = ?", *ids.PropertyID)
	}
	if ids.RetreatID != nil {
		conditions = conditions.Or("retreat_id = ?", *ids.RetreatID)
	}
	if ids.ProgramID != nil {
		conditions = conditions.Or("program_id = ?", *ids.ProgramID)
	}
	if ids.RetreatInstanceID != nil {
		conditions = conditions.Or("retreat_instance_id = ?", *ids.RetreatInstanceID)
	}
	if ids.ProgramInstanceID != nil {
		conditions = conditions.Or("program_instance_id = ?", *ids.ProgramInstanceID)
	}

	var result []PriceMod
	err := db.Where(conditions).Order("created_at ASC").Find(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *repository) ResolveRelatedIDs(ctx context.Context, instanceID uuid.UUID, kind Kind) (*ResolvedIDs, error) {
	switch kind {
	case KindRetreat:
		var instance retreats.RetreatInstance
		err := r.db.WithContext(ctx).Where("id = ?", instanceID).First(&instance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}

		var retreat retreats.Retreat
		if err := r.db.WithContext(ctx).Where("id = ?", instance.RetreatID).First(&retreat).Error; err != nil {
			return nil, err
		}

		return &ResolvedIDs{
			InstanceID: instance.ID,
			ParentID:   retreat.ID,
			PropertyID: retreat.PropertyID,
		}, nil

	case KindProgram:
		var instance programs.ProgramInstance
		err := r.db.WithContext(ctx).Where("id = ?", instanceID).First(&instance).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, err
		}

		var program programs.Program
		if err := r.db.WithContext(ctx).Where("id = ?", instance.ProgramID).First(&program).Error; err != nil {
			return nil, err
		}

		return &ResolvedIDs{
			InstanceID: instance.ID,
			ParentID:   program.ID,
			PropertyID: program.PropertyID,
		}, nil

	default:
		return nil, errors.New("unknown instance kind")
	}
}
