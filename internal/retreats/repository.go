package retreats

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNoSlots = errors.New("no available slots")

type Repository interface {
	Create(ctx context.Context, retreat *Retreat) error
	GetByID(ctx context.Context, id uuid.UUID) (*Retreat, error)
	GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*Retreat, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, query RetreatListQuery) ([]Retreat, int64, error)
	GetPublishedWithProperty(ctx context.Context) ([]Retreat, error)

	CreateInstance(ctx context.Context, instance *RetreatInstance) error
	GetInstanceByID(ctx context.Context, id uuid.UUID) (*RetreatInstance, error)
	UpdateInstance(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	DeleteInstance(ctx context.Context, id uuid.UUID) error
	GetInstancesByRetreatID(ctx context.Context, retreatID uuid.UUID) ([]RetreatInstance, error)
	DecrementSlots(ctx context.Context, tx *gorm.DB, instanceID uuid.UUID, count int) error
	RestoreSlots(ctx context.Context, tx *gorm.DB, instanceID uuid.UUID, count int) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, retreat *Retreat) error {
	return r.db.WithContext(ctx).Create(retreat).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Retreat, error) {
	var retreat Retreat
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&retreat).Error
	if err != nil {
		return nil, err
	}
	return &retreat, nil
}

func (r *repository) GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*Retreat, error) {
	var retreat Retreat
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Images").
		Preload("Instances", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Where("id = ?", id).
		First(&retreat).Error
	if err != nil {
		return nil, err
	}
	return &retreat, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Retreat{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("retreat_id = ?", id).Delete(&RetreatInstance{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Retreat{}).Error
	})
}

func (r *repository) GetAll(ctx context.Context, query RetreatListQuery) ([]Retreat, int64, error) {
	db := r.db.WithContext(ctx).Model(&Retreat{})

	if query.NameContains != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.NameContains)+"%")
	}
	if query.Category != "" {
		db = db.Where("category = ?", query.Category)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}
	if query.PropertyID != "" {
		db = db.Where("property_id = ?", query.PropertyID)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit

	var result []Retreat
	err := db.
		Preload("Property").
		Preload("Instances", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_date ASC")
		}).
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error
	if err != nil {
		return nil, 0, err
	}

	return result, totalCount, nil
}

func (r *repository) GetPublishedWithProperty(ctx context.Context) ([]Retreat, error) {
	var result []Retreat
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Images").
		Where("status = ?", StatusPublished).
		Find(&result).Error
	return result, err
}

func (r *repository) CreateInstance(ctx context.Context, instance *RetreatInstance) error {
	return r.db.WithContext(ctx).Create(instance).Error
}

func (r *repository) GetInstanceByID(ctx context.Context, id uuid.UUID) (*RetreatInstance, error) {
	var instance RetreatInstance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

func (r *repository) UpdateInstance(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&RetreatInstance{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) DeleteInstance(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&RetreatInstance{}).Error
}

func (r *repository) GetInstancesByRetreatID(ctx context.Context, retreatID uuid.UUID) ([]RetreatInstance, error) {
	var result []RetreatInstance
	err := r.db.WithContext(ctx).
		Where("retreat_id = ?", retreatID).
		Order("start_date ASC").
		Find(&result).Error
	return result, err
}

// DecrementSlots atomically takes count slots from an instance and flips
// is_full when the last slot goes. Runs inside the caller's transaction so a
// booking insert and the slot change commit together.
func (r *repository) DecrementSlots(ctx context.Context, tx *gorm.DB, instanceID uuid.UUID, count int) error {
	result := tx.WithContext(ctx).Model(&RetreatInstance{}).
		Where("id = ? AND available_slots >= ?", instanceID, count).
		Updates(map[string]interface{}{
			"available_slots": gorm.Expr("available_slots - ?", count),
			"is_full":         gorm.Expr("available_slots - ? = 0", count),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoSlots
	}
	return nil
}

// RestoreSlots gives count slots back, capped at capacity, and clears is_full.
func (r *repository) RestoreSlots(ctx context.Context, tx *gorm.DB, instanceID uuid.UUID, count int) error {
	return tx.WithContext(ctx).Model(&RetreatInstance{}).
		Where("id = ?", instanceID).
		Updates(map[string]interface{}{
			"available_slots": gorm.Expr("LEAST(available_slots + ?, capacity)", count),
			"is_full":         gorm.Expr("LEAST(available_slots + ?, capacity) = 0", count),
		}).Error
}
