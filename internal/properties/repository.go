package properties

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, property *Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*Property, error)
	GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*Property, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, query PropertyListQuery) ([]Property, int64, error)
	GetByHostID(ctx context.Context, hostID uuid.UUID) ([]Property, error)
	GetPublishedWithCoordinates(ctx context.Context) ([]Property, error)
	ReplaceAmenities(ctx context.Context, property *Property, amenityIDs []uuid.UUID) error

	CreateRoom(ctx context.Context, room *Room) error
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	CreateImage(ctx context.Context, image *Image) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
	CreateAmenity(ctx context.Context, amenity *Amenity) error
	GetAmenities(ctx context.Context) ([]Amenity, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, property *Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	var property Property
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *repository) GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*Property, error) {
	var property Property
	err := r.db.WithContext(ctx).
		Preload("Rooms").
		Preload("Images").
		Preload("Amenities").
		Where("id = ?", id).
		First(&property).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Property{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&Room{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&Image{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Property{}).Error
	})
}

func (r *repository) GetAll(ctx context.Context, query PropertyListQuery) ([]Property, int64, error) {
	db := r.db.WithContext(ctx).Model(&Property{})

	if query.NameContains != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.NameContains)+"%")
	}
	if query.Country != "" {
		db = db.Where("country = ?", strings.ToUpper(query.Country))
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit

	var result []Property
	err := db.
		Preload("Images").
		Preload("Amenities").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error
	if err != nil {
		return nil, 0, err
	}

	return result, totalCount, nil
}

func (r *repository) GetByHostID(ctx context.Context, hostID uuid.UUID) ([]Property, error) {
	var result []Property
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&result).Error
	return result, err
}

func (r *repository) GetPublishedWithCoordinates(ctx context.Context) ([]Property, error) {
	var result []Property
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("status = ?", StatusPublished).
		Where("lat IS NOT NULL AND lng IS NOT NULL").
		Find(&result).Error
	return result, err
}

func (r *repository) ReplaceAmenities(ctx context.Context, property *Property, amenityIDs []uuid.UUID) error {
	var amenities []Amenity
	if len(amenityIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", amenityIDs).Find(&amenities).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Model(property).Association("Amenities").Replace(amenities)
}

func (r *repository) CreateRoom(ctx context.Context, room *Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *repository) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Room{}).Error
}

func (r *repository) CreateImage(ctx context.Context, image *Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *repository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&Image{}).Error
}

func (r *repository) CreateAmenity(ctx context.Context, amenity *Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *repository) GetAmenities(ctx context.Context) ([]Amenity, error) {
	var result []Amenity
	err := r.db.WithContext(ctx).Order("name ASC").Find(&result).Error
	return result, err
}
