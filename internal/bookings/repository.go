package bookings

import (
	"context"

	"retreatly/internal/users"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status Status) error
	GetByUserID(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	GetByPropertyID(ctx context.Context, propertyID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*users.User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *gorm.DB, booking *Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, status Status) error {
	return tx.WithContext(ctx).Model(&Booking{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	return r.list(ctx, query, "user_id = ?", userID)
}

func (r *repository) GetByPropertyID(ctx context.Context, propertyID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	return r.list(ctx, query, "property_id = ?", propertyID)
}

func (r *repository) list(ctx context.Context, query BookingListQuery, cond string, arg interface{}) ([]Booking, int64, error) {
	db := r.db.WithContext(ctx).Model(&Booking{}).Where(cond, arg)
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var totalCount int64
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var result []Booking
	err := db.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&result).Error
	if err != nil {
		return nil, 0, err
	}

	return result, totalCount, nil
}

func (r *repository) GetUser(ctx context.Context, id uuid.UUID) (*users.User, error) {
	var user users.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
