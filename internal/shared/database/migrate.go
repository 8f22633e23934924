package database

import (
	"fmt"

	"retreatly/internal/bookings"
	"retreatly/internal/pricemods"
	"retreatly/internal/programs"
	"retreatly/internal/properties"
	"retreatly/internal/retreats"
	"retreatly/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Models default their primary keys to uuid_generate_v4()
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&users.User{},
		&properties.Property{},
		&properties.Room{},
		&properties.Image{},
		&properties.Amenity{},
		&retreats.Retreat{},
		&retreats.RetreatInstance{},
		&programs.Program{},
		&programs.ProgramInstance{},
		&pricemods.PriceMod{},
		&bookings.Booking{},
	)
}
