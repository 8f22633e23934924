package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"retreatly/internal/pricemods"
	"retreatly/internal/programs"
	"retreatly/internal/properties"
	"retreatly/internal/retreats"
	"retreatly/internal/shared/config"
	"retreatly/internal/shared/database"
	"retreatly/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Retreatly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"bookings",
		"price_mods",
		"retreat_instances",
		"program_instances",
		"retreats",
		"programs",
		"property_amenities",
		"rooms",
		"images",
		"amenities",
		"properties",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	amenityIDs, err := s.SeedAmenities()
	if err != nil {
		return fmt.Errorf("failed to seed amenities: %w", err)
	}

	propertyIDs, err := s.SeedProperties(userIDs["host"], amenityIDs)
	if err != nil {
		return fmt.Errorf("failed to seed properties: %w", err)
	}

	retreatInstanceIDs, retreatIDs, err := s.SeedRetreats(propertyIDs)
	if err != nil {
		return fmt.Errorf("failed to seed retreats: %w", err)
	}

	programInstanceIDs, programIDs, err := s.SeedPrograms(propertyIDs)
	if err != nil {
		return fmt.Errorf("failed to seed programs: %w", err)
	}

	if err := s.SeedPriceMods(propertyIDs, retreatIDs, programIDs, retreatInstanceIDs, programInstanceIDs); err != nil {
		return fmt.Errorf("failed to seed price mods: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 4 users: 1 admin, 1 host and 2 guests
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@retreatly.app", users.RoleAdmin},
		{"host", "Hana", "Watanabe", "hana@retreatly.app", users.RoleHost},
		{"guest1", "Sam", "Rivera", "sam@retreatly.app", users.RoleGuest},
		{"guest2", "Priya", "Nair", "priya@retreatly.app", users.RoleGuest},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedAmenities creates the shared amenity catalog
func (s *Seeder) SeedAmenities() ([]uuid.UUID, error) {
	fmt.Println("  🏷️ Seeding amenities...")

	var amenityIDs []uuid.UUID

	amenitiesData := []struct {
		name string
		icon string
	}{
		{"Pool", "pool"},
		{"Sauna", "sauna"},
		{"Wifi", "wifi"},
		{"Yoga Studio", "yoga"},
		{"Organic Kitchen", "kitchen"},
		{"Beach Access", "beach"},
	}

	for _, amenityData := range amenitiesData {
		amenity := properties.Amenity{
			ID:        uuid.New(),
			Name:      amenityData.name,
			Icon:      amenityData.icon,
			CreatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&amenity).Error; err != nil {
			return nil, fmt.Errorf("failed to create amenity %s: %w", amenity.Name, err)
		}

		amenityIDs = append(amenityIDs, amenity.ID)
		fmt.Printf("    ✅ Created amenity: %s\n", amenity.Name)
	}

	return amenityIDs, nil
}

// SeedProperties creates published properties spread across continents so
// both radius and continent searches return something interesting
func (s *Seeder) SeedProperties(hostID uuid.UUID, amenityIDs []uuid.UUID) ([]uuid.UUID, error) {
	fmt.Println("  🏡 Seeding properties...")

	var propertyIDs []uuid.UUID

	propertiesData := []struct {
		name           string
		description    string
		city           string
		country        string
		lat            float64
		lng            float64
		amenityIndexes []int
	}{
		{
			name:           "Bamboo Forest Lodge",
			description:    "Quiet lodge on the edge of the Arashiyama bamboo grove.",
			city:           "Kyoto",
			country:        "JP",
			lat:            35.0116, lng: 135.7681,
			amenityIndexes: []int{1, 2, 3},
		},
		{
			name:           "Jungle Ridge Sanctuary",
			description:    "Hillside sanctuary above the old city with open-air studios.",
			city:           "Chiang Mai",
			country:        "TH",
			lat:            18.7883, lng: 98.9853,
			amenityIndexes: []int{0, 2, 3, 4},
		},
		{
			name:           "Rice Terrace Villa",
			description:    "Villa overlooking the Tegallalang terraces.",
			city:           "Ubud",
			country:        "ID",
			lat:            -8.5069, lng: 115.2625,
			amenityIndexes: []int{0, 2, 4},
		},
		{
			name:           "Caribbean Cliff House",
			description:    "Clifftop house with a private path down to the beach.",
			city:           "Tulum",
			country:        "MX",
			lat:            20.2114, lng: -87.4654,
			amenityIndexes: []int{0, 2, 5},
		},
		{
			name:           "Atlantic Dune Retreat",
			description:    "Dune-side retreat house on the southern coast.",
			city:           "Lagos",
			country:        "PT",
			lat:            37.1028, lng: -8.6742,
			amenityIndexes: []int{2, 4, 5},
		},
	}

	for _, propertyData := range propertiesData {
		lat := propertyData.lat
		lng := propertyData.lng
		property := properties.Property{
			ID:          uuid.New(),
			HostID:      hostID,
			Name:        propertyData.name,
			Description: propertyData.description,
			City:        propertyData.city,
			Country:     propertyData.country,
			Lat:         &lat,
			Lng:         &lng,
			Status:      properties.StatusPublished,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&property).Error; err != nil {
			return nil, fmt.Errorf("failed to create property %s: %w", property.Name, err)
		}

		for _, amenityIndex := range propertyData.amenityIndexes {
			if amenityIndex < len(amenityIDs) {
				if err := s.db.PostgreSQL.Exec(
					"INSERT INTO property_amenities (property_id, amenity_id) VALUES (?, ?)",
					property.ID, amenityIDs[amenityIndex],
				).Error; err != nil {
					return nil, fmt.Errorf("failed to attach amenity to %s: %w", property.Name, err)
				}
			}
		}

		room := properties.Room{
			ID:         uuid.New(),
			PropertyID: property.ID,
			Name:       "Garden Room",
			Capacity:   2,
			BedCount:   1,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&room).Error; err != nil {
			return nil, fmt.Errorf("failed to create room for %s: %w", property.Name, err)
		}

		image := properties.Image{
			ID:         uuid.New(),
			PropertyID: property.ID,
			URL:        fmt.Sprintf("https://images.retreatly.app/%s/cover.jpg", property.ID),
			Alt:        property.Name,
			Position:   0,
			CreatedAt:  time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&image).Error; err != nil {
			return nil, fmt.Errorf("failed to create image for %s: %w", property.Name, err)
		}

		propertyIDs = append(propertyIDs, property.ID)
		fmt.Printf("    ✅ Created property: %s (%s, %s)\n", property.Name, property.City, property.Country)
	}

	return propertyIDs, nil
}

// SeedRetreats creates a published retreat with two instances per property
func (s *Seeder) SeedRetreats(propertyIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	fmt.Println("  🧘 Seeding retreats...")

	var instanceIDs []uuid.UUID
	var retreatIDs []uuid.UUID

	retreatsData := []struct {
		name        string
		description string
		category    string
	}{
		{"Silent Meditation Week", "Seven days of guided silence and zazen.", "meditation"},
		{"Mountain Yoga Escape", "Sunrise vinyasa and forest hikes.", "yoga"},
		{"Jungle Detox", "Plant-based meals and daily breathwork.", "wellness"},
		{"Ocean Breath Retreat", "Freediving-inspired breathwork by the sea.", "breathwork"},
		{"Surf and Restore", "Morning surf, afternoon yin yoga.", "yoga"},
	}

	for i, propertyID := range propertyIDs {
		retreatData := retreatsData[i%len(retreatsData)]

		retreat := retreats.Retreat{
			ID:          uuid.New(),
			PropertyID:  propertyID,
			Name:        retreatData.name,
			Description: retreatData.description,
			Category:    retreatData.category,
			Status:      retreats.StatusPublished,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&retreat).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create retreat %s: %w", retreat.Name, err)
		}
		retreatIDs = append(retreatIDs, retreat.ID)
		fmt.Printf("    ✅ Created retreat: %s\n", retreat.Name)

		for offset := 0; offset < 2; offset++ {
			start := time.Now().AddDate(0, 0, 30+offset*45)
			instance := retreats.RetreatInstance{
				ID:             uuid.New(),
				RetreatID:      retreat.ID,
				StartDate:      start,
				EndDate:        start.AddDate(0, 0, 7),
				Capacity:       12,
				AvailableSlots: 12,
				IsFull:         false,
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}

			if err := s.db.PostgreSQL.Create(&instance).Error; err != nil {
				return nil, nil, fmt.Errorf("failed to create instance for %s: %w", retreat.Name, err)
			}
			instanceIDs = append(instanceIDs, instance.ID)
		}
	}

	return instanceIDs, retreatIDs, nil
}

// SeedPrograms creates a published program with two instances per property
func (s *Seeder) SeedPrograms(propertyIDs []uuid.UUID) ([]uuid.UUID, []uuid.UUID, error) {
	fmt.Println("  📅 Seeding programs...")

	var instanceIDs []uuid.UUID
	var programIDs []uuid.UUID

	programsData := []struct {
		name        string
		description string
		category    string
	}{
		{"Teacher Training 200h", "Eight-week certified yoga teacher training.", "training"},
		{"Permaculture Immersion", "Hands-on regenerative farming program.", "education"},
		{"Writers Residency", "Month-long residency with daily workshops.", "creative"},
		{"Digital Detox Month", "Four weeks offline with structured practice.", "wellness"},
		{"Culinary Apprenticeship", "Farm-to-table cooking apprenticeship.", "education"},
	}

	for i, propertyID := range propertyIDs {
		programData := programsData[i%len(programsData)]

		program := programs.Program{
			ID:          uuid.New(),
			PropertyID:  propertyID,
			Name:        programData.name,
			Description: programData.description,
			Category:    programData.category,
			Status:      programs.StatusPublished,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&program).Error; err != nil {
			return nil, nil, fmt.Errorf("failed to create program %s: %w", program.Name, err)
		}
		programIDs = append(programIDs, program.ID)
		fmt.Printf("    ✅ Created program: %s\n", program.Name)

		for offset := 0; offset < 2; offset++ {
			start := time.Now().AddDate(0, offset+1, 0)
			instance := programs.ProgramInstance{
				ID:             uuid.New(),
				ProgramID:      program.ID,
				StartDate:      start,
				EndDate:        start.AddDate(0, 1, 0),
				Capacity:       8,
				AvailableSlots: 8,
				IsFull:         false,
				CreatedAt:      time.Now(),
				UpdatedAt:      time.Now(),
			}

			if err := s.db.PostgreSQL.Create(&instance).Error; err != nil {
				return nil, nil, fmt.Errorf("failed to create instance for %s: %w", program.Name, err)
			}
			instanceIDs = append(instanceIDs, instance.ID)
		}
	}

	return instanceIDs, programIDs, nil
}

// SeedPriceMods attaches mods at every level so resolution walks a full chain:
// property taxes, retreat/program base prices and fees, plus one instance
// override
func (s *Seeder) SeedPriceMods(propertyIDs, retreatIDs, programIDs, retreatInstanceIDs, programInstanceIDs []uuid.UUID) error {
	fmt.Println("  💰 Seeding price mods...")

	create := func(mod pricemods.PriceMod) error {
		mod.ID = uuid.New()
		mod.CreatedAt = time.Now()
		mod.UpdatedAt = time.Now()
		if err := s.db.PostgreSQL.Create(&mod).Error; err != nil {
			return fmt.Errorf("failed to create price mod %s: %w", mod.Name, err)
		}
		fmt.Printf("    ✅ Created price mod: %s (%s %.2f)\n", mod.Name, mod.Type, mod.Value)
		return nil
	}

	for _, propertyID := range propertyIDs {
		id := propertyID
		if err := create(pricemods.PriceMod{
			Name:       "Local tax",
			Type:       pricemods.TypeTax,
			Value:      8,
			PropertyID: &id,
		}); err != nil {
			return err
		}
	}

	for i, retreatID := range retreatIDs {
		id := retreatID
		if err := create(pricemods.PriceMod{
			Name:      "Retreat base price",
			Type:      pricemods.TypeBasePrice,
			Value:     float64(900 + i*150),
			RetreatID: &id,
		}); err != nil {
			return err
		}
		if err := create(pricemods.PriceMod{
			Name:      "Cleaning fee",
			Type:      pricemods.TypeFee,
			Value:     40,
			RetreatID: &id,
		}); err != nil {
			return err
		}
	}

	for i, programID := range programIDs {
		id := programID
		if err := create(pricemods.PriceMod{
			Name:      "Program base price",
			Type:      pricemods.TypeBasePrice,
			Value:     float64(2400 + i*300),
			ProgramID: &id,
		}); err != nil {
			return err
		}
	}

	// One instance-level override to exercise the source precedence path
	if len(retreatInstanceIDs) > 0 {
		id := retreatInstanceIDs[0]
		if err := create(pricemods.PriceMod{
			Name:              "Early season base price",
			Type:              pricemods.TypeBasePrice,
			Value:             750,
			RetreatInstanceID: &id,
		}); err != nil {
			return err
		}
	}
	if len(programInstanceIDs) > 0 {
		id := programInstanceIDs[0]
		if err := create(pricemods.PriceMod{
			Name:              "Launch cohort discount",
			Type:              pricemods.TypeBaseMod,
			Value:             -200,
			ProgramInstanceID: &id,
		}); err != nil {
			return err
		}
	}

	return nil
}
