package retreats

import (
	"context"
	"testing"
	"time"

	"retreatly/internal/properties"
	"retreatly/internal/shared/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type stubRepository struct {
	Repository
	retreat     *Retreat
	instance    *RetreatInstance
	created     *RetreatInstance
	lastUpdates map[string]interface{}
}

func (r *stubRepository) GetByID(ctx context.Context, id uuid.UUID) (*Retreat, error) {
	if r.retreat == nil || r.retreat.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.retreat, nil
}

func (r *stubRepository) CreateInstance(ctx context.Context, instance *RetreatInstance) error {
	r.created = instance
	return nil
}

func (r *stubRepository) GetInstanceByID(ctx context.Context, id uuid.UUID) (*RetreatInstance, error) {
	if r.instance == nil || r.instance.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.instance, nil
}

func (r *stubRepository) UpdateInstance(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	r.lastUpdates = updates
	return nil
}

type stubPropertyRepository struct {
	properties.Repository
	property *properties.Property
}

func (r *stubPropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*properties.Property, error) {
	if r.property == nil || r.property.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.property, nil
}

func newInstanceFixture() (*stubRepository, Service, uuid.UUID, uuid.UUID) {
	hostID := uuid.New()
	propertyID := uuid.New()
	retreatID := uuid.New()

	repo := &stubRepository{
		retreat: &Retreat{ID: retreatID, PropertyID: propertyID, Status: StatusPublished},
	}
	propertyRepo := &stubPropertyRepository{
		property: &properties.Property{ID: propertyID, HostID: hostID},
	}

	return repo, NewService(repo, propertyRepo, &config.Config{}), hostID, retreatID
}

func intPtr(n int) *int { return &n }

func TestCreateInstanceSlotInvariant(t *testing.T) {
	start := time.Now().AddDate(0, 1, 0)
	end := start.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		capacity  int
		available *int
		wantSlots int
		wantFull  bool
		wantErr   bool
	}{
		{"slots default to capacity", 10, nil, 10, false, false},
		{"explicit zero slots marks full", 10, intPtr(0), 0, true, false},
		{"partial slots not full", 10, intPtr(4), 4, false, false},
		{"slots equal to capacity not full", 10, intPtr(10), 10, false, false},
		{"slots above capacity rejected", 10, intPtr(11), 0, false, true},
		{"capacity one with zero slots marks full", 1, intPtr(0), 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc, hostID, retreatID := newInstanceFixture()

			instance, err := svc.CreateInstance(context.Background(), retreatID.String(), hostID, false, CreateInstanceRequest{
				StartDate:      start,
				EndDate:        end,
				Capacity:       tt.capacity,
				AvailableSlots: tt.available,
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("CreateInstance() expected error, got nil")
				}
				if repo.created != nil {
					t.Error("instance was persisted despite validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateInstance() error = %v", err)
			}

			if instance.AvailableSlots != tt.wantSlots {
				t.Errorf("AvailableSlots = %d, want %d", instance.AvailableSlots, tt.wantSlots)
			}
			if instance.IsFull != tt.wantFull {
				t.Errorf("IsFull = %v, want %v", instance.IsFull, tt.wantFull)
			}
			if instance.IsFull != (instance.AvailableSlots == 0) {
				t.Errorf("IsFull = %v disagrees with AvailableSlots = %d", instance.IsFull, instance.AvailableSlots)
			}
			if repo.created == nil {
				t.Fatal("instance was not persisted")
			}
		})
	}
}

func TestUpdateInstanceSlotInvariant(t *testing.T) {
	tests := []struct {
		name         string
		capacity     int
		slots        int
		full         bool
		req          UpdateInstanceRequest
		wantErr      bool
		wantSlotKeys bool
		wantSlots    int
		wantFull     bool
	}{
		{
			name:         "draining the last slots flips is_full",
			capacity:     10, slots: 4,
			req:          UpdateInstanceRequest{AvailableSlots: intPtr(0)},
			wantSlotKeys: true, wantSlots: 0, wantFull: true,
		},
		{
			name:         "restoring slots clears is_full",
			capacity:     10, slots: 0, full: true,
			req:          UpdateInstanceRequest{AvailableSlots: intPtr(3)},
			wantSlotKeys: true, wantSlots: 3, wantFull: false,
		},
		{
			name:         "capacity-only change rewrites slot columns",
			capacity:     10, slots: 4,
			req:          UpdateInstanceRequest{Capacity: intPtr(6)},
			wantSlotKeys: true, wantSlots: 4, wantFull: false,
		},
		{
			name:     "capacity below current slots rejected",
			capacity: 10, slots: 4,
			req:     UpdateInstanceRequest{Capacity: intPtr(3)},
			wantErr: true,
		},
		{
			name:     "slots above capacity rejected",
			capacity: 10, slots: 4,
			req:     UpdateInstanceRequest{AvailableSlots: intPtr(11)},
			wantErr: true,
		},
		{
			name:     "date-only update leaves slot columns alone",
			capacity: 10, slots: 4,
			req:      UpdateInstanceRequest{StartDate: timePtr(time.Now().AddDate(0, 2, 0))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc, hostID, retreatID := newInstanceFixture()
			instanceID := uuid.New()
			repo.instance = &RetreatInstance{
				ID:             instanceID,
				RetreatID:      retreatID,
				Capacity:       tt.capacity,
				AvailableSlots: tt.slots,
				IsFull:         tt.full,
			}

			_, err := svc.UpdateInstance(context.Background(), instanceID.String(), hostID, false, tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("UpdateInstance() expected error, got nil")
				}
				if repo.lastUpdates != nil {
					t.Error("update was persisted despite validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateInstance() error = %v", err)
			}

			slots, slotsSet := repo.lastUpdates["available_slots"]
			full, fullSet := repo.lastUpdates["is_full"]
			if slotsSet != tt.wantSlotKeys || fullSet != tt.wantSlotKeys {
				t.Fatalf("slot columns written = (%v, %v), want %v", slotsSet, fullSet, tt.wantSlotKeys)
			}
			if !tt.wantSlotKeys {
				return
			}
			if slots != tt.wantSlots {
				t.Errorf("available_slots = %v, want %d", slots, tt.wantSlots)
			}
			if full != tt.wantFull {
				t.Errorf("is_full = %v, want %v", full, tt.wantFull)
			}
			if full.(bool) != (slots.(int) == 0) {
				t.Errorf("is_full = %v disagrees with available_slots = %v", full, slots)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
