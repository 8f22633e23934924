package programs

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
	program     *Program
	instance    *ProgramInstance
	created     *ProgramInstance
	lastUpdates map[string]interface{}
}

func (r *stubRepository) GetByID(ctx context.Context, id uuid.UUID) (*Program, error) {
	if r.program == nil || r.program.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.program, nil
}

func (r *stubRepository) CreateInstance(ctx context.Context, instance *ProgramInstance) error {
	r.created = instance
	return nil
}

func (r *stubRepository) GetInstanceByID(ctx context.Context, id uuid.UUID) (*ProgramInstance, error) {
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
	programID := uuid.New()

	repo := &stubRepository{
		program: &Program{ID: programID, PropertyID: propertyID, Status: StatusPublished},
	}
	propertyRepo := &stubPropertyRepository{
		property: &properties.Property{ID: propertyID, HostID: hostID},
	}

	return repo, NewService(repo, propertyRepo, &config.Config{}), hostID, programID
}

func intPtr(n int) *int { return &n }

func TestCreateInstanceSlotInvariant(t *testing.T) {
	start := time.Now().AddDate(0, 1, 0)
	end := start.AddDate(0, 1, 7)

	tests := []struct {
		name      string
		capacity  int
		available *int
		wantSlots int
		wantFull  bool
		wantErr   bool
	}{
		{"slots default to capacity", 8, nil, 8, false, false},
		{"explicit zero slots marks full", 8, intPtr(0), 0, true, false},
		{"partial slots not full", 8, intPtr(5), 5, false, false},
		{"slots above capacity rejected", 8, intPtr(9), 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc, hostID, programID := newInstanceFixture()

			instance, err := svc.CreateInstance(context.Background(), programID.String(), hostID, false, CreateInstanceRequest{
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
			capacity:     8, slots: 2,
			req:          UpdateInstanceRequest{AvailableSlots: intPtr(0)},
			wantSlotKeys: true, wantSlots: 0, wantFull: true,
		},
		{
			name:         "restoring slots clears is_full",
			capacity:     8, slots: 0, full: true,
			req:          UpdateInstanceRequest{AvailableSlots: intPtr(2)},
			wantSlotKeys: true, wantSlots: 2, wantFull: false,
		},
		{
			name:     "capacity below current slots rejected",
			capacity: 8, slots: 5,
			req:     UpdateInstanceRequest{Capacity: intPtr(4)},
			wantErr: true,
		},
		{
			name:     "slots above capacity rejected",
			capacity: 8, slots: 5,
			req:     UpdateInstanceRequest{AvailableSlots: intPtr(9)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc, hostID, programID := newInstanceFixture()
			instanceID := uuid.New()
			repo.instance = &ProgramInstance{
				ID:             instanceID,
				ProgramID:      programID,
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
		})
	}
}
