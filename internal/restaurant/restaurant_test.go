package restaurant

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/LennyCopeaux/yallo.fr-sub000/internal/apperr"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	restaurants map[string]*Restaurant
}

func NewMockRepository() *MockRepository {
	return &MockRepository{restaurants: make(map[string]*Restaurant)}
}

func (m *MockRepository) Create(ctx context.Context, r *Restaurant) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	r.CreatedAt = time.Now()
	m.restaurants[r.ID] = r
	return nil
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	r, ok := m.restaurants[id]
	if !ok {
		return nil, apperr.NotFound("restaurant not found")
	}
	return r, nil
}

func (m *MockRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, r := range m.restaurants {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRepository) ListAll(ctx context.Context) ([]*Restaurant, error) {
	var out []*Restaurant
	for _, r := range m.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (m *MockRepository) IsOwner(ctx context.Context, restaurantID, userID string) (bool, error) {
	r, ok := m.restaurants[restaurantID]
	return ok && r.OwnerID == userID, nil
}

func (m *MockRepository) UpdateVoiceConfig(ctx context.Context, restaurantID string, cfg *VoiceConfig) error {
	r, ok := m.restaurants[restaurantID]
	if !ok {
		return apperr.NotFound("restaurant not found")
	}
	r.AssistantID = cfg.AssistantID
	r.SystemPrompt = cfg.SystemPrompt
	r.PhoneNumber = cfg.PhoneNumber
	r.TransferPhone = cfg.TransferPhone
	return nil
}

func (m *MockRepository) UpdateBusinessHours(ctx context.Context, restaurantID string, hours *BusinessHours) error {
	r, ok := m.restaurants[restaurantID]
	if !ok {
		return apperr.NotFound("restaurant not found")
	}
	r.BusinessHours = hours
	return nil
}

func (m *MockRepository) UpdateKitchenStatus(ctx context.Context, restaurantID string, status KitchenStatus) error {
	r, ok := m.restaurants[restaurantID]
	if !ok {
		return apperr.NotFound("restaurant not found")
	}
	r.KitchenStatus = status
	return nil
}

func newTestService() (*Service, *MockRepository) {
	repo := NewMockRepository()
	return NewService(repo, zap.NewNop()), repo
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestCreateRestaurant_Success(t *testing.T) {
	service, _ := newTestService()

	r, err := service.CreateRestaurant(context.Background(), "Chez Momo", "+33612345678", "owner-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if r.ID == "" {
		t.Errorf("expected ID to be set")
	}
	if r.KitchenStatus != KitchenNormal {
		t.Errorf("expected kitchen status NORMAL, got %s", r.KitchenStatus)
	}
}

func TestCreateRestaurant_MissingName(t *testing.T) {
	service, _ := newTestService()

	_, err := service.CreateRestaurant(context.Background(), "", "", "owner")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListMyRestaurants(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")
	service.CreateRestaurant(ctx, "Tacos King", "", "owner-123")
	service.CreateRestaurant(ctx, "Pizza Luna", "", "owner-456")

	restaurants, err := service.ListMyRestaurants(ctx, "owner-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}
}

func TestSetKitchenStatus(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	r, _ := service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")

	if err := service.SetKitchenStatus(ctx, r.ID, "owner-123", KitchenRush); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.restaurants[r.ID].KitchenStatus != KitchenRush {
		t.Errorf("status not persisted")
	}
}

func TestSetKitchenStatus_InvalidStatus(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	r, _ := service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")

	err := service.SetKitchenStatus(ctx, r.ID, "owner-123", "PANIC")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSetKitchenStatus_NotOwner(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	r, _ := service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")

	err := service.SetKitchenStatus(ctx, r.ID, "intruder", KitchenCalm)
	if !apperr.IsUnauthorized(err) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
}

func TestUpdateBusinessHours_RequiresTimezone(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	r, _ := service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")

	err := service.UpdateBusinessHours(ctx, r.ID, "owner-123", &BusinessHours{})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestUpdateBusinessHours_SplitService(t *testing.T) {
	service, repo := newTestService()
	ctx := context.Background()

	r, _ := service.CreateRestaurant(ctx, "Chez Momo", "", "owner-123")

	hours := &BusinessHours{
		Timezone: "Europe/Paris",
		Schedule: map[string]DaySchedule{
			"monday": {Open: "11:00", Close: "22:00"},
			"friday": {
				Lunch:  &TimeRange{Open: "11:30", Close: "14:00"},
				Dinner: &TimeRange{Open: "18:30", Close: "23:00"},
			},
		},
	}

	if err := service.UpdateBusinessHours(ctx, r.ID, "owner-123", hours); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved := repo.restaurants[r.ID].BusinessHours
	if saved == nil || saved.Schedule["friday"].Lunch == nil {
		t.Fatal("split service hours not persisted")
	}
}
