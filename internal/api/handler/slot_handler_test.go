package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
	"github.com/maruf119459/smart-parking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks dùng chung cho các handler test ---

type mockNotifier struct {
	notified int
}

func (m *mockNotifier) NotifyDataChanged() { m.notified++ }

type mockSlotRepo struct {
	createFn       func(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	findAllFn      func(ctx context.Context) ([]domain.Slot, error)
	updateStatusFn func(ctx context.Context, id int, status domain.SlotStatus) error
	deleteFn       func(ctx context.Context, id int) error
	countFreeFn    func(ctx context.Context) ([]domain.SlotAvailability, error)
}

func (m *mockSlotRepo) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	return m.createFn(ctx, slot)
}
func (m *mockSlotRepo) FindAll(ctx context.Context) ([]domain.Slot, error) {
	return m.findAllFn(ctx)
}
func (m *mockSlotRepo) FindByID(ctx context.Context, id int) (*domain.Slot, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSlotRepo) UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error {
	return m.updateStatusFn(ctx, id, status)
}
func (m *mockSlotRepo) UpdateDetails(ctx context.Context, id int, slotNumber, vehicleType *string) (*domain.Slot, error) {
	return nil, repository.ErrNotFound
}
func (m *mockSlotRepo) Delete(ctx context.Context, id int) error {
	return m.deleteFn(ctx, id)
}
func (m *mockSlotRepo) CountFreeByVehicleType(ctx context.Context) ([]domain.SlotAvailability, error) {
	return m.countFreeFn(ctx)
}

func setupSlotRouter(repo *mockSlotRepo, notifier *mockNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSlotHandler(service.NewSlotService(repo, notifier))
	r := gin.New()
	r.POST("/slots", h.CreateSlot)
	r.GET("/slots", h.GetAllSlots)
	r.GET("/slots/available", h.GetAvailability)
	r.DELETE("/slots/:id", h.DeleteSlot)
	r.PATCH("/slots-status-update/:id", h.UpdateSlotStatus)
	r.PATCH("/slots-update-slotNumber-vehicleType/:id", h.UpdateSlotDetails)
	return r
}

func TestCreateSlot_Handler_Success(t *testing.T) {
	repo := &mockSlotRepo{
		createFn: func(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
			slot.ID = 1
			return slot, nil
		},
	}
	r := setupSlotRouter(repo, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/slots",
		strings.NewReader(`{"slot_number":"A-01","vehicle_type":"car"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var slot domain.Slot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slot))
	assert.Equal(t, domain.SlotFree, slot.Status)
}

func TestCreateSlot_Handler_MissingFields(t *testing.T) {
	r := setupSlotRouter(&mockSlotRepo{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPost, "/slots", strings.NewReader(`{"slot_number":"A-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSlotStatus_Handler_InvalidStatus(t *testing.T) {
	notifier := &mockNotifier{}
	r := setupSlotRouter(&mockSlotRepo{}, notifier)

	req := httptest.NewRequest(http.MethodPatch, "/slots-status-update/1",
		strings.NewReader(`{"status":"maintenance"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, notifier.notified)
}

func TestUpdateSlotStatus_Handler_MalformedID(t *testing.T) {
	r := setupSlotRouter(&mockSlotRepo{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPatch, "/slots-status-update/abc",
		strings.NewReader(`{"status":"booked"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSlotStatus_Handler_SuccessNotifies(t *testing.T) {
	repo := &mockSlotRepo{
		updateStatusFn: func(ctx context.Context, id int, status domain.SlotStatus) error { return nil },
	}
	notifier := &mockNotifier{}
	r := setupSlotRouter(repo, notifier)

	req := httptest.NewRequest(http.MethodPatch, "/slots-status-update/1",
		strings.NewReader(`{"status":"booked"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.notified)
}

func TestDeleteSlot_Handler_NotFound(t *testing.T) {
	repo := &mockSlotRepo{
		deleteFn: func(ctx context.Context, id int) error { return repository.ErrNotFound },
	}
	r := setupSlotRouter(repo, &mockNotifier{})

	req := httptest.NewRequest(http.MethodDelete, "/slots/99", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAvailability_Handler(t *testing.T) {
	repo := &mockSlotRepo{
		countFreeFn: func(ctx context.Context) ([]domain.SlotAvailability, error) {
			return []domain.SlotAvailability{{VehicleType: "car", FreeCount: 3}}, nil
		},
	}
	r := setupSlotRouter(repo, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/slots/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var counts []domain.SlotAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	assert.Equal(t, []domain.SlotAvailability{{VehicleType: "car", FreeCount: 3}}, counts)
}
