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

type mockSessionRepo struct {
	createFn    func(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error)
	findByIDFn  func(ctx context.Context, id int) (*domain.ParkingSession, error)
	updateFn    func(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error)
	findByUIDFn func(ctx context.Context, uid string, statuses []domain.SessionStatus) ([]domain.ParkingSession, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	return m.createFn(ctx, s)
}
func (m *mockSessionRepo) FindByID(ctx context.Context, id int) (*domain.ParkingSession, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockSessionRepo) FindByUIDAndStatuses(ctx context.Context, uid string, statuses []domain.SessionStatus) ([]domain.ParkingSession, error) {
	return m.findByUIDFn(ctx, uid, statuses)
}
func (m *mockSessionRepo) FindAll(ctx context.Context) ([]domain.ParkingSession, error) {
	return nil, nil
}
func (m *mockSessionRepo) Update(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	return m.updateFn(ctx, s)
}
func (m *mockSessionRepo) FindTimes(ctx context.Context, sessionID *int, uid *string) ([]domain.SessionTimes, error) {
	return nil, nil
}

type mockChargeRepo struct {
	createFn            func(ctx context.Context, rule *domain.ChargeRule) (*domain.ChargeRule, error)
	findAllFn           func(ctx context.Context) ([]domain.ChargeRule, error)
	findByVehicleTypeFn func(ctx context.Context, vt string) (*domain.ChargeRule, error)
	deleteFn            func(ctx context.Context, id int) error
	vehicleTypesFn      func(ctx context.Context) ([]string, error)
}

func (m *mockChargeRepo) Create(ctx context.Context, rule *domain.ChargeRule) (*domain.ChargeRule, error) {
	return m.createFn(ctx, rule)
}
func (m *mockChargeRepo) FindAll(ctx context.Context) ([]domain.ChargeRule, error) {
	return m.findAllFn(ctx)
}
func (m *mockChargeRepo) FindByID(ctx context.Context, id int) (*domain.ChargeRule, error) {
	return nil, repository.ErrNotFound
}
func (m *mockChargeRepo) FindByVehicleType(ctx context.Context, vt string) (*domain.ChargeRule, error) {
	if m.findByVehicleTypeFn == nil {
		return nil, repository.ErrNotFound
	}
	return m.findByVehicleTypeFn(ctx, vt)
}
func (m *mockChargeRepo) UpdateDetails(ctx context.Context, id int, vt *string, rate *float64) (*domain.ChargeRule, error) {
	return nil, repository.ErrNotFound
}
func (m *mockChargeRepo) Delete(ctx context.Context, id int) error {
	if m.deleteFn == nil {
		return repository.ErrNotFound
	}
	return m.deleteFn(ctx, id)
}
func (m *mockChargeRepo) DistinctVehicleTypes(ctx context.Context) ([]string, error) {
	return m.vehicleTypesFn(ctx)
}

func setupParkingRouter(repo *mockSessionRepo, notifier *mockNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewParkingHandler(service.NewParkingService(repo, &mockChargeRepo{}, notifier))
	r := gin.New()
	r.POST("/parking/book", h.BookParking)
	r.GET("/parking/user-current-parking", h.GetCurrentParking)
	r.GET("/parking/user-history", h.GetParkingHistory)
	r.PATCH("/parking/:id/enter", h.Enter)
	r.PATCH("/parking/:id/pay", h.Pay)
	r.PATCH("/parking/:id/complete", h.Complete)
	return r
}

func TestBookParking_Handler_Success(t *testing.T) {
	repo := &mockSessionRepo{
		createFn: func(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
			s.ID = 1
			return s, nil
		},
	}
	notifier := &mockNotifier{}
	r := setupParkingRouter(repo, notifier)

	req := httptest.NewRequest(http.MethodPost, "/parking/book",
		strings.NewReader(`{"uid":"u1","vehicle_type":"car","name":"An","email":"an@example.com","phone":"0123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, notifier.notified)

	// Response không chứa id phiên mới.
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"success": true}, body)
}

func TestBookParking_Handler_MissingUID(t *testing.T) {
	notifier := &mockNotifier{}
	r := setupParkingRouter(&mockSessionRepo{}, notifier)

	req := httptest.NewRequest(http.MethodPost, "/parking/book",
		strings.NewReader(`{"vehicle_type":"car"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, notifier.notified)
}

func TestGetCurrentParking_Handler_RequiresUID(t *testing.T) {
	r := setupParkingRouter(&mockSessionRepo{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/parking/user-current-parking", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCurrentParking_Handler_ReturnsSessions(t *testing.T) {
	repo := &mockSessionRepo{
		findByUIDFn: func(ctx context.Context, uid string, statuses []domain.SessionStatus) ([]domain.ParkingSession, error) {
			assert.Equal(t, "u1", uid)
			assert.Equal(t, domain.CurrentSessionStatuses, statuses)
			return []domain.ParkingSession{{ID: 1, UID: uid, Status: domain.SessionInitial}}, nil
		},
	}
	r := setupParkingRouter(repo, &mockNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/parking/user-current-parking?uid=u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var sessions []domain.ParkingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessions))
	require.Len(t, sessions, 1)
	assert.Equal(t, domain.SessionInitial, sessions[0].Status)
}

func TestEnter_Handler_NotFound(t *testing.T) {
	repo := &mockSessionRepo{
		findByIDFn: func(ctx context.Context, id int) (*domain.ParkingSession, error) {
			return nil, repository.ErrNotFound
		},
	}
	r := setupParkingRouter(repo, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPatch, "/parking/99/enter",
		strings.NewReader(`{"slot_number":"A-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEnter_Handler_WrongStatusIsConflict(t *testing.T) {
	repo := &mockSessionRepo{
		findByIDFn: func(ctx context.Context, id int) (*domain.ParkingSession, error) {
			return &domain.ParkingSession{ID: id, Status: domain.SessionCompleted}, nil
		},
	}
	notifier := &mockNotifier{}
	r := setupParkingRouter(repo, notifier)

	req := httptest.NewRequest(http.MethodPatch, "/parking/1/enter",
		strings.NewReader(`{"slot_number":"A-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 0, notifier.notified)
}

func TestComplete_Handler_Success(t *testing.T) {
	repo := &mockSessionRepo{
		findByIDFn: func(ctx context.Context, id int) (*domain.ParkingSession, error) {
			return &domain.ParkingSession{ID: id, Status: domain.SessionPaid}, nil
		},
		updateFn: func(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
			return s, nil
		},
	}
	notifier := &mockNotifier{}
	r := setupParkingRouter(repo, notifier)

	req := httptest.NewRequest(http.MethodPatch, "/parking/1/complete", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, notifier.notified)

	var session domain.ParkingSession
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, domain.SessionCompleted, session.Status)
	assert.True(t, session.ExitTime.Valid)
}

func TestEnter_Handler_MalformedID(t *testing.T) {
	r := setupParkingRouter(&mockSessionRepo{}, &mockNotifier{})

	req := httptest.NewRequest(http.MethodPatch, "/parking/abc/enter",
		strings.NewReader(`{"slot_number":"A-01"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
