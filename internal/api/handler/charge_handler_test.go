package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChargeRouter(repo *mockChargeRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChargeHandler(service.NewChargeService(repo))
	r := gin.New()
	r.GET("/charge-control/rate", h.GetRate)
	r.GET("/vehicle-types", h.GetVehicleTypes)
	return r
}

func TestGetRate_ReturnsRateOnly(t *testing.T) {
	repo := &mockChargeRepo{
		findByVehicleTypeFn: func(ctx context.Context, vt string) (*domain.ChargeRule, error) {
			assert.Equal(t, "car", vt)
			return &domain.ChargeRule{ID: 1, VehicleType: "car", Rate: 1.5}, nil
		},
	}
	r := setupChargeRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/charge-control/rate?vehicleType=car", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]float64{"rate": 1.5}, body)
}

func TestGetRate_UnknownVehicleType(t *testing.T) {
	r := setupChargeRouter(&mockChargeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/charge-control/rate?vehicleType=tank", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRate_MissingVehicleType(t *testing.T) {
	r := setupChargeRouter(&mockChargeRepo{})

	req := httptest.NewRequest(http.MethodGet, "/charge-control/rate", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetVehicleTypes(t *testing.T) {
	repo := &mockChargeRepo{
		vehicleTypesFn: func(ctx context.Context) ([]string, error) {
			return []string{"car", "motorbike"}, nil
		},
	}
	r := setupChargeRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/vehicle-types", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var types []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.Equal(t, []string{"car", "motorbike"}, types)
}
