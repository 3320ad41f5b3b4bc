package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
	"github.com/maruf119459/smart-parking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type ChargeHandler struct {
	chargeService *service.ChargeService
}

func NewChargeHandler(cs *service.ChargeService) *ChargeHandler {
	return &ChargeHandler{chargeService: cs}
}

// POST /charge-control
func (h *ChargeHandler) CreateChargeRule(c *gin.Context) {
	var dto domain.ChargeRuleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.chargeService.CreateChargeRule(c.Request.Context(), dto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo biểu phí", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rule)
}

// GET /charge-control
func (h *ChargeHandler) GetAllChargeRules(c *gin.Context) {
	rules, err := h.chargeService.GetAllChargeRules(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách biểu phí"})
		return
	}
	c.JSON(http.StatusOK, rules)
}

// GET /charge-control/rate?vehicleType=
// Chỉ trả về mức phí, không lộ metadata của biểu phí.
func (h *ChargeHandler) GetRate(c *gin.Context) {
	vehicleType := c.Query("vehicleType")
	if vehicleType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tham số vehicleType"})
		return
	}

	rate, err := h.chargeService.GetRateByVehicleType(c.Request.Context(), vehicleType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy biểu phí cho loại xe này"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy mức phí"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": rate})
}

// PATCH /charge-control/:id
func (h *ChargeHandler) UpdateChargeRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Charge rule ID không hợp lệ"})
		return
	}

	var dto domain.ChargeRuleUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.chargeService.UpdateChargeRule(c.Request.Context(), id, dto)
	if err != nil {
		if errors.Is(err, service.ErrNoFieldsToUpdate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy biểu phí để cập nhật"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật biểu phí", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rule)
}

// DELETE /charge-control/:id
func (h *ChargeHandler) DeleteChargeRule(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Charge rule ID không hợp lệ"})
		return
	}

	if err := h.chargeService.DeleteChargeRule(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy biểu phí để xóa"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa biểu phí", "details": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// GET /vehicle-types
func (h *ChargeHandler) GetVehicleTypes(c *gin.Context) {
	types, err := h.chargeService.GetVehicleTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách loại xe"})
		return
	}
	c.JSON(http.StatusOK, types)
}
