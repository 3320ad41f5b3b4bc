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

type SlotHandler struct {
	slotService *service.SlotService
}

func NewSlotHandler(ss *service.SlotService) *SlotHandler {
	return &SlotHandler{slotService: ss}
}

// POST /slots
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var dto domain.SlotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.slotService.CreateSlot(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSlotStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo chỗ đỗ xe", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// GET /slots
func (h *SlotHandler) GetAllSlots(c *gin.Context) {
	slots, err := h.slotService.GetAllSlots(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách chỗ đỗ xe"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// PATCH /slots-status-update/:id
func (h *SlotHandler) UpdateSlotStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot ID không hợp lệ"})
		return
	}

	var dto domain.SlotStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.slotService.UpdateSlotStatus(c.Request.Context(), id, dto.Status); err != nil {
		if errors.Is(err, service.ErrInvalidSlotStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chỗ đỗ xe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật trạng thái", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified_count": 1})
}

// PATCH /slots-update-slotNumber-vehicleType/:id
func (h *SlotHandler) UpdateSlotDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot ID không hợp lệ"})
		return
	}

	var dto domain.SlotDetailsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slot, err := h.slotService.UpdateSlotDetails(c.Request.Context(), id, dto)
	if err != nil {
		if errors.Is(err, service.ErrNoFieldsToUpdate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chỗ đỗ xe để cập nhật"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật chỗ đỗ xe", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, slot)
}

// DELETE /slots/:id
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slot ID không hợp lệ"})
		return
	}

	if err := h.slotService.DeleteSlot(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy chỗ đỗ xe để xóa"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể xóa chỗ đỗ xe", "details": err.Error()})
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

// GET /slots/available
func (h *SlotHandler) GetAvailability(c *gin.Context) {
	counts, err := h.slotService.GetAvailability(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi đếm chỗ trống"})
		return
	}
	c.JSON(http.StatusOK, counts)
}
