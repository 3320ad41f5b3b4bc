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

type ParkingHandler struct {
	parkingService *service.ParkingService
}

func NewParkingHandler(ps *service.ParkingService) *ParkingHandler {
	return &ParkingHandler{parkingService: ps}
}

// POST /parking/book
func (h *ParkingHandler) BookParking(c *gin.Context) {
	var dto domain.BookParkingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.parkingService.BookParking(c.Request.Context(), dto); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể đặt chỗ", "details": err.Error()})
		return
	}
	// Không trả về id phiên mới - client tra lại qua user-current-parking.
	c.JSON(http.StatusCreated, gin.H{"success": true})
}

// GET /parking/user-current-parking?uid=
func (h *ParkingHandler) GetCurrentParking(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tham số uid"})
		return
	}

	sessions, err := h.parkingService.GetCurrentByUID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy phiên đỗ xe hiện tại"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GET /parking/user-history?uid=
func (h *ParkingHandler) GetParkingHistory(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu tham số uid"})
		return
	}

	sessions, err := h.parkingService.GetHistoryByUID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy lịch sử đỗ xe"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GET /parking
func (h *ParkingHandler) GetAllParking(c *gin.Context) {
	sessions, err := h.parkingService.GetAllSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách phiên đỗ xe"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GET /parking/times?parkingId=&userId=
func (h *ParkingHandler) GetTimes(c *gin.Context) {
	var sessionID *int
	if raw := c.Query("parkingId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parkingId không hợp lệ"})
			return
		}
		sessionID = &id
	}
	var uid *string
	if raw := c.Query("userId"); raw != "" {
		uid = &raw
	}

	times, err := h.parkingService.GetTimes(c.Request.Context(), sessionID, uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tra cứu giờ vào/ra"})
		return
	}
	c.JSON(http.StatusOK, times)
}

// PATCH /parking/:id/enter
func (h *ParkingHandler) Enter(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var dto domain.EnterParkingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.parkingService.Enter(c.Request.Context(), id, dto.SlotNumber)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PATCH /parking/:id/pay
func (h *ParkingHandler) Pay(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var dto domain.PayParkingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.parkingService.Pay(c.Request.Context(), id, dto.Amount)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PATCH /parking/:id/repay
func (h *ParkingHandler) Reopen(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.parkingService.Reopen(c.Request.Context(), id)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PATCH /parking/:id/entrance-error
func (h *ParkingHandler) MarkEntranceError(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.parkingService.MarkEntranceError(c.Request.Context(), id)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// PATCH /parking/:id/complete
func (h *ParkingHandler) Complete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	session, err := h.parkingService.Complete(c.Request.Context(), id)
	if err != nil {
		h.transitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *ParkingHandler) sessionID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session ID không hợp lệ"})
		return 0, false
	}
	return id, true
}

func (h *ParkingHandler) transitionError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy phiên đỗ xe"})
		return
	}
	if errors.Is(err, service.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể cập nhật phiên đỗ xe", "details": err.Error()})
}
