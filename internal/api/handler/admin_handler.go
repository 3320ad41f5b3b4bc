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

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(as *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: as}
}

// POST /admin
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var dto domain.AdminDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.adminService.CreateAdmin(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEntry) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo quản trị viên", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, admin)
}

// GET /admin
func (h *AdminHandler) GetAllAdmins(c *gin.Context) {
	admins, err := h.adminService.GetAllAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy danh sách quản trị viên"})
		return
	}
	c.JSON(http.StatusOK, admins)
}

// GET /admin/:id
func (h *AdminHandler) GetAdminByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin ID không hợp lệ"})
		return
	}

	admin, err := h.adminService.GetAdminByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quản trị viên"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi lấy thông tin quản trị viên"})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// POST /admin/search
// Chỉ trả về boolean tồn tại, không lộ bản ghi - dùng cho luồng login client.
func (h *AdminHandler) SearchByEmail(c *gin.Context) {
	var dto domain.AdminSearchDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.adminService.EmailExists(c.Request.Context(), dto.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Lỗi khi tìm quản trị viên"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// PATCH /admin/link-identity
func (h *AdminHandler) LinkIdentity(c *gin.Context) {
	var dto domain.LinkIdentityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	admin, err := h.adminService.LinkIdentity(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quản trị viên với email này"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể liên kết danh tính", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admin)
}

// DELETE /admin/:id
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admin ID không hợp lệ"})
		return
	}

	result, err := h.adminService.DeleteAdmin(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy quản trị viên để xóa"})
			return
		}
		if errors.Is(err, service.ErrAdminNotLinked) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Thất bại một phần: trả kèm result để caller biết pha nào đã chạy.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  err.Error(),
			"result": result,
		})
		return
	}
	c.JSON(http.StatusOK, result)
}
