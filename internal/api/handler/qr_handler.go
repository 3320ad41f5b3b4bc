package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/service"

	"github.com/gin-gonic/gin"
)

type QRHandler struct {
	qrService *service.QRService
}

func NewQRHandler(qs *service.QRService) *QRHandler {
	return &QRHandler{qrService: qs}
}

// POST /qr/entrance
// Body là JSON object tùy ý, trả về ảnh QR chứa payload đó.
func (h *QRHandler) EncodeEntrance(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.qrService.Encode(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo mã QR", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", image)
}

// POST /qr/exit
func (h *QRHandler) EncodeExit(c *gin.Context) {
	var dto domain.ExitQRDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.qrService.EncodeExit(dto.EntranceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không thể tạo mã QR", "details": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", image)
}

// POST /qr/decode
// Trả về {"payload": null} nếu ảnh hợp lệ nhưng không chứa mã QR;
// 500 nếu không đọc được ảnh.
func (h *QRHandler) Decode(c *gin.Context) {
	var dto domain.DecodeQRDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imageData, err := base64.StdEncoding.DecodeString(dto.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dữ liệu ảnh base64 không hợp lệ"})
		return
	}

	payload, err := h.qrService.Decode(imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Không đọc được ảnh", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payload": payload})
}
