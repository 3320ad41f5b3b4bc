package domain

import "time"

// ChangeNotification - tín hiệu gửi đến frontend qua WebSocket sau mỗi thao tác
// ghi. Không mang dữ liệu nghiệp vụ, client chỉ cần reload.
type ChangeNotification struct {
	EventID   string    `json:"event_id"`
	Event     string    `json:"event"` // luôn là "data_changed"
	Timestamp time.Time `json:"timestamp"`
}

// QR DTOs

type ExitQRDTO struct {
	EntranceID string `json:"entranceId" binding:"required"`
}

// DecodeQRDTO - ảnh gửi dạng base64 trong JSON, giống luồng upload ảnh của kiosk.
type DecodeQRDTO struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}
