package domain

import "time"

type SlotStatus string

const (
	SlotFree   SlotStatus = "free"
	SlotBooked SlotStatus = "booked"
)

// IsValidSlotStatus kiểm tra status có thuộc tập cho phép không.
func IsValidSlotStatus(s string) bool {
	switch SlotStatus(s) {
	case SlotFree, SlotBooked:
		return true
	}
	return false
}

type Slot struct {
	ID          int        `json:"id"`
	SlotNumber  string     `json:"slot_number"`
	VehicleType string     `json:"vehicle_type"`
	Status      SlotStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SlotDTO struct {
	SlotNumber  string `json:"slot_number" binding:"required"`
	VehicleType string `json:"vehicle_type" binding:"required"`
	Status      string `json:"status,omitempty"`
}

type SlotStatusDTO struct {
	Status string `json:"status" binding:"required"`
}

// SlotDetailsDTO - cập nhật một phần; nil nghĩa là giữ nguyên giá trị cũ.
type SlotDetailsDTO struct {
	SlotNumber  *string `json:"slot_number"`
	VehicleType *string `json:"vehicle_type"`
}

// SlotAvailability - số chỗ trống theo từng loại xe.
type SlotAvailability struct {
	VehicleType string `json:"vehicle_type"`
	FreeCount   int    `json:"free_count"`
}
