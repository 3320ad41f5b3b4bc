package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type SessionStatus string

const (
	SessionInitial       SessionStatus = "initial"
	SessionParked        SessionStatus = "parked"
	SessionPaid          SessionStatus = "paid"
	SessionRepay         SessionStatus = "repay"
	SessionCompleted     SessionStatus = "completed"
	SessionEntranceError SessionStatus = "entrance_error"
)

// CurrentSessionStatuses - các trạng thái được coi là "đang đỗ xe".
var CurrentSessionStatuses = []SessionStatus{SessionInitial, SessionParked, SessionPaid, SessionRepay}

// HistorySessionStatuses - các trạng thái đã kết thúc.
var HistorySessionStatuses = []SessionStatus{SessionEntranceError, SessionCompleted}

type ParkingSession struct {
	ID          int           `json:"id"`
	UID         string        `json:"uid"`
	VehicleType string        `json:"vehicle_type"`
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	SlotNumber  null.String   `json:"slot_number"` // null cho đến khi xe vào bãi
	BookingTime time.Time     `json:"booking_time"`
	EntryTime   null.Time     `json:"entry_time"`
	ExitTime    null.Time     `json:"exit_time"`
	PaidAmount  null.Float    `json:"paid_amount"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type BookParkingDTO struct {
	UID         string `json:"uid" binding:"required"`
	VehicleType string `json:"vehicle_type" binding:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// EnterParkingDTO - cổng vào quét QR xong gọi API này kèm chỗ đỗ được gán.
type EnterParkingDTO struct {
	SlotNumber string `json:"slot_number" binding:"required"`
}

// PayParkingDTO - nếu không gửi amount thì server tự tính theo biểu phí.
type PayParkingDTO struct {
	Amount *float64 `json:"amount"`
}

// SessionTimes - projection cho API tra cứu giờ vào/ra.
type SessionTimes struct {
	ID        int       `json:"id"`
	EntryTime null.Time `json:"entry_time"`
	ExitTime  null.Time `json:"exit_time"`
}
