package domain

import "time"

// ChargeRule - mức phí theo loại xe, đơn vị: tiền / phút.
type ChargeRule struct {
	ID          int       `json:"id"`
	VehicleType string    `json:"vehicle_type"`
	Rate        float64   `json:"rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChargeRuleDTO struct {
	VehicleType string   `json:"vehicle_type" binding:"required"`
	Rate        *float64 `json:"rate" binding:"required"`
}

type ChargeRuleUpdateDTO struct {
	VehicleType *string  `json:"vehicle_type"`
	Rate        *float64 `json:"rate"`
}
