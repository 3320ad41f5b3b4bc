package repository

import (
	"context"
	"errors"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
)

var ErrNotFound = errors.New("không tìm thấy bản ghi")
var ErrDuplicateEntry = errors.New("bản ghi đã tồn tại")

type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	FindAll(ctx context.Context) ([]domain.Slot, error)
	FindByID(ctx context.Context, id int) (*domain.Slot, error)
	UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error
	// UpdateDetails chỉ ghi đè các trường khác nil.
	UpdateDetails(ctx context.Context, id int, slotNumber, vehicleType *string) (*domain.Slot, error)
	Delete(ctx context.Context, id int) error
	CountFreeByVehicleType(ctx context.Context) ([]domain.SlotAvailability, error)
}

type ParkingSessionRepository interface {
	Create(ctx context.Context, session *domain.ParkingSession) (*domain.ParkingSession, error)
	FindByID(ctx context.Context, id int) (*domain.ParkingSession, error)
	FindByUIDAndStatuses(ctx context.Context, uid string, statuses []domain.SessionStatus) ([]domain.ParkingSession, error)
	FindAll(ctx context.Context) ([]domain.ParkingSession, error)
	Update(ctx context.Context, session *domain.ParkingSession) (*domain.ParkingSession, error)
	// FindTimes trả về projection (id, entry_time, exit_time); cả hai filter đều tùy chọn.
	FindTimes(ctx context.Context, sessionID *int, uid *string) ([]domain.SessionTimes, error)
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindAll(ctx context.Context) ([]domain.Admin, error)
	FindByID(ctx context.Context, id int) (*domain.Admin, error)
	// FindByEmail so khớp email không phân biệt hoa thường.
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	LinkIdentity(ctx context.Context, email string, subjectID string) (*domain.Admin, error)
	Delete(ctx context.Context, id int) error
}

type ChargeRepository interface {
	Create(ctx context.Context, rule *domain.ChargeRule) (*domain.ChargeRule, error)
	FindAll(ctx context.Context) ([]domain.ChargeRule, error)
	FindByID(ctx context.Context, id int) (*domain.ChargeRule, error)
	FindByVehicleType(ctx context.Context, vehicleType string) (*domain.ChargeRule, error)
	UpdateDetails(ctx context.Context, id int, vehicleType *string, rate *float64) (*domain.ChargeRule, error)
	Delete(ctx context.Context, id int) error
	DistinctVehicleTypes(ctx context.Context) ([]string, error)
}
