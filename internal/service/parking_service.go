package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"

	"gopkg.in/guregu/null.v4"
)

// ParkingService quản lý vòng đời phiên đỗ xe:
// initial → parked → paid → (repay ⇄ paid) → completed, nhánh lỗi initial → entrance_error.
// Mỗi bước chuyển kiểm tra trạng thái hiện tại trước khi ghi.
//
// Lưu ý: không có ràng buộc "mỗi user+slot chỉ một phiên đang hoạt động" —
// BookParking luôn chèn bản ghi mới, giống hành vi hệ thống gốc.
type ParkingService struct {
	sessionRepo repository.ParkingSessionRepository
	chargeRepo  repository.ChargeRepository
	notifier    ChangeNotifier
}

func NewParkingService(
	sessionRepo repository.ParkingSessionRepository,
	chargeRepo repository.ChargeRepository,
	notifier ChangeNotifier,
) *ParkingService {
	return &ParkingService{
		sessionRepo: sessionRepo,
		chargeRepo:  chargeRepo,
		notifier:    notifier,
	}
}

// BookParking tạo phiên mới ở trạng thái initial. Response không trả về id,
// client tra lại qua GetCurrentByUID.
func (s *ParkingService) BookParking(ctx context.Context, dto domain.BookParkingDTO) error {
	session := &domain.ParkingSession{
		UID:         dto.UID,
		VehicleType: dto.VehicleType,
		Name:        dto.Name,
		Email:       dto.Email,
		Phone:       dto.Phone,
		BookingTime: time.Now().UTC(),
		Status:      domain.SessionInitial,
	}
	if _, err := s.sessionRepo.Create(ctx, session); err != nil {
		return err
	}
	s.notifier.NotifyDataChanged()
	return nil
}

func (s *ParkingService) GetCurrentByUID(ctx context.Context, uid string) ([]domain.ParkingSession, error) {
	return s.sessionRepo.FindByUIDAndStatuses(ctx, uid, domain.CurrentSessionStatuses)
}

func (s *ParkingService) GetHistoryByUID(ctx context.Context, uid string) ([]domain.ParkingSession, error) {
	return s.sessionRepo.FindByUIDAndStatuses(ctx, uid, domain.HistorySessionStatuses)
}

func (s *ParkingService) GetAllSessions(ctx context.Context) ([]domain.ParkingSession, error) {
	return s.sessionRepo.FindAll(ctx)
}

func (s *ParkingService) GetTimes(ctx context.Context, sessionID *int, uid *string) ([]domain.SessionTimes, error) {
	return s.sessionRepo.FindTimes(ctx, sessionID, uid)
}

// Enter - xe qua cổng vào: initial → parked, gán chỗ đỗ và giờ vào.
func (s *ParkingService) Enter(ctx context.Context, id int, slotNumber string) (*domain.ParkingSession, error) {
	return s.transition(ctx, id, []domain.SessionStatus{domain.SessionInitial}, func(session *domain.ParkingSession) {
		session.SlotNumber = null.StringFrom(slotNumber)
		session.EntryTime = null.TimeFrom(time.Now().UTC())
		session.Status = domain.SessionParked
	})
}

// Pay - thanh toán: parked|repay → paid. Nếu caller không gửi số tiền thì tính
// theo biểu phí của loại xe nhân với số phút đã đỗ.
func (s *ParkingService) Pay(ctx context.Context, id int, amount *float64) (*domain.ParkingSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionParked && session.Status != domain.SessionRepay {
		return nil, fmt.Errorf("%w: không thể thanh toán từ trạng thái '%s'", ErrInvalidTransition, session.Status)
	}

	paid := 0.0
	if amount != nil {
		paid = *amount
	} else {
		if !session.EntryTime.Valid {
			return nil, fmt.Errorf("%w: phiên chưa có giờ vào, không tính được phí", ErrInvalidTransition)
		}
		rule, err := s.chargeRepo.FindByVehicleType(ctx, session.VehicleType)
		if err != nil {
			return nil, fmt.Errorf("lỗi lấy biểu phí cho loại xe '%s': %w", session.VehicleType, err)
		}
		paid = CalculateFee(rule.Rate, session.EntryTime.Time, time.Now().UTC())
	}

	session.PaidAmount = null.FloatFrom(paid)
	session.Status = domain.SessionPaid
	if _, err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	s.notifier.NotifyDataChanged()
	return session, nil
}

// Reopen - cổng ra từ chối vé đã thanh toán (quá giờ), cần trả thêm: paid → repay.
func (s *ParkingService) Reopen(ctx context.Context, id int) (*domain.ParkingSession, error) {
	return s.transition(ctx, id, []domain.SessionStatus{domain.SessionPaid}, func(session *domain.ParkingSession) {
		session.Status = domain.SessionRepay
	})
}

// MarkEntranceError - xe không vào được bãi: initial → entrance_error (kết thúc).
func (s *ParkingService) MarkEntranceError(ctx context.Context, id int) (*domain.ParkingSession, error) {
	return s.transition(ctx, id, []domain.SessionStatus{domain.SessionInitial}, func(session *domain.ParkingSession) {
		session.Status = domain.SessionEntranceError
	})
}

// Complete - xe qua cổng ra: paid → completed, ghi giờ ra.
func (s *ParkingService) Complete(ctx context.Context, id int) (*domain.ParkingSession, error) {
	return s.transition(ctx, id, []domain.SessionStatus{domain.SessionPaid}, func(session *domain.ParkingSession) {
		session.ExitTime = null.TimeFrom(time.Now().UTC())
		session.Status = domain.SessionCompleted
	})
}

func (s *ParkingService) transition(ctx context.Context, id int, from []domain.SessionStatus, apply func(*domain.ParkingSession)) (*domain.ParkingSession, error) {
	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, st := range from {
		if session.Status == st {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("%w: trạng thái hiện tại là '%s'", ErrInvalidTransition, session.Status)
	}

	apply(session)
	if _, err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	s.notifier.NotifyDataChanged()
	return session, nil
}

// CalculateFee tính phí đỗ xe: rate (tiền/phút) nhân số phút, làm tròn lên.
func CalculateFee(rate float64, entry, exit time.Time) float64 {
	minutes := math.Ceil(exit.Sub(entry).Minutes())
	if minutes < 1 {
		minutes = 1
	}
	return rate * minutes
}
