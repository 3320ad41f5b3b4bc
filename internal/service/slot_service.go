package service

import (
	"context"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
)

type SlotService struct {
	slotRepo repository.SlotRepository
	notifier ChangeNotifier
}

func NewSlotService(slotRepo repository.SlotRepository, notifier ChangeNotifier) *SlotService {
	return &SlotService{slotRepo: slotRepo, notifier: notifier}
}

func (s *SlotService) CreateSlot(ctx context.Context, dto domain.SlotDTO) (*domain.Slot, error) {
	status := domain.SlotFree
	if dto.Status != "" {
		if !domain.IsValidSlotStatus(dto.Status) {
			return nil, ErrInvalidSlotStatus
		}
		status = domain.SlotStatus(dto.Status)
	}

	slot := &domain.Slot{
		SlotNumber:  dto.SlotNumber,
		VehicleType: dto.VehicleType,
		Status:      status,
	}
	return s.slotRepo.Create(ctx, slot)
}

func (s *SlotService) GetAllSlots(ctx context.Context) ([]domain.Slot, error) {
	return s.slotRepo.FindAll(ctx)
}

// UpdateSlotStatus đổi trạng thái một chỗ đỗ rồi báo cho các client đang kết nối.
func (s *SlotService) UpdateSlotStatus(ctx context.Context, id int, status string) error {
	if !domain.IsValidSlotStatus(status) {
		return ErrInvalidSlotStatus
	}
	if err := s.slotRepo.UpdateStatus(ctx, id, domain.SlotStatus(status)); err != nil {
		return err
	}
	s.notifier.NotifyDataChanged()
	return nil
}

func (s *SlotService) UpdateSlotDetails(ctx context.Context, id int, dto domain.SlotDetailsDTO) (*domain.Slot, error) {
	if dto.SlotNumber == nil && dto.VehicleType == nil {
		return nil, ErrNoFieldsToUpdate
	}
	return s.slotRepo.UpdateDetails(ctx, id, dto.SlotNumber, dto.VehicleType)
}

func (s *SlotService) DeleteSlot(ctx context.Context, id int) error {
	return s.slotRepo.Delete(ctx, id)
}

func (s *SlotService) GetAvailability(ctx context.Context) ([]domain.SlotAvailability, error) {
	return s.slotRepo.CountFreeByVehicleType(ctx)
}
