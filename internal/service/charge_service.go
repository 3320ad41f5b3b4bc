package service

import (
	"context"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
)

type ChargeService struct {
	chargeRepo repository.ChargeRepository
}

func NewChargeService(chargeRepo repository.ChargeRepository) *ChargeService {
	return &ChargeService{chargeRepo: chargeRepo}
}

func (s *ChargeService) CreateChargeRule(ctx context.Context, dto domain.ChargeRuleDTO) (*domain.ChargeRule, error) {
	rule := &domain.ChargeRule{
		VehicleType: dto.VehicleType,
		Rate:        *dto.Rate,
	}
	return s.chargeRepo.Create(ctx, rule)
}

func (s *ChargeService) GetAllChargeRules(ctx context.Context) ([]domain.ChargeRule, error) {
	return s.chargeRepo.FindAll(ctx)
}

func (s *ChargeService) GetChargeRuleByID(ctx context.Context, id int) (*domain.ChargeRule, error) {
	return s.chargeRepo.FindByID(ctx, id)
}

// GetRateByVehicleType chỉ trả về mức phí, không lộ metadata của biểu phí.
func (s *ChargeService) GetRateByVehicleType(ctx context.Context, vehicleType string) (float64, error) {
	rule, err := s.chargeRepo.FindByVehicleType(ctx, vehicleType)
	if err != nil {
		return 0, err
	}
	return rule.Rate, nil
}

func (s *ChargeService) UpdateChargeRule(ctx context.Context, id int, dto domain.ChargeRuleUpdateDTO) (*domain.ChargeRule, error) {
	if dto.VehicleType == nil && dto.Rate == nil {
		return nil, ErrNoFieldsToUpdate
	}
	return s.chargeRepo.UpdateDetails(ctx, id, dto.VehicleType, dto.Rate)
}

func (s *ChargeService) DeleteChargeRule(ctx context.Context, id int) error {
	return s.chargeRepo.Delete(ctx, id)
}

func (s *ChargeService) GetVehicleTypes(ctx context.Context) ([]string, error) {
	return s.chargeRepo.DistinctVehicleTypes(ctx)
}
