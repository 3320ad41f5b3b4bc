package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/identity"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
)

type AdminService struct {
	adminRepo repository.AdminRepository
	identity  identity.Provider // có thể nil nếu chưa cấu hình Firebase
}

func NewAdminService(adminRepo repository.AdminRepository, provider identity.Provider) *AdminService {
	return &AdminService{adminRepo: adminRepo, identity: provider}
}

// CreateAdmin kiểm tra trùng email ở tầng ứng dụng (schema không có UNIQUE).
func (s *AdminService) CreateAdmin(ctx context.Context, dto domain.AdminDTO) (*domain.Admin, error) {
	_, err := s.adminRepo.FindByEmail(ctx, dto.Email)
	if err == nil {
		return nil, fmt.Errorf("%w: đã có quản trị viên với email '%s'", repository.ErrDuplicateEntry, dto.Email)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	admin := &domain.Admin{
		Name:  dto.Name,
		Email: dto.Email,
		Phone: dto.Phone,
	}
	return s.adminRepo.Create(ctx, admin)
}

func (s *AdminService) GetAllAdmins(ctx context.Context) ([]domain.Admin, error) {
	return s.adminRepo.FindAll(ctx)
}

func (s *AdminService) GetAdminByID(ctx context.Context, id int) (*domain.Admin, error) {
	return s.adminRepo.FindByID(ctx, id)
}

// EmailExists chỉ trả về boolean, không lộ bản ghi - dùng cho luồng login client.
func (s *AdminService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.adminRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AdminService) LinkIdentity(ctx context.Context, dto domain.LinkIdentityDTO) (*domain.Admin, error) {
	return s.adminRepo.LinkIdentity(ctx, dto.Email, dto.SubjectID)
}

// DeleteAdmin xóa hai pha: danh tính ngoài trước, bản ghi local sau.
// Không có rollback - nếu pha hai thất bại, kết quả trả về cho biết danh tính
// đã bị xóa để caller thử lại pha local.
func (s *AdminService) DeleteAdmin(ctx context.Context, id int) (*domain.AdminDeletionResult, error) {
	admin, err := s.adminRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin.SubjectID.Valid || admin.SubjectID.String == "" {
		return nil, ErrAdminNotLinked
	}
	if s.identity == nil {
		return nil, ErrIdentityNotConfigured
	}

	result := &domain.AdminDeletionResult{AdminID: id}

	if err := s.identity.DeleteUser(ctx, admin.SubjectID.String); err != nil {
		return result, fmt.Errorf("lỗi xóa danh tính ngoài: %w", err)
	}
	result.IdentityDeleted = true

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return result, fmt.Errorf("đã xóa danh tính ngoài nhưng xóa bản ghi local thất bại: %w", err)
	}
	result.RecordDeleted = true
	return result, nil
}
