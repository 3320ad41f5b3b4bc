package domain

import (
	"time"

	"gopkg.in/guregu/null.v4"
)

type Admin struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
	SubjectID  null.String `json:"subject_id"` // id bên nhà cung cấp danh tính, null cho đến khi liên kết
	Registered bool        `json:"registered"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type AdminDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

type AdminSearchDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type LinkIdentityDTO struct {
	Email     string `json:"email" binding:"required,email"`
	SubjectID string `json:"subject_id" binding:"required"`
}

// AdminDeletionResult - kết quả xóa hai pha (danh tính ngoài rồi mới tới bản ghi).
// Nếu IdentityDeleted = true mà RecordDeleted = false thì caller cần thử xóa
// bản ghi lại, không có rollback phía danh tính.
type AdminDeletionResult struct {
	AdminID         int  `json:"admin_id"`
	IdentityDeleted bool `json:"identity_deleted"`
	RecordDeleted   bool `json:"record_deleted"`
}
