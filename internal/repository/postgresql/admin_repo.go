package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"
)

type pgAdminRepository struct {
	db *sql.DB
}

func NewPgAdminRepository(db *sql.DB) repository.AdminRepository {
	return &pgAdminRepository{db: db}
}

const adminColumns = `id, name, email, phone, subject_id, registered, created_at, updated_at`

func (r *pgAdminRepository) scanAdmin(row interface{ Scan(dest ...any) error }) (*domain.Admin, error) {
	a := &domain.Admin{}
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.SubjectID, &a.Registered,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.CreatedAt = a.CreatedAt.In(time.UTC)
	a.UpdatedAt = a.UpdatedAt.In(time.UTC)
	return a, nil
}

func (r *pgAdminRepository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	query := `INSERT INTO admins (name, email, phone, subject_id, registered, created_at, updated_at)
	           VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	           RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		admin.Name, admin.Email, admin.Phone, admin.SubjectID, admin.Registered,
	).Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("AdminRepository.Create: %w", err)
	}
	admin.CreatedAt = admin.CreatedAt.In(time.UTC)
	admin.UpdatedAt = admin.UpdatedAt.In(time.UTC)
	return admin, nil
}

func (r *pgAdminRepository) FindAll(ctx context.Context) ([]domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("AdminRepository.FindAll: %w", err)
	}
	defer rows.Close()

	var admins []domain.Admin
	for rows.Next() {
		admin, err := r.scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("AdminRepository.FindAll (scanning row): %w", err)
		}
		admins = append(admins, *admin)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("AdminRepository.FindAll (rows error): %w", err)
	}
	return admins, nil
}

func (r *pgAdminRepository) FindByID(ctx context.Context, id int) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`
	admin, err := r.scanAdmin(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("AdminRepository.FindByID: %w", err)
	}
	return admin, nil
}

func (r *pgAdminRepository) FindByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE LOWER(email) = LOWER($1)`
	admin, err := r.scanAdmin(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("AdminRepository.FindByEmail: %w", err)
	}
	return admin, nil
}

func (r *pgAdminRepository) LinkIdentity(ctx context.Context, email string, subjectID string) (*domain.Admin, error) {
	query := `UPDATE admins
	           SET subject_id = $2, registered = TRUE, updated_at = CURRENT_TIMESTAMP
	           WHERE LOWER(email) = LOWER($1)
	           RETURNING ` + adminColumns
	admin, err := r.scanAdmin(r.db.QueryRowContext(ctx, query, email, subjectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("AdminRepository.LinkIdentity: %w", err)
	}
	return admin, nil
}

func (r *pgAdminRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM admins WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("AdminRepository.Delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("AdminRepository.Delete (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
