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

type pgChargeRepository struct {
	db *sql.DB
}

func NewPgChargeRepository(db *sql.DB) repository.ChargeRepository {
	return &pgChargeRepository{db: db}
}

func (r *pgChargeRepository) Create(ctx context.Context, rule *domain.ChargeRule) (*domain.ChargeRule, error) {
	query := `INSERT INTO charge_rules (vehicle_type, rate, created_at, updated_at)
	           VALUES ($1, $2, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	           RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, rule.VehicleType, rule.Rate).
		Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ChargeRepository.Create: %w", err)
	}
	rule.CreatedAt = rule.CreatedAt.In(time.UTC)
	rule.UpdatedAt = rule.UpdatedAt.In(time.UTC)
	return rule, nil
}

func (r *pgChargeRepository) FindAll(ctx context.Context) ([]domain.ChargeRule, error) {
	query := `SELECT id, vehicle_type, rate, created_at, updated_at
	           FROM charge_rules ORDER BY vehicle_type ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ChargeRepository.FindAll: %w", err)
	}
	defer rows.Close()

	var rules []domain.ChargeRule
	for rows.Next() {
		var rule domain.ChargeRule
		if err := rows.Scan(&rule.ID, &rule.VehicleType, &rule.Rate, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ChargeRepository.FindAll (scanning row): %w", err)
		}
		rule.CreatedAt = rule.CreatedAt.In(time.UTC)
		rule.UpdatedAt = rule.UpdatedAt.In(time.UTC)
		rules = append(rules, rule)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ChargeRepository.FindAll (rows error): %w", err)
	}
	return rules, nil
}

func (r *pgChargeRepository) FindByID(ctx context.Context, id int) (*domain.ChargeRule, error) {
	rule := &domain.ChargeRule{}
	query := `SELECT id, vehicle_type, rate, created_at, updated_at FROM charge_rules WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rule.ID, &rule.VehicleType, &rule.Rate, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ChargeRepository.FindByID: %w", err)
	}
	rule.CreatedAt = rule.CreatedAt.In(time.UTC)
	rule.UpdatedAt = rule.UpdatedAt.In(time.UTC)
	return rule, nil
}

// FindByVehicleType lấy biểu phí của một loại xe. Tính duy nhất không được ép
// buộc ở schema nên lấy bản ghi cũ nhất nếu có nhiều.
func (r *pgChargeRepository) FindByVehicleType(ctx context.Context, vehicleType string) (*domain.ChargeRule, error) {
	rule := &domain.ChargeRule{}
	query := `SELECT id, vehicle_type, rate, created_at, updated_at FROM charge_rules
	           WHERE vehicle_type = $1 ORDER BY id ASC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, vehicleType).Scan(
		&rule.ID, &rule.VehicleType, &rule.Rate, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ChargeRepository.FindByVehicleType: %w", err)
	}
	rule.CreatedAt = rule.CreatedAt.In(time.UTC)
	rule.UpdatedAt = rule.UpdatedAt.In(time.UTC)
	return rule, nil
}

func (r *pgChargeRepository) UpdateDetails(ctx context.Context, id int, vehicleType *string, rate *float64) (*domain.ChargeRule, error) {
	rule := &domain.ChargeRule{}
	query := `UPDATE charge_rules
	           SET vehicle_type = COALESCE($1, vehicle_type),
	               rate = COALESCE($2, rate),
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = $3
	           RETURNING id, vehicle_type, rate, created_at, updated_at`

	var vt sql.NullString
	if vehicleType != nil {
		vt = sql.NullString{String: *vehicleType, Valid: true}
	}
	var rt sql.NullFloat64
	if rate != nil {
		rt = sql.NullFloat64{Float64: *rate, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, vt, rt, id).Scan(
		&rule.ID, &rule.VehicleType, &rule.Rate, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ChargeRepository.UpdateDetails: %w", err)
	}
	rule.CreatedAt = rule.CreatedAt.In(time.UTC)
	rule.UpdatedAt = rule.UpdatedAt.In(time.UTC)
	return rule, nil
}

func (r *pgChargeRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM charge_rules WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ChargeRepository.Delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ChargeRepository.Delete (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgChargeRepository) DistinctVehicleTypes(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT vehicle_type FROM charge_rules ORDER BY vehicle_type ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ChargeRepository.DistinctVehicleTypes: %w", err)
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var vt string
		if err := rows.Scan(&vt); err != nil {
			return nil, fmt.Errorf("ChargeRepository.DistinctVehicleTypes (scanning row): %w", err)
		}
		types = append(types, vt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ChargeRepository.DistinctVehicleTypes (rows error): %w", err)
	}
	return types, nil
}
