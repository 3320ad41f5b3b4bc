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

type pgSlotRepository struct {
	db *sql.DB
}

func NewPgSlotRepository(db *sql.DB) repository.SlotRepository {
	return &pgSlotRepository{db: db}
}

func (r *pgSlotRepository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	query := `INSERT INTO slots (slot_number, vehicle_type, status, created_at, updated_at)
	           VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	           RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, slot.SlotNumber, slot.VehicleType, slot.Status).
		Scan(&slot.ID, &slot.CreatedAt, &slot.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("SlotRepository.Create: %w", err)
	}
	slot.CreatedAt = slot.CreatedAt.In(time.UTC)
	slot.UpdatedAt = slot.UpdatedAt.In(time.UTC)
	return slot, nil
}

func (r *pgSlotRepository) FindAll(ctx context.Context) ([]domain.Slot, error) {
	query := `SELECT id, slot_number, vehicle_type, status, created_at, updated_at
	           FROM slots ORDER BY slot_number ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("SlotRepository.FindAll: %w", err)
	}
	defer rows.Close()

	var slots []domain.Slot
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(&slot.ID, &slot.SlotNumber, &slot.VehicleType, &slot.Status,
			&slot.CreatedAt, &slot.UpdatedAt); err != nil {
			return nil, fmt.Errorf("SlotRepository.FindAll (scanning row): %w", err)
		}
		slot.CreatedAt = slot.CreatedAt.In(time.UTC)
		slot.UpdatedAt = slot.UpdatedAt.In(time.UTC)
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SlotRepository.FindAll (rows error): %w", err)
	}
	return slots, nil
}

func (r *pgSlotRepository) FindByID(ctx context.Context, id int) (*domain.Slot, error) {
	slot := &domain.Slot{}
	query := `SELECT id, slot_number, vehicle_type, status, created_at, updated_at
	           FROM slots WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&slot.ID, &slot.SlotNumber, &slot.VehicleType, &slot.Status, &slot.CreatedAt, &slot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("SlotRepository.FindByID: %w", err)
	}
	slot.CreatedAt = slot.CreatedAt.In(time.UTC)
	slot.UpdatedAt = slot.UpdatedAt.In(time.UTC)
	return slot, nil
}

func (r *pgSlotRepository) UpdateStatus(ctx context.Context, id int, status domain.SlotStatus) error {
	query := `UPDATE slots SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("SlotRepository.UpdateStatus: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("SlotRepository.UpdateStatus (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgSlotRepository) UpdateDetails(ctx context.Context, id int, slotNumber, vehicleType *string) (*domain.Slot, error) {
	slot := &domain.Slot{}
	query := `UPDATE slots
	           SET slot_number = COALESCE($1, slot_number),
	               vehicle_type = COALESCE($2, vehicle_type),
	               updated_at = CURRENT_TIMESTAMP
	           WHERE id = $3
	           RETURNING id, slot_number, vehicle_type, status, created_at, updated_at`

	var sn, vt sql.NullString
	if slotNumber != nil {
		sn = sql.NullString{String: *slotNumber, Valid: true}
	}
	if vehicleType != nil {
		vt = sql.NullString{String: *vehicleType, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query, sn, vt, id).Scan(
		&slot.ID, &slot.SlotNumber, &slot.VehicleType, &slot.Status, &slot.CreatedAt, &slot.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("SlotRepository.UpdateDetails: %w", err)
	}
	slot.CreatedAt = slot.CreatedAt.In(time.UTC)
	slot.UpdatedAt = slot.UpdatedAt.In(time.UTC)
	return slot, nil
}

func (r *pgSlotRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM slots WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("SlotRepository.Delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("SlotRepository.Delete (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// CountFreeByVehicleType gom nhóm các chỗ trống theo loại xe, tính lại mỗi lần gọi.
func (r *pgSlotRepository) CountFreeByVehicleType(ctx context.Context) ([]domain.SlotAvailability, error) {
	query := `SELECT vehicle_type, COUNT(*) FROM slots
	           WHERE status = $1
	           GROUP BY vehicle_type
	           ORDER BY vehicle_type ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.SlotFree)
	if err != nil {
		return nil, fmt.Errorf("SlotRepository.CountFreeByVehicleType: %w", err)
	}
	defer rows.Close()

	var counts []domain.SlotAvailability
	for rows.Next() {
		var c domain.SlotAvailability
		if err := rows.Scan(&c.VehicleType, &c.FreeCount); err != nil {
			return nil, fmt.Errorf("SlotRepository.CountFreeByVehicleType (scanning row): %w", err)
		}
		counts = append(counts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("SlotRepository.CountFreeByVehicleType (rows error): %w", err)
	}
	return counts, nil
}
