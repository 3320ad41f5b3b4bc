package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maruf119459/smart-parking-backend/internal/domain"
	"github.com/maruf119459/smart-parking-backend/internal/repository"

	"github.com/lib/pq"
)

type pgParkingSessionRepository struct {
	db *sql.DB
}

func NewPgParkingSessionRepository(db *sql.DB) repository.ParkingSessionRepository {
	return &pgParkingSessionRepository{db: db}
}

const sessionColumns = `id, uid, vehicle_type, name, email, phone, slot_number,
	booking_time, entry_time, exit_time, paid_amount, status, created_at, updated_at`

func (r *pgParkingSessionRepository) scanSession(row interface{ Scan(dest ...any) error }) (*domain.ParkingSession, error) {
	s := &domain.ParkingSession{}
	err := row.Scan(
		&s.ID, &s.UID, &s.VehicleType, &s.Name, &s.Email, &s.Phone, &s.SlotNumber,
		&s.BookingTime, &s.EntryTime, &s.ExitTime, &s.PaidAmount, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.BookingTime = s.BookingTime.In(time.UTC)
	s.CreatedAt = s.CreatedAt.In(time.UTC)
	s.UpdatedAt = s.UpdatedAt.In(time.UTC)
	return s, nil
}

func (r *pgParkingSessionRepository) Create(ctx context.Context, session *domain.ParkingSession) (*domain.ParkingSession, error) {
	query := `INSERT INTO parking_sessions
	           (uid, vehicle_type, name, email, phone, slot_number, booking_time,
	            entry_time, exit_time, paid_amount, status, created_at, updated_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	           RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		session.UID, session.VehicleType, session.Name, session.Email, session.Phone,
		session.SlotNumber, session.BookingTime, session.EntryTime, session.ExitTime,
		session.PaidAmount, session.Status,
	).Scan(&session.ID, &session.CreatedAt, &session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.Create: %w", err)
	}
	session.CreatedAt = session.CreatedAt.In(time.UTC)
	session.UpdatedAt = session.UpdatedAt.In(time.UTC)
	return session, nil
}

func (r *pgParkingSessionRepository) FindByID(ctx context.Context, id int) (*domain.ParkingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM parking_sessions WHERE id = $1`
	session, err := r.scanSession(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ParkingSessionRepository.FindByID: %w", err)
	}
	return session, nil
}

func (r *pgParkingSessionRepository) FindByUIDAndStatuses(ctx context.Context, uid string, statuses []domain.SessionStatus) ([]domain.ParkingSession, error) {
	statusStrings := make([]string, 0, len(statuses))
	for _, st := range statuses {
		statusStrings = append(statusStrings, string(st))
	}

	query := `SELECT ` + sessionColumns + ` FROM parking_sessions
	           WHERE uid = $1 AND status = ANY($2::text[])
	           ORDER BY booking_time DESC`
	rows, err := r.db.QueryContext(ctx, query, uid, pq.Array(statusStrings))
	if err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.FindByUIDAndStatuses: %w", err)
	}
	defer rows.Close()

	return r.collectSessions(rows, "FindByUIDAndStatuses")
}

// FindAll sắp xếp theo entry_time giảm dần; phiên chưa có entry_time nằm cuối,
// đồng hạng thì mới đặt chỗ trước đứng trước.
func (r *pgParkingSessionRepository) FindAll(ctx context.Context) ([]domain.ParkingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM parking_sessions
	           ORDER BY entry_time DESC NULLS LAST, booking_time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.FindAll: %w", err)
	}
	defer rows.Close()

	return r.collectSessions(rows, "FindAll")
}

func (r *pgParkingSessionRepository) collectSessions(rows *sql.Rows, op string) ([]domain.ParkingSession, error) {
	var sessions []domain.ParkingSession
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("ParkingSessionRepository.%s (scanning row): %w", op, err)
		}
		sessions = append(sessions, *session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.%s (rows error): %w", op, err)
	}
	return sessions, nil
}

func (r *pgParkingSessionRepository) Update(ctx context.Context, session *domain.ParkingSession) (*domain.ParkingSession, error) {
	query := `UPDATE parking_sessions
	           SET slot_number = $1, entry_time = $2, exit_time = $3, paid_amount = $4,
	               status = $5, updated_at = CURRENT_TIMESTAMP
	           WHERE id = $6
	           RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		session.SlotNumber, session.EntryTime, session.ExitTime, session.PaidAmount,
		session.Status, session.ID,
	).Scan(&session.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ParkingSessionRepository.Update: %w", err)
	}
	session.UpdatedAt = session.UpdatedAt.In(time.UTC)
	return session, nil
}

func (r *pgParkingSessionRepository) FindTimes(ctx context.Context, sessionID *int, uid *string) ([]domain.SessionTimes, error) {
	query := `SELECT id, entry_time, exit_time FROM parking_sessions`
	var conditions []string
	var args []any
	if sessionID != nil {
		args = append(args, *sessionID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if uid != nil {
		args = append(args, *uid)
		conditions = append(conditions, fmt.Sprintf("uid = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.FindTimes: %w", err)
	}
	defer rows.Close()

	var times []domain.SessionTimes
	for rows.Next() {
		var t domain.SessionTimes
		if err := rows.Scan(&t.ID, &t.EntryTime, &t.ExitTime); err != nil {
			return nil, fmt.Errorf("ParkingSessionRepository.FindTimes (scanning row): %w", err)
		}
		times = append(times, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ParkingSessionRepository.FindTimes (rows error): %w", err)
	}
	return times, nil
}
