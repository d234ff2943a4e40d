package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var reservationColumns = []string{
	"id", "space_id", "room_id", "user_id", "start_time", "end_time", "created_at", "updated_at",
}

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	db *DB
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db *DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// FindAll retrieves every reservation ordered by start time
func (r *ReservationRepository) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, psql.Select(reservationColumns...).From("reservations").OrderBy("start_time", "id"))
}

// FindByID retrieves a reservation by ID
func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `
		SELECT id, space_id, room_id, user_id, start_time, end_time, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	reservation, err := scanReservation(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	return reservation, nil
}

// FindByRoomID retrieves all reservations of a room
func (r *ReservationRepository) FindByRoomID(ctx context.Context, roomID int64) ([]domain.Reservation, error) {
	return r.list(ctx, psql.Select(reservationColumns...).
		From("reservations").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("start_time"))
}

// FindByUserID retrieves all reservations made by a user
func (r *ReservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Reservation, error) {
	return r.list(ctx, psql.Select(reservationColumns...).
		From("reservations").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_time"))
}

// FindOverlapping retrieves reservations of roomID intersecting [start, end)
func (r *ReservationRepository) FindOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) ([]domain.Reservation, error) {
	return r.list(ctx, overlapQuery(roomID, start, end, excludeID))
}

func overlapQuery(roomID int64, start, end time.Time, excludeID int64) sq.SelectBuilder {
	b := psql.Select(reservationColumns...).
		From("reservations").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Lt{"start_time": end}).
		Where(sq.Gt{"end_time": start})
	if excludeID != 0 {
		b = b.Where(sq.NotEq{"id": excludeID})
	}
	return b.OrderBy("start_time")
}

// Save creates a new reservation
func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (space_id, room_id, user_id, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		reservation.SpaceID,
		reservation.RoomID,
		reservation.UserID,
		reservation.StartTime,
		reservation.EndTime,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reservation: %w", classify(err))
	}

	return nil
}

// Update moves a reservation to another room or time window
func (r *ReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET space_id = $2, room_id = $3, start_time = $4, end_time = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		reservation.ID,
		reservation.SpaceID,
		reservation.RoomID,
		reservation.StartTime,
		reservation.EndTime,
	).Scan(&reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update reservation: %w", classify(err))
	}

	return nil
}

// Delete deletes a reservation
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *ReservationRepository) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Reservation, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build reservation query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []domain.Reservation{}
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, *reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}

	return reservations, nil
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var reservation domain.Reservation
	if err := row.Scan(
		&reservation.ID,
		&reservation.SpaceID,
		&reservation.RoomID,
		&reservation.UserID,
		&reservation.StartTime,
		&reservation.EndTime,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &reservation, nil
}
