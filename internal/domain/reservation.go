package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Reservation books a room for a user over [StartTime, EndTime)
type Reservation struct {
	ID        int64     `json:"id"`
	SpaceID   int64     `json:"space_id"`
	RoomID    int64     `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationRepository defines the interface for reservation storage
type ReservationRepository interface {
	FindAll(ctx context.Context) ([]Reservation, error)
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Reservation, error)
	// FindOverlapping lists reservations of roomID intersecting [start, end),
	// skipping excludeID when it is non-zero.
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) ([]Reservation, error)
	Save(ctx context.Context, reservation *Reservation) error
	Update(ctx context.Context, reservation *Reservation) error
	Delete(ctx context.Context, id int64) error
}
