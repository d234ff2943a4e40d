package domain

import (
	"context"
	"time"
)

// Space is a bookable area made up of rooms
type Space struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Rooms     []Room    `json:"rooms"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SpaceRepository defines the interface for space storage
type SpaceRepository interface {
	FindAll(ctx context.Context) ([]Space, error)
	// FindByID returns the space with its rooms and their assets, or nil when absent.
	FindByID(ctx context.Context, id int64) (*Space, error)
	Save(ctx context.Context, space *Space) error
	Update(ctx context.Context, space *Space) error
	Delete(ctx context.Context, id int64) error
}
