package domain

import (
	"context"
	"time"
)

// Position is a point on a space floor plan
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair on a space floor plan
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Room belongs to exactly one space
type Room struct {
	ID          int64     `json:"id"`
	SpaceID     int64     `json:"space_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Position    *Position `json:"position,omitempty"`
	Size        *Size     `json:"size,omitempty"`
	Assets      []Asset   `json:"assets,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoomUpdate carries the fields of a partial room update; nil means unchanged.
// A non-nil Assets replaces every item of the room, so an empty slice clears them.
type RoomUpdate struct {
	Name        *string
	Description *string
	Position    *Position
	Size        *Size
	Assets      []Asset
}

// Empty reports whether the update changes nothing
func (u RoomUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Position == nil && u.Size == nil && u.Assets == nil
}

// Asset is a decorative item placed in a room (room_items table)
type Asset struct {
	ID       int64     `json:"id"`
	RoomID   int64     `json:"room_id"`
	SupplyID *int64    `json:"supply_id,omitempty"`
	Name     string    `json:"name"`
	Position *Position `json:"position,omitempty"`
	Size     *Size     `json:"size,omitempty"`
}

// RoomRepository defines the interface for room storage
type RoomRepository interface {
	FindByID(ctx context.Context, id int64) (*Room, error)
	FindBySpaceID(ctx context.Context, spaceID int64) ([]Room, error)
	Save(ctx context.Context, room *Room) error
	Update(ctx context.Context, id int64, update *RoomUpdate) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}
