package domain

import (
	"context"
	"time"
)

// Supply is a catalogue entry that room items can be placed from
type Supply struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Size      *Size     `json:"size,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplyRepository defines the interface for the supply catalogue
type SupplyRepository interface {
	FindAll(ctx context.Context) ([]Supply, error)
}
