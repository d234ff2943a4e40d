package dto

import "github.com/Rrens/space-reservation/internal/domain"

type AssetDTO struct {
	ID       int64            `json:"id"`
	SupplyID *int64           `json:"supplyId,omitempty"`
	Name     string           `json:"name"`
	Position *domain.Position `json:"position,omitempty"`
	Size     *domain.Size     `json:"size,omitempty"`
}

type RoomDTO struct {
	ID          int64            `json:"id"`
	SpaceID     int64            `json:"spaceId"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	Position    *domain.Position `json:"position,omitempty"`
	Size        *domain.Size     `json:"size,omitempty"`
	Assets      []AssetDTO       `json:"assets"`
}

// AssetRequest places one item in a room, optionally taken from the supply catalogue
type AssetRequest struct {
	SupplyID *int64           `json:"supplyId,omitempty" validate:"omitempty,gt=0"`
	Name     string           `json:"name" validate:"required,max=255"`
	Position *domain.Position `json:"position,omitempty"`
	Size     *domain.Size     `json:"size,omitempty"`
}

// RoomRequest is the body of room creation
type RoomRequest struct {
	SpaceID     int64            `json:"spaceId" validate:"required,gt=0"`
	Name        string           `json:"name" validate:"required,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Position    *domain.Position `json:"position,omitempty"`
	Size        *domain.Size     `json:"size,omitempty"`
	Assets      []AssetRequest   `json:"assets,omitempty" validate:"omitempty,dive"`
}

// RoomUpdateRequest is the body of a partial room update. An absent assets
// key keeps the room's items; a present one, even [], replaces them.
type RoomUpdateRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	Position    *domain.Position `json:"position,omitempty"`
	Size        *domain.Size     `json:"size,omitempty"`
	Assets      []AssetRequest   `json:"assets" validate:"omitempty,dive"`
}

// DeleteRoomsRequest is the body of the batch room delete
type DeleteRoomsRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

// ToAssets maps request items to domain assets, keeping nil as nil
func ToAssets(items []AssetRequest) []domain.Asset {
	if items == nil {
		return nil
	}
	assets := make([]domain.Asset, 0, len(items))
	for _, item := range items {
		assets = append(assets, domain.Asset{
			SupplyID: item.SupplyID,
			Name:     item.Name,
			Position: item.Position,
			Size:     item.Size,
		})
	}
	return assets
}

func FromRoom(r *domain.Room) RoomDTO {
	assets := make([]AssetDTO, 0, len(r.Assets))
	for _, a := range r.Assets {
		assets = append(assets, AssetDTO{
			ID:       a.ID,
			SupplyID: a.SupplyID,
			Name:     a.Name,
			Position: a.Position,
			Size:     a.Size,
		})
	}
	return RoomDTO{
		ID:          r.ID,
		SpaceID:     r.SpaceID,
		Name:        r.Name,
		Description: r.Description,
		Position:    r.Position,
		Size:        r.Size,
		Assets:      assets,
	}
}

// FromRooms maps a list of rooms; the result is never nil
func FromRooms(rooms []domain.Room) []RoomDTO {
	out := make([]RoomDTO, 0, len(rooms))
	for i := range rooms {
		out = append(out, FromRoom(&rooms[i]))
	}
	return out
}
