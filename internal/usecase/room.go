package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/rs/zerolog/log"
)

type GetRoomUsecase struct {
	rooms domain.RoomRepository
}

func NewGetRoomUsecase(rooms domain.RoomRepository) *GetRoomUsecase {
	return &GetRoomUsecase{rooms: rooms}
}

func (u *GetRoomUsecase) Execute(ctx context.Context, id int64) (*dto.RoomDTO, error) {
	room, err := u.rooms.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to fetch room")
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}

	result := dto.FromRoom(room)
	return &result, nil
}

// GetSpaceRoomsUsecase lists the rooms of one space; an unknown space has none
type GetSpaceRoomsUsecase struct {
	rooms domain.RoomRepository
}

func NewGetSpaceRoomsUsecase(rooms domain.RoomRepository) *GetSpaceRoomsUsecase {
	return &GetSpaceRoomsUsecase{rooms: rooms}
}

func (u *GetSpaceRoomsUsecase) Execute(ctx context.Context, spaceID int64) ([]dto.RoomDTO, error) {
	rooms, err := u.rooms.FindBySpaceID(ctx, spaceID)
	if err != nil {
		log.Error().Err(err).Int64("space_id", spaceID).Msg("failed to fetch rooms")
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return dto.FromRooms(rooms), nil
}

type PostRoomUsecase struct {
	rooms domain.RoomRepository
}

func NewPostRoomUsecase(rooms domain.RoomRepository) *PostRoomUsecase {
	return &PostRoomUsecase{rooms: rooms}
}

func (u *PostRoomUsecase) Execute(ctx context.Context, req dto.RoomRequest) (*dto.RoomDTO, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	room := &domain.Room{
		SpaceID:     req.SpaceID,
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
		Size:        req.Size,
		Assets:      dto.ToAssets(req.Assets),
	}
	if err := u.rooms.Save(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	result := dto.FromRoom(room)
	return &result, nil
}

// PutRoomUsecase applies a partial update and returns the stored room
type PutRoomUsecase struct {
	rooms domain.RoomRepository
}

func NewPutRoomUsecase(rooms domain.RoomRepository) *PutRoomUsecase {
	return &PutRoomUsecase{rooms: rooms}
}

func (u *PutRoomUsecase) Execute(ctx context.Context, id int64, req dto.RoomUpdateRequest) (*dto.RoomDTO, error) {
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		req.Name = &name
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	update := &domain.RoomUpdate{
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
		Size:        req.Size,
		Assets:      dto.ToAssets(req.Assets),
	}
	if update.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}

	if err := u.rooms.Update(ctx, id, update); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	room, err := u.rooms.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	if room == nil {
		return nil, domain.ErrNotFound
	}

	result := dto.FromRoom(room)
	return &result, nil
}

// DeleteRoomsUsecase removes a batch of rooms in a single repository call
type DeleteRoomsUsecase struct {
	rooms domain.RoomRepository
}

func NewDeleteRoomsUsecase(rooms domain.RoomRepository) *DeleteRoomsUsecase {
	return &DeleteRoomsUsecase{rooms: rooms}
}

func (u *DeleteRoomsUsecase) Execute(ctx context.Context, req dto.DeleteRoomsRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}

	if err := u.rooms.DeleteByIDs(ctx, req.IDs); err != nil {
		return fmt.Errorf("failed to delete rooms: %w", err)
	}
	return nil
}
