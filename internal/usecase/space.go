package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/rs/zerolog/log"
)

// GetSpacesUsecase lists spaces with their rooms
type GetSpacesUsecase struct {
	spaces domain.SpaceRepository
}

func NewGetSpacesUsecase(spaces domain.SpaceRepository) *GetSpacesUsecase {
	return &GetSpacesUsecase{spaces: spaces}
}

func (u *GetSpacesUsecase) Execute(ctx context.Context) ([]dto.SpaceDTO, error) {
	spaces, err := u.spaces.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch spaces")
		return nil, fmt.Errorf("failed to fetch spaces: %w", err)
	}
	return dto.FromSpaces(spaces), nil
}

// GetSpaceUsecase loads one space with nested rooms and assets
type GetSpaceUsecase struct {
	spaces domain.SpaceRepository
}

func NewGetSpaceUsecase(spaces domain.SpaceRepository) *GetSpaceUsecase {
	return &GetSpaceUsecase{spaces: spaces}
}

func (u *GetSpaceUsecase) Execute(ctx context.Context, id int64) (*dto.SpaceDTO, error) {
	space, err := u.spaces.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("space_id", id).Msg("failed to fetch space")
		return nil, fmt.Errorf("failed to fetch space: %w", err)
	}
	if space == nil {
		return nil, domain.ErrNotFound
	}

	result := dto.FromSpace(space)
	return &result, nil
}

type PostSpaceUsecase struct {
	spaces domain.SpaceRepository
}

func NewPostSpaceUsecase(spaces domain.SpaceRepository) *PostSpaceUsecase {
	return &PostSpaceUsecase{spaces: spaces}
}

func (u *PostSpaceUsecase) Execute(ctx context.Context, req dto.SpaceRequest) (*dto.SpaceDTO, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	space := &domain.Space{Name: req.Name}
	if err := u.spaces.Save(ctx, space); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}

	result := dto.FromSpace(space)
	return &result, nil
}

type PutSpaceUsecase struct {
	spaces domain.SpaceRepository
}

func NewPutSpaceUsecase(spaces domain.SpaceRepository) *PutSpaceUsecase {
	return &PutSpaceUsecase{spaces: spaces}
}

func (u *PutSpaceUsecase) Execute(ctx context.Context, id int64, req dto.SpaceRequest) (*dto.SpaceDTO, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if err := u.spaces.Update(ctx, &domain.Space{ID: id, Name: req.Name}); err != nil {
		return nil, fmt.Errorf("failed to update space: %w", err)
	}

	space, err := u.spaces.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch space: %w", err)
	}
	if space == nil {
		return nil, domain.ErrNotFound
	}

	result := dto.FromSpace(space)
	return &result, nil
}

// DeleteSpaceUsecase removes a space; rooms and reservations cascade
type DeleteSpaceUsecase struct {
	spaces domain.SpaceRepository
}

func NewDeleteSpaceUsecase(spaces domain.SpaceRepository) *DeleteSpaceUsecase {
	return &DeleteSpaceUsecase{spaces: spaces}
}

func (u *DeleteSpaceUsecase) Execute(ctx context.Context, id int64) error {
	if err := u.spaces.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}
	return nil
}

// validateRequest turns validator issues into a wrapped ErrInvalidInput
func validateRequest(v any) error {
	issues := security.Validate(v)
	if issues == nil {
		return nil
	}

	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(parts, "; "))
}
