package usecase

import (
	"context"
	"fmt"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetSuppliesUsecase lists the catalogue room items are placed from
type GetSuppliesUsecase struct {
	supplies domain.SupplyRepository
}

func NewGetSuppliesUsecase(supplies domain.SupplyRepository) *GetSuppliesUsecase {
	return &GetSuppliesUsecase{supplies: supplies}
}

func (u *GetSuppliesUsecase) Execute(ctx context.Context) ([]dto.SupplyDTO, error) {
	supplies, err := u.supplies.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch supplies")
		return nil, fmt.Errorf("failed to fetch supplies: %w", err)
	}
	return dto.FromSupplies(supplies), nil
}
