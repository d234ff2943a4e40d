package dto

import "github.com/Rrens/space-reservation/internal/domain"

type SupplyDTO struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Size *domain.Size `json:"size,omitempty"`
}

func FromSupplies(supplies []domain.Supply) []SupplyDTO {
	out := make([]SupplyDTO, 0, len(supplies))
	for _, s := range supplies {
		out = append(out, SupplyDTO{ID: s.ID, Name: s.Name, Size: s.Size})
	}
	return out
}
