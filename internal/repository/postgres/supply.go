package postgres

import (
	"context"
	"fmt"

	"github.com/Rrens/space-reservation/internal/domain"
)

// SupplyRepository reads the supply catalogue
type SupplyRepository struct {
	db *DB
}

func NewSupplyRepository(db *DB) *SupplyRepository {
	return &SupplyRepository{db: db}
}

// FindAll retrieves every supply ordered by id
func (r *SupplyRepository) FindAll(ctx context.Context) ([]domain.Supply, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name, width, height, created_at FROM supplies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list supplies: %w", err)
	}
	defer rows.Close()

	supplies := []domain.Supply{}
	for rows.Next() {
		var (
			supply domain.Supply
			w, h   *float64
		)
		if err := rows.Scan(&supply.ID, &supply.Name, &w, &h, &supply.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supply: %w", err)
		}
		supply.Size = toSize(w, h)
		supplies = append(supplies, supply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate supplies: %w", err)
	}

	return supplies, nil
}
