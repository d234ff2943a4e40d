package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Rrens/space-reservation/internal/domain"
)

// SpaceRepository handles space data access
type SpaceRepository struct {
	db *DB
}

// NewSpaceRepository creates a new space repository
func NewSpaceRepository(db *DB) *SpaceRepository {
	return &SpaceRepository{db: db}
}

// FindAll retrieves all spaces with their rooms; assets are not loaded
func (r *SpaceRepository) FindAll(ctx context.Context) ([]domain.Space, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM spaces
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	defer rows.Close()

	spaces := []domain.Space{}
	index := make(map[int64]int)
	for rows.Next() {
		var space domain.Space
		if err := rows.Scan(&space.ID, &space.Name, &space.CreatedAt, &space.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan space: %w", err)
		}
		index[space.ID] = len(spaces)
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate spaces: %w", err)
	}
	if len(spaces) == 0 {
		return spaces, nil
	}

	ids := make([]int64, len(spaces))
	for i, space := range spaces {
		ids[i] = space.ID
	}

	rooms, err := queryRooms(ctx, r.db, sq.Eq{"space_id": ids})
	if err != nil {
		return nil, err
	}
	for _, room := range rooms {
		if i, ok := index[room.SpaceID]; ok {
			spaces[i].Rooms = append(spaces[i].Rooms, room)
		}
	}

	return spaces, nil
}

// FindByID retrieves a space with its rooms and their assets
func (r *SpaceRepository) FindByID(ctx context.Context, id int64) (*domain.Space, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM spaces
		WHERE id = $1
	`

	var space domain.Space
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&space.ID,
		&space.Name,
		&space.CreatedAt,
		&space.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	rooms, err := queryRooms(ctx, r.db, sq.Eq{"space_id": id})
	if err != nil {
		return nil, err
	}
	if err := attachAssets(ctx, r.db, rooms); err != nil {
		return nil, err
	}
	space.Rooms = rooms

	return &space, nil
}

// Save creates a new space
func (r *SpaceRepository) Save(ctx context.Context, space *domain.Space) error {
	query := `
		INSERT INTO spaces (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query, space.Name).Scan(&space.ID, &space.CreatedAt, &space.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create space: %w", classify(err))
	}

	return nil
}

// Update renames a space
func (r *SpaceRepository) Update(ctx context.Context, space *domain.Space) error {
	query := `
		UPDATE spaces
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query, space.ID, space.Name).Scan(&space.CreatedAt, &space.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to update space: %w", err)
	}

	return nil
}

// Delete deletes a space; rooms, items and reservations cascade in the schema
func (r *SpaceRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM spaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}
