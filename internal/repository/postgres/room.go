package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/jackc/pgx/v5"
)

var roomColumns = []string{
	"id", "space_id", "name", "description",
	"position_x", "position_y", "width", "height",
	"created_at", "updated_at",
}

var assetColumns = []string{
	"id", "room_id", "supply_id", "name",
	"position_x", "position_y", "width", "height",
}

// RoomRepository handles room data access
type RoomRepository struct {
	db *DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindByID retrieves a room with its assets
func (r *RoomRepository) FindByID(ctx context.Context, id int64) (*domain.Room, error) {
	rooms, err := r.findRooms(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, nil
	}
	return &rooms[0], nil
}

// FindBySpaceID retrieves all rooms of a space with their assets
func (r *RoomRepository) FindBySpaceID(ctx context.Context, spaceID int64) ([]domain.Room, error) {
	return r.findRooms(ctx, sq.Eq{"space_id": spaceID})
}

// Save creates a new room together with its items
func (r *RoomRepository) Save(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (space_id, name, description, position_x, position_y, width, height)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	x, y := positionArgs(room.Position)
	w, h := sizeArgs(room.Size)

	return r.db.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			room.SpaceID,
			room.Name,
			room.Description,
			x, y, w, h,
		).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create room: %w", classify(err))
		}

		return insertAssets(ctx, tx, room.ID, room.Assets)
	})
}

// Update applies a partial update to a room. When update.Assets is non-nil
// the room's items are replaced in the same transaction.
func (r *RoomRepository) Update(ctx context.Context, id int64, update *domain.RoomUpdate) error {
	query, args, err := buildRoomUpdate(id, update)
	if err != nil {
		return fmt.Errorf("failed to build room update: %w", err)
	}

	return r.db.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update room: %w", classify(err))
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}

		if update.Assets == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM room_items WHERE room_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear room items: %w", err)
		}
		return insertAssets(ctx, tx, id, update.Assets)
	})
}

// insertAssets stores assets under roomID, filling in their ids
func insertAssets(ctx context.Context, tx pgx.Tx, roomID int64, assets []domain.Asset) error {
	for i := range assets {
		assets[i].RoomID = roomID

		query, args, err := assetInsert(roomID, assets[i]).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build room item insert: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&assets[i].ID); err != nil {
			return fmt.Errorf("failed to create room item: %w", classify(err))
		}
	}
	return nil
}

func assetInsert(roomID int64, asset domain.Asset) sq.InsertBuilder {
	x, y := positionArgs(asset.Position)
	w, h := sizeArgs(asset.Size)
	return psql.Insert("room_items").
		Columns("room_id", "supply_id", "name", "position_x", "position_y", "width", "height").
		Values(roomID, asset.SupplyID, asset.Name, x, y, w, h).
		Suffix("RETURNING id")
}

// DeleteByIDs deletes every room whose id is in ids
func (r *RoomRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := psql.Delete("rooms").Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build room delete: %w", err)
	}

	if _, err := r.db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete rooms: %w", err)
	}

	return nil
}

func buildRoomUpdate(id int64, update *domain.RoomUpdate) (string, []any, error) {
	b := psql.Update("rooms").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.Position != nil {
		b = b.Set("position_x", update.Position.X).Set("position_y", update.Position.Y)
	}
	if update.Size != nil {
		b = b.Set("width", update.Size.Width).Set("height", update.Size.Height)
	}

	return b.ToSql()
}

func (r *RoomRepository) findRooms(ctx context.Context, where sq.Sqlizer) ([]domain.Room, error) {
	rooms, err := queryRooms(ctx, r.db, where)
	if err != nil {
		return nil, err
	}
	if err := attachAssets(ctx, r.db, rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func queryRooms(ctx context.Context, db *DB, where sq.Sqlizer) ([]domain.Room, error) {
	query, args, err := psql.Select(roomColumns...).From("rooms").Where(where).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build room query: %w", err)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []domain.Room{}
	for rows.Next() {
		var (
			room       domain.Room
			posX, posY *float64
			w, h       *float64
		)
		if err := rows.Scan(
			&room.ID,
			&room.SpaceID,
			&room.Name,
			&room.Description,
			&posX, &posY, &w, &h,
			&room.CreatedAt,
			&room.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		room.Position = toPosition(posX, posY)
		room.Size = toSize(w, h)
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rooms: %w", err)
	}

	return rooms, nil
}

// attachAssets loads room_items for all rooms in one query
func attachAssets(ctx context.Context, db *DB, rooms []domain.Room) error {
	if len(rooms) == 0 {
		return nil
	}

	ids := make([]int64, len(rooms))
	index := make(map[int64]int, len(rooms))
	for i, room := range rooms {
		ids[i] = room.ID
		index[room.ID] = i
	}

	query, args, err := psql.Select(assetColumns...).From("room_items").Where(sq.Eq{"room_id": ids}).OrderBy("id").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build asset query: %w", err)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to list room items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			asset      domain.Asset
			posX, posY *float64
			w, h       *float64
		)
		if err := rows.Scan(
			&asset.ID,
			&asset.RoomID,
			&asset.SupplyID,
			&asset.Name,
			&posX, &posY, &w, &h,
		); err != nil {
			return fmt.Errorf("failed to scan room item: %w", err)
		}
		asset.Position = toPosition(posX, posY)
		asset.Size = toSize(w, h)

		if i, ok := index[asset.RoomID]; ok {
			rooms[i].Assets = append(rooms[i].Assets, asset)
		}
	}

	return rows.Err()
}

func toPosition(x, y *float64) *domain.Position {
	if x == nil || y == nil {
		return nil
	}
	return &domain.Position{X: *x, Y: *y}
}

func toSize(w, h *float64) *domain.Size {
	if w == nil || h == nil {
		return nil
	}
	return &domain.Size{Width: *w, Height: *h}
}

func positionArgs(p *domain.Position) (x, y *float64) {
	if p == nil {
		return nil, nil
	}
	return &p.X, &p.Y
}

func sizeArgs(s *domain.Size) (w, h *float64) {
	if s == nil {
		return nil, nil
	}
	return &s.Width, &s.Height
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
