package postgres

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoomUpdate(t *testing.T) {
	name := "Blue Room"

	t.Run("name and position", func(t *testing.T) {
		query, args, err := buildRoomUpdate(7, &domain.RoomUpdate{
			Name:     &name,
			Position: &domain.Position{X: 1.5, Y: 2.5},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE rooms SET updated_at = NOW(), name = $1, position_x = $2, position_y = $3 WHERE id = $4",
			query,
		)
		assert.Equal(t, []any{"Blue Room", 1.5, 2.5, int64(7)}, args)
	})

	t.Run("size only", func(t *testing.T) {
		query, args, err := buildRoomUpdate(3, &domain.RoomUpdate{
			Size: &domain.Size{Width: 10, Height: 20},
		})
		require.NoError(t, err)
		assert.Equal(t,
			"UPDATE rooms SET updated_at = NOW(), width = $1, height = $2 WHERE id = $3",
			query,
		)
		assert.Equal(t, []any{10.0, 20.0, int64(3)}, args)
	})
}

func TestBatchRoomDelete(t *testing.T) {
	query, args, err := psql.Delete("rooms").Where(sq.Eq{"id": []int64{1, 2}}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM rooms WHERE id IN ($1,$2)", query)
	assert.Equal(t, []any{int64(1), int64(2)}, args)
}

func TestOverlapQuery(t *testing.T) {
	start := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	t.Run("create", func(t *testing.T) {
		query, args, err := overlapQuery(4, start, end, 0).ToSql()
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, space_id, room_id, user_id, start_time, end_time, created_at, updated_at "+
				"FROM reservations WHERE room_id = $1 AND start_time < $2 AND end_time > $3 ORDER BY start_time",
			query,
		)
		assert.Equal(t, []any{int64(4), end, start}, args)
	})

	t.Run("update excludes itself", func(t *testing.T) {
		query, args, err := overlapQuery(4, start, end, 11).ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "AND id <> $4")
		assert.Equal(t, int64(11), args[3])
	})
}

func TestAssetInsert(t *testing.T) {
	supplyID := int64(2)
	query, args, err := assetInsert(9, domain.Asset{
		SupplyID: &supplyID,
		Name:     "desk",
		Position: &domain.Position{X: 1, Y: 2},
	}).ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO room_items (room_id,supply_id,name,position_x,position_y,width,height) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id",
		query,
	)
	require.Len(t, args, 7)
	assert.Equal(t, int64(9), args[0])
	assert.Equal(t, &supplyID, args[1])
	assert.Equal(t, "desk", args[2])
	assert.Equal(t, 1.0, *args[3].(*float64))
	assert.Nil(t, args[5].(*float64), "a missing size stays NULL")
}

func TestBuildRoomUpdate_AssetsOnlyTouchesTimestamp(t *testing.T) {
	query, args, err := buildRoomUpdate(5, &domain.RoomUpdate{Assets: []domain.Asset{}})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE rooms SET updated_at = NOW() WHERE id = $1", query)
	assert.Equal(t, []any{int64(5)}, args)
}
