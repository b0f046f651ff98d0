package store

import (
	"context"
	"testing"

	"admarket/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestGetPostEngagement(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{1}, args)
				return &fakeRow{fill: func(dest []any) {
					*dest[0].(*int) = 1
					*dest[1].(*string) = "Weekend sale"
					*dest[2].(*int) = 5
					*dest[3].(*int) = 13
					*dest[4].(*int) = 4
					*dest[5].(*int) = 2
				}}
			},
		}
		got, err := GetPostEngagement(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, 5, got.CommentsCount)
		require.Equal(t, 13, got.SavesCount)
		require.Equal(t, 4, got.ReservationsCount)
		require.Equal(t, 2, got.ActiveReservationsCount)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetPostEngagement(context.Background(), db, 1)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})
}
