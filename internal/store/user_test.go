package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"admarket/internal/database"
	"admarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func fillUser(u model.User) func(dest []any) {
	return func(dest []any) {
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.Phone
		*dest[4].(*string) = u.PasswordHash
		*dest[5].(*string) = u.Role
		*dest[6].(*time.Time) = u.CreatedAt
	}
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{
		ID:           7,
		Name:         "Amy",
		Email:        "amy@example.com",
		Phone:        "0912345678",
		PasswordHash: "hash",
		Role:         model.RoleUser,
		CreatedAt:    now,
	}

	t.Run("GetUserByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{fill: fillUser(sample)}
			},
		}
		got, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, sample, *got)
	})

	t.Run("GetUserByID err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), db, 7)
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("GetUserByEmail ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"amy@example.com"}, args)
				return &fakeRow{fill: fillUser(sample)}
			},
		}
		got, err := GetUserByEmail(context.Background(), db, "amy@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.Email, got.Email)
	})

	t.Run("GetUserByEmail err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "amy@example.com")
		require.Error(t, err)
	})

	t.Run("CreateUser ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 5)
				return &fakeRow{fill: func(dest []any) {
					*dest[0].(*int) = 9
					*dest[1].(*time.Time) = now
				}}
			},
		}
		u := model.User{Name: "Bob", Email: "bob@example.com", Phone: "0987654321", PasswordHash: "h", Role: model.RoleAdvertiser}
		got, err := CreateUser(context.Background(), db, &u)
		require.NoError(t, err)
		require.Equal(t, 9, got.ID)
		require.Equal(t, now, got.CreatedAt)
	})

	t.Run("CreateUser err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("dup")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})
}
