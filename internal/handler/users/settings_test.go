package users

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admarket/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func fillSettings(dest []any) {
	*dest[0].(*int) = 7
	*dest[1].(*bool) = true
	*dest[2].(*bool) = false
	*dest[3].(*string) = "zh-TW"
	*dest[4].(*string) = "Asia/Taipei"
	*dest[5].(*string) = "public"
	*dest[6].(*bool) = false
	*dest[7].(*time.Time) = time.Now().UTC()
}

func TestUpsertSettingsHandler(t *testing.T) {
	body := `{"notifications_email":true,"language":"zh-TW","timezone":"Asia/Taipei","profile_visibility":"public"}`

	newCtx := func(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		ctx.SetParamNames("user_id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	// invalid user id
	e := echo.New()
	ctx, rec := newCtx(e, "abc", body)
	require.NoError(t, UpsertSettingsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newCtx(e, "7", body)
	require.NoError(t, UpsertSettingsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// store error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, "7", body)
	h := UpsertSettingsHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{scanErr: errors.New("fk violation")}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, "7", body)
	h = UpsertSettingsHandler(&database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, 7, args[0])
			return &fakeRow{fill: fillSettings}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"language":"zh-TW"`)
	require.Contains(t, rec.Body.String(), `"profile_visibility":"public"`)
}

func TestGetSettingsHandler(t *testing.T) {
	e := echo.New()
	newCtx := func(id string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("user_id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	// invalid id
	ctx, rec := newCtx("abc")
	require.NoError(t, GetSettingsHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 尚未建立設定 → 404
	ctx, rec = newCtx("7")
	h := GetSettingsHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{scanErr: pgx.ErrNoRows}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "settings not found")

	// success
	ctx, rec = newCtx("7")
	h = GetSettingsHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{fill: fillSettings}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"timezone":"Asia/Taipei"`)
}
