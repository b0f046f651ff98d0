package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admarket/internal/database"
	"admarket/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestUpsertProfileHandler(t *testing.T) {
	body := `{"display_name":"Amy the Baker","social_links":{"instagram":"https://instagram.com/amy"}}`
	displayName := "Amy the Baker"

	newCtx := func(e *echo.Echo, id, body string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		ctx.SetParamNames("user_id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	// invalid user id
	e := echo.New()
	ctx, rec := newCtx(e, "abc", body)
	require.NoError(t, UpsertProfileHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newCtx(e, "7", body)
	require.NoError(t, UpsertProfileHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// store error
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, "7", body)
	h := UpsertProfileHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{scanErr: errors.New("fk violation")}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success：upsert 後回傳儲存結果
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newCtx(e, "7", body)
	now := time.Now().UTC()
	h = UpsertProfileHandler(&database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Equal(t, 7, args[0])
			return &fakeRow{fill: func(dest []any) {
				*dest[0].(*int) = 7
				*dest[1].(**string) = &displayName
				*dest[7].(*json.RawMessage) = json.RawMessage(`{"instagram":"https://instagram.com/amy"}`)
				*dest[9].(*time.Time) = now
			}}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"display_name":"Amy the Baker"`)
	require.Contains(t, rec.Body.String(), "instagram")
}

func TestGetProfileOverviewHandler(t *testing.T) {
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
	require.NoError(t, GetProfileOverviewHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 使用者不存在 → 404
	ctx, rec = newCtx("7")
	h := GetProfileOverviewHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{scanErr: pgx.ErrNoRows}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "user not found")

	// 使用者存在但未建立 profile：profile 欄位保持 null
	ctx, rec = newCtx("7")
	h = GetProfileOverviewHandler(&database.FakeDB{
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return &fakeRow{fill: func(dest []any) {
				*dest[0].(*int) = 7
				*dest[1].(*string) = "Amy"
				*dest[2].(*string) = "amy@example.com"
				*dest[3].(*string) = "0912345678"
				*dest[4].(*string) = model.RoleUser
				*dest[5].(*time.Time) = time.Now().UTC()
			}}
		},
	})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"display_name":null`)
	require.Contains(t, rec.Body.String(), `"name":"Amy"`)
}
