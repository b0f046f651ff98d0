package posts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"admarket/internal/database"
	"admarket/internal/middleware"
	"admarket/internal/model"
	"admarket/internal/queue"
	"admarket/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestReservePostHandler(t *testing.T) {
	e := echo.New()
	now := time.Now().UTC()
	newCtx := func(id string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
		ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 8, Role: model.RoleUser})
		return ctx, rec
	}

	postRow := func(p model.Post) *fakeRow {
		return &fakeRow{fill: func(dest []any) { fillPostFields(dest, p) }}
	}
	reservationRow := &fakeRow{fill: func(dest []any) {
		*dest[0].(*int) = 4
		*dest[1].(*int) = 1
		*dest[2].(*int) = 8
		*dest[3].(*string) = model.ReservationStatusActive
		*dest[4].(*time.Time) = now
	}}

	// 依 SQL 內容分流：先查貼文再插入預約
	dispatch := func(postR, insertR *fakeRow) *database.FakeDB {
		return &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				if strings.Contains(sql, "INSERT INTO reservations") {
					require.Equal(t, []any{1, 8}, args)
					return insertR
				}
				return postR
			},
		}
	}

	// invalid id
	ctx, rec := newCtx("abc")
	require.NoError(t, ReservePostHandler(&database.FakeDB{}, nil, &syncPool{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 貼文不存在 → 404
	ctx, rec = newCtx("1")
	h := ReservePostHandler(dispatch(&fakeRow{scanErr: pgx.ErrNoRows}, nil), nil, &syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// 貼文未開放預約 → 400
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(model.Post{ID: 1, AdvertiserID: 5, Type: model.PostTypePost, Title: "A", MediaURL: "u"}), nil), nil, &syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "post does not accept reservations")

	// 預約時間已過 → 400
	past := now.Add(-time.Hour)
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(model.Post{
		ID: 1, AdvertiserID: 5, Type: model.PostTypePost, Title: "A", MediaURL: "u",
		WithReservation: true, ReservationTime: &past,
	}), nil), nil, &syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "reservation time has passed")

	open := model.Post{
		ID: 1, AdvertiserID: 5, Type: model.PostTypePost, Title: "A", MediaURL: "u",
		WithReservation: true,
	}

	// 重複預約 → 409
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(open), &fakeRow{scanErr: &pgconn.PgError{Code: "23505"}}), nil, &syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "post already reserved")

	// 插入失敗 → 500
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(open), &fakeRow{scanErr: pgx.ErrTxClosed}), nil, &syncPool{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// success：無 publisher 時不提交任務
	wp := &syncPool{}
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(open), reservationRow), nil, wp)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "post reserved successfully")
	require.Contains(t, rec.Body.String(), `"status":"active"`)
	require.Zero(t, wp.submitted)

	// success：有 publisher 時在背景發布事件
	wp = &syncPool{}
	var published *queue.ReservationCreatedEvent
	pub := &queue.FakePublisher{
		PublishFn: func(_ context.Context, ev queue.ReservationCreatedEvent) error {
			published = &ev
			return nil
		},
	}
	ctx, rec = newCtx("1")
	h = ReservePostHandler(dispatch(postRow(open), reservationRow), pub, wp)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, 1, wp.submitted)
	require.NotNil(t, published)
	require.Equal(t, 4, published.ReservationID)
	require.Equal(t, 1, published.PostID)
	require.Equal(t, 8, published.ClientID)
}
