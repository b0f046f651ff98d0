package posts

import (
	"errors"
	"net/http/httptest"
	"strings"
	"time"

	"admarket/internal/model"
	"admarket/internal/worker"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

/* ---------- 測試共用的假實作 ---------- */

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

// fakeRow 實作 pgx.Row，fill 依 dest 順序填入欄位值。
type fakeRow struct {
	scanErr error
	fill    func(dest []any)
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	if r.fill != nil {
		r.fill(dest)
	}
	return nil
}

// fakeRows 實作 pgx.Rows，每個 fill 對應一筆資料列。
type fakeRows struct {
	fills   []func(dest []any)
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.fills) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	r.fills[r.idx](dest)
	r.idx++
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

// syncPool 立即執行任務的 worker pool 替身
type syncPool struct{ submitted int }

func (p *syncPool) Submit(t worker.Task) {
	p.submitted++
	if t != nil {
		t()
	}
}
func (p *syncPool) Stop() {}

// fillPostFields 填入貼文的前 14 個掃描欄位，回傳 extra 起始索引。
func fillPostFields(dest []any, p model.Post) int {
	*dest[0].(*int) = p.ID
	*dest[1].(*int) = p.AdvertiserID
	*dest[2].(**int) = p.CategoryID
	*dest[3].(*string) = p.Type
	*dest[4].(*string) = p.Title
	*dest[5].(**string) = p.Description
	*dest[6].(**float64) = p.Price
	*dest[7].(**float64) = p.OldPrice
	*dest[8].(*bool) = p.WithReservation
	*dest[9].(**time.Time) = p.ReservationTime
	*dest[10].(**int) = p.ReservationLimit
	*dest[11].(**string) = p.SocialLink
	*dest[12].(*string) = p.MediaURL
	*dest[13].(*time.Time) = p.CreatedAt
	return 14
}

// newJSONCtx 建立帶 JSON body 的 echo context
func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
