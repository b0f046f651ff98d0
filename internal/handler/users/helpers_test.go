package users

import (
	"errors"
	"net/http/httptest"
	"strings"
	"time"

	"admarket/internal/model"

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

// newJSONCtx 建立帶 JSON body 的 echo context
func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
