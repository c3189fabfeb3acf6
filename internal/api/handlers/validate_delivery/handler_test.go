package validate_delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	validateSelection "github.com/m04kA/SMC-DeliveryService/internal/usecase/validate_selection"
)

type fakeUseCase struct {
	resp *validateSelection.Response
	err  error
	got  *validateSelection.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *validateSelection.Request) (*validateSelection.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleAccepted(t *testing.T) {
	uc := &fakeUseCase{resp: &validateSelection.Response{OK: true}}

	rec := doRequest(t, uc, "/api/v1/delivery/validate?shop=demo.myshopify.com",
		`{"delivery_date":"2025-03-12","delivery_time":"午前中","product_ids":[1,2]}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	require.NotNil(t, uc.got)
	assert.Equal(t, "demo.myshopify.com", uc.got.Shop)
	assert.Equal(t, "2025-03-12", uc.got.DeliveryDate)
	assert.Equal(t, []int64{1, 2}, uc.got.ProductIDs)
}

func TestHandleRejectedOutOfRange(t *testing.T) {
	uc := &fakeUseCase{resp: &validateSelection.Response{
		OK:      false,
		Reason:  validateSelection.ReasonOutOfRange,
		Message: "delivery date must be between 2025-03-11 and 2025-03-13",
		MinDate: "2025-03-11",
		MaxDate: "2025-03-13",
	}}

	rec := doRequest(t, uc, "/api/v1/delivery/validate?shop=demo.myshopify.com",
		`{"delivery_date":"2025-03-20"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, validateSelection.ReasonOutOfRange, resp.Reason)
	assert.Equal(t, "2025-03-11", resp.MinDate)
	assert.Equal(t, "2025-03-13", resp.MaxDate)
}

func TestHandleInvalidJSON(t *testing.T) {
	uc := &fakeUseCase{resp: &validateSelection.Response{OK: true}}

	rec := doRequest(t, uc, "/api/v1/delivery/validate?shop=demo.myshopify.com", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ValidateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_json", resp.Reason)
	assert.Nil(t, uc.got, "use case must not run on malformed body")
}

func TestHandleMissingShop(t *testing.T) {
	uc := &fakeUseCase{resp: &validateSelection.Response{OK: true}}

	rec := doRequest(t, uc, "/api/v1/delivery/validate", `{"delivery_date":"2025-03-12"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandleConfigFault(t *testing.T) {
	uc := &fakeUseCase{err: validateSelection.ErrConfigFault}

	rec := doRequest(t, uc, "/api/v1/delivery/validate?shop=demo.myshopify.com",
		`{"delivery_date":"2025-03-12"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "config_fault")
}
