package quote_price

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urinakcleaning/booking-service/internal/domain"
	"github.com/urinakcleaning/booking-service/internal/pricing"
	quotePrice "github.com/urinakcleaning/booking-service/internal/usecase/quote_price"
)

type useCaseMock struct {
	req *quotePrice.Request
	err error
}

func (m *useCaseMock) Execute(_ context.Context, req *quotePrice.Request) (*quotePrice.Response, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	bd := pricing.Compute(req.Draft, nil)
	return &quotePrice.Response{Breakdown: bd, Frozen: pricing.Freeze(bd)}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, nopLogger{})

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/pricing/quote",
		strings.NewReader(`{"serviceType":"airbnb","bedrooms":2,"tip":{"type":"percentage","percentage":10}}`)))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"basePrice": "60.00",
		"baseDurationMinutes": 180,
		"extrasTotal": "0.00",
		"extrasDurationMinutes": 0,
		"subtotal": "60.00",
		"tipAmount": "6.00",
		"total": "66.00",
		"totalDurationMinutes": 180,
		"quoteBased": false
	}`, w.Body.String())
	assert.Equal(t, domain.ServiceAirbnb, uc.req.Draft.ServiceType)
}

func TestHandler_Errors(t *testing.T) {
	w := httptest.NewRecorder()
	NewHandler(&useCaseMock{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	NewHandler(&useCaseMock{err: errors.New("db")}, nopLogger{}).
		Handle(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"serviceType":"deep"}`)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
