package initiate_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/internal/integrations/paymentgw"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

type stubDraftStore struct {
	draft domain.BookingDraft
	terms bool
}

func (s *stubDraftStore) Get(sessionID string) (domain.BookingDraft, bool) {
	return s.draft, s.terms
}

type stubGateway struct {
	lastReq *paymentgw.CreateOrderRequest
	order   *paymentgw.Order
	err     error
}

func (g *stubGateway) CreateOrder(ctx context.Context, req *paymentgw.CreateOrderRequest) (*paymentgw.Order, error) {
	g.lastReq = req
	if g.err != nil {
		return nil, g.err
	}
	return g.order, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func completeDraft() domain.BookingDraft {
	return domain.BookingDraft{
		CustomerName:   "Anita",
		CustomerPhone:  "9876543210",
		PickupDate:     types.DateString("2024-06-01"),
		PickupTime:     types.TimeString("10:00"),
		DropDate:       types.DateString("2024-06-04"),
		DropTime:       types.TimeString("10:00"),
		PickupLocation: "City Center",
		CarID:          ptr.Ptr(int64(7)),
		CarName:        "Swift",
		TotalAmount:    6600,
	}
}

func TestExecute_CreatesOrderForAdvance(t *testing.T) {
	gw := &stubGateway{order: &paymentgw.Order{
		ID:       "order_123",
		Amount:   200000,
		Currency: "INR",
		Status:   "created",
	}}
	store := &stubDraftStore{draft: completeDraft(), terms: true}
	uc := NewUseCase(store, gw, 2000, "INR", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "order_123", resp.OrderID)
	assert.Equal(t, int64(200000), resp.Amount)
	assert.Equal(t, "INR", resp.Currency)
	assert.Equal(t, "Anita", resp.CustomerName)
	assert.Equal(t, "Swift", resp.CarName)
	assert.Equal(t, 6600.0, resp.TotalPrice)

	// Аванс уходит в шлюз в минимальных единицах валюты
	require.NotNil(t, gw.lastReq)
	assert.Equal(t, int64(200000), gw.lastReq.Amount)
	assert.Equal(t, "INR", gw.lastReq.Currency)
	assert.Equal(t, "2024-06-01 10:00", gw.lastReq.Notes["pickup"])
	assert.Equal(t, "Swift", gw.lastReq.Notes["car"])
}

func TestExecute_RequiresIntakeData(t *testing.T) {
	gw := &stubGateway{}
	store := &stubDraftStore{draft: domain.BookingDraft{}, terms: true}
	uc := NewUseCase(store, gw, 2000, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrIncompleteDraft)
	assert.Nil(t, gw.lastReq)
}

func TestExecute_RequiresAcceptedTerms(t *testing.T) {
	gw := &stubGateway{}
	store := &stubDraftStore{draft: completeDraft(), terms: false}
	uc := NewUseCase(store, gw, 2000, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrTermsNotAccepted)
	assert.Nil(t, gw.lastReq)
}

func TestExecute_RequiresSelectedCar(t *testing.T) {
	draft := completeDraft()
	draft.CarID = nil
	gw := &stubGateway{}
	store := &stubDraftStore{draft: draft, terms: true}
	uc := NewUseCase(store, gw, 2000, "INR", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

	assert.ErrorIs(t, err, ErrNoCarSelected)
	assert.Nil(t, gw.lastReq)
}

func TestExecute_MapsGatewayErrors(t *testing.T) {
	tests := []struct {
		name    string
		gateway error
		want    error
	}{
		{"rejected", paymentgw.ErrOrderRejected, ErrGatewayRejected},
		{"unavailable", paymentgw.ErrUnavailable, ErrGatewayUnavailable},
		{"internal", paymentgw.ErrInternal, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &stubGateway{err: tt.gateway}
			store := &stubDraftStore{draft: completeDraft(), terms: true}
			uc := NewUseCase(store, gw, 2000, "INR", nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{SessionID: "s1"})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}
