package initiate_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/rentovia/SDC-RentalService/internal/integrations/paymentgw"
)

// UseCase use case создания платежного ордера на аванс
// Аванс фиксированный (из конфигурации), остаток и залог оплачиваются при
// получении автомобиля и в ордер не входят
type UseCase struct {
	draftStore DraftStore
	gateway    PaymentGateway

	advanceAmount float64
	currency      string

	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftStore DraftStore,
	gateway PaymentGateway,
	advanceAmount float64,
	currency string,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftStore:    draftStore,
		gateway:       gateway,
		advanceAmount: advanceAmount,
		currency:      currency,
		logger:        logger,
	}
}

// Execute выполняет use case создания платежного ордера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiatePayment: session=%s", req.SessionID)

	// 1. Проверяем предусловия шага Checkout по черновику сессии
	draft, termsAccepted := uc.draftStore.Get(req.SessionID)

	if !draft.HasIntakeData() {
		uc.logger.Warn("InitiatePayment: incomplete draft for session=%s", req.SessionID)
		return nil, ErrIncompleteDraft
	}
	if !termsAccepted {
		uc.logger.Warn("InitiatePayment: terms not accepted for session=%s", req.SessionID)
		return nil, ErrTermsNotAccepted
	}
	if !draft.HasSelectedCar() {
		uc.logger.Warn("InitiatePayment: no car selected for session=%s", req.SessionID)
		return nil, ErrNoCarSelected
	}

	// 2. Создаем ордер на фиксированный аванс в минимальных единицах валюты
	order, err := uc.gateway.CreateOrder(ctx, &paymentgw.CreateOrderRequest{
		Amount:   int64(uc.advanceAmount * 100),
		Currency: uc.currency,
		Receipt:  fmt.Sprintf("rental-%s", req.SessionID),
		Notes: map[string]string{
			"pickup":   fmt.Sprintf("%s %s", draft.PickupDate, draft.PickupTime),
			"drop":     fmt.Sprintf("%s %s", draft.DropDate, draft.DropTime),
			"location": draft.PickupLocation,
			"car":      draft.CarName,
		},
		CustomerName:  draft.CustomerName,
		CustomerPhone: draft.CustomerPhone,
	})
	if err != nil {
		switch {
		case errors.Is(err, paymentgw.ErrOrderRejected):
			uc.logger.Warn("InitiatePayment: order rejected for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayRejected, err)
		case errors.Is(err, paymentgw.ErrUnavailable):
			uc.logger.Error("InitiatePayment: gateway unavailable for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
		default:
			uc.logger.Error("InitiatePayment: failed to create order for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("InitiatePayment: order=%s created for session=%s, amount=%d %s",
		order.ID, req.SessionID, order.Amount, order.Currency)

	return &Response{
		OrderID:      order.ID,
		Amount:       order.Amount,
		Currency:     order.Currency,
		CustomerName: draft.CustomerName,
		Phone:        draft.CustomerPhone,
		CarName:      draft.CarName,
		TotalPrice:   draft.TotalAmount,
	}, nil
}
