package confirm_payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

// Число попыток подобрать свободный идентификатор бронирования
const refAttempts = 3

// UseCase use case обработки callback платежного шлюза
// Успех порождает идентификатор бронирования, запись о подтвержденном
// бронировании и финализацию черновика. Неуспех и отмена черновик не трогают,
// пользователь может повторить оплату без потери данных.
type UseCase struct {
	draftStore  DraftStore
	bookingRepo BookingRepository
	txManager   TransactionManager

	advanceAmount float64

	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftStore DraftStore,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	advanceAmount float64,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftStore:    draftStore,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		advanceAmount: advanceAmount,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: session=%s, status=%s", req.SessionID, req.Status)

	switch req.Status {
	case StatusSuccess:
		return uc.finalize(ctx, req)
	case StatusFailed:
		// Черновик не трогаем, пользователь может повторить оплату
		uc.logger.Warn("ConfirmPayment: payment failed for session=%s: %s", req.SessionID, req.FailureReason)
		if req.FailureReason != "" {
			return nil, fmt.Errorf("%w: %s", ErrPaymentFailed, req.FailureReason)
		}
		return nil, ErrPaymentFailed
	case StatusCancelled:
		// Закрытие платежного окна - no-op
		uc.logger.Info("ConfirmPayment: payment cancelled for session=%s", req.SessionID)
		return &Response{Status: StatusCancelled}, nil
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
}

// finalize записывает подтвержденное бронирование и финализирует черновик
func (uc *UseCase) finalize(ctx context.Context, req *Request) (*Response, error) {
	if req.PaymentRef == "" {
		return nil, fmt.Errorf("%w: payment reference is required on success", ErrInvalidInput)
	}

	depositType := req.DepositType
	if depositType == "" {
		depositType = domain.DepositNone
	}
	if !domain.IsValidDepositType(depositType) {
		return nil, fmt.Errorf("%w: unknown deposit type %q", ErrInvalidInput, req.DepositType)
	}

	draft, _ := uc.draftStore.Get(req.SessionID)
	if !draft.HasIntakeData() || !draft.HasSelectedCar() {
		uc.logger.Warn("ConfirmPayment: incomplete draft for session=%s", req.SessionID)
		return nil, ErrIncompleteDraft
	}

	pickupAt, err := types.CombineDateTime(draft.PickupDate, draft.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("%w: pickup instant: %v", ErrIncompleteDraft, err)
	}
	dropAt, err := types.CombineDateTime(draft.DropDate, draft.DropTime)
	if err != nil {
		return nil, fmt.Errorf("%w: drop instant: %v", ErrIncompleteDraft, err)
	}

	var location *string
	if draft.PickupLocation != "" {
		location = ptr.Ptr(draft.PickupLocation)
	}

	booking := &domain.Booking{
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		CarID:          *draft.CarID,
		CarName:        draft.CarName,
		CarBrand:       draft.CarBrand,
		PickupAt:       pickupAt,
		DropAt:         dropAt,
		PickupLocation: location,
		TotalDays:      draft.TotalDays,
		ExtraHours:     draft.ExtraHours,
		BasePrice:      draft.BasePrice,
		TotalAmount:    draft.TotalAmount,
		AdvanceAmount:  uc.advanceAmount,
		DepositType:    depositType,
		DepositAmount:  req.DepositAmount,
		PaymentRef:     req.PaymentRef,
	}

	// 1. Записываем бронирование в сериализуемой транзакции
	// Идентификатор уникален best-effort: перед вставкой проверяем занятость
	// и при коллизии генерируем новый
	var bookingRef string
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for attempt := 1; attempt <= refAttempts; attempt++ {
			ref := uc.newBookingRef()

			exists, err := uc.bookingRepo.ExistsByRef(txCtx, ref)
			if err != nil {
				return fmt.Errorf("check booking ref: %w", err)
			}
			if exists {
				uc.logger.Warn("ConfirmPayment: booking ref collision on %s (attempt %d)", ref, attempt)
				continue
			}

			booking.BookingRef = ref
			if _, err := uc.bookingRepo.Create(txCtx, booking); err != nil {
				return fmt.Errorf("create booking: %w", err)
			}
			bookingRef = ref
			return nil
		}
		return fmt.Errorf("no free booking ref after %d attempts", refAttempts)
	})
	if err != nil {
		uc.logger.Error("ConfirmPayment: failed to persist booking for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	// 2. Финализируем черновик - guard шага Confirmation теперь проходит
	uc.draftStore.Update(req.SessionID, domain.DraftPatch{
		BookingID:     ptr.Ptr(bookingRef),
		DepositType:   ptr.Ptr(depositType),
		DepositAmount: ptr.Ptr(req.DepositAmount),
	})

	uc.logger.Info("ConfirmPayment: booking=%s confirmed for session=%s", bookingRef, req.SessionID)

	return &Response{
		BookingRef: bookingRef,
		Status:     StatusSuccess,
	}, nil
}

// newBookingRef генерирует идентификатор вида BK-<unix millis>-<случайный суффикс>
func (uc *UseCase) newBookingRef() string {
	return fmt.Sprintf("BK-%d-%s", uc.timeProvider.Now().UnixMilli(), uuid.NewString()[:8])
}
