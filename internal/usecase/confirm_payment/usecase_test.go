package confirm_payment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	"github.com/rentovia/SDC-RentalService/pkg/ptr"
	"github.com/rentovia/SDC-RentalService/pkg/types"
)

type stubDraftStore struct {
	draft     domain.BookingDraft
	lastPatch *domain.DraftPatch
}

func (s *stubDraftStore) Get(sessionID string) (domain.BookingDraft, bool) {
	return s.draft, true
}

func (s *stubDraftStore) Update(sessionID string, patch domain.DraftPatch) domain.BookingDraft {
	s.lastPatch = &patch
	patch.Apply(&s.draft)
	return s.draft
}

type stubBookingRepo struct {
	created   *domain.Booking
	createErr error
	taken     map[string]bool
}

func (r *stubBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = booking
	booking.ID = 1
	return booking, nil
}

func (r *stubBookingRepo) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	return r.taken[ref], nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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
		DropTime:       types.TimeString("14:00"),
		PickupLocation: "Airport",
		CarID:          ptr.Ptr(int64(7)),
		CarName:        "Swift",
		CarBrand:       "Maruti",
		TotalDays:      3,
		ExtraHours:     4,
		BasePrice:      2200,
		TotalAmount:    6967,
	}
}

func newTestUseCase(store *stubDraftStore, repo *stubBookingRepo) *UseCase {
	uc := NewUseCase(store, repo, passthroughTxManager{}, 2000, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.UnixMilli(1717236000000)}
	return uc
}

func TestExecute_SuccessConfirmsBooking(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	repo := &stubBookingRepo{}
	uc := newTestUseCase(store, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:     "s1",
		Status:        StatusSuccess,
		PaymentRef:    "pay_42",
		DepositType:   domain.DepositCash,
		DepositAmount: 2000,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, resp.Status)
	assert.True(t, strings.HasPrefix(resp.BookingRef, "BK-1717236000000-"), "got %s", resp.BookingRef)

	// Бронирование денормализовано из черновика
	require.NotNil(t, repo.created)
	assert.Equal(t, resp.BookingRef, repo.created.BookingRef)
	assert.Equal(t, "Anita", repo.created.CustomerName)
	assert.Equal(t, int64(7), repo.created.CarID)
	assert.Equal(t, 3, repo.created.TotalDays)
	assert.Equal(t, 4, repo.created.ExtraHours)
	assert.Equal(t, 6967.0, repo.created.TotalAmount)
	assert.Equal(t, 2000.0, repo.created.AdvanceAmount)
	assert.Equal(t, "pay_42", repo.created.PaymentRef)

	// Черновик финализирован - guard Confirmation проходит
	require.NotNil(t, store.draft.BookingID)
	assert.Equal(t, resp.BookingRef, *store.draft.BookingID)
	assert.Equal(t, domain.DepositCash, store.draft.DepositType)
	assert.True(t, store.draft.IsTerminal())
}

// collidingRepo объявляет первый проверенный идентификатор занятым
type collidingRepo struct {
	*stubBookingRepo
	checks int
}

func (r *collidingRepo) ExistsByRef(ctx context.Context, ref string) (bool, error) {
	r.checks++
	return r.checks == 1, nil
}

func TestExecute_SuccessRegeneratesRefOnCollision(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	repo := &collidingRepo{stubBookingRepo: &stubBookingRepo{}}
	uc := newTestUseCase(store, &stubBookingRepo{})
	uc.bookingRepo = repo

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:  "s1",
		Status:     StatusSuccess,
		PaymentRef: "pay_42",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.checks)
	require.NotNil(t, repo.created)
	assert.Equal(t, resp.BookingRef, repo.created.BookingRef)
}

func TestExecute_FailureLeavesDraftUntouched(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	repo := &stubBookingRepo{}
	uc := newTestUseCase(store, repo)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:     "s1",
		Status:        StatusFailed,
		FailureReason: "card declined",
	})

	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.Contains(t, err.Error(), "card declined")
	assert.Nil(t, store.lastPatch)
	assert.Nil(t, repo.created)
	assert.Nil(t, store.draft.BookingID)
}

func TestExecute_CancelIsNoOp(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	repo := &stubBookingRepo{}
	uc := newTestUseCase(store, repo)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1",
		Status:    StatusCancelled,
	})

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, resp.Status)
	assert.Nil(t, store.lastPatch)
	assert.Nil(t, repo.created)
}

func TestExecute_SuccessRequiresPaymentRef(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	uc := newTestUseCase(store, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "s1",
		Status:    StatusSuccess,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SuccessRequiresCompleteDraft(t *testing.T) {
	store := &stubDraftStore{draft: domain.BookingDraft{CustomerName: "Anita"}}
	uc := newTestUseCase(store, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:  "s1",
		Status:     StatusSuccess,
		PaymentRef: "pay_42",
	})

	assert.ErrorIs(t, err, ErrIncompleteDraft)
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	uc := newTestUseCase(store, &stubBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Status: "paid"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PersistErrorSurfacesAsInternal(t *testing.T) {
	store := &stubDraftStore{draft: completeDraft()}
	repo := &stubBookingRepo{createErr: errors.New("db down")}
	uc := newTestUseCase(store, repo)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:  "s1",
		Status:     StatusSuccess,
		PaymentRef: "pay_42",
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Nil(t, store.lastPatch)
}
