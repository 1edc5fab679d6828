package rentals

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentovia/SDC-RentalService/internal/domain"
	bookingRepo "github.com/rentovia/SDC-RentalService/internal/infra/storage/booking"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (r *stubBookingRepo) List(ctx context.Context) ([]*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.bookings, nil
}

func (r *stubBookingRepo) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.bookings {
		if b.BookingRef == ref {
			return b, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList_ReturnsBookings(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 2, BookingRef: "BK-1717236000000-deadbeef", CustomerName: "Priya Sharma"},
		{ID: 1, BookingRef: "BK-1717235000000-cafebabe", CustomerName: "Arjun Mehta"},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "BK-1717236000000-deadbeef", resp.Bookings[0].BookingRef)
	assert.Equal(t, "Priya Sharma", resp.Bookings[0].CustomerName)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &stubBookingRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByRef_Found(t *testing.T) {
	repo := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BookingRef: "BK-1717236000000-deadbeef", TotalAmount: 19000},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByRef(context.Background(), "BK-1717236000000-deadbeef")
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 19000.0, resp.TotalAmount)
}

func TestGetByRef_NotFound(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, nopLogger{})

	_, err := svc.GetByRef(context.Background(), "BK-0-missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
