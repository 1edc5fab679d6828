package models

import (
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// BookingResponse подтвержденное бронирование
type BookingResponse struct {
	ID         int64  `json:"id"`
	BookingRef string `json:"bookingRef"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	CarID    int64  `json:"carId"`
	CarName  string `json:"carName"`
	CarBrand string `json:"carBrand"`

	PickupAt       time.Time `json:"pickupAt"`
	DropAt         time.Time `json:"dropAt"`
	PickupLocation *string   `json:"pickupLocation,omitempty"`

	TotalDays  int `json:"totalDays"`
	ExtraHours int `json:"extraHours"`

	BasePrice   float64 `json:"basePrice"`
	TotalAmount float64 `json:"totalAmount"`

	AdvanceAmount float64 `json:"advanceAmount"`
	DepositType   string  `json:"depositType"`
	DepositAmount float64 `json:"depositAmount"`

	PaymentRef string `json:"paymentRef"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             booking.ID,
		BookingRef:     booking.BookingRef,
		CustomerName:   booking.CustomerName,
		CustomerPhone:  booking.CustomerPhone,
		CarID:          booking.CarID,
		CarName:        booking.CarName,
		CarBrand:       booking.CarBrand,
		PickupAt:       booking.PickupAt,
		DropAt:         booking.DropAt,
		PickupLocation: booking.PickupLocation,
		TotalDays:      booking.TotalDays,
		ExtraHours:     booking.ExtraHours,
		BasePrice:      booking.BasePrice,
		TotalAmount:    booking.TotalAmount,
		AdvanceAmount:  booking.AdvanceAmount,
		DepositType:    string(booking.DepositType),
		DepositAmount:  booking.DepositAmount,
		PaymentRef:     booking.PaymentRef,
		CreatedAt:      booking.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(booking))
	}
	return resp
}
