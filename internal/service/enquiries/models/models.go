package models

import (
	"time"

	"github.com/rentovia/SDC-RentalService/internal/domain"
)

// EnquiryResponse заявка на аренду
type EnquiryResponse struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	PickupAt       time.Time `json:"pickupAt"`
	DropAt         time.Time `json:"dropAt"`
	PickupLocation *string   `json:"pickupLocation,omitempty"`

	TotalDays    int    `json:"totalDays"`
	ExtraHours   int    `json:"extraHours"`
	Transmission string `json:"transmission"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnquiryListResponse список заявок
type EnquiryListResponse struct {
	Enquiries []EnquiryResponse `json:"enquiries"`
}

// FromDomainEnquiry конвертирует domain модель в response
func FromDomainEnquiry(enq *domain.Enquiry) *EnquiryResponse {
	return &EnquiryResponse{
		ID:             enq.ID,
		CustomerName:   enq.CustomerName,
		CustomerPhone:  enq.CustomerPhone,
		PickupAt:       enq.PickupAt,
		DropAt:         enq.DropAt,
		PickupLocation: enq.PickupLocation,
		TotalDays:      enq.TotalDays,
		ExtraHours:     enq.ExtraHours,
		Transmission:   string(enq.Transmission),
		Status:         string(enq.Status),
		CreatedAt:      enq.CreatedAt,
		UpdatedAt:      enq.UpdatedAt,
	}
}

// FromDomainEnquiryList конвертирует список domain моделей в response
func FromDomainEnquiryList(enquiries []*domain.Enquiry) *EnquiryListResponse {
	resp := &EnquiryListResponse{
		Enquiries: make([]EnquiryResponse, 0, len(enquiries)),
	}
	for _, enq := range enquiries {
		resp.Enquiries = append(resp.Enquiries, *FromDomainEnquiry(enq))
	}
	return resp
}
