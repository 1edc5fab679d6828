package list_enquiries

import (
	"context"

	"github.com/rentovia/SDC-RentalService/internal/service/enquiries/models"
)

type EnquiryService interface {
	List(ctx context.Context, status *string) (*models.EnquiryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
