package update_enquiry

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rentovia/SDC-RentalService/internal/api/handlers"
	"github.com/rentovia/SDC-RentalService/internal/service/enquiries"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEnquiryID   = "invalid enquiry id"
	msgInvalidStatus      = "invalid enquiry status"
	msgNotFound           = "enquiry not found"
)

// UpdateEnquiryRequest HTTP request model
type UpdateEnquiryRequest struct {
	Status string `json:"status"` // new | contacted | closed
}

type Handler struct {
	service EnquiryService
	logger  Logger
}

func NewHandler(service EnquiryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/enquiries/{enquiryId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	enquiryID, err := strconv.ParseInt(vars["enquiryId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/enquiries/{id} - Invalid enquiry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEnquiryID)
		return
	}

	var req UpdateEnquiryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/enquiries/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), enquiryID, req.Status); err != nil {
		switch {
		case errors.Is(err, enquiries.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/enquiries/{id} - Invalid status: enquiry_id=%d, status=%s",
				enquiryID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, enquiries.ErrEnquiryNotFound):
			h.logger.Warn("PATCH /admin/enquiries/{id} - Enquiry not found: enquiry_id=%d", enquiryID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /admin/enquiries/{id} - Failed: enquiry_id=%d, error=%v", enquiryID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/enquiries/{id} - Status updated: enquiry_id=%d, status=%s",
		enquiryID, req.Status)
	handlers.RespondNoContent(w)
}
