package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/usecase"
	"smashlabs-backend/pkg/response"
	"smashlabs-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type CorporateBookingHandler struct {
	corporateUsecase usecase.CorporateBookingUsecase
	validator        *validator.CustomValidator
}

func NewCorporateBookingHandler(corporateUsecase usecase.CorporateBookingUsecase, validator *validator.CustomValidator) *CorporateBookingHandler {
	return &CorporateBookingHandler{
		corporateUsecase: corporateUsecase,
		validator:        validator,
	}
}

func (h *CorporateBookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCorporateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.corporateUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		var dup *usecase.DuplicateBookingError
		switch {
		case errors.As(err, &dup):
			response.Conflict(w, "A booking for this company, email and date already exists", dto.DuplicateBookingResponse{
				ExistingReferenceCode: dup.ReferenceCode,
				ExistingStatus:        string(dup.Status),
			})
		case errors.Is(err, usecase.ErrDateInPast):
			response.Error(w, http.StatusBadRequest, "Preferred date must be in the future", nil)
		case errors.Is(err, usecase.ErrReferenceExhausted):
			response.Conflict(w, "Could not allocate a booking reference, please retry", nil)
		default:
			response.InternalServerError(w, "Failed to create corporate booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Corporate booking created successfully", booking)
}

func (h *CorporateBookingHandler) GetBookingByReference(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	booking, err := h.corporateUsecase.GetByReference(r.Context(), vars["reference"])
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Corporate booking not found")
		default:
			response.InternalServerError(w, "Failed to get corporate booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Corporate booking retrieved successfully", booking)
}

func (h *CorporateBookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.corporateUsecase.ListBookings(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get corporate bookings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Corporate bookings retrieved successfully", bookings)
}

func (h *CorporateBookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.corporateUsecase.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Corporate booking not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid target status", nil)
		default:
			response.InternalServerError(w, "Failed to update corporate booking status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Corporate booking status updated successfully", booking)
}
