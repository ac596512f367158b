package handler

import (
	"encoding/json"
	"net/http"

	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/usecase"
	"smashlabs-backend/pkg/response"
	"smashlabs-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.contactUsecase.CreateTicket(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to submit message")
		return
	}

	response.Success(w, http.StatusCreated, "Message submitted successfully", ticket)
}

func (h *ContactHandler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.contactUsecase.ListTickets(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get contact tickets")
		}
		return
	}

	response.Success(w, http.StatusOK, "Contact tickets retrieved successfully", tickets)
}

func (h *ContactHandler) UpdateTicketStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ticketID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ticket ID", nil)
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

	ticket, err := h.contactUsecase.UpdateStatus(r.Context(), ticketID, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrTicketNotFound:
			response.NotFound(w, "Contact ticket not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid target status", nil)
		default:
			response.InternalServerError(w, "Failed to update ticket status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ticket status updated successfully", ticket)
}
