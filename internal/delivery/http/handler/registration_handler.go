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

type RegistrationHandler struct {
	registrationUsecase usecase.RegistrationUsecase
	validator           *validator.CustomValidator
}

func NewRegistrationHandler(registrationUsecase usecase.RegistrationUsecase, validator *validator.CustomValidator) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		validator:           validator,
	}
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	registration, err := h.registrationUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailRegistered:
			response.Conflict(w, "This email is already registered", nil)
		case usecase.ErrReferenceExhausted:
			response.Conflict(w, "Could not allocate a registration code, please retry", nil)
		default:
			response.InternalServerError(w, "Failed to create registration")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Registration created successfully", registration)
}

func (h *RegistrationHandler) GetAllRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.registrationUsecase.ListRegistrations(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		switch err {
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid status filter", nil)
		default:
			response.InternalServerError(w, "Failed to get registrations")
		}
		return
	}

	response.Success(w, http.StatusOK, "Registrations retrieved successfully", registrations)
}

func (h *RegistrationHandler) UpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	registrationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid registration ID", nil)
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

	registration, err := h.registrationUsecase.UpdateStatus(r.Context(), registrationID, req.Status)
	if err != nil {
		switch err {
		case usecase.ErrRegistrationNotFound:
			response.NotFound(w, "Registration not found")
		case usecase.ErrInvalidStatus:
			response.Error(w, http.StatusBadRequest, "Invalid target status", nil)
		default:
			response.InternalServerError(w, "Failed to update registration status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Registration status updated successfully", registration)
}
