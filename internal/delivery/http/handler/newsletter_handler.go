package handler

import (
	"encoding/json"
	"net/http"

	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/usecase"
	"smashlabs-backend/pkg/response"
	"smashlabs-backend/pkg/validator"
)

type NewsletterHandler struct {
	newsletterUsecase usecase.NewsletterUsecase
	validator         *validator.CustomValidator
}

func NewNewsletterHandler(newsletterUsecase usecase.NewsletterUsecase, validator *validator.CustomValidator) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUsecase: newsletterUsecase,
		validator:         validator,
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	subscriber, err := h.newsletterUsecase.Subscribe(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAlreadySubscribed:
			response.Conflict(w, "This email is already subscribed", nil)
		default:
			response.InternalServerError(w, "Failed to subscribe")
		}
		return
	}

	// A revived subscription is a 200 on the existing row, not a new resource.
	if subscriber.Reactivated {
		response.Success(w, http.StatusOK, "Subscription reactivated", subscriber)
		return
	}
	response.Success(w, http.StatusCreated, "Subscribed successfully", subscriber)
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	subscriber, err := h.newsletterUsecase.Unsubscribe(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrSubscriberNotFound:
			response.NotFound(w, "Subscriber not found")
		default:
			response.InternalServerError(w, "Failed to unsubscribe")
		}
		return
	}

	response.Success(w, http.StatusOK, "Unsubscribed successfully", subscriber)
}
