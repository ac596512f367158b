package converter

import (
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
)

func RegistrationToResponse(registration *entity.Registration) *dto.RegistrationResponse {
	if registration == nil {
		return nil
	}

	return &dto.RegistrationResponse{
		ID:             registration.ID,
		ReferenceCode:  registration.ReferenceCode,
		Name:           registration.Name,
		Email:          registration.Email,
		Interests:      registration.Interests,
		Status:         string(registration.Status),
		UnsubscribedAt: registration.UnsubscribedAt,
		CreatedAt:      registration.CreatedAt,
		UpdatedAt:      registration.UpdatedAt,
	}
}

func RegistrationsToResponses(registrations []entity.Registration) []dto.RegistrationResponse {
	responses := make([]dto.RegistrationResponse, len(registrations))
	for i, registration := range registrations {
		responses[i] = *RegistrationToResponse(&registration)
	}
	return responses
}

func SubscriberToResponse(subscriber *entity.Subscriber, reactivated bool) *dto.SubscriberResponse {
	if subscriber == nil {
		return nil
	}

	return &dto.SubscriberResponse{
		ID:             subscriber.ID,
		Email:          subscriber.Email,
		Status:         string(subscriber.Status),
		SubscribedAt:   subscriber.SubscribedAt,
		UnsubscribedAt: subscriber.UnsubscribedAt,
		Reactivated:    reactivated,
	}
}
