package converter

import (
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
)

func ContactTicketToResponse(ticket *entity.ContactTicket) *dto.ContactTicketResponse {
	if ticket == nil {
		return nil
	}

	return &dto.ContactTicketResponse{
		ID:         ticket.ID,
		Name:       ticket.Name,
		Email:      ticket.Email,
		Subject:    ticket.Subject,
		Message:    ticket.Message,
		Status:     string(ticket.Status),
		AdminNotes: ticket.AdminNotes,
		CreatedAt:  ticket.CreatedAt,
		UpdatedAt:  ticket.UpdatedAt,
	}
}

func ContactTicketsToResponses(tickets []entity.ContactTicket) []dto.ContactTicketResponse {
	responses := make([]dto.ContactTicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = *ContactTicketToResponse(&ticket)
	}
	return responses
}
