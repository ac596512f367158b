package converter

import (
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
)

func CorporateBookingToResponse(booking *entity.CorporateBooking) *dto.CorporateBookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.CorporateBookingResponse{
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
		CompanyName:   booking.CompanyName,
		ContactPerson: booking.ContactPerson,
		Email:         booking.Email,
		Phone:         booking.Phone,
		TeamSize:      booking.TeamSize,
		EventType:     booking.EventType,
		PreferredDate: booking.PreferredDate,
		Budget:        booking.Budget,
		Message:       booking.Message,
		Status:        string(booking.Status),
		ConfirmedAt:   booking.ConfirmedAt,
		CancelledAt:   booking.CancelledAt,
		CompletedAt:   booking.CompletedAt,
		AdminNotes:    booking.AdminNotes,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func CorporateBookingsToResponses(bookings []entity.CorporateBooking) []dto.CorporateBookingResponse {
	responses := make([]dto.CorporateBookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *CorporateBookingToResponse(&booking)
	}
	return responses
}
