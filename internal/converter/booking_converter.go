package converter

import (
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to its response DTO.
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:            booking.ID,
		ReferenceCode: booking.ReferenceCode,
		Name:          booking.Name,
		Email:         booking.Email,
		Phone:         booking.Phone,
		PackageName:   booking.PackageName,
		PartySize:     booking.PartySize,
		PreferredDate: booking.PreferredDate,
		TimeSlot:      booking.TimeSlot,
		Status:        string(booking.Status),
		ConfirmedAt:   booking.ConfirmedAt,
		CancelledAt:   booking.CancelledAt,
		CompletedAt:   booking.CompletedAt,
		AdminNotes:    booking.AdminNotes,
		CreatedAt:     booking.CreatedAt,
		UpdatedAt:     booking.UpdatedAt,
	}
}

func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = *BookingToResponse(&booking)
	}
	return responses
}
