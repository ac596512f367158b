package dto

// SummaryReport is the admin dashboard aggregate: counts by status per
// entity family plus the next confirmed sessions.
type SummaryReport struct {
	Bookings          map[string]int64  `json:"bookings"`
	CorporateBookings map[string]int64  `json:"corporate_bookings"`
	Registrations     map[string]int64  `json:"registrations"`
	Subscribers       map[string]int64  `json:"subscribers"`
	ContactTickets    map[string]int64  `json:"contact_tickets"`
	OpenTickets       int64             `json:"open_tickets"`
	UpcomingConfirmed []BookingResponse `json:"upcoming_confirmed"`
}
