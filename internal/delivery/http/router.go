package http

import (
	"net/http"

	"smashlabs-backend/internal/delivery/http/handler"
	"smashlabs-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	bookingHandler      *handler.BookingHandler
	corporateHandler    *handler.CorporateBookingHandler
	registrationHandler *handler.RegistrationHandler
	newsletterHandler   *handler.NewsletterHandler
	contactHandler      *handler.ContactHandler
	reportHandler       *handler.ReportHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	bookingHandler *handler.BookingHandler,
	corporateHandler *handler.CorporateBookingHandler,
	registrationHandler *handler.RegistrationHandler,
	newsletterHandler *handler.NewsletterHandler,
	contactHandler *handler.ContactHandler,
	reportHandler *handler.ReportHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		bookingHandler:      bookingHandler,
		corporateHandler:    corporateHandler,
		registrationHandler: registrationHandler,
		newsletterHandler:   newsletterHandler,
		contactHandler:      contactHandler,
		reportHandler:       reportHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking routes
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{reference}", r.bookingHandler.GetBookingByReference).Methods(http.MethodGet)
	api.HandleFunc("/corporate-bookings", r.corporateHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/corporate-bookings/{reference}", r.corporateHandler.GetBookingByReference).Methods(http.MethodGet)

	// Community and marketing routes
	api.HandleFunc("/registrations", r.registrationHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/newsletter/subscribe", r.newsletterHandler.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/newsletter/unsubscribe", r.newsletterHandler.Unsubscribe).Methods(http.MethodPost)
	api.HandleFunc("/contact", r.contactHandler.CreateTicket).Methods(http.MethodPost)

	// Admin routes (deliberately unauthenticated, fronted by the internal
	// network in deployment)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/bookings", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPut)
	admin.HandleFunc("/corporate-bookings", r.corporateHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/corporate-bookings/{id}/status", r.corporateHandler.UpdateBookingStatus).Methods(http.MethodPut)
	admin.HandleFunc("/registrations", r.registrationHandler.GetAllRegistrations).Methods(http.MethodGet)
	admin.HandleFunc("/registrations/{id}/status", r.registrationHandler.UpdateRegistrationStatus).Methods(http.MethodPut)
	admin.HandleFunc("/contact-tickets", r.contactHandler.GetAllTickets).Methods(http.MethodGet)
	admin.HandleFunc("/contact-tickets/{id}/status", r.contactHandler.UpdateTicketStatus).Methods(http.MethodPut)
	admin.HandleFunc("/reports/summary", r.reportHandler.GetSummary).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
