package usecase

import (
	"context"
	"errors"
	"strings"

	"smashlabs-backend/internal/converter"
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
	"smashlabs-backend/internal/domain/repository"
	"smashlabs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrTicketNotFound = errors.New("contact ticket not found")

type ContactUsecase interface {
	CreateTicket(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactTicketResponse, error)
	ListTickets(ctx context.Context, status string) (*dto.ContactTicketListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.ContactTicketResponse, error)
}

type contactUsecase struct {
	log        *logrus.Logger
	ticketRepo repository.ContactTicketRepository
	notifier   service.Notifier
}

func NewContactUsecase(
	log *logrus.Logger,
	ticketRepo repository.ContactTicketRepository,
	notifier service.Notifier,
) ContactUsecase {
	return &contactUsecase{
		log:        log,
		ticketRepo: ticketRepo,
		notifier:   notifier,
	}
}

func (u *contactUsecase) CreateTicket(ctx context.Context, req *dto.CreateContactRequest) (*dto.ContactTicketResponse, error) {
	ticket := &entity.ContactTicket{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: strings.TrimSpace(req.Subject),
		Message: req.Message,
		Status:  entity.TicketStatusOpen,
	}

	if err := u.ticketRepo.Create(ctx, ticket); err != nil {
		u.log.Warnf("Failed to create contact ticket for %s: %+v", ticket.Email, err)
		return nil, err
	}

	u.notifier.SendContactAck(ticket)
	u.log.Infof("Contact ticket created: id=%s, subject=%q", ticket.ID, ticket.Subject)
	return converter.ContactTicketToResponse(ticket), nil
}

func (u *contactUsecase) ListTickets(ctx context.Context, status string) (*dto.ContactTicketListResponse, error) {
	var filter entity.TicketStatus
	if status != "" {
		parsed, ok := entity.ParseTicketStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter = parsed
	}

	tickets, err := u.ticketRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list contact tickets: %+v", err)
		return nil, err
	}

	return &dto.ContactTicketListResponse{
		Tickets: converter.ContactTicketsToResponses(tickets),
		Total:   len(tickets),
	}, nil
}

func (u *contactUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.ContactTicketResponse, error) {
	parsed, ok := entity.ParseTicketStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	ticket, err := u.ticketRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find contact ticket %s: %+v", id, err)
		return nil, err
	}
	if ticket == nil {
		return nil, ErrTicketNotFound
	}

	ticket.Status = parsed
	if err := u.ticketRepo.Save(ctx, ticket); err != nil {
		u.log.Warnf("Failed to save contact ticket %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Contact ticket %s transitioned to %s", ticket.ID, parsed)
	return converter.ContactTicketToResponse(ticket), nil
}
