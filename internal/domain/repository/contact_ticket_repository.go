package repository

import (
	"context"

	"smashlabs-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type ContactTicketRepository interface {
	Create(ctx context.Context, ticket *entity.ContactTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactTicket, error)
	FindAll(ctx context.Context, status entity.TicketStatus) ([]entity.ContactTicket, error)
	Save(ctx context.Context, ticket *entity.ContactTicket) error
	CountByStatus(ctx context.Context) (map[entity.TicketStatus]int64, error)
}
