package repository

import (
	"context"
	"errors"

	"smashlabs-backend/internal/domain/entity"
	domainRepo "smashlabs-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactTicketRepository struct {
	db *gorm.DB
}

func NewContactTicketRepository(db *gorm.DB) domainRepo.ContactTicketRepository {
	return &contactTicketRepository{db: db}
}

func (r *contactTicketRepository) Create(ctx context.Context, ticket *entity.ContactTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *contactTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactTicket, error) {
	var ticket entity.ContactTicket
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *contactTicketRepository) FindAll(ctx context.Context, status entity.TicketStatus) ([]entity.ContactTicket, error) {
	var tickets []entity.ContactTicket
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *contactTicketRepository) Save(ctx context.Context, ticket *entity.ContactTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *contactTicketRepository) CountByStatus(ctx context.Context) (map[entity.TicketStatus]int64, error) {
	return countByStatus[entity.TicketStatus](r.db.WithContext(ctx), &entity.ContactTicket{})
}
