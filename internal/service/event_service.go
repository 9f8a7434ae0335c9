package service

import (
	"context"

	"rsvp-service/internal/model"
	"rsvp-service/internal/repository"
)

type EventService interface {
	List(ctx context.Context, ownerID int) ([]*model.Event, error)
	GetByID(ctx context.Context, id, ownerID int) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error)
	DeleteByID(ctx context.Context, id, ownerID int) error
	// ListGuests confirms the event is visible to the owner, then returns its
	// guest list unchanged.
	ListGuests(ctx context.Context, id, ownerID int) ([]*model.Guest, error)
}

type EventServiceImpl struct {
	repo      repository.EventRepository
	guestRepo repository.GuestRepository
}

func NewEventService(repo repository.EventRepository, guestRepo repository.GuestRepository) EventService {
	return &EventServiceImpl{repo: repo, guestRepo: guestRepo}
}

func (s *EventServiceImpl) List(ctx context.Context, ownerID int) ([]*model.Event, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id, ownerID int) (*model.Event, error) {
	return s.repo.FindByIDForOwner(ctx, id, ownerID)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, event.ID, params)
}

func (s *EventServiceImpl) DeleteByID(ctx context.Context, id, ownerID int) error {
	event, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, event.ID)
}

func (s *EventServiceImpl) ListGuests(ctx context.Context, id, ownerID int) ([]*model.Guest, error) {
	event, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return s.guestRepo.ListByEventID(ctx, event.ID)
}
