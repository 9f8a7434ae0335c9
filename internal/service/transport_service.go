package service

import (
	"context"

	"rsvp-service/internal/model"
	"rsvp-service/internal/repository"
	apperrors "rsvp-service/pkg/app_errors"
)

type TransportService interface {
	// Save validates and upserts the transport wizard step for an event the
	// owner can see.
	Save(ctx context.Context, ownerID int, pref *model.TransportPreference) (*model.TransportPreference, error)
	GetByEventID(ctx context.Context, eventID, ownerID int) (*model.TransportPreference, error)
}

type TransportServiceImpl struct {
	repo      repository.TransportRepository
	eventRepo repository.EventRepository
}

func NewTransportService(repo repository.TransportRepository, eventRepo repository.EventRepository) TransportService {
	return &TransportServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *TransportServiceImpl) Save(ctx context.Context, ownerID int, pref *model.TransportPreference) (*model.TransportPreference, error) {
	if !pref.Mode.IsValid() || !pref.FlightMode.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	event, err := s.eventRepo.FindByIDForOwner(ctx, pref.EventID, ownerID)
	if err != nil {
		return nil, err
	}
	pref.EventID = event.ID
	return s.repo.Upsert(ctx, pref)
}

func (s *TransportServiceImpl) GetByEventID(ctx context.Context, eventID, ownerID int) (*model.TransportPreference, error) {
	event, err := s.eventRepo.FindByIDForOwner(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByEventID(ctx, event.ID)
}
