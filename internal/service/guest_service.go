package service

import (
	"context"

	"rsvp-service/internal/model"
	"rsvp-service/internal/queue"
	"rsvp-service/internal/repository"
	apperrors "rsvp-service/pkg/app_errors"
	"rsvp-service/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GuestService interface {
	Create(ctx context.Context, ownerID, eventID int, guest *model.Guest) (*model.Guest, error)
	GetByID(ctx context.Context, id, ownerID int) (*model.Guest, error)
	UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateGuestParams) (*model.Guest, error)
	DeleteByID(ctx context.Context, id, ownerID int) error
}

type GuestServiceImpl struct {
	repo      repository.GuestRepository
	eventRepo repository.EventRepository
	notify    queue.NotificationQueue
}

func NewGuestService(repo repository.GuestRepository, eventRepo repository.EventRepository, notify queue.NotificationQueue) GuestService {
	return &GuestServiceImpl{repo: repo, eventRepo: eventRepo, notify: notify}
}

func (s *GuestServiceImpl) Create(ctx context.Context, ownerID, eventID int, guest *model.Guest) (*model.Guest, error) {
	event, err := s.eventRepo.FindByIDForOwner(ctx, eventID, ownerID)
	if err != nil {
		return nil, err
	}
	guest.EventID = event.ID
	if guest.GuestID == uuid.Nil {
		guest.GuestID = uuid.New()
	}
	if guest.RSVPStatus == "" {
		guest.RSVPStatus = model.RSVPStatusPending
	}
	if !guest.RSVPStatus.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, guest)
}

func (s *GuestServiceImpl) GetByID(ctx context.Context, id, ownerID int) (*model.Guest, error) {
	return s.repo.FindByIDForOwner(ctx, id, ownerID)
}

func (s *GuestServiceImpl) UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateGuestParams) (*model.Guest, error) {
	if params.RSVPStatus != nil && !params.RSVPStatus.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	guest, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	statusChanged := params.RSVPStatus != nil && *params.RSVPStatus != guest.RSVPStatus

	updated, err := s.repo.Update(ctx, guest.ID, params)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		// dispatch failure must not fail the update
		n := &queue.Notification{
			GuestID:   updated.ID,
			EventID:   updated.EventID,
			GuestName: updated.Name,
			Status:    updated.RSVPStatus,
		}
		if err := s.notify.Publish(ctx, n); err != nil {
			logger.WithComponent("service").Warn("publish rsvp notification failed",
				zap.Int("guest_id", updated.ID), zap.Error(err))
		}
	}

	return updated, nil
}

func (s *GuestServiceImpl) DeleteByID(ctx context.Context, id, ownerID int) error {
	guest, err := s.repo.FindByIDForOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, guest.ID)
}
