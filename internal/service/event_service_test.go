package service

import (
	"context"
	"errors"
	"testing"

	"rsvp-service/internal/model"
	"rsvp-service/internal/repository/mocks"
	apperrors "rsvp-service/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventServiceListGuests(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		eventRepo := mocks.NewEventRepositoryMock()
		guestRepo := mocks.NewGuestRepositoryMock()
		svc := NewEventService(eventRepo, guestRepo)

		event := &model.Event{ID: 42, UserID: 7, Title: "Reception"}
		guests := []*model.Guest{{ID: 1, EventID: 42, Name: "A"}}

		eventRepo.On("FindByIDForOwner", mock.Anything, 42, 7).Return(event, nil).Once()
		guestRepo.On("ListByEventID", mock.Anything, 42).Return(guests, nil).Once()

		got, err := svc.ListGuests(context.Background(), 42, 7)

		assert.NoError(t, err)
		assert.Equal(t, guests, got)
		eventRepo.AssertExpectations(t)
		guestRepo.AssertExpectations(t)
	})

	t.Run("EventNotFound", func(t *testing.T) {
		eventRepo := mocks.NewEventRepositoryMock()
		guestRepo := mocks.NewGuestRepositoryMock()
		svc := NewEventService(eventRepo, guestRepo)

		eventRepo.On("FindByIDForOwner", mock.Anything, 999, 7).Return(nil, apperrors.ErrEventNotFound).Once()

		got, err := svc.ListGuests(context.Background(), 999, 7)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.Nil(t, got)
		guestRepo.AssertNotCalled(t, "ListByEventID")
	})

	t.Run("GuestLookupFails", func(t *testing.T) {
		eventRepo := mocks.NewEventRepositoryMock()
		guestRepo := mocks.NewGuestRepositoryMock()
		svc := NewEventService(eventRepo, guestRepo)

		event := &model.Event{ID: 42, UserID: 7}
		eventRepo.On("FindByIDForOwner", mock.Anything, 42, 7).Return(event, nil).Once()
		guestRepo.On("ListByEventID", mock.Anything, 42).Return(nil, errors.New("connection reset")).Once()

		got, err := svc.ListGuests(context.Background(), 42, 7)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestEventServiceUpdateByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		eventRepo := mocks.NewEventRepositoryMock()
		guestRepo := mocks.NewGuestRepositoryMock()
		svc := NewEventService(eventRepo, guestRepo)

		title := "New title"
		event := &model.Event{ID: 42, UserID: 7, Title: "Old title"}
		updated := &model.Event{ID: 42, UserID: 7, Title: title}

		eventRepo.On("FindByIDForOwner", mock.Anything, 42, 7).Return(event, nil).Once()
		eventRepo.On("Update", mock.Anything, 42, model.UpdateEventParams{Title: &title}).Return(updated, nil).Once()

		got, err := svc.UpdateByID(context.Background(), 42, 7, model.UpdateEventParams{Title: &title})

		assert.NoError(t, err)
		assert.Equal(t, updated, got)
		eventRepo.AssertExpectations(t)
	})

	t.Run("OtherOwnersEventLooksAbsent", func(t *testing.T) {
		eventRepo := mocks.NewEventRepositoryMock()
		guestRepo := mocks.NewGuestRepositoryMock()
		svc := NewEventService(eventRepo, guestRepo)

		title := "New title"
		eventRepo.On("FindByIDForOwner", mock.Anything, 42, 8).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.UpdateByID(context.Background(), 42, 8, model.UpdateEventParams{Title: &title})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		eventRepo.AssertNotCalled(t, "Update")
	})
}
