package service

import (
	"context"
	"testing"

	"rsvp-service/internal/model"
	"rsvp-service/internal/queue"
	"rsvp-service/internal/repository/mocks"
	apperrors "rsvp-service/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type notificationQueueMock struct {
	mock.Mock
}

func (m *notificationQueueMock) Publish(ctx context.Context, n *queue.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *notificationQueueMock) Subscribe(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}

func TestGuestServiceCreate(t *testing.T) {
	t.Run("DefaultsToPending", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		event := &model.Event{ID: 42, UserID: 7}
		eventRepo.On("FindByIDForOwner", mock.Anything, 42, 7).Return(event, nil).Once()
		guestRepo.On("Create", mock.Anything, mock.MatchedBy(func(g *model.Guest) bool {
			return g.EventID == 42 && g.RSVPStatus == model.RSVPStatusPending && g.GuestID.String() != ""
		})).Return(&model.Guest{ID: 1, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusPending}, nil).Once()

		got, err := svc.Create(context.Background(), 7, 42, &model.Guest{Name: "A"})

		assert.NoError(t, err)
		assert.Equal(t, model.RSVPStatusPending, got.RSVPStatus)
		guestRepo.AssertExpectations(t)
	})

	t.Run("EventNotFound", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		eventRepo.On("FindByIDForOwner", mock.Anything, 999, 7).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Create(context.Background(), 7, 999, &model.Guest{Name: "A"})

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		guestRepo.AssertNotCalled(t, "Create")
	})
}

func TestGuestServiceUpdateByID(t *testing.T) {
	t.Run("StatusChangePublishesNotification", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		status := model.RSVPStatusConfirmed
		existing := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusPending}
		updated := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusConfirmed}

		guestRepo.On("FindByIDForOwner", mock.Anything, 5, 7).Return(existing, nil).Once()
		guestRepo.On("Update", mock.Anything, 5, mock.Anything).Return(updated, nil).Once()
		notify.On("Publish", mock.Anything, mock.MatchedBy(func(n *queue.Notification) bool {
			return n.GuestID == 5 && n.EventID == 42 && n.Status == model.RSVPStatusConfirmed
		})).Return(nil).Once()

		got, err := svc.UpdateByID(context.Background(), 5, 7, model.UpdateGuestParams{RSVPStatus: &status})

		assert.NoError(t, err)
		assert.Equal(t, updated, got)
		notify.AssertExpectations(t)
	})

	t.Run("SameStatusDoesNotPublish", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		status := model.RSVPStatusPending
		existing := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusPending}

		guestRepo.On("FindByIDForOwner", mock.Anything, 5, 7).Return(existing, nil).Once()
		guestRepo.On("Update", mock.Anything, 5, mock.Anything).Return(existing, nil).Once()

		_, err := svc.UpdateByID(context.Background(), 5, 7, model.UpdateGuestParams{RSVPStatus: &status})

		assert.NoError(t, err)
		notify.AssertNotCalled(t, "Publish")
	})

	t.Run("NameOnlyUpdateDoesNotPublish", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		name := "B"
		existing := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusPending}
		updated := &model.Guest{ID: 5, EventID: 42, Name: "B", RSVPStatus: model.RSVPStatusPending}

		guestRepo.On("FindByIDForOwner", mock.Anything, 5, 7).Return(existing, nil).Once()
		guestRepo.On("Update", mock.Anything, 5, mock.Anything).Return(updated, nil).Once()

		_, err := svc.UpdateByID(context.Background(), 5, 7, model.UpdateGuestParams{Name: &name})

		assert.NoError(t, err)
		notify.AssertNotCalled(t, "Publish")
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		status := model.RSVPStatus("maybe")
		_, err := svc.UpdateByID(context.Background(), 5, 7, model.UpdateGuestParams{RSVPStatus: &status})

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		guestRepo.AssertNotCalled(t, "FindByIDForOwner")
	})

	t.Run("PublishFailureDoesNotFailUpdate", func(t *testing.T) {
		guestRepo := mocks.NewGuestRepositoryMock()
		eventRepo := mocks.NewEventRepositoryMock()
		notify := &notificationQueueMock{}
		svc := NewGuestService(guestRepo, eventRepo, notify)

		status := model.RSVPStatusDeclined
		existing := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusPending}
		updated := &model.Guest{ID: 5, EventID: 42, Name: "A", RSVPStatus: model.RSVPStatusDeclined}

		guestRepo.On("FindByIDForOwner", mock.Anything, 5, 7).Return(existing, nil).Once()
		guestRepo.On("Update", mock.Anything, 5, mock.Anything).Return(updated, nil).Once()
		notify.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError).Once()

		got, err := svc.UpdateByID(context.Background(), 5, 7, model.UpdateGuestParams{RSVPStatus: &status})

		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})
}
