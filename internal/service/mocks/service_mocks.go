package mocks

import (
	"context"

	"rsvp-service/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) List(ctx context.Context, ownerID int) ([]*model.Event, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) GetByID(ctx context.Context, id, ownerID int) (*model.Event, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	args := m.Called(ctx, event)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateEventParams) (*model.Event, error) {
	args := m.Called(ctx, id, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) DeleteByID(ctx context.Context, id, ownerID int) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *EventServiceMock) ListGuests(ctx context.Context, id, ownerID int) ([]*model.Guest, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Guest), args.Error(1)
}

type GuestServiceMock struct {
	mock.Mock
}

func NewGuestServiceMock() *GuestServiceMock {
	return &GuestServiceMock{}
}

func (m *GuestServiceMock) Create(ctx context.Context, ownerID, eventID int, guest *model.Guest) (*model.Guest, error) {
	args := m.Called(ctx, ownerID, eventID, guest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) GetByID(ctx context.Context, id, ownerID int) (*model.Guest, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) UpdateByID(ctx context.Context, id, ownerID int, params model.UpdateGuestParams) (*model.Guest, error) {
	args := m.Called(ctx, id, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Guest), args.Error(1)
}

func (m *GuestServiceMock) DeleteByID(ctx context.Context, id, ownerID int) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

type TransportServiceMock struct {
	mock.Mock
}

func NewTransportServiceMock() *TransportServiceMock {
	return &TransportServiceMock{}
}

func (m *TransportServiceMock) Save(ctx context.Context, ownerID int, pref *model.TransportPreference) (*model.TransportPreference, error) {
	args := m.Called(ctx, ownerID, pref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransportPreference), args.Error(1)
}

func (m *TransportServiceMock) GetByEventID(ctx context.Context, eventID, ownerID int) (*model.TransportPreference, error) {
	args := m.Called(ctx, eventID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransportPreference), args.Error(1)
}

type AuthServiceMock struct {
	mock.Mock
}

func NewAuthServiceMock() *AuthServiceMock {
	return &AuthServiceMock{}
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *AuthServiceMock) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AuthServiceMock) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *AuthServiceMock) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
