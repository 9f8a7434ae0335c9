package queue

import (
	"context"

	"rsvp-service/internal/model"
)

// Notification is an RSVP change waiting to be dispatched to the organizer.
type Notification struct {
	GuestID   int              `json:"guest_id"`
	EventID   int              `json:"event_id"`
	GuestName string           `json:"guest_name"`
	Status    model.RSVPStatus `json:"status"`
}

type Delivery struct {
	Data *Notification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	Publish(ctx context.Context, n *Notification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type NotificationQueueImpl struct {
	// in-memory stand-in for a real broker; the Redis Stream implementation
	// is the production path
	ch chan *Notification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *Notification, bufferSize),
	}
}

func (q *NotificationQueueImpl) Publish(ctx context.Context, n *Notification) error {
	q.ch <- n
	return nil
}

func (q *NotificationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case n, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: n,
					Ack:  func() { /* nothing to do for the in-memory queue */ },
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- n
						}
					},
				}
			}
		}
	}()

	return out, nil
}
