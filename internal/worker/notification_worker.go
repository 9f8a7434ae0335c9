package worker

import (
	"context"

	"rsvp-service/internal/queue"
	"rsvp-service/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// Start subscribes to the notification queue and dispatches deliveries
	// until the context is cancelled.
	Start(ctx context.Context) error
}

// SendFunc delivers one notification to the organizer. The default
// implementation only logs; email/SMS transports plug in here.
type SendFunc func(ctx context.Context, n *queue.Notification) error

type NotificationWorkerImpl struct {
	queue queue.NotificationQueue
	send  SendFunc
}

func NewNotificationWorker(q queue.NotificationQueue, send SendFunc) NotificationWorker {
	if send == nil {
		send = logSend
	}
	return &NotificationWorkerImpl{
		queue: q,
		send:  send,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.send(ctx, msg.Data); err != nil {
				logger.WithComponent("worker").Warn("notification dispatch failed, requeueing",
					zap.Int("guest_id", msg.Data.GuestID), zap.Error(err))
				msg.Nack(true)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}

func logSend(ctx context.Context, n *queue.Notification) error {
	logger.WithComponent("worker").Info("rsvp notification dispatched",
		zap.Int("guest_id", n.GuestID),
		zap.Int("event_id", n.EventID),
		zap.String("guest_name", n.GuestName),
		zap.String("status", string(n.Status)),
	)
	return nil
}
