// Package notify publishes workflow state changes to interested parties.
// Delivery is best effort: failures are logged and never affect the caller.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Event is emitted for every appended workflow state
type Event struct {
	RequestID  uuid.UUID `json:"request_id"`
	State      string    `json:"state"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Hook receives workflow events
type Hook interface {
	Notify(ctx context.Context, event Event) error
}

// LogHook writes events to the structured log
type LogHook struct{}

// NewLogHook creates a hook that only logs
func NewLogHook() *LogHook {
	return &LogHook{}
}

// Notify logs the event at info level
func (h *LogHook) Notify(_ context.Context, event Event) error {
	logrus.WithFields(logrus.Fields{
		"request_id": event.RequestID.String(),
		"state":      event.State,
		"actor":      event.ActorID,
	}).Info("workflow state changed")
	return nil
}

// Dispatcher fans events out to a hook without blocking the caller
type Dispatcher struct {
	hook    Hook
	timeout time.Duration
}

// NewDispatcher wraps hook with fire-and-forget delivery
func NewDispatcher(hook Hook) *Dispatcher {
	return &Dispatcher{hook: hook, timeout: 5 * time.Second}
}

// Publish delivers events asynchronously, in order, on a detached context.
// It returns a channel closed once delivery has finished.
func (d *Dispatcher) Publish(events ...Event) <-chan struct{} {
	done := make(chan struct{})
	if d == nil || d.hook == nil || len(events) == 0 {
		close(done)
		return done
	}

	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		for _, event := range events {
			if err := d.hook.Notify(ctx, event); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"request_id": event.RequestID.String(),
					"state":      event.State,
				}).Warn("failed to deliver workflow notification")
			}
		}
	}()
	return done
}
