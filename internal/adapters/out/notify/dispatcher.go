package notify

import (
	"context"
	"log/slog"

	"reco/internal/core/domain/model/kernel"
	"reco/internal/core/domain/model/notification"
)

// Sink is one delivery channel.
type Sink interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Directory resolves profile email addresses.
type Directory interface {
	EmailsByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]string, error)
}

// Dispatcher implements ports.Notifier. It never returns errors to the
// caller.
type Dispatcher struct {
	logger    *slog.Logger
	directory Directory
	sinks     []Sink
	retries   *retryQueue
}

func NewDispatcher(logger *slog.Logger, directory Directory, retryCapacity int, sinks ...Sink) *Dispatcher {
	return &Dispatcher{
		logger:    logger.With("component", "notify"),
		directory: directory,
		sinks:     sinks,
		retries:   newRetryQueue(retryCapacity),
	}
}

func (d *Dispatcher) Notify(ctx context.Context, intents ...notification.Intent) {
	if len(intents) == 0 {
		return
	}

	emails := d.resolveEmails(ctx, intents)
	for _, intent := range intents {
		email := intent.Recipient.Email
		if email == "" {
			email = emails[intent.Recipient.ID]
		}

		msg, err := Render(intent, email)
		if err != nil {
			d.logger.ErrorContext(ctx, "Failed to render notification", "kind", intent.Kind.String(), "error", err)
			continue
		}

		for _, sink := range d.sinks {
			if err := sink.Send(ctx, msg); err != nil {
				d.logger.WarnContext(ctx, "Notification delivery failed",
					"sink", sink.Name(), "kind", msg.Kind, "recipient", msg.RecipientID, "error", err)
				if dropped := d.retries.push(pending{sink: sink, msg: msg, attempts: 1}); dropped {
					d.logger.WarnContext(ctx, "Retry queue full, dropped oldest notification")
				}
			}
		}
	}
}

// RetryFailed resends queued messages once and returns how many went
// through. Messages that fail maxAttempts times are dropped.
func (d *Dispatcher) RetryFailed(ctx context.Context) int {
	batch := d.retries.drain()
	delivered := 0
	for _, p := range batch {
		if ctx.Err() != nil {
			d.retries.push(p)
			continue
		}
		if err := p.sink.Send(ctx, p.msg); err != nil {
			p.attempts++
			if p.attempts >= maxAttempts {
				d.logger.ErrorContext(ctx, "Giving up on notification",
					"sink", p.sink.Name(), "kind", p.msg.Kind, "recipient", p.msg.RecipientID, "error", err)
				continue
			}
			d.retries.push(p)
			continue
		}
		delivered++
	}
	return delivered
}

// Pending reports the number of queued retries.
func (d *Dispatcher) Pending() int {
	return d.retries.len()
}

func (d *Dispatcher) resolveEmails(ctx context.Context, intents []notification.Intent) map[kernel.UUID]string {
	if d.directory == nil {
		return nil
	}

	ids := make([]kernel.UUID, 0, len(intents))
	for _, intent := range intents {
		if intent.Recipient.Email == "" {
			ids = append(ids, intent.Recipient.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	emails, err := d.directory.EmailsByID(ctx, ids)
	if err != nil {
		d.logger.WarnContext(ctx, "Failed to resolve recipient emails", "error", err)
		return nil
	}
	return emails
}
