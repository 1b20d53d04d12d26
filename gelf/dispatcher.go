package gelf

import (
	"context"

	"github.com/nicwaller/gelfout"
)

// Notifier is the transport collaborator. Implementations must either
// be safe for concurrent use or be owned by a single caller; the
// dispatcher takes no locks of its own.
type Notifier interface {
	Notify(m Message, timestamp float64) error
}

type DispatchResult struct {
	Ok  bool
	Err error
}

type Dispatcher struct {
	cfg      Config
	notifier Notifier
}

func NewDispatcher(cfg Config, notifier Notifier) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		notifier: notifier,
	}
}

// Dispatch resolves an event into a GELF message and makes one
// best-effort attempt to deliver it. A transport failure is logged
// with the message, the event, and the error, then dropped: a dead
// or unreachable server must never stall upstream event processing.
func (d *Dispatcher) Dispatch(ctx context.Context, evt *gelfout.Event) DispatchResult {
	m := Resolve(evt, d.cfg)
	if err := d.notifier.Notify(m, evt.Timestamp()); err != nil {
		log := gelfout.ContextLogger(ctx)
		log.Warn("failed delivering message to graylog",
			"error", err,
			"short_message", m.ShortMessage(),
			"event", evt.Fields)
		return DispatchResult{Ok: false, Err: err}
	}
	return DispatchResult{Ok: true}
}
