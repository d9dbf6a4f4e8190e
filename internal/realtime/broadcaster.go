package realtime

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Publisher is the mutation-side contract for emitting events. Services
// call it after a successful commit; it never returns an error.
type Publisher interface {
	Publish(scope, event string, payload interface{})
}

// Envelope is the wire format delivered to subscribers.
type Envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Broadcaster delivers events to every subscriber of a scope,
// best-effort. A failed send evicts only that subscriber; delivery to
// the rest proceeds. Missed events are not buffered or retried.
type Broadcaster struct {
	registry *Registry
	logger   *zap.SugaredLogger
}

// NewBroadcaster creates a broadcaster over the given registry.
func NewBroadcaster(registry *Registry, logger *zap.SugaredLogger) *Broadcaster {
	return &Broadcaster{registry: registry, logger: logger}
}

// Publish delivers the event to all current subscribers of the scope.
func (b *Broadcaster) Publish(scope, event string, payload interface{}) {
	data, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		b.logger.Errorw("failed to encode event", "scope", scope, "event", event, "error", err)
		return
	}

	subs := b.registry.Subscribers(scope)
	for _, sub := range subs {
		if err := sub.Send(data); err != nil {
			b.logger.Warnw("dropping subscriber after failed send",
				"scope", scope, "event", event, "error", err)
			b.registry.Drop(sub)
			sub.Close()
		}
	}

	b.logger.Debugw("event published", "scope", scope, "event", event, "subscribers", len(subs))
}
