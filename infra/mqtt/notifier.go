package mqtt

import (
	"context"
	"encoding/json"

	"github.com/villnoweric/package-delivery-tycoon/core/events"
	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
	"github.com/villnoweric/package-delivery-tycoon/internal/eventbus"
)

// Notifier bridges the internal event bus to MQTT topics. One topic per
// event family under the configured prefix:
//
//	<prefix>/notices
//	<prefix>/day
//	<prefix>/dispatch
type Notifier struct {
	pub    Publisher
	prefix string
	log    logger.Logger
}

// NewNotifier wraps the publisher.
func NewNotifier(pub Publisher, prefix string) *Notifier {
	if prefix == "" {
		prefix = "tycoon"
	}
	return &Notifier{pub: pub, prefix: prefix, log: logger.New("mqtt_notifier")}
}

// Run consumes bus events until the context ends or the bus closes. Publish
// failures are logged and dropped; the simulation never depends on them.
func (n *Notifier) Run(ctx context.Context, bus eventbus.EventBus) {
	sub := bus.Subscribe()
	defer bus.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			n.forward(ev)
		}
	}
}

func (n *Notifier) forward(ev eventbus.Event) {
	var topic string
	switch ev.(type) {
	case events.NoticeEvent:
		topic = n.prefix + "/notices"
	case events.DayAdvancedEvent:
		topic = n.prefix + "/day"
	case events.RouteDispatchedEvent:
		topic = n.prefix + "/dispatch"
	default:
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		n.log.Errorf("marshal event: %v", err)
		return
	}
	if err := n.pub.Publish(topic, payload); err != nil {
		n.log.Warnf("publish %s: %v", topic, err)
	}
}
