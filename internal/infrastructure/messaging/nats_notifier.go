package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gashub/internal/usecase/interfaces"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const (
	connectAttempts = 3
	publishTimeout  = 2 * time.Second
)

// ChangeEvent is published on every successful order write so that every
// replica refreshes its live feeds, not only the one that took the write.
type ChangeEvent struct {
	OrderID   string `json:"order_id"`
	ChangedAt string `json:"changed_at"`
}

// Connect dials NATS, retrying a few times while the broker comes up.
func Connect(ctx context.Context, url string) (*nats.Conn, error) {
	var err error
	for i := 0; i < connectAttempts; i++ {
		var nc *nats.Conn
		nc, err = nats.Connect(url,
			nats.Name("gashub"),
			nats.MaxReconnects(5),
			nats.ReconnectWait(2*time.Second),
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				log.WithError(err).Warn("[messaging][nats] disconnected")
			}),
			nats.ReconnectHandler(func(nc *nats.Conn) {
				log.WithField("url", nc.ConnectedUrl()).Info("[messaging][nats] reconnected")
			}),
		)
		if err == nil {
			log.WithField("url", url).Info("[messaging][nats] connected")
			return nc, nil
		}
		log.WithError(err).WithField("attempt", i+1).Warn("[messaging][nats] connect failed")

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		case <-time.After(2 * time.Second):
		}
	}
	return nil, fmt.Errorf("failed to connect to NATS after retries: %w", err)
}

// NatsNotifier broadcasts order changes on a subject and listens for them.
type NatsNotifier struct {
	nc      *nats.Conn
	subject string
	now     func() time.Time
}

var _ interfaces.IChangeNotifier = (*NatsNotifier)(nil)

func NewNatsNotifier(nc *nats.Conn, subject string) *NatsNotifier {
	return &NatsNotifier{nc: nc, subject: subject, now: time.Now}
}

func (n *NatsNotifier) OrdersChanged(ctx context.Context, orderID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeChangeEvent(orderID, n.now())
	if err != nil {
		return err
	}
	if err := n.nc.Publish(n.subject, data); err != nil {
		return fmt.Errorf("failed to publish order change: %w", err)
	}
	if err := n.nc.FlushTimeout(publishTimeout); err != nil {
		return fmt.Errorf("failed to flush order change: %w", err)
	}
	return nil
}

// Listen calls handler for every change event published on the subject,
// including the ones this process sent. The returned func unsubscribes.
func (n *NatsNotifier) Listen(handler func(ChangeEvent)) (func() error, error) {
	sub, err := n.nc.Subscribe(n.subject, func(msg *nats.Msg) {
		ev, err := decodeChangeEvent(msg.Data)
		if err != nil {
			log.WithError(err).WithField("subject", msg.Subject).Warn("[messaging][nats] dropping malformed change event")
			return
		}
		handler(ev)
	})
	if err != nil {
		return nil, err
	}
	return sub.Unsubscribe, nil
}

// Close drains pending messages and closes the connection.
func (n *NatsNotifier) Close() {
	if n.nc == nil || n.nc.IsClosed() {
		return
	}
	if err := n.nc.Drain(); err != nil {
		n.nc.Close()
	}
}

func encodeChangeEvent(orderID string, at time.Time) ([]byte, error) {
	return json.Marshal(ChangeEvent{OrderID: orderID, ChangedAt: at.UTC().Format(time.RFC3339Nano)})
}

func decodeChangeEvent(data []byte) (ChangeEvent, error) {
	var ev ChangeEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ChangeEvent{}, err
	}
	if ev.OrderID == "" {
		return ChangeEvent{}, fmt.Errorf("change event without order_id")
	}
	return ev, nil
}
