package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teamwear/jersey-orders/internal/app/entity"
)

const (
	sendTimeout = 10 * time.Second
	stopTimeout = 5 * time.Second
)

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender is the outbound email capability. Transport details live behind it.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher renders and sends lifecycle emails. Every send runs in its own
// goroutine so the triggering request never waits on it; failures are logged
// and swallowed, never retried.
type Dispatcher struct {
	sender     Sender
	adminEmail string
	wg         *sync.WaitGroup
}

func New(sender Sender, adminEmail string) *Dispatcher {
	return &Dispatcher{
		sender:     sender,
		adminEmail: adminEmail,
		wg:         &sync.WaitGroup{},
	}
}

// OrderCreated sends the customer confirmation and, when an administrative
// address is configured, an admin alert. A missing admin address is not an
// error.
func (d *Dispatcher) OrderCreated(order entity.Order) {
	msg, err := renderOrderCreated(order)
	if err != nil {
		zap.L().Error("error while rendering order created notification", zap.Error(err))
		return
	}

	d.dispatch(msg)

	if len(d.adminEmail) == 0 {
		return
	}

	adminMsg, err := renderAdminAlert(order, d.adminEmail)
	if err != nil {
		zap.L().Error("error while rendering admin alert notification", zap.Error(err))
		return
	}

	d.dispatch(adminMsg)
}

// StatusChanged mails the customer exactly on the pending->done edge.
// A done->done no-op produces nothing.
func (d *Dispatcher) StatusChanged(order entity.Order, previous, next entity.OrderStatus) {
	if previous == entity.StatusDone || next != entity.StatusDone {
		return
	}

	msg, err := renderStatusDone(order)
	if err != nil {
		zap.L().Error("error while rendering status change notification", zap.Error(err))
		return
	}

	d.dispatch(msg)
}

func (d *Dispatcher) dispatch(msg Message) {
	notificationID := uuid.New()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		err := d.sender.Send(ctx, msg)
		if err != nil {
			zap.L().Error("error while sending notification email",
				zap.String("notification_id", notificationID.String()),
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
			return
		}

		zap.L().Info("notification email sent",
			zap.String("notification_id", notificationID.String()),
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject))
	}()
}

// Stop waits for in-flight sends to finish, bounded by a timeout.
func (d *Dispatcher) Stop() {
	ready := make(chan bool)
	go func() {
		defer close(ready)
		d.wg.Wait()
	}()

	select {
	case <-time.After(stopTimeout):
		zap.L().Error("timeout stopped while waiting for in-flight notifications while shutting down")
		return
	case <-ready:
		zap.L().Info("successful drain of in-flight notifications while shutting down")
		return
	}
}
