package rabbitmq

import (
	"blessindo/pkg/events"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage(t *testing.T) {
	headers := events.Headers{TraceID: "trace-1", CorrelationID: "corr-1"}
	event := events.NewEvent(events.ProductCreatedEvent, events.EventVersionV1, events.DeletedPayload{ID: 7}, headers)

	msg, err := buildMessage(event, headers, "company-site")
	require.NoError(t, err)

	require.Equal(t, "application/json", msg.ContentType)
	require.Equal(t, amqp.Persistent, msg.DeliveryMode)
	require.Equal(t, events.ProductCreatedEvent, msg.Type)
	require.Equal(t, "corr-1", msg.CorrelationId)
	require.Equal(t, "company-site", msg.Headers["x-service"])
	require.Equal(t, "trace-1", msg.Headers["x-trace-id"])

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	require.Equal(t, events.ProductCreatedEvent, body["event"])
	require.Equal(t, map[string]any{"id": float64(7)}, body["payload"])
}

func TestBuildMessageHeaderServiceWins(t *testing.T) {
	headers := events.Headers{Service: "admin-import"}
	event := events.NewEvent(events.SettingsUpdatedEvent, events.EventVersionV1, nil, headers)

	msg, err := buildMessage(event, headers, "company-site")
	require.NoError(t, err)
	require.Equal(t, "admin-import", msg.Headers["x-service"])
}

type fakeConfirmation struct {
	acked   bool
	pending bool
}

func (c fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	if c.pending {
		<-ctx.Done()
		return false, ctx.Err()
	}
	return c.acked, nil
}

type fakeChannel struct {
	mu            sync.Mutex
	confirmations []fakeConfirmation
	published     []amqp.Publishing
	declared      []string
}

func (c *fakeChannel) ExchangeDeclare(name, _ string, _, _, _, _ bool, _ amqp.Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.declared = append(c.declared, name)
	return nil
}

func (c *fakeChannel) PublishConfirmed(_ context.Context, _, _ string, msg amqp.Publishing) (confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.confirmations) == 0 {
		return nil, errors.New("no confirmation queued")
	}
	next := c.confirmations[0]
	c.confirmations = c.confirmations[1:]
	c.published = append(c.published, msg)
	return next, nil
}

func (c *fakeChannel) Close() error {
	return nil
}

func newFakePublisher(channel *fakeChannel) *CatalogPublisher {
	return &CatalogPublisher{
		channel:        channel,
		service:        "company-site",
		declared:       map[string]bool{},
		confirmTimeout: 20 * time.Millisecond,
	}
}

func productEvent(id int64) (*events.Event, events.Headers) {
	headers := events.Headers{TraceID: "trace"}
	return events.NewEvent(events.ProductCreatedEvent, events.EventVersionV1, events.DeletedPayload{ID: id}, headers), headers
}

func TestPublishWaitsForItsOwnConfirm(t *testing.T) {
	channel := &fakeChannel{confirmations: []fakeConfirmation{
		{pending: true},
		{acked: true},
		{acked: false},
		{acked: true},
	}}
	p := newFakePublisher(channel)

	event, headers := productEvent(1)
	err := p.Publish(context.Background(), "catalog", event, headers)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	event, headers = productEvent(2)
	require.NoError(t, p.Publish(context.Background(), "catalog", event, headers))

	event, headers = productEvent(3)
	require.ErrorIs(t, p.Publish(context.Background(), "catalog", event, headers), ErrNotAcknowledged)

	event, headers = productEvent(4)
	require.NoError(t, p.Publish(context.Background(), "catalog", event, headers))

	require.Len(t, channel.published, 4)
	require.Equal(t, []string{"catalog"}, channel.declared)
}

func TestPublishHonoursCallerCancel(t *testing.T) {
	channel := &fakeChannel{confirmations: []fakeConfirmation{{pending: true}}}
	p := newFakePublisher(channel)
	p.confirmTimeout = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	event, headers := productEvent(1)
	require.ErrorIs(t, p.Publish(ctx, "catalog", event, headers), context.Canceled)
}

func TestConcurrentPublishesEachGetAConfirm(t *testing.T) {
	const n = 8
	channel := &fakeChannel{}
	for i := 0; i < n; i++ {
		channel.confirmations = append(channel.confirmations, fakeConfirmation{acked: true})
	}
	p := newFakePublisher(channel)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			event, headers := productEvent(id)
			errs <- p.Publish(context.Background(), "catalog", event, headers)
		}(int64(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	require.Len(t, channel.published, n)
	require.Equal(t, []string{"catalog"}, channel.declared)
}
