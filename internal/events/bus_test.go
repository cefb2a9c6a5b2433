package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-checkout/internal/events"
)

type recordingNotifier struct {
	received []events.Event
	err      error
}

func (r *recordingNotifier) Notify(_ context.Context, event events.Event) error {
	r.received = append(r.received, event)
	return r.err
}

func TestEmitAssignsIDAndDelivers(t *testing.T) {
	notifier := &recordingNotifier{}
	bus := &events.Bus{Notifiers: []events.Notifier{notifier}}

	ev, err := bus.Emit(t.Context(), events.TopicPaymentCaptured, map[string]any{
		"paymentId": "pay_123",
		"orderId":   "order_456",
	})
	require.NoError(t, err)
	require.NotEmpty(t, ev.ID)
	require.Equal(t, events.TopicPaymentCaptured, ev.Topic)
	require.False(t, ev.OccurredAt.IsZero())
	require.JSONEq(t, `{"paymentId":"pay_123","orderId":"order_456"}`, string(ev.Payload))

	require.Len(t, notifier.received, 1)
	require.Equal(t, ev.ID, notifier.received[0].ID)
}

func TestDefaultTopicsAreDistinct(t *testing.T) {
	topics := events.DefaultTopics()
	require.Len(t, topics, 3)
	seen := map[string]bool{}
	for _, topic := range topics {
		require.NotEmpty(t, topic)
		require.False(t, seen[topic], "duplicate topic %q", topic)
		seen[topic] = true
	}
}

func TestEmitRequiresTopic(t *testing.T) {
	bus := &events.Bus{}
	_, err := bus.Emit(t.Context(), "  ", nil)
	require.ErrorContains(t, err, "topic is required")
}

func TestEmitNilPayloadBecomesEmptyObject(t *testing.T) {
	notifier := &recordingNotifier{}
	bus := &events.Bus{Notifiers: []events.Notifier{notifier}}

	ev, err := bus.Emit(t.Context(), events.TopicOrderPaid, nil)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(ev.Payload))
}

func TestEmitRejectsInvalidRawJSON(t *testing.T) {
	bus := &events.Bus{}
	_, err := bus.Emit(t.Context(), events.TopicPaymentFailed, []byte("{not json"))
	require.ErrorContains(t, err, "encode payload")
}

func TestMetricsNotifierCountsByTopic(t *testing.T) {
	events.EmittedTotal.Reset()
	bus := &events.Bus{Notifiers: []events.Notifier{events.MetricsNotifier{}}}

	_, err := bus.Emit(t.Context(), events.TopicPaymentCaptured, nil)
	require.NoError(t, err)
	_, err = bus.Emit(t.Context(), events.TopicPaymentCaptured, nil)
	require.NoError(t, err)

	val := testutil.ToFloat64(events.EmittedTotal.WithLabelValues(events.TopicPaymentCaptured))
	require.Equal(t, 2.0, val)
}

func TestEmitDeliversToAllNotifiersDespiteFailure(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("smtp down")}
	healthy := &recordingNotifier{}
	bus := &events.Bus{Notifiers: []events.Notifier{failing, healthy, nil}}

	ev, err := bus.Emit(t.Context(), events.TopicPaymentFailed, map[string]string{"paymentId": "pay_789"})
	require.ErrorContains(t, err, "smtp down")
	require.NotEmpty(t, ev.ID)

	require.Len(t, failing.received, 1)
	require.Len(t, healthy.received, 1, "delivery must continue past a failing notifier")
}
