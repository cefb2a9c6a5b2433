package events

// Topic constants for domain events emitted by the checkout flow.
const (
	TopicPaymentCaptured = "payment.captured"
	TopicPaymentFailed   = "payment.failed"
	TopicOrderPaid       = "order.paid"
)

// DefaultTopics returns the canonical list of topics delivered to notifiers.
func DefaultTopics() []string {
	return []string{
		TopicPaymentCaptured,
		TopicPaymentFailed,
		TopicOrderPaid,
	}
}
