// Package queue defines message payloads exchanged over the message broker.
package queue

// NotificationQueueName is the durable queue carrying outbound
// notification messages.
const NotificationQueueName = "notifications.outbound"

// Notification kinds, recorded so the consumer can distinguish agent
// alerts from submitter acknowledgments in its log.
const (
	KindAgentAlert     = "agent_alert"
	KindAdminAlert     = "admin_alert"
	KindAcknowledgment = "acknowledgment"
)

// NotificationMessage is published after a successful inquiry or contact
// creation.  Delivery is best-effort: the producing request never waits
// on, or fails because of, this message.
type NotificationMessage struct {
	Kind      string `json:"kind"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	QueuedAt  string `json:"queued_at"`
}
