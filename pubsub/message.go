package pubsub

// Message defines a pubsub message.
type Message struct {
	Subject string
	Data    []byte
}

// SubscribeOptions configures a subscription at registration time.
type SubscribeOptions struct {
	// Queue is the load-balancing group. Empty means no group.
	Queue string
	// PendingLimit caps the number of buffered messages. Zero or
	// negative means the adapter's unlimited setting.
	PendingLimit int
	// TypeName is the full name of the message type expected on the
	// subject. Adapters may use it for diagnostics; it is not
	// interpreted here.
	TypeName string
}
