package ntopic

import "github.com/tehsphinx/ntopic/pubsub"

// HistoryPolicy controls how many messages a subscription buffers
// before they are taken.
type HistoryPolicy int

const (
	// HistoryKeepLast buffers up to Depth messages.
	HistoryKeepLast HistoryPolicy = iota
	// HistoryKeepAll buffers without limit.
	HistoryKeepAll
)

// QoSProfile configures the delivery behavior of a topic endpoint.
// The profile is carried into the middleware adapter as-is; any field
// semantics beyond the mapping into pubsub.SubscribeOptions belong to
// the adapter.
type QoSProfile struct {
	History HistoryPolicy
	Depth   int
	// Queue joins the subscription to a load-balancing group. Empty
	// means every subscription receives its own copy.
	Queue string
}

// QoSProfileDefault keeps the last 10 messages.
var QoSProfileDefault = QoSProfile{History: HistoryKeepLast, Depth: 10}

// QoSProfileSensorData keeps a short history for high-rate data where
// only recent samples matter.
var QoSProfileSensorData = QoSProfile{History: HistoryKeepLast, Depth: 5}

func (q QoSProfile) subscribeOptions(typeName string) pubsub.SubscribeOptions {
	opts := pubsub.SubscribeOptions{
		Queue:    q.Queue,
		TypeName: typeName,
	}
	if q.History == HistoryKeepLast {
		opts.PendingLimit = q.Depth
		if opts.PendingLimit <= 0 {
			opts.PendingLimit = QoSProfileDefault.Depth
		}
	}
	return opts
}
