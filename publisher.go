package ntopic

import (
	"fmt"
	"sync"

	"github.com/tehsphinx/ntopic/pubsub"
	"google.golang.org/protobuf/proto"
)

// Publisher sends messages of one concrete type on a topic.
type Publisher[T any, PT Message[T]] struct {
	topic string
	log   Logger

	mx   sync.Mutex
	node *nodeHandle
	done bool
}

// NewPublisher creates a publisher for message type T on the given
// topic and node.
func NewPublisher[T any, PT Message[T]](node *Node, topic string) (*Publisher[T, PT], error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}

	if err := node.handle.tryRetain(nil); err != nil {
		return nil, fmt.Errorf("ntopic: creating publisher for %q: %w", topic, err)
	}

	return &Publisher[T, PT]{
		topic: topic,
		log:   node.log,
		node:  node.handle,
	}, nil
}

// Topic returns the topic the publisher sends on.
func (p *Publisher[T, PT]) Topic() string {
	return p.topic
}

// Publish encodes msg and hands it to the middleware.
func (p *Publisher[T, PT]) Publish(msg PT) error {
	data, err := proto.Marshal(msg)
	if err != nil {
		return fmt.Errorf("ntopic: encoding message for %q: %w", p.topic, err)
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if p.done {
		return ErrClosed
	}
	return p.node.withConn(func(conn pubsub.Conn) error {
		return conn.Publish(pubsub.Message{
			Subject: p.topic,
			Data:    data,
		})
	})
}

// Close releases the publisher's share of the node connection. Only
// the first call has an effect; Close never fails outward.
func (p *Publisher[T, PT]) Close() {
	p.mx.Lock()
	defer p.mx.Unlock()

	if p.done {
		return
	}
	p.done = true

	if err := p.node.release(); err != nil {
		p.log.Errorf("releasing node connection: %v", err)
	}
}
