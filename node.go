package ntopic

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/tehsphinx/ntopic/pubsub"
)

// nodeHandle guards the middleware connection shared by a node and all
// endpoints created on it. Every use of the connection goes through its
// lock; the connection is closed when the last owner released it.
type nodeHandle struct {
	name string

	mx   sync.Mutex
	conn pubsub.Conn
	refs int
}

func newNodeHandle(conn pubsub.Conn, name string) *nodeHandle {
	return &nodeHandle{name: name, conn: conn, refs: 1}
}

// tryRetain runs fn (if any) with exclusive access to the connection
// and adds an owner on success. The liveness check, fn and the count
// increment form one critical section: a handle whose last owner
// already released it fails with ErrClosed instead of being revived.
func (h *nodeHandle) tryRetain(fn func(conn pubsub.Conn) error) error {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.refs == 0 {
		return ErrClosed
	}
	if fn != nil {
		if err := fn(h.conn); err != nil {
			return err
		}
	}
	h.refs++
	return nil
}

// release drops an owner, closing the connection when the last one is
// gone. Returns the middleware's close error, if any.
func (h *nodeHandle) release() error {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.refs == 0 {
		return nil
	}
	h.refs--
	if h.refs > 0 {
		return nil
	}
	return h.conn.Close()
}

// withConn runs fn with exclusive access to the connection. It fails
// with ErrClosed once every owner released the handle.
func (h *nodeHandle) withConn(fn func(conn pubsub.Conn) error) error {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.refs == 0 {
		return ErrClosed
	}
	return fn(h.conn)
}

// Node groups typed endpoints on one middleware connection. The node
// co-owns the connection with every subscription and publisher created
// on it, so the connection outlives each of them regardless of close
// order.
type Node struct {
	handle *nodeHandle
	log    Logger
}

// NewNode wraps a middleware connection in a node. An empty name is
// replaced with a unique anonymous one.
func NewNode(conn pubsub.Conn, name string, opts ...Option) (*Node, error) {
	opt := getOptions(opts)

	if name == "" {
		name = "node-" + uuid.NewString()
	}
	if strings.ContainsRune(name, 0) {
		return nil, fmt.Errorf("ntopic: invalid node name: embedded null byte")
	}

	return &Node{
		handle: newNodeHandle(conn, name),
		log:    opt.logger,
	}, nil
}

// Name returns the node's name.
func (n *Node) Name() string {
	return n.handle.name
}

// Flush waits until the middleware has processed everything published
// on this node's connection so far.
func (n *Node) Flush() error {
	return n.handle.withConn(func(conn pubsub.Conn) error {
		return conn.Flush()
	})
}

// Close releases the node's share of the connection. Endpoints created
// on the node keep the connection alive until they are closed
// themselves. Close never fails outward; problems are logged.
func (n *Node) Close() {
	if err := n.handle.release(); err != nil {
		n.log.Errorf("closing node %q: %v", n.handle.name, err)
	}
}
