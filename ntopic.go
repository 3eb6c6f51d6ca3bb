// Package ntopic implements typed topic subscriptions and publishers
// over pubsub like NATS. The interfaces defined in the `pubsub` package
// can be implemented for more pubsub solutions and then used with this
// module.
//
// A Subscription decodes middleware payloads into a concrete protobuf
// message type and hands them to a user callback. Subscriptions of
// different message types implement the common SubscriptionBase
// interface, so a WaitSet can drive all of them from one loop without
// knowing their types.
package ntopic

import "time"

const defaultSpinInterval = 10 * time.Millisecond
