// Package telemetry is an optional side-channel that republishes automato
// transaction replies onto redis, so other services can observe traffic
// without holding the serial port themselves: an hset-then-publish
// pipeline per node, keyed by node id, with matching subscribe support.
package telemetry

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/openautomato/automato/pkg/automato"
)

// keyPrefix namespaces every automato node's hash and pub/sub channel.
const keyPrefix = "automato"

// Sink publishes reply payloads to redis. A nil *Sink is valid and a
// no-op, so callers can wire telemetry optionally.
type Sink struct {
	client *redis.Client
	ctx    context.Context
}

// New connects to addr and verifies reachability with a PING.
func New(addr, password string, db int) (*Sink, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("telemetry: connect to redis: %w", err)
	}
	return &Sink{client: client, ctx: ctx}, nil
}

// Close closes the underlying redis connection.
func (s *Sink) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}

// key returns the per-node hash/channel key, e.g. "automato:42".
func key(nodeID byte) string {
	return fmt.Sprintf("%s:%d", keyPrefix, nodeID)
}

// PublishReply records nodeID's latest reply kind under its hash and
// publishes the JSON-encoded reply on the node's channel.
func (s *Sink) PublishReply(nodeID byte, reply automato.Payload) error {
	if s == nil {
		return nil
	}
	encoded, err := automato.EncodeJSON(reply)
	if err != nil {
		return fmt.Errorf("telemetry: encode reply: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.HSet(s.ctx, key(nodeID), "lastKind", reply.Kind().String())
	pipe.HSet(s.ctx, key(nodeID), "lastReply", string(encoded))
	pipe.Publish(s.ctx, key(nodeID), string(encoded))
	if _, err := pipe.Exec(s.ctx); err != nil {
		log.Printf("telemetry: publish %s failed: %v", key(nodeID), err)
		return err
	}
	return nil
}

// Subscribe returns a channel of decoded reply payloads published for
// nodeID, and a function to stop the subscription.
func (s *Sink) Subscribe(nodeID byte) (<-chan automato.Payload, func(), error) {
	if s == nil {
		return nil, func() {}, fmt.Errorf("telemetry: sink not configured")
	}
	pubsub := s.client.Subscribe(s.ctx, key(nodeID))
	raw := pubsub.Channel()
	out := make(chan automato.Payload)

	go func() {
		defer close(out)
		for msg := range raw {
			p, err := automato.DecodeJSON([]byte(msg.Payload))
			if err != nil {
				log.Printf("telemetry: decode published reply: %v", err)
				continue
			}
			out <- p
		}
	}()

	return out, func() { _ = pubsub.Close() }, nil
}
