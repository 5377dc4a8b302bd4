package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/maikelordaz/ccip-token/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Transport implements ports.Transport over Kafka. Each remote domain maps
// to its own topic (<prefix>.<domain>); the payload envelope is JSON.
//
// Fee computation and delivery guarantees are the messaging layer's concern;
// this adapter reports the configured flat fee and relies on Kafka's
// at-least-once delivery, with the bridge's dedup store collapsing
// redeliveries on the receiving side.
type Transport struct {
	mu      sync.Mutex
	writers map[string]*kafka.Writer

	brokers     []string
	topicPrefix string
	flatFee     int64
	log         zerolog.Logger
}

// NewTransport creates a Kafka-backed transport.
func NewTransport(brokers []string, topicPrefix string, flatFee int64, log zerolog.Logger) *Transport {
	return &Transport{
		writers:     make(map[string]*kafka.Writer),
		brokers:     brokers,
		topicPrefix: topicPrefix,
		flatFee:     flatFee,
		log:         log,
	}
}

// Topic returns the topic name for a ledger domain.
func (t *Transport) Topic(domainID string) string {
	return t.topicPrefix + "." + domainID
}

// ComputeFee implements ports.Transport.
func (t *Transport) ComputeFee(_ context.Context, _ string, _ *domain.BridgePayload) (int64, error) {
	return t.flatFee, nil
}

// Send implements ports.Transport.
func (t *Transport) Send(ctx context.Context, destDomain string, payload *domain.BridgePayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	err = t.writer(destDomain).WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.Nonce.String()),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("write payload to %s: %w", t.Topic(destDomain), err)
	}

	t.log.Info().
		Str("nonce", payload.Nonce.String()).
		Str("topic", t.Topic(destDomain)).
		Int64("amount", payload.Amount).
		Msg("payload emitted")

	return nil
}

// Close releases all writers.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	var firstErr error
	for _, w := range t.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *Transport) writer(destDomain string) *kafka.Writer {
	t.mu.Lock()
	defer t.mu.Unlock()
	w, ok := t.writers[destDomain]
	if !ok {
		w = &kafka.Writer{
			Addr:     kafka.TCP(t.brokers...),
			Topic:    t.Topic(destDomain),
			Balancer: &kafka.LeastBytes{},
		}
		t.writers[destDomain] = w
	}
	return w
}
