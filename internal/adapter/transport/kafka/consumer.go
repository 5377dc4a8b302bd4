package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/maikelordaz/ccip-token/internal/core/domain"
	"github.com/maikelordaz/ccip-token/internal/core/ports"
	"github.com/maikelordaz/ccip-token/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Consumer reads inbound bridge payloads from this domain's topic and hands
// them to the bridge adapter. Offsets are committed only after the mint
// succeeded or the payload was recognized as a duplicate or as permanently
// malformed; transient failures keep the message for redelivery.
type Consumer struct {
	reader *kafka.Reader
	bridge ports.BridgeService
	log    zerolog.Logger
}

// NewConsumer creates a consumer for the local domain's inbound topic.
func NewConsumer(brokers []string, topic, groupID string, bridge ports.BridgeService, log zerolog.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		bridge: bridge,
		log:    log,
	}
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.handle(ctx, msg.Value); err != nil {
			// Leave the offset uncommitted; the transport redelivers and the
			// dedup store keeps the mint at-most-once.
			c.log.Error().Err(err).Msg("inbound payload failed, will retry")
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error().Err(err).Msg("commit offset failed")
		}
	}
}

// Close releases the reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}

func (c *Consumer) handle(ctx context.Context, value []byte) error {
	var payload domain.BridgePayload
	if err := json.Unmarshal(value, &payload); err != nil {
		// Undecodable messages can never succeed; drop them loudly.
		c.log.Error().Err(err).Msg("dropping undecodable payload")
		return nil
	}

	_, err := c.bridge.ReleaseOrMint(ctx, &payload)
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "BRG_003": // duplicate delivery: already minted, safe to commit
			c.log.Info().Str("nonce", payload.Nonce.String()).Msg("duplicate payload skipped")
			return nil
		case "BRG_004": // malformed: retrying cannot help
			c.log.Error().Err(err).Str("nonce", payload.Nonce.String()).Msg("dropping malformed payload")
			return nil
		}
	}
	return err
}
