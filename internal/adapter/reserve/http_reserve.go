package reserve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HTTPDoer is the http.Client subset used for settlement calls.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Settlement implements ports.ReserveAsset against an external settlement
// endpoint. Incoming reserve value is settled out-of-band; only the release
// side is observable here, and a non-2xx response is a failed release.
type Settlement struct {
	client HTTPDoer
	url    string
	log    zerolog.Logger
}

// NewSettlement creates a settlement-backed reserve asset adapter.
func NewSettlement(client HTTPDoer, url string, log zerolog.Logger) *Settlement {
	return &Settlement{client: client, url: url, log: log}
}

type releaseRequest struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

// Send releases reserve value to the recipient.
func (s *Settlement) Send(ctx context.Context, recipient uuid.UUID, amount int64) error {
	body, err := json.Marshal(releaseRequest{
		Recipient: recipient.String(),
		Amount:    amount,
	})
	if err != nil {
		return fmt.Errorf("marshal release request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build release request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("settlement call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("settlement rejected release: status %d", resp.StatusCode)
	}

	s.log.Info().
		Str("recipient", recipient.String()).
		Int64("amount", amount).
		Msg("reserve released")

	return nil
}
