package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutboundStatus tracks the state machine of one outbound cross-domain
// transfer: Validated -> Burned -> PayloadEmitted on success, or
// Validated -> Rejected when allow-list validation fails.
type OutboundStatus string

const (
	OutboundStatusValidated      OutboundStatus = "VALIDATED"
	OutboundStatusBurned         OutboundStatus = "BURNED"
	OutboundStatusPayloadEmitted OutboundStatus = "PAYLOAD_EMITTED"
	OutboundStatusRejected       OutboundStatus = "REJECTED"
)

// OutboundTransfer is the record of one lock-or-burn attempt.
type OutboundTransfer struct {
	ID         uuid.UUID      `json:"id"`
	Sender     uuid.UUID      `json:"sender"`
	Receiver   uuid.UUID      `json:"receiver"`
	Amount     int64          `json:"amount"`
	DestDomain string         `json:"dest_domain"`
	Status     OutboundStatus `json:"status"`
	Fee        int64          `json:"fee"`
	CreatedAt  time.Time      `json:"created_at"`
}

// RemoteDomain is one allow-list entry the bridge adapter must hold before
// accepting or emitting traffic for a remote domain.
type RemoteDomain struct {
	DomainID        string `json:"domain_id"`
	AdapterIdentity string `json:"adapter_identity"`
	TokenIdentity   string `json:"token_identity"`
	// MaxTransferAmount caps a single transfer; zero means uncapped.
	MaxTransferAmount int64 `json:"max_transfer_amount"`
}
