package domain

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// RateDataVersion is the current version of the encoded rate side-channel.
const RateDataVersion byte = 1

// encodedRateLen is one version byte plus a big-endian int64.
const encodedRateLen = 9

// BridgePayload is the message carried between two ledger domains for one
// cross-domain transfer. It is created at outbound-burn time and consumed
// exactly once at inbound-mint time; it is never persisted beyond the
// transfer it represents.
//
// RateData carries the sender's personal rate so the destination ledger can
// reconstruct the sender's accrual state instead of applying its own global
// rate.
type BridgePayload struct {
	Nonce        uuid.UUID `json:"nonce"`
	SourceDomain string    `json:"source_domain"`
	DestDomain   string    `json:"dest_domain"`
	DestToken    string    `json:"dest_token"`
	Receiver     uuid.UUID `json:"receiver"`
	Amount       int64     `json:"amount"`
	RateData     []byte    `json:"rate_data"`
}

// EncodeRateData encodes a personal rate into the versioned wire format.
func EncodeRateData(rate int64) []byte {
	buf := make([]byte, encodedRateLen)
	buf[0] = RateDataVersion
	binary.BigEndian.PutUint64(buf[1:], uint64(rate))
	return buf
}

// DecodeRateData decodes the versioned rate side-channel. It rejects unknown
// versions and malformed lengths so a schema change on one domain cannot be
// silently misread on the other.
func DecodeRateData(data []byte) (int64, error) {
	if len(data) != encodedRateLen {
		return 0, fmt.Errorf("rate data: expected %d bytes, got %d", encodedRateLen, len(data))
	}
	if data[0] != RateDataVersion {
		return 0, fmt.Errorf("rate data: unsupported version %d", data[0])
	}
	rate := int64(binary.BigEndian.Uint64(data[1:]))
	if rate < 0 {
		return 0, fmt.Errorf("rate data: negative rate %d", rate)
	}
	return rate, nil
}
