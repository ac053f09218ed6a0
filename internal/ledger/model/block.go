// Package model defines domain models for the ledger mirror.
package model

import (
	"encoding/json"
	"time"
)

// Block is a ledger block mirrored into the store. Blocks are immutable once written.
type Block struct {
	Hash      string
	Height    uint64
	Timestamp int64
	RawData   json.RawMessage
	CreatedAt time.Time
}
