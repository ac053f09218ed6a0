package model

import "time"

// Watermark is what the store already reflects: the highest block height and
// the IDs of transactions linked to a block.
type Watermark struct {
	Height    uint64
	HasHeight bool
	KnownIDs  map[string]struct{}
}

// Known reports whether id is already confirmed in the store.
func (w Watermark) Known(id string) bool {
	_, ok := w.KnownIDs[id]
	return ok
}

// SaveResult lists the rows a batch persisted successfully.
type SaveResult struct {
	Transactions []Transaction
	Blocks       []Block
	// Changed counts transactions that were inserted or promoted from pending.
	Changed int
}

// ErrorRecord is one entry of the append-only fetch failure log.
type ErrorRecord struct {
	URL       string
	Error     string
	CreatedAt time.Time
}
