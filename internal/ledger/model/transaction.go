package model

import (
	"encoding/json"
	"time"
)

// AppNameTag is the tag that partitions transactions by application.
const AppNameTag = "App-Name"

// Tag is a decoded name/value pair attached to a transaction.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Transaction is a ledger transaction mirrored into the store.
//
// BlockHash is empty while the transaction is pending. Owner holds the raw
// public key field as delivered by the ledger; OwnerAddress, Tags and AppName
// are derived from the raw payload on insert.
type Transaction struct {
	ID           string
	BlockHash    string
	RawData      json.RawMessage
	Owner        string
	OwnerAddress string
	Tags         []Tag
	AppName      string
	SeqID        int64
	CreatedAt    time.Time
}

// Confirmed reports whether the transaction is linked to a block.
func (t Transaction) Confirmed() bool {
	return t.BlockHash != ""
}

// TagValue returns the first tag value with the given name.
func (t Transaction) TagValue(name string) (string, bool) {
	for _, tag := range t.Tags {
		if tag.Name == name {
			return tag.Value, true
		}
	}
	return "", false
}

// TransactionView is the read model served by the API.
type TransactionView struct {
	ID           string          `json:"id"`
	BlockHash    string          `json:"blockHash,omitempty"`
	OwnerAddress string          `json:"ownerAddress"`
	AppName      string          `json:"appName,omitempty"`
	Tags         []Tag           `json:"tags"`
	Content      string          `json:"content,omitempty"`
	Fee          json.RawMessage `json:"fee,omitempty"`
	Timestamp    int64           `json:"timestamp"`
	SeqID        int64           `json:"seqID"`
}

// FeedPage is one cursor page of transactions ordered by SeqID descending.
type FeedPage struct {
	Transactions []TransactionView `json:"transactions"`
	NextCursor   *int64            `json:"nextCursor,omitempty"`
}

// FeedQuery selects a feed page. Cursor is inclusive; zero starts from the newest row.
type FeedQuery struct {
	AppNames []string
	Owner    string
	Cursor   int64
	Limit    int
}
