package arweave

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

type txPayload struct {
	ID    string      `json:"id"`
	Owner string      `json:"owner"`
	Tags  []model.Tag `json:"tags"`
}

type blockPayload struct {
	IndepHash string `json:"indep_hash"`
	Height    uint64 `json:"height"`
	Timestamp int64  `json:"timestamp"`
}

type statusPayload struct {
	BlockIndepHash string `json:"block_indep_hash"`
}

type infoPayload struct {
	Height uint64 `json:"height"`
}

// DecodeTags decodes base64url tag names and values.
func DecodeTags(tags []model.Tag) ([]model.Tag, error) {
	decoded := make([]model.Tag, 0, len(tags))
	for i, tag := range tags {
		name, err := model.DecodeBase64URL(tag.Name)
		if err != nil {
			return nil, fmt.Errorf("decode tag %d name: %w", i, err)
		}
		value, err := model.DecodeBase64URL(tag.Value)
		if err != nil {
			return nil, fmt.Errorf("decode tag %d value: %w", i, err)
		}
		decoded = append(decoded, model.Tag{Name: string(name), Value: string(value)})
	}
	return decoded, nil
}

// OwnerToAddress derives the wallet address from the owner public key:
// base64url(sha256(owner)).
func OwnerToAddress(owner string) (string, error) {
	if owner == "" {
		return "", errors.New("owner is empty")
	}
	key, err := model.DecodeBase64URL(owner)
	if err != nil {
		return "", fmt.Errorf("decode owner: %w", err)
	}
	sum := sha256.Sum256(key)
	return model.EncodeBase64URL(sum[:]), nil
}

// ParseTransaction builds a transaction from the raw gateway payload, decoding
// tags and deriving the owner address and application name.
func ParseTransaction(raw []byte) (model.Transaction, error) {
	var p txPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Transaction{}, fmt.Errorf("unmarshal transaction: %w", err)
	}
	if p.ID == "" {
		return model.Transaction{}, errors.New("transaction id is empty")
	}

	tags, err := DecodeTags(p.Tags)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", p.ID, err)
	}
	address, err := OwnerToAddress(p.Owner)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: %w", p.ID, err)
	}

	tx := model.Transaction{
		ID:           p.ID,
		RawData:      json.RawMessage(raw),
		Owner:        p.Owner,
		OwnerAddress: address,
		Tags:         tags,
	}
	tx.AppName, _ = tx.TagValue(model.AppNameTag)
	return tx, nil
}

// ParseBlock builds a block from the raw gateway payload.
func ParseBlock(raw []byte) (model.Block, error) {
	var p blockPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return model.Block{}, fmt.Errorf("unmarshal block: %w", err)
	}
	if p.IndepHash == "" {
		return model.Block{}, errors.New("block hash is empty")
	}
	return model.Block{
		Hash:      p.IndepHash,
		Height:    p.Height,
		Timestamp: p.Timestamp,
		RawData:   json.RawMessage(raw),
	}, nil
}
