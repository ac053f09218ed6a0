package syncer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledgermirror-backend/internal/ledger/model"
)

// Delta is the work found by one resolution: the chain height observed and the
// transaction IDs the store does not know yet.
type Delta struct {
	ChainHeight uint64
	IDs         []string
}

type deltaResolver struct {
	source   LedgerSource
	appNames []string
	logger   *zap.Logger
}

// Resolve returns no IDs when the chain has not moved past the watermark. Otherwise
// it queries every ID tagged with a subscribed app name and drops the confirmed ones.
func (r *deltaResolver) Resolve(ctx context.Context, watermark model.Watermark) (Delta, error) {
	height, err := r.source.ChainHeight(ctx)
	if err != nil {
		return Delta{}, fmt.Errorf("get chain height: %w", err)
	}

	delta := Delta{ChainHeight: height}
	if watermark.HasHeight && height <= watermark.Height {
		r.logger.Debug("chain has not advanced",
			zap.Uint64("chain_height", height),
			zap.Uint64("watermark", watermark.Height),
		)
		return delta, nil
	}

	ids, err := r.source.TransactionIDsByAppNames(ctx, r.appNames)
	if err != nil {
		return Delta{}, fmt.Errorf("query transaction ids: %w", err)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" || watermark.Known(id) {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		delta.IDs = append(delta.IDs, id)
	}

	r.logger.Debug("delta resolved",
		zap.Uint64("chain_height", height),
		zap.Int("queried", len(ids)),
		zap.Int("new", len(delta.IDs)),
	)
	return delta, nil
}
