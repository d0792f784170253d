package clickhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

const fetchBlockQuery = `
SELECT
	height,
	hash,
	prev_hash,
	reward,
	amount,
	reward_to,
	timestamp,
	message,
	network,
	difficulty,
	nonce,
	transactions
FROM explorer_blocks FINAL
WHERE height = ?
LIMIT 1`

// FetchBlock returns the block stored at height.
func (r *Store) FetchBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block", err, start)
	}()

	rows, err := r.conn.Query(ctx, fetchBlockQuery, height)
	if err != nil {
		return nil, fmt.Errorf("query block %d: %w: %w", height, chain.ErrTransient, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w: %w", chain.ErrTransient, closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate block %d: %w: %w", height, chain.ErrTransient, err)
		}
		return nil, fmt.Errorf("block %d: %w", height, chain.ErrNotFound)
	}

	var (
		b   model.Block
		txs string
	)
	if err = rows.Scan(
		&b.Height,
		&b.Hash,
		&b.PrevHash,
		&b.Reward,
		&b.Amount,
		&b.RewardTo,
		&b.Timestamp,
		&b.Message,
		&b.Network,
		&b.Difficulty,
		&b.Nonce,
		&txs,
	); err != nil {
		return nil, fmt.Errorf("scan block %d: %w: %w", height, chain.ErrTransient, err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block %d: %w: %w", height, chain.ErrTransient, err)
	}

	if b.Hash == "" {
		return nil, fmt.Errorf("block %d: %w: empty hash", height, chain.ErrMalformed)
	}
	if txs != "" {
		if err = json.Unmarshal([]byte(txs), &b.Transactions); err != nil {
			return nil, fmt.Errorf("block %d transactions: %w: %w", height, chain.ErrMalformed, err)
		}
	}
	if len(b.Transactions) == 0 {
		b.Transactions = nil
	}
	b.Timestamp = b.Timestamp.UTC()

	return &b, nil
}
