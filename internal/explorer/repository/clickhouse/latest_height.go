package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
)

const latestHeightQuery = `
SELECT max(height) AS max_height, count() AS blocks
FROM explorer_blocks FINAL`

// LatestHeight returns the highest stored height, or chain.ErrNotFound when
// the table is empty.
func (r *Store) LatestHeight(ctx context.Context) (height uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_height", err, start)
	}()

	rows, err := r.conn.Query(ctx, latestHeightQuery)
	if err != nil {
		return 0, fmt.Errorf("query latest height: %w: %w", chain.ErrTransient, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w: %w", chain.ErrTransient, closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("latest height: %w", chain.ErrNotFound)
	}

	var count uint64
	if err = rows.Scan(&height, &count); err != nil {
		return 0, fmt.Errorf("scan latest height: %w: %w", chain.ErrTransient, err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate latest height: %w: %w", chain.ErrTransient, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("latest height: %w", chain.ErrNotFound)
	}

	return height, nil
}
