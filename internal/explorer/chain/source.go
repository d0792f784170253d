// Package chain defines the block store contract shared by explorer components.
package chain

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

var (
	// ErrNotFound reports that no block exists at the requested height.
	ErrNotFound = errors.New("block not found")
	// ErrTransient reports a failure that may succeed when retried.
	ErrTransient = errors.New("transient store failure")
	// ErrMalformed reports a response that is not a valid block document.
	ErrMalformed = errors.New("malformed block document")
)

// BlockSource reads blocks from an append-only store of numbered documents.
type BlockSource interface {
	FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
}

// LatestIndex answers the newest height directly, without probing.
type LatestIndex interface {
	LatestHeight(ctx context.Context) (uint64, error)
}

// Kind classifies a store error.
type Kind string

const (
	KindNone      Kind = "success"
	KindNotFound  Kind = "not_found"
	KindTransient Kind = "transient"
	KindMalformed Kind = "malformed"
	KindCanceled  Kind = "canceled"
	KindUnknown   Kind = "error"
)

// Classify maps err onto the error taxonomy.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	case errors.Is(err, ErrTransient):
		return KindTransient
	default:
		return KindUnknown
	}
}
