package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}
	LatestIndex interface {
		LatestHeight(ctx context.Context) (uint64, error)
	}
	LatestResolver interface {
		Resolve(ctx context.Context) (Resolution, error)
	}
	PageRenderer interface {
		Render(ctx context.Context, latest uint64, pageSize, page int) (Page, error)
	}
	// Display receives everything the session wants shown. Calls are
	// serialized by the session.
	Display interface {
		ShowPage(page Page)
		ShowStats(stats Stats)
		ShowStatus(status string)
	}
	Pollable interface {
		Poll(ctx context.Context) (bool, error)
	}

	ResolverMetrics interface {
		ObserveResolve(method Method, outcome string, probes int, started time.Time)
	}
	RendererMetrics interface {
		ObserveRender(err error, placeholders int, started time.Time)
		ObserveCache(hit bool)
	}
	SessionMetrics interface {
		ObserveLatest(height uint64)
		ObserveSuperseded()
	}
	PollerMetrics interface {
		ObservePoll(err error, advanced bool, started time.Time)
	}
)
