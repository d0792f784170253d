package service

import "time"

const (
	DefaultPageSize = 15
	// DefaultCeiling bounds the probe search when no latest index answers.
	DefaultCeiling uint64 = 8500

	defaultProbeAttempts  = 4
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second

	defaultRenderWorkers = 8
	defaultCacheSize     = 4096
	defaultCacheTTL      = time.Hour

	// DefaultPollInterval follows the miner's block cadence.
	DefaultPollInterval = 26 * time.Second
)
