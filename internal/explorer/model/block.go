// Package model defines the block documents served by the explorer origin.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// LatestFileName is the optional index document naming the newest block.
const LatestFileName = "latest.json"

// GenesisHeight is the height of the first block ever produced.
const GenesisHeight uint64 = 0

// Block is an immutable block document produced by the external miner.
type Block struct {
	Height   uint64
	Hash     string
	PrevHash string
	// Reward and Amount keep the payout exactly as served; miners have
	// written both keys over time.
	Reward       string
	Amount       string
	RewardTo     string
	Timestamp    time.Time
	Message      string
	Network      string
	Difficulty   string
	Nonce        string
	Transactions []json.RawMessage
}

// BlockFileName returns the zero-padded document name for a height.
func BlockFileName(height uint64) string {
	return fmt.Sprintf("block%04d.json", height)
}

// IsGenesis reports whether b is the first block.
func (b Block) IsGenesis() bool {
	return b.Height == GenesisHeight
}

// Payout returns the reward, preferring amount over reward.
func (b Block) Payout() string {
	if b.Amount != "" {
		return b.Amount
	}
	return b.Reward
}

// Digest parses the hash as a 32-byte hex digest.
func (b Block) Digest() (chainhash.Hash, error) {
	var h chainhash.Hash
	if len(b.Hash) != chainhash.MaxHashStringSize {
		return h, fmt.Errorf("hash length %d, want %d", len(b.Hash), chainhash.MaxHashStringSize)
	}
	if err := chainhash.Decode(&h, b.Hash); err != nil {
		return h, fmt.Errorf("decode hash: %w", err)
	}
	return h, nil
}
