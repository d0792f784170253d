// Package view maps explorer pages and counters to display-ready values.
package view

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/chain"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer/service"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultCurrency       = "BNC"
	DefaultRewardPerBlock = 333
	DefaultFounderWallet  = "banncoin.org"

	unknown = "Unknown"
)

// Config carries the display constants of the network.
type Config struct {
	Currency       string
	RewardPerBlock uint64
	FounderWallet  string
}

// DefaultConfig returns the bannnet display constants.
func DefaultConfig() Config {
	return Config{
		Currency:       DefaultCurrency,
		RewardPerBlock: DefaultRewardPerBlock,
		FounderWallet:  DefaultFounderWallet,
	}
}

type BlockView struct {
	Height         uint64 `json:"height"`
	Label          string `json:"label"`
	Hash           string `json:"hash"`
	HashWellFormed bool   `json:"hash_well_formed"`
	PrevHash       string `json:"prev_hash,omitempty"`
	Reward         string `json:"reward"`
	Recipient      string `json:"recipient"`
	Time           string `json:"time"`
	Timestamp      string `json:"timestamp,omitempty"`
	Founder        bool   `json:"founder"`
	GenesisMessage string `json:"genesis_message,omitempty"`
	Transactions   int    `json:"transactions"`
	Highlighted    bool   `json:"highlighted"`
	Placeholder    bool   `json:"placeholder"`
	Problem        string `json:"problem,omitempty"`
}

type PageView struct {
	Number      int         `json:"page"`
	TotalPages  int         `json:"total_pages"`
	Info        string      `json:"info"`
	HasPrevious bool        `json:"has_previous"`
	HasNext     bool        `json:"has_next"`
	Highlight   *uint64     `json:"highlight,omitempty"`
	Blocks      []BlockView `json:"blocks"`
}

type StatsView struct {
	LatestHeight uint64 `json:"latest_height"`
	Found        bool   `json:"found"`
	Latest       string `json:"latest"`
	TotalBlocks  uint64 `json:"total_blocks"`
	TotalPages   int    `json:"total_pages"`
	TotalRewards string `json:"total_rewards"`
	MiningRate   string `json:"mining_rate"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Mapper turns service values into views. It never fails.
type Mapper struct {
	cfg     Config
	clock   clock.Clock
	printer *message.Printer
}

// NewMapper builds a Mapper; empty config fields take the defaults.
func NewMapper(cfg Config, clk clock.Clock) *Mapper {
	def := DefaultConfig()
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.RewardPerBlock == 0 {
		cfg.RewardPerBlock = def.RewardPerBlock
	}
	if cfg.FounderWallet == "" {
		cfg.FounderWallet = def.FounderWallet
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Mapper{cfg: cfg, clock: clk, printer: message.NewPrinter(language.English)}
}

// Label returns "#N", with genesis called out.
func Label(height uint64) string {
	if height == model.GenesisHeight {
		return "#0 (Genesis)"
	}
	return fmt.Sprintf("#%d", height)
}

// Block maps one block.
func (m *Mapper) Block(b model.Block) BlockView {
	reward := b.Payout()
	if reward == "" {
		reward = "0"
	}
	recipient := b.RewardTo
	if recipient == "" {
		recipient = unknown
	}
	hash := b.Hash
	if hash == "" {
		hash = unknown
	}
	_, digestErr := b.Digest()

	v := BlockView{
		Height:         b.Height,
		Label:          Label(b.Height),
		Hash:           hash,
		HashWellFormed: digestErr == nil,
		PrevHash:       b.PrevHash,
		Reward:         reward + " " + m.cfg.Currency,
		Recipient:      recipient,
		Time:           unknown,
		Founder:        recipient == m.cfg.FounderWallet,
		Transactions:   len(b.Transactions),
	}
	if !b.Timestamp.IsZero() {
		v.Time = RelativeTime(b.Timestamp, m.clock.Now())
		v.Timestamp = b.Timestamp.UTC().Format(time.RFC3339)
	}
	if b.IsGenesis() {
		v.GenesisMessage = b.Message
	}
	return v
}

// Slot maps a page slot, rendering missing blocks as placeholders.
func (m *Mapper) Slot(s service.Slot) BlockView {
	if s.Placeholder() {
		return BlockView{
			Height:      s.Height,
			Label:       Label(s.Height),
			Hash:        "-",
			Reward:      "-",
			Recipient:   "-",
			Time:        "-",
			Highlighted: s.Highlighted,
			Placeholder: true,
			Problem:     problem(s.Err),
		}
	}
	v := m.Block(*s.Block)
	v.Highlighted = s.Highlighted
	return v
}

// Page maps a rendered page.
func (m *Mapper) Page(p service.Page) PageView {
	v := PageView{
		Number:      p.Number,
		TotalPages:  p.TotalPages,
		Info:        fmt.Sprintf("Page %d of %d (Blocks %d-%d)", p.Number, p.TotalPages, p.Window.End, p.Window.Start),
		HasPrevious: p.HasPrevious(),
		HasNext:     p.HasNext(),
		Blocks:      make([]BlockView, 0, len(p.Slots)),
	}
	if p.HasHighlight {
		h := p.Highlight
		v.Highlight = &h
	}
	for _, s := range p.Slots {
		v.Blocks = append(v.Blocks, m.Slot(s))
	}
	return v
}

// Stats maps the aggregate counters. page, when given, supplies the block
// timestamps the mining rate is derived from.
func (m *Mapper) Stats(s service.Stats, page *service.Page) StatsView {
	v := StatsView{
		LatestHeight: s.Latest,
		Found:        s.Found,
		Latest:       "-",
		TotalRewards: m.printer.Sprintf("%d %s", 0, m.cfg.Currency),
		MiningRate:   "-",
	}
	if !s.UpdatedAt.IsZero() {
		v.UpdatedAt = s.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if !s.Found {
		return v
	}

	v.Latest = m.printer.Sprintf("%d", s.Latest)
	v.TotalBlocks = s.TotalBlocks
	v.TotalPages = s.TotalPages
	v.TotalRewards = m.printer.Sprintf("%d %s", s.Latest*m.cfg.RewardPerBlock, m.cfg.Currency)
	if page != nil {
		if rate, ok := MiningRate(*page, m.clock.Now()); ok {
			v.MiningRate = fmt.Sprintf("%.1f blocks/min", rate)
		}
	}
	return v
}

// MiningRate estimates blocks per minute from the timestamps on a page. With
// a single timestamped block it falls back to the age of that block.
func MiningRate(p service.Page, now time.Time) (float64, bool) {
	var newest, oldest time.Time
	n := 0
	for _, s := range p.Slots {
		if s.Placeholder() || s.Block.Timestamp.IsZero() {
			continue
		}
		ts := s.Block.Timestamp
		if n == 0 || ts.After(newest) {
			newest = ts
		}
		if n == 0 || ts.Before(oldest) {
			oldest = ts
		}
		n++
	}

	switch {
	case n == 0:
		return 0, false
	case n == 1 || !newest.After(oldest):
		minutes := now.Sub(newest).Minutes()
		if minutes <= 0 {
			return 0, false
		}
		return 1 / minutes, true
	default:
		return float64(n-1) / newest.Sub(oldest).Minutes(), true
	}
}

// RelativeTime renders t relative to now the way the block list shows it.
func RelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := hours / 24

	switch {
	case mins < 1:
		return "Just now"
	case mins < 60:
		return fmt.Sprintf("%d min ago", mins)
	case hours < 24:
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	case days < 7:
		return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
	default:
		return t.UTC().Format("2006-01-02")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

func problem(err error) string {
	switch chain.Classify(err) {
	case chain.KindNotFound:
		return "not available yet"
	case chain.KindMalformed:
		return "unreadable block"
	case chain.KindTransient:
		return "temporarily unavailable"
	case chain.KindCanceled:
		return "canceled"
	default:
		return "failed to load"
	}
}
